package schemas

// News publication states.
const (
	NewsStatusDraft     = "draft"
	NewsStatusPublished = "published"
	NewsStatusArchived  = "archived"
)

// News is an article on the public site.
type News struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Summary     string   `json:"summary,omitempty"`
	Author      string   `json:"author"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Status      string   `json:"status" enum:"draft,published,archived"`
	PublishedAt string   `json:"publishedAt,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

type CreateNewsRequest struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Summary     string   `json:"summary,omitempty"`
	Author      string   `json:"author"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Status      string   `json:"status" enum:"draft,published,archived"`
	PublishedAt string   `json:"publishedAt,omitempty"`
}

type UpdateNewsRequest struct {
	Title       string   `json:"title,omitempty"`
	Content     string   `json:"content,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	Author      string   `json:"author,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Status      string   `json:"status,omitempty"`
	PublishedAt string   `json:"publishedAt,omitempty"`
}

// Service is an offering listed on the services page.
type Service struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

type CreateServiceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type UpdateServiceRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// ContactInfo is the single editable contact block on the site.
type ContactInfo struct {
	ID        string `json:"_id"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	Helpdesk  string `json:"helpdesk,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type UpsertContactInfoRequest struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Helpdesk string `json:"helpdesk,omitempty"`
}

// HomeText is an editable text block on the landing page.
type HomeText struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type CreateHomeTextRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type UpdateHomeTextRequest struct {
	Title string `json:"title,omitempty"`
	Text  string `json:"text,omitempty"`
}

// Post is a priced listing kept around from an older iteration of the site.
type Post struct {
	ID        int     `json:"_id"`
	Name      string  `json:"name"`
	Content   string  `json:"content"`
	Price     float64 `json:"price"`
	CreatedAt string  `json:"createdAt,omitempty"`
	UpdatedAt string  `json:"updatedAt,omitempty"`
}

type CreatePostRequest struct {
	Name    string  `json:"name"`
	Content string  `json:"content"`
	Price   float64 `json:"price"`
}

type UpdatePostRequest struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Content string  `json:"content"`
	Price   float64 `json:"price"`
}
