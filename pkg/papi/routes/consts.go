package routes

var (
	BearerAuth = []map[string][]string{
		{"bearer": {}},
	}
)

type Tag string

const (
	TagAuth    Tag = "auth"
	TagCatalog Tag = "catalog"
	TagContent Tag = "content"
	TagSite    Tag = "site"
)

func (t Tag) String() string { return string(t) }
