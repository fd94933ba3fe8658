package schemas

import "encoding/json"

// Category groups the hosting products shown on the public site.
type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type UpdateCategoryRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// CategoryRef appears on a product either as a bare category id or as an
// embedded {_id, name} object, depending on whether the API populated the
// relation. It marshals back in the same shape it was read.
type CategoryRef struct {
	ID   string
	Name string

	embedded bool
}

func (c *CategoryRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		c.ID = id
		c.embedded = false
		return nil
	}
	var obj struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	c.ID = obj.ID
	c.Name = obj.Name
	c.embedded = true
	return nil
}

func (c CategoryRef) MarshalJSON() ([]byte, error) {
	if !c.embedded {
		return json.Marshal(c.ID)
	}
	return json.Marshal(struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}{c.ID, c.Name})
}

// Product is a VPS plan. Field names follow the public API.
type Product struct {
	ID            string      `json:"_id"`
	Name          string      `json:"name"`
	CPU           string      `json:"cpu"`
	GPU           string      `json:"gpu"`
	MemoryGB      int         `json:"memory_gb"`
	DiskSSDGB     int         `json:"disk_ssd_gb"`
	IP            string      `json:"ip"`
	OS            string      `json:"os"`
	Bandwidth     string      `json:"bandwidth"`
	PricePerMonth float64     `json:"price_per_month"`
	Link          string      `json:"link,omitempty"`
	Category      CategoryRef `json:"category"`
	CreatedAt     string      `json:"createdAt,omitempty"`
	UpdatedAt     string      `json:"updatedAt,omitempty"`
}

type CreateProductRequest struct {
	Name          string  `json:"name"`
	CPU           string  `json:"cpu"`
	GPU           string  `json:"gpu"`
	MemoryGB      int     `json:"memory_gb"`
	DiskSSDGB     int     `json:"disk_ssd_gb"`
	IP            string  `json:"ip"`
	OS            string  `json:"os"`
	Bandwidth     string  `json:"bandwidth"`
	PricePerMonth float64 `json:"price_per_month"`
	Link          string  `json:"link,omitempty"`
	Category      string  `json:"category"`
}

type UpdateProductRequest struct {
	Name          string  `json:"name,omitempty"`
	CPU           string  `json:"cpu,omitempty"`
	GPU           string  `json:"gpu,omitempty"`
	MemoryGB      int     `json:"memory_gb,omitempty"`
	DiskSSDGB     int     `json:"disk_ssd_gb,omitempty"`
	IP            string  `json:"ip,omitempty"`
	OS            string  `json:"os,omitempty"`
	Bandwidth     string  `json:"bandwidth,omitempty"`
	PricePerMonth float64 `json:"price_per_month,omitempty"`
	Link          string  `json:"link,omitempty"`
	Category      string  `json:"category,omitempty"`
}
