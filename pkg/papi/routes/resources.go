package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/minhtan/hostpanel/pkg/papi/schemas"
	"github.com/minhtan/hostpanel/pkg/papi/services/content"
)

func registerCategories(api huma.API, store *content.Store) {
	crud[schemas.Category, schemas.CreateCategoryRequest, schemas.UpdateCategoryRequest]{
		resource: "category",
		plural:   "categories",
		path:     "/categories",
		tag:      TagCatalog,
		build: func(id, now string, req schemas.CreateCategoryRequest) schemas.Category {
			return schemas.Category{
				ID:          id,
				Name:        req.Name,
				Description: req.Description,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
		},
		apply: func(rec *schemas.Category, req schemas.UpdateCategoryRequest, now string) {
			if req.Name != "" {
				rec.Name = req.Name
			}
			if req.Description != "" {
				rec.Description = req.Description
			}
			rec.UpdatedAt = now
		},
	}.register(api, store)
}

func registerProducts(api huma.API, store *content.Store) {
	crud[schemas.Product, schemas.CreateProductRequest, schemas.UpdateProductRequest]{
		resource: "product",
		plural:   "products",
		path:     "/products",
		tag:      TagCatalog,
		build: func(id, now string, req schemas.CreateProductRequest) schemas.Product {
			return schemas.Product{
				ID:            id,
				Name:          req.Name,
				CPU:           req.CPU,
				GPU:           req.GPU,
				MemoryGB:      req.MemoryGB,
				DiskSSDGB:     req.DiskSSDGB,
				IP:            req.IP,
				OS:            req.OS,
				Bandwidth:     req.Bandwidth,
				PricePerMonth: req.PricePerMonth,
				Link:          req.Link,
				Category:      schemas.CategoryRef{ID: req.Category},
				CreatedAt:     now,
				UpdatedAt:     now,
			}
		},
		apply: func(rec *schemas.Product, req schemas.UpdateProductRequest, now string) {
			if req.Name != "" {
				rec.Name = req.Name
			}
			if req.CPU != "" {
				rec.CPU = req.CPU
			}
			if req.GPU != "" {
				rec.GPU = req.GPU
			}
			if req.MemoryGB != 0 {
				rec.MemoryGB = req.MemoryGB
			}
			if req.DiskSSDGB != 0 {
				rec.DiskSSDGB = req.DiskSSDGB
			}
			if req.IP != "" {
				rec.IP = req.IP
			}
			if req.OS != "" {
				rec.OS = req.OS
			}
			if req.Bandwidth != "" {
				rec.Bandwidth = req.Bandwidth
			}
			if req.PricePerMonth != 0 {
				rec.PricePerMonth = req.PricePerMonth
			}
			if req.Link != "" {
				rec.Link = req.Link
			}
			if req.Category != "" {
				rec.Category = schemas.CategoryRef{ID: req.Category}
			}
			rec.UpdatedAt = now
		},
	}.register(api, store)
}

func registerNews(api huma.API, store *content.Store) {
	crud[schemas.News, schemas.CreateNewsRequest, schemas.UpdateNewsRequest]{
		resource: "news",
		plural:   "news",
		path:     "/news",
		tag:      TagContent,
		build: func(id, now string, req schemas.CreateNewsRequest) schemas.News {
			status := req.Status
			if status == "" {
				status = schemas.NewsStatusDraft
			}
			return schemas.News{
				ID:          id,
				Title:       req.Title,
				Content:     req.Content,
				Summary:     req.Summary,
				Author:      req.Author,
				Category:    req.Category,
				Tags:        req.Tags,
				ImageURL:    req.ImageURL,
				Status:      status,
				PublishedAt: req.PublishedAt,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
		},
		apply: func(rec *schemas.News, req schemas.UpdateNewsRequest, now string) {
			if req.Title != "" {
				rec.Title = req.Title
			}
			if req.Content != "" {
				rec.Content = req.Content
			}
			if req.Summary != "" {
				rec.Summary = req.Summary
			}
			if req.Author != "" {
				rec.Author = req.Author
			}
			if req.Category != "" {
				rec.Category = req.Category
			}
			if req.Tags != nil {
				rec.Tags = req.Tags
			}
			if req.ImageURL != "" {
				rec.ImageURL = req.ImageURL
			}
			if req.Status != "" {
				rec.Status = req.Status
			}
			if req.PublishedAt != "" {
				rec.PublishedAt = req.PublishedAt
			}
			rec.UpdatedAt = now
		},
	}.register(api, store)
}

func registerServices(api huma.API, store *content.Store) {
	crud[schemas.Service, schemas.CreateServiceRequest, schemas.UpdateServiceRequest]{
		resource: "service",
		plural:   "services",
		path:     "/services",
		tag:      TagContent,
		build: func(id, now string, req schemas.CreateServiceRequest) schemas.Service {
			return schemas.Service{
				ID:          id,
				Title:       req.Title,
				Description: req.Description,
				ImageURL:    req.ImageURL,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
		},
		apply: func(rec *schemas.Service, req schemas.UpdateServiceRequest, now string) {
			if req.Title != "" {
				rec.Title = req.Title
			}
			if req.Description != "" {
				rec.Description = req.Description
			}
			if req.ImageURL != "" {
				rec.ImageURL = req.ImageURL
			}
			rec.UpdatedAt = now
		},
	}.register(api, store)
}

func registerContactInfo(api huma.API, store *content.Store) {
	crud[schemas.ContactInfo, schemas.UpsertContactInfoRequest, schemas.UpsertContactInfoRequest]{
		resource: "contact-info",
		plural:   "contact-info",
		path:     "/contact-info",
		tag:      TagSite,
		build: func(id, now string, req schemas.UpsertContactInfoRequest) schemas.ContactInfo {
			return schemas.ContactInfo{
				ID:        id,
				Email:     req.Email,
				Phone:     req.Phone,
				Address:   req.Address,
				Helpdesk:  req.Helpdesk,
				CreatedAt: now,
				UpdatedAt: now,
			}
		},
		apply: func(rec *schemas.ContactInfo, req schemas.UpsertContactInfoRequest, now string) {
			if req.Email != "" {
				rec.Email = req.Email
			}
			if req.Phone != "" {
				rec.Phone = req.Phone
			}
			if req.Address != "" {
				rec.Address = req.Address
			}
			if req.Helpdesk != "" {
				rec.Helpdesk = req.Helpdesk
			}
			rec.UpdatedAt = now
		},
	}.register(api, store)
}

func registerHomeText(api huma.API, store *content.Store) {
	crud[schemas.HomeText, schemas.CreateHomeTextRequest, schemas.UpdateHomeTextRequest]{
		resource: "home-text",
		plural:   "home-texts",
		path:     "/home-text",
		tag:      TagSite,
		build: func(id, now string, req schemas.CreateHomeTextRequest) schemas.HomeText {
			return schemas.HomeText{
				ID:        id,
				Title:     req.Title,
				Text:      req.Text,
				CreatedAt: now,
				UpdatedAt: now,
			}
		},
		apply: func(rec *schemas.HomeText, req schemas.UpdateHomeTextRequest, now string) {
			if req.Title != "" {
				rec.Title = req.Title
			}
			if req.Text != "" {
				rec.Text = req.Text
			}
			rec.UpdatedAt = now
		},
	}.register(api, store)
}
