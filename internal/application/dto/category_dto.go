package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría. También se usa en PUT.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,category_name"`
	Slug string `json:"slug" validate:"required,category_slug"`
}

// UpdateCategoryRequest entrada para PATCH. Campos vacíos se ignoran (política falsy-skip).
type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"omitempty,category_name"`
	Slug string `json:"slug" validate:"omitempty,category_slug"`
}

// CategoryResponse salida de una categoría con sus productos anidados.
type CategoryResponse struct {
	UUID      string            `json:"uuid"`
	Name      string            `json:"name"`
	Slug      string            `json:"slug"`
	Products  []ProductResponse `json:"products"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
