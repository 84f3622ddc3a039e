package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. También se usa en PUT.
// Price > 0 se valida en el use case (decimal no es comparable vía tags).
type CreateProductRequest struct {
	CategoryUUID string          `json:"category_uuid" validate:"required,uuid4"`
	Name         string          `json:"name" validate:"required,product_name"`
	Slug         string          `json:"slug" validate:"required,product_slug"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock" validate:"min=0"`
}

// UpdateProductRequest entrada para PATCH. Campos vacíos o en cero se ignoran
// (política falsy-skip: un stock 0 o un price 0 no actualizan).
type UpdateProductRequest struct {
	CategoryUUID string          `json:"category_uuid" validate:"omitempty,uuid4"`
	Name         string          `json:"name" validate:"omitempty,product_name"`
	Slug         string          `json:"slug" validate:"omitempty,product_slug"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock" validate:"min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	UUID         string          `json:"uuid"`
	CategoryUUID *string         `json:"category_uuid"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse página de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Size  int               `json:"size"`
	Pages int               `json:"pages"`
}
