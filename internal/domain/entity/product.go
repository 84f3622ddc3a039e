package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Name es único.
// CategoryID es nullable; al borrar la categoría, sus productos caen en cascada.
type Product struct {
	ID         string
	CategoryID *string
	Name       string
	Slug       string
	Price      decimal.Decimal
	Stock      int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
