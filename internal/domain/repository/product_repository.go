package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	ListByCategory(categoryID string) ([]*entity.Product, error)
	Count() (int, error)
	Delete(id string) error
}
