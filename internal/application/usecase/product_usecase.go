package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Name es la clave única;
// la categoría del producto debe existir al crear o reasignar.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories}
}

// Create crea un producto. Devuelve ErrDuplicate si el nombre ya existe,
// ErrNotFound si la categoría no existe y ErrInvalidInput si el precio no es positivo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) error {
	if !in.Price.IsPositive() {
		return domain.ErrInvalidInput
	}
	category, err := uc.categories.GetByID(in.CategoryUUID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrDuplicate
	}
	now := time.Now()
	categoryID := in.CategoryUUID
	product := &entity.Product{
		ID:         uuid.New().String(),
		CategoryID: &categoryID,
		Name:       in.Name,
		Slug:       in.Slug,
		Price:      in.Price,
		Stock:      in.Stock,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return uc.repo.Create(product)
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos paginados, más recientes primero.
func (uc *ProductUseCase) List(page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Size, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Total: total,
		Page:  page.Page,
		Size:  page.Size,
		Pages: dto.Pages(total, page.Size),
	}, nil
}

// FullUpdate reemplaza todos los campos. Solo se re-verifica unicidad si name cambió.
func (uc *ProductUseCase) FullUpdate(id string, in dto.CreateProductRequest) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if !in.Price.IsPositive() {
		return domain.ErrInvalidInput
	}
	category, err := uc.categories.GetByID(in.CategoryUUID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	if in.Name != product.Name {
		existing, err := uc.repo.GetByName(in.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
	}
	categoryID := in.CategoryUUID
	product.CategoryID = &categoryID
	product.Name = in.Name
	product.Slug = in.Slug
	product.Price = in.Price
	product.Stock = in.Stock
	product.UpdatedAt = time.Now()
	return uc.repo.Update(product)
}

// PartialUpdate actualiza solo los campos con valor no vacío / no cero
// (política falsy-skip: price 0 y stock 0 no actualizan).
func (uc *ProductUseCase) PartialUpdate(id string, in dto.UpdateProductRequest) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if in.Name != "" && in.Name != product.Name {
		existing, err := uc.repo.GetByName(in.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		product.Name = in.Name
	}
	if in.Slug != "" {
		product.Slug = in.Slug
	}
	if !in.Price.IsZero() {
		if !in.Price.IsPositive() {
			return domain.ErrInvalidInput
		}
		product.Price = in.Price
	}
	if in.Stock != 0 {
		product.Stock = in.Stock
	}
	if in.CategoryUUID != "" {
		category, err := uc.categories.GetByID(in.CategoryUUID)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrNotFound
		}
		categoryID := in.CategoryUUID
		product.CategoryID = &categoryID
	}
	product.UpdatedAt = time.Now()
	return uc.repo.Update(product)
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		UUID:         p.ID,
		CategoryUUID: p.CategoryID,
		Name:         p.Name,
		Slug:         p.Slug,
		Price:        p.Price,
		Stock:        p.Stock,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
