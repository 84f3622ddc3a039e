package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías. Name es la clave única.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	products repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, products repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, products: products}
}

// Create crea una categoría. Devuelve ErrDuplicate si el nombre ya existe.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) error {
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Slug:      in.Slug,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return uc.repo.Create(category)
}

// GetByID obtiene una categoría con sus productos. Devuelve (nil, nil) si no existe.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return uc.toCategoryResponse(category)
}

// List devuelve todas las categorías con sus productos anidados.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		resp, err := uc.toCategoryResponse(c)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return items, nil
}

// FullUpdate reemplaza name y slug. Solo se re-verifica unicidad si name cambió.
func (uc *CategoryUseCase) FullUpdate(id string, in dto.CreateCategoryRequest) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	if in.Name != category.Name {
		existing, err := uc.repo.GetByName(in.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
	}
	category.Name = in.Name
	category.Slug = in.Slug
	category.UpdatedAt = time.Now()
	return uc.repo.Update(category)
}

// PartialUpdate actualiza solo los campos con valor no vacío (política falsy-skip).
func (uc *CategoryUseCase) PartialUpdate(id string, in dto.UpdateCategoryRequest) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	if in.Name != "" && in.Name != category.Name {
		existing, err := uc.repo.GetByName(in.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		category.Name = in.Name
	}
	if in.Slug != "" {
		category.Slug = in.Slug
	}
	category.UpdatedAt = time.Now()
	return uc.repo.Update(category)
}

// Delete elimina una categoría. Sus productos caen en cascada (FK ON DELETE CASCADE).
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func (uc *CategoryUseCase) toCategoryResponse(c *entity.Category) (*dto.CategoryResponse, error) {
	products, err := uc.products.ListByCategory(c.ID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.CategoryResponse{
		UUID:      c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		Products:  items,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}, nil
}
