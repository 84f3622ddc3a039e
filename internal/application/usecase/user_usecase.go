package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// UserUseCase casos de uso CRUD para usuarios. El email es la clave única;
// los conflictos se detectan con pre-check y, si aun así el insert choca
// (carrera), el repo normaliza la violación de constraint a ErrDuplicate.
type UserUseCase struct {
	repo   repository.UserRepository
	hasher *auth.Hasher
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, hasher *auth.Hasher) *UserUseCase {
	return &UserUseCase{repo: repo, hasher: hasher}
}

// Create registra un usuario. Devuelve ErrDuplicate si el email ya existe.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) error {
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrDuplicate
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return uc.repo.Create(user)
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// List lista usuarios paginados, más recientes primero.
func (uc *UserUseCase) List(page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Size, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Total: total,
		Page:  page.Page,
		Size:  page.Size,
		Pages: dto.Pages(total, page.Size),
	}, nil
}

// FullUpdate reemplaza username, email y password. El password siempre se re-hashea.
// Solo se re-verifica unicidad si el email cambió.
func (uc *UserUseCase) FullUpdate(id string, in dto.CreateUserRequest) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if in.Email != user.Email {
		existing, err := uc.repo.GetByEmail(in.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return err
	}
	user.Username = in.Username
	user.Email = in.Email
	user.PasswordHash = hash
	user.UpdatedAt = time.Now()
	return uc.repo.Update(user)
}

// PartialUpdate actualiza solo los campos con valor no vacío (política falsy-skip).
func (uc *UserUseCase) PartialUpdate(id string, in dto.UpdateUserRequest) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if in.Username != "" {
		user.Username = in.Username
	}
	if in.Email != "" && in.Email != user.Email {
		existing, err := uc.repo.GetByEmail(in.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		user.Email = in.Email
	}
	if in.Password != "" {
		hash, err := uc.hasher.Hash(in.Password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now()
	return uc.repo.Update(user)
}

// Delete elimina un usuario por ID.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		UUID:      u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
