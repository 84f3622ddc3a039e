package dto

import "time"

// CreateUserRequest entrada para registrar un usuario (password en texto, se hashea en el use case).
// También se usa en PUT: la actualización completa exige todos los campos.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,username"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// UpdateUserRequest entrada para PATCH. Campos vacíos se ignoran (política falsy-skip).
type UpdateUserRequest struct {
	Username string `json:"username" validate:"omitempty,username"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

// LoginRequest credenciales de login. El form OAuth2 manda el email en el campo username.
type LoginRequest struct {
	Email    string `json:"email" form:"username" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	UUID      string    `json:"uuid"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse página de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
	Pages int            `json:"pages"`
}
