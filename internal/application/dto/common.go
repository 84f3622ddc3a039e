package dto

// Message respuesta estándar de escritura (create/update/delete).
type Message struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// TokenResponse salida del login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // siempre "bearer"
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PageRequest paginación para listados (page empieza en 1).
type PageRequest struct {
	Page int `query:"page"`
	Size int `query:"size"`
}

// DefaultPage aplica valores por defecto y límites.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Size <= 0 {
		p.Size = 50
	}
	if p.Size > 100 {
		p.Size = 100
	}
}

// Offset devuelve el offset SQL equivalente.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Size
}

// Pages calcula el total de páginas para un total de registros.
func Pages(total, size int) int {
	if size <= 0 {
		return 0
	}
	pages := total / size
	if total%size != 0 {
		pages++
	}
	return pages
}
