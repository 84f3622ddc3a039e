package auth

import (
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/config"
	pkgjwt "github.com/jhoicas/tienda-api/pkg/jwt"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// AuthUseCase autenticación: verificación de credenciales y emisión de tokens.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher *Hasher
	jwtCfg config.JWTConfig
	log    *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, hasher *Hasher, jwtCfg config.JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, jwtCfg: jwtCfg, log: log}
}

// Authenticate busca el usuario por email (match exacto) y verifica el password.
// Devuelve (nil, nil) tanto para email desconocido como para password incorrecto:
// la respuesta al cliente no debe distinguir los dos casos. Los logs sí pueden.
func (uc *AuthUseCase) Authenticate(email, password string) (*entity.User, error) {
	user, err := uc.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.log.Debug().Str("email", email).Msg("login: email desconocido")
		return nil, nil
	}
	if !uc.hasher.Verify(password, user.PasswordHash) {
		uc.log.Debug().Str("email", email).Msg("login: password incorrecto")
		return nil, nil
	}
	return user, nil
}

// Login autentica y emite un access token con el email como subject.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.Authenticate(in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := pkgjwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Algorithm, user.Email, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}
