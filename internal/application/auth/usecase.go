package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
	"github.com/jhoicas/pedidos-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación y verificación de tokens.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// AuthUseCase casos de uso de autenticación: registro, login y resolución de sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario con password hasheado (bcrypt).
// Devuelve Conflict si el email ya está registrado.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	in.Email = normalizeEmail(in.Email)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errUserExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Nombre:       in.Nombre,
		Apellido:     in.Apellido,
		Email:        in.Email,
		PasswordHash: string(hash),
		Creado:       time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		// carrera con otro registro del mismo email: el índice único lo detecta
		if errors.Is(err, domain.ErrConflict) {
			return nil, errUserExists
		}
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// Login verifica email/password y emite un token firmado.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	in.Email = normalizeEmail(in.Email)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, errWrongPassword
	}
	token, err := uc.IssueToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token}, nil
}

// IssueToken firma los claims {id, email, nombre, apellido, creado} con la vigencia configurada.
func (uc *AuthUseCase) IssueToken(user *entity.User) (string, error) {
	return jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, jwt.UserClaims{
		ID:       user.ID,
		Email:    user.Email,
		Nombre:   user.Nombre,
		Apellido: user.Apellido,
		Creado:   user.Creado,
	}, uc.jwtCfg.TTL)
}

// ResolveSession verifica un token. Devuelve nil (sesión anónima) si es inválido o expiró.
func (uc *AuthUseCase) ResolveSession(token string) *Session {
	if token == "" {
		return nil
	}
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil
	}
	return claims
}

// CurrentUser devuelve el usuario de la sesión (obtenerUsuario), o nil si es anónima.
func (uc *AuthUseCase) CurrentUser(ctx context.Context) *dto.UserResponse {
	s := SessionFrom(ctx)
	if s == nil {
		return nil
	}
	return &dto.UserResponse{ID: s.ID, Nombre: s.Nombre, Apellido: s.Apellido, Email: s.Email, Creado: s.Creado}
}

var (
	errUserExists    = domain.NewError(domain.ErrConflict, "El usuario ya esta registrado")
	errWrongPassword = domain.NewError(domain.ErrUnauthorized, "El password es incorrecto")
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
