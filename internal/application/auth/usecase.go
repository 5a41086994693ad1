package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/application/dto"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/domain"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Admin is the single dashboard operator, provisioned from configuration.
type Admin struct {
	Email        string
	Name         string
	PasswordHash string // bcrypt
}

// AuthUseCase authenticates the dashboard operator and issues JWTs.
type AuthUseCase struct {
	admin  Admin
	jwtCfg JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(admin Admin, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{admin: admin, jwtCfg: jwtCfg}
}

// Login verifies the credentials against the provisioned admin and returns a
// signed token plus the user profile. Wrong email and wrong password produce
// the same error.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if !strings.EqualFold(in.Email, uc.admin.Email) {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.admin.Email, "admin", uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:    uc.admin.Email,
			Email: uc.admin.Email,
			Name:  uc.admin.Name,
			Role:  "admin",
		},
	}, nil
}
