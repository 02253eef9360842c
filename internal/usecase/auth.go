package usecase

import (
	"context"
	"errors"

	"vtv-turnos/internal/domain/user"
	"vtv-turnos/internal/pkg/jwt"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

type LoginResult struct {
	Token string
	Role  user.Role
}

type AuthUseCase interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	ValidateToken(tokenString string) (uuid.UUID, string, user.Role, error)
}

type PasswordComparer func(hashedPassword, password string) error

type authUseCaseImpl struct {
	userRepo        UserRepository
	jwtService      *jwt.Service
	comparePassword PasswordComparer
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service, comparePassword PasswordComparer) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:        userRepo,
		jwtService:      jwtService,
		comparePassword: comparePassword,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	userRM, hashedPassword, err := a.userRepo.FindByUsername(ctx, username)
	if err != nil {
		// Unknown username and bad password are indistinguishable to callers.
		return nil, ErrInvalidCredentials
	}

	if err := a.comparePassword(hashedPassword, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(userRM.Role)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(userRM.ID, userRM.Username, role)
	if err != nil {
		return nil, ErrTokenGeneration
	}

	return &LoginResult{Token: token, Role: role}, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, string, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", "", ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", "", ErrTokenValidation
	}

	return claims.UserID, claims.Username, role, nil
}
