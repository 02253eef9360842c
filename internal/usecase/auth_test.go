//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"vtv-turnos/internal/domain/user"
	"vtv-turnos/internal/pkg/jwt"
	"vtv-turnos/internal/usecase"
	"vtv-turnos/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchPassword(hashedPassword, password string) error {
	if hashedPassword != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func knownUserRepo(userID uuid.UUID) *stubUserRepo {
	return &stubUserRepo{
		findByUsernameFn: func(_ context.Context, username string) (*readmodel.UserRM, string, error) {
			if username != "carlos" {
				return nil, "", notFoundErr("user not found")
			}
			return &readmodel.UserRM{ID: userID, Username: "carlos", Role: "CLIENTE"}, "hash:secreto123", nil
		},
	}
}

func TestAuthUseCaseLogin(t *testing.T) {
	jwtService := jwt.NewService("test-secret", 5*time.Minute)
	userID := uuid.New()

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		uc := usecase.NewAuthUseCase(knownUserRepo(userID), jwtService, matchPassword)

		result, err := uc.Login(context.Background(), "carlos", "secreto123")
		require.NoError(t, err)
		assert.Equal(t, user.RoleClient, result.Role)

		claims, err := jwtService.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "carlos", claims.Username)
		assert.Equal(t, "CLIENTE", claims.Role)
	})

	t.Run("unknown username", func(t *testing.T) {
		uc := usecase.NewAuthUseCase(knownUserRepo(userID), jwtService, matchPassword)

		_, err := uc.Login(context.Background(), "nadie", "secreto123")
		require.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc := usecase.NewAuthUseCase(knownUserRepo(userID), jwtService, matchPassword)

		_, err := uc.Login(context.Background(), "carlos", "incorrecta")
		require.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	})
}

func TestAuthUseCaseValidateToken(t *testing.T) {
	jwtService := jwt.NewService("test-secret", 5*time.Minute)
	uc := usecase.NewAuthUseCase(&stubUserRepo{}, jwtService, matchPassword)

	t.Run("round trip", func(t *testing.T) {
		userID := uuid.New()
		token, err := jwtService.GenerateToken(userID, "inspector.lopez", user.RoleInspector)
		require.NoError(t, err)

		gotID, gotUsername, gotRole, err := uc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, gotID)
		assert.Equal(t, "inspector.lopez", gotUsername)
		assert.Equal(t, user.RoleInspector, gotRole)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, _, _, err := uc.ValidateToken("not-a-token")
		require.ErrorIs(t, err, usecase.ErrTokenValidation)
	})

	t.Run("expired token", func(t *testing.T) {
		expiredService := jwt.NewService("test-secret", -time.Minute)
		token, err := expiredService.GenerateToken(uuid.New(), "carlos", user.RoleClient)
		require.NoError(t, err)

		_, _, _, err = uc.ValidateToken(token)
		require.ErrorIs(t, err, usecase.ErrTokenValidation)
	})
}
