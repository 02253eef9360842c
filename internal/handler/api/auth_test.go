//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vtv-turnos/internal/domain/user"
	"vtv-turnos/internal/handler/api"
	"vtv-turnos/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	auth   *stubAuthUseCase
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.auth = &stubAuthUseCase{}

	handler := api.NewAuthHandler(s.auth)
	s.router.POST("/auth/login", handler.Login)
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) postLogin(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *AuthHandlerTestSuite) TestLoginSuccess() {
	s.auth.loginFn = func(_ context.Context, username, password string) (*usecase.LoginResult, error) {
		s.Equal("carlos", username)
		s.Equal("secreto123", password)
		return &usecase.LoginResult{Token: "signed.jwt.token", Role: user.RoleClient}, nil
	}

	rec := s.postLogin(`{"username":"carlos","password":"secreto123"}`)

	s.Equal(http.StatusOK, rec.Code)
	var body map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("signed.jwt.token", body["token"])
	s.Equal("CLIENTE", body["role"])
}

func (s *AuthHandlerTestSuite) TestLoginInvalidCredentials() {
	s.auth.loginFn = func(_ context.Context, _, _ string) (*usecase.LoginResult, error) {
		return nil, usecase.ErrInvalidCredentials
	}

	rec := s.postLogin(`{"username":"carlos","password":"incorrecta"}`)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "Invalid username or password")
}

func (s *AuthHandlerTestSuite) TestLoginMalformedBody() {
	for _, body := range []string{``, `{}`, `{"username":"carlos"}`, `not json`} {
		rec := s.postLogin(body)
		s.Equal(http.StatusBadRequest, rec.Code, body)
	}
}

func (s *AuthHandlerTestSuite) TestLoginInternalError() {
	s.auth.loginFn = func(_ context.Context, _, _ string) (*usecase.LoginResult, error) {
		return nil, usecase.ErrTokenGeneration
	}

	rec := s.postLogin(`{"username":"carlos","password":"secreto123"}`)

	s.Equal(http.StatusInternalServerError, rec.Code)
}
