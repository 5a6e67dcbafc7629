package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jobmarket_backend/internal/models"
	"jobmarket_backend/internal/services/dto"
	"jobmarket_backend/internal/validator"
	"jobmarket_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	signupErr error
	signinErr error
}

func (s *stubAuthService) Signup(req *dto.SignupRequest) (*dto.SignupResponse, error) {
	if s.signupErr != nil {
		return nil, s.signupErr
	}
	return &dto.SignupResponse{
		Message: "Account created. Verification pending.",
		User: dto.UserProjection{
			ID:     "user-1",
			Email:  req.Email,
			Role:   models.UserRole(req.Role),
			Status: models.UserStatusPending,
		},
	}, nil
}

func (s *stubAuthService) Signin(req *dto.SigninRequest) (*dto.SigninResponse, error) {
	if s.signinErr != nil {
		return nil, s.signinErr
	}
	return &dto.SigninResponse{Token: "token-1"}, nil
}

func newAuthTestRouter(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	base := NewBaseHandler(validator.New())
	handler := NewAuthHandler(base, svc)
	handler.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSignupValidationFailure(t *testing.T) {
	r := newAuthTestRouter(&stubAuthService{})

	w := postJSON(r, "/api/v1/auth/signup", `{"email":"not-an-email","password":"short","role":"CLIENT"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "VALIDATION_FAILED")
	assert.Contains(t, body, "email")
}

func TestSignupSuccess(t *testing.T) {
	r := newAuthTestRouter(&stubAuthService{})

	w := postJSON(r, "/api/v1/auth/signup", `{
		"email":"new@test.com","password":"password123",
		"firstName":"New","lastName":"User","role":"CLIENT","country":"BR"
	}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Verification pending")
}

func TestSigninServiceErrorStatusPropagates(t *testing.T) {
	r := newAuthTestRouter(&stubAuthService{signinErr: apperrors.ErrInvalidCredentials})

	w := postJSON(r, "/api/v1/auth/signin", `{"email":"a@b.com","password":"wrongpass"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}
