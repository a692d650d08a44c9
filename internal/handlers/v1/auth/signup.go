// Package auth exposes the sign-up, sign-in, and sign-out endpoints that
// issue and revoke session tokens for the expense endpoints.
package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/clearspend/expense-server/internal/service"
	"github.com/clearspend/expense-server/internal/validate"
)

// CredentialsBody is the request body for sign-up and sign-in.
type CredentialsBody struct {
	Email    string `json:"email" required:"true" maxLength:"255" doc:"Email address"`
	Password string `json:"password" required:"true" minLength:"6" maxLength:"72" doc:"Password"`
}

// SessionResponseBody is the response body carrying a session token.
type SessionResponseBody struct {
	Token string `json:"token" doc:"Bearer session token"`
}

// SignUpInput is the Huma input for signing up.
type SignUpInput struct {
	Body CredentialsBody
}

// SignUpOutput is the Huma output for signing up.
type SignUpOutput struct {
	Body SessionResponseBody
}

// userRegistrar is the interface for creating accounts.
type userRegistrar interface {
	SignUp(ctx context.Context, email, password string) (string, error)
}

// SignUpHandler handles POST /v1/auth/signup.
type SignUpHandler struct {
	AuthService userRegistrar
}

// NewSignUpHandler creates a new SignUpHandler.
func NewSignUpHandler(svc userRegistrar) *SignUpHandler {
	return &SignUpHandler{AuthService: svc}
}

// Register registers the sign-up endpoint with the Huma API.
func (h *SignUpHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "sign-up",
		Method:        http.MethodPost,
		Path:          "/v1/auth/signup",
		Summary:       "Sign up",
		Description:   "Creates an account and starts a session.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *SignUpHandler) handle(ctx context.Context, input *SignUpInput) (*SignUpOutput, error) {
	token, err := h.AuthService.SignUp(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			return nil, huma.NewError(http.StatusConflict, "email already registered")
		}
		var fieldErrs validate.FieldErrors
		if errors.As(err, &fieldErrs) {
			return nil, huma.NewError(http.StatusBadRequest, fieldErrs.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to sign up", err)
	}

	return &SignUpOutput{Body: SessionResponseBody{Token: token}}, nil
}
