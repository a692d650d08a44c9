package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/clearspend/expense-server/internal/service"
	"github.com/clearspend/expense-server/internal/validate"
)

// SignInInput is the Huma input for signing in.
type SignInInput struct {
	Body CredentialsBody
}

// SignInOutput is the Huma output for signing in.
type SignInOutput struct {
	Body SessionResponseBody
}

// userAuthenticator is the interface for verifying credentials.
type userAuthenticator interface {
	SignIn(ctx context.Context, email, password string) (string, error)
}

// SignInHandler handles POST /v1/auth/signin.
type SignInHandler struct {
	AuthService userAuthenticator
}

// NewSignInHandler creates a new SignInHandler.
func NewSignInHandler(svc userAuthenticator) *SignInHandler {
	return &SignInHandler{AuthService: svc}
}

// Register registers the sign-in endpoint with the Huma API.
func (h *SignInHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "sign-in",
		Method:      http.MethodPost,
		Path:        "/v1/auth/signin",
		Summary:     "Sign in",
		Description: "Verifies credentials and starts a session.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *SignInHandler) handle(ctx context.Context, input *SignInInput) (*SignInOutput, error) {
	token, err := h.AuthService.SignIn(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return nil, huma.NewError(http.StatusUnauthorized, "invalid email or password")
		}
		var fieldErrs validate.FieldErrors
		if errors.As(err, &fieldErrs) {
			return nil, huma.NewError(http.StatusBadRequest, fieldErrs.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to sign in", err)
	}

	return &SignInOutput{Body: SessionResponseBody{Token: token}}, nil
}
