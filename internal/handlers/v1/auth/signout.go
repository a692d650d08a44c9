package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// SignOutInput is the Huma input for signing out.
type SignOutInput struct {
	Authorization string `header:"Authorization" doc:"Bearer session token"`
}

// SignOutOutput is the Huma output for signing out.
type SignOutOutput struct{}

// sessionRevoker is the interface for ending sessions.
type sessionRevoker interface {
	SignOut(ctx context.Context, token string) error
}

// SignOutHandler handles POST /v1/auth/signout.
type SignOutHandler struct {
	AuthService sessionRevoker
}

// NewSignOutHandler creates a new SignOutHandler.
func NewSignOutHandler(svc sessionRevoker) *SignOutHandler {
	return &SignOutHandler{AuthService: svc}
}

// Register registers the sign-out endpoint with the Huma API.
func (h *SignOutHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "sign-out",
		Method:        http.MethodPost,
		Path:          "/v1/auth/signout",
		Summary:       "Sign out",
		Description:   "Ends the session of the presented token. Succeeds even without one.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *SignOutHandler) handle(ctx context.Context, input *SignOutInput) (*SignOutOutput, error) {
	token := strings.TrimSpace(strings.TrimPrefix(input.Authorization, "Bearer"))

	if err := h.AuthService.SignOut(ctx, token); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to sign out", err)
	}

	return &SignOutOutput{}, nil
}
