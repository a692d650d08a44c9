package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/clearspend/expense-server/internal/report"
)

// ListExpensesInput is the Huma input for listing expenses.
type ListExpensesInput struct {
	Authorization string `header:"Authorization" doc:"Bearer session token"`
}

// ListExpensesResponseBody is the response body for listing expenses.
type ListExpensesResponseBody struct {
	Expenses []Expense `json:"expenses" doc:"All expenses of the user, most recent first"`
}

// ListExpensesOutput is the Huma output for listing expenses.
type ListExpensesOutput struct {
	Body ListExpensesResponseBody
}

// expenseLister is the interface for listing expenses.
type expenseLister interface {
	Expenses(ctx context.Context, userID uuid.UUID) ([]report.Expense, error)
}

// ListExpensesHandler handles GET /v1/expense.
type ListExpensesHandler struct {
	ExpenseService expenseLister
	Identity       identityResolver
}

// NewListExpensesHandler creates a new ListExpensesHandler.
func NewListExpensesHandler(svc expenseLister, identity identityResolver) *ListExpensesHandler {
	return &ListExpensesHandler{ExpenseService: svc, Identity: identity}
}

// Register registers the list expenses endpoint with the Huma API.
func (h *ListExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-expenses",
		Method:      http.MethodGet,
		Path:        "/v1/expense",
		Summary:     "List expenses",
		Description: "Lists all expenses of the authenticated user, newest first.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *ListExpensesHandler) handle(ctx context.Context, input *ListExpensesInput) (*ListExpensesOutput, error) {
	userID := h.Identity.Identify(ctx, input.Authorization)

	expenses, err := h.ExpenseService.Expenses(ctx, userID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list expenses", err)
	}

	sorted := report.SortByDateDescending(expenses)
	return &ListExpensesOutput{
		Body: ListExpensesResponseBody{Expenses: expensesToAPI(sorted)},
	}, nil
}
