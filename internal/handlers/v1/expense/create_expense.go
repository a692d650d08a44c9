package expense

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/clearspend/expense-server/internal/category"
	"github.com/clearspend/expense-server/internal/report"
	"github.com/clearspend/expense-server/internal/service"
	"github.com/clearspend/expense-server/internal/validate"
)

// CreateExpenseBody is the request body for creating an expense.
type CreateExpenseBody struct {
	Amount      string `json:"amount" required:"true" doc:"Positive decimal amount"`
	Category    string `json:"category" required:"true" enum:"food,transport,rent,bills,other" doc:"Category identifier"`
	Date        string `json:"date" required:"true" doc:"Calendar date of the expense (YYYY-MM-DD)"`
	Description string `json:"description,omitempty" maxLength:"200" doc:"Optional description"`
}

// CreateExpenseInput is the Huma input for creating an expense.
type CreateExpenseInput struct {
	Authorization string `header:"Authorization" doc:"Bearer session token"`
	Body          CreateExpenseBody
}

// CreateExpenseResponseBody is the response body for creating an expense.
type CreateExpenseResponseBody struct {
	Expense *Expense `json:"expense,omitempty" doc:"Created expense, absent when unauthenticated"`
}

// CreateExpenseOutput is the Huma output for creating an expense.
type CreateExpenseOutput struct {
	Body CreateExpenseResponseBody
}

// expenseAdder is the interface for creating expenses.
type expenseAdder interface {
	Add(ctx context.Context, userID uuid.UUID, input service.ExpenseInput) (*report.Expense, error)
}

// CreateExpenseHandler handles POST /v1/expense.
type CreateExpenseHandler struct {
	ExpenseService expenseAdder
	Identity       identityResolver
}

// NewCreateExpenseHandler creates a new CreateExpenseHandler.
func NewCreateExpenseHandler(svc expenseAdder, identity identityResolver) *CreateExpenseHandler {
	return &CreateExpenseHandler{ExpenseService: svc, Identity: identity}
}

// Register registers the create expense endpoint with the Huma API.
func (h *CreateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-expense",
		Method:        http.MethodPost,
		Path:          "/v1/expense",
		Summary:       "Create expense",
		Description:   "Creates a new expense for the authenticated user.",
		Tags:          []string{"Expenses"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateExpenseBody(body CreateExpenseBody) (service.ExpenseInput, error) {
	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return service.ExpenseInput{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	cat, err := category.Parse(body.Category)
	if err != nil {
		return service.ExpenseInput{}, huma.NewError(http.StatusBadRequest, "invalid category", err)
	}
	date, err := time.Parse(dateLayout, body.Date)
	if err != nil {
		return service.ExpenseInput{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
	}

	return service.ExpenseInput{
		Amount:      amount,
		Category:    cat,
		Date:        date,
		Description: body.Description,
	}, nil
}

func (h *CreateExpenseHandler) handle(ctx context.Context, input *CreateExpenseInput) (*CreateExpenseOutput, error) {
	parsed, err := parseCreateExpenseBody(input.Body)
	if err != nil {
		return nil, err
	}

	userID := h.Identity.Identify(ctx, input.Authorization)

	created, err := h.ExpenseService.Add(ctx, userID, parsed)
	if err != nil {
		var fieldErrs validate.FieldErrors
		if errors.As(err, &fieldErrs) {
			return nil, huma.NewError(http.StatusBadRequest, fieldErrs.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create expense", err)
	}

	out := &CreateExpenseOutput{}
	if created != nil {
		apiExpense := expenseToAPI(*created)
		out.Body.Expense = &apiExpense
	}
	return out, nil
}
