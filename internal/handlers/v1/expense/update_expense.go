package expense

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/clearspend/expense-server/internal/category"
	"github.com/clearspend/expense-server/internal/report"
	"github.com/clearspend/expense-server/internal/service"
	"github.com/clearspend/expense-server/internal/validate"
)

// UpdateExpenseBody is the request body for editing an expense.
// Absent fields keep their stored values.
type UpdateExpenseBody struct {
	Amount      *string `json:"amount,omitempty" doc:"New decimal amount"`
	Category    *string `json:"category,omitempty" enum:"food,transport,rent,bills,other" doc:"New category identifier"`
	Date        *string `json:"date,omitempty" doc:"New calendar date (YYYY-MM-DD)"`
	Description *string `json:"description,omitempty" maxLength:"200" doc:"New description"`
}

// UpdateExpenseInput is the Huma input for editing an expense.
type UpdateExpenseInput struct {
	Authorization string `header:"Authorization" doc:"Bearer session token"`
	ID            string `path:"id" doc:"Expense UUID"`
	Body          UpdateExpenseBody
}

// UpdateExpenseResponseBody is the response body for editing an expense.
type UpdateExpenseResponseBody struct {
	Expense *Expense `json:"expense,omitempty" doc:"Updated expense, absent when unauthenticated"`
}

// UpdateExpenseOutput is the Huma output for editing an expense.
type UpdateExpenseOutput struct {
	Body UpdateExpenseResponseBody
}

// expenseUpdater is the interface for editing expenses.
type expenseUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, patch service.ExpensePatch) (*report.Expense, error)
}

// UpdateExpenseHandler handles PATCH /v1/expense/{id}.
type UpdateExpenseHandler struct {
	ExpenseService expenseUpdater
	Identity       identityResolver
}

// NewUpdateExpenseHandler creates a new UpdateExpenseHandler.
func NewUpdateExpenseHandler(svc expenseUpdater, identity identityResolver) *UpdateExpenseHandler {
	return &UpdateExpenseHandler{ExpenseService: svc, Identity: identity}
}

// Register registers the update expense endpoint with the Huma API.
func (h *UpdateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-expense",
		Method:      http.MethodPatch,
		Path:        "/v1/expense/{id}",
		Summary:     "Update expense",
		Description: "Edits the given fields of an expense, leaving the rest unchanged.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func parseUpdateExpenseBody(body UpdateExpenseBody) (service.ExpensePatch, error) {
	var patch service.ExpensePatch

	if body.Amount != nil {
		amount, err := decimal.NewFromString(*body.Amount)
		if err != nil {
			return patch, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
		patch.Amount = omit.From(amount)
	}
	if body.Category != nil {
		cat, err := category.Parse(*body.Category)
		if err != nil {
			return patch, huma.NewError(http.StatusBadRequest, "invalid category", err)
		}
		patch.Category = omit.From(cat)
	}
	if body.Date != nil {
		date, err := time.Parse(dateLayout, *body.Date)
		if err != nil {
			return patch, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
		patch.Date = omit.From(date)
	}
	if body.Description != nil {
		patch.Description = omit.From(*body.Description)
	}

	return patch, nil
}

func (h *UpdateExpenseHandler) handle(ctx context.Context, input *UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid expense id", err)
	}
	patch, err := parseUpdateExpenseBody(input.Body)
	if err != nil {
		return nil, err
	}

	userID := h.Identity.Identify(ctx, input.Authorization)

	updated, err := h.ExpenseService.Update(ctx, userID, id, patch)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, huma.NewError(http.StatusNotFound, "expense not found")
		}
		var fieldErrs validate.FieldErrors
		if errors.As(err, &fieldErrs) {
			return nil, huma.NewError(http.StatusBadRequest, fieldErrs.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update expense", err)
	}

	out := &UpdateExpenseOutput{}
	if updated != nil {
		apiExpense := expenseToAPI(*updated)
		out.Body.Expense = &apiExpense
	}
	return out, nil
}
