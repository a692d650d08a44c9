package expense

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/clearspend/expense-server/internal/category"
	"github.com/clearspend/expense-server/internal/report"
	"github.com/clearspend/expense-server/internal/service"
	"github.com/clearspend/expense-server/internal/validate"
)

type mockExpenseAdder struct {
	mock.Mock
}

func (m *mockExpenseAdder) Add(ctx context.Context, userID uuid.UUID, input service.ExpenseInput) (*report.Expense, error) {
	args := m.Called(ctx, userID, input)
	created, _ := args.Get(0).(*report.Expense)
	return created, args.Error(1)
}

func newCreateTestAPI(t *testing.T, svc expenseAdder, identity identityResolver) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateExpenseHandler(svc, identity).Register(api)
	return api
}

// -- parseCreateExpenseBody unit tests --

func TestParseCreateExpenseBody_Valid(t *testing.T) {
	parsed, err := parseCreateExpenseBody(CreateExpenseBody{
		Amount:      "49.99",
		Category:    "transport",
		Date:        "2024-03-10",
		Description: "taxi",
	})
	assert.NoError(t, err)
	assert.True(t, parsed.Amount.Equal(mustDecimal(t, "49.99")))
	assert.Equal(t, category.Transport, parsed.Category)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), parsed.Date)
	assert.Equal(t, "taxi", parsed.Description)
}

func TestParseCreateExpenseBody_InvalidAmount(t *testing.T) {
	_, err := parseCreateExpenseBody(CreateExpenseBody{
		Amount:   "not-a-number",
		Category: "food",
		Date:     "2024-03-10",
	})
	assert.Error(t, err)
}

func TestParseCreateExpenseBody_InvalidCategory(t *testing.T) {
	_, err := parseCreateExpenseBody(CreateExpenseBody{
		Amount:   "10",
		Category: "groceries",
		Date:     "2024-03-10",
	})
	assert.Error(t, err)
}

func TestParseCreateExpenseBody_InvalidDate(t *testing.T) {
	_, err := parseCreateExpenseBody(CreateExpenseBody{
		Amount:   "10",
		Category: "food",
		Date:     "10/03/2024",
	})
	assert.Error(t, err)
}

// -- HTTP integration tests --

func TestHTTP_CreateExpense_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	created := testReportExpense("49.99", category.Transport, date)

	mockSvc := new(mockExpenseAdder)
	mockSvc.On("Add", mock.Anything, userID, mock.MatchedBy(func(in service.ExpenseInput) bool {
		return in.Amount.Equal(created.Amount) && in.Category == category.Transport
	})).Return(&created, nil)

	resp := newCreateTestAPI(t, mockSvc, &stubIdentity{userID: userID}).Post("/v1/expense",
		"Authorization: Bearer token",
		CreateExpenseBody{
			Amount:   "49.99",
			Category: "transport",
			Date:     "2024-03-10",
		})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateExpenseResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotNil(t, body.Expense)
	assert.Equal(t, created.ID.String(), body.Expense.ID)
	assert.Equal(t, "49.99", body.Expense.Amount)
	assert.Equal(t, "transport", body.Expense.Category)
	assert.Equal(t, "2024-03-10", body.Expense.Date)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateExpense_Unauthenticated(t *testing.T) {
	mockSvc := new(mockExpenseAdder)
	mockSvc.On("Add", mock.Anything, uuid.Nil, mock.Anything).Return(nil, nil)

	resp := newCreateTestAPI(t, mockSvc, &stubIdentity{}).Post("/v1/expense",
		CreateExpenseBody{
			Amount:   "10",
			Category: "food",
			Date:     "2024-03-10",
		})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateExpenseResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Nil(t, body.Expense)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateExpense_ValidationError(t *testing.T) {
	mockSvc := new(mockExpenseAdder)
	mockSvc.On("Add", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, validate.FieldErrors{"amount": "Please enter a valid amount"})

	resp := newCreateTestAPI(t, mockSvc, &stubIdentity{userID: uuid.Must(uuid.NewV4())}).Post("/v1/expense",
		CreateExpenseBody{
			Amount:   "-5",
			Category: "food",
			Date:     "2024-03-10",
		})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_CreateExpense_BadCategory(t *testing.T) {
	mockSvc := new(mockExpenseAdder)

	resp := newCreateTestAPI(t, mockSvc, &stubIdentity{}).Post("/v1/expense",
		map[string]any{
			"amount":   "10",
			"category": "food",
			"date":     "not-a-date",
		})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Add")
}
