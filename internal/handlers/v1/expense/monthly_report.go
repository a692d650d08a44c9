package expense

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/clearspend/expense-server/internal/category"
	"github.com/clearspend/expense-server/internal/currency"
	"github.com/clearspend/expense-server/internal/report"
)

// MonthlyReportInput is the Huma input for the monthly report.
type MonthlyReportInput struct {
	Authorization string `header:"Authorization" doc:"Bearer session token"`
	Ref           string `query:"ref" doc:"Reference date (YYYY-MM-DD), defaults to today"`
}

// CategoryShare is one category's slice of the monthly total.
type CategoryShare struct {
	Category      string `json:"category" doc:"Category identifier"`
	Label         string `json:"label" doc:"Display label"`
	Color         string `json:"color" doc:"Display color (hex)"`
	Amount        string `json:"amount" doc:"Decimal amount spent in the category"`
	AmountDisplay string `json:"amountDisplay" doc:"Amount formatted with currency symbol"`
	Percent       string `json:"percent" doc:"Share of the monthly total, 0 to 100"`
}

// MonthlyReportResponseBody is the response body for the monthly report.
type MonthlyReportResponseBody struct {
	Month        string            `json:"month" doc:"Month and year, e.g. \"March 2024\""`
	Count        int               `json:"count" doc:"Number of expenses in the month"`
	Total        string            `json:"total" doc:"Decimal sum of the month's expenses"`
	TotalDisplay string            `json:"totalDisplay" doc:"Total formatted with currency symbol"`
	DailyAverage string            `json:"dailyAverage" doc:"Total divided by the elapsed days of the month"`
	Breakdown    map[string]string `json:"breakdown" doc:"Summed amount per category identifier, one key per category"`
	Shares       []CategoryShare   `json:"shares" doc:"Per-category shares, largest first"`
	Expenses     []Expense         `json:"expenses" doc:"The month's expenses, most recent first"`
}

// MonthlyReportOutput is the Huma output for the monthly report.
type MonthlyReportOutput struct {
	Body MonthlyReportResponseBody
}

// monthlyReporter is the interface for building monthly reports.
type monthlyReporter interface {
	MonthlyReport(ctx context.Context, userID uuid.UUID, ref time.Time) (report.Monthly, error)
}

// MonthlyReportHandler handles GET /v1/expense/report/monthly.
type MonthlyReportHandler struct {
	ExpenseService monthlyReporter
	Identity       identityResolver
	Now            func() time.Time
}

// NewMonthlyReportHandler creates a new MonthlyReportHandler.
func NewMonthlyReportHandler(svc monthlyReporter, identity identityResolver) *MonthlyReportHandler {
	return &MonthlyReportHandler{ExpenseService: svc, Identity: identity, Now: time.Now}
}

// Register registers the monthly report endpoint with the Huma API.
func (h *MonthlyReportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "monthly-report",
		Method:      http.MethodGet,
		Path:        "/v1/expense/report/monthly",
		Summary:     "Monthly report",
		Description: "Aggregates the authenticated user's expenses for the month of the reference date.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *MonthlyReportHandler) handle(ctx context.Context, input *MonthlyReportInput) (*MonthlyReportOutput, error) {
	ref := h.Now()
	if input.Ref != "" {
		parsed, err := time.Parse(dateLayout, input.Ref)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid ref date", err)
		}
		ref = parsed
	}

	userID := h.Identity.Identify(ctx, input.Authorization)

	monthly, err := h.ExpenseService.MonthlyReport(ctx, userID, ref)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build monthly report", err)
	}

	return &MonthlyReportOutput{Body: monthlyToAPI(monthly)}, nil
}

func monthlyToAPI(m report.Monthly) MonthlyReportResponseBody {
	breakdown := make(map[string]string, len(m.Breakdown))
	for cat, amount := range m.Breakdown {
		breakdown[cat.String()] = amount.String()
	}

	shares := make([]CategoryShare, 0, len(m.Shares))
	for _, s := range m.Shares {
		info := category.InfoFor(s.Category)
		shares = append(shares, CategoryShare{
			Category:      s.Category.String(),
			Label:         info.Label,
			Color:         info.Color,
			Amount:        s.Amount.String(),
			AmountDisplay: currency.Format(s.Amount),
			Percent:       s.Percent.StringFixed(1),
		})
	}

	return MonthlyReportResponseBody{
		Month:        m.Month.String() + " " + strconv.Itoa(m.Year),
		Count:        m.Count,
		Total:        m.Total.String(),
		TotalDisplay: currency.Format(m.Total),
		DailyAverage: m.DailyAverage.StringFixed(2),
		Breakdown:    breakdown,
		Shares:       shares,
		Expenses:     expensesToAPI(m.Expenses),
	}
}
