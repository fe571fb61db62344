package balances

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashflow-engine/internal/engine/balance"
	"github.com/carson-networks/cashflow-engine/internal/logging"
)

// MonthBalancesInput is the Huma input for the month balances endpoint.
type MonthBalancesInput struct {
	From         string `query:"from" required:"true" doc:"First day of the range, YYYY-MM-DD"`
	To           string `query:"to" required:"true" doc:"Last day of the range, YYYY-MM-DD"`
	Kind         string `query:"kind" enum:"current,expected" default:"current" doc:"Aggregate the executed ledger (current) or the projections (expected)"`
	OnlyUpcoming bool   `query:"onlyUpcoming" doc:"Expected only: keep projections dated strictly after today"`
	Today        string `query:"today" doc:"Reference date for onlyUpcoming, YYYY-MM-DD, defaults to the server date"`
	Classify     string `query:"classify" enum:"expense,income" doc:"Keep only expense or income categories"`
}

// MonthBalancesResponseBody is the response body for the month balances
// endpoint.
type MonthBalancesResponseBody struct {
	BaseCurrency string          `json:"baseCurrency" doc:"Currency code all amounts are normalized into"`
	Months       []MonthBalances `json:"months" doc:"One entry per month in range, months without activity included"`
}

// MonthBalancesOutput is the Huma output for the month balances endpoint.
type MonthBalancesOutput struct {
	Body MonthBalancesResponseBody
}

// monthBalanceProvider is the service surface the month endpoint needs.
type monthBalanceProvider interface {
	CurrentByMonth(ctx context.Context, from, to time.Time) (balance.ByMonth, error)
	ExpectedByMonth(ctx context.Context, from, to, today time.Time, onlyUpcoming bool) (balance.ByMonth, error)
}

// MonthBalancesHandler handles GET /v1/balances/months.
type MonthBalancesHandler struct {
	BalanceService monthBalanceProvider
	BaseCurrency   string
}

// NewMonthBalancesHandler creates a new MonthBalancesHandler.
func NewMonthBalancesHandler(svc monthBalanceProvider, baseCurrency string) *MonthBalancesHandler {
	return &MonthBalancesHandler{BalanceService: svc, BaseCurrency: baseCurrency}
}

// Register registers the month balances endpoint with the Huma API.
func (h *MonthBalancesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-month-balances",
		Method:      http.MethodGet,
		Path:        "/v1/balances/months",
		Summary:     "Month balances",
		Description: "Returns per-month, per-category balance deltas in base currency, from the executed ledger or from projections.",
		Tags:        []string{"Balances"},
	}, h.handle)
}

func (h *MonthBalancesHandler) handle(ctx context.Context, input *MonthBalancesInput) (*MonthBalancesOutput, error) {
	logData := logging.GetLogData(ctx)

	from, err := parseDate("from", input.From)
	if err != nil {
		return nil, err
	}
	to, err := parseDate("to", input.To)
	if err != nil {
		return nil, err
	}

	today := time.Now()
	if input.Today != "" {
		today, err = parseDate("today", input.Today)
		if err != nil {
			return nil, err
		}
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("monthBalancesMs")
	}

	var months balance.ByMonth
	if input.Kind == "expected" {
		months, err = h.BalanceService.ExpectedByMonth(ctx, from, to, today, input.OnlyUpcoming)
	} else {
		months, err = h.BalanceService.CurrentByMonth(ctx, from, to)
	}
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to aggregate month balances", err)
	}

	if input.Classify != "" {
		months = balance.Classify(months, input.Classify == "income")
	}

	if logData != nil {
		logData.AddData("monthCount", len(months))
		logData.AddDump("monthBalances", months)
	}

	return &MonthBalancesOutput{
		Body: MonthBalancesResponseBody{
			BaseCurrency: h.BaseCurrency,
			Months:       toMonthBalances(months),
		},
	}, nil
}
