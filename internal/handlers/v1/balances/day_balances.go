package balances

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashflow-engine/internal/logging"
)

// DayBalancesInput is the Huma input for the day balances endpoint.
type DayBalancesInput struct {
	From        string `query:"from" required:"true" doc:"First day of the range, YYYY-MM-DD"`
	To          string `query:"to" required:"true" doc:"Last day of the range, YYYY-MM-DD"`
	RealityDate string `query:"realityDate" doc:"Cutoff: real ledger up to and including this day, projections after, YYYY-MM-DD, defaults to the server date"`
}

// DayBalancesResponseBody is the response body for the day balances endpoint.
type DayBalancesResponseBody struct {
	BaseCurrency string       `json:"baseCurrency" doc:"Currency code all balances are normalized into"`
	Days         []DayBalance `json:"days" doc:"One entry per day in range, in date order"`
}

// DayBalancesOutput is the Huma output for the day balances endpoint.
type DayBalancesOutput struct {
	Body DayBalancesResponseBody
}

// dayBalanceProvider is the service surface the day endpoint needs.
type dayBalanceProvider interface {
	ByDay(ctx context.Context, from, to, realityDate time.Time) (map[time.Time]decimal.Decimal, error)
}

// DayBalancesHandler handles GET /v1/balances/days.
type DayBalancesHandler struct {
	BalanceService dayBalanceProvider
	BaseCurrency   string
}

// NewDayBalancesHandler creates a new DayBalancesHandler.
func NewDayBalancesHandler(svc dayBalanceProvider, baseCurrency string) *DayBalancesHandler {
	return &DayBalancesHandler{BalanceService: svc, BaseCurrency: baseCurrency}
}

// Register registers the day balances endpoint with the Huma API.
func (h *DayBalancesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-day-balances",
		Method:      http.MethodGet,
		Path:        "/v1/balances/days",
		Summary:     "Day balances",
		Description: "Returns the day-by-day running balance in base currency, switching from the real ledger to projections after the reality date.",
		Tags:        []string{"Balances"},
	}, h.handle)
}

func (h *DayBalancesHandler) handle(ctx context.Context, input *DayBalancesInput) (*DayBalancesOutput, error) {
	logData := logging.GetLogData(ctx)

	from, err := parseDate("from", input.From)
	if err != nil {
		return nil, err
	}
	to, err := parseDate("to", input.To)
	if err != nil {
		return nil, err
	}

	realityDate := time.Now()
	if input.RealityDate != "" {
		realityDate, err = parseDate("realityDate", input.RealityDate)
		if err != nil {
			return nil, err
		}
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("dayBalancesMs")
	}
	days, err := h.BalanceService.ByDay(ctx, from, to, realityDate)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to aggregate day balances", err)
	}

	if logData != nil {
		logData.AddData("dayCount", len(days))
	}

	return &DayBalancesOutput{
		Body: DayBalancesResponseBody{
			BaseCurrency: h.BaseCurrency,
			Days:         toDayBalances(days),
		},
	}, nil
}
