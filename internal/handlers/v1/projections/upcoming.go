// Package projections exposes the synthesized projected-transaction listings.
package projections

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashflow-engine/internal/domain"
	"github.com/carson-networks/cashflow-engine/internal/logging"
)

const dateLayout = "2006-01-02"

// ProjectedTransaction is one expected future event. These values are
// synthesized per query and never persisted.
type ProjectedTransaction struct {
	Name       string `json:"name" doc:"Template name"`
	Type       string `json:"type" doc:"Transaction type"`
	CategoryID string `json:"categoryID" doc:"Category UUID"`
	Amount     string `json:"amount" doc:"Amount in the template currency, negative when a continuous period is overspent"`
	Currency   string `json:"currency" doc:"Template currency code"`
	Date       string `json:"date" doc:"Projected date, YYYY-MM-DD"`
}

// UpcomingInput is the Huma input for the upcoming projections endpoint.
type UpcomingInput struct {
	From string `query:"from" required:"true" doc:"First day of the window, YYYY-MM-DD"`
	To   string `query:"to" required:"true" doc:"Last day of the window, YYYY-MM-DD"`
}

// UpcomingResponseBody is the response body for the upcoming projections
// endpoint.
type UpcomingResponseBody struct {
	Projections []ProjectedTransaction `json:"projections" doc:"Projections in the window, sorted by date"`
}

// UpcomingOutput is the Huma output for the upcoming projections endpoint.
type UpcomingOutput struct {
	Body UpcomingResponseBody
}

// upcomingProvider is the service surface this endpoint needs.
type upcomingProvider interface {
	Upcoming(ctx context.Context, from, to time.Time) ([]domain.FullTransaction, error)
}

// UpcomingHandler handles GET /v1/projections/upcoming.
type UpcomingHandler struct {
	ProjectionService upcomingProvider
}

// NewUpcomingHandler creates a new UpcomingHandler.
func NewUpcomingHandler(svc upcomingProvider) *UpcomingHandler {
	return &UpcomingHandler{ProjectionService: svc}
}

// Register registers the upcoming projections endpoint with the Huma API.
func (h *UpcomingHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-upcoming-projections",
		Method:      http.MethodGet,
		Path:        "/v1/projections/upcoming",
		Summary:     "Upcoming projections",
		Description: "Returns the projected transactions expected inside the window, for pending-transaction listings.",
		Tags:        []string{"Projections"},
	}, h.handle)
}

func (h *UpcomingHandler) handle(ctx context.Context, input *UpcomingInput) (*UpcomingOutput, error) {
	logData := logging.GetLogData(ctx)

	from, err := time.Parse(dateLayout, input.From)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid from", err)
	}
	to, err := time.Parse(dateLayout, input.To)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid to", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("upcomingProjectionsMs")
	}
	projections, err := h.ProjectionService.Upcoming(ctx, from, to)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to generate projections", err)
	}

	if logData != nil {
		logData.AddData("projectionCount", len(projections))
	}

	resp := UpcomingResponseBody{
		Projections: make([]ProjectedTransaction, len(projections)),
	}
	for i, p := range projections {
		categoryID := ""
		if p.CategoryID != nil {
			categoryID = p.CategoryID.String()
		}
		resp.Projections[i] = ProjectedTransaction{
			Name:       p.Name,
			Type:       p.Type.String(),
			CategoryID: categoryID,
			Amount:     p.Amount.String(),
			Currency:   p.Account.Currency.Code,
			Date:       p.Date.Format(dateLayout),
		}
	}

	return &UpcomingOutput{Body: resp}, nil
}
