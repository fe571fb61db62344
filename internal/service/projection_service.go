package service

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/cashflow-engine/internal/domain"
	"github.com/carson-networks/cashflow-engine/internal/engine/projection"
)

// ProjectionService synthesizes projected transactions from recurring
// templates and the executed ledger.
type ProjectionService struct {
	ledger    LedgerSource
	templates TemplateSource
	logger    *logrus.Logger
}

// NewProjectionService creates a new ProjectionService.
func NewProjectionService(ledger LedgerSource, templates TemplateSource, logger *logrus.Logger) *ProjectionService {
	return &ProjectionService{
		ledger:    ledger,
		templates: templates,
		logger:    logger,
	}
}

// Generate returns every projection inside [from, to]: discrete occurrences
// plus reconciled continuous periods. Continuous reconciliation needs the
// executed ledger back to the earliest overlapping template start, so the
// ledger fetch window can extend before from.
func (s *ProjectionService) Generate(ctx context.Context, from, to time.Time) ([]domain.FullTransaction, error) {
	templates, err := s.templates.Templates(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateTemplates(templates); err != nil {
		return nil, err
	}

	projections := projection.Discrete(templates, from, to)

	ledgerFrom, needed := continuousLedgerWindow(templates, from, to)
	if needed {
		executed, err := s.ledger.TransactionsBetween(ctx, ledgerFrom, to)
		if err != nil {
			return nil, err
		}
		continuous, err := projection.Continuous(templates, executed, from, to)
		if err != nil {
			return nil, err
		}
		projections = append(projections, continuous...)
	}

	s.logger.WithFields(logrus.Fields{
		"templateCount":   len(templates),
		"projectionCount": len(projections),
	}).Debug("ProjectionService.Generate")

	return projections, nil
}

// Upcoming returns the projections inside [from, to] sorted by date, for
// pending-transaction listings.
func (s *ProjectionService) Upcoming(ctx context.Context, from, to time.Time) ([]domain.FullTransaction, error) {
	projections, err := s.Generate(ctx, from, to)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(projections, func(i, j int) bool {
		return projections[i].Date.Before(projections[j].Date)
	})
	return projections, nil
}

// continuousLedgerWindow returns the start of the ledger window continuous
// reconciliation needs: the earliest start date among continuous templates
// overlapping [from, to]. The second return is false when no continuous
// template overlaps, so the ledger fetch can be skipped entirely.
func continuousLedgerWindow(templates []domain.FullFutureTransaction, from, to time.Time) (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, tpl := range templates {
		if !tpl.Recurrence.Continuous() {
			continue
		}
		if tpl.EndDate.Before(from) || tpl.StartDate.After(to) {
			continue
		}
		if !found || tpl.StartDate.Before(earliest) {
			earliest = tpl.StartDate
		}
		found = true
	}
	return earliest, found
}
