package service

import (
	"github.com/sirupsen/logrus"
)

// Service holds all business logic services.
type Service struct {
	Balance    *BalanceService
	Projection *ProjectionService
}

// NewService creates a new Service wired to the given data sources.
func NewService(accounts AccountSource, ledger LedgerSource, templates TemplateSource, logger *logrus.Logger) *Service {
	projections := NewProjectionService(ledger, templates, logger)
	return &Service{
		Balance:    NewBalanceService(accounts, ledger, projections, logger),
		Projection: projections,
	}
}
