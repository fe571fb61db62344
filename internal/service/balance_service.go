package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/cashflow-engine/internal/domain"
	"github.com/carson-networks/cashflow-engine/internal/engine/balance"
	"github.com/carson-networks/cashflow-engine/internal/engine/fx"
)

// BalanceService aggregates executed and projected transactions into the
// per-month and per-day views the presentation layer consumes.
type BalanceService struct {
	accounts    AccountSource
	ledger      LedgerSource
	projections *ProjectionService
	logger      *logrus.Logger
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(accounts AccountSource, ledger LedgerSource, projections *ProjectionService, logger *logrus.Logger) *BalanceService {
	return &BalanceService{
		accounts:    accounts,
		ledger:      ledger,
		projections: projections,
		logger:      logger,
	}
}

// CurrentByMonth aggregates the executed ledger into month by category sums
// in base currency over [from, to].
func (s *BalanceService) CurrentByMonth(ctx context.Context, from, to time.Time) (balance.ByMonth, error) {
	transactions, err := s.ledger.TransactionsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return balance.ByMonthCategory(transactions, from, to)
}

// ExpectedByMonth aggregates projections over [from, to] the same way.
// With onlyUpcoming set, only projections dated strictly after today count.
func (s *BalanceService) ExpectedByMonth(ctx context.Context, from, to, today time.Time, onlyUpcoming bool) (balance.ByMonth, error) {
	projections, err := s.projections.Generate(ctx, from, to)
	if err != nil {
		return nil, err
	}

	if onlyUpcoming {
		upcoming := projections[:0:0]
		for _, p := range projections {
			if p.Date.After(today) {
				upcoming = append(upcoming, p)
			}
		}
		projections = upcoming
	}

	return balance.ByMonthCategory(projections, from, to)
}

// ClassifiedByMonth splits a month aggregation into the expense or income
// view.
func (s *BalanceService) ClassifiedByMonth(months balance.ByMonth, income bool) balance.ByMonth {
	return balance.Classify(months, income)
}

// ByDay produces the day-by-day running balance over [from, to]. The seed is
// the base-currency sum of every account's balance the day before from. Days
// up to and including realityDate replay the executed ledger; later days
// apply projections generated over (realityDate, to].
func (s *BalanceService) ByDay(ctx context.Context, from, to, realityDate time.Time) (map[time.Time]decimal.Decimal, error) {
	seed, err := s.seedBalance(ctx, from)
	if err != nil {
		return nil, err
	}

	executed, err := s.ledger.TransactionsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var projected []domain.FullTransaction
	if realityDate.Before(to) {
		projected, err = s.projections.Generate(ctx, realityDate.AddDate(0, 0, 1), to)
		if err != nil {
			return nil, err
		}
	}

	return balance.ByDay(seed, executed, projected, from, to, realityDate)
}

func (s *BalanceService) seedBalance(ctx context.Context, from time.Time) (decimal.Decimal, error) {
	ledgers, err := s.accounts.Accounts(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	asOf := from.AddDate(0, 0, -1)
	seed := decimal.Zero
	for _, al := range ledgers {
		accountBalance := al.Account.ComputeBalance(al.Transactions, asOf)
		base, err := fx.ToBase(accountBalance, al.Account.Currency)
		if err != nil {
			return decimal.Zero, err
		}
		seed = seed.Add(base)
	}
	return seed, nil
}
