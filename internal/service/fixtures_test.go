package service

import (
	"context"
	"io"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/cashflow-engine/internal/domain"
	"github.com/carson-networks/cashflow-engine/internal/engine/fx"
	"github.com/carson-networks/cashflow-engine/internal/engine/recurrence"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func usd() fx.Currency {
	return fx.Currency{Code: "USD", RateToBase: decimal.NewFromInt(1)}
}

func expenseCategory(name string) domain.Category {
	return domain.Category{
		ID:          uuid.Must(uuid.NewV4()),
		Name:        name,
		DefaultType: domain.CategoryExpense,
	}
}

func template(cat domain.Category, rec recurrence.Type, amount string, start, end time.Time) domain.FullFutureTransaction {
	return domain.FullFutureTransaction{
		FutureTransaction: domain.FutureTransaction{
			ID:           uuid.Must(uuid.NewV4()),
			Name:         "template",
			Type:         domain.TypeExpense,
			CategoryID:   cat.ID,
			Amount:       decimal.RequireFromString(amount),
			CurrencyCode: "USD",
			StartDate:    start,
			EndDate:      end,
			Recurrence:   rec,
			Stride:       1,
		},
		Category: cat,
		Currency: usd(),
	}
}

func executed(cat domain.Category, txType domain.TransactionType, amount string, day time.Time) domain.FullTransaction {
	id := cat.ID
	return domain.FullTransaction{
		Transaction: domain.Transaction{
			ID:         uuid.Must(uuid.NewV4()),
			Name:       "tx",
			Type:       txType,
			AccountID:  uuid.Must(uuid.NewV4()),
			CategoryID: &id,
			Amount:     decimal.RequireFromString(amount),
			Date:       day,
		},
		Account:  domain.Account{ID: uuid.Must(uuid.NewV4()), Currency: usd()},
		Category: &cat,
	}
}

// mockLedgerSource is a hand-written testify mock for LedgerSource.
type mockLedgerSource struct {
	mock.Mock
}

func (m *mockLedgerSource) TransactionsBetween(ctx context.Context, from, to time.Time) ([]domain.FullTransaction, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FullTransaction), args.Error(1)
}

type mockTemplateSource struct {
	mock.Mock
}

func (m *mockTemplateSource) Templates(ctx context.Context) ([]domain.FullFutureTransaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FullFutureTransaction), args.Error(1)
}

type mockAccountSource struct {
	mock.Mock
}

func (m *mockAccountSource) Accounts(ctx context.Context) ([]AccountLedger, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]AccountLedger), args.Error(1)
}
