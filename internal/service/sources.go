package service

import (
	"context"
	"time"

	"github.com/carson-networks/cashflow-engine/internal/domain"
)

// AccountLedger pairs an account with every transaction it owns, which is
// what balance seeding needs.
type AccountLedger struct {
	Account      domain.Account
	Transactions []domain.Transaction
}

// AccountSource yields all accounts with their currency and linked
// transactions.
type AccountSource interface {
	Accounts(ctx context.Context) ([]AccountLedger, error)
}

// LedgerSource yields executed transactions joined with account, currency and
// category, restricted to a date window (inclusive on both ends).
type LedgerSource interface {
	TransactionsBetween(ctx context.Context, from, to time.Time) ([]domain.FullTransaction, error)
}

// TemplateSource yields all recurring templates joined with currency and
// category.
type TemplateSource interface {
	Templates(ctx context.Context) ([]domain.FullFutureTransaction, error)
}
