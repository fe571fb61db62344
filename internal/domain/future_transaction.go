package domain

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashflow-engine/internal/engine/fx"
	"github.com/carson-networks/cashflow-engine/internal/engine/recurrence"
)

// FutureTransaction is a recurring template describing an expected monetary
// event. Amount is the full per-period amount in the template currency. The
// validate tags encode the invariants the engine assumes already hold; the
// service layer checks them before any template reaches the engine.
type FutureTransaction struct {
	ID           uuid.UUID
	Name         string
	Type         TransactionType
	CategoryID   uuid.UUID
	Amount       decimal.Decimal `validate:"gt=0"`
	CurrencyCode string          `validate:"required"`
	StartDate    time.Time       `validate:"required"`
	EndDate      time.Time       `validate:"gtfield=StartDate"`
	Recurrence   recurrence.Type
	Stride       int `validate:"gte=1"`
}

// FullFutureTransaction joins a template with its category and resolved
// currency, which is everything projection generation needs.
type FullFutureTransaction struct {
	FutureTransaction
	Category Category
	Currency fx.Currency
}
