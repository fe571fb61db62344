package domain

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashflow-engine/internal/engine/fx"
)

// Account owns transactions and carries the currency its amounts are
// denominated in.
type Account struct {
	ID              uuid.UUID
	Name            string
	StartingBalance decimal.Decimal
	Currency        fx.Currency
	CreatedAt       time.Time
}

// ComputeBalance returns the account-currency balance after applying every
// transaction dated on or before asOf. Transfer legs count here: they move
// money in and out of this specific account.
func (a Account) ComputeBalance(transactions []Transaction, asOf time.Time) decimal.Decimal {
	balance := a.StartingBalance
	for _, tx := range transactions {
		if tx.Date.After(asOf) {
			continue
		}
		balance = balance.Add(tx.Amount.Mul(decimal.NewFromInt(int64(tx.Type.BalanceSign()))))
	}
	return balance
}
