package domain

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes income, expense and the two transfer legs.
type TransactionType int8

const (
	TypeIncome TransactionType = iota
	TypeExpense
	TypeExpenseTransfer
	TypeIncomeTransfer
)

// AggregationSign is the sign a transaction of this type contributes to
// category and cash-flow aggregates. Transfers shuffle money between accounts
// and net to zero at the aggregate level.
func (t TransactionType) AggregationSign() int {
	switch t {
	case TypeIncome:
		return 1
	case TypeExpense:
		return -1
	case TypeExpenseTransfer, TypeIncomeTransfer:
		return 0
	}
	panic(fmt.Sprintf("domain: unknown transaction type %d", t))
}

// BalanceSign is the sign applied when computing a single account's balance,
// where transfer legs do move money in and out.
func (t TransactionType) BalanceSign() int {
	switch t {
	case TypeIncome, TypeIncomeTransfer:
		return 1
	case TypeExpense, TypeExpenseTransfer:
		return -1
	}
	panic(fmt.Sprintf("domain: unknown transaction type %d", t))
}

func (t TransactionType) String() string {
	switch t {
	case TypeIncome:
		return "income"
	case TypeExpense:
		return "expense"
	case TypeExpenseTransfer:
		return "expense-transfer"
	case TypeIncomeTransfer:
		return "income-transfer"
	}
	panic(fmt.Sprintf("domain: unknown transaction type %d", t))
}

// Transaction is an executed ledger entry. Amount is stored positive; the
// direction comes from Type.
type Transaction struct {
	ID         uuid.UUID
	Name       string
	Type       TransactionType
	AccountID  uuid.UUID
	CategoryID *uuid.UUID
	Amount     decimal.Decimal
	Date       time.Time
}

// SignedAmount is the amount with the aggregation sign applied, still in the
// owning account's currency.
func (t Transaction) SignedAmount() decimal.Decimal {
	return t.Amount.Mul(decimal.NewFromInt(int64(t.Type.AggregationSign())))
}

// FullTransaction joins a transaction with its owning account (carrying the
// account currency) and category, which is everything the engine needs to
// aggregate it. Projections synthesized by the engine reuse this shape with a
// zero ID, a zero account except for the template currency, and an amount
// that may be negative after reconciliation.
type FullTransaction struct {
	Transaction
	Account  Account
	Category *Category
}
