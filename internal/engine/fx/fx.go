package fx

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrBadRate reports a currency whose conversion rate is zero or negative.
	ErrBadRate = errors.New("fx: currency rate must be positive")
	// ErrUnknownCurrency reports a currency code missing from the table.
	ErrUnknownCurrency = errors.New("fx: unknown currency")
)

// Currency is a currency code with its conversion rate against the base
// currency. RateToBase is how many units of this currency one base unit buys,
// so converting an amount to base units divides by the rate.
type Currency struct {
	Code        string
	RateToBase  decimal.Decimal
	LastUpdated time.Time
}

// ToBase converts amount from c into base currency units.
func ToBase(amount decimal.Decimal, c Currency) (decimal.Decimal, error) {
	if c.RateToBase.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("%w: %q has rate %s", ErrBadRate, c.Code, c.RateToBase)
	}
	return amount.Div(c.RateToBase), nil
}

// FromBase converts amount from base currency units into c.
func FromBase(amount decimal.Decimal, c Currency) (decimal.Decimal, error) {
	if c.RateToBase.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("%w: %q has rate %s", ErrBadRate, c.Code, c.RateToBase)
	}
	return amount.Mul(c.RateToBase), nil
}

// Table is an immutable code to Currency lookup built once per computation.
type Table struct {
	byCode map[string]Currency
}

// NewTable builds a lookup table from a currency snapshot. Later duplicates
// of a code win, matching the upsert order of the currency store.
func NewTable(currencies []Currency) Table {
	byCode := make(map[string]Currency, len(currencies))
	for _, c := range currencies {
		byCode[c.Code] = c
	}
	return Table{byCode: byCode}
}

// Lookup returns the currency for code. A missing code is a configuration
// error; callers must never fall back to a rate of 1.
func (t Table) Lookup(code string) (Currency, error) {
	c, ok := t.byCode[code]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return c, nil
}
