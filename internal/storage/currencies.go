package storage

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/cashflow-engine/internal/engine/fx"
)

type currencyRow struct {
	Code        string          `db:"code"`
	RateToBase  decimal.Decimal `db:"rate_to_base"`
	LastUpdated time.Time       `db:"last_updated"`
}

// CurrencyTable loads the full currency snapshot into an immutable lookup.
func (s *Storage) CurrencyTable(ctx context.Context) (fx.Table, error) {
	q := psql.Select(
		sm.Columns("code", "rate_to_base", "last_updated"),
		sm.From("currencies"),
	)
	rows, err := bob.All(ctx, s.exec, q, scan.StructMapper[currencyRow]())
	if err != nil {
		return fx.Table{}, err
	}

	currencies := make([]fx.Currency, len(rows))
	for i, row := range rows {
		currencies[i] = fx.Currency{
			Code:        row.Code,
			RateToBase:  row.RateToBase,
			LastUpdated: row.LastUpdated,
		}
	}
	return fx.NewTable(currencies), nil
}
