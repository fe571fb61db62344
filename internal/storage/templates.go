package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/cashflow-engine/internal/domain"
	"github.com/carson-networks/cashflow-engine/internal/engine/recurrence"
)

type templateRow struct {
	ID           uuid.UUID       `db:"id"`
	Name         string          `db:"template_name"`
	Type         int16           `db:"transaction_type"`
	CategoryID   uuid.UUID       `db:"category_id"`
	Amount       decimal.Decimal `db:"amount"`
	CurrencyCode string          `db:"currency_code"`
	StartDate    time.Time       `db:"start_date"`
	EndDate      time.Time       `db:"end_date"`
	Recurrence   int16           `db:"recurrence"`
	Stride       int             `db:"stride"`
}

// toFutureTransaction decodes a template row, rejecting enum values outside
// the closed variant sets. The engine's mapping switches panic on unknown
// variants, so a bad row must surface here as an error instead.
func (r templateRow) toFutureTransaction() (domain.FutureTransaction, error) {
	if r.Type < int16(domain.TypeIncome) || r.Type > int16(domain.TypeIncomeTransfer) {
		return domain.FutureTransaction{}, fmt.Errorf("storage: template %s has unknown transaction type %d", r.ID, r.Type)
	}
	if r.Recurrence < int16(recurrence.None) || r.Recurrence > int16(recurrence.YearlyContinuous) {
		return domain.FutureTransaction{}, fmt.Errorf("storage: template %s has unknown recurrence %d", r.ID, r.Recurrence)
	}
	return domain.FutureTransaction{
		ID:           r.ID,
		Name:         r.Name,
		Type:         domain.TransactionType(r.Type),
		CategoryID:   r.CategoryID,
		Amount:       r.Amount,
		CurrencyCode: r.CurrencyCode,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Recurrence:   recurrence.Type(r.Recurrence),
		Stride:       r.Stride,
	}, nil
}

// Templates implements service.TemplateSource: every recurring template
// joined with its category and resolved currency.
func (s *Storage) Templates(ctx context.Context) ([]domain.FullFutureTransaction, error) {
	currencies, err := s.CurrencyTable(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryIndex(ctx)
	if err != nil {
		return nil, err
	}

	q := psql.Select(
		sm.Columns("id", "template_name", "transaction_type", "category_id", "amount",
			"currency_code", "start_date", "end_date", "recurrence", "stride"),
		sm.From("future_transactions"),
		sm.OrderBy("start_date").Asc(),
		sm.OrderBy("id").Asc(),
	)
	rows, err := bob.All(ctx, s.exec, q, scan.StructMapper[templateRow]())
	if err != nil {
		return nil, err
	}

	result := make([]domain.FullFutureTransaction, len(rows))
	for i, row := range rows {
		tpl, err := row.toFutureTransaction()
		if err != nil {
			return nil, err
		}
		currency, err := currencies.Lookup(row.CurrencyCode)
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", row.ID, err)
		}
		category, ok := categories[row.CategoryID]
		if !ok {
			return nil, fmt.Errorf("storage: template %s references unknown category %s", row.ID, row.CategoryID)
		}

		result[i] = domain.FullFutureTransaction{
			FutureTransaction: tpl,
			Category:          category,
			Currency:          currency,
		}
	}
	return result, nil
}
