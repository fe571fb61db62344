package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/cashflow-engine/internal/domain"
)

type transactionRow struct {
	ID         uuid.UUID       `db:"id"`
	Name       string          `db:"transaction_name"`
	Type       int16           `db:"transaction_type"`
	AccountID  uuid.UUID       `db:"account_id"`
	CategoryID *uuid.UUID      `db:"category_id"`
	Amount     decimal.Decimal `db:"amount"`
	Date       time.Time       `db:"transaction_date"`
}

func (r transactionRow) toTransaction() (domain.Transaction, error) {
	if r.Type < int16(domain.TypeIncome) || r.Type > int16(domain.TypeIncomeTransfer) {
		return domain.Transaction{}, fmt.Errorf("storage: transaction %s has unknown transaction type %d", r.ID, r.Type)
	}
	return domain.Transaction{
		ID:         r.ID,
		Name:       r.Name,
		Type:       domain.TransactionType(r.Type),
		AccountID:  r.AccountID,
		CategoryID: r.CategoryID,
		Amount:     r.Amount,
		Date:       r.Date,
	}, nil
}

// TransactionsBetween implements service.LedgerSource: executed transactions
// in [from, to] joined with their owning account, currency and category.
func (s *Storage) TransactionsBetween(ctx context.Context, from, to time.Time) ([]domain.FullTransaction, error) {
	currencies, err := s.CurrencyTable(ctx)
	if err != nil {
		return nil, err
	}
	accounts, err := s.accountIndex(ctx, currencies)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryIndex(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.transactionRows(ctx, &from, &to)
	if err != nil {
		return nil, err
	}

	result := make([]domain.FullTransaction, len(rows))
	for i, row := range rows {
		tx, err := row.toTransaction()
		if err != nil {
			return nil, err
		}

		account, ok := accounts[row.AccountID]
		if !ok {
			return nil, fmt.Errorf("storage: transaction %s references unknown account %s", row.ID, row.AccountID)
		}

		var category *domain.Category
		if row.CategoryID != nil {
			c, ok := categories[*row.CategoryID]
			if !ok {
				return nil, fmt.Errorf("storage: transaction %s references unknown category %s", row.ID, *row.CategoryID)
			}
			category = &c
		}

		result[i] = domain.FullTransaction{
			Transaction: tx,
			Account:     account,
			Category:    category,
		}
	}
	return result, nil
}

func (s *Storage) transactionRows(ctx context.Context, from, to *time.Time) ([]transactionRow, error) {
	mods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns("id", "transaction_name", "transaction_type", "account_id", "category_id", "amount", "transaction_date"),
		sm.From("transactions"),
		sm.OrderBy("transaction_date").Asc(),
		sm.OrderBy("id").Asc(),
	}
	if from != nil {
		mods = append(mods, sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(*from))))
	}
	if to != nil {
		mods = append(mods, sm.Where(psql.Quote("transaction_date").LTE(psql.Arg(*to))))
	}

	return bob.All(ctx, s.exec, psql.Select(mods...), scan.StructMapper[transactionRow]())
}
