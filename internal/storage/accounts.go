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
	"github.com/carson-networks/cashflow-engine/internal/engine/fx"
	"github.com/carson-networks/cashflow-engine/internal/service"
)

type accountRow struct {
	ID              uuid.UUID       `db:"id"`
	Name            string          `db:"account_name"`
	CurrencyCode    string          `db:"currency_code"`
	StartingBalance decimal.Decimal `db:"starting_balance"`
	CreatedAt       time.Time       `db:"created_at"`
}

// Accounts implements service.AccountSource: every account with its resolved
// currency and the full list of transactions it owns.
func (s *Storage) Accounts(ctx context.Context) ([]service.AccountLedger, error) {
	currencies, err := s.CurrencyTable(ctx)
	if err != nil {
		return nil, err
	}

	accounts, err := s.accountIndex(ctx, currencies)
	if err != nil {
		return nil, err
	}

	rows, err := s.transactionRows(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	byAccount := make(map[uuid.UUID][]domain.Transaction, len(accounts))
	for _, row := range rows {
		tx, err := row.toTransaction()
		if err != nil {
			return nil, err
		}
		byAccount[row.AccountID] = append(byAccount[row.AccountID], tx)
	}

	result := make([]service.AccountLedger, 0, len(accounts))
	for _, account := range accounts {
		result = append(result, service.AccountLedger{
			Account:      account,
			Transactions: byAccount[account.ID],
		})
	}
	return result, nil
}

func (s *Storage) accountIndex(ctx context.Context, currencies fx.Table) (map[uuid.UUID]domain.Account, error) {
	q := psql.Select(
		sm.Columns("id", "account_name", "currency_code", "starting_balance", "created_at"),
		sm.From("accounts"),
		sm.OrderBy("account_name").Asc(),
	)
	rows, err := bob.All(ctx, s.exec, q, scan.StructMapper[accountRow]())
	if err != nil {
		return nil, err
	}

	index := make(map[uuid.UUID]domain.Account, len(rows))
	for _, row := range rows {
		currency, err := currencies.Lookup(row.CurrencyCode)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", row.ID, err)
		}
		index[row.ID] = domain.Account{
			ID:              row.ID,
			Name:            row.Name,
			StartingBalance: row.StartingBalance,
			Currency:        currency,
			CreatedAt:       row.CreatedAt,
		}
	}
	return index, nil
}
