package balance

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashflow-engine/internal/domain"
	"github.com/carson-networks/cashflow-engine/internal/engine/fx"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func usd() fx.Currency {
	return fx.Currency{Code: "USD", RateToBase: decimal.NewFromInt(1)}
}

func eur() fx.Currency {
	return fx.Currency{Code: "EUR", RateToBase: decimal.NewFromInt(2)}
}

func category(name string, defaultType domain.CategoryType) domain.Category {
	return domain.Category{
		ID:          uuid.Must(uuid.NewV4()),
		Name:        name,
		DefaultType: defaultType,
	}
}

func fullTx(cat *domain.Category, currency fx.Currency, txType domain.TransactionType, amount string, day time.Time) domain.FullTransaction {
	var categoryID *uuid.UUID
	if cat != nil {
		id := cat.ID
		categoryID = &id
	}
	return domain.FullTransaction{
		Transaction: domain.Transaction{
			ID:         uuid.Must(uuid.NewV4()),
			Name:       "tx",
			Type:       txType,
			AccountID:  uuid.Must(uuid.NewV4()),
			CategoryID: categoryID,
			Amount:     decimal.RequireFromString(amount),
			Date:       day,
		},
		Account:  domain.Account{ID: uuid.Must(uuid.NewV4()), Currency: currency},
		Category: cat,
	}
}
