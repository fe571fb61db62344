package projection

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashflow-engine/internal/domain"
	"github.com/carson-networks/cashflow-engine/internal/engine/fx"
	"github.com/carson-networks/cashflow-engine/internal/engine/recurrence"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func usd() fx.Currency {
	return fx.Currency{Code: "USD", RateToBase: decimal.NewFromInt(1)}
}

// eur converts 2:1 against base, so EUR 9 is 4.5 base units.
func eur() fx.Currency {
	return fx.Currency{Code: "EUR", RateToBase: decimal.NewFromInt(2)}
}

func expenseCategory(name string) domain.Category {
	return domain.Category{
		ID:          uuid.Must(uuid.NewV4()),
		Name:        name,
		DefaultType: domain.CategoryExpense,
	}
}

func template(category domain.Category, currency fx.Currency, amount string, rec recurrence.Type, start, end time.Time) domain.FullFutureTransaction {
	return domain.FullFutureTransaction{
		FutureTransaction: domain.FutureTransaction{
			ID:           uuid.Must(uuid.NewV4()),
			Name:         category.Name + " budget",
			Type:         domain.TypeExpense,
			CategoryID:   category.ID,
			Amount:       decimal.RequireFromString(amount),
			CurrencyCode: currency.Code,
			StartDate:    start,
			EndDate:      end,
			Recurrence:   rec,
			Stride:       1,
		},
		Category: category,
		Currency: currency,
	}
}

func executedExpense(category domain.Category, currency fx.Currency, amount string, day time.Time) domain.FullTransaction {
	categoryID := category.ID
	categoryCopy := category
	return domain.FullTransaction{
		Transaction: domain.Transaction{
			ID:         uuid.Must(uuid.NewV4()),
			Name:       "spent on " + category.Name,
			Type:       domain.TypeExpense,
			AccountID:  uuid.Must(uuid.NewV4()),
			CategoryID: &categoryID,
			Amount:     decimal.RequireFromString(amount),
			Date:       day,
		},
		Account:  domain.Account{ID: uuid.Must(uuid.NewV4()), Currency: currency},
		Category: &categoryCopy,
	}
}
