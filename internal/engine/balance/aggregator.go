package balance

import (
	"time"

	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashflow-engine/internal/domain"
	"github.com/carson-networks/cashflow-engine/internal/engine/fx"
)

// ByMonth maps the first day of each month to the net base-currency delta per
// category for that month.
type ByMonth map[time.Time]map[domain.Category]decimal.Decimal

// ByMonthCategory buckets transactions into month by category sums in base
// currency. Every month in [from, to] gets an entry, even when nothing falls
// into it. Transactions without a category (transfer legs) are excluded, and
// transfer types contribute zero through their aggregation sign. Transactions
// dated outside the range are ignored.
func ByMonthCategory(transactions []domain.FullTransaction, from, to time.Time) (ByMonth, error) {
	result := make(ByMonth)
	last := monthOf(to)
	for month := monthOf(from); !month.After(last); month = month.AddDate(0, 1, 0) {
		result[month] = make(map[domain.Category]decimal.Decimal)
	}

	for _, tx := range transactions {
		if tx.Category == nil {
			continue
		}
		bucket, ok := result[monthOf(tx.Date)]
		if !ok {
			continue
		}
		value, err := fx.ToBase(tx.SignedAmount(), tx.Account.Currency)
		if err != nil {
			return nil, err
		}
		bucket[*tx.Category] = bucket[*tx.Category].Add(value)
	}
	return result, nil
}

func monthOf(t time.Time) time.Time {
	return now.New(t).BeginningOfMonth()
}

func dayOf(t time.Time) time.Time {
	return now.New(t).BeginningOfDay()
}
