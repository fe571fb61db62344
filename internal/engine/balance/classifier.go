package balance

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashflow-engine/internal/domain"
)

// Classify filters a month aggregation down to categories whose default type
// matches the requested side. Calling it once with income true and once with
// income false partitions the input: every category lands in exactly one of
// the two results.
func Classify(months ByMonth, income bool) ByMonth {
	want := domain.CategoryExpense
	if income {
		want = domain.CategoryIncome
	}

	out := make(ByMonth, len(months))
	for month, categories := range months {
		filtered := make(map[domain.Category]decimal.Decimal)
		for category, value := range categories {
			if category.DefaultType == want {
				filtered[category] = value
			}
		}
		out[month] = filtered
	}
	return out
}
