// Package balances exposes the engine's aggregated balance views over HTTP.
// The endpoints are read only; all writes to the ledger happen elsewhere.
package balances

import (
	"net/http"
	"sort"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashflow-engine/internal/domain"
	"github.com/carson-networks/cashflow-engine/internal/engine/balance"
)

const dateLayout = "2006-01-02"

func parseDate(name, value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid "+name, err)
	}
	return parsed, nil
}

// CategoryBalance is one category's net delta within a month.
type CategoryBalance struct {
	CategoryID string `json:"categoryID" doc:"Category UUID"`
	Name       string `json:"name" doc:"Category name"`
	Type       string `json:"type" enum:"expense,income" doc:"Category default type"`
	Amount     string `json:"amount" doc:"Signed net delta in base currency"`
}

// MonthBalances is the per-category breakdown for one month.
type MonthBalances struct {
	Month      string            `json:"month" doc:"First day of the month, YYYY-MM-DD"`
	Categories []CategoryBalance `json:"categories" doc:"Per-category deltas, sorted by category name"`
}

// toMonthBalances flattens the engine's month map into a sorted response
// shape so repeated queries serialize identically.
func toMonthBalances(months balance.ByMonth) []MonthBalances {
	out := make([]MonthBalances, 0, len(months))
	for month, categories := range months {
		entry := MonthBalances{
			Month:      month.Format(dateLayout),
			Categories: make([]CategoryBalance, 0, len(categories)),
		}
		for category, value := range categories {
			categoryType := "expense"
			if category.DefaultType == domain.CategoryIncome {
				categoryType = "income"
			}
			entry.Categories = append(entry.Categories, CategoryBalance{
				CategoryID: category.ID.String(),
				Name:       category.Name,
				Type:       categoryType,
				Amount:     value.String(),
			})
		}
		sort.Slice(entry.Categories, func(i, j int) bool {
			if entry.Categories[i].Name != entry.Categories[j].Name {
				return entry.Categories[i].Name < entry.Categories[j].Name
			}
			return entry.Categories[i].CategoryID < entry.Categories[j].CategoryID
		})
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month < out[j].Month
	})
	return out
}

// DayBalance is the running balance at the end of one day.
type DayBalance struct {
	Date    string `json:"date" doc:"Day, YYYY-MM-DD"`
	Balance string `json:"balance" doc:"Running balance in base currency at the end of the day"`
}

func toDayBalances(days map[time.Time]decimal.Decimal) []DayBalance {
	out := make([]DayBalance, 0, len(days))
	for day, value := range days {
		out = append(out, DayBalance{
			Date:    day.Format(dateLayout),
			Balance: value.String(),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}
