package projection

import (
	"time"

	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashflow-engine/internal/domain"
	"github.com/carson-networks/cashflow-engine/internal/engine/recurrence"
)

// Discrete materializes one projected transaction per occurrence for every
// non-continuous template whose occurrences intersect [winStart, winEnd].
// Discrete templates always project the full fixed amount; no reconciliation
// against the ledger happens here.
func Discrete(templates []domain.FullFutureTransaction, winStart, winEnd time.Time) []domain.FullTransaction {
	var out []domain.FullTransaction
	for _, tpl := range templates {
		if tpl.Recurrence.Continuous() {
			continue
		}
		dates := recurrence.Occurrences(tpl.Recurrence, tpl.Stride, tpl.StartDate, tpl.EndDate, winStart, winEnd)
		for _, date := range dates {
			out = append(out, projected(tpl, now.New(date).BeginningOfDay(), tpl.Amount))
		}
	}
	return out
}

// projected synthesizes the ephemeral transaction shape downstream
// aggregation consumes: zero ID, the template's category, type and currency,
// and the computed (possibly reconciled) amount.
func projected(tpl domain.FullFutureTransaction, date time.Time, amount decimal.Decimal) domain.FullTransaction {
	categoryID := tpl.CategoryID
	category := tpl.Category
	return domain.FullTransaction{
		Transaction: domain.Transaction{
			Name:       tpl.Name,
			Type:       tpl.Type,
			CategoryID: &categoryID,
			Amount:     amount,
			Date:       date,
		},
		Account:  domain.Account{Currency: tpl.Currency},
		Category: &category,
	}
}
