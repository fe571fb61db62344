package projection

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashflow-engine/internal/domain"
	"github.com/carson-networks/cashflow-engine/internal/engine/fx"
)

var (
	// ErrNoPeriodUnit reports a continuous template whose recurrence variant
	// has no derivable period unit. That template cannot be partitioned into
	// periods, so the whole computation aborts rather than under-reporting.
	ErrNoPeriodUnit = errors.New("projection: continuous recurrence has no period unit")
	// ErrDegenerateLifetime reports a continuous template whose end date is
	// not after its start date, which would make every period empty.
	ErrDegenerateLifetime = errors.New("projection: continuous template lifetime is empty")
)

// Continuous emits one reconciled projection per period for every continuous
// template whose lifetime overlaps [winStart, winEnd]. Templates are grouped
// by category, and each group shares one arena of that category's executed
// transactions, so a transaction is netted against at most one period across
// every template of the category in this call.
//
// Per period the reconciler sums the not-yet-counted executed transactions in
// base currency, converts the sum into the template currency, and emits the
// period amount minus that spending at the period's end. The result may be
// negative when a period is overspent; nothing is clamped.
func Continuous(templates []domain.FullFutureTransaction, executed []domain.FullTransaction, winStart, winEnd time.Time) ([]domain.FullTransaction, error) {
	grouped := make(map[uuid.UUID][]domain.FullFutureTransaction)
	var order []uuid.UUID
	for _, tpl := range templates {
		if !tpl.Recurrence.Continuous() {
			continue
		}
		if tpl.EndDate.Before(winStart) || tpl.StartDate.After(winEnd) {
			continue
		}
		if _, ok := grouped[tpl.CategoryID]; !ok {
			order = append(order, tpl.CategoryID)
		}
		grouped[tpl.CategoryID] = append(grouped[tpl.CategoryID], tpl)
	}

	var out []domain.FullTransaction
	for _, categoryID := range order {
		arena := newArena(executed, categoryID)
		for _, tpl := range grouped[categoryID] {
			projections, err := reconcile(tpl, arena)
			if err != nil {
				return nil, err
			}
			out = append(out, projections...)
		}
	}
	return out, nil
}

// arena is the per-category reconciliation state: the category's executed
// transactions sorted ascending by date plus a parallel counted flag per
// entry. It lives for one Continuous call and is never shared across calls.
type arena struct {
	transactions []domain.FullTransaction
	counted      []bool
}

func newArena(executed []domain.FullTransaction, categoryID uuid.UUID) *arena {
	var txs []domain.FullTransaction
	for _, tx := range executed {
		if tx.CategoryID != nil && *tx.CategoryID == categoryID {
			txs = append(txs, tx)
		}
	}
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.Before(txs[j].Date)
	})
	return &arena{
		transactions: txs,
		counted:      make([]bool, len(txs)),
	}
}

// reconcile walks one template's lifetime period by period. The cursor into
// the sorted arena only moves forward, so every transaction is visited at
// most once per template.
func reconcile(tpl domain.FullFutureTransaction, a *arena) ([]domain.FullTransaction, error) {
	unit, ok := tpl.Recurrence.PeriodUnit()
	if !ok {
		return nil, fmt.Errorf("%w: template %s (%s)", ErrNoPeriodUnit, tpl.ID, tpl.Name)
	}
	if !tpl.EndDate.After(tpl.StartDate) {
		return nil, fmt.Errorf("%w: template %s (%s)", ErrDegenerateLifetime, tpl.ID, tpl.Name)
	}

	templateSign := decimal.NewFromInt(int64(tpl.Type.AggregationSign()))

	var out []domain.FullTransaction
	idx := 0
	for cur := tpl.StartDate; cur.Before(tpl.EndDate); {
		next := unit.Add(cur, tpl.Stride)

		executedBase := decimal.Zero
		for idx < len(a.transactions) && a.transactions[idx].Date.Before(next) {
			tx := a.transactions[idx]
			if !a.counted[idx] && !tx.Date.Before(cur) {
				value, err := fx.ToBase(tx.SignedAmount(), tx.Account.Currency)
				if err != nil {
					return nil, err
				}
				executedBase = executedBase.Add(value)
				a.counted[idx] = true
			}
			idx++
		}

		expected := tpl.Amount
		if next.After(tpl.EndDate) {
			expected = prorate(tpl.Amount, cur, tpl.EndDate, next)
		}

		executedTpl, err := fx.FromBase(executedBase, tpl.Currency)
		if err != nil {
			return nil, err
		}

		// Spending in the template's own direction shrinks what is still
		// expected for the period; opposite-direction entries (refunds)
		// grow it back.
		remaining := expected.Sub(executedTpl.Mul(templateSign))

		out = append(out, projected(tpl, next, remaining))
		cur = next
	}
	return out, nil
}

// prorate scales the period amount to the fraction of the final period the
// template lifetime actually covers, counted in whole days.
func prorate(amount decimal.Decimal, cur, end, next time.Time) decimal.Decimal {
	covered := daysBetween(cur, end)
	total := daysBetween(cur, next)
	if total == 0 {
		return amount
	}
	return amount.Mul(decimal.NewFromInt(covered)).Div(decimal.NewFromInt(total))
}

func daysBetween(a, b time.Time) int64 {
	return int64(b.Sub(a).Hours() / 24)
}
