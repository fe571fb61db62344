package balance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashflow-engine/internal/domain"
	"github.com/carson-networks/cashflow-engine/internal/engine/fx"
)

// ByDay produces the running base-currency balance for every day in
// [from, to]. seed is the combined balance the instant before from. Days on
// or before realityDate take their delta from the executed ledger; days after
// it take their delta from projections. Each day's balance is strictly the
// previous day's balance plus that day's delta.
//
// realityDate is a required input; the engine never reads the wall clock.
func ByDay(seed decimal.Decimal, executed, projected []domain.FullTransaction, from, to, realityDate time.Time) (map[time.Time]decimal.Decimal, error) {
	executedByDay, err := deltasByDay(executed)
	if err != nil {
		return nil, err
	}
	projectedByDay, err := deltasByDay(projected)
	if err != nil {
		return nil, err
	}

	result := make(map[time.Time]decimal.Decimal)
	running := seed
	reality := dayOf(realityDate)
	last := dayOf(to)
	for day := dayOf(from); !day.After(last); day = day.AddDate(0, 0, 1) {
		if day.After(reality) {
			running = running.Add(projectedByDay[day])
		} else {
			running = running.Add(executedByDay[day])
		}
		result[day] = running
	}
	return result, nil
}

func deltasByDay(transactions []domain.FullTransaction) (map[time.Time]decimal.Decimal, error) {
	deltas := make(map[time.Time]decimal.Decimal)
	for _, tx := range transactions {
		value, err := fx.ToBase(tx.SignedAmount(), tx.Account.Currency)
		if err != nil {
			return nil, err
		}
		day := dayOf(tx.Date)
		deltas[day] = deltas[day].Add(value)
	}
	return deltas, nil
}
