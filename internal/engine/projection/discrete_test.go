package projection

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/cashflow-engine/internal/domain"
	"github.com/carson-networks/cashflow-engine/internal/engine/recurrence"
)

// -- Discrete tests --

func TestDiscrete_SingleOccurrenceExactReplay(t *testing.T) {
	category := expenseCategory("rent")
	tpl := template(category, usd(), "10", recurrence.None,
		date(2024, time.July, 1), date(2024, time.July, 31))

	got := Discrete([]domain.FullFutureTransaction{tpl},
		date(2024, time.June, 30), date(2024, time.July, 2))

	assert.Len(t, got, 1)
	assert.True(t, got[0].Amount.Equal(decimal.NewFromInt(10)), "got %s", got[0].Amount)
	assert.Equal(t, date(2024, time.July, 1), got[0].Date)
	assert.Equal(t, "USD", got[0].Account.Currency.Code)
	assert.Equal(t, category.ID, *got[0].CategoryID)
}

func TestDiscrete_WeeklyCountAndCrop(t *testing.T) {
	tpl := template(expenseCategory("groceries"), eur(), "20", recurrence.Weekly,
		date(2024, time.August, 1), date(2024, time.August, 31))

	full := Discrete([]domain.FullFutureTransaction{tpl},
		date(2024, time.August, 1), date(2024, time.August, 31))
	assert.Len(t, full, 5)
	for _, p := range full {
		assert.True(t, p.Amount.Equal(decimal.NewFromInt(20)), "got %s", p.Amount)
		assert.Equal(t, "EUR", p.Account.Currency.Code)
	}

	cropped := Discrete([]domain.FullFutureTransaction{tpl},
		date(2024, time.August, 15), date(2024, time.August, 31))
	assert.Len(t, cropped, 3)
}

func TestDiscrete_SkipsContinuousTemplates(t *testing.T) {
	tpl := template(expenseCategory("food"), usd(), "20", recurrence.WeeklyContinuous,
		date(2024, time.August, 1), date(2024, time.August, 31))

	got := Discrete([]domain.FullFutureTransaction{tpl},
		date(2024, time.August, 1), date(2024, time.August, 31))

	assert.Empty(t, got)
}

func TestDiscrete_NormalizesOccurrenceToStartOfDay(t *testing.T) {
	category := expenseCategory("subscription")
	tpl := template(category, usd(), "15", recurrence.None,
		time.Date(2024, time.July, 1, 13, 45, 10, 0, time.UTC), date(2024, time.July, 31))

	got := Discrete([]domain.FullFutureTransaction{tpl},
		date(2024, time.June, 30), date(2024, time.July, 2))

	assert.Len(t, got, 1)
	assert.Equal(t, date(2024, time.July, 1), got[0].Date)
}

func TestDiscrete_ProjectionsCarryZeroID(t *testing.T) {
	tpl := template(expenseCategory("rent"), usd(), "10", recurrence.None,
		date(2024, time.July, 1), date(2024, time.July, 31))

	got := Discrete([]domain.FullFutureTransaction{tpl},
		date(2024, time.June, 30), date(2024, time.July, 2))

	assert.Len(t, got, 1)
	assert.Equal(t, uuid.Nil, got[0].ID)
}
