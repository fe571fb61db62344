package balance

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashflow-engine/internal/domain"
	"github.com/carson-networks/cashflow-engine/internal/engine/fx"
)

// -- ByMonthCategory tests --

func TestByMonthCategory_EveryMonthPresentWhenEmpty(t *testing.T) {
	got, err := ByMonthCategory(nil, date(2024, time.June, 15), date(2024, time.August, 20))
	require.NoError(t, err)

	require.Len(t, got, 3)
	for _, month := range []time.Time{
		date(2024, time.June, 1),
		date(2024, time.July, 1),
		date(2024, time.August, 1),
	} {
		categories, ok := got[month]
		assert.True(t, ok, "missing month %s", month)
		assert.Empty(t, categories)
	}
}

func TestByMonthCategory_SignsAndConversion(t *testing.T) {
	salary := category("salary", domain.CategoryIncome)
	food := category("food", domain.CategoryExpense)

	transactions := []domain.FullTransaction{
		fullTx(&salary, usd(), domain.TypeIncome, "1000", date(2024, time.July, 5)),
		fullTx(&food, usd(), domain.TypeExpense, "100", date(2024, time.July, 10)),
		// EUR 50 at rate 2 is 25 base units.
		fullTx(&food, eur(), domain.TypeExpense, "50", date(2024, time.July, 20)),
	}

	got, err := ByMonthCategory(transactions, date(2024, time.July, 1), date(2024, time.July, 31))
	require.NoError(t, err)

	july := got[date(2024, time.July, 1)]
	require.Len(t, july, 2)
	assert.True(t, july[salary].Equal(decimal.NewFromInt(1000)), "got %s", july[salary])
	assert.True(t, july[food].Equal(decimal.NewFromInt(-125)), "got %s", july[food])
}

func TestByMonthCategory_TransfersContributeZero(t *testing.T) {
	moving := category("moving", domain.CategoryExpense)

	transactions := []domain.FullTransaction{
		fullTx(&moving, usd(), domain.TypeExpenseTransfer, "500", date(2024, time.July, 5)),
		fullTx(&moving, usd(), domain.TypeIncomeTransfer, "500", date(2024, time.July, 5)),
	}

	got, err := ByMonthCategory(transactions, date(2024, time.July, 1), date(2024, time.July, 31))
	require.NoError(t, err)

	july := got[date(2024, time.July, 1)]
	assert.True(t, july[moving].Equal(decimal.Zero), "got %s", july[moving])
}

func TestByMonthCategory_EqualCategoriesShareBucket(t *testing.T) {
	// Two independently built Category values with the same fields must land
	// in one bucket, including when a parent is set.
	id := uuid.Must(uuid.NewV4())
	parent := uuid.NullUUID{UUID: uuid.Must(uuid.NewV4()), Valid: true}
	first := domain.Category{ID: id, Name: "food", DefaultType: domain.CategoryExpense, ParentID: parent}
	second := domain.Category{ID: id, Name: "food", DefaultType: domain.CategoryExpense, ParentID: parent}

	transactions := []domain.FullTransaction{
		fullTx(&first, usd(), domain.TypeExpense, "10", date(2024, time.July, 5)),
		fullTx(&second, usd(), domain.TypeExpense, "15", date(2024, time.July, 12)),
	}

	got, err := ByMonthCategory(transactions, date(2024, time.July, 1), date(2024, time.July, 31))
	require.NoError(t, err)

	july := got[date(2024, time.July, 1)]
	require.Len(t, july, 1)
	assert.True(t, july[first].Equal(decimal.NewFromInt(-25)), "got %s", july[first])
}

func TestByMonthCategory_NilCategoryExcluded(t *testing.T) {
	transactions := []domain.FullTransaction{
		fullTx(nil, usd(), domain.TypeExpenseTransfer, "500", date(2024, time.July, 5)),
	}

	got, err := ByMonthCategory(transactions, date(2024, time.July, 1), date(2024, time.July, 31))
	require.NoError(t, err)
	assert.Empty(t, got[date(2024, time.July, 1)])
}

func TestByMonthCategory_OutOfRangeIgnored(t *testing.T) {
	food := category("food", domain.CategoryExpense)
	transactions := []domain.FullTransaction{
		fullTx(&food, usd(), domain.TypeExpense, "100", date(2024, time.June, 30)),
		fullTx(&food, usd(), domain.TypeExpense, "40", date(2024, time.July, 10)),
	}

	got, err := ByMonthCategory(transactions, date(2024, time.July, 1), date(2024, time.July, 31))
	require.NoError(t, err)

	july := got[date(2024, time.July, 1)]
	assert.True(t, july[food].Equal(decimal.NewFromInt(-40)), "got %s", july[food])
}

func TestByMonthCategory_BadCurrencyFails(t *testing.T) {
	food := category("food", domain.CategoryExpense)
	bad := fx.Currency{Code: "XXX", RateToBase: decimal.Zero}
	transactions := []domain.FullTransaction{
		fullTx(&food, bad, domain.TypeExpense, "100", date(2024, time.July, 10)),
	}

	_, err := ByMonthCategory(transactions, date(2024, time.July, 1), date(2024, time.July, 31))
	assert.ErrorIs(t, err, fx.ErrBadRate)
}

func TestByMonthCategory_Deterministic(t *testing.T) {
	food := category("food", domain.CategoryExpense)
	transactions := []domain.FullTransaction{
		fullTx(&food, usd(), domain.TypeExpense, "100", date(2024, time.July, 10)),
	}

	first, err := ByMonthCategory(transactions, date(2024, time.June, 1), date(2024, time.August, 31))
	require.NoError(t, err)
	second, err := ByMonthCategory(transactions, date(2024, time.June, 1), date(2024, time.August, 31))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
