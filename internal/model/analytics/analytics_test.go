package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"max.ks1230/expense-dashboard/internal/entity/expense"
)

func strPtr(s string) *string { return &s }

func f64Ptr(v float64) *float64 { return &v }

func someExpenses() []expense.Record {
	return []expense.Record{
		{ID: 1, Amount: 45.5, Category: "Food", Description: strPtr("Lunch at restaurant"),
			Date: "2026-02-01", PaymentMethod: "Credit Card"},
		{ID: 2, Amount: 120, Category: "Transport", Description: strPtr("Gas"),
			Date: "2026-02-02", PaymentMethod: "Debit Card"},
		{ID: 3, Amount: 65.99, Category: "Shopping", Description: strPtr("Groceries"),
			Date: "2026-02-03", PaymentMethod: "Debit Card"},
		{ID: 4, Amount: 35, Category: "Food", Description: strPtr("Movie snacks"),
			Date: "2026-03-04", PaymentMethod: "Credit Card"},
	}
}

func Test_OnByCategory_GroupSumsShouldAddUpToTotal(t *testing.T) {
	records := someExpenses()

	grouped := 0.0
	for _, g := range ByCategory(records) {
		grouped += g.Amount
	}

	assert.InDelta(t, Total(records), grouped, 1e-9)
}

func Test_OnByCategory_ShouldSortDescending(t *testing.T) {
	groups := ByCategory(someExpenses())

	assert.Equal(t, "Transport", groups[0].Name)
	assert.InDelta(t, 120.0, groups[0].Amount, 1e-9)
	for i := 1; i < len(groups); i++ {
		assert.GreaterOrEqual(t, groups[i-1].Amount, groups[i].Amount)
	}
}

func Test_OnPercentChange_ShouldBeZeroWhenLastMonthIsZero(t *testing.T) {
	assert.Equal(t, 0.0, PercentChange(500, 0))
	assert.Equal(t, 0.0, PercentChange(0, 0))
}

func Test_OnPercentChange_ShouldComputeRelativeDelta(t *testing.T) {
	assert.InDelta(t, 25.0, PercentChange(125, 100), 1e-9)
	assert.InDelta(t, -50.0, PercentChange(50, 100), 1e-9)
}

func Test_OnMonthSums_ShouldRollOverYearBoundary(t *testing.T) {
	records := []expense.Record{
		{Amount: 100, Category: "Food", Date: "2026-01-15", PaymentMethod: "Cash"},
		{Amount: 40, Category: "Food", Date: "2025-12-31", PaymentMethod: "Cash"},
		{Amount: 7, Category: "Food", Date: "2025-11-30", PaymentMethod: "Cash"},
	}
	ref := time.Date(2026, time.January, 20, 10, 0, 0, 0, time.UTC)

	thisMonth, lastMonth := MonthSums(records, ref)

	assert.InDelta(t, 100.0, thisMonth, 1e-9)
	assert.InDelta(t, 40.0, lastMonth, 1e-9)
}

func Test_OnTopCategory_TieShouldGoToFirstEncountered(t *testing.T) {
	records := []expense.Record{
		{Amount: 50, Category: "Transport", Date: "2026-02-01", PaymentMethod: "Cash"},
		{Amount: 50, Category: "Food", Date: "2026-02-02", PaymentMethod: "Cash"},
	}

	top := TopCategory(records)

	assert.Equal(t, "Transport", top.Name)
	assert.InDelta(t, 50.0, top.Amount, 1e-9)
}

func Test_OnTopCategory_EmptyShouldReturnSentinel(t *testing.T) {
	top := TopCategory(nil)

	assert.Equal(t, "None", top.Name)
	assert.Equal(t, 0.0, top.Amount)
}

func Test_OnAverage_ShouldRoundToTwoDecimals(t *testing.T) {
	records := []expense.Record{
		{Amount: 10, Category: "Food", Date: "2026-02-01", PaymentMethod: "Cash"},
		{Amount: 10, Category: "Food", Date: "2026-02-02", PaymentMethod: "Cash"},
		{Amount: 10.01, Category: "Food", Date: "2026-02-03", PaymentMethod: "Cash"},
	}

	assert.InDelta(t, 10.0, Average(records), 1e-9)
	assert.Equal(t, 0.0, Average(nil))
}

func Test_OnAggregations_ShouldUseConvertedAmounts(t *testing.T) {
	records := []expense.Record{
		{Amount: 1000, ConvertedAmount: f64Ptr(12), TargetCurrency: "USD",
			Category: "Food", Date: "2026-02-01", PaymentMethod: "Cash"},
		{Amount: 2000, ConvertedAmount: f64Ptr(24), TargetCurrency: "USD",
			Category: "Transport", Date: "2026-02-02", PaymentMethod: "Cash"},
	}

	assert.InDelta(t, 36.0, Total(records), 1e-9)

	top := TopCategory(records)
	assert.Equal(t, "Transport", top.Name)
	assert.InDelta(t, 24.0, top.Amount, 1e-9)

	thisMonth, _ := MonthSums(records, time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC))
	assert.InDelta(t, 36.0, thisMonth, 1e-9)
}

func Test_OnFilter_ShouldMatchDescriptionCaseInsensitively(t *testing.T) {
	records := someExpenses()

	filtered := Filter(records, "lunch", "all")

	assert.Len(t, filtered, 1)
	assert.Equal(t, int64(1), filtered[0].ID)
}

func Test_OnFilter_ShouldComposeTextAndCategoryWithAnd(t *testing.T) {
	records := someExpenses()

	assert.Len(t, Filter(records, "", "Food"), 2)
	assert.Len(t, Filter(records, "snacks", "Food"), 1)
	assert.Len(t, Filter(records, "gas", "Food"), 0)
	assert.Len(t, Filter(records, "", "all"), len(records))
}

func Test_OnDayTrend_ShouldBeChronologicalAndGrouped(t *testing.T) {
	records := []expense.Record{
		{Amount: 10, Category: "Food", Date: "2026-02-02", PaymentMethod: "Cash"},
		{Amount: 5, Category: "Food", Date: "2026-02-01", PaymentMethod: "Cash"},
		{Amount: 7, Category: "Food", Date: "2026-02-02", PaymentMethod: "Cash"},
	}

	points := DayTrend(records)

	assert.Len(t, points, 2)
	assert.Equal(t, "Feb 1", points[0].Label)
	assert.InDelta(t, 5.0, points[0].Amount, 1e-9)
	assert.Equal(t, "Feb 2", points[1].Label)
	assert.InDelta(t, 17.0, points[1].Amount, 1e-9)
}

func Test_OnByMonth_ShouldLabelCalendarMonths(t *testing.T) {
	records := someExpenses()

	groups := ByMonth(records)

	assert.Len(t, groups, 2)
	assert.Equal(t, "February 2026", groups[0].Name)
	assert.InDelta(t, 231.49, groups[0].Amount, 1e-9)
	assert.Equal(t, "March 2026", groups[1].Name)
	assert.InDelta(t, 35.0, groups[1].Amount, 1e-9)
}
