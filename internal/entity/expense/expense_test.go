package expense

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnDisplayAmount_ShouldPreferConvertedValue(t *testing.T) {
	converted := 12.5
	rec := Record{Amount: 1000, ConvertedAmount: &converted, TargetCurrency: "USD"}

	assert.Equal(t, 12.5, rec.DisplayAmount())
	assert.Equal(t, "USD", rec.DisplayCurrency("INR"))
}

func Test_OnDisplayAmount_ShouldFallBackToOriginal(t *testing.T) {
	rec := Record{Amount: 1000}

	assert.Equal(t, 1000.0, rec.DisplayAmount())
	assert.Equal(t, "INR", rec.DisplayCurrency("INR"))
}

func Test_OnSpendDate_ShouldTolerateTimeComponent(t *testing.T) {
	rec := Record{Date: "2026-02-06T00:00:00"}

	d, err := rec.SpendDate()

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.February, 6, 0, 0, 0, 0, time.UTC), d)
}

func Test_OnValidation_ShouldAcceptOnlyEnumeratedValues(t *testing.T) {
	assert.True(t, ValidCategory("Food"))
	assert.False(t, ValidCategory("Groceries"))
	assert.True(t, ValidPaymentMethod("Mobile Wallet"))
	assert.False(t, ValidPaymentMethod("Crypto"))
}
