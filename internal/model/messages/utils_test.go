package messages

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/expense-dashboard/internal/entity/expense"
)

func Test_OnParseCommand_ShouldSplitCommandAndArg(t *testing.T) {
	cmd, arg := parseCommand("/add 20;Food;Cash")
	assert.Equal(t, "/add", cmd)
	assert.Equal(t, "20;Food;Cash", arg)

	cmd, arg = parseCommand("/dashboard")
	assert.Equal(t, "/dashboard", cmd)
	assert.Equal(t, "", arg)

	cmd, arg = parseCommand("just chatting")
	assert.Equal(t, "", cmd)
	assert.Equal(t, "just chatting", arg)
}

func Test_OnParseExpenseArg_ShouldDefaultDateToToday(t *testing.T) {
	rec, errMsg, err := parseExpenseArg("20;Food;Cash")

	require.NoError(t, err)
	assert.Empty(t, errMsg)
	assert.Equal(t, time.Now().Format(expense.DateLayout), rec.Date)
	assert.Nil(t, rec.Description)
}

func Test_OnParseExpenseArg_ShouldTreatNonDateFourthPartAsDescription(t *testing.T) {
	rec, _, err := parseExpenseArg("20;Food;Cash;coffee with friends")

	require.NoError(t, err)
	require.NotNil(t, rec.Description)
	assert.Equal(t, "coffee with friends", *rec.Description)
}

func Test_OnParseExpenseArg_ShouldAcceptDateAndDescription(t *testing.T) {
	rec, _, err := parseExpenseArg(" 20 ; Food ; Credit Card ; 2026-03-01 ; lunch ")

	require.NoError(t, err)
	assert.Equal(t, 20.0, rec.Amount)
	assert.Equal(t, "Credit Card", rec.PaymentMethod)
	assert.Equal(t, "2026-03-01", rec.Date)
	require.NotNil(t, rec.Description)
	assert.Equal(t, "lunch", *rec.Description)
}

func Test_OnParseExpenseArg_ShouldRejectBadDateSlot(t *testing.T) {
	_, errMsg, err := parseExpenseArg("20;Food;Cash;03.01.2026;lunch")

	assert.Error(t, err)
	assert.Equal(t, incorrectDateMessage, errMsg)
}

func Test_OnParseFilterArg_ShouldExtractCategoryToken(t *testing.T) {
	text, category := parseFilterArg("category:Food lunch downtown")

	assert.Equal(t, "lunch downtown", text)
	assert.Equal(t, "Food", category)
}

func Test_OnFormatPercent_ShouldPrefixPositiveChange(t *testing.T) {
	assert.Equal(t, "+12.3%", formatPercent(12.34))
	assert.Equal(t, "-5.0%", formatPercent(-5))
	assert.Equal(t, "0.0%", formatPercent(0))
}
