package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OnSymbol_ShouldMapKnownCodes(t *testing.T) {
	assert.Equal(t, "₹", Symbol("INR"))
	assert.Equal(t, "$", Symbol("USD"))
	assert.Equal(t, "XYZ", Symbol("XYZ"))
}

func Test_OnSupported_ShouldCoverTheWholeTable(t *testing.T) {
	assert.True(t, Supported("USD"))
	assert.True(t, Supported("ZWL"))
	assert.False(t, Supported("BTC"))
	assert.GreaterOrEqual(t, len(Codes()), 150)
}
