package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$393.00", FormatCurrency(39300, "usd"))
	assert.Equal(t, "$249.00", FormatCurrency(24900, "usd"))
	assert.Equal(t, "$0.00", FormatCurrency(0, "usd"))
	assert.Equal(t, "$0.99", FormatCurrency(99, "usd"))
	assert.Equal(t, "$1,234.56", FormatCurrency(123456, "usd"))
	assert.Equal(t, "$1,234,567.89", FormatCurrency(123456789, "usd"))
	assert.Equal(t, "-$42.00", FormatCurrency(-4200, "usd"))
}

func TestFormatCurrency_OtherCurrencies(t *testing.T) {
	assert.Equal(t, "€199.00", FormatCurrency(19900, "eur"))
	assert.Equal(t, "£99.50", FormatCurrency(9950, "GBP"))
	// Unknown codes fall back to the upper-cased code
	assert.Equal(t, "CAD 10.00", FormatCurrency(1000, "cad"))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC).Unix()
	assert.Equal(t, "March 15, 2024", FormatDate(ts))

	ts = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	assert.Equal(t, "January 1, 2025", FormatDate(ts))
}

// Provider timestamps are seconds; a millisecond value would land far in
// the future.
func TestFormatDate_SecondsConvention(t *testing.T) {
	ts := time.Date(2024, time.June, 30, 23, 59, 59, 0, time.UTC).Unix()
	assert.Equal(t, "June 30, 2024", FormatDate(ts))
}
