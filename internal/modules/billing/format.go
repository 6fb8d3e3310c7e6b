package billing

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var currencySymbols = map[string]string{
	"usd": "$",
	"eur": "€",
	"gbp": "£",
}

// FormatCurrency renders a minor-unit amount as an en-US currency string:
// 39300, "usd" -> "$393.00". Every money display goes through here so all
// widgets agree on formatting.
func FormatCurrency(amount int64, currency string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	symbol, ok := currencySymbols[strings.ToLower(currency)]
	if !ok {
		symbol = strings.ToUpper(currency) + " "
	}

	units := groupThousands(strconv.FormatInt(amount/100, 10))
	return fmt.Sprintf("%s%s%s.%02d", sign, symbol, units, amount%100)
}

// FormatDate renders a provider timestamp (Unix seconds, not millis) as a
// long-form US date: "March 15, 2024".
func FormatDate(timestamp int64) string {
	return time.Unix(timestamp, 0).UTC().Format("January 2, 2006")
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
