package handler

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SoldOutLabel replaces the price whenever remaining stock hits zero.
const SoldOutLabel = "SOLD OUT"

// FormatPrice renders a price for display. The customer view uses the
// currency-symbol form "₩{price}"; the admin view uses the suffix form
// "{price}원". Digits are grouped in thousands either way.
func FormatPrice(price float64, admin bool) string {
	grouped := groupDigits(int64(math.Round(price)))
	if admin {
		return grouped + "원"
	}
	return "₩" + grouped
}

// FormatStockPrice renders a product's displayed price, overriding the
// normal format with SOLD OUT whenever remaining stock is zero or less.
func FormatStockPrice(price float64, remainingStock int, admin bool) string {
	if remainingStock <= 0 {
		return SoldOutLabel
	}
	return FormatPrice(price, admin)
}

// groupDigits inserts thousands separators, e.g. 135000 -> "135,000".
func groupDigits(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return sign + digits
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
	return fmt.Sprintf("%s%s", sign, b.String())
}
