// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/bakecost/internal/model"
)

// Currency is the symbol prefixed to money values. Set once at startup from
// the config.
var Currency = "$"

// FormatMoney formats an amount with two decimals and thousands separators.
// e.g., 1234.5 -> "$1,234.50"
func FormatMoney(amount float64) string {
	if amount < 0 {
		return "-" + FormatMoney(-amount)
	}
	cents := int64(math.Round(amount * 100))
	return fmt.Sprintf("%s%s.%02d", Currency, FormatNumber(cents/100), cents%100)
}

// FormatUnitPrice formats a per-unit price. Prices below one keep up to four
// decimals so gram and millilitre prices stay readable.
// e.g., (2, kg) -> "$2.00/kg", (0.035, g) -> "$0.035/g"
func FormatUnitPrice(price float64, unit model.Unit) string {
	if price >= 1 || price <= 0 {
		return FormatMoney(price) + "/" + string(unit)
	}
	s := strconv.FormatFloat(price, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	if i := strings.IndexByte(s, '.'); len(s)-i-1 < 2 {
		s += strings.Repeat("0", 2-(len(s)-i-1))
	}
	return Currency + s + "/" + string(unit)
}

// FormatQuantity formats a quantity with at most three decimals and its
// unit. e.g., (0.5, kg) -> "0.5 kg", (3, unit) -> "3 unit"
func FormatQuantity(q float64, unit model.Unit) string {
	return FormatDecimal(q, 3) + " " + string(unit)
}

// FormatDecimal formats f with at most places decimals, trimming trailing
// zeros. e.g., (1.250, 3) -> "1.25", (2, 3) -> "2"
func FormatDecimal(f float64, places int) string {
	s := strconv.FormatFloat(f, 'f', places, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-100 percentage. e.g., 30 -> "30%", 12.5 -> "12.5%"
func FormatPercent(p float64) string {
	return FormatDecimal(p, 1) + "%"
}
