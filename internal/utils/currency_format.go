package utils

import (
	"github.com/SscSPs/currency_money/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithCurrencyPrecision formats an amount with the precision of a given currency.
// Amounts finer than the currency's digits keep every digit.
// Example: amount 12.3 with USD (2 digits) returns "12.30"
// Example: amount 12.3456 with USD (2 digits) returns "12.3456"
// Example: amount 12 with MGA (five-based) returns "12.0"
// Example: amount 1.23456 with XAU (not applicable) returns "1.23456"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.CurrencyInfo) string {
	digits := currency.DecimalDigits()
	if n, ok := digits.Count(); ok {
		return FormatWithPrecision(amount, n)
	}
	if digits.Kind() == domain.DigitsFiveBased {
		return FormatWithPrecision(amount, 1)
	}
	return amount.String()
}

// FormatWithPrecision pads amount to precision decimals. It never rounds: an
// amount with more decimals than precision is printed as is.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	if !amount.Equal(amount.Truncate(int32(precision))) {
		return amount.String()
	}
	return amount.StringFixed(int32(precision))
}
