package domain

import (
	"time"

	"github.com/SscSPs/currency_money/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Well-known namespaces. Codes are only unique within a namespace.
const (
	NamespaceISO4217         = "ISO-4217"
	NamespaceISO4217Historic = "ISO-4217-HISTORIC"
)

// GenericCurrencySign is the symbol used when no specific symbol is known.
const GenericCurrencySign = "¤"

// NoNumericCode is the numeric code of currencies without an ISO number.
const NoNumericCode = "000"

// CurrencyInfoParams holds the inputs of NewCurrencyInfo.
type CurrencyInfoParams struct {
	Code          string
	Namespace     string
	NumericCode   string
	DecimalDigits DecimalDigits
	EnglishName   string
	Symbol        string
	ValidFrom     *time.Time
	ValidTo       *time.Time
}

// CurrencyInfo describes one currency in one namespace. Values are immutable;
// copies can be shared freely between goroutines.
type CurrencyInfo struct {
	code          string
	namespace     string
	numericCode   string
	decimalDigits DecimalDigits
	englishName   string
	symbol        string
	validFrom     time.Time
	validTo       time.Time
}

// NewCurrencyInfo validates p and returns the descriptor it describes.
func NewCurrencyInfo(p CurrencyInfoParams) (CurrencyInfo, error) {
	if err := ValidateCode(p.Code); err != nil {
		return CurrencyInfo{}, err
	}
	if p.Namespace == "" {
		return CurrencyInfo{}, apperrors.ArgumentEmpty("namespace")
	}
	if p.NumericCode == "" {
		return CurrencyInfo{}, apperrors.ArgumentNull("numericCode")
	}
	for _, r := range p.NumericCode {
		if r < '0' || r > '9' {
			return CurrencyInfo{}, apperrors.ArgumentOutOfRange("numericCode", "must contain digits only")
		}
	}
	if p.EnglishName == "" {
		return CurrencyInfo{}, apperrors.ArgumentEmpty("englishName")
	}
	if p.Symbol == "" {
		return CurrencyInfo{}, apperrors.ArgumentEmpty("symbol")
	}
	if p.ValidFrom != nil && p.ValidTo != nil && p.ValidTo.Before(*p.ValidFrom) {
		return CurrencyInfo{}, apperrors.ArgumentOutOfRange("validTo", "must not be before validFrom")
	}

	info := CurrencyInfo{
		code:          p.Code,
		namespace:     p.Namespace,
		numericCode:   p.NumericCode,
		decimalDigits: p.DecimalDigits,
		englishName:   p.EnglishName,
		symbol:        p.Symbol,
	}
	if p.ValidFrom != nil {
		info.validFrom = *p.ValidFrom
	}
	if p.ValidTo != nil {
		info.validTo = *p.ValidTo
	}
	return info, nil
}

// ValidateCode checks that code is three ASCII uppercase letters.
func ValidateCode(code string) error {
	if code == "" {
		return apperrors.ArgumentEmpty("code")
	}
	if !IsValidCode(code) {
		return apperrors.ArgumentOutOfRange("code", "must be three uppercase letters, got "+code)
	}
	return nil
}

// IsValidCode reports whether code is three ASCII uppercase letters.
func IsValidCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

func (c CurrencyInfo) Code() string                 { return c.code }
func (c CurrencyInfo) Namespace() string            { return c.namespace }
func (c CurrencyInfo) NumericCode() string          { return c.numericCode }
func (c CurrencyInfo) DecimalDigits() DecimalDigits { return c.decimalDigits }
func (c CurrencyInfo) EnglishName() string          { return c.englishName }
func (c CurrencyInfo) Symbol() string               { return c.symbol }

// Digits is the reported digit value (see DecimalDigits.Value).
func (c CurrencyInfo) Digits() float64 { return c.decimalDigits.Value() }

// ValidFrom returns the start of the validity window, if bounded.
func (c CurrencyInfo) ValidFrom() (time.Time, bool) { return c.validFrom, !c.validFrom.IsZero() }

// ValidTo returns the end of the validity window, if bounded.
func (c CurrencyInfo) ValidTo() (time.Time, bool) { return c.validTo, !c.validTo.IsZero() }

// MajorUnit is always one.
func (c CurrencyInfo) MajorUnit() decimal.Decimal { return minorUnitOne }

// MinorUnit is the smallest step an amount in this currency can take.
func (c CurrencyInfo) MinorUnit() decimal.Decimal { return c.decimalDigits.MinorUnit() }

// IsObsolete reports whether the currency stopped being valid before now.
func (c CurrencyInfo) IsObsolete() bool { return c.IsObsoleteAt(time.Now()) }

// IsObsoleteAt reports whether the validity window ended before t.
func (c CurrencyInfo) IsObsoleteAt(t time.Time) bool {
	return !c.validTo.IsZero() && c.validTo.Before(t)
}

// IsActiveAt reports whether t falls inside the validity window.
func (c CurrencyInfo) IsActiveAt(t time.Time) bool {
	if !c.validFrom.IsZero() && t.Before(c.validFrom) {
		return false
	}
	return !c.IsObsoleteAt(t)
}

// Deconstruct returns code, numeric code and symbol, in that order.
func (c CurrencyInfo) Deconstruct() (code, numericCode, symbol string) {
	return c.code, c.numericCode, c.symbol
}

// Equal reports whether c and other identify the same currency, i.e. share
// code and namespace.
func (c CurrencyInfo) Equal(other CurrencyInfo) bool {
	return c.code == other.code && c.namespace == other.namespace
}

// Same reports whether every attribute of c and other matches.
func (c CurrencyInfo) Same(other CurrencyInfo) bool {
	return c.Equal(other) &&
		c.numericCode == other.numericCode &&
		c.decimalDigits == other.decimalDigits &&
		c.englishName == other.englishName &&
		c.symbol == other.symbol &&
		c.validFrom.Equal(other.validFrom) &&
		c.validTo.Equal(other.validTo)
}

// IsZero reports whether c is the zero descriptor.
func (c CurrencyInfo) IsZero() bool { return c.code == "" && c.namespace == "" }

// IsISO reports whether c lives in the current ISO-4217 namespace.
func (c CurrencyInfo) IsISO() bool { return c.namespace == NamespaceISO4217 }

func (c CurrencyInfo) String() string {
	if c.namespace == "" || c.namespace == NamespaceISO4217 {
		return c.code
	}
	return c.namespace + "::" + c.code
}
