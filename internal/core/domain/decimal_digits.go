package domain

import (
	"math"
	"strconv"

	"github.com/SscSPs/currency_money/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MaxDecimalDigits is the largest ordinary digit count a currency may declare.
const MaxDecimalDigits = 28

// DigitsKind tells how a DecimalDigits value must be interpreted.
type DigitsKind uint8

const (
	// DigitsCount is an ordinary number of decimal digits (0-28).
	DigitsCount DigitsKind = iota
	// DigitsNotApplicable marks units without a subdivision concept (precious metals, indices).
	DigitsNotApplicable
	// DigitsFiveBased marks currencies divided into five subunits (MGA, MRU).
	DigitsFiveBased
)

// FiveBasedDigits is the reported digit value of a five-based currency, log10(5).
var FiveBasedDigits = math.Log10(5)

var (
	minorUnitOne     = decimal.NewFromInt(1)
	minorUnitFifth   = decimal.New(2, -1)
	fiveBasedStepInv = decimal.NewFromInt(5)
)

// DecimalDigits describes how finely a currency is subdivided. The zero value is
// an ordinary count of zero digits.
type DecimalDigits struct {
	kind  DigitsKind
	count uint8
}

var (
	// NotApplicable is the decimal digits of units that are never subdivided.
	NotApplicable = DecimalDigits{kind: DigitsNotApplicable}
	// FiveBased is the decimal digits of currencies divided into five subunits.
	FiveBased = DecimalDigits{kind: DigitsFiveBased}
)

// Digits returns an ordinary digit count.
func Digits(n int) (DecimalDigits, error) {
	if n < 0 || n > MaxDecimalDigits {
		return DecimalDigits{}, apperrors.ArgumentOutOfRange("decimalDigits", "must be between 0 and "+strconv.Itoa(MaxDecimalDigits))
	}
	return DecimalDigits{kind: DigitsCount, count: uint8(n)}, nil
}

// MustDigits is Digits for constant inputs; it panics on an invalid count.
func MustDigits(n int) DecimalDigits {
	d, err := Digits(n)
	if err != nil {
		panic(err)
	}
	return d
}

// DigitsFromInt decodes the integer convention used by data feeds: -1 is
// NotApplicable, anything else is an ordinary count.
func DigitsFromInt(n int) (DecimalDigits, error) {
	if n == -1 {
		return NotApplicable, nil
	}
	if n < -1 {
		return DecimalDigits{}, apperrors.ArgumentOutOfRange("decimalDigits", "must not be below -1")
	}
	return Digits(n)
}

// Kind reports which of the three regimes d belongs to.
func (d DecimalDigits) Kind() DigitsKind { return d.kind }

// Count returns the ordinary digit count; ok is false for the sentinel kinds.
func (d DecimalDigits) Count() (n int, ok bool) {
	if d.kind != DigitsCount {
		return 0, false
	}
	return int(d.count), true
}

// MinorUnit is the smallest amount step of a currency with these digits.
func (d DecimalDigits) MinorUnit() decimal.Decimal {
	switch d.kind {
	case DigitsNotApplicable:
		return minorUnitOne
	case DigitsFiveBased:
		return minorUnitFifth
	default:
		return decimal.New(1, -int32(d.count))
	}
}

// Value is the externally reported digit value: the count, -1 when not
// applicable, or log10(5) for five-based currencies.
func (d DecimalDigits) Value() float64 {
	switch d.kind {
	case DigitsNotApplicable:
		return -1
	case DigitsFiveBased:
		return FiveBasedDigits
	default:
		return float64(d.count)
	}
}

// Int is the integer convention: the count, -1 when not applicable, and 1 for
// five-based currencies (the number of places needed to print a 0.2 step).
func (d DecimalDigits) Int() int {
	switch d.kind {
	case DigitsNotApplicable:
		return -1
	case DigitsFiveBased:
		return 1
	default:
		return int(d.count)
	}
}

func (d DecimalDigits) String() string {
	switch d.kind {
	case DigitsNotApplicable:
		return "N.A."
	case DigitsFiveBased:
		return "0.2"
	default:
		return strconv.Itoa(int(d.count))
	}
}
