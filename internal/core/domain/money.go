package domain

import (
	"hash/fnv"

	"github.com/SscSPs/currency_money/internal/apperrors"
	"github.com/shopspring/decimal"
)

// RoundingMode selects how amounts are brought to a currency's granularity.
type RoundingMode uint8

const (
	// RoundHalfEven rounds to the nearest step, ties to the even neighbour.
	RoundHalfEven RoundingMode = iota
	// RoundHalfAwayFromZero rounds to the nearest step, ties away from zero.
	RoundHalfAwayFromZero
	// RoundDown truncates towards zero.
	RoundDown
	// RoundUp rounds away from zero.
	RoundUp
	// RoundNone keeps the amount as given.
	RoundNone
)

// ParseRoundingMode maps the wire names used by the API onto a RoundingMode.
// An empty name selects RoundHalfEven.
func ParseRoundingMode(name string) (RoundingMode, error) {
	switch name {
	case "", "half_even":
		return RoundHalfEven, nil
	case "half_away_from_zero":
		return RoundHalfAwayFromZero, nil
	case "down":
		return RoundDown, nil
	case "up":
		return RoundUp, nil
	case "none":
		return RoundNone, nil
	}
	return RoundHalfEven, apperrors.ArgumentOutOfRange("rounding", "unknown rounding mode "+name)
}

func roundPlaces(d decimal.Decimal, places int32, mode RoundingMode) decimal.Decimal {
	switch mode {
	case RoundHalfAwayFromZero:
		return d.Round(places)
	case RoundDown:
		return d.RoundDown(places)
	case RoundUp:
		return d.RoundUp(places)
	case RoundNone:
		return d
	default:
		return d.RoundBank(places)
	}
}

// RoundAmount brings amount to the granularity of digits.
func RoundAmount(amount decimal.Decimal, digits DecimalDigits, mode RoundingMode) decimal.Decimal {
	switch digits.Kind() {
	case DigitsNotApplicable:
		return amount
	case DigitsFiveBased:
		steps := roundPlaces(amount.Mul(fiveBasedStepInv), 0, mode)
		return steps.Mul(minorUnitFifth)
	default:
		n, _ := digits.Count()
		return roundPlaces(amount, int32(n), mode)
	}
}

// CurrencyResolver looks currencies up by code. The registry implements it.
type CurrencyResolver interface {
	Get(code string) (CurrencyInfo, error)
	GetInNamespace(code, namespace string) (CurrencyInfo, error)
}

// Money is an amount in a currency. Values are immutable; every operation
// returns a new Money.
type Money struct {
	amount   decimal.Decimal
	currency CurrencyInfo
}

// NewMoney rounds amount half-even to the currency's granularity.
func NewMoney(amount decimal.Decimal, currency CurrencyInfo) Money {
	return NewMoneyWithRounding(amount, currency, RoundHalfEven)
}

// NewMoneyWithRounding rounds amount to the currency's granularity using mode.
func NewMoneyWithRounding(amount decimal.Decimal, currency CurrencyInfo, mode RoundingMode) Money {
	return Money{amount: RoundAmount(amount, currency.DecimalDigits(), mode), currency: currency}
}

// NewMoneyFromCode resolves code (namespace priority order) and builds a Money.
func NewMoneyFromCode(amount decimal.Decimal, code string, resolver CurrencyResolver) (Money, error) {
	currency, err := resolver.Get(code)
	if err != nil {
		return Money{}, err
	}
	return NewMoney(amount, currency), nil
}

// NewMoneyFromCodeInNamespace resolves (code, namespace) exactly and builds a Money.
func NewMoneyFromCodeInNamespace(amount decimal.Decimal, code, namespace string, resolver CurrencyResolver) (Money, error) {
	currency, err := resolver.GetInNamespace(code, namespace)
	if err != nil {
		return Money{}, err
	}
	return NewMoney(amount, currency), nil
}

// Zero returns a zero amount in currency.
func Zero(currency CurrencyInfo) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) Currency() CurrencyInfo  { return m.currency }

// Plus is unary plus.
func (m Money) Plus() Money { return m }

// Negate is unary minus.
func (m Money) Negate() Money { return Money{amount: m.amount.Neg(), currency: m.currency} }

// Abs drops the sign.
func (m Money) Abs() Money { return Money{amount: m.amount.Abs(), currency: m.currency} }

// Increment adds one minor unit of the currency.
func (m Money) Increment() Money {
	return Money{amount: m.amount.Add(m.currency.MinorUnit()), currency: m.currency}
}

// Decrement subtracts one minor unit of the currency.
func (m Money) Decrement() Money {
	return Money{amount: m.amount.Sub(m.currency.MinorUnit()), currency: m.currency}
}

func (m Money) sameCurrency(other Money) error {
	if !m.currency.Equal(other.currency) {
		return apperrors.CurrencyMismatch(m.currency.Code(), m.currency.Namespace(), other.currency.Code(), other.currency.Namespace())
	}
	return nil
}

// Add returns m + other; both must share a currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Subtract returns m - other; both must share a currency.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

// Multiply scales m by factor and rounds half-even to the currency.
func (m Money) Multiply(factor decimal.Decimal) Money {
	return m.MultiplyWithRounding(factor, RoundHalfEven)
}

// MultiplyWithRounding scales m by factor and rounds the product using mode.
func (m Money) MultiplyWithRounding(factor decimal.Decimal, mode RoundingMode) Money {
	return NewMoneyWithRounding(m.amount.Mul(factor), m.currency, mode)
}

// Divide divides m by divisor and rounds half-even to the currency.
func (m Money) Divide(divisor decimal.Decimal) (Money, error) {
	return m.DivideWithRounding(divisor, RoundHalfEven)
}

// DivideWithRounding divides m by divisor and rounds the quotient using mode.
func (m Money) DivideWithRounding(divisor decimal.Decimal, mode RoundingMode) (Money, error) {
	if divisor.IsZero() {
		return Money{}, apperrors.ArgumentOutOfRange("divisor", "must not be zero")
	}
	return NewMoneyWithRounding(m.amount.Div(divisor), m.currency, mode), nil
}

// Round re-rounds the amount to the currency's granularity using mode.
func (m Money) Round(mode RoundingMode) Money {
	return NewMoneyWithRounding(m.amount, m.currency, mode)
}

// Compare returns -1, 0 or +1; both must share a currency.
func (m Money) Compare(other Money) (int, error) {
	if err := m.sameCurrency(other); err != nil {
		return 0, err
	}
	return m.amount.Cmp(other.amount), nil
}

// EqualAmount is the checked equality comparison: it fails on a currency mismatch
// instead of reporting false.
func (m Money) EqualAmount(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c == 0, err
}

func (m Money) LessThan(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c < 0, err
}

func (m Money) LessThanOrEqual(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c <= 0, err
}

func (m Money) GreaterThan(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c > 0, err
}

func (m Money) GreaterThanOrEqual(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c >= 0, err
}

// Equal is structural equality on amount and currency identity. Two zero
// Money values are equal.
func (m Money) Equal(other Money) bool {
	return m.currency.Equal(other.currency) && m.amount.Equal(other.amount)
}

// Hash is consistent with Equal: 10.5 and 10.50 hash alike.
func (m Money) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(m.currency.Namespace()))
	h.Write([]byte{0})
	h.Write([]byte(m.currency.Code()))
	h.Write([]byte{0})
	h.Write([]byte(m.amount.String()))
	return h.Sum64()
}

func (m Money) IsZero() bool     { return m.amount.IsZero() }
func (m Money) IsPositive() bool { return m.amount.IsPositive() }
func (m Money) IsNegative() bool { return m.amount.IsNegative() }
func (m Money) Sign() int        { return m.amount.Sign() }

// AmountString prints the amount padded to the currency's digits. An amount
// finer than that, as kept by RoundNone, is printed in full.
func (m Money) AmountString() string {
	places := int32(-1)
	if n, ok := m.currency.DecimalDigits().Count(); ok {
		places = int32(n)
	} else if m.currency.DecimalDigits().Kind() == DigitsFiveBased {
		places = 1
	}
	if places < 0 || !m.amount.Equal(m.amount.Truncate(places)) {
		return m.amount.String()
	}
	return m.amount.StringFixed(places)
}

// String is an invariant rendering such as "EUR 10.50".
func (m Money) String() string {
	if m.currency.IsZero() {
		return m.amount.String()
	}
	return m.currency.Code() + " " + m.AmountString()
}
