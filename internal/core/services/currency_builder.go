package services

import (
	"time"

	"github.com/SscSPs/currency_money/internal/apperrors"
	"github.com/SscSPs/currency_money/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_money/internal/core/ports/repositories"
)

// CurrencyBuilder stages a currency descriptor before it is built or
// registered. Code and namespace are fixed at construction; the exported
// fields may be changed freely until Build or Register is called.
type CurrencyBuilder struct {
	code      string
	namespace string
	registry  portsrepo.CurrencyWriter

	// EnglishName falls back to the code when left empty.
	EnglishName string
	// Symbol falls back to the generic currency sign when left empty.
	Symbol        string
	NumericCode   string
	DecimalDigits domain.DecimalDigits
	ValidFrom     *time.Time
	ValidTo       *time.Time
}

// NewCurrencyBuilder starts a builder for (code, namespace) backed by registry.
// Defaults: numeric code "000", two decimal digits, unbounded validity.
func NewCurrencyBuilder(code, namespace string, registry portsrepo.CurrencyWriter) (*CurrencyBuilder, error) {
	if code == "" {
		return nil, apperrors.ArgumentEmpty("code")
	}
	if namespace == "" {
		return nil, apperrors.ArgumentEmpty("namespace")
	}
	if registry == nil {
		return nil, apperrors.ArgumentNull("registry")
	}
	return &CurrencyBuilder{
		code:          code,
		namespace:     namespace,
		registry:      registry,
		NumericCode:   domain.NoNumericCode,
		DecimalDigits: domain.MustDigits(2),
	}, nil
}

func (b *CurrencyBuilder) Code() string      { return b.code }
func (b *CurrencyBuilder) Namespace() string { return b.namespace }

// LoadFrom copies every mutable field of info into the builder. Code and
// namespace are left untouched.
func (b *CurrencyBuilder) LoadFrom(info domain.CurrencyInfo) *CurrencyBuilder {
	b.EnglishName = info.EnglishName()
	b.Symbol = info.Symbol()
	b.NumericCode = info.NumericCode()
	b.DecimalDigits = info.DecimalDigits()
	b.ValidFrom, b.ValidTo = nil, nil
	if from, ok := info.ValidFrom(); ok {
		b.ValidFrom = &from
	}
	if to, ok := info.ValidTo(); ok {
		b.ValidTo = &to
	}
	return b
}

// Build produces the descriptor for the current state. It never touches the
// registry.
func (b *CurrencyBuilder) Build() (domain.CurrencyInfo, error) {
	name := b.EnglishName
	if name == "" {
		name = b.code
	}
	symbol := b.Symbol
	if symbol == "" {
		symbol = domain.GenericCurrencySign
	}
	return domain.NewCurrencyInfo(domain.CurrencyInfoParams{
		Code:          b.code,
		Namespace:     b.namespace,
		NumericCode:   b.NumericCode,
		DecimalDigits: b.DecimalDigits,
		EnglishName:   name,
		Symbol:        symbol,
		ValidFrom:     b.ValidFrom,
		ValidTo:       b.ValidTo,
	})
}

// Register builds the descriptor and adds it to the registry. It fails with
// AlreadyRegistered when (code, namespace) is taken.
func (b *CurrencyBuilder) Register() (domain.CurrencyInfo, error) {
	info, err := b.Build()
	if err != nil {
		return domain.CurrencyInfo{}, err
	}
	added, err := b.registry.TryAdd(b.code, b.namespace, info)
	if err != nil {
		return domain.CurrencyInfo{}, err
	}
	if !added {
		return domain.CurrencyInfo{}, apperrors.AlreadyRegistered(b.code, b.namespace)
	}
	return info, nil
}

// UnregisterCurrency removes (code, namespace) from registry and returns the
// removed descriptor. It fails with CurrencyNotFound when absent.
func UnregisterCurrency(registry portsrepo.CurrencyWriter, code, namespace string) (domain.CurrencyInfo, error) {
	if code == "" {
		return domain.CurrencyInfo{}, apperrors.ArgumentEmpty("code")
	}
	if namespace == "" {
		return domain.CurrencyInfo{}, apperrors.ArgumentEmpty("namespace")
	}
	info, ok := registry.TryRemove(code, namespace)
	if !ok {
		return domain.CurrencyInfo{}, apperrors.CurrencyNotFound(code, namespace)
	}
	return info, nil
}
