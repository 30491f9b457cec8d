package mapping

import (
	"github.com/SscSPs/currency_money/internal/apperrors"
	"github.com/SscSPs/currency_money/internal/core/domain"
	"github.com/SscSPs/currency_money/internal/dto"
	"github.com/SscSPs/currency_money/internal/utils"
	"github.com/shopspring/decimal"
)

// ToMoneyJSON renders m padded to its currency's decimals. Amounts kept finer
// than the currency's minor unit (rounding mode none) are not rounded.
// The namespace is omitted for ISO-4217 currencies.
func ToMoneyJSON(m domain.Money) dto.MoneyJSON {
	out := dto.MoneyJSON{
		Amount:   utils.FormatWithCurrencyPrecision(m.Amount(), m.Currency()),
		Currency: m.Currency().Code(),
	}
	if !m.Currency().IsISO() {
		out.Namespace = m.Currency().Namespace()
	}
	return out
}

// ToMoneyJSONSlice renders every element of ms.
func ToMoneyJSONSlice(ms []domain.Money) []dto.MoneyJSON {
	res := make([]dto.MoneyJSON, len(ms))
	for i, m := range ms {
		res[i] = ToMoneyJSON(m)
	}
	return res
}

// ToDomainMoney parses j, resolving its currency through resolver, and rounds
// the amount using mode.
func ToDomainMoney(j dto.MoneyJSON, resolver domain.CurrencyResolver, mode domain.RoundingMode) (domain.Money, error) {
	amount, err := decimal.NewFromString(j.Amount)
	if err != nil {
		return domain.Money{}, apperrors.ArgumentOutOfRange("amount", "not a decimal number: "+j.Amount)
	}

	var currency domain.CurrencyInfo
	if j.Namespace == "" {
		currency, err = resolver.Get(j.Currency)
	} else {
		currency, err = resolver.GetInNamespace(j.Currency, j.Namespace)
	}
	if err != nil {
		return domain.Money{}, err
	}
	return domain.NewMoneyWithRounding(amount, currency, mode), nil
}
