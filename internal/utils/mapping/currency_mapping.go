package mapping

import (
	"github.com/SscSPs/currency_money/internal/core/domain"
	"github.com/SscSPs/currency_money/internal/dto"
)

var digitsKindNames = map[domain.DigitsKind]string{
	domain.DigitsCount:         "count",
	domain.DigitsNotApplicable: "not_applicable",
	domain.DigitsFiveBased:     "five_based",
}

// ToCurrencyResponse converts a domain CurrencyInfo to its response DTO
func ToCurrencyResponse(c domain.CurrencyInfo) dto.CurrencyResponse {
	resp := dto.CurrencyResponse{
		Code:          c.Code(),
		Namespace:     c.Namespace(),
		NumericCode:   c.NumericCode(),
		EnglishName:   c.EnglishName(),
		Symbol:        c.Symbol(),
		DecimalDigits: c.DecimalDigits().Int(),
		DigitsKind:    digitsKindNames[c.DecimalDigits().Kind()],
		Digits:        c.Digits(),
		MinorUnit:     c.MinorUnit().String(),
		IsObsolete:    c.IsObsolete(),
	}
	if from, ok := c.ValidFrom(); ok {
		resp.ValidFrom = &from
	}
	if to, ok := c.ValidTo(); ok {
		resp.ValidTo = &to
	}
	return resp
}

// ToCurrencyResponseSlice converts a slice of CurrencyInfo to response DTOs
func ToCurrencyResponseSlice(cs []domain.CurrencyInfo) []dto.CurrencyResponse {
	res := make([]dto.CurrencyResponse, len(cs))
	for i, c := range cs {
		res[i] = ToCurrencyResponse(c)
	}
	return res
}

// ToDecimalDigits resolves the digits fields shared by the currency requests.
// FiveBased wins over an explicit count; ok is false when neither is set.
func ToDecimalDigits(count *int, fiveBased bool) (digits domain.DecimalDigits, ok bool, err error) {
	if fiveBased {
		return domain.FiveBased, true, nil
	}
	if count == nil {
		return domain.DecimalDigits{}, false, nil
	}
	digits, err = domain.DigitsFromInt(*count)
	return digits, err == nil, err
}
