package registry

import (
	"fmt"
	"time"

	"github.com/SscSPs/currency_money/internal/core/domain"
)

// record is one row of the bootstrap tables. Dates are YYYY-MM-DD, empty when
// unbounded.
type record struct {
	code      string
	numeric   string
	digits    domain.DecimalDigits
	name      string
	symbol    string
	validFrom string
	validTo   string
}

var (
	d0  = domain.MustDigits(0)
	d2  = domain.MustDigits(2)
	d3  = domain.MustDigits(3)
	d4  = domain.MustDigits(4)
	na  = domain.NotApplicable
	z07 = domain.FiveBased
)

const dateLayout = "2006-01-02"

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (rec record) info(namespace string) (domain.CurrencyInfo, error) {
	from, err := parseDate(rec.validFrom)
	if err != nil {
		return domain.CurrencyInfo{}, fmt.Errorf("currency %s: invalid validFrom: %w", rec.code, err)
	}
	to, err := parseDate(rec.validTo)
	if err != nil {
		return domain.CurrencyInfo{}, fmt.Errorf("currency %s: invalid validTo: %w", rec.code, err)
	}
	symbol := rec.symbol
	if symbol == "" {
		symbol = domain.GenericCurrencySign
	}
	return domain.NewCurrencyInfo(domain.CurrencyInfoParams{
		Code:          rec.code,
		Namespace:     namespace,
		NumericCode:   rec.numeric,
		DecimalDigits: rec.digits,
		EnglishName:   rec.name,
		Symbol:        symbol,
		ValidFrom:     from,
		ValidTo:       to,
	})
}

// bootstrapCurrencies converts both tables, active ISO-4217 first.
func bootstrapCurrencies() ([]domain.CurrencyInfo, error) {
	infos := make([]domain.CurrencyInfo, 0, len(isoCurrencies)+len(historicCurrencies))
	for _, rec := range isoCurrencies {
		info, err := rec.info(domain.NamespaceISO4217)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	for _, rec := range historicCurrencies {
		info, err := rec.info(domain.NamespaceISO4217Historic)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}
