package accounting

import (
	"fmt"

	"github.com/SscSPs/currency_money/internal/apperrors"
	"github.com/SscSPs/currency_money/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Sum adds values that all share one currency.
func Sum(values ...domain.Money) (domain.Money, error) {
	if len(values) == 0 {
		return domain.Money{}, apperrors.ArgumentEmpty("values")
	}
	total := values[0]
	for i, v := range values[1:] {
		var err error
		total, err = total.Add(v)
		if err != nil {
			return domain.Money{}, fmt.Errorf("value %d: %w", i+1, err)
		}
	}
	return total, nil
}

// Split divides m into parts shares that differ by at most one minor unit.
// Earlier shares receive the extra units, so the shares always sum to m.
func Split(m domain.Money, parts int) ([]domain.Money, error) {
	if parts < 1 {
		return nil, apperrors.ArgumentOutOfRange("parts", "must be at least 1")
	}
	ratios := make([]int, parts)
	for i := range ratios {
		ratios[i] = 1
	}
	return Allocate(m, ratios)
}

// Allocate distributes m proportionally to ratios in whole minor units. Units
// lost to flooring go one each to the leading shares with a non-zero ratio.
// An amount finer than the minor unit (only possible for currencies without
// decimal digits) stays with the first such share.
func Allocate(m domain.Money, ratios []int) ([]domain.Money, error) {
	if len(ratios) == 0 {
		return nil, apperrors.ArgumentEmpty("ratios")
	}
	total := 0
	for _, r := range ratios {
		if r < 0 {
			return nil, apperrors.ArgumentOutOfRange("ratios", "must not be negative")
		}
		total += r
	}
	if total == 0 {
		return nil, apperrors.ArgumentOutOfRange("ratios", "must not all be zero")
	}

	unit := m.Currency().MinorUnit()
	units, residual := m.Amount().Abs().QuoRem(unit, 0)
	totalRatio := decimal.NewFromInt(int64(total))

	shares := make([]decimal.Decimal, len(ratios))
	allocated := decimal.Zero
	for i, r := range ratios {
		shares[i], _ = units.Mul(decimal.NewFromInt(int64(r))).QuoRem(totalRatio, 0)
		allocated = allocated.Add(shares[i])
	}

	leftover := units.Sub(allocated).IntPart()
	first := -1
	for i, r := range ratios {
		if r == 0 {
			continue
		}
		if first < 0 {
			first = i
		}
		if leftover > 0 {
			shares[i] = shares[i].Add(decimal.NewFromInt(1))
			leftover--
		}
	}

	out := make([]domain.Money, len(ratios))
	for i, s := range shares {
		amount := s.Mul(unit)
		if i == first {
			amount = amount.Add(residual)
		}
		if m.IsNegative() {
			amount = amount.Neg()
		}
		out[i] = domain.NewMoneyWithRounding(amount, m.Currency(), domain.RoundNone)
	}
	return out, nil
}
