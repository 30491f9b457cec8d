package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/currency_money/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_money/internal/core/ports/repositories"
	"github.com/SscSPs/currency_money/internal/middleware"
	"github.com/SscSPs/currency_money/internal/platform/config"
	"github.com/SscSPs/currency_money/internal/utils/mapping"
)

const seedDateLayout = "2006-01-02"

// SeedCurrencies registers the user-defined currencies of the seed file.
// Seeds marked Replace swap out an existing entry, keeping the fields the
// seed leaves empty. It stops at the first failing seed and returns how many
// were applied before it.
func SeedCurrencies(ctx context.Context, registry portsrepo.CurrencyRegistryFacade, seeds []config.CurrencySeed) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	for i, seed := range seeds {
		info, err := applySeed(logger, registry, seed)
		if err != nil {
			return i, fmt.Errorf("currency seed %d (%s::%s): %w", i, seed.Namespace, seed.Code, err)
		}
		logger.Info("Currency seeded",
			slog.String("code", info.Code()),
			slog.String("namespace", info.Namespace()),
			slog.Bool("replaced", seed.Replace))
	}
	return len(seeds), nil
}

func applySeed(logger *slog.Logger, registry portsrepo.CurrencyRegistryFacade, seed config.CurrencySeed) (domain.CurrencyInfo, error) {
	builder, err := NewCurrencyBuilder(seed.Code, seed.Namespace, registry)
	if err != nil {
		return domain.CurrencyInfo{}, err
	}

	var old *domain.CurrencyInfo
	if seed.Replace {
		removed, err := UnregisterCurrency(registry, seed.Code, seed.Namespace)
		if err != nil {
			return domain.CurrencyInfo{}, err
		}
		builder.LoadFrom(removed)
		old = &removed
	}

	info, err := buildFromSeed(builder, seed)
	if err != nil && old != nil {
		if restoreErr := restoreCurrency(registry, *old); restoreErr != nil {
			logger.Error("Failed to restore currency after aborted seed",
				slog.String("error", restoreErr.Error()),
				slog.String("code", old.Code()),
				slog.String("namespace", old.Namespace()))
		}
	}
	return info, err
}

func buildFromSeed(b *CurrencyBuilder, seed config.CurrencySeed) (domain.CurrencyInfo, error) {
	if seed.EnglishName != "" {
		b.EnglishName = seed.EnglishName
	}
	if seed.Symbol != "" {
		b.Symbol = seed.Symbol
	}
	if seed.NumericCode != "" {
		b.NumericCode = seed.NumericCode
	}
	digits, ok, err := mapping.ToDecimalDigits(seed.DecimalDigits, seed.FiveBased)
	if err != nil {
		return domain.CurrencyInfo{}, err
	}
	if ok {
		b.DecimalDigits = digits
	}
	if b.ValidFrom, err = seedDate(seed.ValidFrom, b.ValidFrom); err != nil {
		return domain.CurrencyInfo{}, fmt.Errorf("valid_from: %w", err)
	}
	if b.ValidTo, err = seedDate(seed.ValidTo, b.ValidTo); err != nil {
		return domain.CurrencyInfo{}, fmt.Errorf("valid_to: %w", err)
	}
	return b.Register()
}

func seedDate(s string, fallback *time.Time) (*time.Time, error) {
	if s == "" {
		return fallback, nil
	}
	t, err := time.Parse(seedDateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
