package services_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/SscSPs/currency_money/internal/apperrors"
	"github.com/SscSPs/currency_money/internal/core/domain"
	"github.com/SscSPs/currency_money/internal/core/services"
	"github.com/SscSPs/currency_money/internal/middleware"
	"github.com/SscSPs/currency_money/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCurrencies(t *testing.T) {
	reg := newRegistry(t)
	seeds := []config.CurrencySeed{
		{Code: "GLD", Namespace: "GAME", EnglishName: "Gold Coin", Symbol: "G", DecimalDigits: ptr(0)},
		{Code: "GEM", Namespace: "GAME", FiveBased: true, ValidFrom: "2020-01-01"},
		{Code: "EUR", Namespace: domain.NamespaceISO4217, Symbol: "EUR", Replace: true},
	}

	n, err := services.SeedCurrencies(context.Background(), reg, seeds)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	gld, err := reg.GetInNamespace("GLD", "GAME")
	require.NoError(t, err)
	assert.Equal(t, "Gold Coin", gld.EnglishName())
	assert.Equal(t, "1", gld.MinorUnit().String())

	gem, err := reg.Get("GEM")
	require.NoError(t, err)
	assert.Equal(t, domain.DigitsFiveBased, gem.DecimalDigits().Kind())
	from, ok := gem.ValidFrom()
	assert.True(t, ok)
	assert.Equal(t, 2020, from.Year())

	eur, err := reg.Get("EUR")
	require.NoError(t, err)
	assert.Equal(t, "EUR", eur.Symbol())
	assert.Equal(t, "Euro", eur.EnglishName())
	assert.Equal(t, "978", eur.NumericCode())
}

func TestSeedCurrencies_StopsAtFirstFailure(t *testing.T) {
	reg := newRegistry(t)
	seeds := []config.CurrencySeed{
		{Code: "GLD", Namespace: "GAME"},
		{Code: "GLD", Namespace: "GAME"},
		{Code: "GEM", Namespace: "GAME"},
	}

	n, err := services.SeedCurrencies(context.Background(), reg, seeds)
	assert.Equal(t, 1, n)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyRegistered)
	assert.Contains(t, err.Error(), "GAME::GLD")

	_, err = reg.GetInNamespace("GEM", "GAME")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)
}

func TestSeedCurrencies_ReplaceRestoresOnBadDate(t *testing.T) {
	reg := newRegistry(t)
	before, err := reg.Get("EUR")
	require.NoError(t, err)

	_, err = services.SeedCurrencies(context.Background(), reg, []config.CurrencySeed{
		{Code: "EUR", Namespace: domain.NamespaceISO4217, ValidTo: "not-a-date", Replace: true},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid_to")

	after, err := reg.Get("EUR")
	require.NoError(t, err)
	assert.True(t, after.Same(before))
}

func TestSeedCurrencies_ReplaceLogsFailedRestore(t *testing.T) {
	mockReg := new(MockCurrencyRegistry)
	old, err := domain.NewCurrencyInfo(domain.CurrencyInfoParams{
		Code: "GLD", Namespace: "GAME", NumericCode: "000",
		DecimalDigits: domain.MustDigits(0), EnglishName: "Gold Coin", Symbol: "G",
	})
	require.NoError(t, err)

	mockReg.On("TryRemove", "GLD", "GAME").Return(old, true).Once()
	// the key was taken again before the restore
	mockReg.On("TryAdd", "GLD", "GAME", old).Return(false, nil).Once()

	var buf bytes.Buffer
	ctx := middleware.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	n, err := services.SeedCurrencies(ctx, mockReg, []config.CurrencySeed{
		{Code: "GLD", Namespace: "GAME", ValidTo: "not-a-date", Replace: true},
	})

	assert.Equal(t, 0, n)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid_to")
	assert.Contains(t, buf.String(), "Failed to restore currency after aborted seed")
	assert.Contains(t, buf.String(), "code=GLD")
	mockReg.AssertExpectations(t)
}

func TestSeedCurrencies_ReplaceMissing(t *testing.T) {
	_, err := services.SeedCurrencies(context.Background(), newRegistry(t), []config.CurrencySeed{
		{Code: "GLD", Namespace: "GAME", Replace: true},
	})
	assert.ErrorIs(t, err, apperrors.ErrCurrencyNotFound)
}
