package services

import (
	"context"

	"github.com/SscSPs/currency_money/internal/core/domain"
	"github.com/SscSPs/currency_money/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrency resolves a currency. An empty namespace searches all
	// namespaces in priority order.
	GetCurrency(ctx context.Context, code, namespace string) (*domain.CurrencyInfo, error)

	// ListCurrencies returns one page of registered currencies.
	ListCurrencies(ctx context.Context, params dto.ListCurrenciesParams) (*dto.ListCurrenciesResponse, error)

	// ListNamespaces returns the registered namespaces in priority order.
	ListNamespaces(ctx context.Context) (*dto.ListNamespacesResponse, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// RegisterCurrency adds a new currency to the registry.
	RegisterCurrency(ctx context.Context, req dto.CreateCurrencyRequest, userID string) (*domain.CurrencyInfo, error)

	// ReplaceCurrency swaps an existing currency for a modified copy.
	ReplaceCurrency(ctx context.Context, code, namespace string, req dto.UpdateCurrencyRequest, userID string) (*domain.CurrencyInfo, error)

	// UnregisterCurrency removes a currency and returns what was removed.
	UnregisterCurrency(ctx context.Context, code, namespace, userID string) (*domain.CurrencyInfo, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
