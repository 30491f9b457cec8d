package repositories

import (
	"iter"

	"github.com/SscSPs/currency_money/internal/core/domain"
)

// CurrencyReader defines read operations on the currency registry
type CurrencyReader interface {
	// Get resolves code across namespaces in priority order.
	Get(code string) (domain.CurrencyInfo, error)

	// GetInNamespace resolves (code, namespace) exactly.
	GetInNamespace(code, namespace string) (domain.CurrencyInfo, error)

	// All enumerates every reachable currency.
	All() iter.Seq[domain.CurrencyInfo]

	// InNamespace enumerates the reachable currencies of one namespace.
	InNamespace(namespace string) iter.Seq[domain.CurrencyInfo]

	// Namespaces lists namespaces in priority order.
	Namespaces() []string

	// NamespaceIndex returns the stable index of a registered namespace.
	NamespaceIndex(namespace string) (int, bool)
}

// CurrencyWriter defines write operations on the currency registry
type CurrencyWriter interface {
	// TryAdd registers info under (code, namespace); false if the key is taken.
	TryAdd(code, namespace string, info domain.CurrencyInfo) (bool, error)

	// TryRemove unregisters (code, namespace) and returns what was removed.
	TryRemove(code, namespace string) (domain.CurrencyInfo, bool)
}

// CurrencyRegistryFacade combines all currency registry interfaces
// This is a facade for clients that need access to all operations
type CurrencyRegistryFacade interface {
	CurrencyReader
	CurrencyWriter
}
