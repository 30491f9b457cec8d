package services

import (
	portsrepo "github.com/SscSPs/currency_money/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_money/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Currency: NewCurrencyService(repos.CurrencyRegistry),
		Money:    NewMoneyService(repos.CurrencyRegistry),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)
	_ portssvc.MoneySvcFacade    = (*MoneyService)(nil)
)
