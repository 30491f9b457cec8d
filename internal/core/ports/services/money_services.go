package services

import (
	"context"

	"github.com/SscSPs/currency_money/internal/dto"
)

// MoneyCalculatorSvc evaluates single money operations
type MoneyCalculatorSvc interface {
	// Evaluate applies operation (add, subtract, compare, negate, increment,
	// decrement, multiply, divide, round) to the request operands.
	Evaluate(ctx context.Context, operation string, req dto.MoneyOperationRequest) (*dto.MoneyOperationResponse, error)
}

// MoneyAllocatorSvc distributes and aggregates money values
type MoneyAllocatorSvc interface {
	Split(ctx context.Context, req dto.SplitMoneyRequest) (*dto.SplitMoneyResponse, error)
	Sum(ctx context.Context, req dto.SumMoneyRequest) (*dto.MoneyJSON, error)
}

// MoneySvcFacade combines all money-related service interfaces
type MoneySvcFacade interface {
	MoneyCalculatorSvc
	MoneyAllocatorSvc
}
