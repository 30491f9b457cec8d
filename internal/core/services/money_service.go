package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/currency_money/internal/apperrors"
	"github.com/SscSPs/currency_money/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_money/internal/core/ports/repositories"
	"github.com/SscSPs/currency_money/internal/dto"
	"github.com/SscSPs/currency_money/internal/utils/accounting"
	"github.com/SscSPs/currency_money/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// Money operation names accepted by Evaluate.
const (
	OpAdd       = "add"
	OpSubtract  = "subtract"
	OpCompare   = "compare"
	OpNegate    = "negate"
	OpIncrement = "increment"
	OpDecrement = "decrement"
	OpMultiply  = "multiply"
	OpDivide    = "divide"
	OpRound     = "round"
)

// MoneyService evaluates money arithmetic on values whose currencies are
// resolved through the registry.
type MoneyService struct {
	BaseService
	registry portsrepo.CurrencyReader
}

func NewMoneyService(registry portsrepo.CurrencyReader) *MoneyService {
	return &MoneyService{registry: registry}
}

func (s *MoneyService) Evaluate(ctx context.Context, operation string, req dto.MoneyOperationRequest) (*dto.MoneyOperationResponse, error) {
	mode, err := domain.ParseRoundingMode(req.Rounding)
	if err != nil {
		return nil, err
	}
	left, err := mapping.ToDomainMoney(req.Left, s.registry, mode)
	if err != nil {
		return nil, err
	}

	resp := &dto.MoneyOperationResponse{Operation: operation}
	var result domain.Money

	switch operation {
	case OpAdd, OpSubtract, OpCompare:
		right, err := s.rightOperand(req, mode)
		if err != nil {
			return nil, err
		}
		switch operation {
		case OpAdd:
			result, err = left.Add(right)
		case OpSubtract:
			result, err = left.Subtract(right)
		default:
			var c int
			c, err = left.Compare(right)
			resp.Comparison = &c
		}
		if err != nil {
			s.LogDebug(ctx, "Money operation rejected", slog.String("operation", operation), slog.String("error", err.Error()))
			return nil, err
		}
		if operation == OpCompare {
			return resp, nil
		}
	case OpNegate:
		result = left.Negate()
	case OpIncrement:
		result = left.Increment()
	case OpDecrement:
		result = left.Decrement()
	case OpRound:
		result = left.Round(mode)
	case OpMultiply, OpDivide:
		if req.Factor == "" {
			return nil, apperrors.ArgumentNull("factor")
		}
		factor, err := decimal.NewFromString(req.Factor)
		if err != nil {
			return nil, apperrors.ArgumentOutOfRange("factor", "not a decimal number: "+req.Factor)
		}
		if operation == OpMultiply {
			result = left.MultiplyWithRounding(factor, mode)
		} else if result, err = left.DivideWithRounding(factor, mode); err != nil {
			return nil, err
		}
	default:
		return nil, apperrors.ArgumentOutOfRange("operation", "unsupported money operation "+operation)
	}

	out := mapping.ToMoneyJSON(result)
	resp.Result = &out
	return resp, nil
}

func (s *MoneyService) rightOperand(req dto.MoneyOperationRequest, mode domain.RoundingMode) (domain.Money, error) {
	if req.Right == nil {
		return domain.Money{}, apperrors.ArgumentNull("right")
	}
	return mapping.ToDomainMoney(*req.Right, s.registry, mode)
}

func (s *MoneyService) Split(ctx context.Context, req dto.SplitMoneyRequest) (*dto.SplitMoneyResponse, error) {
	m, err := mapping.ToDomainMoney(req.Money, s.registry, domain.RoundHalfEven)
	if err != nil {
		return nil, err
	}

	var shares []domain.Money
	if len(req.Ratios) > 0 {
		shares, err = accounting.Allocate(m, req.Ratios)
	} else {
		shares, err = accounting.Split(m, req.Parts)
	}
	if err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Money split", slog.String("money", m.String()), slog.Int("shares", len(shares)))
	return &dto.SplitMoneyResponse{Shares: mapping.ToMoneyJSONSlice(shares)}, nil
}

func (s *MoneyService) Sum(ctx context.Context, req dto.SumMoneyRequest) (*dto.MoneyJSON, error) {
	values := make([]domain.Money, len(req.Values))
	for i, v := range req.Values {
		m, err := mapping.ToDomainMoney(v, s.registry, domain.RoundHalfEven)
		if err != nil {
			return nil, err
		}
		values[i] = m
	}
	total, err := accounting.Sum(values...)
	if err != nil {
		return nil, err
	}
	out := mapping.ToMoneyJSON(total)
	return &out, nil
}
