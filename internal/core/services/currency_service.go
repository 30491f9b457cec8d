package services

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"github.com/SscSPs/currency_money/internal/apperrors"
	"github.com/SscSPs/currency_money/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_money/internal/core/ports/repositories"
	"github.com/SscSPs/currency_money/internal/dto"
	"github.com/SscSPs/currency_money/internal/utils/mapping"
	"github.com/SscSPs/currency_money/internal/utils/pagination"
)

// CurrencyService exposes the currency registry to the handlers.
type CurrencyService struct {
	BaseService
	registry portsrepo.CurrencyRegistryFacade
}

func NewCurrencyService(registry portsrepo.CurrencyRegistryFacade) *CurrencyService {
	return &CurrencyService{registry: registry}
}

func (s *CurrencyService) GetCurrency(ctx context.Context, code, namespace string) (*domain.CurrencyInfo, error) {
	var (
		info domain.CurrencyInfo
		err  error
	)
	if namespace == "" {
		info, err = s.registry.Get(code)
	} else {
		info, err = s.registry.GetInNamespace(code, namespace)
	}
	if err != nil {
		s.LogDebug(ctx, "Currency lookup failed", slog.String("code", code), slog.String("namespace", namespace), slog.String("error", err.Error()))
		return nil, err
	}
	return &info, nil
}

// listKey orders currencies by namespace priority, then code.
type listKey struct {
	nsIndex int
	code    string
}

func compareListKeys(a, b listKey) int {
	if c := cmp.Compare(a.nsIndex, b.nsIndex); c != 0 {
		return c
	}
	return cmp.Compare(a.code, b.code)
}

func (s *CurrencyService) ListCurrencies(ctx context.Context, params dto.ListCurrenciesParams) (*dto.ListCurrenciesResponse, error) {
	source := s.registry.All()
	if params.Namespace != "" {
		if _, ok := s.registry.NamespaceIndex(params.Namespace); !ok {
			return nil, apperrors.UnknownNamespace(params.Namespace)
		}
		source = s.registry.InNamespace(params.Namespace)
	}

	var after *listKey
	if params.NextToken != "" {
		ns, code, err := pagination.DecodeCurrencyToken(params.NextToken)
		if err != nil {
			return nil, apperrors.ArgumentOutOfRange("nextToken", err.Error())
		}
		nsIdx, ok := s.registry.NamespaceIndex(ns)
		if !ok {
			return nil, apperrors.ArgumentOutOfRange("nextToken", "unknown namespace "+ns)
		}
		after = &listKey{nsIndex: nsIdx, code: code}
	}

	type entry struct {
		key  listKey
		info domain.CurrencyInfo
	}
	var entries []entry
	for info := range source {
		if !params.IncludeObsolete && info.IsObsolete() {
			continue
		}
		nsIdx, _ := s.registry.NamespaceIndex(info.Namespace())
		k := listKey{nsIndex: nsIdx, code: info.Code()}
		if after != nil && compareListKeys(k, *after) <= 0 {
			continue
		}
		entries = append(entries, entry{key: k, info: info})
	}
	slices.SortFunc(entries, func(a, b entry) int { return compareListKeys(a.key, b.key) })

	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}

	resp := &dto.ListCurrenciesResponse{}
	page := entries
	if len(entries) > limit {
		page = entries[:limit]
		last := page[len(page)-1].info
		token := pagination.EncodeCurrencyToken(last.Namespace(), last.Code())
		resp.NextToken = &token
	}
	infos := make([]domain.CurrencyInfo, len(page))
	for i, e := range page {
		infos[i] = e.info
	}
	resp.Currencies = mapping.ToCurrencyResponseSlice(infos)
	return resp, nil
}

func (s *CurrencyService) ListNamespaces(ctx context.Context) (*dto.ListNamespacesResponse, error) {
	namespaces := s.registry.Namespaces()
	resp := &dto.ListNamespacesResponse{Namespaces: make([]dto.NamespaceResponse, 0, len(namespaces))}
	for priority, ns := range namespaces {
		count := 0
		for range s.registry.InNamespace(ns) {
			count++
		}
		resp.Namespaces = append(resp.Namespaces, dto.NamespaceResponse{Name: ns, Priority: priority, CurrencyCount: count})
	}
	return resp, nil
}

func (s *CurrencyService) RegisterCurrency(ctx context.Context, req dto.CreateCurrencyRequest, userID string) (*domain.CurrencyInfo, error) {
	builder, err := NewCurrencyBuilder(req.Code, req.Namespace, s.registry)
	if err != nil {
		return nil, err
	}
	builder.EnglishName = req.EnglishName
	builder.Symbol = req.Symbol
	if req.NumericCode != "" {
		builder.NumericCode = req.NumericCode
	}
	digits, ok, err := mapping.ToDecimalDigits(req.DecimalDigits, req.FiveBased)
	if err != nil {
		return nil, err
	}
	if ok {
		builder.DecimalDigits = digits
	}
	builder.ValidFrom, builder.ValidTo = req.ValidFrom, req.ValidTo

	info, err := builder.Register()
	if err != nil {
		s.LogError(ctx, err, "Failed to register currency", slog.String("code", req.Code), slog.String("namespace", req.Namespace))
		return nil, err
	}
	s.LogInfo(ctx, "Currency registered",
		slog.String("code", info.Code()),
		slog.String("namespace", info.Namespace()),
		slog.String("user_id", userID))
	return &info, nil
}

// ReplaceCurrency unregisters (code, namespace), re-registers a copy with the
// requested changes applied and returns the new descriptor. If the new
// descriptor cannot be registered the old one is put back.
func (s *CurrencyService) ReplaceCurrency(ctx context.Context, code, namespace string, req dto.UpdateCurrencyRequest, userID string) (*domain.CurrencyInfo, error) {
	builder, err := NewCurrencyBuilder(code, namespace, s.registry)
	if err != nil {
		return nil, err
	}

	old, err := UnregisterCurrency(s.registry, code, namespace)
	if err != nil {
		return nil, err
	}
	builder.LoadFrom(old)

	if err := applyCurrencyUpdate(builder, req); err != nil {
		s.restore(ctx, old)
		return nil, err
	}

	info, err := builder.Register()
	if err != nil {
		s.LogError(ctx, err, "Failed to register replacement currency", slog.String("code", code), slog.String("namespace", namespace))
		s.restore(ctx, old)
		return nil, err
	}

	s.LogInfo(ctx, "Currency replaced",
		slog.String("code", code),
		slog.String("namespace", namespace),
		slog.String("user_id", userID))
	return &info, nil
}

func (s *CurrencyService) restore(ctx context.Context, old domain.CurrencyInfo) {
	if err := restoreCurrency(s.registry, old); err != nil {
		s.LogError(ctx, err, "Failed to restore currency after aborted replace",
			slog.String("code", old.Code()), slog.String("namespace", old.Namespace()))
	}
}

// restoreCurrency re-adds a descriptor removed by an aborted replace.
func restoreCurrency(registry portsrepo.CurrencyWriter, old domain.CurrencyInfo) error {
	added, err := registry.TryAdd(old.Code(), old.Namespace(), old)
	if err != nil {
		return err
	}
	if !added {
		return apperrors.AlreadyRegistered(old.Code(), old.Namespace())
	}
	return nil
}

func applyCurrencyUpdate(b *CurrencyBuilder, req dto.UpdateCurrencyRequest) error {
	if req.EnglishName != nil {
		b.EnglishName = *req.EnglishName
	}
	if req.Symbol != nil {
		b.Symbol = *req.Symbol
	}
	if req.NumericCode != nil {
		b.NumericCode = *req.NumericCode
	}
	fiveBased := req.FiveBased != nil && *req.FiveBased
	digits, ok, err := mapping.ToDecimalDigits(req.DecimalDigits, fiveBased)
	if err != nil {
		return err
	}
	if ok {
		b.DecimalDigits = digits
	} else if req.FiveBased != nil && b.DecimalDigits.Kind() == domain.DigitsFiveBased {
		// fiveBased=false without a count drops back to the default
		b.DecimalDigits = domain.MustDigits(2)
	}
	if req.ValidFrom != nil {
		b.ValidFrom = req.ValidFrom
	}
	if req.ValidTo != nil {
		b.ValidTo = req.ValidTo
	}
	return nil
}

func (s *CurrencyService) UnregisterCurrency(ctx context.Context, code, namespace, userID string) (*domain.CurrencyInfo, error) {
	info, err := UnregisterCurrency(s.registry, code, namespace)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Currency unregistered",
		slog.String("code", code),
		slog.String("namespace", namespace),
		slog.String("user_id", userID))
	return &info, nil
}
