package registry

import (
	"fmt"
	"iter"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/SscSPs/currency_money/internal/apperrors"
	"github.com/SscSPs/currency_money/internal/core/domain"
)

const (
	// DefaultMaxCurrencies caps the descriptor store, stale slots included.
	DefaultMaxCurrencies = 32767
	// DefaultMaxNamespaces caps the namespace table.
	DefaultMaxNamespaces = 256
)

// snapshot is one consistent, never-mutated view of the registry. Writers build
// a new snapshot and publish it with a single atomic store.
//
// store is append-only and may share its backing array with older snapshots;
// each snapshot only reads the prefix it was published with.
type snapshot struct {
	namespaces []string
	nsIndex    map[string]int
	index      map[key]int
	store      []domain.CurrencyInfo
}

func (s *snapshot) lookup(code string, nsIdx int) (domain.CurrencyInfo, bool) {
	k, ok := keyOf(code, nsIdx)
	if !ok {
		return domain.CurrencyInfo{}, false
	}
	slot, ok := s.index[k]
	if !ok {
		return domain.CurrencyInfo{}, false
	}
	return s.store[slot], true
}

func (s *snapshot) reachable(slot int, info domain.CurrencyInfo) bool {
	nsIdx, ok := s.nsIndex[info.Namespace()]
	if !ok {
		return false
	}
	k, ok := keyOf(info.Code(), nsIdx)
	if !ok {
		return false
	}
	live, ok := s.index[k]
	return ok && live == slot
}

// Registry is a namespace-partitioned catalog of currencies. It is safe for
// concurrent use: writers serialize on a mutex, readers never block.
type Registry struct {
	mu    sync.Mutex
	state atomic.Pointer[snapshot]

	logger        *slog.Logger
	maxCurrencies int
	maxNamespaces int
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used to trace mutations.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// WithCapacity overrides the store and namespace ceilings.
func WithCapacity(maxCurrencies, maxNamespaces int) Option {
	return func(r *Registry) {
		r.maxCurrencies = maxCurrencies
		r.maxNamespaces = maxNamespaces
	}
}

// New returns an empty registry whose namespace table is seeded with ISO-4217
// and ISO-4217-HISTORIC, in that order.
func New(opts ...Option) *Registry {
	r := &Registry{
		logger:        slog.Default(),
		maxCurrencies: DefaultMaxCurrencies,
		maxNamespaces: DefaultMaxNamespaces,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.maxNamespaces > maxKeyNSIndex+1 {
		r.maxNamespaces = maxKeyNSIndex + 1
	}
	r.state.Store(&snapshot{
		namespaces: []string{domain.NamespaceISO4217, domain.NamespaceISO4217Historic},
		nsIndex:    map[string]int{domain.NamespaceISO4217: 0, domain.NamespaceISO4217Historic: 1},
		index:      map[key]int{},
	})
	return r
}

// NewWithDefaults returns a registry loaded with the active and historic
// ISO-4217 currencies.
func NewWithDefaults(opts ...Option) (*Registry, error) {
	r := New(opts...)
	infos, err := bootstrapCurrencies()
	if err != nil {
		return nil, fmt.Errorf("invalid bootstrap data: %w", err)
	}
	if err := r.load(infos); err != nil {
		return nil, fmt.Errorf("failed to load bootstrap currencies: %w", err)
	}
	return r, nil
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := NewWithDefaults()
	if err != nil {
		panic(err)
	}
	return r
})

// Default returns the process-wide registry, constructing it on first use.
func Default() *Registry { return defaultRegistry() }

// load publishes all infos in one snapshot. Duplicates are an error.
func (r *Registry) load(infos []domain.CurrencyInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.state.Load().clone()
	for _, info := range infos {
		nsIdx, err := r.ensureNamespace(next, info.Namespace())
		if err != nil {
			return err
		}
		k, ok := keyOf(info.Code(), nsIdx)
		if !ok {
			return apperrors.ArgumentOutOfRange("code", "invalid currency code "+info.Code())
		}
		if _, exists := next.index[k]; exists {
			return apperrors.AlreadyRegistered(info.Code(), info.Namespace())
		}
		if len(next.store) >= r.maxCurrencies {
			return r.storeFull()
		}
		next.index[k] = len(next.store)
		next.store = append(next.store, info)
	}
	r.state.Store(next)
	r.logger.Debug("Currencies loaded", slog.Int("count", len(infos)))
	return nil
}

// clone copies the mutable maps; namespaces and store are shared and only
// ever appended to.
func (s *snapshot) clone() *snapshot {
	return &snapshot{
		namespaces: s.namespaces,
		nsIndex:    maps.Clone(s.nsIndex),
		index:      maps.Clone(s.index),
		store:      s.store,
	}
}

func (r *Registry) ensureNamespace(s *snapshot, namespace string) (int, error) {
	if idx, ok := s.nsIndex[namespace]; ok {
		return idx, nil
	}
	if len(s.namespaces) >= r.maxNamespaces {
		return 0, apperrors.ArgumentOutOfRange("namespace", "namespace table is full ("+strconv.Itoa(r.maxNamespaces)+")")
	}
	idx := len(s.namespaces)
	s.namespaces = append(slices.Clip(s.namespaces), namespace)
	s.nsIndex[namespace] = idx
	return idx, nil
}

func (r *Registry) storeFull() error {
	return apperrors.ArgumentOutOfRange("currencies", "currency store is full ("+strconv.Itoa(r.maxCurrencies)+")")
}

// RegisterNamespace adds namespace to the table if it is new and returns its
// stable index.
func (r *Registry) RegisterNamespace(namespace string) (int, error) {
	if namespace == "" {
		return 0, apperrors.ArgumentEmpty("namespace")
	}
	if idx, ok := r.state.Load().nsIndex[namespace]; ok {
		return idx, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	cur := r.state.Load()
	if idx, ok := cur.nsIndex[namespace]; ok {
		return idx, nil
	}
	next := &snapshot{
		namespaces: cur.namespaces,
		nsIndex:    maps.Clone(cur.nsIndex),
		index:      cur.index,
		store:      cur.store,
	}
	idx, err := r.ensureNamespace(next, namespace)
	if err != nil {
		return 0, err
	}
	r.state.Store(next)
	r.logger.Debug("Namespace registered", slog.String("namespace", namespace), slog.Int("index", idx))
	return idx, nil
}

// Get returns the currency with code, searching ISO-4217 first, then
// ISO-4217-HISTORIC, then custom namespaces in registration order.
func (r *Registry) Get(code string) (domain.CurrencyInfo, error) {
	if code == "" {
		return domain.CurrencyInfo{}, apperrors.ArgumentEmpty("code")
	}
	if info, ok := r.TryGet(code); ok {
		return info, nil
	}
	return domain.CurrencyInfo{}, apperrors.UnknownCurrency(code, "")
}

// TryGet is Get without the error.
func (r *Registry) TryGet(code string) (domain.CurrencyInfo, bool) {
	s := r.state.Load()
	for nsIdx := range s.namespaces {
		if info, ok := s.lookup(code, nsIdx); ok {
			return info, true
		}
	}
	return domain.CurrencyInfo{}, false
}

// GetInNamespace returns the currency registered under exactly (code, namespace).
func (r *Registry) GetInNamespace(code, namespace string) (domain.CurrencyInfo, error) {
	if code == "" {
		return domain.CurrencyInfo{}, apperrors.ArgumentEmpty("code")
	}
	if namespace == "" {
		return domain.CurrencyInfo{}, apperrors.ArgumentEmpty("namespace")
	}
	s := r.state.Load()
	nsIdx, ok := s.nsIndex[namespace]
	if !ok {
		return domain.CurrencyInfo{}, apperrors.UnknownNamespace(namespace)
	}
	info, ok := s.lookup(code, nsIdx)
	if !ok {
		return domain.CurrencyInfo{}, apperrors.UnknownCurrency(code, namespace)
	}
	return info, nil
}

// TryGetInNamespace is GetInNamespace without the error.
func (r *Registry) TryGetInNamespace(code, namespace string) (domain.CurrencyInfo, bool) {
	s := r.state.Load()
	nsIdx, ok := s.nsIndex[namespace]
	if !ok {
		return domain.CurrencyInfo{}, false
	}
	return s.lookup(code, nsIdx)
}

// TryAdd registers info under (code, namespace), registering the namespace if
// it is new. It returns false, without changing anything, when the key is
// already in use. Exceeding a capacity ceiling is an error.
func (r *Registry) TryAdd(code, namespace string, info domain.CurrencyInfo) (bool, error) {
	if code == "" {
		return false, apperrors.ArgumentEmpty("code")
	}
	if namespace == "" {
		return false, apperrors.ArgumentEmpty("namespace")
	}
	if info.Code() != code || info.Namespace() != namespace {
		return false, apperrors.ArgumentOutOfRange("currency",
			fmt.Sprintf("descriptor %s::%s does not match key %s::%s", info.Namespace(), info.Code(), namespace, code))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.state.Load()
	if nsIdx, ok := cur.nsIndex[namespace]; ok {
		if _, exists := cur.lookup(code, nsIdx); exists {
			return false, nil
		}
	}

	next := cur.clone()
	nsIdx, err := r.ensureNamespace(next, namespace)
	if err != nil {
		return false, err
	}
	k, ok := keyOf(code, nsIdx)
	if !ok {
		return false, apperrors.ArgumentOutOfRange("code", "invalid currency code "+code)
	}
	if len(next.store) >= r.maxCurrencies {
		return false, r.storeFull()
	}
	next.index[k] = len(next.store)
	next.store = append(next.store, info)
	r.state.Store(next)

	r.logger.Debug("Currency registered", slog.String("code", code), slog.String("namespace", namespace))
	return true, nil
}

// TryRemove drops the index entry of (code, namespace) and returns the
// descriptor it pointed at. The store slot stays allocated but unreachable.
func (r *Registry) TryRemove(code, namespace string) (domain.CurrencyInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.state.Load()
	nsIdx, ok := cur.nsIndex[namespace]
	if !ok {
		return domain.CurrencyInfo{}, false
	}
	k, ok := keyOf(code, nsIdx)
	if !ok {
		return domain.CurrencyInfo{}, false
	}
	slot, ok := cur.index[k]
	if !ok {
		return domain.CurrencyInfo{}, false
	}

	index := maps.Clone(cur.index)
	delete(index, k)
	r.state.Store(&snapshot{
		namespaces: cur.namespaces,
		nsIndex:    cur.nsIndex,
		index:      index,
		store:      cur.store,
	})

	r.logger.Debug("Currency removed", slog.String("code", code), slog.String("namespace", namespace))
	return cur.store[slot], true
}

// All yields every reachable currency in registration order. Each iteration
// works on the snapshot current when it starts, so concurrent mutation never
// affects a running enumeration.
func (r *Registry) All() iter.Seq[domain.CurrencyInfo] {
	return func(yield func(domain.CurrencyInfo) bool) {
		s := r.state.Load()
		for slot, info := range s.store {
			if !s.reachable(slot, info) {
				continue
			}
			if !yield(info) {
				return
			}
		}
	}
}

// InNamespace yields the reachable currencies of one namespace.
func (r *Registry) InNamespace(namespace string) iter.Seq[domain.CurrencyInfo] {
	return func(yield func(domain.CurrencyInfo) bool) {
		for info := range r.All() {
			if info.Namespace() != namespace {
				continue
			}
			if !yield(info) {
				return
			}
		}
	}
}

// Namespaces returns the namespace table in index order.
func (r *Registry) Namespaces() []string {
	return slices.Clone(r.state.Load().namespaces)
}

// NamespaceIndex returns the stable index assigned to namespace.
func (r *Registry) NamespaceIndex(namespace string) (int, bool) {
	idx, ok := r.state.Load().nsIndex[namespace]
	return idx, ok
}

// Len is the number of reachable currencies.
func (r *Registry) Len() int { return len(r.state.Load().index) }

// StoreSize is the number of allocated store slots, stale ones included.
func (r *Registry) StoreSize() int { return len(r.state.Load().store) }

// Snapshot is an opaque copy of registry state.
type Snapshot struct {
	s *snapshot
}

// Snapshot captures the current state.
func (r *Registry) Snapshot() Snapshot { return Snapshot{s: r.state.Load()} }

// Restore reinstates a state captured by Snapshot.
func (r *Registry) Restore(snap Snapshot) {
	if snap.s == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	// Clip so later appends reallocate instead of overwriting slots that newer,
	// discarded snapshots may still be reading.
	r.state.Store(&snapshot{
		namespaces: slices.Clip(snap.s.namespaces),
		nsIndex:    snap.s.nsIndex,
		index:      snap.s.index,
		store:      slices.Clip(snap.s.store),
	})
}
