package fibonacci

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"sync"

	"golang.org/x/exp/constraints"

	"github.com/agbru/fibs/internal/numeric"
)

// Registry is a thread-safe set of kinds indexed by name.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]Kind
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]Kind)}
}

// Register adds k, replacing any kind already registered under its name.
func (r *Registry) Register(k Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds[k.Name()] = k
}

// Get returns the kind registered under name.
//
// Parameters:
//   - name: The registry key, for example "uint64".
//
// Returns:
//   - Kind: The registered kind.
//   - error: An error naming the known kinds if name is not registered.
func (r *Registry) Get(name string) (Kind, error) {
	r.mu.RLock()
	k, ok := r.kinds[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown numeric type %q (available: %v)", name, r.Names())
	}
	return k, nil
}

// MustGet is like Get but panics if the kind is not registered.
func (r *Registry) MustGet(name string) Kind {
	k, err := r.Get(name)
	if err != nil {
		panic(fmt.Sprintf("fibonacci: required kind not found: %s", name))
	}
	return k
}

// Has reports whether a kind is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.kinds[name]
	return ok
}

// Names returns the registered names in alphabetical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Kinds returns the registered kinds ordered by name.
func (r *Registry) Kinds() []Kind {
	names := r.Names()
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]Kind, 0, len(names))
	for _, name := range names {
		if k, ok := r.kinds[name]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

var defaultRegistry = newBuiltinRegistry()

// DefaultRegistry returns the process-wide registry holding the built-in
// kinds.
func DefaultRegistry() *Registry { return defaultRegistry }

// Register adds k to the default registry.
func Register(k Kind) { defaultRegistry.Register(k) }

// Get looks name up in the default registry.
func Get(name string) (Kind, error) { return defaultRegistry.Get(name) }

// MustGet looks name up in the default registry and panics if it is missing.
func MustGet(name string) Kind { return defaultRegistry.MustGet(name) }

// Names lists the kinds of the default registry.
func Names() []string { return defaultRegistry.Names() }

// Kinds returns the kinds of the default registry ordered by name.
func Kinds() []Kind { return defaultRegistry.Kinds() }

func formatSigned[T constraints.Signed](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

func formatUnsigned[T constraints.Unsigned](v T) string {
	return strconv.FormatUint(uint64(v), 10)
}

func newBuiltinRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewKind("int8", "8-bit signed integer", true, numeric.Int8, formatSigned[int8]))
	r.Register(NewKind("int16", "16-bit signed integer", true, numeric.Int16, formatSigned[int16]))
	r.Register(NewKind("int32", "32-bit signed integer", true, numeric.Int32, formatSigned[int32]))
	r.Register(NewKind("int64", "64-bit signed integer", true, numeric.Int64, formatSigned[int64]))
	r.Register(NewKind("int", "platform signed integer", true, numeric.Int, formatSigned[int]))
	r.Register(NewKind("uint8", "8-bit unsigned integer", true, numeric.Uint8, formatUnsigned[uint8]))
	r.Register(NewKind("uint16", "16-bit unsigned integer", true, numeric.Uint16, formatUnsigned[uint16]))
	r.Register(NewKind("uint32", "32-bit unsigned integer", true, numeric.Uint32, formatUnsigned[uint32]))
	r.Register(NewKind("uint64", "64-bit unsigned integer", true, numeric.Uint64, formatUnsigned[uint64]))
	r.Register(NewKind("uint", "platform unsigned integer", true, numeric.Uint, formatUnsigned[uint]))
	r.Register(NewKind[numeric.Int128]("int128", "128-bit signed integer", true,
		numeric.Int128Arithmetic{}, numeric.Int128.String))
	r.Register(NewKind[numeric.Uint128]("uint128", "128-bit unsigned integer", true,
		numeric.Uint128Arithmetic{}, numeric.Uint128.String))
	r.Register(NewKind[*big.Int]("big", "arbitrary-precision integer (math/big)", false,
		numeric.BigInt{}, (*big.Int).String))
	return r
}
