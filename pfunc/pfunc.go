// Package pfunc implements the partial function table that underpins every
// transition table in this module: an ordered key→value map with an
// explicit domain test and an error-raising application, per spec.md §4.B.
package pfunc

import (
	"sort"

	verr "github.com/go-relang/relang/error"
)

// Less is a strict total order over K, supplied by the caller because Go
// has no builtin ordering constraint that covers every key type this
// module uses (runes, ints, and composite state-set keys alike).
type Less[K comparable] func(a, b K) bool

// Func is a partial function K ⇸ V. The zero value is not usable; build
// one with New.
type Func[K comparable, V any] struct {
	less    Less[K]
	entries map[K]V
	sorted  []K
	dirty   bool
}

// New builds an empty partial function ordered by less.
func New[K comparable, V any](less Less[K]) *Func[K, V] {
	return &Func[K, V]{
		less:    less,
		entries: map[K]V{},
	}
}

// Insert adds k→v to the function's domain, overwriting any existing value
// for k.
func (f *Func[K, V]) Insert(k K, v V) {
	if _, ok := f.entries[k]; !ok {
		f.dirty = true
	}
	f.entries[k] = v
}

// Erase removes k from the function's domain. It is a no-op if k is
// already outside the domain.
func (f *Func[K, V]) Erase(k K) {
	if _, ok := f.entries[k]; ok {
		delete(f.entries, k)
		f.dirty = true
	}
}

// InDomain reports whether k is in the function's domain.
func (f *Func[K, V]) InDomain(k K) bool {
	_, ok := f.entries[k]
	return ok
}

// Apply returns f(k), failing with OutOfDomain if k is not in the domain.
func (f *Func[K, V]) Apply(k K) (V, error) {
	v, ok := f.entries[k]
	if !ok {
		var zero V
		return zero, &verr.CoreError{Cause: verr.OutOfDomain}
	}
	return v, nil
}

// ApplySet applies f pointwise to ks, failing on the first key that is not
// in the domain.
func (f *Func[K, V]) ApplySet(ks []K) ([]V, error) {
	vs := make([]V, 0, len(ks))
	for _, k := range ks {
		v, err := f.Apply(k)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// Len returns the number of keys in the domain.
func (f *Func[K, V]) Len() int {
	return len(f.entries)
}

// Keys returns the domain in ascending order.
func (f *Func[K, V]) Keys() []K {
	f.reindex()
	out := make([]K, len(f.sorted))
	copy(out, f.sorted)
	return out
}

// Each calls fn for every k→v pair in the function, in ascending key order.
func (f *Func[K, V]) Each(fn func(k K, v V)) {
	f.reindex()
	for _, k := range f.sorted {
		fn(k, f.entries[k])
	}
}

func (f *Func[K, V]) reindex() {
	if !f.dirty && len(f.sorted) == len(f.entries) {
		return
	}
	f.sorted = f.sorted[:0]
	for k := range f.entries {
		f.sorted = append(f.sorted, k)
	}
	sort.Slice(f.sorted, func(i, j int) bool {
		return f.less(f.sorted[i], f.sorted[j])
	})
	f.dirty = false
}

// Clone returns a deep-enough copy of f: a new entries map and a fresh
// sorted-key cache, sharing no mutable state with f.
func (f *Func[K, V]) Clone() *Func[K, V] {
	g := New[K, V](f.less)
	f.Each(func(k K, v V) {
		g.Insert(k, v)
	})
	return g
}
