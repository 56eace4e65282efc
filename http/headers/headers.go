package headers

import (
	"iter"

	"github.com/indigo-web/utils/strcomp"
)

// Pair is a single header field. Both key and value are byte-level strings, meaning that
// every byte of the string is transmitted as is. Headers held by a response are always in
// this form.
type Pair struct {
	Key, Value string
}

// Headers is an ordered associative structure for header fields. It acts as a map but
// uses linear case-insensitive search instead, which proves to be more efficient on relatively
// low amount of entries, which is practically always the case for response headers.
//
// The pairs slice is never copied implicitly: the slice returned by Expose is the one which
// every subsequent mutation writes into.
type Headers struct {
	pairs []Pair
}

// New returns an empty instance of Headers.
func New() *Headers {
	return new(Headers)
}

// NewPrealloc returns an instance of Headers with pre-allocated underlying storage.
func NewPrealloc(n int) *Headers {
	return &Headers{
		pairs: make([]Pair, 0, n),
	}
}

// FromPairs wraps the passed pairs WITHOUT COPYING.
func FromPairs(pairs []Pair) *Headers {
	return &Headers{pairs: pairs}
}

// Add adds a new pair of key and value. Already existing entries with the same key are kept.
func (h *Headers) Add(key, value string) *Headers {
	h.pairs = append(h.pairs, Pair{
		Key:   key,
		Value: value,
	})
	return h
}

// Set overrides the value of the first entry matching the key and removes the rest of them.
// If there's no such entry, a new one is appended.
func (h *Headers) Set(key, value string) *Headers {
	for i, pair := range h.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			h.pairs[i].Value = value
			h.pairs = deleteFrom(h.pairs, i+1, key)
			return h
		}
	}

	return h.Add(key, value)
}

// SetDefault appends the pair only if there's no entry matching the key yet. Returns the
// value, which is effectively stored by the key after the call.
func (h *Headers) SetDefault(key, value string) string {
	if existing, found := h.Get(key); found {
		return existing
	}

	h.Add(key, value)
	return value
}

// Delete removes all the entries matching the key.
func (h *Headers) Delete(key string) *Headers {
	h.pairs = deleteFrom(h.pairs, 0, key)
	return h
}

// Value returns the first value, corresponding to the key. Otherwise, empty string is returned
func (h *Headers) Value(key string) string {
	return h.ValueOr(key, "")
}

// ValueOr returns either the first value corresponding to the key or custom value, defined
// via the second parameter.
func (h *Headers) ValueOr(key, or string) string {
	value, found := h.Get(key)
	if !found {
		return or
	}

	return value
}

// Get returns a value and a bool, indicating whether the value was found. If it wasn't, it'll
// be an empty string.
func (h *Headers) Get(key string) (value string, found bool) {
	for _, pair := range h.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			return pair.Value, true
		}
	}

	return "", false
}

// Has indicates, whether there's an entry of the key.
func (h *Headers) Has(key string) bool {
	_, found := h.Get(key)
	return found
}

// Iter returns an iterator over the pairs in their insertion order.
func (h *Headers) Iter() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, pair := range h.pairs {
			if !yield(pair.Key, pair.Value) {
				break
			}
		}
	}
}

// Len returns a number of stored pairs.
func (h *Headers) Len() int {
	return len(h.pairs)
}

// Empty reports whether there are no header fields.
func (h *Headers) Empty() bool {
	return h.Len() == 0
}

// Clone creates a deep copy, which may be used later or stored somewhere safely.
func (h *Headers) Clone() *Headers {
	if len(h.pairs) == 0 {
		return New()
	}

	pairs := make([]Pair, len(h.pairs))
	copy(pairs, h.pairs)

	return &Headers{pairs: pairs}
}

// Expose exposes the underlying pairs slice.
func (h *Headers) Expose() []Pair {
	return h.pairs
}

// deleteFrom removes all the entries matching the key starting from the offset. Order of the
// rest is preserved.
func deleteFrom(pairs []Pair, offset int, key string) []Pair {
	n := offset
	for i := offset; i < len(pairs); i++ {
		if strcomp.EqualFold(key, pairs[i].Key) {
			continue
		}

		pairs[n] = pairs[i]
		n++
	}

	return pairs[:n]
}
