package glare

import (
	"fmt"
	"strings"
)

// Pair is a key and its associated value.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// MakePair is a shorthand for the composite literal.
func MakePair[K, V any](k K, v V) Pair[K, V] {
	return Pair[K, V]{k, v}
}

// Order of a depth first walk.
type Order byte

const (
	PreOrder  Order = iota // self, left, right
	InOrder                // left, self, right
	PostOrder              // left, right, self
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre"
	case InOrder:
		return "in"
	case PostOrder:
		return "post"
	default:
		return fmt.Sprintf("Order(%d)", byte(o))
	}
}

// ParseOrder accepts "pre", "in" or "post", case insensitive, optionally
// followed by "order".
func ParseOrder(s string) (Order, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "order") {
	case "pre":
		return PreOrder, nil
	case "in":
		return InOrder, nil
	case "post":
		return PostOrder, nil
	}
	return 0, fmt.Errorf("unknown traversal order %q", s)
}

// InvariantError is the value panicked with when a structural precondition
// is broken. Seeing one means a bug in the container, not in the caller's data.
type InvariantError struct {
	Msg string
}

func (e InvariantError) Error() string {
	return "invariant violated: " + e.Msg
}

// Assert panics with an InvariantError built from format and args if ok is false.
func Assert(ok bool, format string, args ...any) {
	if !ok {
		panic(InvariantError{fmt.Sprintf(format, args...)})
	}
}
