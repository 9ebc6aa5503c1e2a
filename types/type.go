// Package types has the closed set of numeric, boolean, and tuple types
// used to type builtin math calls, and the widening lattice between them.
package types

import (
	"fmt"
	"strings"
)

// A Type is either a Basic or a *Tuple.
// Types are immutable and compared structurally with Eq.
type Type interface {
	// String returns a human-readable string representation
	// appropriate for error messages.
	String() string
	buildString(w *strings.Builder) *strings.Builder

	eq(Type) bool
}

// Basic is a scalar type.
type Basic int

const (
	Boolean Basic = iota + 1
	Intc          // native-width signed int
	Intp          // pointer-width signed int
	Int64
	Uint64
	Float32
	Float64
)

// nBasic is one more than the largest Basic, so it can size tables indexed by Basic.
const nBasic = int(Float64) + 1

var basicNames = [nBasic]string{
	Boolean: "boolean",
	Intc:    "intc",
	Intp:    "intp",
	Int64:   "int64",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
}

// Basics returns all Basic types in declaration order.
func Basics() []Basic {
	return []Basic{Boolean, Intc, Intp, Int64, Uint64, Float32, Float64}
}

// LookupBasic returns the Basic type with the given name.
func LookupBasic(name string) (Basic, bool) {
	for b, n := range basicNames {
		if n != "" && n == name {
			return Basic(b), true
		}
	}
	return 0, false
}

func (b Basic) valid() bool { return b > 0 && int(b) < nBasic }

// A Tuple is a fixed-arity, heterogeneous product of Types.
type Tuple struct {
	elems []Type
}

// NewTuple returns a new Tuple of the given element types.
// The elems slice is copied.
func NewTuple(elems ...Type) *Tuple {
	for i, e := range elems {
		if e == nil {
			panic(fmt.Sprintf("nil tuple element %d", i))
		}
	}
	return &Tuple{elems: append([]Type(nil), elems...)}
}

// Len returns the number of elements of the tuple.
func (t *Tuple) Len() int { return len(t.elems) }

// Elem returns the ith element type.
func (t *Tuple) Elem(i int) Type { return t.elems[i] }

// Elems returns a copy of the element types.
func (t *Tuple) Elems() []Type { return append([]Type(nil), t.elems...) }
