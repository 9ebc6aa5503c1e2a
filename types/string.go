package types

import (
	"strconv"
	"strings"
)

func (b Basic) String() string {
	return b.buildString(new(strings.Builder)).String()
}

func (t *Tuple) String() string {
	return t.buildString(new(strings.Builder)).String()
}

func (b Basic) buildString(w *strings.Builder) *strings.Builder {
	if !b.valid() {
		w.WriteString("Basic(")
		w.WriteString(strconv.Itoa(int(b)))
		w.WriteRune(')')
		return w
	}
	w.WriteString(basicNames[b])
	return w
}

func (t *Tuple) buildString(w *strings.Builder) *strings.Builder {
	w.WriteString("Tuple(")
	for i, e := range t.elems {
		if i > 0 {
			w.WriteString(", ")
		}
		e.buildString(w)
	}
	w.WriteRune(')')
	return w
}

// ListString returns the parenthesized, comma-separated list of types,
// as written for the arguments of a call.
func ListString(ts []Type) string {
	return BuildListString(new(strings.Builder), ts).String()
}

// BuildListString writes the parenthesized, comma-separated list of types to w.
func BuildListString(w *strings.Builder, ts []Type) *strings.Builder {
	w.WriteRune('(')
	for i, t := range ts {
		if i > 0 {
			w.WriteString(", ")
		}
		if t == nil {
			w.WriteString("<nil>")
			continue
		}
		t.buildString(w)
	}
	w.WriteRune(')')
	return w
}
