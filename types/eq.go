package types

// Eq returns whether two types are structurally equal.
// A nil Type is only equal to another nil Type.
func Eq(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.eq(b)
}

// EqAll returns whether two type lists have the same length
// and are pairwise equal.
func EqAll(as, bs []Type) bool {
	if len(as) != len(bs) {
		return false
	}
	for i, a := range as {
		if !Eq(a, bs[i]) {
			return false
		}
	}
	return true
}

func (b Basic) eq(other Type) bool {
	o, ok := other.(Basic)
	return ok && b == o
}

func (t *Tuple) eq(other Type) bool {
	o, ok := other.(*Tuple)
	if !ok || len(o.elems) != len(t.elems) {
		return false
	}
	for i, tElem := range t.elems {
		if !tElem.eq(o.elems[i]) {
			return false
		}
	}
	return true
}
