package types

import "testing"

func TestEq(t *testing.T) {
	tests := []struct {
		typ  Type
		same []Type
		diff []Type
	}{
		{
			typ:  Int64,
			same: []Type{Int64},
			diff: []Type{Intc, Intp, Uint64, Float64, NewTuple(Int64)},
		},
		{
			typ:  Boolean,
			same: []Type{Boolean},
			diff: []Type{Intc, NewTuple()},
		},
		{
			typ:  NewTuple(Float64, Intc),
			same: []Type{NewTuple(Float64, Intc)},
			diff: []Type{
				NewTuple(Intc, Float64),
				NewTuple(Float64),
				NewTuple(Float64, Intc, Intc),
				NewTuple(Float32, Intc),
				Float64,
			},
		},
		{
			typ:  NewTuple(NewTuple(Int64), Boolean),
			same: []Type{NewTuple(NewTuple(Int64), Boolean)},
			diff: []Type{
				NewTuple(NewTuple(Uint64), Boolean),
				NewTuple(Int64, Boolean),
			},
		},
		{
			typ:  NewTuple(),
			same: []Type{NewTuple()},
			diff: []Type{NewTuple(Boolean)},
		},
	}
	for _, test := range tests {
		for _, s := range test.same {
			if !Eq(test.typ, s) || !Eq(s, test.typ) {
				t.Errorf("Eq(%s, %s)=false, want true", test.typ, s)
			}
		}
		for _, d := range test.diff {
			if Eq(test.typ, d) || Eq(d, test.typ) {
				t.Errorf("Eq(%s, %s)=true, want false", test.typ, d)
			}
		}
	}
}

func TestEqNil(t *testing.T) {
	if !Eq(nil, nil) {
		t.Errorf("Eq(nil, nil)=false, want true")
	}
	if Eq(nil, Int64) || Eq(Int64, nil) {
		t.Errorf("Eq(nil, int64)=true, want false")
	}
}

func TestTupleIsCopied(t *testing.T) {
	elems := []Type{Float64, Intc}
	tup := NewTuple(elems...)
	elems[0] = Boolean
	if !Eq(tup.Elem(0), Float64) {
		t.Errorf("tuple changed with its argument slice: %s", tup)
	}
	got := tup.Elems()
	got[1] = Boolean
	if !Eq(tup.Elem(1), Intc) {
		t.Errorf("tuple changed with its Elems slice: %s", tup)
	}
}

func TestEqAll(t *testing.T) {
	if !EqAll([]Type{Int64, Float32}, []Type{Int64, Float32}) {
		t.Errorf("EqAll of equal lists is false")
	}
	if EqAll([]Type{Int64}, []Type{Int64, Float32}) {
		t.Errorf("EqAll of different length lists is true")
	}
	if EqAll([]Type{Int64, Float64}, []Type{Int64, Float32}) {
		t.Errorf("EqAll of different lists is true")
	}
}
