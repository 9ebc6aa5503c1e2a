package mathdecl

import (
	"errors"
	"sort"
	"testing"

	"github.com/eaburns/mathsig/config"
	"github.com/eaburns/mathsig/overload"
	"github.com/eaburns/mathsig/types"
	"github.com/google/go-cmp/cmp"
)

var sigOpt = cmp.Comparer(func(a, b *overload.Signature) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Eq(b)
})

func tuple(elems ...types.Type) types.Type { return types.NewTuple(elems...) }

func args(ts ...types.Type) []types.Type { return ts }

func runtime(major, minor int) config.Runtime {
	rt := config.Default()
	rt.Version = config.Version{Major: major, Minor: minor}
	return rt
}

func TestResolve(t *testing.T) {
	r := Registry(config.Default())
	tests := []struct {
		id   overload.Ident
		args []types.Type
		want *overload.Signature
	}{
		{id: "math.exp", args: args(i64), want: sig(f64, i64)},
		{id: "math.exp", args: args(intc), want: sig(f64, i64)},
		{id: "math.sqrt", args: args(f32), want: sig(f32, f32)},
		{id: "math.erf", args: args(u64), want: sig(f64, u64)},
		{id: "math.expm1", args: args(f64), want: sig(f64, f64)},
		{id: "math.atan2", args: args(f32, f32), want: sig(f32, f32, f32)},
		{id: "math.atan2", args: args(intc, u64), want: sig(f64, u64, u64)},
		{id: "math.hypot", args: args(f32, f64), want: sig(f64, f64, f64)},
		{id: "math.trunc", args: args(intp), want: sig(intp, intp)},
		{id: "math.trunc", args: args(f32), want: sig(i64, f32)},
		{id: "math.floor", args: args(f64), want: sig(i64, f64)},
		{id: "math.ceil", args: args(boolean), want: sig(i64, i64)},
		{id: "math.copysign", args: args(intc, intc), want: sig(f64, f64, f64)},
		{id: "math.isnan", args: args(u64), want: sig(boolean, u64)},
		{id: "math.isinf", args: args(f32), want: sig(boolean, f32)},
		{id: "math.isfinite", args: args(intc), want: sig(boolean, i64)},
		{id: "math.pow", args: args(f32, i64), want: sig(f64, f64, i64)},
		{id: "math.pow", args: args(f32, f32), want: sig(f32, f32, f32)},
		{id: "math.frexp", args: args(f64), want: sig(tuple(f64, intc), f64)},
		{id: "math.frexp", args: args(intc), want: sig(tuple(f64, intc), f64)},
		{id: "math.ldexp", args: args(f32, boolean), want: sig(f32, f32, intc)},
	}
	for _, test := range tests {
		got, err := r.Resolve(test.id, test.args)
		if err != nil {
			t.Errorf("Resolve(%s, %s) failed: %s", test.id, types.ListString(test.args), err)
			continue
		}
		if diff := cmp.Diff(test.want, got, sigOpt); diff != "" {
			t.Errorf("Resolve(%s, %s)=%s, want %s", test.id, types.ListString(test.args), got, test.want)
		}
	}
}

func TestResolveErrors(t *testing.T) {
	r := Registry(config.Default())

	_, err := r.Resolve("math.exp", args(tuple(f64, intc)))
	var nm *overload.NoMatchingSignature
	if !errors.As(err, &nm) {
		t.Errorf("Resolve(math.exp, (Tuple(float64, intc))) error=%v, want *NoMatchingSignature", err)
	} else if len(nm.Rejects) != Unary.Len() {
		t.Errorf("got %d rejects, want %d", len(nm.Rejects), Unary.Len())
	}

	_, err = r.Resolve("math.not_a_builtin", args(f64))
	var unk *overload.UnknownCallable
	if !errors.As(err, &unk) {
		t.Errorf("Resolve(math.not_a_builtin, (float64)) error=%v, want *UnknownCallable", err)
	}

	_, err = r.Resolve("math.trunc", args(f64, f64))
	if !errors.As(err, &nm) {
		t.Errorf("Resolve(math.trunc, (float64, float64)) error=%v, want *NoMatchingSignature", err)
	}
}

// Every case of every builtin resolves to itself on its own parameter types.
func TestExactMatch(t *testing.T) {
	r := Registry(config.Default())
	for _, id := range r.Idents() {
		tmpl, _ := r.Lookup(id)
		for _, c := range tmpl.Cases() {
			got, err := r.Resolve(id, c.Parms())
			if err != nil {
				t.Errorf("Resolve(%s, %s) failed: %s", id, types.ListString(c.Parms()), err)
				continue
			}
			if got != c {
				t.Errorf("Resolve(%s, %s)=%s, want %s", id, types.ListString(c.Parms()), got, c)
			}
		}
	}
}

func TestAliases(t *testing.T) {
	r := Registry(config.Default())
	for _, id := range r.Idents() {
		tmpl, _ := r.Lookup(id)
		for _, alias := range r.Aliases(id) {
			other, ok := r.Lookup(alias)
			if !ok || other != tmpl {
				t.Errorf("%s and its alias %s are bound to different templates", id, alias)
			}
		}
	}
	exp, _ := r.Lookup("math.exp")
	if exp != Unary {
		t.Errorf("math.exp is bound to %s, want unary", exp)
	}
	want := append([]overload.Ident{"math.erf", "math.erfc", "math.gamma", "math.lgamma"}, unaryIdents...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	if diff := cmp.Diff(want, r.Aliases("math.sin")); diff != "" {
		t.Errorf("Aliases(math.sin): %s", diff)
	}
	if diff := cmp.Diff([]overload.Ident{"math.atan2", "math.hypot"}, r.Aliases("math.hypot")); diff != "" {
		t.Errorf("Aliases(math.hypot): %s", diff)
	}
	if diff := cmp.Diff([]overload.Ident{"math.ceil", "math.floor"}, r.Aliases("math.floor")); diff != "" {
		t.Errorf("Aliases(math.floor): %s", diff)
	}
}

func TestVersionGating(t *testing.T) {
	tests := []struct {
		rt       config.Runtime
		present  []overload.Ident
		absent   []overload.Ident
		floorF64 *overload.Signature
	}{
		{
			rt:       runtime(2, 6),
			absent:   []overload.Ident{"math.erf", "math.erfc", "math.gamma", "math.lgamma", "math.expm1", "math.isfinite"},
			floorF64: sig(f64, f64),
		},
		{
			rt:       runtime(2, 7),
			present:  []overload.Ident{"math.erf", "math.lgamma", "math.expm1"},
			absent:   []overload.Ident{"math.isfinite"},
			floorF64: sig(f64, f64),
		},
		{
			rt:       runtime(3, 0),
			present:  []overload.Ident{"math.gamma", "math.expm1"},
			absent:   []overload.Ident{"math.isfinite"},
			floorF64: sig(f64, f64),
		},
		{
			rt:       runtime(3, 1),
			present:  []overload.Ident{"math.erfc", "math.expm1"},
			absent:   []overload.Ident{"math.isfinite"},
			floorF64: sig(i64, f64),
		},
		{
			rt:       runtime(3, 2),
			present:  []overload.Ident{"math.erf", "math.expm1", "math.isfinite"},
			floorF64: sig(i64, f64),
		},
	}
	for _, test := range tests {
		r := Registry(test.rt)
		for _, id := range test.present {
			if _, ok := r.Lookup(id); !ok {
				t.Errorf("%s: %s is not registered", test.rt.Version, id)
			}
		}
		for _, id := range test.absent {
			if _, ok := r.Lookup(id); ok {
				t.Errorf("%s: %s is registered", test.rt.Version, id)
			}
			var unk *overload.UnknownCallable
			if _, err := r.Resolve(id, args(f64)); !errors.As(err, &unk) {
				t.Errorf("%s: Resolve(%s) error=%v, want *UnknownCallable", test.rt.Version, id, err)
			}
		}
		for _, id := range []overload.Ident{"math.floor", "math.ceil"} {
			got, err := r.Resolve(id, args(f64))
			if err != nil {
				t.Errorf("%s: Resolve(%s, (float64)) failed: %s", test.rt.Version, id, err)
				continue
			}
			if !got.Eq(test.floorF64) {
				t.Errorf("%s: Resolve(%s, (float64))=%s, want %s", test.rt.Version, id, got, test.floorF64)
			}
		}
	}
}

func TestOverrides(t *testing.T) {
	rt := runtime(3, 12)
	rt.Overrides = map[string]bool{config.IntFloorCeil: false, config.Isfinite: false}
	r := Registry(rt)
	got, err := r.Resolve("math.floor", args(f32))
	if err != nil {
		t.Fatalf("Resolve failed: %s", err)
	}
	if want := sig(f32, f32); !got.Eq(want) {
		t.Errorf("Resolve(math.floor, (float32))=%s, want %s", got, want)
	}
	if _, ok := r.Lookup("math.isfinite"); ok {
		t.Errorf("math.isfinite is registered")
	}
}

// Register uses the Builder it is given, so callers may add their own builtins.
func TestRegisterExtends(t *testing.T) {
	b := overload.NewBuilder(nil)
	Register(b, config.Default())
	b.Bind(overload.NewTemplate("fma", sig(f64, f64, f64, f64)), "math.fma")
	r := b.Freeze()
	if _, ok := r.Lookup("math.fma"); !ok {
		t.Errorf("math.fma is not registered")
	}
	if _, ok := r.Lookup("math.exp"); !ok {
		t.Errorf("math.exp is not registered")
	}
}

func TestRegisterTwicePanics(t *testing.T) {
	b := overload.NewBuilder(nil)
	Register(b, config.Default())
	defer func() {
		if recover() == nil {
			t.Errorf("second Register did not panic")
		}
	}()
	Register(b, config.Default())
}
