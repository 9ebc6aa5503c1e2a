package overload

import (
	"github.com/eaburns/mathsig/types"
	"github.com/google/go-cmp/cmp"
)

var diffOpts = []cmp.Option{
	cmp.Comparer(func(a, b *Signature) bool {
		if a == nil || b == nil {
			return a == b
		}
		return a.Eq(b)
	}),
	cmp.Comparer(func(a, b types.Type) bool { return types.Eq(a, b) }),
}

var (
	boolean = types.Boolean
	intc    = types.Intc
	intp    = types.Intp
	i64     = types.Int64
	u64     = types.Uint64
	f32     = types.Float32
	f64     = types.Float64
)

func tuple(elems ...types.Type) types.Type { return types.NewTuple(elems...) }

func args(ts ...types.Type) []types.Type { return ts }

// registry returns a frozen Registry binding each Template to the Ident of its name.
func registry(ts ...*Template) *Registry {
	b := NewBuilder(nil)
	for _, t := range ts {
		b.Bind(t, Ident(t.Name()))
	}
	return b.Freeze()
}
