// Package mathdecl declares the overload families of the builtin math functions.
package mathdecl

import (
	"github.com/eaburns/mathsig/config"
	"github.com/eaburns/mathsig/overload"
	"github.com/eaburns/mathsig/types"
)

var (
	boolean = types.Boolean
	intc    = types.Intc
	intp    = types.Intp
	i64     = types.Int64
	u64     = types.Uint64
	f32     = types.Float32
	f64     = types.Float64
)

var sig = overload.Sig

// Unary is the family of one-argument real functions.
var Unary = overload.NewTemplate("unary",
	sig(f64, i64),
	sig(f64, u64),
	sig(f32, f32),
	sig(f64, f64),
)

// Binary is the family of two-argument real functions
// that accept integer arguments.
var Binary = overload.NewTemplate("binary",
	sig(f64, i64, i64),
	sig(f64, u64, u64),
	sig(f32, f32, f32),
	sig(f64, f64, f64),
)

// Converter is the family of functions from a number to an integer.
// The float cases are explicit truncations, not widenings.
var Converter = overload.NewTemplate("converter",
	sig(intp, intp),
	sig(i64, i64),
	sig(u64, u64),
	sig(i64, f32),
	sig(i64, f64),
)

// Copysign is the family of copysign.
var Copysign = overload.NewTemplate("copysign",
	sig(f32, f32, f32),
	sig(f64, f64, f64),
)

// Predicate is the family of one-argument number classifiers.
var Predicate = overload.NewTemplate("predicate",
	sig(boolean, i64),
	sig(boolean, u64),
	sig(boolean, f32),
	sig(boolean, f64),
)

// Pow is the family of pow.
var Pow = overload.NewTemplate("pow",
	sig(f64, f64, i64),
	sig(f64, f64, u64),
	sig(f32, f32, f32),
	sig(f64, f64, f64),
)

// Frexp is the family of frexp.
var Frexp = overload.NewTemplate("frexp",
	sig(types.NewTuple(f64, intc), f64),
	sig(types.NewTuple(f32, intc), f32),
)

// Ldexp is the family of ldexp.
var Ldexp = overload.NewTemplate("ldexp",
	sig(f64, f64, intc),
	sig(f32, f32, intc),
)

var (
	expm1     = overload.Extend("expm1", Unary)
	isfinite  = overload.Extend("isfinite", Predicate)
	intFloor  = overload.Extend("floor_ceil", Converter)
	realFloor = overload.Extend("floor_ceil", Unary)
)

var unaryIdents = []overload.Ident{
	"math.exp",
	"math.fabs",
	"math.sqrt",
	"math.log",
	"math.log1p",
	"math.log10",
	"math.sin",
	"math.cos",
	"math.tan",
	"math.sinh",
	"math.cosh",
	"math.tanh",
	"math.asin",
	"math.acos",
	"math.atan",
	"math.asinh",
	"math.acosh",
	"math.atanh",
	"math.degrees",
	"math.radians",
}

// Register binds the builtin math identities to their families.
// The runtime's Facts are computed once and decide the conditional entries.
func Register(b *overload.Builder, rt config.Runtime) {
	facts := rt.Facts()
	always := func() bool { return true }

	b.Bind(Unary, unaryIdents...)
	b.RegisterIf(func() bool { return facts.SpecialFuncs }, Unary,
		"math.erf", "math.erfc", "math.gamma", "math.lgamma")
	b.RegisterIf(func() bool { return facts.Expm1 }, expm1, "math.expm1")

	b.Bind(Binary, "math.atan2", "math.hypot")
	b.Bind(Converter, "math.trunc")
	b.RegisterIf(func() bool { return facts.IntFloorCeil }, intFloor, "math.floor", "math.ceil")
	b.RegisterIf(func() bool { return !facts.IntFloorCeil }, realFloor, "math.floor", "math.ceil")

	b.RegisterIf(always, Copysign, "math.copysign")
	b.Bind(Predicate, "math.isinf", "math.isnan")
	b.RegisterIf(func() bool { return facts.Isfinite }, isfinite, "math.isfinite")
	b.Bind(Pow, "math.pow")
	b.Bind(Frexp, "math.frexp")
	b.Bind(Ldexp, "math.ldexp")
}

// Registry returns a frozen Registry of the builtin math functions
// for the given runtime, resolving with the types.Widening lattice.
func Registry(rt config.Runtime) *overload.Registry {
	b := overload.NewBuilder(types.Widening)
	Register(b, rt)
	return b.Freeze()
}
