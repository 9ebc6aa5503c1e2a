// Package llvm declares resolved builtin signatures as external LLVM functions.
package llvm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eaburns/mathsig/checker"
	"github.com/eaburns/mathsig/overload"
	mtypes "github.com/eaburns/mathsig/types"
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
	"github.com/pkg/errors"
)

// A Target describes the sizes of the platform-dependent integer types.
type Target struct {
	IntcBits int
	IntpBits int
}

// Host is the Target of a typical 64-bit host.
var Host = Target{IntcBits: 32, IntpBits: 64}

var archPointerBits = map[string]int{
	"386":      32,
	"arm":      32,
	"mips":     32,
	"mipsle":   32,
	"wasm32":   32,
	"amd64":    64,
	"arm64":    64,
	"loong64":  64,
	"mips64":   64,
	"mips64le": 64,
	"ppc64":    64,
	"ppc64le":  64,
	"riscv64":  64,
	"s390x":    64,
	"wasm":     64,
}

// TargetFor returns the Target of a platform written os/arch,
// for example linux/amd64.
// intc is 32 bits on every supported platform;
// intp is the pointer size of the architecture.
func TargetFor(platform string) (Target, error) {
	_, arch, ok := strings.Cut(platform, "/")
	if !ok {
		return Target{}, errors.Errorf("bad platform %q: want os/arch", platform)
	}
	bits, ok := archPointerBits[arch]
	if !ok {
		return Target{}, errors.Errorf("bad platform %q: unknown architecture %s", platform, arch)
	}
	return Target{IntcBits: 32, IntpBits: bits}, nil
}

// MaxBits is the widest integer a Target may declare.
const MaxBits = 64

// Validate returns an error if either integer width is outside 1 to MaxBits.
func (tg Target) Validate() error {
	switch {
	case tg.IntcBits < 1 || tg.IntcBits > MaxBits:
		return errors.Errorf("bad intc width %d: want 1 to %d bits", tg.IntcBits, MaxBits)
	case tg.IntpBits < 1 || tg.IntpBits > MaxBits:
		return errors.Errorf("bad intp width %d: want 1 to %d bits", tg.IntpBits, MaxBits)
	}
	return nil
}

// Type returns the LLVM type of t.
func (tg Target) Type(t mtypes.Type) types.Type {
	switch t := t.(type) {
	case mtypes.Basic:
		switch t {
		case mtypes.Boolean:
			return types.I1
		case mtypes.Intc:
			return types.NewInt(uint64(tg.IntcBits))
		case mtypes.Intp:
			return types.NewInt(uint64(tg.IntpBits))
		case mtypes.Int64, mtypes.Uint64:
			return types.I64
		case mtypes.Float32:
			return types.Float
		case mtypes.Float64:
			return types.Double
		}
	case *mtypes.Tuple:
		fields := make([]types.Type, t.Len())
		for i := range fields {
			fields[i] = tg.Type(t.Elem(i))
		}
		return types.NewStruct(fields...)
	}
	panic(fmt.Sprintf("impossible type: %s", t))
}

// Mangle returns the external symbol name for the case sig of the builtin id:
// the id followed by each parameter type, separated by dots.
// Tuples are written tupleN followed by their N element types,
// separated by underscores.
func Mangle(id overload.Ident, sig *overload.Signature) string {
	var s strings.Builder
	s.WriteString(string(id))
	for _, p := range sig.Parms() {
		s.WriteRune('.')
		mangleType(&s, p)
	}
	return s.String()
}

func mangleType(s *strings.Builder, t mtypes.Type) {
	tup, ok := t.(*mtypes.Tuple)
	if !ok {
		s.WriteString(t.String())
		return
	}
	s.WriteString("tuple")
	s.WriteString(strconv.Itoa(tup.Len()))
	for _, e := range tup.Elems() {
		s.WriteRune('_')
		mangleType(s, e)
	}
}

// Declare returns the declaration in m of the case sig of the builtin id,
// adding it if m does not have it yet.
func (tg Target) Declare(m *ir.Module, id overload.Ident, sig *overload.Signature) *ir.Func {
	name := Mangle(id, sig)
	for _, f := range m.Funcs {
		if f.Name() == name {
			return f
		}
	}
	var params []*ir.Param
	for i, p := range sig.Parms() {
		params = append(params, ir.NewParam("x"+strconv.Itoa(i), tg.Type(p)))
	}
	return m.NewFunc(name, tg.Type(sig.Ret()), params...)
}

// Module returns a new module declaring the resolved case of each call.
// Calls resolving to the same case share a declaration.
func (tg Target) Module(calls []*checker.Call) *ir.Module {
	m := ir.NewModule()
	for _, c := range calls {
		tg.Declare(m, c.Fun, c.Sig)
	}
	return m
}
