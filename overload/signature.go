// Package overload resolves calls to builtin functions
// against closed sets of concrete signatures.
//
// Overload families are described by Templates,
// bound to callable identities with a Builder,
// and frozen into a Registry that answers Resolve queries.
package overload

import (
	"fmt"
	"strings"

	"github.com/eaburns/mathsig/types"
)

// A Signature is one concrete overload: a return type and parameter types.
// Signatures are immutable.
type Signature struct {
	ret   types.Type
	parms []types.Type
}

// Sig returns a new Signature.
// The parms slice is copied.
func Sig(ret types.Type, parms ...types.Type) *Signature {
	if ret == nil {
		panic("nil return type")
	}
	for i, p := range parms {
		if p == nil {
			panic(fmt.Sprintf("nil parameter type %d", i))
		}
	}
	return &Signature{ret: ret, parms: append([]types.Type(nil), parms...)}
}

// Ret returns the return type.
func (s *Signature) Ret() types.Type { return s.ret }

// Parms returns a copy of the parameter types.
func (s *Signature) Parms() []types.Type { return append([]types.Type(nil), s.parms...) }

// Parm returns the ith parameter type.
func (s *Signature) Parm(i int) types.Type { return s.parms[i] }

// Arity returns the number of parameters.
func (s *Signature) Arity() int { return len(s.parms) }

// Eq returns whether two signatures have equal return and parameter types.
func (s *Signature) Eq(o *Signature) bool {
	return types.Eq(s.ret, o.ret) && s.sameParms(o)
}

func (s *Signature) sameParms(o *Signature) bool { return types.EqAll(s.parms, o.parms) }

// String returns the signature as (parms){ret}.
func (s *Signature) String() string {
	var w strings.Builder
	types.BuildListString(&w, s.parms)
	w.WriteRune('{')
	w.WriteString(s.ret.String())
	w.WriteRune('}')
	return w.String()
}
