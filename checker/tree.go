package checker

import (
	"github.com/eaburns/mathsig/loc"
	"github.com/eaburns/mathsig/overload"
	"github.com/eaburns/mathsig/types"
)

// A Call is a resolved call of a builtin.
type Call struct {
	Fun  overload.Ident
	Args []types.Type
	// Sig is the case of the builtin's Template chosen for the call.
	Sig *overload.Signature
	// Paths[i] is the widening path from Args[i] to Sig.Parm(i),
	// not including Args[i].
	// It is empty if the argument needs no conversion.
	Paths [][]types.Type
	L     loc.Loc
}

func (c *Call) Loc() loc.Loc { return c.L }

// Cost returns the total widening cost of the call's arguments under l.
func (c *Call) Cost(l *types.Lattice) types.Cost {
	var total types.Cost
	for i, a := range c.Args {
		total += l.Cost(a, c.Sig.Parm(i))
	}
	return total
}
