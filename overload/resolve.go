package overload

import (
	"github.com/eaburns/mathsig/types"
)

// Resolve returns the case of the Template bound to id
// that best accepts arguments of the given types.
//
// A case accepts the arguments if it has the same arity
// and each argument widens to the corresponding parameter.
// The best case has the minimum total widening cost.
// If several cases tie for the minimum and all have the same return type,
// the first in declaration order is chosen.
//
// On failure, the error is an *UnknownCallable, *NoMatchingSignature,
// or *AmbiguousSignature.
//
// Resolve never modifies the Registry; it is safe for concurrent use.
func (r *Registry) Resolve(id Ident, args []types.Type) (*Signature, error) {
	t, ok := r.entries[id]
	if !ok {
		trace("resolve %s%s: not found", id, typeList(args))
		return nil, &UnknownCallable{ID: id}
	}
	return resolve(r.lattice, id, t, args)
}

func resolve(l *types.Lattice, id Ident, t *Template, args []types.Type) (*Signature, error) {
	trace("resolve %s%s with %s", id, typeList(args), t)
	best := types.Inf
	var tied []*Signature
	var rejects []Reject
	for _, c := range t.cases {
		cost, rej := caseCost(l, c, args)
		if rej != nil {
			trace("\t%s: %s", c, traceReject{rej, args})
			rejects = append(rejects, *rej)
			continue
		}
		trace("\t%s: cost %s", c, cost)
		switch {
		case cost < best:
			best = cost
			tied = append(tied[:0], c)
		case cost == best:
			tied = append(tied, c)
		}
	}
	switch {
	case len(tied) == 0:
		trace("\tno match")
		return nil, &NoMatchingSignature{
			ID:      id,
			Cases:   t.Cases(),
			Args:    append([]types.Type(nil), args...),
			Rejects: rejects,
		}
	case len(tied) > 1 && !sameRets(tied):
		trace("\tambiguous")
		return nil, &AmbiguousSignature{
			ID:         id,
			Args:       append([]types.Type(nil), args...),
			Candidates: tied,
		}
	}
	trace("\tchose %s", tied[0])
	return tied[0], nil
}

// caseCost returns the total cost of calling c with the args,
// or a non-nil *Reject if c does not accept them.
func caseCost(l *types.Lattice, c *Signature, args []types.Type) (types.Cost, *Reject) {
	if len(args) != len(c.parms) {
		return types.Inf, &Reject{Case: c, Parm: -1}
	}
	var total types.Cost
	for i, a := range args {
		cost := l.Cost(a, c.parms[i])
		if cost == types.Inf {
			return types.Inf, &Reject{Case: c, Parm: i}
		}
		total += cost
	}
	return total, nil
}

func sameRets(sigs []*Signature) bool {
	for _, s := range sigs[1:] {
		if !types.Eq(s.ret, sigs[0].ret) {
			return false
		}
	}
	return true
}
