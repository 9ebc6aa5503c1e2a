package types

import (
	"fmt"
	"math"
	"strconv"
)

// Cost is the rank of an implicit conversion.
// Zero is an exact match; Inf is a disallowed conversion.
type Cost int

// Inf is the cost of a disallowed conversion.
const Inf Cost = math.MaxInt32

func (c Cost) String() string {
	if c == Inf {
		return "∞"
	}
	return strconv.Itoa(int(c))
}

// An Edge is a single widening step with a positive rank.
type Edge struct {
	From, To Basic
	Rank     Cost
}

func (e Edge) String() string {
	return fmt.Sprintf("%s → %s (%d)", e.From, e.To, e.Rank)
}

// A Lattice is an acyclic graph of widening edges between Basic types.
// Tuples never widen; they only match themselves.
//
// A Lattice is immutable after NewLattice returns
// and is safe for concurrent use.
type Lattice struct {
	edges []Edge
	// dist[a][p] is the cheapest widening cost from a to p.
	dist [nBasic][nBasic]Cost
	// next[a][p] is the first step on the cheapest path from a to p.
	next [nBasic][nBasic]Basic
}

// Widening is the default lattice used for builtin math calls.
//
// Signed targets are cheaper than unsigned,
// and 64-bit integers widen to float64 more cheaply than to float32.
var Widening = NewLattice(
	Edge{From: Boolean, To: Intc, Rank: 1},
	Edge{From: Intc, To: Int64, Rank: 1},
	Edge{From: Intc, To: Uint64, Rank: 2},
	Edge{From: Int64, To: Float32, Rank: 3},
	Edge{From: Uint64, To: Float32, Rank: 3},
	Edge{From: Float32, To: Float64, Rank: 1},
	Edge{From: Int64, To: Float64, Rank: 2},
	Edge{From: Uint64, To: Float64, Rank: 2},
)

// NewLattice returns a new Lattice with the given widening edges.
// NewLattice panics if an edge is malformed or the edges form a cycle.
func NewLattice(edges ...Edge) *Lattice {
	l := &Lattice{edges: append([]Edge(nil), edges...)}
	for i := 1; i < nBasic; i++ {
		for j := 1; j < nBasic; j++ {
			l.dist[i][j] = Inf
		}
		l.dist[i][i] = 0
	}
	for _, e := range edges {
		switch {
		case !e.From.valid() || !e.To.valid():
			panic(fmt.Sprintf("bad widening edge %s", e))
		case e.From == e.To:
			panic(fmt.Sprintf("widening edge %s is a self loop", e))
		case e.Rank <= 0 || e.Rank >= Inf:
			panic(fmt.Sprintf("widening edge %s must have a positive, finite rank", e))
		}
		if e.Rank < l.dist[e.From][e.To] {
			l.dist[e.From][e.To] = e.Rank
			l.next[e.From][e.To] = e.To
		}
	}
	for k := 1; k < nBasic; k++ {
		for i := 1; i < nBasic; i++ {
			if l.dist[i][k] == Inf {
				continue
			}
			for j := 1; j < nBasic; j++ {
				if l.dist[k][j] == Inf {
					continue
				}
				if d := l.dist[i][k] + l.dist[k][j]; d < l.dist[i][j] {
					l.dist[i][j] = d
					l.next[i][j] = l.next[i][k]
				}
			}
		}
	}
	for i := 1; i < nBasic; i++ {
		for j := i + 1; j < nBasic; j++ {
			if l.dist[i][j] != Inf && l.dist[j][i] != Inf {
				panic(fmt.Sprintf("widening cycle between %s and %s", Basic(i), Basic(j)))
			}
		}
	}
	return l
}

// Edges returns a copy of the lattice's widening edges.
func (l *Lattice) Edges() []Edge { return append([]Edge(nil), l.edges...) }

// Cost returns the cost of implicitly converting an argument of type a
// to a parameter of type p.
// The cost is 0 for equal types, the sum of the edge ranks
// along the cheapest widening path between two Basic types,
// and Inf otherwise.
func (l *Lattice) Cost(a, p Type) Cost {
	if Eq(a, p) {
		return 0
	}
	ab, ok := a.(Basic)
	if !ok || !ab.valid() {
		return Inf
	}
	pb, ok := p.(Basic)
	if !ok || !pb.valid() {
		return Inf
	}
	return l.dist[ab][pb]
}

// Path returns the steps of the cheapest widening from a to p.
// The path excludes a and ends with p;
// it is empty if a and p are equal.
// The second return is false if a cannot widen to p.
func (l *Lattice) Path(a, p Type) ([]Type, bool) {
	switch c := l.Cost(a, p); c {
	case Inf:
		return nil, false
	case 0:
		return nil, true
	}
	var path []Type
	for b, pb := a.(Basic), p.(Basic); b != pb; {
		b = l.next[b][pb]
		path = append(path, b)
	}
	return path, true
}

// Widens returns whether a can be implicitly converted to p.
func (l *Lattice) Widens(a, p Type) bool { return l.Cost(a, p) != Inf }
