package overload

import (
	"fmt"
	"sort"

	"github.com/eaburns/mathsig/types"
	"github.com/hashicorp/go-set/v2"
)

// An Ident is the opaque, globally unique identity of a builtin symbol,
// for example "math.exp".
type Ident string

// A Builder accumulates bindings from Idents to Templates.
// It is used once during initialization and then frozen into a Registry.
// A Builder is not safe for concurrent use.
type Builder struct {
	lattice *types.Lattice
	entries map[Ident]*Template
	aliases map[*Template]*set.Set[Ident]
	sealed  bool
}

// NewBuilder returns a new Builder whose Registry resolves
// using the given widening lattice.
// If lattice is nil, types.Widening is used.
func NewBuilder(lattice *types.Lattice) *Builder {
	if lattice == nil {
		lattice = types.Widening
	}
	return &Builder{
		lattice: lattice,
		entries: make(map[Ident]*Template),
		aliases: make(map[*Template]*set.Set[Ident]),
	}
}

// Bind binds each of the ids to t.
// Bind panics if the Builder is frozen or an id is already bound.
func (b *Builder) Bind(t *Template, ids ...Ident) {
	if b.sealed {
		panic(fmt.Sprintf("bind %s: registry sealed", t))
	}
	if t == nil {
		panic("bind: nil template")
	}
	for _, id := range sortedIdents(set.From(ids)) {
		if prev, ok := b.entries[id]; ok {
			panic(fmt.Sprintf("bind %s: %s is already bound to %s", t, id, prev))
		}
		b.entries[id] = t
		s, ok := b.aliases[t]
		if !ok {
			s = set.New[Ident](len(ids))
			b.aliases[t] = s
		}
		s.Insert(id)
	}
}

// RegisterIf calls pred exactly once, and if it returns true, binds the ids to t.
// Otherwise the ids are left unbound.
// RegisterIf returns the result of pred.
// RegisterIf panics if the Builder is frozen.
func (b *Builder) RegisterIf(pred func() bool, t *Template, ids ...Ident) bool {
	if b.sealed {
		panic(fmt.Sprintf("register %s: registry sealed", t))
	}
	if !pred() {
		return false
	}
	b.Bind(t, ids...)
	return true
}

// Freeze returns the Registry of all bindings made so far.
// After Freeze, all further calls to the Builder panic.
func (b *Builder) Freeze() *Registry {
	if b.sealed {
		panic("freeze: registry sealed")
	}
	b.sealed = true
	r := &Registry{lattice: b.lattice, entries: b.entries, aliases: b.aliases}
	b.entries, b.aliases = nil, nil
	return r
}

// A Registry is a frozen mapping from Idents to Templates.
// A Registry is immutable and safe for concurrent use.
type Registry struct {
	lattice *types.Lattice
	entries map[Ident]*Template
	aliases map[*Template]*set.Set[Ident]
}

// Lattice returns the widening lattice used by Resolve.
func (r *Registry) Lattice() *types.Lattice { return r.lattice }

// Lookup returns the Template bound to id.
// The second return is false if id is not a registered builtin.
func (r *Registry) Lookup(id Ident) (*Template, bool) {
	t, ok := r.entries[id]
	return t, ok
}

// Len returns the number of registered Idents.
func (r *Registry) Len() int { return len(r.entries) }

// Idents returns all registered Idents in sorted order.
func (r *Registry) Idents() []Ident {
	ids := make([]Ident, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Aliases returns, in sorted order, all Idents bound to the same Template as id,
// including id itself.
// Aliases returns nil if id is not registered.
func (r *Registry) Aliases(id Ident) []Ident {
	t, ok := r.entries[id]
	if !ok {
		return nil
	}
	return sortedIdents(r.aliases[t])
}

func sortedIdents(s *set.Set[Ident]) []Ident {
	ids := s.Slice()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
