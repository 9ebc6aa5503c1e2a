package parser

import (
	"strings"

	"github.com/eaburns/mathsig/loc"
)

// A File is a parsed call sheet.
type File struct {
	Calls []*Call

	P      string
	NLs    []int
	Length int
}

func (f *File) Path() string    { return f.P }
func (f *File) NewLines() []int { return f.NLs }
func (f *File) Len() int        { return f.Length }

// A Call is a call of a builtin on arguments of the given types.
type Call struct {
	Fun  Ident
	Args []Type
	L    loc.Loc
}

func (c *Call) Loc() loc.Loc { return c.L }

// An Ident is a dotted name, for example math.exp.
type Ident struct {
	Name string
	L    loc.Loc
}

func (id Ident) Loc() loc.Loc { return id.L }

type Type interface {
	// String returns a string representation suitable for debugging.
	String() string
	buildString(*strings.Builder) *strings.Builder
	print(*config)
	Loc() loc.Loc
}

// A NamedType is a type referred to by name.
// The name is not checked by the parser.
type NamedType struct {
	Name Ident
	L    loc.Loc
}

func (t *NamedType) Loc() loc.Loc { return t.L }

type TupleType struct {
	Elems []Type
	L     loc.Loc
}

func (t *TupleType) Loc() loc.Loc { return t.L }

// A Signature is a function type written (parms){ret}.
type Signature struct {
	Parms []Type
	Ret   Type
	L     loc.Loc
}

func (s *Signature) Loc() loc.Loc { return s.L }
