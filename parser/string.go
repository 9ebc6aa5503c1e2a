package parser

import (
	"strings"
)

func (x *Call) String() string      { return x.buildString(new(strings.Builder)).String() }
func (x *NamedType) String() string { return x.buildString(new(strings.Builder)).String() }
func (x *TupleType) String() string { return x.buildString(new(strings.Builder)).String() }
func (x *Signature) String() string { return x.buildString(new(strings.Builder)).String() }
func (x Ident) String() string      { return x.Name }

func (x *Call) buildString(s *strings.Builder) *strings.Builder {
	s.WriteString(x.Fun.Name)
	buildTypes(s, x.Args)
	return s
}

func (x *NamedType) buildString(s *strings.Builder) *strings.Builder {
	s.WriteString(x.Name.Name)
	return s
}

func (x *TupleType) buildString(s *strings.Builder) *strings.Builder {
	s.WriteString("Tuple")
	buildTypes(s, x.Elems)
	return s
}

func (x *Signature) buildString(s *strings.Builder) *strings.Builder {
	buildTypes(s, x.Parms)
	s.WriteRune('{')
	x.Ret.buildString(s)
	s.WriteRune('}')
	return s
}

func buildTypes(s *strings.Builder, ts []Type) {
	s.WriteRune('(')
	for i, t := range ts {
		if i > 0 {
			s.WriteString(", ")
		}
		t.buildString(s)
	}
	s.WriteRune(')')
}
