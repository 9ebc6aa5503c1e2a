package overload

import "fmt"

// A Template is an ordered family of Signatures for one callable role.
// The order is the declaration order and breaks ties in Resolve.
// Templates are immutable.
type Template struct {
	name  string
	cases []*Signature
}

// NewTemplate returns a new Template with the given cases.
// NewTemplate panics if two cases have identical parameter types.
func NewTemplate(name string, cases ...*Signature) *Template {
	t := &Template{name: name, cases: append([]*Signature(nil), cases...)}
	t.checkDups()
	return t
}

// Extend returns a new Template with the cases of base
// followed by the extra cases.
// Extend panics if the result has two cases with identical parameter types.
func Extend(name string, base *Template, extra ...*Signature) *Template {
	cases := make([]*Signature, 0, len(base.cases)+len(extra))
	cases = append(cases, base.cases...)
	cases = append(cases, extra...)
	t := &Template{name: name, cases: cases}
	t.checkDups()
	return t
}

func (t *Template) checkDups() {
	for i, c := range t.cases {
		if c == nil {
			panic(fmt.Sprintf("%s: nil case %d", t.name, i))
		}
		for j := 0; j < i; j++ {
			if t.cases[j].sameParms(c) {
				panic(fmt.Sprintf("%s: case %d %s duplicates the parameters of case %d %s",
					t.name, i, c, j, t.cases[j]))
			}
		}
	}
}

// Name returns the family name of the Template.
func (t *Template) Name() string { return t.name }

// Len returns the number of cases.
func (t *Template) Len() int { return len(t.cases) }

// Case returns the ith case.
func (t *Template) Case(i int) *Signature { return t.cases[i] }

// Cases returns a copy of the case list.
func (t *Template) Cases() []*Signature { return append([]*Signature(nil), t.cases...) }

func (t *Template) String() string { return t.name }
