package checker

import (
	"fmt"
	"strings"

	"github.com/eaburns/mathsig/types"
)

func (c *Call) String() string { return c.buildString(new(strings.Builder)).String() }

func (c *Call) buildString(s *strings.Builder) *strings.Builder {
	s.WriteString(string(c.Fun))
	types.BuildListString(s, c.Args)
	s.WriteString(" resolves to ")
	s.WriteString(c.Sig.String())
	return s
}

// Conversions returns a description of each argument conversion of the call,
// for example "argument 0: intc → int64 → float64".
// Arguments that need no conversion are omitted.
func (c *Call) Conversions() []string {
	var convs []string
	for i, path := range c.Paths {
		if len(path) == 0 {
			continue
		}
		var s strings.Builder
		fmt.Fprintf(&s, "argument %d: %s", i, c.Args[i])
		for _, t := range path {
			s.WriteString(" → ")
			s.WriteString(t.String())
		}
		convs = append(convs, s.String())
	}
	return convs
}
