package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/eaburns/mathsig/loc"
)

type PrintOpt func(*config)

// PrintLocs prints the location of each node, resolved in the files.
func PrintLocs(fs ...*File) PrintOpt {
	var files loc.Files
	for _, f := range fs {
		files = append(files, f)
	}
	return func(pc *config) { pc.files = files }
}

// Print writes the syntax tree of the file to w, one field per line.
func (f *File) Print(w io.Writer, opts ...PrintOpt) error {
	return print(w, f, opts...)
}

type config struct {
	w     io.Writer
	files loc.Files
	n     int
	ident string
}

type printerError struct{ error }

type printer interface {
	print(*config)
}

func print(w io.Writer, tree printer, opts ...PrintOpt) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(printerError); ok {
			err = e
		} else {
			panic(r)
		}
	}()
	pc := &config{w: w, ident: "  "}
	for _, opt := range opts {
		opt(pc)
	}
	tree.print(pc)
	pc.p("\n")
	return err
}

func (f *File) print(pc *config) {
	pc.p("File{")
	pc.field("Path", func() { pc.p("%s", f.P) })
	list(pc, "Calls", f.Calls)
	pc.p("\n}")
}

func (c *Call) print(pc *config) {
	pc.p("Call{")
	pc.loc(c.L)
	pc.field("Fun", func() { c.Fun.print(pc) })
	list(pc, "Args", c.Args)
	pc.p("\n}")
}

func (t *NamedType) print(pc *config) {
	pc.p("NamedType(%s)", t.Name.Name)
	pc.loc(t.L)
}

func (t *TupleType) print(pc *config) {
	pc.p("TupleType{")
	pc.loc(t.L)
	list(pc, "Elems", t.Elems)
	pc.p("\n}")
}

func (s *Signature) print(pc *config) {
	pc.p("Signature{")
	pc.loc(s.L)
	list(pc, "Parms", s.Parms)
	if s.Ret != nil {
		pc.field("Ret", func() { s.Ret.print(pc) })
	}
	pc.p("\n}")
}

func (id Ident) print(pc *config) {
	pc.p("Ident(%s)", id.Name)
	pc.loc(id.L)
}

func (pc *config) loc(l loc.Loc) {
	if pc.files == nil || (l == loc.Loc{}) {
		return
	}
	pc.p("\t(%s)", pc.files.Location(l))
}

func (pc *config) field(name string, value func()) {
	pc.n++
	pc.p("\n" + name + ": ")
	value()
	pc.n--
}

// list prints a field holding nodes; empty lists are omitted.
func list[T printer](pc *config, name string, xs []T) {
	if len(xs) == 0 {
		return
	}
	pc.field(name, func() {
		pc.n++
		pc.p("{")
		for _, x := range xs {
			pc.p("\n")
			x.print(pc)
			pc.p(",")
		}
		pc.n--
		pc.p("\n}")
	})
}

func (pc *config) p(f string, vs ...interface{}) {
	f = strings.ReplaceAll(f, "\n", "\n"+strings.Repeat(pc.ident, pc.n))
	if _, err := fmt.Fprintf(pc.w, f, vs...); err != nil {
		panic(printerError{err})
	}
}
