// Package checker resolves the calls of parsed call sheets
// against a registry of builtins.
package checker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eaburns/mathsig/loc"
	"github.com/eaburns/mathsig/overload"
	"github.com/eaburns/mathsig/parser"
	"github.com/eaburns/mathsig/types"
)

type fail struct {
	msg   string
	loc   loc.Loc
	notes []note
}

type note struct {
	msg string
	loc loc.Loc // empty for built-in
}

func (f *fail) error(files loc.Files) error {
	var s strings.Builder
	s.WriteString(files.Location(f.loc).String())
	s.WriteString(": ")
	s.WriteString(f.msg)
	for _, note := range f.notes {
		s.WriteString("\n\t")
		s.WriteString(note.msg)
		if note.loc != (loc.Loc{}) {
			s.WriteString(" (")
			s.WriteString(files.Location(note.loc).String())
			s.WriteRune(')')
		}
	}
	return errors.New(s.String())
}

func notFound(name string, l loc.Locer) *fail {
	return &fail{
		msg: fmt.Sprintf("%s: not found", name),
		loc: l.Loc(),
	}
}

// Check resolves every call in the files.
// The files must be those of a single parser.Parser, in order.
// Check returns the resolved calls, in order,
// the loc.Files of the files, and any errors.
func Check(reg *overload.Registry, files []*parser.File) ([]*Call, loc.Files, []error) {
	locFiles := make(loc.Files, len(files))
	for i, f := range files {
		locFiles[i] = f
	}
	var calls []*Call
	var fails []*fail
	for _, f := range files {
		for _, parserCall := range f.Calls {
			call, fs := checkCall(reg, parserCall)
			if len(fs) > 0 {
				fails = append(fails, fs...)
				continue
			}
			calls = append(calls, call)
		}
	}
	var errs []error
	for _, f := range fails {
		errs = append(errs, f.error(locFiles))
	}
	return calls, locFiles, errs
}

func checkCall(reg *overload.Registry, parserCall *parser.Call) (*Call, []*fail) {
	args, fails := makeTypes(parserCall.Args)
	if len(fails) > 0 {
		return nil, fails
	}
	call, err := Resolve(reg, parserCall.Fun.Name, args)
	if err != nil {
		return nil, []*fail{resolveFail(parserCall, err)}
	}
	call.L = parserCall.L
	return call, nil
}

func resolveFail(parserCall *parser.Call, err error) *fail {
	var (
		unk *overload.UnknownCallable
		nm  *overload.NoMatchingSignature
		amb *overload.AmbiguousSignature
	)
	switch {
	case errors.As(err, &unk):
		return notFound(string(unk.ID), parserCall.Fun)
	case errors.As(err, &nm):
		return noMatch(parserCall, nm)
	case errors.As(err, &amb):
		return ambiguousCall(amb, parserCall)
	default:
		return &fail{msg: err.Error(), loc: parserCall.L}
	}
}

func noMatch(parserCall *parser.Call, err *overload.NoMatchingSignature) *fail {
	notes := make([]note, len(err.Rejects))
	for i, msg := range err.Notes() {
		notes[i].msg = msg
		if p := err.Rejects[i].Parm; p >= 0 {
			notes[i].loc = parserCall.Args[p].Loc()
		} else {
			notes[i].loc = argsLoc(parserCall.Args)
		}
	}
	return &fail{
		msg:   err.Error(),
		loc:   parserCall.L,
		notes: notes,
	}
}

// argsLoc returns the Loc spanning the arguments,
// or the zero Loc if there are none.
func argsLoc(args []parser.Type) loc.Loc {
	var l loc.Loc
	for _, a := range args {
		l = loc.Join(l, a.Loc())
	}
	return l
}

func ambiguousCall(err *overload.AmbiguousSignature, l loc.Locer) *fail {
	var notes []note
	for _, msg := range err.Notes() {
		notes = append(notes, note{msg: msg})
	}
	return &fail{
		msg:   err.Error(),
		loc:   l.Loc(),
		notes: notes,
	}
}

// Resolve resolves a call of the builtin id on arguments of the given types.
// The returned Call has no location.
// On failure, the error is an overload.Diagnostic.
func Resolve(reg *overload.Registry, id string, args []types.Type) (*Call, error) {
	sig, err := reg.Resolve(overload.Ident(id), args)
	if err != nil {
		return nil, err
	}
	call := &Call{
		Fun:   overload.Ident(id),
		Args:  args,
		Sig:   sig,
		Paths: make([][]types.Type, len(args)),
	}
	for i, a := range args {
		path, ok := reg.Lattice().Path(a, sig.Parm(i))
		if !ok {
			panic(fmt.Sprintf("impossible: resolved %s%s with no path from %s to %s",
				id, sig, a, sig.Parm(i)))
		}
		call.Paths[i] = path
	}
	return call, nil
}

func makeTypes(parserTypes []parser.Type) ([]types.Type, []*fail) {
	var fails []*fail
	var ts []types.Type
	for _, parserType := range parserTypes {
		t, fs := makeType(parserType)
		fails = append(fails, fs...)
		ts = append(ts, t)
	}
	return ts, fails
}

func makeType(parserType parser.Type) (types.Type, []*fail) {
	switch parserType := parserType.(type) {
	case *parser.NamedType:
		b, ok := types.LookupBasic(parserType.Name.Name)
		if !ok {
			return nil, []*fail{notFound(parserType.Name.Name, parserType)}
		}
		return b, nil
	case *parser.TupleType:
		elems, fails := makeTypes(parserType.Elems)
		if len(fails) > 0 {
			return nil, fails
		}
		return types.NewTuple(elems...), nil
	default:
		panic(fmt.Sprintf("impossible type type: %T", parserType))
	}
}
