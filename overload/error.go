package overload

import (
	"fmt"

	"github.com/eaburns/mathsig/types"
)

// A Diagnostic is a resolution failure.
// It is returned to the caller, which attributes it to a call site.
type Diagnostic interface {
	error

	// Ident returns the identity of the called builtin.
	Ident() Ident

	// Notes returns supplemental lines explaining the failure.
	Notes() []string
}

// UnknownCallable is returned when the Ident is not registered.
type UnknownCallable struct {
	ID Ident
}

func (e *UnknownCallable) Error() string   { return fmt.Sprintf("%s: not found", e.ID) }
func (e *UnknownCallable) Ident() Ident    { return e.ID }
func (e *UnknownCallable) Notes() []string { return nil }

// NoMatchingSignature is returned when no case accepts the arguments.
type NoMatchingSignature struct {
	ID Ident
	// Cases are all cases of the bound Template, in declaration order.
	Cases []*Signature
	// Args are the argument types of the call.
	Args []types.Type
	// Rejects has one entry per case, in declaration order,
	// giving why the case did not accept the arguments.
	Rejects []Reject
}

// A Reject is a case that did not accept the arguments of a call.
type Reject struct {
	Case *Signature
	// Parm is the index of the first parameter
	// to which the argument cannot convert,
	// or -1 if the number of arguments is wrong.
	Parm int
}

func (r *Reject) reason(args []types.Type) string {
	if r.Parm < 0 {
		return fmt.Sprintf("expects %d arguments, got %d", r.Case.Arity(), len(args))
	}
	return fmt.Sprintf("cannot convert argument %d %s to %s", r.Parm, args[r.Parm], r.Case.Parm(r.Parm))
}

func (e *NoMatchingSignature) Error() string {
	return fmt.Sprintf("no overload of %s accepts %s", e.ID, types.ListString(e.Args))
}

func (e *NoMatchingSignature) Ident() Ident { return e.ID }

func (e *NoMatchingSignature) Notes() []string {
	var notes []string
	for i := range e.Rejects {
		r := &e.Rejects[i]
		notes = append(notes, fmt.Sprintf("%s: %s", r.Case, r.reason(e.Args)))
	}
	return notes
}

// AmbiguousSignature is returned when several cases tie for the lowest cost
// and disagree on the return type.
type AmbiguousSignature struct {
	ID   Ident
	Args []types.Type
	// Candidates are the tied cases, in declaration order.
	Candidates []*Signature
}

func (e *AmbiguousSignature) Error() string { return fmt.Sprintf("%s: ambiguous call", e.ID) }
func (e *AmbiguousSignature) Ident() Ident  { return e.ID }

func (e *AmbiguousSignature) Notes() []string {
	var notes []string
	for _, c := range e.Candidates {
		notes = append(notes, fmt.Sprintf("built-in %s%s", e.ID, c))
	}
	return notes
}

var (
	_ Diagnostic = (*UnknownCallable)(nil)
	_ Diagnostic = (*NoMatchingSignature)(nil)
	_ Diagnostic = (*AmbiguousSignature)(nil)
)
