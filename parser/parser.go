// Package parser parses call sheets.
//
// A call sheet has one call per line, naming a builtin
// and the types of its arguments:
//
//	math.exp(int64)
//	math.atan2(float32, float32) # comments run to the end of the line
//	math.exp(Tuple(float64, intc))
package parser

import (
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/eaburns/mathsig/loc"
	"github.com/eaburns/peggy/peg"
)

//go:generate peggy -t=false -o grammar.go grammar.peggy

// A Parser parses call sheets.
// The locations of each parsed File follow those of the Files before it,
// so loc.Files made from Files in order can locate any of them.
type Parser struct {
	Files []*File
	offs  int
}

// New returns a new parser.
func New() *Parser {
	return &Parser{offs: 1}
}

// Parse parses a file from an io.Reader.
// The first argument is the file path or "" if unspecified.
func (p *Parser) Parse(path string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	_p := _NewParser(string(data))
	_p.data = p
	if pos, perr := _SheetAccepts(_p, 0); pos < 0 {
		_, t := _SheetFail(_p, 0, perr)
		return parseError{path: path, text: _p.text, fail: t}
	}
	_, calls := _SheetAction(_p, 0)
	file := &File{Calls: *calls, P: path, Length: len(data)}
	for i, r := range data {
		if r == '\n' {
			file.NLs = append(file.NLs, i)
		}
	}
	p.Files = append(p.Files, file)
	p.offs += len(data)
	return nil
}

// ParseFile parses the source from a file path.
func (p *Parser) ParseFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return p.Parse(path, f)
}

// LocFiles returns the parsed Files as loc.Files.
func (p *Parser) LocFiles() loc.Files {
	fs := make(loc.Files, len(p.Files))
	for i, f := range p.Files {
		fs[i] = f
	}
	return fs
}

// ParseCall parses a single call.
func ParseCall(src string) (*Call, error) {
	return parseItem(src, _CallEOFAccepts, _CallEOFFail, _CallEOFAction)
}

// ParseType parses a single type.
func ParseType(src string) (Type, error) {
	return parseItem(src, _TypeEOFAccepts, _TypeEOFFail, _TypeEOFAction)
}

// ParseSignature parses a single signature, written (parms){ret}.
func ParseSignature(src string) (*Signature, error) {
	return parseItem(src, _SignatureEOFAccepts, _SignatureEOFFail, _SignatureEOFAction)
}

func parseItem[T any](
	src string,
	accepts func(*_Parser, int) (int, int),
	fail func(*_Parser, int, int) (int, *peg.Fail),
	action func(*_Parser, int) (int, *T),
) (T, error) {
	_p := _NewParser(src)
	_p.data = New()
	if pos, perr := accepts(_p, 0); pos < 0 {
		_, t := fail(_p, 0, perr)
		var zero T
		return zero, parseError{text: _p.text, fail: t}
	}
	_, x := action(_p, 0)
	return *x, nil
}

type parseError struct {
	path string
	text string
	fail *peg.Fail
}

func (err parseError) Tree() *peg.Fail { return err.fail }

func (err parseError) Error() string {
	e := peg.SimpleError(err.text, err.fail)
	e.FilePath = err.path
	return e.Error()
}

func lines(c0 []*Call, cs [][]*Call) []*Call {
	calls := c0
	for _, c := range cs {
		calls = append(calls, c...)
	}
	return calls
}

func optCall(c **Call) []*Call {
	if c == nil {
		return nil
	}
	return []*Call{*c}
}

func types(ts *[]Type) []Type {
	if ts == nil {
		return nil
	}
	return *ts
}

func namedType(name string, l loc.Loc) *NamedType {
	return &NamedType{Name: Ident{Name: name, L: l}, L: l}
}

// l returns the Loc of the text from s to e, less surrounding space.
func l(p *_Parser, s, e int) loc.Loc {
	for s < e {
		r, w := utf8.DecodeRuneInString(p.text[s:])
		if !unicode.IsSpace(r) {
			break
		}
		s += w
	}
	for e > s {
		r, w := utf8.DecodeLastRuneInString(p.text[:e])
		if !unicode.IsSpace(r) {
			break
		}
		e -= w
	}
	offs := p.data.(*Parser).offs
	return loc.Loc{offs + s, offs + e}
}
