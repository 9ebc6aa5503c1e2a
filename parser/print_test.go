package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPrint(t *testing.T) {
	p := New()
	if err := p.Parse("a.sheet", strings.NewReader("math.exp(int64)\nf(Tuple(intc))\n")); err != nil {
		t.Fatalf("Parse failed: %s", err)
	}
	var s strings.Builder
	if err := p.Files[0].Print(&s); err != nil {
		t.Fatalf("Print failed: %s", err)
	}
	want := `File{
  Path: a.sheet
  Calls: {
    Call{
      Fun: Ident(math.exp)
      Args: {
        NamedType(int64),
      }
    },
    Call{
      Fun: Ident(f)
      Args: {
        TupleType{
          Elems: {
            NamedType(intc),
          }
        },
      }
    },
  }
}
`
	if diff := cmp.Diff(want, s.String()); diff != "" {
		t.Errorf("Print: %s", diff)
	}
}

func TestPrintLocs(t *testing.T) {
	p := New()
	if err := p.Parse("a.sheet", strings.NewReader("\n  math.exp(int64)")); err != nil {
		t.Fatalf("Parse failed: %s", err)
	}
	var s strings.Builder
	if err := p.Files[0].Print(&s, PrintLocs(p.Files...)); err != nil {
		t.Fatalf("Print failed: %s", err)
	}
	for _, want := range []string{
		"Call{\t(a.sheet:2.3-2.17)",
		"Ident(math.exp)\t(a.sheet:2.3-2.10)",
		"NamedType(int64)\t(a.sheet:2.12-2.16)",
	} {
		if !strings.Contains(s.String(), want) {
			t.Errorf("Print does not contain %q:\n%s", want, s.String())
		}
	}
}

func TestPrintSignature(t *testing.T) {
	sig, err := ParseSignature("(float64, intc){Tuple(float64, intc)}")
	if err != nil {
		t.Fatalf("ParseSignature failed: %s", err)
	}
	var s strings.Builder
	if err := print(&s, sig); err != nil {
		t.Fatalf("print failed: %s", err)
	}
	want := `Signature{
  Parms: {
    NamedType(float64),
    NamedType(intc),
  }
  Ret: TupleType{
    Elems: {
      NamedType(float64),
      NamedType(intc),
    }
  }
}
`
	if diff := cmp.Diff(want, s.String()); diff != "" {
		t.Errorf("print: %s", diff)
	}
}
