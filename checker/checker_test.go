package checker

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/eaburns/mathsig/config"
	"github.com/eaburns/mathsig/mathdecl"
	"github.com/eaburns/mathsig/overload"
	"github.com/eaburns/mathsig/parser"
	"github.com/eaburns/mathsig/types"
	"github.com/google/go-cmp/cmp"
)

func check(reg *overload.Registry, path string, files []string) ([]*Call, []error) {
	p := parser.New()
	for i, file := range files {
		r := strings.NewReader(file)
		if err := p.Parse(fmt.Sprintf("%s%d", path, i), r); err != nil {
			return nil, []error{err}
		}
	}
	calls, _, errs := Check(reg, p.Files)
	return calls, errs
}

// testRegistry has an ambiguous builtin besides the math builtins.
func testRegistry() *overload.Registry {
	b := overload.NewBuilder(nil)
	mathdecl.Register(b, config.Default())
	b.Bind(overload.NewTemplate("f",
		overload.Sig(types.Float64, types.Int64, types.Uint64),
		overload.Sig(types.Float32, types.Uint64, types.Int64),
	), "f")
	return b.Freeze()
}

func TestCheck(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{
			src:  "math.exp(int64)",
			want: []string{"math.exp(int64) resolves to (int64){float64}"},
		},
		{
			src:  "math.atan2(float32, float32)\nmath.trunc(intp)",
			want: []string{"math.atan2(float32, float32) resolves to (float32, float32){float32}", "math.trunc(intp) resolves to (intp){intp}"},
		},
		{
			src:  "math.isnan(uint64)",
			want: []string{"math.isnan(uint64) resolves to (uint64){boolean}"},
		},
		{
			src:  "math.frexp(float64)",
			want: []string{"math.frexp(float64) resolves to (float64){Tuple(float64, intc)}"},
		},
		{
			src:  "f(int64, uint64)",
			want: []string{"f(int64, uint64) resolves to (int64, uint64){float64}"},
		},
	}
	for _, test := range tests {
		calls, errs := check(testRegistry(), "test", []string{test.src})
		if len(errs) > 0 {
			t.Errorf("check(%q) failed:\n%s", test.src, errStr(errs))
			continue
		}
		var got []string
		for _, c := range calls {
			got = append(got, c.String())
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("check(%q): %s", test.src, diff)
		}
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		src string
		err string
	}{
		{src: "math.exp(int64)", err: ""},
		{src: "math.exp(intc)", err: ""},
		{src: "math.exp(foo)", err: `^test0:1\.10-1\.12: foo: not found$`},
		{src: "math.exp(Tuple(float64, foo))", err: `^test0:1\.25-1\.27: foo: not found$`},
		{src: "math.foo(int64)", err: `^test0:1\.1-1\.8: math\.foo: not found$`},
		{src: "math.not_a_builtin()", err: `math\.not_a_builtin: not found`},
		{
			src: "math.exp(Tuple(float64, intc))",
			err: `^test0:1\.1-1\.30: no overload of math\.exp accepts \(Tuple\(float64, intc\)\)\n` +
				`\t\(int64\){float64}: cannot convert argument 0 Tuple\(float64, intc\) to int64 \(test0:1\.10-1\.29\)\n` +
				`\t\(uint64\){float64}: cannot convert argument 0 .* to uint64 \(test0:1\.10-1\.29\)\n` +
				`\t\(float32\){float32}: cannot convert .*\n` +
				`\t\(float64\){float64}: cannot convert .*$`,
		},
		{
			src: "math.exp(int64, int64)",
			err: `no overload of math\.exp accepts \(int64, int64\)\n` +
				`\t\(int64\){float64}: expects 1 arguments, got 2 \(test0:1\.10-1\.21\)\n`,
		},
		{
			src: "math.exp()",
			err: `^test0:1\.1-1\.10: no overload of math\.exp accepts \(\)\n` +
				`\t\(int64\){float64}: expects 1 arguments, got 0\n`,
		},
		{
			src: "math.pow(float32, Tuple(intc))",
			err: `\t\(float64, int64\){float64}: cannot convert argument 1 Tuple\(intc\) to int64 \(test0:1\.19-1\.29\)`,
		},
		{
			src: "f(intc, intc)",
			err: `^test0:1\.1-1\.13: f: ambiguous call\n` +
				`\tbuilt-in f\(int64, uint64\){float64}\n` +
				`\tbuilt-in f\(uint64, int64\){float32}$`,
		},
		{src: "math.trunc(float64)\nmath.trunc(float128)", err: `^test0:2\.12-2\.19: float128: not found$`},
	}
	for _, test := range tests {
		test := test
		t.Run(test.src, func(t *testing.T) {
			_, errs := check(testRegistry(), "test", []string{test.src})
			switch {
			case test.err == "" && len(errs) == 0:
				break
			case test.err == "" && len(errs) > 0:
				t.Errorf("unexpected error: %s", errs[0])
			case test.err != "" && len(errs) == 0:
				t.Errorf("expected error matching %s, got nil", test.err)
			case !regexp.MustCompile(test.err).MatchString(errStr(errs)):
				t.Errorf("expected error matching %s, got\n%s", test.err, errStr(errs))
			}
		})
	}
}

func TestCheckMultipleFiles(t *testing.T) {
	calls, errs := check(testRegistry(), "test", []string{
		"math.exp(int64)\nmath.sqrt(bogus)\n",
		"math.hypot(intc, intc)\nmath.nope()",
	})
	if len(calls) != 2 {
		t.Errorf("got %d calls, want 2", len(calls))
	}
	want := "test0:2.11-2.15: bogus: not found\n" +
		"test1:2.1-2.9: math.nope: not found"
	if got := errStr(errs); got != want {
		t.Errorf("got errors\n%s\nwant\n%s", got, want)
	}
	if len(calls) == 2 {
		if got, want := calls[1].Fun, overload.Ident("math.hypot"); got != want {
			t.Errorf("calls[1].Fun=%s, want %s", got, want)
		}
	}
}

func TestConversions(t *testing.T) {
	reg := testRegistry()
	tests := []struct {
		src  string
		cost types.Cost
		want []string
	}{
		{src: "math.exp(float64)", cost: 0, want: nil},
		{src: "math.exp(intc)", cost: 1, want: []string{"argument 0: intc → int64"}},
		{src: "math.sqrt(boolean)", cost: 2, want: []string{"argument 0: boolean → intc → int64"}},
		{src: "math.pow(intc, float64)", cost: 3, want: []string{"argument 0: intc → int64 → float64"}},
		{src: "math.hypot(float32, float64)", cost: 1, want: []string{"argument 0: float32 → float64"}},
		{
			src:  "math.hypot(boolean, intc)",
			cost: 3,
			want: []string{"argument 0: boolean → intc → int64", "argument 1: intc → int64"},
		},
	}
	for _, test := range tests {
		calls, errs := check(reg, "test", []string{test.src})
		if len(errs) > 0 {
			t.Errorf("check(%q) failed:\n%s", test.src, errStr(errs))
			continue
		}
		c := calls[0]
		if got := c.Cost(reg.Lattice()); got != test.cost {
			t.Errorf("check(%q) cost=%s, want %s", test.src, got, test.cost)
		}
		if diff := cmp.Diff(test.want, c.Conversions()); diff != "" {
			t.Errorf("check(%q) conversions: %s", test.src, diff)
		}
	}
}

func TestResolve(t *testing.T) {
	reg := testRegistry()
	c, err := Resolve(reg, "math.ldexp", []types.Type{types.Float32, types.Boolean})
	if err != nil {
		t.Fatalf("Resolve failed: %s", err)
	}
	if got, want := c.String(), "math.ldexp(float32, boolean) resolves to (float32, intc){float32}"; got != want {
		t.Errorf("Resolve=%s, want %s", got, want)
	}
	if diff := cmp.Diff([][]types.Type{nil, {types.Intc}}, c.Paths, cmp.Comparer(types.Eq)); diff != "" {
		t.Errorf("Paths: %s", diff)
	}

	_, err = Resolve(reg, "f", []types.Type{types.Intc, types.Intc})
	if _, ok := err.(overload.Diagnostic); !ok {
		t.Errorf("Resolve error=%v, want an overload.Diagnostic", err)
	}
}

func errStr(errs []error) string {
	var s strings.Builder
	for i, err := range errs {
		if i > 0 {
			s.WriteRune('\n')
		}
		s.WriteString(err.Error())
	}
	return s.String()
}
