package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eaburns/mathsig/config"
	"github.com/eaburns/mathsig/llvm"
	"github.com/eaburns/mathsig/overload"
	"github.com/google/go-cmp/cmp"
	"github.com/samber/do"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("MkdirAll failed: %s", err)
		}
		if err := os.WriteFile(path, []byte(data), 0666); err != nil {
			t.Fatalf("WriteFile failed: %s", err)
		}
	}
	return dir
}

func TestRun(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.sheet": "math.exp(int64)\nmath.exp(intc)\n",
	})
	inj := newInjector("", options{verbose: true, target: llvm.Host})
	var stdout, stderr strings.Builder
	if status := run(inj, &stdout, &stderr, []string{dir}); status != 0 {
		t.Fatalf("run exited %d:\n%s", status, stderr.String())
	}
	path := filepath.Join(dir, "a.sheet")
	want := path + ":1.1-1.15: math.exp(int64) resolves to (int64){float64}\n" +
		path + ":2.1-2.14: math.exp(intc) resolves to (int64){float64}\n" +
		"\targument 0: intc → int64\n"
	if diff := cmp.Diff(want, stdout.String()); diff != "" {
		t.Errorf("stdout: %s", diff)
	}
}

func TestRunErrors(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.sheet": "math.exp(int64)\nmath.exp(Tuple(float64, intc))\n",
	})
	path := filepath.Join(dir, "a.sheet")
	inj := newInjector("", options{target: llvm.Host})
	var stdout, stderr strings.Builder
	if status := run(inj, &stdout, &stderr, []string{path}); status != 1 {
		t.Errorf("run exited %d, want 1", status)
	}
	if !strings.HasPrefix(stderr.String(), path+":2.1-2.30: no overload of math.exp accepts (Tuple(float64, intc))\n\t") {
		t.Errorf("stderr:\n%s", stderr.String())
	}
	if got := strings.Count(stdout.String(), "\n"); got != 1 {
		t.Errorf("printed %d calls, want 1:\n%s", got, stdout.String())
	}

	stderr.Reset()
	if status := run(inj, &stdout, &stderr, []string{filepath.Join(dir, "missing.sheet")}); status != 1 {
		t.Errorf("run(missing) exited %d, want 1", status)
	}

	bad := writeFiles(t, map[string]string{"bad.sheet": "math.exp(int64"})
	stderr.Reset()
	if status := run(inj, &stdout, &stderr, []string{bad}); status != 1 {
		t.Errorf("run(bad) exited %d, want 1", status)
	}
	if !strings.Contains(stderr.String(), "bad.sheet") {
		t.Errorf("parse error does not name the file:\n%s", stderr.String())
	}
}

func TestRunLLVM(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.sheet": "math.trunc(intc)\nmath.trunc(intp)\n",
	})
	inj := newInjector("", options{llvm: true, target: llvm.Target{IntcBits: 16, IntpBits: 32}})
	var stdout, stderr strings.Builder
	if status := run(inj, &stdout, &stderr, []string{dir}); status != 0 {
		t.Fatalf("run exited %d:\n%s", status, stderr.String())
	}
	for _, decl := range []string{
		"declare i64 @math.trunc.int64(i64 %x0)",
		"declare i32 @math.trunc.intp(i32 %x0)",
	} {
		if !strings.Contains(stdout.String(), decl) {
			t.Errorf("output does not contain %q:\n%s", decl, stdout.String())
		}
	}
}

func TestConfig(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"old.toml": `version = "2.6"`,
		"new.yaml": "version: \"3.2\"\n",
		"bad.json": "{}",
	})
	tests := []struct {
		config string
		id     overload.Ident
		found  bool
	}{
		{config: "", id: "math.isfinite", found: true},
		{config: "old.toml", id: "math.erf", found: false},
		{config: "old.toml", id: "math.exp", found: true},
		{config: "new.yaml", id: "math.isfinite", found: true},
	}
	for _, test := range tests {
		path := test.config
		if path != "" {
			path = filepath.Join(dir, path)
		}
		reg, err := do.Invoke[*overload.Registry](newInjector(path, options{}))
		if err != nil {
			t.Errorf("config %q: %s", test.config, err)
			continue
		}
		if _, ok := reg.Lookup(test.id); ok != test.found {
			t.Errorf("config %q: Lookup(%s) found=%v, want %v", test.config, test.id, ok, test.found)
		}
	}

	inj := newInjector(filepath.Join(dir, "old.toml"), options{})
	rt := do.MustInvoke[config.Runtime](inj)
	if rt.Version != (config.Version{Major: 2, Minor: 6}) {
		t.Errorf("runtime version %s, want 2.6", rt.Version)
	}

	if _, err := do.Invoke[*overload.Registry](newInjector(filepath.Join(dir, "bad.json"), options{})); err == nil {
		t.Errorf("bad.json config succeeded")
	}
}

func TestEvalLine(t *testing.T) {
	inj := newInjector("", options{target: llvm.Host})
	var stdout, stderr strings.Builder
	if !evalLine(inj, &stdout, &stderr, "math.atan2(float32, float32) math.exp(int64)") {
		// Two calls on one line are a parse error.
		if !strings.Contains(stderr.String(), "<stdin>") {
			t.Errorf("stderr:\n%s", stderr.String())
		}
	} else {
		t.Errorf("evalLine of two calls succeeded")
	}

	stdout.Reset()
	stderr.Reset()
	if !evalLine(inj, &stdout, &stderr, "math.ldexp(float32, boolean)") {
		t.Fatalf("evalLine failed:\n%s", stderr.String())
	}
	want := "<stdin>:1.1-1.28: math.ldexp(float32, boolean) resolves to (float32, intc){float32}\n" +
		"\targument 1: boolean → intc\n"
	if diff := cmp.Diff(want, stdout.String()); diff != "" {
		t.Errorf("stdout: %s", diff)
	}

	stderr.Reset()
	if evalLine(inj, &stdout, &stderr, "math.not_a_builtin(float64)") {
		t.Errorf("evalLine of an unknown builtin succeeded")
	}
	if want := "<stdin>:1.1-1.18: math.not_a_builtin: not found\n"; stderr.String() != want {
		t.Errorf("stderr=%q, want %q", stderr.String(), want)
	}
}

func TestReportColor(t *testing.T) {
	var s strings.Builder
	options{color: true}.report(&s, errors.New("a.sheet:1.1: oops\n\tnote"))
	if want := "\x1b[31ma.sheet:1.1: oops\x1b[0m\n\tnote\n"; s.String() != want {
		t.Errorf("report=%q, want %q", s.String(), want)
	}
	s.Reset()
	options{}.report(&s, errors.New("plain"))
	if s.String() != "plain\n" {
		t.Errorf("report=%q, want %q", s.String(), "plain\n")
	}
}

func TestDumpRegistry(t *testing.T) {
	reg := do.MustInvoke[*overload.Registry](newInjector("", options{}))
	var s strings.Builder
	dumpRegistry(&s, reg, false)
	lines := strings.Split(strings.TrimSuffix(s.String(), "\n"), "\n")
	if len(lines) != reg.Len() {
		t.Errorf("dumped %d lines, want %d", len(lines), reg.Len())
	}
	if !strings.Contains(s.String(), "math.exp\tunary\n") {
		t.Errorf("dump does not contain math.exp:\n%s", s.String())
	}

	s.Reset()
	dumpRegistry(&s, reg, true)
	if !strings.Contains(s.String(), "math.frexp\tfrexp\n\tmath.frexp(float64){Tuple(float64, intc)}\n") {
		t.Errorf("verbose dump does not contain math.frexp cases:\n%s", s.String())
	}
}

func TestRunTree(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.sheet": "math.exp(not_a_type)\n"})
	inj := newInjector("", options{tree: true})
	var stdout, stderr strings.Builder
	if status := run(inj, &stdout, &stderr, []string{dir}); status != 0 {
		t.Fatalf("run exited %d:\n%s", status, stderr.String())
	}
	if !strings.HasPrefix(stdout.String(), "File{\n  Path: "+filepath.Join(dir, "a.sheet")) {
		t.Errorf("stdout:\n%s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "NamedType(not_a_type)") {
		t.Errorf("stdout:\n%s", stdout.String())
	}
}

func TestRunLLVMPlatform(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.sheet":    "math.trunc(intp)\nmath.ldexp(float64, intc)\n",
		"i386.toml":  "version = \"3.12\"\nplatform = \"linux/386\"\n",
		"z80.toml":   "version = \"3.12\"\nplatform = \"linux/z80\"\n",
		"amd64.yaml": "version: \"3.12\"\nplatform: linux/amd64\n",
	})
	sheet := filepath.Join(dir, "a.sheet")
	tests := []struct {
		config string
		target llvm.Target
		want   []string
		err    string
	}{
		{
			config: "i386.toml",
			want: []string{
				"declare i32 @math.trunc.intp(i32 %x0)",
				"declare double @math.ldexp.float64.intc(double %x0, i32 %x1)",
			},
		},
		{
			config: "amd64.yaml",
			want:   []string{"declare i64 @math.trunc.intp(i64 %x0)"},
		},
		{
			config: "amd64.yaml",
			target: llvm.Target{IntcBits: 16},
			want: []string{
				"declare i64 @math.trunc.intp(i64 %x0)",
				"declare double @math.ldexp.float64.intc(double %x0, i16 %x1)",
			},
		},
		{
			// Both widths given, so the unknown platform is not consulted.
			config: "z80.toml",
			target: llvm.Target{IntcBits: 16, IntpBits: 16},
			want:   []string{"declare i16 @math.trunc.intp(i16 %x0)"},
		},
		{config: "z80.toml", err: "unknown architecture z80"},
		{config: "amd64.yaml", target: llvm.Target{IntcBits: 99}, err: "bad intc width 99"},
	}
	for _, test := range tests {
		inj := newInjector(filepath.Join(dir, test.config), options{llvm: true, target: test.target})
		var stdout, stderr strings.Builder
		status := run(inj, &stdout, &stderr, []string{sheet})
		if test.err != "" {
			if status != 1 || !strings.Contains(stderr.String(), test.err) {
				t.Errorf("%s %+v: exited %d with %q, want 1 with %q",
					test.config, test.target, status, stderr.String(), test.err)
			}
			continue
		}
		if status != 0 {
			t.Errorf("%s %+v: exited %d:\n%s", test.config, test.target, status, stderr.String())
			continue
		}
		for _, decl := range test.want {
			if !strings.Contains(stdout.String(), decl) {
				t.Errorf("%s %+v: output does not contain %q:\n%s", test.config, test.target, decl, stdout.String())
			}
		}
	}
}
