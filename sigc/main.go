// Sigc resolves the builtin calls of call sheets.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/eaburns/mathsig/checker"
	"github.com/eaburns/mathsig/llvm"
	"github.com/eaburns/mathsig/loc"
	"github.com/eaburns/mathsig/mod"
	"github.com/eaburns/mathsig/overload"
	"github.com/eaburns/mathsig/parser"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/samber/do"
)

var (
	configPath  = flag.String("config", "", "runtime description file (.toml, .yaml, or .yml)")
	emitLLVM    = flag.Bool("llvm", false, "print LLVM declarations of the resolved signatures")
	interactive = flag.Bool("i", false, "read calls interactively")
	dump        = flag.Bool("dump", false, "print every registered builtin and its family")
	printTree   = flag.Bool("tree", false, "print the syntax trees of the sheets instead of resolving them")
	intcBits    = flag.Int("intc", 0, "bits of intc in LLVM declarations (0 for the runtime platform's)")
	intpBits    = flag.Int("intp", 0, "bits of intp in LLVM declarations (0 for the runtime platform's)")
	v           = flag.Bool("v", false, "print argument conversions and template cases")
)

const historyFile = ".sigc_history"

func main() {
	flag.Parse()
	checkBits("intc", *intcBits)
	checkBits("intp", *intpBits)
	opts := options{
		llvm:    *emitLLVM,
		tree:    *printTree,
		verbose: *v,
		color:   isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()),
		target:  llvm.Target{IntcBits: *intcBits, IntpBits: *intpBits},
	}
	inj := newInjector(*configPath, opts)
	reg, err := do.Invoke[*overload.Registry](inj)
	if err != nil {
		die("%s", err)
	}
	switch {
	case *dump:
		dumpRegistry(os.Stdout, reg, *v)
	case *interactive:
		os.Exit(repl(inj))
	case len(flag.Args()) == 0:
		usage("a sheet path is required")
	default:
		os.Exit(run(inj, os.Stdout, os.Stderr, flag.Args()))
	}
}

func usage(msg string) {
	fmt.Printf("%s\n", msg)
	fmt.Printf("sigc [flags] <sheet or directory>...\n")
	fmt.Printf("sigc [flags] -i\n")
	fmt.Printf("sigc [flags] -dump\n")
	flag.PrintDefaults()
	os.Exit(1)
}

func checkBits(name string, bits int) {
	if bits < 0 || bits > llvm.MaxBits {
		die("-%s %d: want 1 to %d bits, or 0 for the platform's", name, bits, llvm.MaxBits)
	}
}

func die(f string, vs ...interface{}) {
	fmt.Fprintf(os.Stderr, f+"\n", vs...)
	os.Exit(1)
}

// run resolves the calls of the sheets named by paths
// and returns the exit status.
func run(inj *do.Injector, stdout, stderr io.Writer, paths []string) int {
	opts := do.MustInvoke[options](inj)
	reg := do.MustInvoke[*overload.Registry](inj)
	srcs, err := mod.Sources(paths)
	if err != nil {
		opts.report(stderr, err)
		return 1
	}
	p := parser.New()
	for _, src := range srcs {
		if err := p.ParseFile(src); err != nil {
			opts.report(stderr, err)
			return 1
		}
	}
	if opts.tree {
		for _, f := range p.Files {
			if err := f.Print(stdout, parser.PrintLocs(p.Files...)); err != nil {
				opts.report(stderr, err)
				return 1
			}
		}
		return 0
	}
	calls, locFiles, errs := checker.Check(reg, p.Files)
	for _, err := range errs {
		opts.report(stderr, err)
	}
	if !output(inj, stdout, stderr, locFiles, calls, opts.verbose) || len(errs) > 0 {
		return 1
	}
	return 0
}

func repl(inj *do.Injector) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	var histPath string
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
	}
	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("sigc> ")
		switch {
		case err == liner.ErrPromptAborted || err == io.EOF:
			fmt.Println()
			return 0
		case err != nil:
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		evalLine(inj, os.Stdout, os.Stderr, line)
	}
}

// evalLine resolves the calls on a line of interactive input.
// It returns whether there were no errors.
func evalLine(inj *do.Injector, stdout, stderr io.Writer, line string) bool {
	opts := do.MustInvoke[options](inj)
	reg := do.MustInvoke[*overload.Registry](inj)
	p := parser.New()
	if err := p.Parse("<stdin>", strings.NewReader(line)); err != nil {
		opts.report(stderr, err)
		return false
	}
	calls, locFiles, errs := checker.Check(reg, p.Files)
	for _, err := range errs {
		opts.report(stderr, err)
	}
	return output(inj, stdout, stderr, locFiles, calls, true) && len(errs) == 0
}

// output prints the resolved calls, or their LLVM declarations
// if the llvm option is set.
// It returns false if the LLVM target could not be made.
func output(inj *do.Injector, stdout, stderr io.Writer, locFiles loc.Files, calls []*checker.Call, verbose bool) bool {
	opts := do.MustInvoke[options](inj)
	if !opts.llvm {
		printCalls(stdout, locFiles, calls, verbose)
		return true
	}
	tg, err := do.Invoke[llvm.Target](inj)
	if err != nil {
		opts.report(stderr, err)
		return false
	}
	fmt.Fprint(stdout, tg.Module(calls).String())
	return true
}

func printCalls(w io.Writer, locFiles loc.Files, calls []*checker.Call, verbose bool) {
	for _, c := range calls {
		fmt.Fprintf(w, "%s: %s\n", locFiles.Location(c.L), c)
		if !verbose {
			continue
		}
		for _, conv := range c.Conversions() {
			fmt.Fprintf(w, "\t%s\n", conv)
		}
	}
}

func dumpRegistry(w io.Writer, reg *overload.Registry, verbose bool) {
	for _, id := range reg.Idents() {
		t, _ := reg.Lookup(id)
		fmt.Fprintf(w, "%s\t%s\n", id, t.Name())
		if !verbose {
			continue
		}
		for _, c := range t.Cases() {
			fmt.Fprintf(w, "\t%s%s\n", id, c)
		}
	}
}
