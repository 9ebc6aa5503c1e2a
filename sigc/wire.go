package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/eaburns/mathsig/config"
	"github.com/eaburns/mathsig/llvm"
	"github.com/eaburns/mathsig/mathdecl"
	"github.com/eaburns/mathsig/overload"
	"github.com/samber/do"
)

type options struct {
	llvm    bool
	tree    bool
	verbose bool
	color   bool
	// target overrides the integer widths of the runtime platform.
	// Zero widths are taken from the platform.
	target  llvm.Target
}

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

// report prints an error, coloring its first line if opts.color is set.
func (opts options) report(w io.Writer, err error) {
	msg := err.Error()
	if opts.color {
		first, rest, _ := strings.Cut(msg, "\n")
		msg = red(first)
		if rest != "" {
			msg += "\n" + rest
		}
	}
	fmt.Fprintln(w, msg)
}

// newInjector returns an injector providing
// the options, the runtime description loaded from configPath
// (or the default runtime if configPath is empty),
// the Registry of math builtins for that runtime,
// and the llvm.Target of its platform.
func newInjector(configPath string, opts options) *do.Injector {
	i := do.New()
	do.ProvideValue(i, opts)
	do.Provide(i, func(i *do.Injector) (config.Runtime, error) {
		if configPath == "" {
			return config.Default(), nil
		}
		return config.Load(configPath)
	})
	do.Provide(i, func(i *do.Injector) (*overload.Registry, error) {
		rt, err := do.Invoke[config.Runtime](i)
		if err != nil {
			return nil, err
		}
		return mathdecl.Registry(rt), nil
	})
	do.Provide(i, func(i *do.Injector) (llvm.Target, error) {
		rt, err := do.Invoke[config.Runtime](i)
		if err != nil {
			return llvm.Target{}, err
		}
		tg := opts.target
		if tg.IntcBits == 0 || tg.IntpBits == 0 {
			plat, err := llvm.TargetFor(rt.Platform)
			if err != nil {
				return llvm.Target{}, err
			}
			if tg.IntcBits == 0 {
				tg.IntcBits = plat.IntcBits
			}
			if tg.IntpBits == 0 {
				tg.IntpBits = plat.IntpBits
			}
		}
		return tg, tg.Validate()
	})
	return i
}
