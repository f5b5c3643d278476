package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cs-au-dk/latmap/analysis/available"
	"github.com/cs-au-dk/latmap/analysis/dataflow"
	"github.com/cs-au-dk/latmap/analysis/intervals"
	L "github.com/cs-au-dk/latmap/analysis/lattice"
	"github.com/cs-au-dk/latmap/analysis/livevars"
	"github.com/cs-au-dk/latmap/pkgutil"
	"github.com/cs-au-dk/latmap/utils"
	"github.com/cs-au-dk/latmap/utils/dot"

	"github.com/fatih/color"
	"golang.org/x/tools/go/ssa"
)

var (
	opts = utils.Opts()
	task = opts.Task()
)

func main() {
	utils.ParseArgs()
	path := utils.MakePath()
	color.NoColor = color.NoColor || opts.NoColorize()

	pkgs, err := pkgutil.LoadPackages(pkgutil.LoadConfig{
		GoPath:       opts.GoPath(),
		ModulePath:   opts.ModulePath(),
		IncludeTests: opts.IncludeTests(),
	}, path)
	if err != nil {
		log.Println("Failed pkgutil.LoadPackages")
		log.Println(err)
		os.Exit(1)
	}

	_, pkg, err := pkgutil.BuildSSA(pkgs)
	if err != nil {
		log.Fatalln(err)
	}

	funs, err := pkgutil.Functions(pkg, opts.Function())
	if err != nil {
		log.Fatalln(err)
	}

	for _, fun := range funs {
		switch {
		case task.IsIntervals():
			report(fun, intervals.Analyze(fun))
		case task.IsLiveVars():
			report(fun, livevars.LiveVars(fun))
		case task.IsAvailable():
			report(fun, available.Available(fun))
		}
	}
}

// report prints the states computed for every block of fun, and renders
// them with graphviz if requested.
func report[K, V any](fun *ssa.Function, res *dataflow.Result[K, V]) {
	fmt.Println(color.New(color.Bold).Sprintf("%s (%s)", fun, task))
	for _, b := range fun.Blocks {
		fmt.Printf("%d: %s\n", b.Index, b.Comment)
		fmt.Println("  in: ", state(res.In, b))
		fmt.Println("  out:", state(res.Out, b))
	}
	fmt.Println()

	if !opts.Visualize() {
		return
	}

	g := dot.BlockGraph(fun, func(b *ssa.BasicBlock) (before, after fmt.Stringer) {
		return stringer(res.In, b), stringer(res.Out, b)
	})
	img, err := g.Render(fun.Name(), opts.OutputFormat())
	if err != nil {
		log.Println("Rendering failed:", err)
		return
	}
	log.Println("Rendered", fun, "to", img)
}

func state[K, V any](states map[*ssa.BasicBlock]*L.FlatMap[K, V], b *ssa.BasicBlock) string {
	if st, found := states[b]; found {
		return st.Pretty()
	}
	return color.RedString("unreachable")
}

// stringer avoids wrapping missing states in a non-nil interface.
func stringer[K, V any](states map[*ssa.BasicBlock]*L.FlatMap[K, V], b *ssa.BasicBlock) fmt.Stringer {
	if st, found := states[b]; found {
		return st
	}
	return nil
}
