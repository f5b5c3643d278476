package utils

import (
	"flag"
	"fmt"
	"log"
	"strings"
)

type options struct {
	wideningDelay uint
	function      string
	outputFormat  string
	gopath        string
	modulePath    string
	task          string
	noColorize    bool
	verbose       bool
	visualize     bool
	includeTests  bool
}

const (
	_INTERVALS = iota
	_LIVEVARS
	_AVAILABLE
)

var task = []struct{ flag, explanation string }{{
	"intervals",
	"Compute integer intervals of SSA registers at the exit of every block",
}, {
	"livevars",
	"Compute the SSA values live at the entry of every block",
}, {
	"available",
	"Compute the SSA definitions definitely available at the entry of every block",
}}

var opts = &options{wideningDelay: 2}

type optInterface struct{}

type taskInterface struct{}

func Opts() optInterface {
	return optInterface{}
}

// CanColorize wraps a colorizing function such that it is bypassed when
// colorization is disabled.
func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprint(is...)
		}
	}
	return col
}

func (optInterface) NoColorize() bool {
	return opts.noColorize
}
func (optInterface) WideningDelay() int {
	return int(opts.wideningDelay)
}
func (optInterface) Function() string {
	return opts.function
}
func (optInterface) OutputFormat() string {
	return opts.outputFormat
}
func (optInterface) GoPath() string {
	return opts.gopath
}
func (optInterface) ModulePath() string {
	return opts.modulePath
}
func (optInterface) Verbose() bool {
	return opts.verbose
}
func (optInterface) Visualize() bool {
	return opts.visualize
}
func (optInterface) IncludeTests() bool {
	return opts.includeTests
}

func (optInterface) OnVerbose(do func()) {
	if Opts().Verbose() {
		do()
	}
}

func (optInterface) Task() taskInterface {
	return taskInterface{}
}

func (taskInterface) IsIntervals() bool {
	return opts.task == task[_INTERVALS].flag
}
func (taskInterface) IsLiveVars() bool {
	return opts.task == task[_LIVEVARS].flag
}
func (taskInterface) IsAvailable() bool {
	return opts.task == task[_AVAILABLE].flag
}
func (taskInterface) String() string {
	return opts.task
}

func init() {
	taskFlag := "\n"
	for _, task := range task {
		taskFlag += task.flag + " -- " + task.explanation + "\n"
	}
	taskFlag += "\n"

	flag.UintVar(&(opts.wideningDelay), "widening-delay", 2, "Number of visits to a block before its input is widened.")
	flag.StringVar(&(opts.function), "fun", "main", "target a specific function of the main package.\n"+
		"- Use '.' to analyze all functions in the main package.\n")
	flag.StringVar(&(opts.outputFormat), "format", "svg", "output file format [svg | png | jpg | ...]")
	flag.StringVar(&(opts.gopath), "gopath", ".", "specify GOPATH to be used for packages.Load")
	flag.StringVar(&(opts.modulePath), "modulepath", "", `specify a path to a directory containing a Go module.
- If provided this will make package loading run in "module-aware" mode (GO111MODULE=on).`)
	flag.StringVar(&(opts.task), "task", task[_INTERVALS].flag, "Set the task to do during execution. Options:"+taskFlag)
	flag.BoolVar(&(opts.noColorize), "no-colorize", false, "Disable pretty printer colorization")
	flag.BoolVar(&(opts.verbose), "verbose", false, "enable verbose output")
	flag.BoolVar(&(opts.visualize), "visualize", false, "render the analysed blocks and their states with graphviz")
	flag.BoolVar(&(opts.includeTests), "include-tests", false, "include main package test files in the analysis.")

	// Set up logging
	log.SetFlags(log.Ltime | log.Lshortfile)
}

func ParseArgs() {
	// Calling flag.Parse in init messes up unit tests.
	flag.Parse()

	validTask := false
	for _, task := range task {
		if task.flag == opts.task {
			validTask = true
			break
		}
	}

	if !validTask {
		flags := make([]string, 0, len(task))
		for _, task := range task {
			flags = append(flags, task.flag)
		}
		log.Fatalf("Value \"%s\" is not valid for -task. Options: %s", opts.task, strings.Join(flags, ", "))
	}
}
