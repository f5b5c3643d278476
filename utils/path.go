package utils

import "flag"

// MakePath returns the package pattern to analyze, which is the first
// non-flag argument. If no pattern is provided, it defaults to the package
// in the current directory.
func MakePath() string {
	if args := flag.Args(); len(args) >= 1 {
		return args[0]
	}
	return "."
}
