package pkgutil

import (
	"errors"
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/ssa"
	"golang.org/x/tools/go/ssa/ssautil"
)

// BuildSSA constructs the SSA program for the loaded packages, and returns
// the main package, i.e., the initial package with the most members.
func BuildSSA(pkgs []*packages.Package) (*ssa.Program, *ssa.Package, error) {
	prog, ssapkgs := ssautil.AllPackages(pkgs, ssa.SanityCheckFunctions)
	prog.Build()

	var main *ssa.Package
	for _, pkg := range ssapkgs {
		if pkg == nil || strings.HasSuffix(pkg.Pkg.Path(), ".test") {
			continue
		}
		if main == nil || len(main.Members) < len(pkg.Members) {
			main = pkg
		}
	}
	if main == nil {
		return nil, nil, errors.New("no package could be built")
	}
	return prog, main, nil
}

// BuildSource type checks and builds a single file package directly from
// source. Imports are resolved from compiler export data. It is mainly
// useful for testing.
func BuildSource(filename, src string) (*ssa.Package, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	pkg := types.NewPackage(f.Name.Name, f.Name.Name)
	tc := &types.Config{Importer: importer.Default()}
	ssapkg, _, err := ssautil.BuildPackage(tc, fset, pkg, []*ast.File{f}, ssa.SanityCheckFunctions)
	return ssapkg, err
}

// Functions finds the functions of the package targeted by name. The name "."
// targets every function declared in the package, including methods, sorted
// by name.
func Functions(pkg *ssa.Package, name string) ([]*ssa.Function, error) {
	if name != "." {
		if fun := pkg.Func(name); fun != nil {
			return []*ssa.Function{fun}, nil
		}
		return nil, fmt.Errorf("function %s not found in package %s", name, pkg.Pkg.Path())
	}

	var funs []*ssa.Function
	seen := map[*ssa.Function]bool{}
	for _, mem := range pkg.Members {
		switch mem := mem.(type) {
		case *ssa.Function:
			if mem.Synthetic == "" {
				funs = append(funs, mem)
			}
		case *ssa.Type:
			// Methods with value receivers are only declared in the method
			// set of the value type. The pointer method set holds wrappers.
			for _, typ := range []types.Type{mem.Type(), types.NewPointer(mem.Type())} {
				mset := pkg.Prog.MethodSets.MethodSet(typ)
				for i := 0; i < mset.Len(); i++ {
					if fun := pkg.Prog.MethodValue(mset.At(i)); fun != nil && fun.Synthetic == "" && fun.Pkg == pkg && !seen[fun] {
						seen[fun] = true
						funs = append(funs, fun)
					}
				}
			}
		}
	}

	sort.Slice(funs, func(i, j int) bool {
		return funs[i].String() < funs[j].String()
	})
	return funs, nil
}
