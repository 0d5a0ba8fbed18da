// Package load reads Go packages with full type information, plus the doc comments of
// interface methods.
package load

import (
	"errors"
	"fmt"
	"go/ast"
	"go/importer"
	"go/token"
	"go/types"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"golang.org/x/tools/go/packages"
)

// Package is a loaded, type-checked package.
type Package struct {
	// Name is the package name, e.g. "calc_test".
	Name string
	// Path is the import path.
	Path string
	// Types is the type-checked package.
	Types *types.Package
	// Docs maps the position of an interface method's name to its doc comment lines.
	Docs map[token.Pos][]string
	// Test reports whether the package includes test files.
	Test bool
}

// Check type-checks already parsed files as the package at path. Imports are resolved
// from compiled export data.
func Check(path string, fset *token.FileSet, files []*ast.File) (*Package, error) {
	config := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}

	pkg, err := config.Check(path, fset, files, nil)
	if err != nil {
		return nil, fmt.Errorf("type-checking %s: %w", path, err)
	}

	docs, err := MethodDocs(fset, files)
	if err != nil {
		return nil, err
	}

	return &Package{Name: pkg.Name(), Path: path, Types: pkg, Docs: docs}, nil
}

// MethodDocs collects the doc comments of interface methods declared in files.
func MethodDocs(fset *token.FileSet, files []*ast.File) (map[token.Pos][]string, error) {
	docs := make(map[token.Pos][]string)

	for _, file := range files {
		dec := decorator.NewDecorator(fset)

		dstFile, err := dec.DecorateFile(file)
		if err != nil {
			return nil, fmt.Errorf("decorating %s: %w", fset.Position(file.Pos()).Filename, err)
		}

		dst.Inspect(dstFile, func(node dst.Node) bool {
			iface, ok := node.(*dst.InterfaceType)
			if !ok || iface.Methods == nil {
				return true
			}

			for _, field := range iface.Methods.List {
				lines := commentLines(field.Decs.Start)
				if len(lines) == 0 {
					continue
				}

				for _, name := range field.Names {
					if ident, ok := dec.Ast.Nodes[name].(*ast.Ident); ok {
						docs[ident.Pos()] = lines
					}
				}
			}

			return true
		})
	}

	return docs, nil
}

// Packages loads the packages matching pattern from dir. Test variants are included for
// the package in dir itself so interfaces declared in _test.go files can be found.
func Packages(dir, pattern string) ([]*Package, error) {
	config := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax |
			packages.NeedTypesInfo | packages.NeedFiles | packages.NeedImports,
		Dir:   dir,
		Tests: pattern == ".",
	}

	loaded, err := packages.Load(config, pattern)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", pattern, err)
	}

	var result []*Package

	for _, pkg := range loaded {
		if strings.HasSuffix(pkg.ID, ".test") {
			continue
		}

		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoad, pkg.ID, pkg.Errors[0])
		}

		docs, err := MethodDocs(pkg.Fset, pkg.Syntax)
		if err != nil {
			return nil, err
		}

		result = append(result, &Package{
			Name:  pkg.Name,
			Path:  pkg.PkgPath,
			Types: pkg.Types,
			Docs:  docs,
			Test:  strings.Contains(pkg.ID, "[") || strings.HasSuffix(pkg.Name, "_test"),
		})
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPackages, pattern)
	}

	return result, nil
}

// Exported variables.
var (
	// ErrLoad is returned when a package has load or type errors.
	ErrLoad = errors.New("package failed to load")
	// ErrNoPackages is returned when a pattern matches nothing.
	ErrNoPackages = errors.New("no packages found")
)

func commentLines(decorations dst.Decorations) []string {
	var lines []string

	for _, decoration := range decorations {
		text, ok := strings.CutPrefix(decoration, "//")
		if !ok {
			continue
		}

		lines = append(lines, strings.TrimPrefix(text, " "))
	}

	return lines
}
