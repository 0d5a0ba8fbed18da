// impgen generates substitutes for Go interfaces.
// Install it with `go install github.com/toejough/impstub/impgen@latest` and add a
// `//go:generate impgen <interface> [<interface>...]` comment next to your tests. The
// substitute is named <Interface>Mock and made by Mock<Interface>; pass `--name <name>`
// to choose another base name. It is written to generated_<name>.go, or
// generated_<name>_test.go when generating for test code, in the package holding the
// `//go:generate` comment. Set IMPSTUB_OUTPUT_DIR to write elsewhere.
package main

import (
	"fmt"
	"os"

	"github.com/toejough/impstub/impgen/run"
	load "github.com/toejough/impstub/impgen/run/2_load"
)

// main is the entry point of the impgen tool.
func main() {
	err := run.Run(os.Args, os.Environ(), &realFileSystem{}, &realPackageLoader{}, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// realFileSystem implements run.FileSystem using the os package.
type realFileSystem struct{}

// WriteFile writes data to the file named by name.
func (fs *realFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	err := os.WriteFile(name, data, perm)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", name, err)
	}

	return nil
}

// realPackageLoader implements run.PackageLoader with go/packages from the working directory.
type realPackageLoader struct{}

// Load loads the packages matching pattern with full type information.
func (pl *realPackageLoader) Load(pattern string) ([]*load.Package, error) {
	pkgs, err := load.Packages(".", pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load package %q: %w", pattern, err)
	}

	return pkgs, nil
}
