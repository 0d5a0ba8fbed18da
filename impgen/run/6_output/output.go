// Package output writes generated substitutes to disk.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/toejough/go-reorder"
)

// Writer interface for writing generated code.
type Writer interface {
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// Target says where a generated file goes.
type Target struct {
	// Dir is the output directory.
	Dir string
	// Name is the substitute's base name.
	Name string
	// PkgName is the package clause of the generated code.
	PkgName string
	// GoFile is the file that holds the go:generate directive, if known.
	GoFile string
}

// Filename returns the path of the generated file: generated_<name>.go, or
// generated_<name>_test.go when generating for a test package or from a test file.
func (t Target) Filename() string {
	name := strings.TrimSuffix(strings.TrimSuffix(t.Name, ".go"), "_test")

	isTestFile := strings.HasSuffix(t.PkgName, "_test") || strings.HasSuffix(t.GoFile, "_test.go") ||
		strings.HasSuffix(strings.TrimSuffix(t.Name, ".go"), "_test")
	if isTestFile {
		name += "_test"
	}

	return filepath.Join(t.Dir, "generated_"+name+".go")
}

// WriteGeneratedCode writes code to the target's file, reordering declarations first.
func WriteGeneratedCode(code string, target Target, fileWriter Writer, out io.Writer) error {
	const generatedFilePermissions = 0o600

	filename := target.Filename()

	reordered, err := reorder.Source(code)
	if err != nil {
		_, _ = fmt.Fprintf(out, "Warning: failed to reorder %s: %v\n", filename, err)

		reordered = code
	}

	err = fileWriter.WriteFile(filename, []byte(reordered), generatedFilePermissions)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", filename, err)
	}

	_, _ = fmt.Fprintf(out, "%s written successfully.\n", filename)

	return nil
}
