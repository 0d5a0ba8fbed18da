// Package run implements the main logic for the impgen tool in a testable way.
package run

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/caarlos0/env/v11"

	load "github.com/toejough/impstub/impgen/run/2_load"
	detect "github.com/toejough/impstub/impgen/run/3_detect"
	generate "github.com/toejough/impstub/impgen/run/5_generate"
	output "github.com/toejough/impstub/impgen/run/6_output"
)

// FileSystem interface for writing generated files.
type FileSystem interface {
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// PackageLoader loads packages by pattern. "." is the package being generated into.
type PackageLoader interface {
	Load(pattern string) ([]*load.Package, error)
}

// Exported variables.
var (
	ErrLocalPackage = errors.New("cannot find the package being generated into")
)

// Run executes the impgen tool logic. It takes the command-line arguments, the environment
// as KEY=value pairs, a FileSystem for the generated file, and a PackageLoader. On success
// it writes one Go source file holding a substitute for every named interface.
func Run(args, environ []string, fileSys FileSystem, pkgLoader PackageLoader, out io.Writer) error {
	parsed, err := parseArgs(args)
	if err != nil {
		return err
	}

	config, err := parseEnv(environ)
	if err != nil {
		return err
	}

	local, err := localPackage(config.Package, pkgLoader)
	if err != nil {
		return err
	}

	ifaces := make([]detect.Interface, 0, len(parsed.Interfaces))

	for _, ref := range parsed.Interfaces {
		iface, err := findInterface(ref, local, pkgLoader)
		if err != nil {
			return err
		}

		ifaces = append(ifaces, iface)
	}

	name := parsed.Name
	if name == "" {
		name = generate.BaseName(ifaces)
	}

	code, err := generate.Generate(generate.Request{
		PkgName:    config.Package,
		Pkg:        local.Types,
		Name:       name,
		Interfaces: ifaces,
	})
	if err != nil {
		return fmt.Errorf("generating %s: %w", name, err)
	}

	return output.WriteGeneratedCode(code, output.Target{
		Dir:     config.OutputDir,
		Name:    name,
		PkgName: config.Package,
		GoFile:  config.File,
	}, fileSys, out)
}

// cliArgs defines the command-line arguments for the generator.
type cliArgs struct {
	Interfaces []string `arg:"positional,required" help:"interfaces to substitute (e.g. Reader or io.Reader)"`
	Name       string   `arg:"--name"              help:"base name of the substitute (defaults to the interface names)"`
}

// envConfig is the go generate environment.
type envConfig struct {
	Package   string `env:"GOPACKAGE,required"`
	File      string `env:"GOFILE"`
	OutputDir string `env:"IMPSTUB_OUTPUT_DIR" envDefault:"."`
}

// findInterface resolves ref: "Name" in the local package, "pkg.Name" for a package the
// local package imports, or "import/path.Name".
func findInterface(ref string, local *load.Package, pkgLoader PackageLoader) (detect.Interface, error) {
	cut := strings.LastIndex(ref, ".")
	if cut < 0 {
		return detect.Find(local, ref)
	}

	importPath, name := ref[:cut], ref[cut+1:]

	for _, imported := range local.Types.Imports() {
		if imported.Name() == importPath {
			importPath = imported.Path()

			break
		}
	}

	pkgs, err := pkgLoader.Load(importPath)
	if err != nil {
		return detect.Interface{}, fmt.Errorf("failed to load package %q: %w", importPath, err)
	}

	return detect.Find(pkgs[0], name)
}

// localPackage picks the variant of the local package named pkgName, preferring the one
// compiled with its test files.
func localPackage(pkgName string, pkgLoader PackageLoader) (*load.Package, error) {
	pkgs, err := pkgLoader.Load(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load local package: %w", err)
	}

	var found *load.Package

	for _, pkg := range pkgs {
		if pkg.Name != pkgName {
			continue
		}

		if found == nil || (pkg.Test && !found.Test) {
			found = pkg
		}
	}

	if found == nil {
		return nil, fmt.Errorf("%w: %s", ErrLocalPackage, pkgName)
	}

	return found, nil
}

// parseArgs parses command-line arguments into cliArgs.
func parseArgs(args []string) (cliArgs, error) {
	var parsed cliArgs

	parser, err := arg.NewParser(arg.Config{Program: "impgen"}, &parsed)
	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to create argument parser: %w", err)
	}

	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}

	err = parser.Parse(cmdArgs)
	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to parse arguments: %w", err)
	}

	return parsed, nil
}

// parseEnv reads the go generate environment from environ.
func parseEnv(environ []string) (envConfig, error) {
	var config envConfig

	err := env.ParseWithOptions(&config, env.Options{Environment: env.ToMap(environ)})
	if err != nil {
		return envConfig{}, fmt.Errorf("failed to read environment: %w", err)
	}

	return config, nil
}
