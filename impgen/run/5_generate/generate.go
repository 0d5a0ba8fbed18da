// Package generate renders the Go source of a substitute: a struct of member handles
// plus an adapter type implementing the substituted interfaces.
package generate

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/types"
	"path"
	"slices"
	"strconv"
	"strings"
	"unicode"

	detect "github.com/toejough/impstub/impgen/run/3_detect"
)

// Import paths the generated code always depends on.
const (
	ImpstubPath = "github.com/toejough/impstub"
	reflectPath = "reflect"
)

// Exported variables.
var (
	ErrNoInterfaces = errors.New("no interfaces to substitute")
	ErrFormat       = errors.New("generated code does not format")
)

// Request describes one substitute to generate.
type Request struct {
	// PkgName is the package clause of the generated file.
	PkgName string
	// Pkg is the package the generated file belongs to. Types declared in it are
	// written unqualified.
	Pkg *types.Package
	// Name is the base name; the substitute is <Name>Mock, made by Mock<Name>.
	Name string
	// Interfaces are the substituted interfaces, in capability order.
	Interfaces []detect.Interface
}

// BaseName returns the default base name for ifaces: their names concatenated.
func BaseName(ifaces []detect.Interface) string {
	var builder strings.Builder

	for _, iface := range ifaces {
		builder.WriteString(upperFirst(iface.Name))
	}

	return builder.String()
}

// Generate renders the substitute described by req as formatted Go source.
func Generate(req Request) (string, error) {
	if len(req.Interfaces) == 0 {
		return "", ErrNoInterfaces
	}

	methods, err := detect.Union(req.Interfaces)
	if err != nil {
		return "", fmt.Errorf("substituting %s: %w", req.Name, err)
	}

	imports := newImportSet(req.Pkg)
	data := newFileData(req, imports)

	for _, method := range methods {
		data.Handles = append(data.Handles, handleData{
			Field:  handleField(method.Name),
			Member: method.Name,
			Doc:    method.Doc,
		})
		data.Methods = append(data.Methods, newMethodData(method, imports.qualifier))
	}

	data.StdImports, data.Imports = imports.list()

	registry := NewTemplateRegistry()

	var buf bytes.Buffer

	registry.WriteHeader(&buf, data)
	registry.WriteStruct(&buf, data)
	registry.WriteConstructor(&buf, data)
	registry.WriteAccessors(&buf, data)
	registry.WriteImpl(&buf, data)

	if !data.Combined {
		registry.WriteRegister(&buf, data)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("%w: %w\n%s", ErrFormat, err, buf.String())
	}

	return string(formatted), nil
}

type fileData struct {
	PkgName       string
	StdImports    []importData
	Imports       []importData
	Impstub       string
	Reflect       string
	TypeName      string
	Constructor   string
	ImplName      string
	InterfaceType string
	Capabilities  []string
	Combined      bool
	Describe      string
	Handles       []handleData
	Methods       []methodData
}

type handleData struct {
	Field  string
	Member string
	Doc    []string
}

type importData struct {
	Alias string
	Path  string
	Named bool
}

type methodData struct {
	Name      string
	Params    string
	Args      string
	ResultSig string
	Results   []string
}

// importSet names the packages referenced by the generated file, aliasing on clashes.
type importSet struct {
	local   *types.Package
	aliases map[string]string
	names   map[string]string
	taken   map[string]bool
}

func newImportSet(local *types.Package) *importSet {
	set := &importSet{
		local:   local,
		aliases: make(map[string]string),
		names:   make(map[string]string),
		taken:   make(map[string]bool),
	}

	set.add(ImpstubPath, "impstub")
	set.add(reflectPath, "reflect")

	return set
}

func (s *importSet) add(importPath, name string) string {
	if alias, ok := s.aliases[importPath]; ok {
		return alias
	}

	alias := name

	for suffix := 2; s.taken[alias]; suffix++ {
		alias = name + strconv.Itoa(suffix)
	}

	s.aliases[importPath] = alias
	s.names[importPath] = name
	s.taken[alias] = true

	return alias
}

// list returns the imports sorted by path, standard library packages first.
func (s *importSet) list() (std, others []importData) {
	paths := make([]string, 0, len(s.aliases))
	for importPath := range s.aliases {
		paths = append(paths, importPath)
	}

	slices.Sort(paths)

	for _, importPath := range paths {
		alias := s.aliases[importPath]
		data := importData{
			Alias: alias,
			Path:  importPath,
			Named: alias != s.names[importPath] || s.names[importPath] != path.Base(importPath),
		}

		if isStdlib(importPath) {
			std = append(std, data)
		} else {
			others = append(others, data)
		}
	}

	return std, others
}

func (s *importSet) qualifier(pkg *types.Package) string {
	if s.local != nil && pkg.Path() == s.local.Path() {
		return ""
	}

	return s.add(pkg.Path(), pkg.Name())
}

func describe(ifaces []detect.Interface) string {
	names := make([]string, 0, len(ifaces))
	for _, iface := range ifaces {
		names = append(names, iface.Name)
	}

	if len(names) == 1 {
		return names[0]
	}

	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

// handleField names the struct field of a member's handle, avoiding the substitute's
// own methods.
func handleField(member string) string {
	switch member {
	case "Base", "ClearReceivedCalls", "Interface", "Proxy", "Raise":
		return member + "Member"
	default:
		return member
	}
}

// isStdlib reports whether importPath belongs to the standard library, whose first
// path element never contains a dot.
func isStdlib(importPath string) bool {
	first, _, _ := strings.Cut(importPath, "/")

	return !strings.Contains(first, ".")
}

func lowerFirst(name string) string {
	runes := []rune(name)
	if len(runes) == 0 {
		return name
	}

	runes[0] = unicode.ToLower(runes[0])

	return string(runes)
}

func newFileData(req Request, imports *importSet) fileData {
	name := req.Name
	if name == "" {
		name = BaseName(req.Interfaces)
	}

	data := fileData{
		PkgName:     req.PkgName,
		Impstub:     imports.add(ImpstubPath, "impstub"),
		Reflect:     imports.add(reflectPath, "reflect"),
		TypeName:    name + "Mock",
		Constructor: "Mock" + name,
		ImplName:    lowerFirst(name) + "Impl",
		Combined:    len(req.Interfaces) > 1,
		Describe:    describe(req.Interfaces),
	}

	for _, iface := range req.Interfaces {
		qualified := iface.Name
		if prefix := imports.qualifier(iface.Pkg); prefix != "" {
			qualified = prefix + "." + iface.Name
		}

		data.Capabilities = append(data.Capabilities, qualified)
	}

	data.InterfaceType = data.Capabilities[0]
	if data.Combined {
		data.InterfaceType = data.TypeName + "Interface"
	}

	return data
}

func newMethodData(method detect.Method, qualifier types.Qualifier) methodData {
	signature := method.Signature
	data := methodData{Name: method.Name}

	var params, args strings.Builder

	for index := range signature.Params().Len() {
		name := "arg" + strconv.Itoa(index+1)
		typ := signature.Params().At(index).Type()

		if index > 0 {
			params.WriteString(", ")
		}

		if signature.Variadic() && index == signature.Params().Len()-1 {
			slice, _ := typ.(*types.Slice)
			fmt.Fprintf(&params, "%s ...%s", name, types.TypeString(slice.Elem(), qualifier))
		} else {
			fmt.Fprintf(&params, "%s %s", name, types.TypeString(typ, qualifier))
		}

		args.WriteString(", " + name)
	}

	for index := range signature.Results().Len() {
		data.Results = append(data.Results, types.TypeString(signature.Results().At(index).Type(), qualifier))
	}

	data.Params = params.String()
	data.Args = args.String()

	switch len(data.Results) {
	case 0:
	case 1:
		data.ResultSig = " " + data.Results[0]
	default:
		data.ResultSig = " (" + strings.Join(data.Results, ", ") + ")"
	}

	return data
}

func upperFirst(name string) string {
	runes := []rune(name)
	if len(runes) == 0 {
		return name
	}

	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}
