// Package detect finds the interfaces to substitute and flattens their method sets.
package detect

import (
	"errors"
	"fmt"
	"go/types"
	"slices"

	load "github.com/toejough/impstub/impgen/run/2_load"
)

// Interface is a named interface and its complete method set.
type Interface struct {
	// Name is the interface's declared name.
	Name string
	// Pkg is the declaring package.
	Pkg *types.Package
	// Methods are the interface's methods, including embedded ones, sorted by name.
	Methods []Method
}

// Method is one method of an interface.
type Method struct {
	Name      string
	Signature *types.Signature
	Doc       []string
}

// Exported variables.
var (
	ErrConflictingSignature = errors.New("conflicting method signature")
	ErrGeneric              = errors.New("generic interfaces are not supported")
	ErrNotFound             = errors.New("type not found")
	ErrNotInterface         = errors.New("type is not an interface")
)

// Find looks up the named interface in pkg.
func Find(pkg *load.Package, name string) (Interface, error) {
	obj := pkg.Types.Scope().Lookup(name)
	if obj == nil {
		return Interface{}, fmt.Errorf("%w: %s in %s", ErrNotFound, name, pkg.Path)
	}

	typeName, ok := obj.(*types.TypeName)
	if !ok {
		return Interface{}, fmt.Errorf("%w: %s in %s is not a type", ErrNotFound, name, pkg.Path)
	}

	if named, ok := typeName.Type().(*types.Named); ok && named.TypeParams().Len() > 0 {
		return Interface{}, fmt.Errorf("%w: %s", ErrGeneric, name)
	}

	iface, ok := typeName.Type().Underlying().(*types.Interface)
	if !ok || !iface.IsMethodSet() {
		return Interface{}, fmt.Errorf("%w: %s", ErrNotInterface, name)
	}

	result := Interface{Name: name, Pkg: typeName.Pkg()}

	for index := range iface.NumMethods() {
		fn := iface.Method(index)

		signature, _ := fn.Type().(*types.Signature)
		result.Methods = append(result.Methods, Method{
			Name:      fn.Name(),
			Signature: signature,
			Doc:       pkg.Docs[fn.Pos()],
		})
	}

	return result, nil
}

// Union merges the method sets of ifaces in order. Methods declared by more than one
// interface with identical signatures appear once; different signatures are an error.
func Union(ifaces []Interface) ([]Method, error) {
	var methods []Method

	owners := make(map[string]string)

	for _, iface := range ifaces {
		for _, method := range iface.Methods {
			index := slices.IndexFunc(methods, func(existing Method) bool { return existing.Name == method.Name })
			if index < 0 {
				methods = append(methods, method)
				owners[method.Name] = iface.Name

				continue
			}

			if !types.Identical(methods[index].Signature, method.Signature) {
				return nil, fmt.Errorf("%w: %s.%s and %s.%s",
					ErrConflictingSignature, owners[method.Name], method.Name, iface.Name, method.Name)
			}

			if len(methods[index].Doc) == 0 {
				methods[index].Doc = method.Doc
			}
		}
	}

	return methods, nil
}
