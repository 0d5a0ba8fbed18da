package generate

import (
	"bytes"
	"fmt"
	"text/template"
)

// TemplateRegistry holds all parsed text templates for code generation.
// Create a registry using NewTemplateRegistry() to initialize all templates.
type TemplateRegistry struct {
	headerTmpl      *template.Template
	structTmpl      *template.Template
	constructorTmpl *template.Template
	accessorsTmpl   *template.Template
	implTmpl        *template.Template
	registerTmpl    *template.Template
}

// NewTemplateRegistry creates and initializes a new template registry with all templates parsed.
// Templates are hardcoded constants, so parsing cannot fail at runtime.
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{}

	parseTemplateList([]struct {
		target  **template.Template
		name    string
		content string
	}{
		{&registry.headerTmpl, "header", tmplHeader},
		{&registry.structTmpl, "struct", tmplStruct},
		{&registry.constructorTmpl, "constructor", tmplConstructor},
		{&registry.accessorsTmpl, "accessors", tmplAccessors},
		{&registry.implTmpl, "impl", tmplImpl},
		{&registry.registerTmpl, "register", tmplRegister},
	})

	return registry
}

// WriteAccessors writes the substitute's helper methods.
func (r *TemplateRegistry) WriteAccessors(buf *bytes.Buffer, data any) {
	execute(r.accessorsTmpl, buf, data)
}

// WriteConstructor writes the substitute constructors.
func (r *TemplateRegistry) WriteConstructor(buf *bytes.Buffer, data any) {
	execute(r.constructorTmpl, buf, data)
}

// WriteHeader writes the file header and imports.
func (r *TemplateRegistry) WriteHeader(buf *bytes.Buffer, data any) {
	execute(r.headerTmpl, buf, data)
}

// WriteImpl writes the adapter type and its forwarding methods.
func (r *TemplateRegistry) WriteImpl(buf *bytes.Buffer, data any) {
	execute(r.implTmpl, buf, data)
}

// WriteRegister writes the init func registering the adapter for nested substitutes.
func (r *TemplateRegistry) WriteRegister(buf *bytes.Buffer, data any) {
	execute(r.registerTmpl, buf, data)
}

// WriteStruct writes the substitute struct.
func (r *TemplateRegistry) WriteStruct(buf *bytes.Buffer, data any) {
	execute(r.structTmpl, buf, data)
}

const tmplHeader = `// Code generated by impgen. DO NOT EDIT.

package {{.PkgName}}

import (
{{- range .StdImports}}
	{{if .Named}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
{{- if and .StdImports .Imports}}
{{end}}
{{- range .Imports}}
	{{if .Named}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)
`

const tmplStruct = `
{{- if .Combined}}

// {{.InterfaceType}} is every capability of {{.TypeName}}.
type {{.InterfaceType}} interface {
{{- range .Capabilities}}
	{{.}}
{{- end}}
}
{{- end}}

// {{.TypeName}} is a substitute for {{.Describe}}.
// Each member has a handle for stubbing and verifying calls.
type {{.TypeName}} struct {
	proxy *{{.Impstub}}.Proxy
	impl  *{{.ImplName}}
{{range .Handles}}
{{- range .Doc}}
	// {{.}}
{{- end}}
	{{.Field}} *{{$.Impstub}}.Handle
{{- end}}
}
`

const tmplConstructor = `
// {{.Constructor}} creates a substitute for {{.Describe}}.
func {{.Constructor}}(t {{.Impstub}}.TestReporter, opts ...{{.Impstub}}.Option) *{{.TypeName}} {
	capabilities := []{{.Reflect}}.Type{
{{- range .Capabilities}}
		{{$.Impstub}}.TypeOf[{{.}}](),
{{- end}}
	}

	return new{{.TypeName}}({{.Impstub}}.For(t, capabilities, opts...))
}

// {{.TypeName}}From returns the substitute behind value, which must have been made by
// {{.Constructor}} or handed out as a nested substitute.
func {{.TypeName}}From(value {{.InterfaceType}}) *{{.TypeName}} {
	return new{{.TypeName}}({{.Impstub}}.MustProxyOf(value))
}

func new{{.TypeName}}(proxy *{{.Impstub}}.Proxy) *{{.TypeName}} {
	impl, ok := proxy.Value().(*{{.ImplName}})
	if !ok {
		impl = &{{.ImplName}}{proxy: proxy}
		proxy.Bind(impl)
	}

	return &{{.TypeName}}{
		proxy: proxy,
		impl:  impl,
{{- range .Handles}}
		{{.Field}}: proxy.Handle("{{.Member}}"),
{{- end}}
	}
}
`

const tmplAccessors = `
// Base returns the value built with {{.Impstub}}.WithBase, or nil.
func (m *{{.TypeName}}) Base() any {
	return m.proxy.Base()
}

// ClearReceivedCalls forgets the calls received so far. Stubs are kept.
func (m *{{.TypeName}}) ClearReceivedCalls() {
	m.proxy.ClearReceivedCalls()
}

// Interface returns the substitute as a {{.InterfaceType}}.
func (m *{{.TypeName}}) Interface() {{.InterfaceType}} {
	return m.impl
}

// Proxy returns the proxy behind the substitute.
func (m *{{.TypeName}}) Proxy() *{{.Impstub}}.Proxy {
	return m.proxy
}

// Raise calls the current subscribers of event.
func (m *{{.TypeName}}) Raise(event string, args ...any) {
	m.proxy.Raise(event, args...)
}
`

const tmplImpl = `
// {{.ImplName}} implements {{.Describe}} by forwarding to the proxy.
type {{.ImplName}} struct {
	proxy *{{.Impstub}}.Proxy
}

func (impl *{{.ImplName}}) ImpstubProxy() *{{.Impstub}}.Proxy {
	return impl.proxy
}
{{range .Methods}}
func (impl *{{$.ImplName}}) {{.Name}}({{.Params}}){{.ResultSig}} {
{{- if .Results}}
	results := impl.proxy.Invoke("{{.Name}}"{{.Args}})

	return {{range $index, $result := .Results}}{{if $index}}, {{end}}{{$.Impstub}}.Result[{{$result}}](results, {{$index}}){{end}}
{{- else}}
	impl.proxy.Invoke("{{.Name}}"{{.Args}})
{{- end}}
}
{{end}}`

const tmplRegister = `
//nolint:gochecknoinits // adapters register themselves for nested substitutes
func init() {
	{{.Impstub}}.RegisterAdapter(func(proxy *{{.Impstub}}.Proxy) {{.InterfaceType}} {
		return new{{.TypeName}}(proxy).Interface()
	})
}
`

func execute(tmpl *template.Template, buf *bytes.Buffer, data any) {
	err := tmpl.Execute(buf, data)
	if err != nil {
		panic(fmt.Sprintf("failed to execute %s template: %v", tmpl.Name(), err))
	}
}

// parseTemplate is a helper function that parses a template using template.Must().
// Templates are hardcoded constants, so parsing cannot fail at runtime.
// Panics if the template is invalid (programming error, caught at startup).
func parseTemplate(name, content string) *template.Template {
	return template.Must(template.New(name).Parse(content))
}

// parseTemplateList parses a list of templates and assigns them to their targets.
// Uses template.Must() internally, so panics on invalid templates.
func parseTemplateList(templates []struct {
	target  **template.Template
	name    string
	content string
},
) {
	for _, def := range templates {
		*def.target = parseTemplate(def.name, def.content)
	}
}
