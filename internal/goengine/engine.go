// Package goengine is the Go-targeting render.TemplateEngine shared by
// cmd/oasgen and internal/mcpserver. render.TemplateEngine is a
// caller-supplied interface; a template engine's template text is not
// the core module's concern, so this one lives under internal rather
// than in the render package itself. Grounded on generator/templates.go's
// text/template-plus-FuncMap setup and generator/template_data.go's
// flat per-emission-unit data structs.
package goengine

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/oasgen/oasgen/ir"
	"github.com/oasgen/oasgen/naming"
	"github.com/oasgen/oasgen/render"
)

// Engine is a render.TemplateEngine that emits Go source.
type Engine struct {
	tree *ir.IR
	tmpl *template.Template
}

// New returns an Engine bound to tree, used to resolve TypeIds
// encountered while rendering.
func New(tree *ir.IR) *Engine {
	e := &Engine{tree: tree}
	funcs := template.FuncMap{
		"quote": strconv.Quote,
		"lower": strings.ToLower,
	}
	e.tmpl = template.Must(template.New("oasgen-go").Funcs(funcs).Parse(goTemplates))
	return e
}

// Render implements render.TemplateEngine.
func (e *Engine) Render(templateName string, ctx any) (string, error) {
	data, err := e.buildData(templateName, ctx)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := e.tmpl.ExecuteTemplate(&buf, templateName, data); err != nil {
		return "", fmt.Errorf("go engine: %s: %w", templateName, err)
	}
	return buf.String(), nil
}

// fieldData mirrors generator.FieldData: the pieces a Go struct field
// template needs, with everything already resolved to Go syntax.
type fieldData struct {
	Name string
	Type string
	Tag  string
	Docs string
}

// typeData mirrors generator.TypeDefinition: one emitted Go type,
// dispatched on Kind rather than a Go type switch inside the template.
type typeData struct {
	Name string
	Docs string
	Kind string // "struct", "enum", "alias", "sum"
	// Package is the Go package clause this type is emitted under: the
	// default "models", or a name_mapping.module_mapping-derived nested
	// package.
	Package string
	Fields  []fieldData
	// Enum
	BaseType string
	Variants []string
	// Alias/Sum-as-alias
	TargetType string
}

// paramData mirrors a Param, resolved to a Go parameter.
type paramData struct {
	Name string
	Type string
}

// responseVariantData is one branch of an operation's response sum
// type, one per distinct ir.ResponseVariant.VariantName.
type responseVariantData struct {
	Name string
	Type string
}

// operationData mirrors generator.ClientMethodData, trimmed to the
// fields the builder template needs.
type operationData struct {
	Name         string
	Method       string
	PathTemplate string
	Docs         string
	Deprecated   bool
	PathParams   []paramData
	QueryParams  []paramData
	HeaderParams []paramData
	Responses    []responseVariantData
}

// clientData and indexData mirror generator.ClientFileData: the whole
// IR, reduced to what the top-level templates iterate over.
type clientData struct {
	Module     string
	Operations []operationData
}

type indexData struct {
	Module    string
	TypeNames []string
	OpNames   []string
}

// manifestData feeds the project manifest template.
type manifestData struct {
	Module  string
	Version string
}

func (e *Engine) buildData(templateName string, ctx any) (any, error) {
	switch templateName {
	case render.TemplateModel:
		tc, ok := ctx.(render.TypeContext)
		if !ok {
			return nil, fmt.Errorf("go engine: model context has unexpected type %T", ctx)
		}
		return e.typeDataFor(tc.NamedType), nil
	case render.TemplateBuilder:
		oc, ok := ctx.(render.OperationContext)
		if !ok {
			return nil, fmt.Errorf("go engine: builder context has unexpected type %T", ctx)
		}
		return e.operationDataFor(oc.Operation), nil
	case render.TemplateClient:
		cc, ok := ctx.(render.ClientContext)
		if !ok {
			return nil, fmt.Errorf("go engine: client context has unexpected type %T", ctx)
		}
		ops := make([]operationData, len(cc.IR.Operations))
		for i := range cc.IR.Operations {
			ops[i] = e.operationDataFor(&cc.IR.Operations[i])
		}
		return clientData{Module: string(cc.IR.RootModule), Operations: ops}, nil
	case render.TemplateIndex:
		ic, ok := ctx.(render.IndexContext)
		if !ok {
			return nil, fmt.Errorf("go engine: index context has unexpected type %T", ctx)
		}
		data := indexData{Module: string(ic.IR.RootModule)}
		for _, id := range ic.IR.TopoOrder() {
			if nt, found := ic.IR.Lookup(id); found {
				data.TypeNames = append(data.TypeNames, string(nt.Name))
			}
		}
		for _, op := range ic.IR.Operations {
			data.OpNames = append(data.OpNames, string(op.Id))
		}
		return data, nil
	case render.TemplateManifest:
		mc, ok := ctx.(render.ManifestContext)
		if !ok {
			return nil, fmt.Errorf("go engine: manifest context has unexpected type %T", ctx)
		}
		name := mc.IR.ProjectMetadata.Name
		if name == "" {
			name = string(mc.IR.RootModule)
		}
		return manifestData{Module: strings.ToLower(name), Version: mc.IR.ProjectMetadata.Version}, nil
	default:
		return nil, fmt.Errorf("go engine: unknown template %q", templateName)
	}
}

func (e *Engine) typeDataFor(nt *ir.NamedType) typeData {
	pkg := "models"
	if nt.Module != "" {
		pkg = naming.ToSnakeCase(nt.Module)
	}
	td := typeData{Name: string(nt.Name), Docs: nt.Docs, Package: pkg}
	switch k := nt.Kind.(type) {
	case ir.Enum:
		td.Kind = "enum"
		td.BaseType = goPrimitive(k.Base)
		for _, v := range k.Variants {
			td.Variants = append(td.Variants, fmt.Sprintf("%s_%s", nt.Name, v.Name))
		}
	case ir.Alias:
		td.Kind = "alias"
		td.TargetType = e.goType(k.Target)
	case ir.Array:
		td.Kind = "alias"
		td.TargetType = "[]" + e.goType(k.Element)
	case ir.Map:
		td.Kind = "alias"
		td.TargetType = "map[string]" + e.goType(k.Value)
	case ir.Opaque:
		td.Kind = "alias"
		td.TargetType = goOpaqueRepr(k)
	case ir.Sum:
		td.Kind = "sum"
		for _, v := range k.Variants {
			td.Fields = append(td.Fields, fieldData{Name: string(v.Name), Type: e.goType(v.Typ)})
		}
	case ir.Struct:
		td.Kind = "struct"
		for _, f := range k.Fields {
			goType := e.goType(f.Typ)
			if f.Optional || f.Nullable {
				goType = "*" + goType
			}
			td.Fields = append(td.Fields, fieldData{
				Name: string(f.Name),
				Type: goType,
				Tag:  jsonTag(f.WireName, f.Optional),
				Docs: f.Docs,
			})
		}
	default:
		td.Kind = "alias"
		td.TargetType = "any"
	}
	return td
}

func (e *Engine) operationDataFor(op *ir.Operation) operationData {
	od := operationData{
		Name:         string(op.Id),
		Method:       string(op.Method),
		PathTemplate: op.PathTemplate,
		Docs:         op.Docs,
		Deprecated:   op.Deprecated,
	}
	for _, p := range op.PathParams {
		od.PathParams = append(od.PathParams, paramData{Name: string(p.Name), Type: e.goType(p.Typ)})
	}
	for _, p := range op.QueryParams {
		od.QueryParams = append(od.QueryParams, paramData{Name: string(p.Name), Type: e.goType(p.Typ)})
	}
	for _, p := range op.HeaderParams {
		od.HeaderParams = append(od.HeaderParams, paramData{Name: string(p.Name), Type: e.goType(p.Typ)})
	}

	seen := make(map[string]bool)
	for _, r := range op.Responses {
		name := string(r.VariantName)
		if seen[name] {
			continue
		}
		seen[name] = true
		od.Responses = append(od.Responses, responseVariantData{Name: name, Type: e.goType(r.Typ)})
	}
	return od
}

// goType resolves a TypeId to Go source syntax: a Primitive becomes its
// Go primitive, Alias/Array/Map/Opaque wrappers are descended through,
// and every other kind falls back to the allocated name.
func (e *Engine) goType(id ir.TypeId) string {
	nt, ok := e.tree.Lookup(id)
	if !ok {
		return "any"
	}
	switch k := nt.Kind.(type) {
	case ir.Primitive:
		return goPrimitive(k)
	case ir.Array:
		return "[]" + e.goType(k.Element)
	case ir.Map:
		return "map[string]" + e.goType(k.Value)
	case ir.Alias:
		return e.goType(k.Target)
	case ir.Opaque:
		return goOpaqueRepr(k)
	default:
		return string(nt.Name)
	}
}

// goPrimitive maps an ir.Primitive to its Go equivalent, grounded on
// generator/type_mapping.go's format-to-Go-type switches.
func goPrimitive(p ir.Primitive) string {
	switch p.Name {
	case "string":
		if p.Format == "date-time" {
			return "time.Time"
		}
		if p.Format == "byte" || p.Format == "binary" {
			return "[]byte"
		}
		return "string"
	case "integer":
		if p.Format == "int32" {
			return "int32"
		}
		return "int64"
	case "number":
		if p.Format == "float" {
			return "float32"
		}
		return "float64"
	case "boolean":
		return "bool"
	default:
		return "any"
	}
}

func goOpaqueRepr(o ir.Opaque) string {
	if o.Repr != "" {
		return o.Repr
	}
	return "json.RawMessage"
}

func jsonTag(wireName string, optional bool) string {
	name := wireName
	if optional {
		name += ",omitempty"
	}
	return fmt.Sprintf("`json:%s`", strconv.Quote(name))
}

// goTemplates holds every emission-unit template, one {{define}} block
// per render.Template* constant.
var goTemplates = strings.TrimLeft(`
{{define "model"}}
package {{.Package}}

{{if eq .Kind "struct"}}
{{if .Docs}}// {{.Docs}}
{{end}}type {{.Name}} struct {
{{range .Fields}}{{if .Docs}}	// {{.Docs}}
{{end}}	{{.Name}} {{.Type}} {{.Tag}}
{{end}}}
{{else if eq .Kind "enum"}}
{{if .Docs}}// {{.Docs}}
{{end}}type {{.Name}} {{.BaseType}}

const (
{{range .Variants}}	{{.}} {{$.Name}} = {{quote .}}
{{end}})
{{else if eq .Kind "sum"}}
{{if .Docs}}// {{.Docs}}
{{end}}// {{.Name}} is a closed union; exactly one field is set.
type {{.Name}} struct {
{{range .Fields}}	{{.Name}} *{{.Type}}
{{end}}}
{{else}}
{{if .Docs}}// {{.Docs}}
{{end}}type {{.Name}} = {{.TargetType}}
{{end}}
{{end}}

{{define "builder"}}
package builders

{{if .Responses}}// {{.Name}}Response is the closed union of this operation's declared
// responses; exactly one field is set, keyed on status.
type {{.Name}}Response struct {
{{range .Responses}}	{{.Name}} *{{.Type}}
{{end}}}

{{end}}{{if .Docs}}// {{.Docs}}
{{end}}{{if .Deprecated}}// Deprecated.
{{end}}// {{.Name}} builds the {{.Method}} {{.PathTemplate}} request.
func {{.Name}}Request(
{{range .PathParams}}	{{.Name}} {{.Type}},
{{end}}{{range .QueryParams}}	{{.Name}} {{.Type}},
{{end}}{{range .HeaderParams}}	{{.Name}} {{.Type}},
{{end}}) *http.Request {
	path := {{quote .PathTemplate}}
	req, _ := http.NewRequest({{quote .Method}}, path, nil)
	return req
}
{{end}}

{{define "client"}}
// Package client is the generated {{.Module}} HTTP client.
package client

import "net/http"

// Client wraps the base URL and HTTP transport used by every builder.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a Client pointed at baseURL, using http.DefaultClient.
func New(baseURL string) *Client {
	return &Client{BaseURL: baseURL, HTTPClient: http.DefaultClient}
}
{{end}}

{{define "index"}}
// Package {{.Module}} is the generated module index for {{.Module}}.
//
// Types:
{{range .TypeNames}}//   - {{.}}
{{end}}// Operations:
{{range .OpNames}}//   - {{.}}
{{end}}package {{.Module | lower}}
{{end}}

{{define "manifest"}}
module {{.Module}}

go 1.22
{{if .Version}}
// version: {{.Version}}
{{end}}{{end}}
`, "\n")
