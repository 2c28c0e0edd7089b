package synth

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yosida95/uritemplate/v3"

	"github.com/oasgen/oasgen/config"
	"github.com/oasgen/oasgen/diagnostics"
	"github.com/oasgen/oasgen/internal/httputil"
	"github.com/oasgen/oasgen/ir"
	"github.com/oasgen/oasgen/naming"
	"github.com/oasgen/oasgen/parser"
	"github.com/oasgen/oasgen/refresolver"
	"github.com/oasgen/oasgen/schema"
	"github.com/oasgen/oasgen/specloader"
)

// knownMethods is the method set ir.Method closes over. OAS 3.2's QUERY
// verb and any additionalOperations entries fall outside it and are
// skipped with a diagnostic.
var knownMethods = map[string]bool{
	httputil.MethodGet:     true,
	httputil.MethodPut:     true,
	httputil.MethodPost:    true,
	httputil.MethodDelete:  true,
	httputil.MethodOptions: true,
	httputil.MethodHead:    true,
	httputil.MethodPatch:   true,
	httputil.MethodTrace:   true,
}

// Synthesizer builds ir.Operation values from a document's paths,
// delegating schema classification to a shared Normalizer so
// operation-scoped types land in the same type table as component
// schemas.
type Synthesizer struct {
	doc      *specloader.Document
	resolver *refresolver.Resolver
	norm     *schema.Normalizer
	cfg      *config.Config
	diags    *diagnostics.Bag
	opNames  *naming.Scope
}

// New returns a Synthesizer over doc, classifying schemas through norm.
// cfg supplies status_code_mapping overrides for response sum-variant
// names (nil for none).
func New(doc *specloader.Document, norm *schema.Normalizer, cfg *config.Config) *Synthesizer {
	return &Synthesizer{
		doc:      doc,
		resolver: refresolver.New(doc),
		norm:     norm,
		cfg:      cfg,
		diags:    diagnostics.NewBag(),
		opNames:  naming.NewScope(),
	}
}

// Diagnostics returns the issues accumulated while synthesizing.
func (s *Synthesizer) Diagnostics() *diagnostics.Bag { return s.diags }

// SynthesizeOperations walks every path and method in lexicographic
// order, producing one ir.Operation per (path, method) pair. ignore
// reports whether a path template should be dropped before synthesis.
func (s *Synthesizer) SynthesizeOperations(ignore func(pathTemplate string) bool) ([]ir.Operation, error) {
	oas3 := s.doc.OAS3()
	if oas3 == nil {
		return nil, nil
	}

	pathTemplates := make([]string, 0, len(oas3.Paths))
	for p := range oas3.Paths {
		pathTemplates = append(pathTemplates, p)
	}
	sort.Strings(pathTemplates)

	var ops []ir.Operation
	for _, pathTemplate := range pathTemplates {
		if ignore != nil && ignore(pathTemplate) {
			continue
		}
		item := oas3.Paths[pathTemplate]
		if item == nil {
			continue
		}
		pathPointer := pointerChild("/paths", pathTemplate)

		methodOps := parser.GetOperations(item, oas3.OASVersion)
		methods := make([]string, 0, len(methodOps))
		for method, op := range methodOps {
			if op == nil {
				continue
			}
			if !knownMethods[method] {
				s.diags.Addf("synth", pathPointer, diagnostics.SeverityInfo,
					"method %q on %q is outside the supported method set; skipped", method, pathTemplate)
				continue
			}
			methods = append(methods, method)
		}
		sort.Strings(methods)

		for _, method := range methods {
			op := methodOps[method]
			operation, err := s.synthesizeOperation(pathTemplate, pathPointer, method, item, op)
			if err != nil {
				return nil, err
			}
			ops = append(ops, operation)
		}
	}
	return ops, nil
}

func (s *Synthesizer) synthesizeOperation(pathTemplate, pathPointer, method string, item *parser.PathItem, op *parser.Operation) (ir.Operation, error) {
	opPointer := pointerChild(pathPointer, method)
	rawName := naming.OperationName(op.OperationID, method, pathTemplate)
	opName := ir.Identifier(s.opNames.Allocate(naming.Escape(rawName)))

	params, err := s.collectParams(
		pointerChild(pathPointer, "parameters"), item.Parameters,
		pointerChild(opPointer, "parameters"), op.Parameters,
	)
	if err != nil {
		return ir.Operation{}, err
	}
	s.checkPathTemplate(pathTemplate, opPointer, params)

	var pathParams, queryParams, headerParams []ir.Param
	for _, p := range params {
		if p.name == "" {
			s.diags.Addf("synth", p.pointer, diagnostics.SeverityWarning, "parameter has no name; dropped")
			continue
		}
		typ, err := s.paramType(p, string(opName))
		if err != nil {
			return ir.Operation{}, err
		}
		field := ir.Param{
			Name:     ir.Identifier(naming.Escape(naming.FieldName(p.name))),
			WireName: p.name,
			Typ:      typ,
			Required: p.required || p.in == "path",
		}
		switch p.in {
		case "path":
			pathParams = append(pathParams, field)
		case "query":
			queryParams = append(queryParams, field)
		case "header":
			headerParams = append(headerParams, field)
		case "cookie":
			// Cookies are not distinct wire transport; recorded as
			// headers with a flagged wire name so the renderer can
			// fold them into a Cookie header at emission time.
			field.WireName = "cookie." + p.name
			headerParams = append(headerParams, field)
		default:
			s.diags.Addf("synth", p.pointer, diagnostics.SeverityWarning,
				"parameter %q has unrecognized location %q; dropped", p.name, p.in)
		}
	}

	body, err := s.synthesizeBody(opPointer, string(opName), op.RequestBody)
	if err != nil {
		return ir.Operation{}, err
	}

	responses, err := s.synthesizeResponses(opPointer, string(opName), op.Responses)
	if err != nil {
		return ir.Operation{}, err
	}

	return ir.Operation{
		Id:            opName,
		Method:        ir.Method(strings.ToUpper(method)),
		PathTemplate:  pathTemplate,
		PathParams:    pathParams,
		QueryParams:   queryParams,
		HeaderParams:  headerParams,
		Body:          body,
		Responses:     responses,
		Docs:          op.Description,
		Deprecated:    op.Deprecated,
		OriginPointer: opPointer,
	}, nil
}

// resolvedParam is a parameter after following any $ref chain, keyed
// by its wire identity (in, name) rather than its declaration site.
type resolvedParam struct {
	name     string
	in       string
	required bool
	pointer  string // the final, $ref-resolved pointer
}

// collectParams merges path-item-level and operation-level parameter
// lists, with an operation-level entry overriding a path-item entry of
// the same (in, name), per OpenAPI's parameter-override rule.
func (s *Synthesizer) collectParams(pathParamsPointer string, pathParams []*parser.Parameter, opParamsPointer string, opParams []*parser.Parameter) ([]resolvedParam, error) {
	byKey := make(map[string]resolvedParam)
	var order []string

	add := func(basePointer string, params []*parser.Parameter) error {
		for i := range params {
			pointer := fmt.Sprintf("%s/%d", basePointer, i)
			rp, err := s.resolveParam(pointer)
			if err != nil {
				return err
			}
			key := rp.in + "\x00" + rp.name
			if _, exists := byKey[key]; !exists {
				order = append(order, key)
			}
			byKey[key] = rp
		}
		return nil
	}
	if err := add(pathParamsPointer, pathParams); err != nil {
		return nil, err
	}
	if err := add(opParamsPointer, opParams); err != nil {
		return nil, err
	}

	out := make([]resolvedParam, 0, len(order))
	for _, key := range order {
		out = append(out, byKey[key])
	}
	return out, nil
}

func (s *Synthesizer) resolveParam(pointer string) (resolvedParam, error) {
	node, err := s.resolver.Resolve(pointer)
	if err != nil {
		return resolvedParam{}, err
	}
	obj := asObject(node.Value())
	return resolvedParam{
		name:     getString(obj, "name"),
		in:       getString(obj, "in"),
		required: getBool(obj, "required"),
		pointer:  node.Pointer(),
	}, nil
}

func (s *Synthesizer) paramType(p resolvedParam, opName string) (ir.TypeId, error) {
	node, ok := s.doc.At(p.pointer)
	if !ok {
		return s.norm.RegisterOpaque(p.pointer, "bytes"), nil
	}
	obj := asObject(node.Value())
	if obj == nil || obj["schema"] == nil {
		return s.norm.RegisterOpaque(p.pointer, "bytes"), nil
	}
	schemaPointer := pointerChild(p.pointer, "schema")
	return s.norm.NormalizeAt(schemaPointer, opName, naming.TypeName(p.name))
}

// checkPathTemplate cross-checks pathTemplate's {variable} placeholders
// against declared "in: path" parameters, flagging any mismatch.
func (s *Synthesizer) checkPathTemplate(pathTemplate, opPointer string, params []resolvedParam) {
	tmpl, err := uritemplate.New(pathTemplate)
	if err != nil {
		s.diags.Addf("synth", opPointer, diagnostics.SeverityWarning,
			"path template %q is not a valid URI template: %v", pathTemplate, err)
		return
	}
	declared := make(map[string]bool)
	for _, p := range params {
		if p.in == "path" {
			declared[p.name] = true
		}
	}
	for _, v := range tmpl.Varnames() {
		if !declared[v] {
			s.diags.Addf("synth", opPointer, diagnostics.SeverityWarning,
				"path template variable %q has no matching \"in: path\" parameter declaration", v)
		}
	}
}

func (s *Synthesizer) synthesizeBody(opPointer, opName string, rb *parser.RequestBody) ([]ir.BodyVariant, error) {
	if rb == nil {
		return nil, nil
	}
	pointer := pointerChild(opPointer, "requestBody")
	node, err := s.resolver.Resolve(pointer)
	if err != nil {
		return nil, err
	}
	obj := asObject(node.Value())
	content := asObject(obj["content"])
	if len(content) == 0 {
		return nil, nil
	}

	contentTypes := make([]string, 0, len(content))
	for ct := range content {
		contentTypes = append(contentTypes, ct)
	}
	sort.Strings(contentTypes)

	variants := make([]ir.BodyVariant, 0, len(contentTypes))
	for _, ct := range contentTypes {
		typ, err := s.mediaType(node.Pointer(), ct, opName, "Body", "bytes")
		if err != nil {
			return nil, err
		}
		variants = append(variants, ir.BodyVariant{ContentType: ct, Typ: typ})
	}
	return variants, nil
}

// mediaType resolves the schema at containerPointer/content/contentType
// (an empty or absent schema interns as Opaque(emptyRepr)) and returns
// its TypeId.
func (s *Synthesizer) mediaType(containerPointer, contentType, parentName, role, emptyRepr string) (ir.TypeId, error) {
	mediaPointer := pointerChild(pointerChild(containerPointer, "content"), contentType)
	node, ok := s.doc.At(mediaPointer)
	if !ok {
		return s.norm.RegisterOpaque(mediaPointer, emptyRepr), nil
	}
	obj := asObject(node.Value())
	if obj == nil || obj["schema"] == nil {
		return s.norm.RegisterOpaque(mediaPointer, emptyRepr), nil
	}
	schemaPointer := pointerChild(mediaPointer, "schema")
	return s.norm.NormalizeAt(schemaPointer, parentName, role+naming.ToPascalCase(contentType))
}

func (s *Synthesizer) synthesizeResponses(opPointer, opName string, responses *parser.Responses) ([]ir.ResponseVariant, error) {
	if responses == nil {
		return nil, nil
	}
	responsesPointer := pointerChild(opPointer, "responses")

	keys := make([]string, 0, len(responses.Codes)+1)
	for k := range responses.Codes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if responses.Default != nil {
		keys = append(keys, "default")
	}

	variantNames := naming.NewScope()
	byStatus := make(map[int]ir.Identifier)
	variantName := func(status int) ir.Identifier {
		if name, ok := byStatus[status]; ok {
			return name
		}
		candidate := s.cfg.StatusVariantNameOrDefault(status)
		name := ir.Identifier(variantNames.Allocate(naming.Escape(candidate)))
		byStatus[status] = name
		return name
	}

	var out []ir.ResponseVariant
	for _, key := range keys {
		pointer := pointerChild(responsesPointer, key)
		node, err := s.resolver.Resolve(pointer)
		if err != nil {
			return nil, err
		}
		obj := asObject(node.Value())
		content := asObject(obj["content"])
		statuses := s.expandStatus(key, pointer)

		if len(content) == 0 {
			typ := s.norm.RegisterOpaque(pointer, "()")
			for _, st := range statuses {
				out = append(out, ir.ResponseVariant{Status: st, Typ: typ, VariantName: variantName(st)})
			}
			continue
		}

		contentTypes := make([]string, 0, len(content))
		for ct := range content {
			contentTypes = append(contentTypes, ct)
		}
		sort.Strings(contentTypes)

		for _, ct := range contentTypes {
			typ, err := s.mediaType(node.Pointer(), ct, opName, "Response", "()")
			if err != nil {
				return nil, err
			}
			for _, st := range statuses {
				out = append(out, ir.ResponseVariant{Status: st, ContentType: ct, Typ: typ, VariantName: variantName(st)})
			}
		}
	}
	return out, nil
}

// expandStatus resolves a Responses key ("200", "2XX", or "default")
// to its literal member statuses, per the wildcard patterns
// internal/httputil.ValidateStatusCode already accepts.
func (s *Synthesizer) expandStatus(key, pointer string) []int {
	if key == "default" {
		return []int{ir.StatusDefault}
	}
	if len(key) == 3 && upperX(key[1]) && upperX(key[2]) {
		first := key[0]
		if first < '1' || first > '5' {
			s.diags.Addf("synth", pointer, diagnostics.SeverityWarning,
				"status code pattern %q has an invalid leading digit; skipped", key)
			return nil
		}
		base := int(first-'0') * 100
		out := make([]int, 0, 100)
		for i := 0; i < 100; i++ {
			out = append(out, base+i)
		}
		return out
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		s.diags.Addf("synth", pointer, diagnostics.SeverityWarning,
			"status code %q is not numeric; skipped", key)
		return nil
	}
	return []int{n}
}

func upperX(b byte) bool { return b == 'X' || b == 'x' }
