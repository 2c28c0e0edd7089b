package specloader

import (
	"fmt"

	"github.com/oasgen/oasgen/internal/jsonpath"
	"github.com/oasgen/oasgen/oaserrors"
	"github.com/oasgen/oasgen/parser"
)

// DefaultMaxDocumentSize is the default ceiling on an input document's
// byte size, applied before any parsing work begins.
const DefaultMaxDocumentSize = 10 << 20 // 10MiB

// Format names the concrete encoding of the bytes handed to Load.
type Format int

const (
	// FormatAuto lets the underlying decoder detect JSON vs. YAML from
	// content.
	FormatAuto Format = iota
	FormatJSON
	FormatYAML
)

// Document is an immutable, version-detected view of an OpenAPI 3.x
// document. Callers address it by JSON pointer via At rather than by
// direct field access, so later stages never depend on the shape of
// the underlying parser types.
type Document struct {
	result  *parser.ParseResult
	oas3    *parser.OAS3Document
	version string
}

// SpecNode is an opaque, read-only handle to one node of a Document's
// tree, reached by JSON pointer. The zero value is not valid; obtain a
// SpecNode via Document.At.
type SpecNode struct {
	pointer string
	value   any
}

// Pointer returns the JSON pointer this node was addressed by.
func (n SpecNode) Pointer() string { return n.pointer }

// Value returns the node's raw decoded value: a map[string]any, a
// []any, or a scalar.
func (n SpecNode) Value() any { return n.value }

// Load parses data as an OpenAPI 3.x document and returns an immutable
// Document, or an error describing why the bytes could not be loaded.
//
// Load performs no $ref resolution and no schema normalization; those
// are refresolver's and schema's jobs respectively. Load's only
// responsibilities are: enforce maxSize, decode JSON or YAML, detect
// the declared OAS version, and reject anything that isn't OAS 3.x.
// format is not consulted: the parser detects JSON vs. YAML from the
// content for every Format value.
func Load(data []byte, format Format, maxSize int64) (*Document, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxDocumentSize
	}
	if int64(len(data)) > maxSize {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        maxSize,
			Actual:       int64(len(data)),
			Message:      "input document exceeds the configured size limit",
		}
	}

	opts := []parser.Option{parser.WithBytes(data), parser.WithMaxFileSize(maxSize)}
	result, err := parser.ParseWithOptions(opts...)
	if err != nil {
		return nil, &oaserrors.ParseError{
			Path:    "<input>",
			Message: err.Error(),
			Cause:   err,
		}
	}
	if len(result.Errors) > 0 {
		return nil, &oaserrors.ParseError{
			Path:    result.SourcePath,
			Message: result.Errors[0].Error(),
			Cause:   result.Errors[0],
		}
	}

	if !result.IsOAS3() {
		return nil, &oaserrors.SchemaError{
			SchemaPath: "/openapi",
			Message:    fmt.Sprintf("unsupported OpenAPI version %q: only 3.x documents are supported", result.Version),
		}
	}
	doc, ok := result.OAS3Document()
	if !ok {
		return nil, &oaserrors.SchemaError{
			SchemaPath: "/openapi",
			Message:    "document declared an OAS 3.x version but did not decode as one",
		}
	}

	return &Document{result: result, oas3: doc, version: result.Version}, nil
}

// Version returns the document's declared OpenAPI version string, e.g.
// "3.0.3" or "3.1.0".
func (d *Document) Version() string { return d.version }

// OAS3 returns the decoded OpenAPI 3.x document.
func (d *Document) OAS3() *parser.OAS3Document { return d.oas3 }

// Raw returns the document's raw decoded data, addressable by
// internal/jsonpath.
func (d *Document) Raw() map[string]any { return d.result.Data }

// At resolves pointer (a JSON pointer such as
// "/components/schemas/Pet") against the document's raw data and
// returns the matching SpecNode. ok is false if pointer addresses
// nothing.
func (d *Document) At(pointer string) (SpecNode, bool) {
	expr, err := toJSONPathExpr(pointer)
	if err != nil {
		return SpecNode{}, false
	}
	path, err := jsonpath.Parse(expr)
	if err != nil {
		return SpecNode{}, false
	}
	matches := path.Get(d.result.Data)
	if len(matches) == 0 {
		return SpecNode{}, false
	}
	return SpecNode{pointer: pointer, value: matches[0]}, true
}

// toJSONPathExpr converts an RFC 6901 JSON pointer into the
// internal/jsonpath expression syntax ("$.a.b[2]").
func toJSONPathExpr(pointer string) (string, error) {
	if pointer == "" || pointer == "/" {
		return "$", nil
	}
	if pointer[0] != '/' {
		return "", fmt.Errorf("specloader: pointer %q must start with '/'", pointer)
	}
	segments := splitPointer(pointer[1:])
	expr := "$"
	for _, raw := range segments {
		seg := unescapePointerSegment(raw)
		if isArrayIndex(seg) {
			expr += "[" + seg + "]"
		} else {
			expr += "[" + quoteSegment(seg) + "]"
		}
	}
	return expr, nil
}

// isArrayIndex reports whether seg is a JSON pointer array index: "0" or
// any digit string without a leading zero (RFC 6901 §4).
func isArrayIndex(seg string) bool {
	if seg == "0" {
		return true
	}
	if seg == "" || seg[0] == '0' {
		return false
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return false
		}
	}
	return true
}

func splitPointer(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

func unescapePointerSegment(seg string) string {
	out := make([]byte, 0, len(seg))
	for i := 0; i < len(seg); i++ {
		if seg[i] == '~' && i+1 < len(seg) {
			switch seg[i+1] {
			case '0':
				out = append(out, '/')
				i++
				continue
			case '1':
				out = append(out, '~')
				i++
				continue
			}
		}
		out = append(out, seg[i])
	}
	return string(out)
}

func quoteSegment(seg string) string {
	out := make([]byte, 0, len(seg)+2)
	out = append(out, '\'')
	for i := 0; i < len(seg); i++ {
		if seg[i] == '\'' || seg[i] == '\\' {
			out = append(out, '\\')
		}
		out = append(out, seg[i])
	}
	out = append(out, '\'')
	return string(out)
}
