// Package ir defines the language-neutral intermediate representation
// that the schema normalizer and operation synthesizer produce and the
// renderer driver consumes.
//
// Shaped after other_examples/blimu-dev-sdk-gen's IR/IRModel/IROperation
// split (a flat model table plus a list of operations), adapted to a
// TypeId-indexed table so reference cycles are representable without
// pointer ownership contortions: a cycle is just two table entries whose
// TypeId fields point at each other.
package ir

import "sort"

// TypeId is a dense integer key into an IR's type table. Stable within
// one pipeline run; not stable across runs.
type TypeId int32

// NoType is the sentinel meaning "not yet allocated". It is -1, not the
// TypeId zero value: 0 is a valid allocated id.
const NoType TypeId = -1

// Identifier is a name that has already passed through case conversion,
// reserved-word escaping, and scope uniquification.
type Identifier string

// Origin records where a NamedType came from, for diagnostics and for
// deriving stable names for synthesized (anonymous) types.
type Origin struct {
	// Pointer is the JSON pointer this type was derived from, e.g.
	// "/components/schemas/Pet". Empty when Synthetic is set.
	Pointer string
	// Synthetic is set when the type has no component pointer of its
	// own — an inline schema that needed a name invented for it.
	Synthetic *SyntheticOrigin
}

// SyntheticOrigin names the parent type and role an anonymous schema was
// discovered under, e.g. parent=GetDevicesResponse role="data".
type SyntheticOrigin struct {
	Parent TypeId
	Role   string
}

// TypeKind is a closed sum, implemented by Primitive, Enum, Struct, Sum,
// Alias, Array, Map, and Opaque, following the small
// closed-interface-with-private-marker pattern used elsewhere in this
// module (cf. parser.Callback).
type TypeKind interface {
	typeKind()
}

// Primitive is a scalar type: string, integer, number, boolean, or null.
// Format preserves OpenAPI's "format" keyword (e.g. "date-time", "int64").
type Primitive struct {
	Name   string // "string", "integer", "number", "boolean", "null"
	Format string
}

func (Primitive) typeKind() {}

// EnumVariant is one literal value of an Enum.
type EnumVariant struct {
	Name  Identifier
	Value any
}

// Enum is a primitive restricted to an explicit set of literal values.
type Enum struct {
	Base     Primitive
	Variants []EnumVariant
}

func (Enum) typeKind() {}

// Field is one member of a Struct.
type Field struct {
	Name     Identifier
	WireName string
	Typ      TypeId
	Optional bool
	Nullable bool
	Docs     string
}

// Struct is an object type with a fixed, named set of fields.
type Struct struct {
	Fields []Field
}

func (Struct) typeKind() {}

// SumVariant is one branch of a Sum type.
type SumVariant struct {
	Name Identifier
	// DiscriminatorValue is the literal discriminator value selecting
	// this variant, empty when the sum is untagged.
	DiscriminatorValue string
	Typ                TypeId
}

// Sum is a closed union of alternative types (oneOf/anyOf).
type Sum struct {
	Variants []SumVariant
	// DiscriminatorProperty is the property name used to select a
	// variant, empty when the sum is untagged.
	DiscriminatorProperty string
}

func (Sum) typeKind() {}

// Alias is a forwarding reference to another TypeId. Normalization
// collapses chains so no Alias ever points at another Alias.
type Alias struct {
	Target TypeId
}

func (Alias) typeKind() {}

// Array is a homogeneous sequence of Element.
type Array struct {
	Element TypeId
}

func (Array) typeKind() {}

// Map is a string-keyed dictionary of Value.
type Map struct {
	Value TypeId
}

func (Map) typeKind() {}

// Opaque is an escape hatch for schemas with no derivable structure:
// dynamic JSON values, raw bytes, or empty responses. Repr names the
// target-language equivalent the renderer should emit, e.g. "json.RawMessage".
type Opaque struct {
	Repr string
}

func (Opaque) typeKind() {}

// NamedType is the IR record for one emitted data type.
type NamedType struct {
	Id     TypeId
	Name   Identifier
	Origin Origin
	Kind   TypeKind
	Docs   string
	// Module is the nested module path a name_mapping.module_mapping
	// entry assigned this type to, empty for the default (unnested)
	// module.
	Module string
}

// Method is an HTTP method name as it appears in an OpenAPI path item.
type Method string

const (
	MethodGet     Method = "GET"
	MethodPut     Method = "PUT"
	MethodPost    Method = "POST"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
	MethodTrace   Method = "TRACE"
)

// Param is a path, query, or header parameter.
type Param struct {
	Name     Identifier
	WireName string
	Typ      TypeId
	Required bool
}

// BodyVariant is one request-body content type accepted by an operation.
type BodyVariant struct {
	ContentType string
	Typ         TypeId
}

// StatusDefault is the synthetic status used for a "default" response.
const StatusDefault = -1

// ResponseVariant is one declared (status, content type) response pair.
type ResponseVariant struct {
	// Status is the literal HTTP status code, or StatusDefault for a
	// "default" response entry.
	Status      int
	ContentType string
	Typ         TypeId
	// VariantName names this status's branch of the operation's
	// response sum type, e.g. "NotFound" for 404. Shared by every
	// ResponseVariant with the same Status, so content-type siblings
	// collapse into one sum field. Allocated per-operation, so the
	// same name can recur across operations.
	VariantName Identifier
}

// Operation is the IR record for one HTTP method at one path.
type Operation struct {
	Id            Identifier
	Method        Method
	PathTemplate  string
	PathParams    []Param
	QueryParams   []Param
	HeaderParams  []Param
	Body          []BodyVariant
	Responses     []ResponseVariant
	Docs          string
	Deprecated    bool
	OriginPointer string
}

// ProjectMetadata carries project_metadata.{name,version} through to
// the renderer, for the project manifest file it emits alongside the
// generated source tree. Not interpreted by type/operation synthesis.
type ProjectMetadata struct {
	Name    string
	Version string
}

// IR is the stable, language-neutral snapshot handed from the
// normalizer/synthesizer to the renderer driver. Immutable after
// construction; callers must not mutate Types or Operations.
type IR struct {
	Types           map[TypeId]*NamedType
	Operations      []Operation
	RootModule      Identifier
	ProjectMetadata ProjectMetadata
}

// Lookup returns the NamedType for id, and whether it was found.
func (ir *IR) Lookup(id TypeId) (*NamedType, bool) {
	if ir == nil {
		return nil, false
	}
	t, ok := ir.Types[id]
	return t, ok
}

// TopoOrder returns type IDs ordered so that every type appears after
// the types it directly references, except where a reference cycle
// makes that impossible. The walk is depth-first from each id in
// ascending TypeId order; a cycle is cut at the edge leading back to a
// type still being visited, so the type through which the walk entered
// the cycle is emitted after the other participants. The result is
// deterministic even though it is not a true topological order for
// that cycle.
func (ir *IR) TopoOrder() []TypeId {
	if ir == nil {
		return nil
	}
	ids := make([]TypeId, 0, len(ir.Types))
	for id := range ir.Types {
		ids = append(ids, id)
	}
	sortTypeIds(ids)

	visited := make(map[TypeId]int) // 0=unvisited 1=visiting 2=done
	var order []TypeId
	var visit func(id TypeId)
	visit = func(id TypeId) {
		switch visited[id] {
		case 2:
			return
		case 1:
			// Cycle: stop descending; this id is appended when its own
			// visit further up the stack finishes.
			return
		}
		visited[id] = 1
		if t, ok := ir.Types[id]; ok {
			for _, dep := range dependencies(t.Kind) {
				visit(dep)
			}
		}
		if visited[id] != 2 {
			visited[id] = 2
			order = append(order, id)
		}
	}
	for _, id := range ids {
		visit(id)
	}
	return order
}

func dependencies(k TypeKind) []TypeId {
	switch v := k.(type) {
	case Struct:
		ids := make([]TypeId, len(v.Fields))
		for i, f := range v.Fields {
			ids[i] = f.Typ
		}
		return ids
	case Sum:
		ids := make([]TypeId, len(v.Variants))
		for i, variant := range v.Variants {
			ids[i] = variant.Typ
		}
		return ids
	case Alias:
		return []TypeId{v.Target}
	case Array:
		return []TypeId{v.Element}
	case Map:
		return []TypeId{v.Value}
	default:
		return nil
	}
}

func sortTypeIds(ids []TypeId) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
