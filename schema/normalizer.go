package schema

import (
	"fmt"
	"sort"

	"github.com/oasgen/oasgen/diagnostics"
	"github.com/oasgen/oasgen/internal/typeintern"
	"github.com/oasgen/oasgen/ir"
	"github.com/oasgen/oasgen/naming"
	"github.com/oasgen/oasgen/oaserrors"
	"github.com/oasgen/oasgen/refresolver"
	"github.com/oasgen/oasgen/specloader"
)

// Result is the output of a normalization run: the accumulated type
// table plus any non-fatal issues raised while classifying schemas.
type Result struct {
	Types       map[ir.TypeId]*ir.NamedType
	Diagnostics *diagnostics.Bag
}

// Normalizer reduces schema nodes reachable from a specloader Document
// to the ir.TypeKind closed set, per named type.
type Normalizer struct {
	doc      *specloader.Document
	resolver *refresolver.Resolver
	deriver  *naming.Deriver
	intern   *typeintern.Table
	diags    *diagnostics.Bag

	byPointer  map[string]ir.TypeId
	types      map[ir.TypeId]*ir.NamedType
	nextID     ir.TypeId
	typeNames  *naming.Scope
	modulePath func(string) (string, bool)
}

// New returns a Normalizer over doc, using deriver for name derivation
// (nil for defaults, meaning no struct_mapping/property_mapping
// overrides). modulePath looks up a component schema pointer's
// configured module path (nil for no name_mapping.module_mapping
// entries); a NamedType's Module field is left empty when it reports
// no match.
func New(doc *specloader.Document, deriver *naming.Deriver, modulePath func(string) (string, bool)) *Normalizer {
	if deriver == nil {
		deriver = &naming.Deriver{}
	}
	if modulePath == nil {
		modulePath = func(string) (string, bool) { return "", false }
	}
	return &Normalizer{
		doc:        doc,
		resolver:   refresolver.New(doc),
		deriver:    deriver,
		intern:     typeintern.NewTable(),
		diags:      diagnostics.NewBag(),
		byPointer:  make(map[string]ir.TypeId),
		types:      make(map[ir.TypeId]*ir.NamedType),
		typeNames:  naming.NewScope(),
		modulePath: modulePath,
	}
}

// NormalizeComponents walks every /components/schemas/X entry in
// lexicographic key order and normalizes it, guaranteeing every
// declared component gets a NamedType even if nothing references it.
func (n *Normalizer) NormalizeComponents() (*Result, error) {
	oas3 := n.doc.OAS3()
	if oas3 == nil || oas3.Components == nil {
		return n.result(), nil
	}
	names := make([]string, 0, len(oas3.Components.Schemas))
	for name := range oas3.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		pointer := "/components/schemas/" + name
		if _, err := n.NormalizeAt(pointer, "", ""); err != nil {
			return nil, err
		}
	}
	return n.result(), nil
}

func (n *Normalizer) result() *Result {
	return &Result{Types: n.types, Diagnostics: n.diags}
}

func (n *Normalizer) allocateID() ir.TypeId {
	id := n.nextID
	n.nextID++
	return id
}

// NormalizeAt normalizes the schema reachable from pointer (following
// any $ref chain) and returns its TypeId. parentName/role name an
// anonymous schema's synthesized identity when pointer does not
// address a /components/schemas/X entry.
func (n *Normalizer) NormalizeAt(pointer, parentName, role string) (ir.TypeId, error) {
	node, err := n.resolver.Resolve(pointer)
	if err != nil {
		var refErr *refresolver.RefError
		if ok := asRefError(err, &refErr); ok {
			switch refErr.Kind {
			case refresolver.KindExternal:
				n.diags.Addf("schema", pointer, diagnostics.SeverityWarning,
					"external reference %q is not followed; emitted as opaque", refErr.Ref)
				return n.newOpaque(pointer, "json.RawMessage"), nil
			case refresolver.KindCycleThroughAlias:
				return ir.NoType, &oaserrors.CycleError{Path: []string{pointer}, Message: "reference alias cycle never reaches a concrete schema"}
			default:
				return ir.NoType, &oaserrors.SchemaError{SchemaPath: pointer, Message: refErr.Error(), Cause: err}
			}
		}
		return ir.NoType, err
	}

	finalPointer := node.Pointer()
	if id, ok := n.byPointer[finalPointer]; ok {
		return id, nil
	}

	if name, ok := n.deriver.SchemaName(finalPointer); ok {
		return n.normalizeComponent(node, finalPointer, name)
	}
	return n.normalizeAnonymous(node, finalPointer, parentName, role)
}

// normalizeComponent pre-registers a TypeId for a /components/schemas
// entry before descending into its children, so a self-referential
// cycle resolves to the same TypeId instead of recursing forever.
func (n *Normalizer) normalizeComponent(node specloader.SpecNode, pointer, rawName string) (ir.TypeId, error) {
	name := ir.Identifier(naming.Escape(naming.TypeName(rawName)))
	name = ir.Identifier(n.typeNames.Allocate(string(name)))

	id := n.allocateID()
	n.byPointer[pointer] = id
	module, _ := n.modulePath(pointer)
	n.types[id] = &ir.NamedType{Id: id, Name: name, Origin: ir.Origin{Pointer: pointer}, Module: module}

	kind, err := n.classify(node, pointer, string(name))
	if err != nil {
		return ir.NoType, err
	}
	n.types[id].Kind = kind
	n.types[id].Docs = getString(asObject(node.Value()), "description")
	return id, nil
}

// normalizeAnonymous classifies an inline schema and interns it by
// structural shape, guarding against ill-formed anonymous-schema
// cycles along the way.
func (n *Normalizer) normalizeAnonymous(node specloader.SpecNode, pointer, parentName, role string) (ir.TypeId, error) {
	if cyc := n.resolver.Enter(pointer); cyc {
		return ir.NoType, &oaserrors.CycleError{Path: []string{pointer}, Message: "anonymous schema cycle: inline schemas cannot reference their own ancestor"}
	}
	defer n.resolver.Exit(pointer)

	candidateID := n.allocateID()
	name := naming.InlineName(parentName, role)

	kind, err := n.classify(node, pointer, name)
	if err != nil {
		return ir.NoType, err
	}

	finalID, canonical := n.intern.Intern(typeintern.Candidate{Id: candidateID, Kind: kind})
	if !canonical {
		n.byPointer[pointer] = finalID
		return finalID, nil
	}

	identifier := ir.Identifier(n.typeNames.Allocate(naming.Escape(name)))
	n.types[candidateID] = &ir.NamedType{
		Id:     candidateID,
		Name:   identifier,
		Origin: ir.Origin{Pointer: pointer, Synthetic: &ir.SyntheticOrigin{Role: role}},
		Kind:   kind,
		Docs:   getString(asObject(node.Value()), "description"),
	}
	n.byPointer[pointer] = candidateID
	return candidateID, nil
}

// RegisterOpaque allocates an Opaque(repr) type anchored at pointer,
// for callers outside this package that need an escape-hatch type with
// no schema to classify, e.g. a content-less response or a request
// body with an absent schema.
func (n *Normalizer) RegisterOpaque(pointer, repr string) ir.TypeId {
	return n.newOpaque(pointer, repr)
}

func (n *Normalizer) newOpaque(pointer, repr string) ir.TypeId {
	id := n.allocateID()
	n.types[id] = &ir.NamedType{
		Id:     id,
		Name:   ir.Identifier(n.typeNames.Allocate("Opaque" + naming.TypeName(repr))),
		Origin: ir.Origin{Pointer: pointer},
		Kind:   ir.Opaque{Repr: repr},
	}
	n.byPointer[pointer] = id
	return id
}

// classify implements the per-shape reduction rules: composition,
// enum, array, object/map/struct, primitive, or opaque fallback.
func (n *Normalizer) classify(node specloader.SpecNode, pointer, name string) (ir.TypeKind, error) {
	obj := asObject(node.Value())
	if obj == nil {
		return ir.Opaque{Repr: "json.RawMessage"}, nil
	}

	if allOf := getObjects(obj, "allOf"); len(allOf) > 0 {
		return n.classifyAllOf(obj, pointer, name)
	}
	if oneOf := getObjects(obj, "oneOf"); len(oneOf) > 0 {
		return n.classifySum(oneOf, obj, pointer, name, "oneOf")
	}
	if anyOf := getObjects(obj, "anyOf"); len(anyOf) > 0 {
		return n.classifySum(anyOf, obj, pointer, name, "anyOf")
	}

	if enumValues := getObjects(obj, "enum"); len(enumValues) > 0 {
		return n.classifyEnum(obj, enumValues), nil
	}

	pt := primaryType(obj)
	switch pt {
	case "string", "integer", "number", "boolean":
		return ir.Primitive{Name: pt, Format: getString(obj, "format")}, nil
	case "array":
		return n.classifyArray(obj, pointer, name)
	case "object":
		return n.classifyObject(obj, pointer, name)
	case "":
		if _, hasProps := obj["properties"]; hasProps {
			return n.classifyObject(obj, pointer, name)
		}
		if _, hasItems := obj["items"]; hasItems {
			return n.classifyArray(obj, pointer, name)
		}
		return ir.Opaque{Repr: "json.RawMessage"}, nil
	default:
		return ir.Opaque{Repr: "json.RawMessage"}, nil
	}
}

func (n *Normalizer) classifyEnum(obj map[string]any, values []any) ir.TypeKind {
	base := ir.Primitive{Name: primaryType(obj), Format: getString(obj, "format")}
	if base.Name == "" {
		base.Name = "string"
	}
	variants := make([]ir.EnumVariant, 0, len(values))
	scope := naming.NewScope()
	for _, v := range values {
		variantName := scope.Allocate(naming.Escape(naming.EnumVariantName(fmt.Sprintf("%v", v))))
		variants = append(variants, ir.EnumVariant{Name: ir.Identifier(variantName), Value: v})
	}
	return ir.Enum{Base: base, Variants: variants}
}

func (n *Normalizer) classifyArray(obj map[string]any, pointer, name string) (ir.TypeKind, error) {
	itemsPointer := pointerChild(pointer, "items")
	elemID, err := n.NormalizeAt(itemsPointer, name, "Item")
	if err != nil {
		return nil, err
	}
	return ir.Array{Element: elemID}, nil
}

func (n *Normalizer) classifyObject(obj map[string]any, pointer, name string) (ir.TypeKind, error) {
	properties := asObject(obj["properties"])
	required := getStringSlice(obj, "required")
	additional := obj["additionalProperties"]

	if len(properties) == 0 {
		if _, ok := additional.(map[string]any); ok {
			valuePointer := pointerChild(pointer, "additionalProperties")
			valueID, err := n.NormalizeAt(valuePointer, name, "Value")
			if err != nil {
				return nil, err
			}
			return ir.Map{Value: valueID}, nil
		}
		if b, ok := additional.(bool); ok && b {
			return ir.Map{Value: n.newOpaque(pointerChild(pointer, "additionalProperties"), "any")}, nil
		}
		return ir.Struct{}, nil
	}

	propNames := make([]string, 0, len(properties))
	for propName := range properties {
		propNames = append(propNames, propName)
	}
	sort.Strings(propNames)

	fields := make([]ir.Field, 0, len(propNames)+1)
	for _, propName := range propNames {
		propPointer := pointerChild(pointer, "properties")
		propPointer = pointerChild(propPointer, propName)
		fieldID, err := n.NormalizeAt(propPointer, name, naming.TypeName(propName))
		if err != nil {
			return nil, err
		}
		propNode, resolveErr := n.resolver.Resolve(propPointer)
		var propObj map[string]any
		if resolveErr == nil {
			propObj = asObject(propNode.Value())
		}
		fields = append(fields, ir.Field{
			Name:     ir.Identifier(naming.Escape(naming.FieldName(propName))),
			WireName: propName,
			Typ:      fieldID,
			Optional: !stringSliceContains(required, propName),
			Nullable: isNullable(propObj),
			Docs:     getString(propObj, "description"),
		})
	}

	if _, ok := additional.(map[string]any); ok {
		valuePointer := pointerChild(pointer, "additionalProperties")
		valueID, err := n.NormalizeAt(valuePointer, name, "AdditionalValue")
		if err != nil {
			return nil, err
		}
		fields = append(fields, ir.Field{
			Name:     "additional_properties",
			WireName: "",
			Typ:      n.registerMapWrapper(valueID),
			Optional: true,
		})
	}

	return ir.Struct{Fields: fields}, nil
}

// registerMapWrapper allocates a Map(value) type so a catch-all field
// can reference it by TypeId like any other field type.
func (n *Normalizer) registerMapWrapper(value ir.TypeId) ir.TypeId {
	candidateID := n.allocateID()
	kind := ir.Map{Value: value}
	finalID, canonical := n.intern.Intern(typeintern.Candidate{Id: candidateID, Kind: kind})
	if !canonical {
		return finalID
	}
	n.types[candidateID] = &ir.NamedType{
		Id:   candidateID,
		Name: ir.Identifier(n.typeNames.Allocate("AdditionalPropertiesMap")),
		Kind: kind,
	}
	return candidateID
}

func (n *Normalizer) classifySum(variantNodes []any, obj map[string]any, pointer, name, keyword string) (ir.TypeKind, error) {
	discriminator := asObject(obj["discriminator"])
	discProperty := ""
	var mapping map[string]any
	if discriminator != nil {
		discProperty = getString(discriminator, "propertyName")
		mapping = asObject(discriminator["mapping"])
	}

	variants := make([]ir.SumVariant, 0, len(variantNodes))
	for i := range variantNodes {
		variantPointer := fmt.Sprintf("%s/%d", pointerChild(pointer, keyword), i)
		variantRef, variantName := n.variantIdentity(variantPointer, i)
		variantID, err := n.NormalizeAt(variantPointer, name, variantName)
		if err != nil {
			return nil, err
		}
		discValue := ""
		for value, ref := range mapping {
			if refStr, ok := ref.(string); ok && refStr == variantRef {
				discValue = value
			}
		}
		variants = append(variants, ir.SumVariant{
			Name:               ir.Identifier(naming.Escape(naming.TypeName(variantName))),
			DiscriminatorValue: discValue,
			Typ:                variantID,
		})
	}
	if len(variants) == 0 {
		return nil, &oaserrors.CompositionError{SchemaPath: pointer, Field: keyword, Message: "sum type has no variants"}
	}
	return ir.Sum{Variants: variants, DiscriminatorProperty: discProperty}, nil
}

// variantIdentity returns the variant's raw $ref string (for
// discriminator.mapping lookups) and a name derived from its referent
// when the variant is a bare $ref, falling back to a positional name.
func (n *Normalizer) variantIdentity(pointer string, index int) (ref, name string) {
	name = fmt.Sprintf("Variant%d", index+1)
	node, ok := n.doc.At(pointer)
	if !ok {
		return "", name
	}
	obj := asObject(node.Value())
	if obj == nil {
		return "", name
	}
	ref, ok = obj["$ref"].(string)
	if !ok {
		return "", name
	}
	target, err := n.resolver.Resolve(pointer)
	if err != nil {
		return ref, name
	}
	if derived, ok := n.deriver.SchemaName(target.Pointer()); ok {
		name = derived
	}
	return ref, name
}

func (n *Normalizer) classifyAllOf(obj map[string]any, pointer, name string) (ir.TypeKind, error) {
	branches := getObjects(obj, "allOf")
	merged := ir.Struct{}
	seen := make(map[string]ir.TypeId)

	for i := range branches {
		branchPointer := fmt.Sprintf("%s/%d", pointerChild(pointer, "allOf"), i)
		branchID, err := n.NormalizeAt(branchPointer, name, fmt.Sprintf("Part%d", i+1))
		if err != nil {
			return nil, err
		}
		branchType, ok := n.types[branchID]
		if !ok {
			continue
		}
		branchStruct, ok := branchType.Kind.(ir.Struct)
		if !ok {
			// Non-struct branch becomes a field named after the referent.
			merged.Fields = append(merged.Fields, ir.Field{
				Name:     ir.Identifier(naming.Escape(naming.FieldName(string(branchType.Name)))),
				WireName: string(branchType.Name),
				Typ:      branchID,
				Optional: true,
			})
			continue
		}
		for _, f := range branchStruct.Fields {
			if existingID, dup := seen[f.WireName]; dup {
				if existingID != f.Typ {
					return nil, &oaserrors.CompositionError{
						SchemaPath: pointer, Field: f.WireName,
						Message: "allOf branches disagree on the type of a shared field",
					}
				}
				continue
			}
			seen[f.WireName] = f.Typ
			merged.Fields = append(merged.Fields, f)
		}
	}

	// Own properties (siblings of allOf) merge in too.
	if _, hasOwn := obj["properties"]; hasOwn {
		ownObj := map[string]any{}
		for k, v := range obj {
			if k != "allOf" {
				ownObj[k] = v
			}
		}
		ownKind, err := n.classifyObject(ownObj, pointer, name)
		if err != nil {
			return nil, err
		}
		if ownStruct, ok := ownKind.(ir.Struct); ok {
			for _, f := range ownStruct.Fields {
				if existingID, dup := seen[f.WireName]; dup && existingID != f.Typ {
					return nil, &oaserrors.CompositionError{SchemaPath: pointer, Field: f.WireName, Message: "own properties conflict with an allOf branch"}
				}
				if _, dup := seen[f.WireName]; !dup {
					seen[f.WireName] = f.Typ
					merged.Fields = append(merged.Fields, f)
				}
			}
		}
	}

	return merged, nil
}

func asRefError(err error, target **refresolver.RefError) bool {
	re, ok := err.(*refresolver.RefError)
	if !ok {
		return false
	}
	*target = re
	return true
}
