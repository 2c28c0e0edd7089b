// Package typeintern interns structurally-identical anonymous NamedType
// candidates so the schema normalizer emits exactly one IR type per
// distinct shape.
//
// Retargeted from internal/schemautil's hash.go/deduplicator.go, which
// structurally hashed *parser.Schema trees for component deduplication:
// the same FNV-64a-over-sorted-traversal hashing, but keyed on an
// already-normalized candidate (kind + field list + TypeId list) rather
// than raw schema shape. Candidates refer to other types by TypeId, so
// no cycle guard is needed, and the first candidate interned for a
// shape is the canonical one.
package typeintern

import (
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/oasgen/oasgen/ir"
)

// Candidate is a proposed NamedType awaiting interning. Name/Origin are
// provisional — if an identical candidate already exists, the caller
// must reuse the existing TypeId and discard the candidate's.
type Candidate struct {
	Id   ir.TypeId
	Kind ir.TypeKind
}

// Table interns Candidates by structural key, keyed per the invariant
// that named /components/schemas types are never interned away — callers
// must not pass those through Intern.
type Table struct {
	byKey map[string]ir.TypeId
}

// NewTable returns an empty intern table.
func NewTable() *Table {
	return &Table{byKey: make(map[string]ir.TypeId)}
}

// Intern returns the TypeId to use for cand: either cand.Id, if no
// structurally-equal candidate has been seen before, or the TypeId of
// the first-interned equal candidate. ok reports whether cand.Id was
// accepted as canonical (false means the caller's candidate was
// discarded in favor of an earlier one).
func (t *Table) Intern(cand Candidate) (ir.TypeId, bool) {
	key := structuralKey(cand.Kind)
	if existing, found := t.byKey[key]; found {
		return existing, false
	}
	t.byKey[key] = cand.Id
	return cand.Id, true
}

// structuralKey computes a deterministic string key for a TypeKind,
// ignoring the identifiers assigned by the name allocator and focusing
// on shape: kind tag, field wire names/optionality/nullability, and the
// TypeId each field/variant/element points at. Two candidates with the
// same key are interchangeable from the renderer's perspective.
func structuralKey(k ir.TypeKind) string {
	h := fnv.New64a()
	writeKind(h, k)
	return fmt.Sprintf("%x", h.Sum64())
}

func writeKind(h interface{ Write([]byte) (int, error) }, k ir.TypeKind) {
	switch v := k.(type) {
	case ir.Primitive:
		write(h, "primitive:", v.Name, ":", v.Format)
	case ir.Enum:
		write(h, "enum:", v.Base.Name, ":", v.Base.Format)
		variants := sortedEnumVariants(v.Variants)
		for _, ev := range variants {
			write(h, "|", fmt.Sprintf("%v", ev.Value))
		}
	case ir.Struct:
		write(h, "struct:")
		fields := sortedFields(v.Fields)
		for _, f := range fields {
			write(h, "|", f.WireName, ":", fmt.Sprint(f.Typ), ":", boolStr(f.Optional), ":", boolStr(f.Nullable))
		}
	case ir.Sum:
		write(h, "sum:", v.DiscriminatorProperty)
		variants := make([]ir.SumVariant, len(v.Variants))
		copy(variants, v.Variants)
		sort.Slice(variants, func(i, j int) bool {
			if variants[i].DiscriminatorValue != variants[j].DiscriminatorValue {
				return variants[i].DiscriminatorValue < variants[j].DiscriminatorValue
			}
			return variants[i].Typ < variants[j].Typ
		})
		for _, sv := range variants {
			write(h, "|", sv.DiscriminatorValue, ":", fmt.Sprint(sv.Typ))
		}
	case ir.Alias:
		write(h, "alias:", fmt.Sprint(v.Target))
	case ir.Array:
		write(h, "array:", fmt.Sprint(v.Element))
	case ir.Map:
		write(h, "map:", fmt.Sprint(v.Value))
	case ir.Opaque:
		write(h, "opaque:", v.Repr)
	default:
		write(h, "unknown")
	}
}

func write(h interface{ Write([]byte) (int, error) }, parts ...string) {
	for _, p := range parts {
		_, _ = h.Write([]byte(p))
	}
}

func boolStr(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func sortedFields(fields []ir.Field) []ir.Field {
	out := make([]ir.Field, len(fields))
	copy(out, fields)
	sort.Slice(out, func(i, j int) bool { return out[i].WireName < out[j].WireName })
	return out
}

func sortedEnumVariants(variants []ir.EnumVariant) []ir.EnumVariant {
	out := make([]ir.EnumVariant, len(variants))
	copy(out, variants)
	sort.Slice(out, func(i, j int) bool {
		return fmt.Sprintf("%v", out[i].Value) < fmt.Sprintf("%v", out[j].Value)
	})
	return out
}
