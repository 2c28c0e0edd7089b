package refresolver

import (
	"fmt"
	"strings"

	"github.com/oasgen/oasgen/oaserrors"
	"github.com/oasgen/oasgen/specloader"
)

// Kind classifies why Resolve could not hand back a concrete node.
type Kind string

const (
	// KindMissing means the pointer (or a $ref chain it passed through)
	// addresses nothing in the document.
	KindMissing Kind = "missing"
	// KindCycleThroughAlias means a chain of bare $ref pointers looped
	// back on itself without ever reaching a concrete schema body —
	// an ill-formed alias cycle, distinct from a legal structural
	// cycle (a struct field pointing back at an ancestor type).
	KindCycleThroughAlias Kind = "cycle_through_alias"
	// KindExternal means the $ref points outside the document (a URL
	// or a different file); the core is a single-document generator
	// and does not follow these.
	KindExternal Kind = "external"
)

// RefError reports why a $ref could not be resolved to a concrete
// node. It wraps oaserrors.ReferenceError so callers using errors.Is
// against the package-level oaserrors sentinels keep working.
type RefError struct {
	Kind Kind
	Ref  string
	*oaserrors.ReferenceError
}

func newRefError(kind Kind, ref, message string) *RefError {
	return &RefError{
		Kind: kind,
		Ref:  ref,
		ReferenceError: &oaserrors.ReferenceError{
			Ref:        ref,
			RefType:    string(kind),
			IsCircular: kind == KindCycleThroughAlias,
			Message:    message,
		},
	}
}

// Resolver dereferences $ref pointers against a single specloader
// Document. Not safe for concurrent use: callers walking the document
// in parallel must use one Resolver per goroutine.
type Resolver struct {
	doc       *specloader.Document
	resolving map[string]bool
}

// New returns a Resolver bound to doc.
func New(doc *specloader.Document) *Resolver {
	return &Resolver{doc: doc, resolving: make(map[string]bool)}
}

// Resolve follows the $ref chain starting at pointer (an absolute
// JSON pointer, without a leading "#") until it reaches a node with no
// $ref member, and returns that node. An empty $ref chain (pointer
// itself has no $ref) returns the node at pointer unchanged.
func (r *Resolver) Resolve(pointer string) (specloader.SpecNode, error) {
	seen := make(map[string]bool)
	current := pointer
	for {
		if seen[current] {
			return specloader.SpecNode{}, newRefError(KindCycleThroughAlias, current,
				"reference chain loops back on itself before reaching a concrete schema")
		}
		seen[current] = true

		node, ok := r.doc.At(current)
		if !ok {
			return specloader.SpecNode{}, newRefError(KindMissing, current,
				fmt.Sprintf("pointer %q does not address anything in the document", current))
		}

		ref, isRef := refString(node)
		if !isRef {
			return node, nil
		}

		next, external := classifyRef(ref)
		if external {
			return specloader.SpecNode{}, newRefError(KindExternal, ref,
				"external references are not followed; classify as Opaque downstream")
		}
		current = next
	}
}

// Enter records pointer as currently on the active walk's call stack
// and reports whether it was already there — i.e. whether the caller
// has re-entered a node it is already in the middle of normalizing.
// Callers normalizing a structural cycle (a struct field pointing back
// at an ancestor) use this, not Resolve's alias-cycle detection, since
// a structural cycle is legal and must not error.
func (r *Resolver) Enter(pointer string) (cycle bool) {
	if r.resolving[pointer] {
		return true
	}
	r.resolving[pointer] = true
	return false
}

// Exit removes pointer from the active walk's call stack. Callers must
// pair every successful Enter with an Exit once that pointer's
// subtree has been fully processed.
func (r *Resolver) Exit(pointer string) {
	delete(r.resolving, pointer)
}

// refString returns node's $ref member, if present. Sibling keywords
// next to $ref are ignored once $ref is present, per the 2020-12
// $ref-is-exclusive convention OpenAPI 3.1+ follows; 3.0 schemas with
// $ref and siblings are treated the same way.
func refString(node specloader.SpecNode) (string, bool) {
	obj, ok := node.Value().(map[string]any)
	if !ok {
		return "", false
	}
	ref, ok := obj["$ref"].(string)
	if !ok || ref == "" {
		return "", false
	}
	return ref, true
}

// classifyRef splits ref into a local JSON pointer (for a "#/..."
// fragment) and reports whether ref is external (anything else: a
// bare file path, a relative file with a fragment, or a URL).
func classifyRef(ref string) (pointer string, external bool) {
	if strings.HasPrefix(ref, "#/") {
		return ref[1:], false
	}
	if ref == "#" {
		return "", false
	}
	return ref, true
}
