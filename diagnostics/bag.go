package diagnostics

import (
	"fmt"
	"sort"
)

// Bag accumulates non-fatal Issues raised while running the pipeline.
// A Bag is not safe for concurrent use; each stage runs sequentially
// and owns the Bag it was handed.
type Bag struct {
	issues []Issue
}

// NewBag returns an empty Bag.
func NewBag() *Bag {
	return &Bag{}
}

// Add appends an issue to the bag.
func (b *Bag) Add(issue Issue) {
	b.issues = append(b.issues, issue)
}

// Addf is a convenience wrapper around Add for the common case of a
// stage/pointer/severity/message tuple.
func (b *Bag) Addf(stage, pointer string, severity Severity, format string, args ...any) {
	b.Add(Issue{
		Pointer:  pointer,
		Stage:    stage,
		Severity: severity,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Issues returns a copy of the accumulated issues, sorted by pointer then
// stage for deterministic output.
func (b *Bag) Issues() []Issue {
	out := make([]Issue, len(b.issues))
	copy(out, b.issues)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pointer != out[j].Pointer {
			return out[i].Pointer < out[j].Pointer
		}
		return out[i].Stage < out[j].Stage
	})
	return out
}

// Len returns the number of accumulated issues.
func (b *Bag) Len() int {
	return len(b.issues)
}

// CountBySeverity returns the number of issues at or above the given
// severity level.
func (b *Bag) CountBySeverity(min Severity) int {
	n := 0
	for _, issue := range b.issues {
		if issue.Severity >= min {
			n++
		}
	}
	return n
}

// Merge appends every issue from other into b.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.issues = append(b.issues, other.issues...)
}
