// Package schema accumulates the output schema: the ordered, deduplicated set
// of output field names seen across a whole run.
package schema

import "github.com/arthur-debert/csvsieve/pkg/types"

// Reconciler builds the output schema incrementally. Field names are appended
// the moment a record first introduces them and are never reordered, so the
// final column order is fully determined by processing order.
type Reconciler struct {
	seen  map[string]bool
	order []string
}

// New returns an empty reconciler
func New() *Reconciler {
	return &Reconciler{seen: make(map[string]bool)}
}

// Seed appends the given field names ahead of anything observed later.
// Used for provenance columns that must lead the schema.
func (r *Reconciler) Seed(names ...string) {
	for _, name := range names {
		r.add(name)
	}
}

// Observe appends any field names the record introduces, in the record's own
// field order
func (r *Reconciler) Observe(rec types.Record) {
	for _, name := range rec.Names() {
		r.add(name)
	}
}

func (r *Reconciler) add(name string) {
	if r.seen[name] {
		return
	}
	r.seen[name] = true
	r.order = append(r.order, name)
}

// Fields returns a copy of the schema in first-seen order
func (r *Reconciler) Fields() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of schema fields
func (r *Reconciler) Len() int {
	return len(r.order)
}
