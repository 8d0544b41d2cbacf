// Package aggregate collects matched records in arrival order and maps them
// onto the reconciled output schema as flat rows ready for CSV serialization.
package aggregate

import (
	"github.com/arthur-debert/csvsieve/pkg/schema"
	"github.com/arthur-debert/csvsieve/pkg/types"
)

// Aggregator owns the record sequence and the schema reconciler for one run.
// One instance per run, owned by the orchestrator; no process-wide state.
type Aggregator struct {
	schema  *schema.Reconciler
	records []types.Record
}

// New returns an empty aggregator
func New() *Aggregator {
	return &Aggregator{schema: schema.New()}
}

// SeedSchema registers field names ahead of anything the records introduce
func (a *Aggregator) SeedSchema(names ...string) {
	a.schema.Seed(names...)
}

// Add appends a record, reconciling the schema with any new field names
func (a *Aggregator) Add(rec types.Record) {
	a.schema.Observe(rec)
	a.records = append(a.records, rec)
}

// Schema returns the output field names in first-seen order
func (a *Aggregator) Schema() []string {
	return a.schema.Fields()
}

// Len returns the number of records collected
func (a *Aggregator) Len() int {
	return len(a.records)
}

// Rows returns one flat row per record, in arrival order, with one value per
// schema column. Fields absent from a record are emitted as empty strings.
func (a *Aggregator) Rows() [][]string {
	fields := a.schema.Fields()
	rows := make([][]string, 0, len(a.records))

	for _, rec := range a.records {
		row := make([]string, len(fields))
		for i, field := range fields {
			if v, ok := rec.Get(field); ok {
				row[i] = v
			}
		}
		rows = append(rows, row)
	}

	return rows
}
