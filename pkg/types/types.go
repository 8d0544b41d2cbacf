// Package types holds the value types passed between the csvsieve pipeline
// stages: input rows decoded from CSV files and the records produced by rule
// evaluation. Both are plain values with no shared mutable state.
package types

// InputRow is one decoded record from a source file: an ordered mapping from
// column name to string value, plus provenance for diagnostics.
type InputRow struct {
	// File identifies the source file
	File string

	// Line is the 1-based data row number within the file (header excluded)
	Line int

	// Header is the file's column order
	Header []string

	// Values maps column name to cell value
	Values map[string]string
}

// Lookup returns the value of the named column and whether it exists
func (r InputRow) Lookup(field string) (string, bool) {
	v, ok := r.Values[field]
	return v, ok
}

// Record is the output of rule evaluation against one input row: an ordered
// mapping from output field name to extracted value. Field order is the order
// fields were set, which downstream schema reconciliation depends on.
type Record struct {
	names  []string
	values map[string]string

	// Rules lists the names of the rules that fired into this record,
	// in firing order. Used for provenance annotation.
	Rules []string
}

// NewRecord returns an empty record
func NewRecord() Record {
	return Record{values: make(map[string]string)}
}

// Set stores a field value, remembering first-set order. Setting an existing
// field overwrites the value without changing its position.
func (r *Record) Set(name, value string) {
	if _, ok := r.values[name]; !ok {
		r.names = append(r.names, name)
	}
	r.values[name] = value
}

// Get returns a field value and whether it is present
func (r Record) Get(name string) (string, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Names returns the field names in first-set order
func (r Record) Names() []string {
	return r.names
}

// Len returns the number of fields in the record
func (r Record) Len() int {
	return len(r.names)
}
