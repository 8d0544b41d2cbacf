// Test Type: Unit Test
// Description: Tests for incremental schema reconciliation - first-seen
// ordering, deduplication, and seeding

package schema_test

import (
	"testing"

	"github.com/arthur-debert/csvsieve/pkg/schema"
	"github.com/arthur-debert/csvsieve/pkg/types"
	"github.com/stretchr/testify/assert"
)

func record(fields ...string) types.Record {
	rec := types.NewRecord()
	for _, f := range fields {
		rec.Set(f, "v")
	}
	return rec
}

func TestReconciler(t *testing.T) {
	t.Run("first_seen_order", func(t *testing.T) {
		r := schema.New()
		r.Observe(record("email"))
		r.Observe(record("phone"))
		r.Observe(record("email", "url"))

		assert.Equal(t, []string{"email", "phone", "url"}, r.Fields())
		assert.Equal(t, 3, r.Len())
	})

	t.Run("never_reorders_seen_names", func(t *testing.T) {
		r := schema.New()
		r.Observe(record("b", "a"))
		r.Observe(record("a", "b", "c"))

		assert.Equal(t, []string{"b", "a", "c"}, r.Fields())
	})

	t.Run("seed_leads_the_schema", func(t *testing.T) {
		r := schema.New()
		r.Seed("_rule", "_file")
		r.Observe(record("email"))

		assert.Equal(t, []string{"_rule", "_file", "email"}, r.Fields())
	})

	t.Run("empty_reconciler", func(t *testing.T) {
		r := schema.New()
		assert.Empty(t, r.Fields())
		assert.Equal(t, 0, r.Len())
	})

	t.Run("fields_returns_a_copy", func(t *testing.T) {
		r := schema.New()
		r.Observe(record("a", "b"))

		fields := r.Fields()
		fields[0] = "mutated"
		assert.Equal(t, []string{"a", "b"}, r.Fields())
	})
}
