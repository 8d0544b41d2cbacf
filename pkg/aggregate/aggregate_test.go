// Test Type: Unit Test
// Description: Tests for the aggregator - arrival-order rows, schema mapping,
// and empty-string fill for absent fields

package aggregate_test

import (
	"testing"

	"github.com/arthur-debert/csvsieve/pkg/aggregate"
	"github.com/arthur-debert/csvsieve/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(kv ...string) types.Record {
	rec := types.NewRecord()
	for i := 0; i+1 < len(kv); i += 2 {
		rec.Set(kv[i], kv[i+1])
	}
	return rec
}

func TestAggregator(t *testing.T) {
	t.Run("rows_follow_arrival_order", func(t *testing.T) {
		agg := aggregate.New()
		agg.Add(record("email", "a@b.com"))
		agg.Add(record("phone", "555-1234"))
		agg.Add(record("email", "c@d.org"))

		assert.Equal(t, []string{"email", "phone"}, agg.Schema())

		rows := agg.Rows()
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"a@b.com", ""}, rows[0])
		assert.Equal(t, []string{"", "555-1234"}, rows[1])
		assert.Equal(t, []string{"c@d.org", ""}, rows[2])
	})

	t.Run("combined_record_fills_multiple_columns", func(t *testing.T) {
		agg := aggregate.New()
		agg.Add(record("email", "a@b.com", "phone", "555-1234"))

		rows := agg.Rows()
		require.Len(t, rows, 1)
		assert.Equal(t, []string{"a@b.com", "555-1234"}, rows[0])
	})

	t.Run("seeded_columns_lead", func(t *testing.T) {
		agg := aggregate.New()
		agg.SeedSchema("_rule", "_file")
		agg.Add(record("email", "a@b.com", "_rule", "email", "_file", "in.csv"))

		assert.Equal(t, []string{"_rule", "_file", "email"}, agg.Schema())
		rows := agg.Rows()
		require.Len(t, rows, 1)
		assert.Equal(t, []string{"email", "in.csv", "a@b.com"}, rows[0])
	})

	t.Run("empty_run", func(t *testing.T) {
		agg := aggregate.New()
		assert.Equal(t, 0, agg.Len())
		assert.Empty(t, agg.Schema())
		assert.Empty(t, agg.Rows())
	})
}
