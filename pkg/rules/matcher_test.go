// Test Type: Unit Test
// Description: Tests for row evaluation - match semantics, merge policies,
// the any-field sentinel, and capture group extraction

package rules_test

import (
	"testing"

	"github.com/arthur-debert/csvsieve/pkg/config"
	"github.com/arthur-debert/csvsieve/pkg/rules"
	"github.com/arthur-debert/csvsieve/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(header []string, values map[string]string) types.InputRow {
	return types.InputRow{File: "test.csv", Line: 1, Header: header, Values: values}
}

func mustCompile(t *testing.T, defs ...config.RuleConfig) *rules.RuleSet {
	t.Helper()
	rs, err := rules.Compile(defs)
	require.NoError(t, err)
	return rs
}

func TestEvaluateRow(t *testing.T) {
	t.Run("substring_search_semantics", func(t *testing.T) {
		rs := mustCompile(t, config.RuleConfig{
			Name: "email", Field: "contact", Pattern: `[\w.]+@[\w.]+`,
		})

		records := rs.EvaluateRow(row(
			[]string{"contact"},
			map[string]string{"contact": "reach me at a.b@example.com"},
		))

		require.Len(t, records, 1)
		got, ok := records[0].Get("email")
		assert.True(t, ok)
		assert.Equal(t, "a.b@example.com", got)
		assert.Equal(t, []string{"email"}, records[0].Rules)
	})

	t.Run("absent_source_field_never_fires", func(t *testing.T) {
		rs := mustCompile(t, config.RuleConfig{
			Name: "email", Field: "contact", Pattern: ".",
		})

		records := rs.EvaluateRow(row(
			[]string{"notes"},
			map[string]string{"notes": "anything"},
		))
		assert.Empty(t, records)
	})

	t.Run("no_match_no_records", func(t *testing.T) {
		rs := mustCompile(t, config.RuleConfig{
			Name: "email", Field: "contact", Pattern: `@`,
		})

		records := rs.EvaluateRow(row(
			[]string{"contact"},
			map[string]string{"contact": "no address here"},
		))
		assert.Empty(t, records)
	})

	t.Run("separate_policy_one_record_per_firing", func(t *testing.T) {
		rs := mustCompile(t,
			config.RuleConfig{Name: "email", Field: "contact", Pattern: `[\w.]+@[\w.]+`},
			config.RuleConfig{Name: "phone", Field: "contact", Pattern: `\d{3}-\d{4}`},
		)

		records := rs.EvaluateRow(row(
			[]string{"contact"},
			map[string]string{"contact": "a@b.com or 555-1234"},
		))

		require.Len(t, records, 2)

		email, ok := records[0].Get("email")
		assert.True(t, ok)
		assert.Equal(t, "a@b.com", email)
		_, hasPhone := records[0].Get("phone")
		assert.False(t, hasPhone, "separate records populate only their own field")

		phone, ok := records[1].Get("phone")
		assert.True(t, ok)
		assert.Equal(t, "555-1234", phone)
	})

	t.Run("combined_policy_merges_into_one_record", func(t *testing.T) {
		rs := mustCompile(t,
			config.RuleConfig{Name: "email", Field: "contact", Pattern: `[\w.]+@[\w.]+`, MergePolicy: "combined"},
			config.RuleConfig{Name: "phone", Field: "contact", Pattern: `\d{3}-\d{4}`, MergePolicy: "combined"},
		)

		records := rs.EvaluateRow(row(
			[]string{"contact"},
			map[string]string{"contact": "a@b.com or 555-1234"},
		))

		require.Len(t, records, 1)
		email, _ := records[0].Get("email")
		phone, _ := records[0].Get("phone")
		assert.Equal(t, "a@b.com", email)
		assert.Equal(t, "555-1234", phone)
		assert.Equal(t, []string{"email", "phone"}, records[0].Rules)
	})

	t.Run("mixed_policies_keep_rule_order", func(t *testing.T) {
		rs := mustCompile(t,
			config.RuleConfig{Name: "a", Field: "v", Pattern: `one`},
			config.RuleConfig{Name: "b", Field: "v", Pattern: `one`, MergePolicy: "combined"},
			config.RuleConfig{Name: "c", Field: "v", Pattern: `one`},
			config.RuleConfig{Name: "d", Field: "v", Pattern: `one`, MergePolicy: "combined"},
		)

		records := rs.EvaluateRow(row([]string{"v"}, map[string]string{"v": "one"}))

		// a, then the shared combined record (b+d) at first combined firing, then c.
		require.Len(t, records, 3)
		assert.Equal(t, []string{"a"}, records[0].Names())
		assert.Equal(t, []string{"b", "d"}, records[1].Names())
		assert.Equal(t, []string{"c"}, records[2].Names())
	})

	t.Run("any_field_sentinel_first_column_wins", func(t *testing.T) {
		rs := mustCompile(t, config.RuleConfig{
			Name: "hit", Field: "*", Pattern: `x\d`,
		})

		records := rs.EvaluateRow(row(
			[]string{"first", "second"},
			map[string]string{"first": "nothing", "second": "x1"},
		))
		require.Len(t, records, 1)
		got, _ := records[0].Get("hit")
		assert.Equal(t, "x1", got)

		records = rs.EvaluateRow(row(
			[]string{"first", "second"},
			map[string]string{"first": "x9", "second": "x1"},
		))
		require.Len(t, records, 1)
		got, _ = records[0].Get("hit")
		assert.Equal(t, "x9", got, "columns are tried in header order")
	})

	t.Run("capture_group_takes_precedence", func(t *testing.T) {
		rs := mustCompile(t, config.RuleConfig{
			Name: "domain", Field: "contact", Pattern: `[\w.]+@([\w.]+)`,
		})

		records := rs.EvaluateRow(row(
			[]string{"contact"},
			map[string]string{"contact": "a.b@example.com"},
		))
		require.Len(t, records, 1)
		got, _ := records[0].Get("domain")
		assert.Equal(t, "example.com", got)
	})

	t.Run("case_insensitive_by_default", func(t *testing.T) {
		rs := mustCompile(t, config.RuleConfig{
			Name: "warn", Field: "level", Pattern: `warning`,
		})
		records := rs.EvaluateRow(row([]string{"level"}, map[string]string{"level": "WARNING"}))
		assert.Len(t, records, 1)

		strict := mustCompile(t, config.RuleConfig{
			Name: "warn", Field: "level", Pattern: `warning`, CaseSensitive: true,
		})
		records = strict.EvaluateRow(row([]string{"level"}, map[string]string{"level": "WARNING"}))
		assert.Empty(t, records)
	})

	t.Run("evaluation_is_pure", func(t *testing.T) {
		rs := mustCompile(t, config.RuleConfig{
			Name: "email", Field: "contact", Pattern: `@`,
		})
		input := row([]string{"contact"}, map[string]string{"contact": "a@b"})

		first := rs.EvaluateRow(input)
		second := rs.EvaluateRow(input)
		assert.Equal(t, first, second)
		assert.Equal(t, "a@b", input.Values["contact"], "input row is not mutated")
	})
}
