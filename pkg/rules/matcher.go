package rules

import (
	"github.com/arthur-debert/csvsieve/pkg/config"
	"github.com/arthur-debert/csvsieve/pkg/types"
)

// EvaluateRow tests every rule against one input row, in rule order, and
// returns the records produced.
//
// A rule whose source field is absent from the row simply does not fire; that
// is not an error. Matching uses search semantics, so a pattern may match any
// substring of the value. The extracted value is the first capture group when
// the pattern defines one, otherwise the full match.
//
// Firings of rules with the "separate" policy each produce their own record.
// All firings of "combined" rules within the row accumulate into one shared
// record, placed at the position of the first combined firing. Record order is
// therefore a pure function of rule order.
func (rs *RuleSet) EvaluateRow(row types.InputRow) []types.Record {
	var out []types.Record
	combined := -1

	for _, rule := range rs.rules {
		value, ok := rule.match(row)
		if !ok {
			continue
		}

		if rule.MergePolicy == config.MergeCombined {
			if combined < 0 {
				out = append(out, types.NewRecord())
				combined = len(out) - 1
			}
			out[combined].Set(rule.Name, value)
			out[combined].Rules = append(out[combined].Rules, rule.Name)
			continue
		}

		rec := types.NewRecord()
		rec.Set(rule.Name, value)
		rec.Rules = append(rec.Rules, rule.Name)
		out = append(out, rec)
	}

	return out
}

// match tests the rule against a row and returns the extracted value.
// With the any-field sentinel, columns are tried in header order and the
// first matching column wins.
func (r Rule) match(row types.InputRow) (string, bool) {
	if r.Field == config.AnyField {
		for _, field := range row.Header {
			if v, ok := r.matchValue(row.Values[field]); ok {
				return v, true
			}
		}
		return "", false
	}

	value, ok := row.Lookup(r.Field)
	if !ok {
		return "", false
	}
	return r.matchValue(value)
}

// matchValue runs the compiled pattern against one cell value
func (r Rule) matchValue(value string) (string, bool) {
	m := r.Pattern.FindStringSubmatch(value)
	if m == nil {
		return "", false
	}
	if r.Pattern.NumSubexp() > 0 {
		return m[1], true
	}
	return m[0], true
}
