// Package rules implements the csvsieve rule engine: compiling rule
// definitions into an immutable RuleSet and evaluating rows against it.
package rules

import (
	"regexp"

	"github.com/arthur-debert/csvsieve/pkg/config"
	"github.com/arthur-debert/csvsieve/pkg/errors"
	"github.com/arthur-debert/csvsieve/pkg/logging"
)

// Rule is one compiled rule: a named binding of an input field to a pattern
type Rule struct {
	// Name is the output field this rule populates
	Name string

	// Field is the input column tested, or config.AnyField
	Field string

	// Pattern is the compiled expression, search semantics
	Pattern *regexp.Regexp

	// MergePolicy is config.MergeSeparate or config.MergeCombined
	MergePolicy string
}

// RuleSet is the validated, compiled, ordered collection of rules for a run.
// Immutable after Compile; safe to share across row evaluations.
type RuleSet struct {
	rules []Rule
}

// Rules returns the rules in definition order
func (rs *RuleSet) Rules() []Rule {
	return rs.rules
}

// Len returns the number of rules
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Compile validates rule definitions and compiles every pattern eagerly.
// A single invalid definition fails the whole compile; no partial RuleSet is
// ever returned.
func Compile(defs []config.RuleConfig) (*RuleSet, error) {
	logger := logging.GetLogger("rules.compiler")

	if len(defs) == 0 {
		return nil, errors.New(errors.ErrInvalidRule, "configuration defines no rules")
	}

	seen := make(map[string]int, len(defs))
	compiled := make([]Rule, 0, len(defs))

	for i, def := range defs {
		if def.Name == "" {
			return nil, errors.Newf(errors.ErrInvalidRule,
				"rule %d has no name", i).WithDetail("ruleIndex", i)
		}
		if def.Field == "" {
			return nil, errors.Newf(errors.ErrInvalidRule,
				"rule %d (%s) has no source field", i, def.Name).WithDetail("ruleIndex", i)
		}
		if def.Pattern == "" {
			return nil, errors.Newf(errors.ErrInvalidRule,
				"rule %d (%s) has an empty pattern", i, def.Name).WithDetail("ruleIndex", i)
		}

		policy := def.MergePolicy
		if policy == "" {
			policy = config.MergeSeparate
		}
		if policy != config.MergeSeparate && policy != config.MergeCombined {
			return nil, errors.Newf(errors.ErrInvalidRule,
				"rule %d (%s) has unknown mergePolicy %q", i, def.Name, def.MergePolicy).
				WithDetail("ruleIndex", i)
		}

		if prev, dup := seen[def.Name]; dup {
			return nil, errors.Newf(errors.ErrDuplicateRuleName,
				"rules %d and %d both produce output field %q", prev, i, def.Name)
		}
		seen[def.Name] = i

		pattern := def.Pattern
		if !def.CaseSensitive {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidRule,
				"rule %d (%s) has an unparsable pattern", i, def.Name).
				WithDetail("ruleIndex", i)
		}

		compiled = append(compiled, Rule{
			Name:        def.Name,
			Field:       def.Field,
			Pattern:     re,
			MergePolicy: policy,
		})
	}

	logger.Debug().Int("ruleCount", len(compiled)).Msg("Compiled rule set")

	return &RuleSet{rules: compiled}, nil
}
