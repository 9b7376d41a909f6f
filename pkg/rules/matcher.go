package rules

import (
	"cmp"
	"regexp"
	"slices"

	"github.com/arthur-debert/massminify/pkg/errors"
	"github.com/arthur-debert/massminify/pkg/logging"
	"github.com/rs/zerolog"
)

// RuleSet is an immutable, compiled collection of order rules
type RuleSet struct {
	rules  []compiledRule
	logger zerolog.Logger
}

// Compile validates and compiles rules into a RuleSet. Every pattern must be
// a valid regular expression and every position must be in [1, MaxPosition]; the first
// violation is returned as an ErrConfigInvalid error. Duplicate
// (pattern, position) pairs collapse into one rule.
func Compile(list []Rule) (*RuleSet, error) {
	logger := logging.GetLogger("rules.matcher")

	seen := make(map[Rule]bool, len(list))
	compiled := make([]compiledRule, 0, len(list))
	for i, rule := range list {
		if rule.Pattern == "" {
			return nil, errors.Newf(errors.ErrConfigInvalid, "order rule %d has an empty pattern", i).
				WithDetail("index", i)
		}
		if rule.Position <= 0 || rule.Position > MaxPosition {
			return nil, errors.Newf(errors.ErrConfigInvalid,
				"order rule %d (%s) must have a position between 1 and %d", i, rule.Pattern, MaxPosition).
				WithDetail("index", i).
				WithDetail("position", rule.Position)
		}
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigInvalid,
				"order rule %d has an invalid pattern %q", i, rule.Pattern).
				WithDetail("index", i)
		}
		if seen[rule] {
			continue
		}
		seen[rule] = true
		compiled = append(compiled, compiledRule{Rule: rule, re: re})
	}

	slices.SortFunc(compiled, func(a, b compiledRule) int {
		if n := cmp.Compare(b.Position, a.Position); n != 0 {
			return n
		}
		return cmp.Compare(b.Pattern, a.Pattern)
	})

	logger.Debug().Int("ruleCount", len(compiled)).Msg("Compiled order rules")

	return &RuleSet{rules: compiled, logger: logger}, nil
}

// MustCompile is like Compile but panics on error
func MustCompile(list []Rule) *RuleSet {
	rs, err := Compile(list)
	if err != nil {
		panic(err)
	}
	return rs
}

// Match returns the position of the first rule whose pattern is found
// anywhere in path. A nil RuleSet matches nothing.
func (s *RuleSet) Match(path string) (int, bool) {
	if s == nil {
		return 0, false
	}
	for _, rule := range s.rules {
		if rule.re.MatchString(path) {
			s.logger.Trace().
				Str("path", path).
				Str("pattern", rule.Pattern).
				Int("position", rule.Position).
				Msg("File matched order rule")
			return rule.Position, true
		}
	}
	return 0, false
}

// Position returns the matched position, or 0 when no rule matches
func (s *RuleSet) Position(path string) int {
	pos, _ := s.Match(path)
	return pos
}

// Rules returns the rules in evaluation order
func (s *RuleSet) Rules() []Rule {
	if s == nil {
		return nil
	}
	out := make([]Rule, len(s.rules))
	for i, r := range s.rules {
		out[i] = r.Rule
	}
	return out
}

// Len returns the number of distinct rules
func (s *RuleSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}

