package rules

import (
	"fmt"
	"math"
	"regexp"
)

// MaxPosition is the largest position a rule may declare. It leaves room
// above every ordered file for the gap.
const MaxPosition = math.MaxInt32

// Rule pins files whose path matches Pattern to Position
type Rule struct {
	Pattern  string `json:"pattern" yaml:"pattern" toml:"pattern"`
	Position int    `json:"position" yaml:"position" toml:"position"`
}

// String renders the rule for logs and error messages
func (r Rule) String() string {
	return fmt.Sprintf("%q at position %d", r.Pattern, r.Position)
}

// compiledRule pairs a rule with its compiled pattern
type compiledRule struct {
	Rule
	re *regexp.Regexp
}
