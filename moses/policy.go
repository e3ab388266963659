package moses

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Rule is the name of a break-suppression or break-forcing rule.
type Rule string

// Rules checked for candidate sentence boundaries.
const (
	RuleBlankLine Rule = "blankline"
	RulePrefix    Rule = "prefix"
	RuleInitial   Rule = "initial"
	RuleAcronym   Rule = "acronym"
)

func (r Rule) valid() bool {
	switch r {
	case RuleBlankLine, RulePrefix, RuleInitial, RuleAcronym:
		return true
	}
	return false
}

// Policy configures the rules of a Segmenter and a Tokenizer.
// Rules not listed in Precedence are switched off; the first listed rule
// with an opinion about a candidate boundary wins.
//
// A policy may be loaded from YAML:
//
//    precedence: [blankline, prefix, initial, acronym]
//    split_hyphens: false
//
type Policy struct {
	Precedence   []Rule `yaml:"precedence"`
	SplitHyphens bool   `yaml:"split_hyphens"`
}

// DefaultPolicy returns the standard rule order.
func DefaultPolicy() Policy {
	return Policy{
		Precedence: []Rule{RuleBlankLine, RulePrefix, RuleInitial, RuleAcronym},
	}
}

// Has returns true if a rule is switched on.
func (p Policy) Has(rule Rule) bool {
	for _, r := range p.Precedence {
		if r == rule {
			return true
		}
	}
	return false
}

// ErrPolicy is returned for invalid policy documents.
var ErrPolicy = errors.New("invalid segmentation policy")

// LoadPolicy reads a policy from YAML. An empty document yields the default
// policy; an empty precedence list is kept empty, switching off all rules.
func LoadPolicy(r io.Reader) (Policy, error) {
	var doc struct {
		Precedence   *[]Rule `yaml:"precedence"`
		SplitHyphens bool    `yaml:"split_hyphens"`
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultPolicy(), nil
		}
		return Policy{}, fmt.Errorf("%w: %v", ErrPolicy, err)
	}
	p := DefaultPolicy()
	p.SplitHyphens = doc.SplitHyphens
	if doc.Precedence != nil {
		p.Precedence = *doc.Precedence
	}
	seen := make(map[Rule]bool)
	for _, rule := range p.Precedence {
		if !rule.valid() {
			return Policy{}, fmt.Errorf("%w: unknown rule %q", ErrPolicy, rule)
		}
		if seen[rule] {
			return Policy{}, fmt.Errorf("%w: rule %q listed twice", ErrPolicy, rule)
		}
		seen[rule] = true
	}
	tracer().Debugf("loaded policy with precedence %v", p.Precedence)
	return p, nil
}
