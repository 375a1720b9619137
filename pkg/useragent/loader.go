package useragent

import (
	"errors"
	"fmt"
	"io"
	"regexp"

	"gopkg.in/yaml.v3"
)

// RuleSet groups extra rules by dimension.
type RuleSet map[Dimension][]Rule

type fieldSpec struct {
	Key     string        `yaml:"key"`
	Value   string        `yaml:"value"`
	Replace string        `yaml:"replace"`
	With    string        `yaml:"with"`
	Lower   bool          `yaml:"lower"`
	Lookup  []LookupEntry `yaml:"lookup"`
}

type ruleSpec struct {
	Patterns []string    `yaml:"patterns"`
	Fields   []fieldSpec `yaml:"fields"`
}

// LoadRules decodes a YAML rule document. Top-level keys are dimension names;
// each holds an ordered list of rules:
//
//	device:
//	  - patterns: ['(acme)\s(phone\s\w+)']
//	    fields:
//	      - key: vendor
//	      - key: model
//	        replace: '_'
//	        with: ' '
//	      - key: type
//	        value: mobile
//
// Patterns are matched case-insensitively. A field with value is a constant;
// lookup entries are {canonical, aliases} pairs tried in order.
func LoadRules(r io.Reader) (RuleSet, error) {
	var doc map[string][]ruleSpec
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return RuleSet{}, nil
		}
		return nil, errors.Join(ErrReadRules, err)
	}

	set := make(RuleSet, len(doc))
	for name, specs := range doc {
		dim, err := ParseDimension(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, name)
		}
		for i, spec := range specs {
			rule, err := spec.build(dim)
			if err != nil {
				return nil, fmt.Errorf("%s rule %d: %w", name, i, err)
			}
			set[dim] = append(set[dim], rule)
		}
	}
	return set, nil
}

func (s ruleSpec) build(dim Dimension) (Rule, error) {
	if len(s.Patterns) == 0 {
		return Rule{}, fmt.Errorf("%w: no patterns", ErrInvalidRule)
	}
	if len(s.Fields) == 0 {
		return Rule{}, fmt.Errorf("%w: no fields", ErrInvalidRule)
	}

	rule := Rule{
		Patterns: make([]*regexp.Regexp, 0, len(s.Patterns)),
		Fields:   make([]Field, 0, len(s.Fields)),
	}
	for _, p := range s.Patterns {
		re, err := regexp.Compile(`(?i)` + p)
		if err != nil {
			return Rule{}, errors.Join(ErrInvalidRule, err)
		}
		rule.Patterns = append(rule.Patterns, re)
	}
	for _, fs := range s.Fields {
		f, err := fs.build(dim)
		if err != nil {
			return Rule{}, err
		}
		rule.Fields = append(rule.Fields, f)
	}
	return rule, nil
}

func (s fieldSpec) build(dim Dimension) (Field, error) {
	key := FieldKey(s.Key)
	if !dim.accepts(key) {
		return Field{}, fmt.Errorf("%w: %q in %s", ErrUnknownField, s.Key, dim)
	}
	if s.Value != "" {
		return Const(key, s.Value), nil
	}

	f := Field{Key: key, with: s.With, lookup: LookupTable(s.Lookup)}
	if s.Replace != "" {
		re, err := regexp.Compile(s.Replace)
		if err != nil {
			return Field{}, errors.Join(ErrInvalidRule, err)
		}
		f.pattern = re
	}
	if s.Lower {
		f.transform = lower
	}
	return f, nil
}
