package useragent

import (
	"regexp"
	"strings"
)

// Values holds the fields a rule assigned for one dimension.
// A key that is absent is unknown.
type Values map[FieldKey]string

// Field describes how one capture group of a matching pattern is turned into
// a result field. Fields read capture groups positionally: the i-th field of
// a rule reads group i+1, even when it ignores the capture (see Const).
type Field struct {
	Key FieldKey

	value     string
	constant  bool
	pattern   *regexp.Regexp
	with      string
	transform func(string) string
	lookup    LookupTable
}

// Plain assigns the captured substring verbatim.
func Plain(key FieldKey) Field {
	return Field{Key: key}
}

// Const assigns a fixed value and ignores the capture.
func Const(key FieldKey, value string) Field {
	return Field{Key: key, value: value, constant: true}
}

// Replace substitutes every match of re in the capture with with.
func Replace(key FieldKey, re *regexp.Regexp, with string) Field {
	return Field{Key: key, pattern: re, with: with}
}

// ReplaceThen substitutes like Replace and then applies fn.
func ReplaceThen(key FieldKey, re *regexp.Regexp, with string, fn func(string) string) Field {
	return Field{Key: key, pattern: re, with: with, transform: fn}
}

// Transform applies fn to the capture.
func Transform(key FieldKey, fn func(string) string) Field {
	return Field{Key: key, transform: fn}
}

// Lookup maps the capture through table, keeping the raw capture when no
// entry matches.
func Lookup(key FieldKey, table LookupTable) Field {
	return Field{Key: key, lookup: table}
}

// resolve computes the field value from a capture. An empty or
// non-participating capture is unknown unless the field is constant.
func (f Field) resolve(capture string, matched bool) (string, bool) {
	if f.constant {
		return f.value, f.value != ""
	}
	if !matched || capture == "" {
		return "", false
	}

	v := capture
	if f.pattern != nil {
		v = f.pattern.ReplaceAllString(v, f.with)
	}
	if f.transform != nil {
		v = f.transform(v)
	}
	if f.lookup != nil {
		return f.lookup.Find(v)
	}
	return v, v != ""
}

// Rule pairs an ordered list of patterns with the fields assigned from the
// first pattern that matches.
type Rule struct {
	Patterns []*regexp.Regexp
	Fields   []Field
}

// apply tries the rule's patterns in order. It reports false when none matched.
func (r Rule) apply(ua string) (Values, bool) {
	for _, re := range r.Patterns {
		loc := re.FindStringSubmatchIndex(ua)
		if loc == nil {
			continue
		}

		values := make(Values, len(r.Fields))
		for i, f := range r.Fields {
			group := i + 1
			capture, matched := "", false
			if 2*group+1 < len(loc) && loc[2*group] >= 0 {
				capture, matched = ua[loc[2*group]:loc[2*group+1]], true
			}
			if v, ok := f.resolve(capture, matched); ok {
				values[f.Key] = v
			}
		}
		return values, true
	}
	return nil, false
}

// Table is the ordered rule list of one dimension. The first matching rule wins.
type Table []Rule

// Eval classifies ua against the table. When no rule matches the result is
// empty; this is not an error.
func (t Table) Eval(ua string) Values {
	for _, rule := range t {
		if values, ok := rule.apply(ua); ok {
			return values
		}
	}
	return Values{}
}

// rx compiles case-insensitive patterns. Used only for static tables and
// validated rule files, so a bad pattern is a programming error.
func rx(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(`(?i)`+p))
	}
	return out
}

var (
	underscore = regexp.MustCompile(`_`)
	lower      = strings.ToLower
)
