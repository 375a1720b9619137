// Package useragent classifies HTTP User-Agent strings.
//
// It identifies five independent dimensions:
//   - Browser – name, full version and major version
//   - Engine – layout engine name and version (WebKit, Gecko, Presto, Trident, …)
//   - OS – operating system name and version (Windows marketing names, iOS, Android, …)
//   - Device – type (mobile, tablet, console), vendor and model
//   - CPU – architecture (amd64, ia32, arm, ppc, sparc, …)
//
// # Architecture
//
// Every dimension is an ordered Table of Rules. A Rule pairs a list of
// regular expressions with a list of Fields. The first rule whose pattern
// matches wins; inside a rule the first matching pattern stops the search.
// Fields read capture groups by position and resolve them in one of four
// ways: Plain (verbatim), Const (fixed value), Replace/Transform (rewritten
// capture) or Lookup (mapped through an ordered LookupTable, falling back to
// the raw token).
//
// A single generic evaluator (Table.Eval) handles all five dimensions. The
// built-in tables live in browser.go, cpu.go, device.go, engine.go and os.go
// and are never modified after package initialisation, so classification is
// a pure function of the input string.
//
//	┌──────────┐  UA string  ┌──────────────┐
//	│  Parse   │────────────▶│ browserRules │──┐
//	└──────────┘             ├──────────────┤  │
//	                         │ cpuRules     │──┤
//	                         ├──────────────┤  │
//	                         │ deviceRules  │──┼──► Result
//	                         ├──────────────┤  │
//	                         │ engineRules  │──┤
//	                         ├──────────────┤  │
//	                         │ osRules      │──┘
//	                         └──────────────┘
//
// # Usage
//
//	ua := useragent.Parse(r.UserAgent())
//
//	if ua.IsMobile() {
//	    // serve touch-friendly markup
//	}
//
//	log.Printf("client=%s", ua.ShortIdentifier())
//
// Parse never fails. Unrecognised or empty input yields a Result whose
// fields are all empty.
//
// # Custom rules
//
// Operators can extend the built-in tables with a YAML rule file; extra rules
// are evaluated before the built-in ones:
//
//	set, err := useragent.LoadRules(f)
//	if err != nil {
//	    return err
//	}
//	c := useragent.New(useragent.WithRuleSet(set), useragent.WithCache(4096))
//	res := c.Parse(r.UserAgent())
//
// # Error Handling
//
// Only LoadRules returns errors: ErrReadRules, ErrInvalidRule,
// ErrUnknownDimension and ErrUnknownField, all usable with errors.Is.
package useragent
