package useragent

import "strings"

// unknownCanonical marks a lookup entry whose match means "unknown".
const unknownCanonical = "?"

// LookupEntry maps any of its raw aliases to a canonical value.
type LookupEntry struct {
	Canonical string   `yaml:"canonical"`
	Aliases   []string `yaml:"aliases"`
}

// LookupTable is an ordered substitution table. Order matters: the first
// entry with an alias contained in the raw token wins.
type LookupTable []LookupEntry

// Find returns the canonical value for raw. Aliases match as case-insensitive
// substrings of raw. When nothing matches, raw itself is returned. An entry
// with canonical "?" resolves to unknown.
func (t LookupTable) Find(raw string) (string, bool) {
	lowerRaw := strings.ToLower(raw)
	for _, e := range t {
		for _, alias := range e.Aliases {
			if strings.Contains(lowerRaw, strings.ToLower(alias)) {
				if e.Canonical == unknownCanonical {
					return "", false
				}
				return e.Canonical, true
			}
		}
	}
	return raw, raw != ""
}

// Lookup tables used by the built-in rules.
var (
	// Safari before 3.0 reported WebKit build numbers instead of versions.
	oldSafariMajor = LookupTable{
		{"1", []string{"/8", "/1", "/3"}},
		{"2", []string{"/4"}},
		{unknownCanonical, []string{"/"}},
	}
	oldSafariVersion = LookupTable{
		{"1.0", []string{"/8"}},
		{"1.2", []string{"/1"}},
		{"1.3", []string{"/3"}},
		{"2.0", []string{"/412"}},
		{"2.0.2", []string{"/416"}},
		{"2.0.3", []string{"/417"}},
		{"2.0.4", []string{"/419"}},
		{unknownCanonical, []string{"/"}},
	}

	sprintVendor = LookupTable{
		{"HTC", []string{"APA"}},
		{"Sprint", []string{"Sprint"}},
	}
	sprintModel = LookupTable{
		{"Evo Shift 4G", []string{"7373KT"}},
	}

	// Windows kernel versions to marketing names.
	windowsVersion = LookupTable{
		{"7", []string{"NT 6.1"}},
		{"8", []string{"NT 6.2"}},
		{"8.1", []string{"NT 6.3"}},
		{"10", []string{"NT 10.0"}},
		{"2000", []string{"NT 5.0"}},
		{"ME", []string{"4.90"}},
		{"NT 3.11", []string{"NT3.51"}},
		{"NT 4.0", []string{"NT4.0"}},
		{"XP", []string{"NT 5.1", "NT 5.2"}},
		{"Vista", []string{"NT 6.0"}},
		{"RT", []string{"ARM"}},
	}
)
