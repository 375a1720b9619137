package useragent

import "github.com/dmitrymomot/clouch/pkg/cache"

// Classifier evaluates a set of rule tables, one per dimension.
// A Classifier is immutable after New and safe for concurrent use.
type Classifier struct {
	tables [dimensionCount]Table
	memo   *cache.Memo[string, Result]
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithRules places extra rules in front of the built-in rules of dim, so they
// take precedence.
func WithRules(dim Dimension, rules ...Rule) Option {
	return func(c *Classifier) {
		if dim < 0 || dim >= dimensionCount || len(rules) == 0 {
			return
		}
		merged := make(Table, 0, len(rules)+len(c.tables[dim]))
		merged = append(merged, rules...)
		c.tables[dim] = append(merged, c.tables[dim]...)
	}
}

// WithRuleSet applies every dimension of a loaded rule set. See LoadRules.
func WithRuleSet(set RuleSet) Option {
	return func(c *Classifier) {
		for dim, rules := range set {
			WithRules(dim, rules...)(c)
		}
	}
}

// WithCache memoizes up to size results. Non-positive sizes disable caching.
func WithCache(size int) Option {
	return func(c *Classifier) {
		if size > 0 {
			c.memo = cache.NewMemo[string, Result](size)
		}
	}
}

var builtinTables = [dimensionCount]Table{
	DimensionBrowser: browserRules,
	DimensionCPU:     cpuRules,
	DimensionDevice:  deviceRules,
	DimensionEngine:  engineRules,
	DimensionOS:      osRules,
}

var defaultClassifier = New()

// New creates a Classifier seeded with the built-in rule tables.
func New(opts ...Option) *Classifier {
	c := &Classifier{tables: builtinTables}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Parse classifies ua. The result depends only on ua and the rule tables.
func (c *Classifier) Parse(ua string) Result {
	if c.memo != nil {
		return c.memo.GetOrCompute(ua, c.parse)
	}
	return c.parse(ua)
}

func (c *Classifier) parse(ua string) Result {
	var values [dimensionCount]Values
	if ua != "" {
		for dim := range dimensionCount {
			values[dim] = c.tables[dim].Eval(ua)
		}
	}
	return fromValues(ua, values)
}

// Eval classifies a single dimension of ua.
func (c *Classifier) Eval(dim Dimension, ua string) Values {
	if dim < 0 || dim >= dimensionCount || ua == "" {
		return Values{}
	}
	return c.tables[dim].Eval(ua)
}

// CacheStats reports memoization activity. It is zero when caching is disabled.
func (c *Classifier) CacheStats() cache.Stats {
	if c.memo == nil {
		return cache.Stats{}
	}
	return c.memo.Stats()
}

// ParseBrowser classifies only the browser dimension of ua.
func ParseBrowser(ua string) Browser {
	v := defaultClassifier.Eval(DimensionBrowser, ua)
	return Browser{Name: v[KeyName], Version: v[KeyVersion], Major: v[KeyMajor]}
}

// ParseEngine classifies only the layout engine dimension of ua.
func ParseEngine(ua string) Engine {
	v := defaultClassifier.Eval(DimensionEngine, ua)
	return Engine{Name: v[KeyName], Version: v[KeyVersion]}
}

// ParseCPU classifies only the CPU dimension of ua.
func ParseCPU(ua string) CPU {
	return CPU{Architecture: defaultClassifier.Eval(DimensionCPU, ua)[KeyArchitecture]}
}

// ParseOS classifies only the operating system dimension of ua.
func ParseOS(ua string) OS {
	v := defaultClassifier.Eval(DimensionOS, ua)
	return OS{Name: v[KeyName], Version: v[KeyVersion]}
}

// ParseDevice classifies only the device dimension of ua.
func ParseDevice(ua string) Device {
	v := defaultClassifier.Eval(DimensionDevice, ua)
	return Device{Type: v[KeyType], Vendor: v[KeyVendor], Model: v[KeyModel]}
}
