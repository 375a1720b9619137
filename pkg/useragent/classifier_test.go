package useragent_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/clouch/pkg/useragent"
)

func TestClassifier_WithRules(t *testing.T) {
	t.Parallel()

	desktop := useragent.Rule{
		Patterns: []*regexp.Regexp{regexp.MustCompile(`(?i)windows\snt`)},
		Fields:   []useragent.Field{useragent.Const(useragent.KeyType, "desktop")},
	}
	c := useragent.New(useragent.WithRules(useragent.DimensionDevice, desktop))

	assert.Equal(t, "desktop", c.Parse(chromeWindowsUA).Device.Type)
	assert.Equal(t, useragent.DeviceTypeMobile, c.Parse(safariIPhoneUA).Device.Type)
	assert.Equal(t, useragent.DeviceTypeUnknown, useragent.Parse(chromeWindowsUA).Device.Type)
}

func TestClassifier_WithCache(t *testing.T) {
	t.Parallel()

	c := useragent.New(useragent.WithCache(2))
	plain := useragent.New()

	for range 3 {
		assert.Equal(t, plain.Parse(safariIPhoneUA), c.Parse(safariIPhoneUA))
	}

	st := c.CacheStats()
	assert.Equal(t, uint64(2), st.Hits)
	assert.Equal(t, uint64(1), st.Misses)
	assert.Zero(t, plain.CacheStats())
}

func TestClassifier_Eval(t *testing.T) {
	t.Parallel()

	c := useragent.New()
	assert.Equal(t, useragent.Values{useragent.KeyArchitecture: useragent.ArchAMD64}, c.Eval(useragent.DimensionCPU, chromeWindowsUA))
	assert.Empty(t, c.Eval(useragent.Dimension(42), chromeWindowsUA))
	assert.Empty(t, c.Eval(useragent.DimensionOS, ""))
}

func TestParseDimension(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"browser", "cpu", "device", "engine", "os"} {
		dim, err := useragent.ParseDimension(name)
		assert.NoError(t, err)
		assert.Equal(t, name, dim.String())
	}

	_, err := useragent.ParseDimension("gpu")
	assert.ErrorIs(t, err, useragent.ErrUnknownDimension)
	assert.Equal(t, "unknown", useragent.Dimension(-1).String())
}
