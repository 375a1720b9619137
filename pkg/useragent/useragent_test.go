package useragent_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clouch/pkg/useragent"
)

const (
	chromeWindowsUA  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	safariIPhoneUA   = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"
	safariIPadUA     = "Mozilla/5.0 (iPad; CPU OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"
	androidStockUA   = "Mozilla/5.0 (Linux; U; Android 4.0.3; en-us; GT-I9100 Build/IML74K) AppleWebKit/534.30 (KHTML, like Gecko) Version/4.0 Mobile Safari/534.30"
	androidChromeUA  = "Mozilla/5.0 (Linux; Android 11; Pixel 5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Mobile Safari/537.36"
	androidTabletUA  = "Mozilla/5.0 (Linux; Android 11; SM-T500) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.120 Safari/537.36"
	operaMobiAndroid = "Opera/9.80 (Android 2.3.3; Linux; Opera Mobi/ADR-1111101157; U; es-ES) Presto/2.9.201 Version/11.50"
	firefoxUbuntuUA  = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:89.0) Gecko/20100101 Firefox/89.0"
	chromeMacUA      = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	ie9UA            = "Mozilla/5.0 (compatible; MSIE 9.0; Windows NT 6.1; Trident/5.0)"
	operaMiniUA      = "Opera/9.80 (J2ME/MIDP; Opera Mini/9.80 (S60; SymbOS; Opera Mobi/23.348; U; en) Presto/2.5.25 Version/10.54"
	playstationUA    = "Mozilla/5.0 (PLAYSTATION 3; 3.55)"
	nintendoWiiUA    = "Opera/9.30 (Nintendo Wii; U; ; 3642; en)"
	firefoxOSPhoneUA = "Mozilla/5.0 (Mobile; rv:26.0) Gecko/26.0 Firefox/26.0"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ua       string
		expected useragent.Result
	}{
		{
			name: "Desktop Chrome on Windows",
			ua:   chromeWindowsUA,
			expected: useragent.Result{
				UA:      chromeWindowsUA,
				Browser: useragent.Browser{Name: "Chrome", Version: "91.0.4472.124", Major: "91"},
				Engine:  useragent.Engine{Name: "WebKit", Version: "537.36"},
				OS:      useragent.OS{Name: "Windows", Version: "10"},
				CPU:     useragent.CPU{Architecture: useragent.ArchAMD64},
			},
		},
		{
			name: "Mobile Safari on iPhone",
			ua:   safariIPhoneUA,
			expected: useragent.Result{
				UA:      safariIPhoneUA,
				Browser: useragent.Browser{Name: "Mobile Safari", Version: "14.0", Major: "14"},
				Engine:  useragent.Engine{Name: "WebKit", Version: "605.1.15"},
				OS:      useragent.OS{Name: "iOS", Version: "14.4"},
				Device:  useragent.Device{Type: useragent.DeviceTypeMobile, Vendor: "Apple", Model: "iPhone"},
			},
		},
		{
			name: "Stock browser on Samsung Android phone",
			ua:   androidStockUA,
			expected: useragent.Result{
				UA:      androidStockUA,
				Browser: useragent.Browser{Name: "Mobile Safari", Version: "4.0", Major: "4"},
				Engine:  useragent.Engine{Name: "WebKit", Version: "534.30"},
				OS:      useragent.OS{Name: "Android", Version: "4.0.3"},
				Device:  useragent.Device{Type: useragent.DeviceTypeMobile, Vendor: "Samsung", Model: "GT-I9100"},
			},
		},
		{
			name: "Firefox on Ubuntu",
			ua:   firefoxUbuntuUA,
			expected: useragent.Result{
				UA:      firefoxUbuntuUA,
				Browser: useragent.Browser{Name: "Firefox", Version: "89.0", Major: "89"},
				Engine:  useragent.Engine{Name: "Gecko", Version: "89.0"},
				OS:      useragent.OS{Name: "Ubuntu"},
				CPU:     useragent.CPU{Architecture: useragent.ArchAMD64},
			},
		},
		{
			name: "Internet Explorer 9 on Windows 7",
			ua:   ie9UA,
			expected: useragent.Result{
				UA:      ie9UA,
				Browser: useragent.Browser{Name: "IE", Version: "9.0", Major: "9"},
				Engine:  useragent.Engine{Name: "Trident", Version: "5.0"},
				OS:      useragent.OS{Name: "Windows", Version: "7"},
			},
		},
		{
			name:     "Empty UA",
			ua:       "",
			expected: useragent.Result{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, useragent.Parse(tc.ua))
		})
	}
}

func TestParse_UnrecognisedInput(t *testing.T) {
	t.Parallel()

	for _, ua := range []string{"", "???", "hello world", "0123456789", "\x00\xff"} {
		t.Run(ua, func(t *testing.T) {
			t.Parallel()

			var res useragent.Result
			require.NotPanics(t, func() { res = useragent.Parse(ua) })
			assert.Equal(t, useragent.Result{UA: ua}, res)
			assert.True(t, res.IsUnknownDevice())
			assert.False(t, res.IsMobile())
		})
	}
}

func TestParse_DeviceType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ua       string
		expected string
	}{
		{name: "iPhone", ua: safariIPhoneUA, expected: useragent.DeviceTypeMobile},
		{name: "iPad", ua: safariIPadUA, expected: useragent.DeviceTypeTablet},
		{name: "Android phone with Mobile token", ua: androidChromeUA, expected: useragent.DeviceTypeMobile},
		{name: "Android tablet without Mobile token", ua: androidTabletUA, expected: useragent.DeviceTypeTablet},
		{name: "Android phone with Opera Mobi token", ua: operaMobiAndroid, expected: useragent.DeviceTypeMobile},
		{name: "Firefox OS phone", ua: firefoxOSPhoneUA, expected: useragent.DeviceTypeMobile},
		{name: "PlayStation", ua: playstationUA, expected: useragent.DeviceTypeConsole},
		{name: "Nintendo Wii", ua: nintendoWiiUA, expected: useragent.DeviceTypeConsole},
		{name: "Windows desktop", ua: chromeWindowsUA, expected: useragent.DeviceTypeUnknown},
		{name: "Mac desktop", ua: chromeMacUA, expected: useragent.DeviceTypeUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, useragent.ParseDevice(tc.ua).Type)
		})
	}
}

func TestParse_Deterministic(t *testing.T) {
	t.Parallel()

	first := useragent.Parse(androidStockUA)
	for range 10 {
		assert.Equal(t, first, useragent.Parse(androidStockUA))
	}
}

func TestParseDimensions(t *testing.T) {
	t.Parallel()

	t.Run("browser", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t,
			useragent.Browser{Name: "Opera Mini", Version: "9.80", Major: "9"},
			useragent.ParseBrowser(operaMiniUA))
	})

	t.Run("engine", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t,
			useragent.Engine{Name: "Presto", Version: "2.5.25"},
			useragent.ParseEngine(operaMiniUA))
	})

	t.Run("os", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, useragent.OS{Name: "Mac OS X", Version: "10.15.7"}, useragent.ParseOS(chromeMacUA))
		assert.Equal(t, useragent.OS{Name: "Symbian"}, useragent.ParseOS(operaMiniUA))
		assert.Equal(t, useragent.OS{Name: "Firefox OS"}, useragent.ParseOS(firefoxOSPhoneUA))
	})

	t.Run("cpu", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, useragent.ArchAMD64, useragent.ParseCPU(chromeWindowsUA).Architecture)
		assert.Empty(t, useragent.ParseCPU(safariIPhoneUA).Architecture)
	})

	t.Run("device", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t,
			useragent.Device{Type: useragent.DeviceTypeConsole, Vendor: "Nintendo", Model: "Wii"},
			useragent.ParseDevice(nintendoWiiUA))
	})
}

func TestResult_Helpers(t *testing.T) {
	t.Parallel()

	phone := useragent.Parse(safariIPhoneUA)
	assert.True(t, phone.IsMobile())
	assert.True(t, phone.IsTouch())
	assert.False(t, phone.IsTablet())
	assert.Equal(t, safariIPhoneUA, phone.String())

	tablet := useragent.Parse(safariIPadUA)
	assert.True(t, tablet.IsTablet())
	assert.True(t, tablet.IsTouch())
	assert.False(t, tablet.IsMobile())

	console := useragent.Parse(playstationUA)
	assert.True(t, console.IsConsole())
	assert.False(t, console.IsTouch())

	desktop := useragent.Parse(chromeWindowsUA)
	assert.True(t, desktop.IsUnknownDevice())
	assert.False(t, desktop.IsTouch())
}

func TestResult_ShortIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ua       string
		expected string
	}{
		{name: "iPhone", ua: safariIPhoneUA, expected: "Mobile Safari/14.0 (iOS 14.4, Mobile)"},
		{name: "Windows desktop", ua: chromeWindowsUA, expected: "Chrome/91.0.4472.124 (Windows 10, Desktop)"},
		{name: "unknown", ua: "hello world", expected: "Unknown device"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, useragent.Parse(tc.ua).ShortIdentifier())
		})
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	_, ok := useragent.FromContext(context.Background())
	assert.False(t, ok)

	res := useragent.Parse(safariIPhoneUA)
	ctx := useragent.WithContext(context.Background(), res)

	got, ok := useragent.FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, res, got)
}
