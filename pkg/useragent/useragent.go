package useragent

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Browser represents browser information
type Browser struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
	Major   string `json:"major,omitempty"`
}

// Engine represents the layout engine
type Engine struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
}

// OS represents the operating system
type OS struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
}

// Device represents the hardware the user agent runs on
type Device struct {
	Type   string `json:"type,omitempty"`
	Vendor string `json:"vendor,omitempty"`
	Model  string `json:"model,omitempty"`
}

// CPU represents the processor architecture
type CPU struct {
	Architecture string `json:"architecture,omitempty"`
}

// Result is the classification of a single user agent string.
// Empty fields are unknown.
type Result struct {
	UA      string  `json:"ua"`
	Browser Browser `json:"browser"`
	Engine  Engine  `json:"engine"`
	OS      OS      `json:"os"`
	Device  Device  `json:"device"`
	CPU     CPU     `json:"cpu"`
}

// String returns the raw user agent string
func (r Result) String() string { return r.UA }

// IsMobile returns true if the device was classified as a phone
func (r Result) IsMobile() bool { return r.Device.Type == DeviceTypeMobile }

// IsTablet returns true if the device was classified as a tablet
func (r Result) IsTablet() bool { return r.Device.Type == DeviceTypeTablet }

// IsConsole returns true if the device was classified as a gaming console
func (r Result) IsConsole() bool { return r.Device.Type == DeviceTypeConsole }

// IsTouch returns true for phones and tablets
func (r Result) IsTouch() bool { return r.IsMobile() || r.IsTablet() }

// IsUnknownDevice returns true if no device rule matched
func (r Result) IsUnknownDevice() bool { return r.Device.Type == DeviceTypeUnknown }

func orUnknown(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// ShortIdentifier returns a short human-readable identifier for logging.
// Format: Browser/Version (OS, device)
func (r Result) ShortIdentifier() string {
	if r.Browser.Name == "" && r.OS.Name == "" && r.Device.Type == "" {
		return "Unknown device"
	}

	browser := orUnknown(r.Browser.Name, "Unknown")
	version := orUnknown(r.Browser.Version, "?")
	os := strings.TrimSpace(r.OS.Name + " " + r.OS.Version)
	os = orUnknown(os, "Unknown OS")
	// Casers are stateful and must not be shared between goroutines.
	device := cases.Title(language.English).String(orUnknown(r.Device.Type, "desktop"))

	return fmt.Sprintf("%s/%s (%s, %s)", browser, version, os, device)
}

func fromValues(ua string, v [dimensionCount]Values) Result {
	return Result{
		UA: ua,
		Browser: Browser{
			Name:    v[DimensionBrowser][KeyName],
			Version: v[DimensionBrowser][KeyVersion],
			Major:   v[DimensionBrowser][KeyMajor],
		},
		Engine: Engine{
			Name:    v[DimensionEngine][KeyName],
			Version: v[DimensionEngine][KeyVersion],
		},
		OS: OS{
			Name:    v[DimensionOS][KeyName],
			Version: v[DimensionOS][KeyVersion],
		},
		Device: Device{
			Type:   v[DimensionDevice][KeyType],
			Vendor: v[DimensionDevice][KeyVendor],
			Model:  v[DimensionDevice][KeyModel],
		},
		CPU: CPU{
			Architecture: v[DimensionCPU][KeyArchitecture],
		},
	}
}

// Parse classifies ua with the built-in rule tables.
// It never fails: unrecognised input yields a Result with unknown fields.
func Parse(ua string) Result {
	return defaultClassifier.Parse(ua)
}
