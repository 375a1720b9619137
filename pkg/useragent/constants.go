package useragent

// Device types reported in Device.Type
const (
	// DeviceTypeMobile identifies smartphones and feature phones
	DeviceTypeMobile = "mobile"

	// DeviceTypeTablet identifies tablet devices (iPad, Android tablets, Kindle, etc.)
	DeviceTypeTablet = "tablet"

	// DeviceTypeConsole identifies gaming consoles and handhelds
	DeviceTypeConsole = "console"

	// DeviceTypeUnknown is reported when no device rule matched
	DeviceTypeUnknown = ""
)

// CPU architectures produced by the built-in rules
const (
	ArchAMD64 = "amd64"
	ArchIA32  = "ia32"
	ArchARM   = "arm"
	ArchSPARC = "sparc"
)

// FieldKey names a single attribute inside a dimension of the result.
type FieldKey string

const (
	KeyName         FieldKey = "name"
	KeyVersion      FieldKey = "version"
	KeyMajor        FieldKey = "major"
	KeyArchitecture FieldKey = "architecture"
	KeyType         FieldKey = "type"
	KeyVendor       FieldKey = "vendor"
	KeyModel        FieldKey = "model"
)

// Dimension is one independently classified aspect of a user agent.
type Dimension int

const (
	DimensionBrowser Dimension = iota
	DimensionCPU
	DimensionDevice
	DimensionEngine
	DimensionOS

	dimensionCount
)

var dimensionNames = [dimensionCount]string{
	DimensionBrowser: "browser",
	DimensionCPU:     "cpu",
	DimensionDevice:  "device",
	DimensionEngine:  "engine",
	DimensionOS:      "os",
}

// dimensionKeys lists the field keys each dimension may populate.
var dimensionKeys = [dimensionCount][]FieldKey{
	DimensionBrowser: {KeyName, KeyVersion, KeyMajor},
	DimensionCPU:     {KeyArchitecture},
	DimensionDevice:  {KeyType, KeyVendor, KeyModel},
	DimensionEngine:  {KeyName, KeyVersion},
	DimensionOS:      {KeyName, KeyVersion},
}

func (d Dimension) String() string {
	if d < 0 || d >= dimensionCount {
		return "unknown"
	}
	return dimensionNames[d]
}

// ParseDimension maps a dimension name ("browser", "cpu", "device", "engine", "os")
// to its Dimension.
func ParseDimension(name string) (Dimension, error) {
	for d, n := range dimensionNames {
		if n == name {
			return Dimension(d), nil
		}
	}
	return 0, ErrUnknownDimension
}

func (d Dimension) accepts(key FieldKey) bool {
	for _, k := range dimensionKeys[d] {
		if k == key {
			return true
		}
	}
	return false
}
