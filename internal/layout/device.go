package layout

// DeviceType is a coarse viewport classification driving the responsive rules.
type DeviceType string

const (
	MobilePortrait  DeviceType = "mobile-portrait"
	MobileLandscape DeviceType = "mobile-landscape"
	Tablet          DeviceType = "tablet"
	Desktop         DeviceType = "desktop"
)

// IsMobile reports whether the device is one of the two mobile types.
func (d DeviceType) IsMobile() bool {
	return d == MobilePortrait || d == MobileLandscape
}

// Breakpoints holds the viewport width thresholds in layout units.
// Only Mobile and Tablet take part in classification; Desktop and
// MobilePortrait are kept for consumers that want finer tiers.
type Breakpoints struct {
	Mobile         float64 `koanf:"mobile"`
	Tablet         float64 `koanf:"tablet"`
	Desktop        float64 `koanf:"desktop"`
	MobilePortrait float64 `koanf:"mobile_portrait"`
}

// DefaultBreakpoints match the thresholds the layout was designed against.
var DefaultBreakpoints = Breakpoints{
	Mobile:         640,
	Tablet:         768,
	Desktop:        1024,
	MobilePortrait: 480,
}

// Classify maps a viewport size to a device type.
func Classify(width, height float64, bp Breakpoints) DeviceType {
	switch {
	case width < bp.Mobile:
		if height > width {
			return MobilePortrait
		}
		return MobileLandscape
	case width < bp.Tablet:
		return Tablet
	default:
		return Desktop
	}
}
