package domain

// ColorState is the discrete compliance state shown on the dashboard.
type ColorState string

const (
	// ColorDarkGreen marks admins, who are exempt from compliance tracking.
	ColorDarkGreen ColorState = "DARK_GREEN"
	// ColorLightGreen covers both early submissions and the normal in-window state.
	ColorLightGreen  ColorState = "LIGHT_GREEN"
	ColorLightYellow ColorState = "LIGHT_YELLOW"
	// ColorLightRed covers both the critical in-window state and stale reports.
	ColorLightRed ColorState = "LIGHT_RED"
	// ColorDefaultGrey means there is no data to classify.
	ColorDefaultGrey ColorState = "DEFAULT_GREY"
)

func (c ColorState) String() string {
	return string(c)
}

// Hex returns the color value existing clients render. These constants are
// part of the client contract and must not change.
func (c ColorState) Hex() string {
	switch c {
	case ColorDarkGreen:
		return "#006400"
	case ColorLightGreen:
		return "#C8E6C9"
	case ColorLightYellow:
		return "#FFF59D"
	case ColorLightRed:
		return "#FFCDD2"
	default:
		return "#E0E0E0"
	}
}

// Fixed percentage band markers. These are not an interpolation; clients
// key UI behavior off the exact values.
const (
	PercentageEarly    = 0.0
	PercentageNormal   = 25.0
	PercentageWarning  = 60.0
	PercentageCritical = 80.0
	PercentageStale    = 100.0
)

// StatusBand is the outcome of classifying one member against the group
// schedule. Percentage is nil when there is nothing to classify.
type StatusBand struct {
	Color      ColorState
	Percentage *float64
}

func NewStatusBand(color ColorState, percentage float64) StatusBand {
	return StatusBand{Color: color, Percentage: &percentage}
}
