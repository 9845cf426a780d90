package toolpath

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// coordPrinter renders every emitted X/Y/Z coordinate with a fixed number
// of fractional digits, independent of the host locale's grouping and
// decimal-separator conventions — a G-code consumer expects a plain period,
// never a thousands separator.
var coordPrinter = message.NewPrinter(language.English)

// formatCoord renders v with precision fractional digits, e.g. "10.000".
func formatCoord(v float64, precision int) string {
	return coordPrinter.Sprintf("%.*f", precision, v)
}

// formatPlain renders v as the shortest decimal representation, with no
// forced fractional digits, so an integral RPM or feed rate prints as
// "250" rather than "250.000".
func formatPlain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatDepth rounds v to precision fractional digits, then renders it with
// formatPlain so a round value like 1.000 still prints as "1" — but a value
// derived from a ratio (a heightmap sample scaled into a depth range, or an
// accumulated multi-pass step) never emits more than precision fractional
// digits. Every cutting depth (a Z- value) ncgen emits goes through this;
// only the configured hover height is rendered with formatPlain directly.
func formatDepth(v float64, precision int) string {
	return formatPlain(roundTo(v, precision))
}

func roundTo(v float64, precision int) float64 {
	scale := math.Pow(10, float64(precision))
	return math.Round(v*scale) / scale
}
