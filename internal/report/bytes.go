package report

import "fmt"

const byteBase = 1024.0

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes renders a byte count with base-1024 units and one decimal,
// e.g. 1536 -> "1.5 KB". Anything past terabytes is shown in PB.
func FormatBytes(value float64) string {
	for _, unit := range byteUnits {
		if value < byteBase {
			return fmt.Sprintf("%.1f %s", value, unit)
		}

		value /= byteBase
	}

	return fmt.Sprintf("%.1f PB", value)
}
