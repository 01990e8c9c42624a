package widgets

import "fmt"

// byteUnits is the fixed unit ladder for byte counts. The ladder saturates
// at PB; values that would scale past it stay in PB.
var byteUnits = []string{"B", "kB", "MB", "GB", "TB", "PB"}

// FormatBytes renders a byte count for dashboard labels. Each rung divides
// by 1024, and the unit switches as soon as the scaled value would reach
// 1000, so the integer part never exceeds three digits until the ladder
// saturates. Raw byte counts print without a decimal; everything above
// prints one decimal place.
//
//	FormatBytes(0)    = "0B"
//	FormatBytes(999)  = "999B"
//	FormatBytes(1000) = "1.0kB"
func FormatBytes(n uint64) string {
	v := float64(n)
	unit := 0
	for unit < len(byteUnits)-1 && v >= 1000 {
		v /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d%s", n, byteUnits[0])
	}
	return fmt.Sprintf("%.1f%s", v, byteUnits[unit])
}
