package player

import "math"

// levelToVolume converts a 0.0-1.0 level to beep's logarithmic volume.
// beep uses base 2: Volume 0 means unchanged, -1 half, -2 quarter.
// We map 1.0 -> 0, 0.5 -> -1, 0.25 -> -2, and anything at or below
// zero to -10, essentially silent.
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}
