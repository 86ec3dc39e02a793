package flattree

import "math"

// incLevel and decLevel saturate, so the root level never underflows
// and a pathological depth never wraps around.
func incLevel(level int) int {
	if level >= math.MaxInt {
		return math.MaxInt
	}
	return level + 1
}

func decLevel(level int) int {
	if level <= 0 {
		return 0
	}
	return level - 1
}
