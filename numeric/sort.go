package numeric

import "math"

// valueLess orders two float64 values for Sort: NaN always sorts last
// regardless of order, since it represents "missing" rather than a
// comparable magnitude (spec §6.1, boundary behavior in §8 scenario S2).
func valueLess(a, b float64, order Order) bool {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	if aNaN || bNaN {
		if aNaN && bNaN {
			return false
		}
		return bNaN // a sorts before b only when b is the NaN
	}
	if order == Descending {
		return a > b
	}
	return a < b
}
