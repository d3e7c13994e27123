package helpers

import "golang.org/x/exp/constraints"

func Min[T constraints.Ordered](numbers ...T) T {
	var min T = numbers[0]
	for _, n := range numbers {
		if n < min {
			min = n
		}
	}
	return min
}

func Max[T constraints.Ordered](numbers ...T) T {
	var max T = numbers[0]
	for _, n := range numbers {
		if n > max {
			max = n
		}
	}
	return max
}

// Clamp limits v to the [lo, hi] range.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return Max(lo, Min(v, hi))
}

// Percent returns done as a share of total in the [0, 100] range. A zero
// total counts as complete.
func Percent[T constraints.Integer](done, total T) float64 {
	if total == 0 {
		return 100
	}
	return Clamp(float64(done)*100/float64(total), 0, 100)
}
