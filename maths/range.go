package maths

import "golang.org/x/exp/constraints"

// Range returns the half-open ascending sequence of integers [start, stop).
//
// NOTE: The returned slice is empty, but non-<nil>, when stop is less than or equal to start.
func Range[T constraints.Integer](start, stop T) []T {
	if stop <= start {
		return make([]T, 0)
	}

	sequence := make([]T, 0, stop-start)

	for value := start; value < stop; value++ {
		sequence = append(sequence, value)
	}

	return sequence
}

// Sequence returns the ascending sequence of integers [0, n), equivalent to 'Range(0, n)'.
func Sequence[T constraints.Integer](n T) []T {
	return Range(0, n)
}
