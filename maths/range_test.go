package maths

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRange(t *testing.T) {
	type test struct {
		name        string
		start, stop int
		expected    []int
	}

	tests := []test{
		{
			name:     "Empty",
			start:    5,
			stop:     5,
			expected: make([]int, 0),
		},
		{
			name:     "StopBeforeStart",
			start:    5,
			stop:     0,
			expected: make([]int, 0),
		},
		{
			name:     "FromZero",
			stop:     4,
			expected: []int{0, 1, 2, 3},
		},
		{
			name:     "Offset",
			start:    3,
			stop:     7,
			expected: []int{3, 4, 5, 6},
		},
		{
			name:     "Negative",
			start:    -2,
			stop:     2,
			expected: []int{-2, -1, 0, 1},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, Range(test.start, test.stop))
		})
	}
}

func TestSequence(t *testing.T) {
	require.Equal(t, []int{0, 1, 2}, Sequence(3))
	require.Equal(t, make([]int, 0), Sequence(0))
	require.Equal(t, []uint8{0, 1}, Sequence(uint8(2)))
}
