package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundRating(t *testing.T) {
	tests := []struct {
		name     string
		ratings  []int
		expected float64
	}{
		{name: "five four five", ratings: []int{5, 4, 5}, expected: 4.7},
		{name: "single rating", ratings: []int{3}, expected: 3.0},
		{name: "all fives", ratings: []int{5, 5, 5, 5}, expected: 5.0},
		{name: "mixed", ratings: []int{1, 2, 3, 4, 5}, expected: 3.0},
		{name: "rounds down", ratings: []int{4, 4, 5}, expected: 4.3},
		{name: "empty is zero", ratings: nil, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := 0
			for _, r := range tt.ratings {
				sum += r
			}
			avg := 0.0
			if len(tt.ratings) > 0 {
				avg = float64(sum) / float64(len(tt.ratings))
			}
			assert.Equal(t, tt.expected, roundRating(avg))
		})
	}
}
