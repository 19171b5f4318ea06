package core

import "testing"

func TestMax(t *testing.T) {
	tests := []struct {
		a, b int
		max  int
	}{
		{1, 2, 2},
		{2, 1, 2},
		{-3, 0, 0},
		{5, 5, 5},
	}

	for _, tt := range tests {
		if got := Max(tt.a, tt.b); got != tt.max {
			t.Errorf("Max(%d, %d) = %d, expected %d", tt.a, tt.b, got, tt.max)
		}
	}
}
