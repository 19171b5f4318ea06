package core

import "testing"

func TestSeededRandRange(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 1000; i++ {
		v := r.Range(10, 40)
		if v < 10 || v >= 40 {
			t.Fatalf("Range(10, 40) = %d, out of bounds", v)
		}
	}
}

func TestSeededRandDeterminism(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Range(0, 1000), b.Range(0, 1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestSeededRandEmptyRange(t *testing.T) {
	r := NewRand(1)
	if v := r.Range(5, 5); v != 5 {
		t.Errorf("Range(5, 5) = %d, expected 5", v)
	}
}
