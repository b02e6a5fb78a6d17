package game

import "testing"

func TestXRandomize(t *testing.T) {
	tests := []struct {
		name     string
		sample   int
		expected float64
	}{
		{"low range yields zero", 0, 0.0},
		{"just below middle threshold", 32, 0.0},
		{"middle threshold", 33, -0.1},
		{"middle range", 50, -0.1},
		{"just below upper threshold", 65, -0.1},
		{"upper threshold", 66, 0.1},
		{"top of range", 99, 0.1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := xRandomize(tc.sample); got != tc.expected {
				t.Errorf("xRandomize(%d) = %v, expected %v", tc.sample, got, tc.expected)
			}
		})
	}
}

func TestXRandomizeCodomain(t *testing.T) {
	for v := 0; v < 100; v++ {
		got := xRandomize(v)
		if got != 0.0 && got != -0.1 && got != 0.1 {
			t.Fatalf("xRandomize(%d) = %v, outside {0, -0.1, +0.1}", v, got)
		}
	}
}

func TestStraddle(t *testing.T) {
	tests := []struct {
		name               string
		aLo, aHi, bLo, bHi float64
		expected           bool
	}{
		{"ball inside paddle interval", 48, 52, 45, 55, true},
		{"left edge inside", 50, 60, 45, 55, true},
		{"right edge inside", 40, 50, 45, 55, true},
		{"fully left", 10, 20, 45, 55, false},
		{"fully right", 60, 70, 45, 55, false},
		// Edges touching exactly do not straddle (strict inequality)
		{"edges touching", 35, 45, 45, 55, false},
		// The test is deliberately one-sided: a containing interval
		// has neither endpoint inside the contained one.
		{"ball containing paddle", 40, 60, 45, 55, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := straddle(tc.aLo, tc.aHi, tc.bLo, tc.bHi); got != tc.expected {
				t.Errorf("straddle(%v,%v,%v,%v) = %v, expected %v",
					tc.aLo, tc.aHi, tc.bLo, tc.bHi, got, tc.expected)
			}
		})
	}
}
