package game

import "testing"

func TestAward(t *testing.T) {
	tests := []struct {
		name    string
		base    int
		elapsed float64
		correct bool
		want    int
	}{
		{"instant answer", 1000, 0, true, 1500},
		{"bonus window edge", 1000, 15, true, 1000},
		{"slow answer goes below base", 1000, 30, true, 500},
		{"halfway through window", 1000, 7.5, true, 1250},
		{"smaller pack value", 500, 3, true, 700},
		{"very slow answer", 1000, 45, true, 0},
		{"zero base", 0, 5, true, 0},
		{"incorrect instant", 1000, 0, false, 0},
		{"incorrect slow", 1000, 40, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Award(tt.base, tt.elapsed, tt.correct); got != tt.want {
				t.Fatalf("Award(%d, %v, %v) = %d, want %d", tt.base, tt.elapsed, tt.correct, got, tt.want)
			}
		})
	}
}

func TestPointsDecreaseWithTime(t *testing.T) {
	prev := Points(1000, 0)
	for elapsed := 0.5; elapsed <= 30; elapsed += 0.5 {
		got := Points(1000, elapsed)
		if got > prev {
			t.Fatalf("points increased from %d to %d at %.1fs", prev, got, elapsed)
		}
		prev = got
	}
}
