package world

import "testing"

func TestLODTableDesired(t *testing.T) {
	lods := LODTable{Distances: []float64{5, 10, 15, 20}, Resolutions: []int{64, 32, 16, 8}}
	cases := []struct {
		distance float64
		want     int
	}{
		{0, 0},
		{4.99, 0},
		{5, 1},
		{12, 2},
		{19.9, 3},
		{20, 3},
		{1000, 3},
	}
	for _, tc := range cases {
		if got := lods.Desired(tc.distance); got != tc.want {
			t.Errorf("Desired(%v) = %d, want %d", tc.distance, got, tc.want)
		}
	}
	if lods.Coarsest() != 3 || lods.Resolution(lods.Coarsest()) != 8 || lods.Len() != 4 {
		t.Fatalf("unexpected table shape")
	}
}
