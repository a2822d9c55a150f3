package geom

import "testing"

func TestSize(t *testing.T) {
	tests := []struct {
		v    Point
		want int64
	}{
		{Pt(0, 0), 0},
		{Pt(3, 4), 5},
		{Pt(-3, 4), 5},
		{Pt(1, 1), 1}, // sqrt(2) rounds down
		{Pt(2, 2), 3}, // sqrt(8) rounds up
		{Pt(10, 0), 10},
	}

	for _, tt := range tests {
		if got := tt.v.Size(); got != tt.want {
			t.Errorf("Size(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestShorterThan(t *testing.T) {
	tests := []struct {
		v    Point
		l    int64
		want bool
	}{
		{Pt(3, 4), 5, false}, // exactly 5 is not shorter
		{Pt(3, 4), 6, true},
		{Pt(0, 0), 1, true},
		{Pt(-2, 0), 5, true},
		{Pt(100, 100), 5, false},
	}

	for _, tt := range tests {
		if got := ShorterThan(tt.v, tt.l); got != tt.want {
			t.Errorf("ShorterThan(%v, %d) = %v, want %v", tt.v, tt.l, got, tt.want)
		}
	}
}

func TestClosestOnSegment(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)

	tests := []struct {
		name string
		p    Point
		want Point
	}{
		{"interior projection", Pt(4, 7), Pt(4, 0)},
		{"clamped to start", Pt(-5, 3), Pt(0, 0)},
		{"clamped to end", Pt(20, -2), Pt(10, 0)},
		{"on the segment", Pt(6, 0), Pt(6, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClosestOnSegment(tt.p, a, b); got != tt.want {
				t.Errorf("ClosestOnSegment(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestClosestOnSegmentDegenerate(t *testing.T) {
	a := Pt(5, 5)
	if got := ClosestOnSegment(Pt(0, 0), a, a); got != a {
		t.Errorf("ClosestOnSegment on zero-length segment = %v, want %v", got, a)
	}
}

func TestLess(t *testing.T) {
	tests := []struct {
		p, q Point
		want bool
	}{
		{Pt(1, 0), Pt(2, 0), true},
		{Pt(2, 0), Pt(1, 0), false},
		{Pt(1, 1), Pt(1, 2), true},
		{Pt(1, 2), Pt(1, 1), false},
		{Pt(1, 1), Pt(1, 1), false},
	}

	for _, tt := range tests {
		if got := tt.p.Less(tt.q); got != tt.want {
			t.Errorf("%v.Less(%v) = %v, want %v", tt.p, tt.q, got, tt.want)
		}
	}
}
