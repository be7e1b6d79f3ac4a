package geom

import "testing"

func TestContainsPointHalfOpen(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 5, Height: 4}

	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},
		{14.9, 23.9, true},
		{15, 20, false},
		{10, 24, false},
		{9.99, 21, false},
	}
	for _, tt := range tests {
		if got := r.ContainsPoint(tt.x, tt.y); got != tt.want {
			t.Fatalf("ContainsPoint(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	if (Rect{Width: 0, Height: 10}).ContainsPoint(0, 0) {
		t.Fatalf("empty rect must not contain any point")
	}
}

func TestIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 50}
	b := Rect{X: 80, Y: -10, Width: 40, Height: 20}

	got := a.Intersect(b)
	want := Rect{X: 80, Y: 0, Width: 20, Height: 10}
	if got != want {
		t.Fatalf("Intersect = %v, want %v", got, want)
	}
	if !a.Intersects(b) {
		t.Fatalf("expected rects to intersect")
	}

	disjoint := Rect{X: 100, Y: 0, Width: 10, Height: 10}
	if got := a.Intersect(disjoint); !got.Empty() {
		t.Fatalf("touching rects should not overlap, got %v", got)
	}
	if a.Intersects(disjoint) {
		t.Fatalf("touching rects should not intersect")
	}
}

func TestUnion(t *testing.T) {
	if _, ok := Union(nil); ok {
		t.Fatalf("Union(nil) should report false")
	}

	got, ok := Union([]Rect{
		{X: 10, Y: 10, Width: 10, Height: 10},
		{X: -5, Y: 15, Width: 5, Height: 30},
	})
	if !ok {
		t.Fatalf("Union returned false")
	}
	want := Rect{X: -5, Y: 10, Width: 25, Height: 35}
	if got != want {
		t.Fatalf("Union = %v, want %v", got, want)
	}
}
