package types

import (
	"image"
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 3, Y: 4}
	if got := Distance(a, b); math.Abs(got-5) > 1e-9 {
		t.Errorf("Distance = %f, want 5", got)
	}
}

func TestNilSetIsSafe(t *testing.T) {
	var set *LandmarkSet
	if set.Len() != 0 {
		t.Error("nil set length must be 0")
	}
	if _, ok := set.Select([]int{0}); ok {
		t.Error("selecting from a nil set must fail")
	}
	if box := set.BoundingBox(0.2, image.Rect(0, 0, 100, 100)); !box.Empty() {
		t.Errorf("nil set bounding box must be empty, got %v", box)
	}
}

func TestSelectOutOfRange(t *testing.T) {
	set := &LandmarkSet{Points: make([]Point, 10)}
	if _, ok := set.Select([]int{5, 10}); ok {
		t.Error("out-of-range index must fail the selection")
	}
	points, ok := set.Select([]int{0, 9})
	if !ok || len(points) != 2 {
		t.Errorf("valid selection failed: ok=%v len=%d", ok, len(points))
	}
}

func TestCentroid(t *testing.T) {
	set := &LandmarkSet{Points: []Point{
		{X: 0, Y: 0},
		{X: 10, Y: 20},
	}}
	c := set.Centroid()
	if c.X != 5 || c.Y != 10 {
		t.Errorf("centroid = %+v, want (5, 10)", c)
	}
}

func TestBoundingBoxPaddingAndClamping(t *testing.T) {
	set := &LandmarkSet{Points: []Point{
		{X: 10, Y: 10},
		{X: 60, Y: 90},
	}}
	bounds := image.Rect(0, 0, 100, 100)

	// 20% of the 50px width = 10px padding on each side.
	box := set.BoundingBox(0.2, bounds)
	want := image.Rect(0, 0, 70, 100)
	if box != want {
		t.Errorf("bounding box = %v, want %v", box, want)
	}

	unpadded := set.BoundingBox(0, bounds)
	if unpadded != image.Rect(10, 10, 60, 90) {
		t.Errorf("unpadded box = %v, want (10,10)-(60,90)", unpadded)
	}
}
