package types

import (
	"image"
	"math"

	"gocv.io/x/gocv"
)

// Point is a facial landmark in frame-pixel coordinates. Z carries the
// provider's depth estimate and is ignored by the planar signals.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// LandmarkSet is an ordered face-mesh point sequence. Immutable once
// produced; a nil *LandmarkSet means no face was found.
type LandmarkSet struct {
	Points []Point
}

func (ls *LandmarkSet) Len() int {
	if ls == nil {
		return 0
	}
	return len(ls.Points)
}

func (ls *LandmarkSet) Centroid() Point {
	if ls.Len() == 0 {
		return Point{}
	}
	var c Point
	for _, p := range ls.Points {
		c.X += p.X
		c.Y += p.Y
		c.Z += p.Z
	}
	n := float64(len(ls.Points))
	return Point{X: c.X / n, Y: c.Y / n, Z: c.Z / n}
}

// Select returns the points at the given mesh indices. The second return is
// false when any index is out of range.
func (ls *LandmarkSet) Select(indices []int) ([]Point, bool) {
	if ls == nil {
		return nil, false
	}
	out := make([]Point, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(ls.Points) {
			return nil, false
		}
		out = append(out, ls.Points[idx])
	}
	return out, true
}

// BoundingBox computes the padded pixel box enclosing all landmarks,
// clamped to the frame bounds.
func (ls *LandmarkSet) BoundingBox(padding float64, bounds image.Rectangle) image.Rectangle {
	if ls.Len() == 0 {
		return image.Rectangle{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range ls.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	pad := (maxX - minX) * padding
	rect := image.Rect(int(minX-pad), int(minY-pad), int(maxX+pad), int(maxY+pad))
	return rect.Intersect(bounds)
}

// LandmarkProviderType extracts facial structure from decoded frames.
// Absence of a face is a valid result, never an error; providers must
// tolerate low-resolution and noisy input.
type LandmarkProviderType interface {
	// ExtractLandmarks returns nil when no face (or no mesh capability)
	// is available for the frame.
	ExtractLandmarks(frame gocv.Mat) (*LandmarkSet, error)
	// DetectFaces returns face bounding boxes, cheapest capability first.
	DetectFaces(frame gocv.Mat) []image.Rectangle
	// MeshCapable reports whether ExtractLandmarks can ever return points.
	MeshCapable() bool
}
