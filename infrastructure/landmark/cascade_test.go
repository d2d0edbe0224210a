package landmark

import (
	"image"
	"testing"
)

func TestDedupFacesKeepsLargestFirst(t *testing.T) {
	small := image.Rect(0, 0, 50, 50)
	large := image.Rect(100, 100, 300, 300)

	kept := dedupFaces([]image.Rectangle{small, large})
	if len(kept) != 2 {
		t.Fatalf("expected 2 distinct faces, got %d", len(kept))
	}
	if kept[0] != large {
		t.Errorf("largest face must sort first, got %v", kept[0])
	}
}

func TestDedupFacesDropsOverlappingDetections(t *testing.T) {
	face := image.Rect(100, 100, 300, 300)
	// Nested detection fully inside the first: 100% self-overlap.
	duplicate := image.Rect(120, 120, 280, 280)

	kept := dedupFaces([]image.Rectangle{face, duplicate})
	if len(kept) != 1 {
		t.Fatalf("expected overlap dedup to 1 face, got %d", len(kept))
	}
	if kept[0] != face {
		t.Errorf("the larger detection must survive, got %v", kept[0])
	}
}

func TestDedupFacesKeepsSlightOverlap(t *testing.T) {
	a := image.Rect(0, 0, 100, 100)
	// Overlap is 20x100 = 2000 of b's 10000 area: 20%, under the cutoff.
	b := image.Rect(80, 0, 180, 100)

	kept := dedupFaces([]image.Rectangle{a, b})
	if len(kept) != 2 {
		t.Errorf("20%% overlap must keep both faces, got %d", len(kept))
	}
}
