package landmark

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"gocv.io/x/gocv"
	"veriface.io/infrastructure/logger"
	ltypes "veriface.io/infrastructure/landmark/types"
)

// CascadeProvider locates faces with a Haar cascade classifier. It cannot
// produce a landmark mesh, so sessions served by it run in reduced mode:
// frame-difference motion for liveness and texture-only deepfake analysis.
type CascadeProvider struct {
	faceCascade gocv.CascadeClassifier
	loaded      bool
}

var ErrNoMeshSupport = errors.New("cascade provider does not produce landmark meshes")

func NewCascadeProvider() (*CascadeProvider, error) {
	provider := &CascadeProvider{faceCascade: gocv.NewCascadeClassifier()}

	cascadePath := os.Getenv("OPENCV_CASCADE_PATH")
	if cascadePath == "" {
		cascadePath = "./models/haarcascades"
	}
	cascadeFile := filepath.Join(cascadePath, "haarcascade_frontalface_alt.xml")
	if !provider.faceCascade.Load(cascadeFile) {
		alternativePaths := []string{
			"haarcascade_frontalface_alt.xml",
			"/usr/local/share/opencv4/haarcascades/haarcascade_frontalface_alt.xml",
			"/usr/share/opencv4/haarcascades/haarcascade_frontalface_alt.xml",
			"/opt/homebrew/share/opencv4/haarcascades/haarcascade_frontalface_alt.xml",
		}
		loaded := false
		for _, path := range alternativePaths {
			if provider.faceCascade.Load(path) {
				loaded = true
				break
			}
		}
		if !loaded {
			return nil, fmt.Errorf("failed to load face cascade classifier from %s or alternative paths", cascadeFile)
		}
	}
	provider.loaded = true
	return provider, nil
}

func (cp *CascadeProvider) MeshCapable() bool { return false }

func (cp *CascadeProvider) ExtractLandmarks(frame gocv.Mat) (*ltypes.LandmarkSet, error) {
	return nil, ErrNoMeshSupport
}

// DetectFaces runs the cascade at progressively relaxed parameters and
// returns deduplicated face rectangles, largest first.
func (cp *CascadeProvider) DetectFaces(frame gocv.Mat) []image.Rectangle {
	if !cp.loaded || frame.Empty() {
		return nil
	}

	gray := gocv.NewMat()
	defer gray.Close()
	if frame.Channels() > 1 {
		gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)
	} else {
		frame.CopyTo(&gray)
	}

	equalized := gocv.NewMat()
	defer equalized.Close()
	gocv.EqualizeHist(gray, &equalized)

	var faces []image.Rectangle
	for _, scaleFactor := range []float64{1.1, 1.05, 1.2} {
		faces = cp.faceCascade.DetectMultiScaleWithParams(
			equalized,
			scaleFactor,
			4,
			0,
			image.Point{X: 30, Y: 30},
			image.Point{X: frame.Cols(), Y: frame.Rows()},
		)
		if len(faces) > 0 {
			break
		}
	}
	if len(faces) == 0 {
		return nil
	}
	return dedupFaces(faces)
}

func (cp *CascadeProvider) Close() {
	if cp.loaded {
		if err := cp.faceCascade.Close(); err != nil {
			logger.Warning("error closing face cascade classifier", logger.LoggerOptions{
				Key:  "error",
				Data: err,
			})
		}
		cp.loaded = false
	}
}

// dedupFaces drops rectangles overlapping a larger detection by more than
// 30% of their own area, then orders the survivors largest first.
func dedupFaces(faces []image.Rectangle) []image.Rectangle {
	sorted := make([]image.Rectangle, len(faces))
	copy(sorted, faces)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if rectArea(sorted[j]) > rectArea(sorted[i]) {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}

	kept := []image.Rectangle{}
	for _, candidate := range sorted {
		duplicate := false
		for _, existing := range kept {
			overlap := candidate.Intersect(existing)
			if rectArea(overlap) > int(0.3*float64(rectArea(candidate))) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, candidate)
		}
	}
	return kept
}

func rectArea(r image.Rectangle) int {
	return r.Dx() * r.Dy()
}
