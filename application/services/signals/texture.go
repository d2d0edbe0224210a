package signals

import (
	"image"

	"gocv.io/x/gocv"
	"veriface.io/entities"
)

// AnalyzeTexture scores how unnaturally smooth and boundary-inconsistent
// the face crop looks. Blended or generated faces tend toward low edge
// density, low Laplacian variance and artifacts along the crop borders.
// When no face region is known the central 80%x80% of the frame is used
// as an approximation.
func AnalyzeTexture(frame gocv.Mat, region *image.Rectangle) entities.TextureAnalysis {
	if frame.Empty() {
		return neutralTexture(FailureProcessing)
	}

	rect := centralRegion(frame)
	if region != nil && !region.Empty() {
		rect = region.Intersect(image.Rect(0, 0, frame.Cols(), frame.Rows()))
	}
	if rect.Dx() < 8 || rect.Dy() < 8 {
		return neutralTexture(FailureDegenerateGeometry)
	}

	crop := frame.Region(rect)
	defer crop.Close()
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(crop, &gray, gocv.ColorBGRToGray)

	laplacianVar := laplacianVariance(gray)
	edgeDensity := cannyEdgeDensity(gray)
	smoothness := smoothnessScore(gray)
	boundary := boundaryArtifactScore(gray)
	compression := compressionArtifactScore(gray)

	return entities.TextureAnalysis{
		LaplacianVariance:    laplacianVar,
		EdgeDensity:          edgeDensity,
		SmoothnessScore:      smoothness,
		BoundaryArtifacts:    boundary,
		CompressionArtifacts: compression,
		AnomalyScore:         textureAnomalyScore(laplacianVar, edgeDensity, smoothness, boundary),
	}
}

// neutralTexture is the documented fail-open default: a mild 0.2 anomaly
// rather than either extreme.
func neutralTexture(kind FailureKind) entities.TextureAnalysis {
	return entities.TextureAnalysis{
		SmoothnessScore: 0.5,
		AnomalyScore:    0.2,
		Failure:         string(kind),
	}
}

func centralRegion(frame gocv.Mat) image.Rectangle {
	w, h := frame.Cols(), frame.Rows()
	return image.Rect(w/10, h/10, w/10+w*8/10, h/10+h*8/10)
}

func textureAnomalyScore(laplacianVar, edgeDensity, smoothness, boundary float64) float64 {
	score := (1.0-clip(laplacianVar/1000.0, 0, 1))*0.3 +
		(1.0-edgeDensity)*0.3 +
		smoothness*0.2 +
		boundary*0.2
	return clip(score, 0, 1)
}

func laplacianVariance(gray gocv.Mat) float64 {
	laplacian := gocv.NewMat()
	defer laplacian.Close()
	gocv.Laplacian(gray, &laplacian, gocv.MatTypeCV64F, 1, 1, 0, gocv.BorderDefault)
	values, err := laplacian.DataPtrFloat64()
	if err != nil {
		return 0
	}
	return variance(values)
}

func cannyEdgeDensity(gray gocv.Mat) float64 {
	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(gray, &edges, 50, 150)
	total := edges.Rows() * edges.Cols()
	if total == 0 {
		return 0
	}
	return float64(gocv.CountNonZero(edges)) / float64(total)
}

func smoothnessScore(gray gocv.Mat) float64 {
	median := gocv.NewMat()
	defer median.Close()
	gocv.MedianBlur(gray, &median, 5)
	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(gray, median, &diff)
	return clip(1.0-diff.Mean().Val1/255.0, 0, 1)
}

// boundaryArtifactScore averages pixel variance over the four border
// strips of the crop. Face swaps blend at the boundary, inflating it.
func boundaryArtifactScore(gray gocv.Mat) float64 {
	h, w := gray.Rows(), gray.Cols()
	borderSize := 20
	if h/5 < borderSize {
		borderSize = h / 5
	}
	if w/5 < borderSize {
		borderSize = w / 5
	}
	if borderSize < 5 {
		return 0
	}

	strips := []image.Rectangle{
		image.Rect(0, 0, w, borderSize),
		image.Rect(0, h-borderSize, w, h),
		image.Rect(0, 0, borderSize, h),
		image.Rect(w-borderSize, 0, w, h),
	}
	variances := make([]float64, 0, len(strips))
	for _, strip := range strips {
		view := gray.Region(strip)
		variances = append(variances, matVarianceU8(view))
		view.Close()
	}
	return clip(mean(variances)/100.0, 0, 1)
}

// compressionArtifactScore sums the DCT energy along the edges of each
// non-overlapping 8x8 block, normalized by crop area. Block-boundary
// energy is a codec fingerprint.
func compressionArtifactScore(gray gocv.Mat) float64 {
	// DCT requires even dimensions.
	rows, cols := gray.Rows()&^1, gray.Cols()&^1
	if rows < 8 || cols < 8 {
		return 0
	}
	even := gray.Region(image.Rect(0, 0, cols, rows))
	defer even.Close()

	scaled := gocv.NewMat()
	defer scaled.Close()
	even.ConvertToWithParams(&scaled, gocv.MatTypeCV32F, 1.0/255.0, 0)

	dct := gocv.NewMat()
	defer dct.Close()
	gocv.DCT(scaled, &dct, gocv.DftForward)

	blockEnergy := 0.0
	for i := 0; i < rows; i += 8 {
		for j := 0; j < cols; j += 8 {
			endI := min(i+8, rows)
			endJ := min(j+8, cols)
			for jj := j; jj < endJ; jj++ {
				blockEnergy += abs32(dct.GetFloatAt(i, jj))
				blockEnergy += abs32(dct.GetFloatAt(endI-1, jj))
			}
			for ii := i; ii < endI; ii++ {
				blockEnergy += abs32(dct.GetFloatAt(ii, j))
				blockEnergy += abs32(dct.GetFloatAt(ii, endJ-1))
			}
		}
	}
	score := blockEnergy / float64(rows*cols)
	return clip(score/100.0, 0, 1)
}

func abs32(v float32) float64 {
	if v < 0 {
		return float64(-v)
	}
	return float64(v)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// matVarianceU8 computes pixel variance of a single-channel 8-bit mat,
// tolerating non-continuous region views.
func matVarianceU8(m gocv.Mat) float64 {
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return 0
	}
	n := float64(rows * cols)
	var sum, sumSq float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := float64(m.GetUCharAt(i, j))
			sum += v
			sumSq += v * v
		}
	}
	meanVal := sum / n
	return sumSq/n - meanVal*meanVal
}
