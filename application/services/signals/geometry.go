package signals

import (
	"veriface.io/application/constants"
	"veriface.io/entities"
	ltypes "veriface.io/infrastructure/landmark/types"
)

// GeometryRatios is one frame's facial-proportion sample kept in the
// geometry history window.
type GeometryRatios struct {
	FaceHeight       float64
	FaceWidth        float64
	MouthWidth       float64
	MouthFaceRatio   float64
	WidthHeightRatio float64
}

const ratioEpsilon = 1e-6

// AnalyzeGeometry measures canonical facial proportions and scores how
// unnaturally *stable* they are across the history window. Real faces
// drift; a near-constant width/height ratio is the anomaly.
func AnalyzeGeometry(set *ltypes.LandmarkSet, history *HistoryBuffer[GeometryRatios]) (entities.GeometryAnalysis, error) {
	points, ok := set.Select([]int{
		constants.NoseTipIndex,
		constants.ChinIndex,
		constants.LeftEyeCornerIndex,
		constants.RightEyeCornerIndex,
		constants.LeftMouthCornerIndex,
		constants.RightMouthCornerIdx,
	})
	if !ok {
		kind := FailureNoLandmarks
		if set.Len() > 0 {
			kind = FailureInsufficientPoints
		}
		return entities.GeometryAnalysis{}, extractionFailure(kind)
	}
	noseTip, chin, leftEye, rightEye, leftMouth, rightMouth := points[0], points[1], points[2], points[3], points[4], points[5]

	ratios := GeometryRatios{
		FaceHeight: ltypes.Distance(chin, noseTip),
		FaceWidth:  ltypes.Distance(rightEye, leftEye),
		MouthWidth: ltypes.Distance(rightMouth, leftMouth),
	}
	ratios.MouthFaceRatio = ratios.MouthWidth / (ratios.FaceHeight + ratioEpsilon)
	ratios.WidthHeightRatio = ratios.FaceWidth / (ratios.FaceHeight + ratioEpsilon)
	history.Push(ratios)

	return entities.GeometryAnalysis{
		FaceHeight:         ratios.FaceHeight,
		FaceWidth:          ratios.FaceWidth,
		MouthFaceRatio:     ratios.MouthFaceRatio,
		WidthHeightRatio:   ratios.WidthHeightRatio,
		ConsistencyAnomaly: geometryConsistencyAnomaly(history),
	}, nil
}

func geometryConsistencyAnomaly(history *HistoryBuffer[GeometryRatios]) float64 {
	if history.Len() < constants.GeometryMinSamples {
		return 0
	}
	ratios := make([]float64, 0, history.Len())
	for _, sample := range history.Values() {
		ratios = append(ratios, sample.WidthHeightRatio)
	}
	return clip(1.0-stdDev(ratios)/constants.GeometryStdDevReference, 0, 1)
}
