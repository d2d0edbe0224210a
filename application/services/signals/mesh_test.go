package signals

import (
	"veriface.io/application/constants"
	ltypes "veriface.io/infrastructure/landmark/types"
)

// newTestMesh builds a 468-point mesh with plausible facial geometry.
// eyeOpening is the vertical lid gap in pixels (eye width is 30, so
// EAR = eyeOpening/30); mouthGap is the lip separation in pixels.
func newTestMesh(eyeOpening float64, mouthGap float64) *ltypes.LandmarkSet {
	set := &ltypes.LandmarkSet{Points: make([]ltypes.Point, 468)}
	for i := range set.Points {
		set.Points[i] = ltypes.Point{X: float64(i%24) * 12, Y: float64(i/24) * 14}
	}

	placeEye := func(indices []int, cornerX float64) {
		half := eyeOpening / 2
		set.Points[indices[0]] = ltypes.Point{X: cornerX, Y: 100}
		set.Points[indices[3]] = ltypes.Point{X: cornerX + 30, Y: 100}
		set.Points[indices[1]] = ltypes.Point{X: cornerX + 10, Y: 100 - half}
		set.Points[indices[5]] = ltypes.Point{X: cornerX + 10, Y: 100 + half}
		set.Points[indices[2]] = ltypes.Point{X: cornerX + 20, Y: 100 - half}
		set.Points[indices[4]] = ltypes.Point{X: cornerX + 20, Y: 100 + half}
	}
	placeEye(constants.LeftEyeIndices, 190)
	placeEye(constants.RightEyeIndices, 100)

	set.Points[constants.MouthTopIndex] = ltypes.Point{X: 160, Y: 160}
	set.Points[constants.MouthBottomIndex] = ltypes.Point{X: 160, Y: 160 + mouthGap}
	set.Points[constants.NoseTipIndex] = ltypes.Point{X: 160, Y: 130}
	set.Points[constants.ChinIndex] = ltypes.Point{X: 160, Y: 200}
	set.Points[constants.LeftMouthCornerIndex] = ltypes.Point{X: 135, Y: 165}
	set.Points[constants.RightMouthCornerIdx] = ltypes.Point{X: 185, Y: 165}
	return set
}
