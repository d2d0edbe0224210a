package landmark

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"

	"gocv.io/x/gocv"
	ltypes "veriface.io/infrastructure/landmark/types"
	"veriface.io/infrastructure/logger"
	"veriface.io/infrastructure/network"
)

// MeshProvider extracts a dense facial landmark mesh from a sidecar
// inference service. Landmarks come back normalized to [0, 1] and are
// scaled to frame pixel coordinates before use.
type MeshProvider struct {
	Network *network.NetworkController
}

type meshRequest struct {
	Image string `json:"image"`
}

type meshLandmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type meshResponse struct {
	FaceDetected bool           `json:"faceDetected"`
	Landmarks    []meshLandmark `json:"landmarks"`
	BoundingBox  *struct {
		X      int `json:"x"`
		Y      int `json:"y"`
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"boundingBox"`
}

func NewMeshProvider(baseURL string) *MeshProvider {
	return &MeshProvider{Network: network.NewNetworkController(baseURL)}
}

func (mp *MeshProvider) MeshCapable() bool { return true }

// ExtractLandmarks encodes the frame as JPEG and asks the mesh service
// for the full landmark set. A nil set with nil error means no face.
func (mp *MeshProvider) ExtractLandmarks(frame gocv.Mat) (*ltypes.LandmarkSet, error) {
	if frame.Empty() {
		return nil, nil
	}

	encoded, err := gocv.IMEncode(gocv.JPEGFileExt, frame)
	if err != nil {
		return nil, fmt.Errorf("error encoding frame for landmark extraction: %w", err)
	}
	defer encoded.Close()

	body := meshRequest{Image: base64.StdEncoding.EncodeToString(encoded.GetBytes())}
	response, statusCode, err := mp.Network.Post("/v1/landmarks", nil, body)
	if err != nil {
		return nil, fmt.Errorf("landmark service unreachable: %w", err)
	}
	if *statusCode != 200 {
		return nil, fmt.Errorf("landmark service returned status %d", *statusCode)
	}

	var parsed meshResponse
	if err := json.Unmarshal(*response, &parsed); err != nil {
		return nil, fmt.Errorf("error parsing landmark service response: %w", err)
	}
	if !parsed.FaceDetected || len(parsed.Landmarks) == 0 {
		return nil, nil
	}

	width := float64(frame.Cols())
	height := float64(frame.Rows())
	set := &ltypes.LandmarkSet{Points: make([]ltypes.Point, len(parsed.Landmarks))}
	for i, lm := range parsed.Landmarks {
		set.Points[i] = ltypes.Point{X: lm.X * width, Y: lm.Y * height, Z: lm.Z * width}
	}
	return set, nil
}

// DetectFaces derives the face rectangle from the extracted mesh. The
// mesh service is the source of truth, so a failed call reports no faces.
func (mp *MeshProvider) DetectFaces(frame gocv.Mat) []image.Rectangle {
	set, err := mp.ExtractLandmarks(frame)
	if err != nil {
		logger.Warning("face detection via landmark service failed", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil
	}
	if set == nil || set.Len() == 0 {
		return nil
	}
	box := set.BoundingBox(0, image.Rect(0, 0, frame.Cols(), frame.Rows()))
	return []image.Rectangle{box}
}
