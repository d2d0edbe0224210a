package video

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"time"

	"gocv.io/x/gocv"
	"veriface.io/application/constants"
	"veriface.io/infrastructure/logger"
)

var (
	ErrVideoUnreadable = errors.New("video file could not be opened")
	ErrVideoTooShort   = errors.New("video is shorter than the minimum verification duration")
	ErrVideoTooLong    = errors.New("video exceeds the maximum verification duration")
	ErrResolutionLow   = errors.New("video resolution is below the minimum")
	ErrFrameRateLow    = errors.New("video frame rate is below the minimum")
	ErrTooFewFrames    = errors.New("video contains too few frames for analysis")
)

// Metadata describes an uploaded verification video.
type Metadata struct {
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	FPS        float64       `json:"fps"`
	FrameCount int           `json:"frameCount"`
	Duration   time.Duration `json:"duration"`
}

// Probe opens the video and reads its container metadata without
// decoding frames.
func Probe(path string) (*Metadata, error) {
	capture, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVideoUnreadable, err)
	}
	defer capture.Close()

	meta := &Metadata{
		Width:      int(capture.Get(gocv.VideoCaptureFrameWidth)),
		Height:     int(capture.Get(gocv.VideoCaptureFrameHeight)),
		FPS:        capture.Get(gocv.VideoCaptureFPS),
		FrameCount: int(capture.Get(gocv.VideoCaptureFrameCount)),
	}
	if meta.FPS > 0 {
		meta.Duration = time.Duration(float64(meta.FrameCount) / meta.FPS * float64(time.Second))
	}
	return meta, nil
}

// Validate enforces the upload constraints before any frame is analyzed.
func Validate(meta *Metadata) error {
	if meta.Duration < constants.VideoMinDuration {
		return fmt.Errorf("%w: got %s", ErrVideoTooShort, meta.Duration)
	}
	if meta.Duration > constants.VideoMaxDuration {
		return fmt.Errorf("%w: got %s", ErrVideoTooLong, meta.Duration)
	}
	if meta.Width < constants.VideoMinWidth || meta.Height < constants.VideoMinHeight {
		return fmt.Errorf("%w: got %dx%d", ErrResolutionLow, meta.Width, meta.Height)
	}
	if meta.FPS < constants.VideoMinFPS {
		return fmt.Errorf("%w: got %.1f fps", ErrFrameRateLow, meta.FPS)
	}
	if meta.FrameCount < constants.VideoMinFrameCount {
		return fmt.Errorf("%w: got %d", ErrTooFewFrames, meta.FrameCount)
	}
	return nil
}

// ExtractFrames decodes the video and hands each normalized frame to the
// callback in order. The callback owns nothing; the frame Mat is reused
// and closed by the extractor after each call. Returning a non-nil error
// stops extraction.
func ExtractFrames(path string, sampleEvery int, process func(index int, frame gocv.Mat) error) (int, error) {
	if sampleEvery < 1 {
		sampleEvery = 1
	}
	capture, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrVideoUnreadable, err)
	}
	defer capture.Close()

	raw := gocv.NewMat()
	defer raw.Close()

	processed := 0
	for index := 0; ; index++ {
		if ok := capture.Read(&raw); !ok || raw.Empty() {
			break
		}
		if index%sampleEvery != 0 {
			continue
		}
		normalized := NormalizeFrame(raw)
		err := process(processed, normalized)
		normalized.Close()
		if err != nil {
			return processed, err
		}
		processed++
	}
	if processed == 0 {
		return 0, ErrTooFewFrames
	}
	return processed, nil
}

// NormalizeFrame resizes to the target analysis resolution while keeping
// aspect ratio, padding the remainder with black borders. Callers own the
// returned Mat.
func NormalizeFrame(frame gocv.Mat) gocv.Mat {
	targetW := constants.TargetFrameWidth
	targetH := constants.TargetFrameHeight

	scaleW := float64(targetW) / float64(frame.Cols())
	scaleH := float64(targetH) / float64(frame.Rows())
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	newW := int(float64(frame.Cols()) * scale)
	newH := int(float64(frame.Rows()) * scale)

	resized := gocv.NewMat()
	gocv.Resize(frame, &resized, image.Pt(newW, newH), 0, 0, gocv.InterpolationArea)

	if newW == targetW && newH == targetH {
		return resized
	}

	padX := targetW - newW
	padY := targetH - newH
	padded := gocv.NewMat()
	gocv.CopyMakeBorder(resized, &padded,
		padY/2, padY-padY/2,
		padX/2, padX-padX/2,
		gocv.BorderConstant, color.RGBA{})
	resized.Close()
	return padded
}

// EnhanceFrame applies local contrast enhancement and edge-preserving
// denoising, used on low-quality uploads before landmark extraction.
// Callers own the returned Mat.
func EnhanceFrame(frame gocv.Mat) gocv.Mat {
	gray := gocv.NewMat()
	if frame.Channels() > 1 {
		gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)
	} else {
		frame.CopyTo(&gray)
	}

	clahe := gocv.NewCLAHE()
	enhanced := gocv.NewMat()
	clahe.Apply(gray, &enhanced)
	clahe.Close()
	gray.Close()

	filtered := gocv.NewMat()
	gocv.BilateralFilter(enhanced, &filtered, 9, 75, 75)
	enhanced.Close()

	return filtered
}

// CleanupTempVideo removes an uploaded video after processing, logging
// rather than failing when the file is already gone.
func CleanupTempVideo(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Warning("failed to remove temporary video file", logger.LoggerOptions{
			Key:  "path",
			Data: path,
		}, logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
	}
}
