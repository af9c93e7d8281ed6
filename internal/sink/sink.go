// Package sink encodes annotated frames into a video file.
package sink

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/zsiec/lens/internal/logger"
)

// Writer wraps a video encoder opened with fixed geometry and frame rate.
// Every frame written must match the geometry given at open time.
type Writer struct {
	vw     *gocv.VideoWriter
	path   string
	logger logger.Logger
}

// Open creates the encoder for the given output path. Failure to open is
// reported, not returned: the pipeline runs without persistence when the
// encoder is unavailable, so callers get (nil, false) and degrade.
func Open(path, fourcc string, fps float64, width, height int, log logger.Logger) (*Writer, bool) {
	vw, err := gocv.VideoWriterFile(path, fourcc, fps, width, height, true)
	if err != nil || !vw.IsOpened() {
		if vw != nil {
			vw.Close()
		}
		log.WithFields(map[string]interface{}{
			"path":   path,
			"fourcc": fourcc,
		}).Warn("Could not open video writer, annotated video will not be saved")
		return nil, false
	}

	log.WithFields(map[string]interface{}{
		"path":   path,
		"fourcc": fourcc,
		"fps":    fps,
		"width":  width,
		"height": height,
	}).Info("Saving inference results to video file")

	return &Writer{vw: vw, path: path, logger: log}, true
}

// Write encodes one annotated frame.
func (w *Writer) Write(display gocv.Mat) error {
	if err := w.vw.Write(display); err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	return nil
}

// Path returns the output file path.
func (w *Writer) Path() string {
	return w.path
}

// Close finalizes the container so the file is playable.
func (w *Writer) Close() error {
	return w.vw.Close()
}
