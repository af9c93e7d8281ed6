// Package overlay draws detection annotations onto display frames.
package overlay

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/zsiec/lens/internal/pipeline"
)

var (
	boxColor   = color.RGBA{R: 0, G: 0, B: 255, A: 0}
	labelColor = color.RGBA{R: 0, G: 255, B: 0, A: 0}
	statsColor = color.RGBA{R: 255, G: 0, B: 0, A: 0}
)

const (
	boxThickness   = 3
	labelScale     = 0.8
	labelThickness = 2
	labelOffsetY   = 10
	statsScale     = 1.2
	statsThickness = 3
)

// statsOrigin anchors the FPS/frame counter line near the top-left corner.
var statsOrigin = image.Pt(10, 40)

// Renderer draws bounding boxes, class labels and the per-frame stats line.
// All drawing mutates the display frame in place; it never sees the
// detector's input buffer.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// DrawDetections draws a box and label for every detection. Boxes arrive
// already mapped and clamped to frame space, so coordinates are always
// within the frame.
func (r *Renderer) DrawDetections(display *gocv.Mat, boxes []pipeline.LabeledBox) {
	for _, b := range boxes {
		rect := image.Rect(b.Box.X1, b.Box.Y1, b.Box.X2, b.Box.Y2)
		gocv.Rectangle(display, rect, boxColor, boxThickness)

		text := FormatLabel(b.Label, b.Confidence)
		origin := image.Pt(b.Box.X1, b.Box.Y1-labelOffsetY)
		gocv.PutText(display, text, origin, gocv.FontHersheySimplex,
			labelScale, labelColor, labelThickness)
	}
}

// DrawStats draws the throughput line after the detection overlays, so it
// stays visible on top of any box in the corner region.
func (r *Renderer) DrawStats(display *gocv.Mat, fps float64, frame uint64) {
	gocv.PutText(display, FormatStats(fps, frame), statsOrigin,
		gocv.FontHersheySimplex, statsScale, statsColor, statsThickness)
}

// FormatLabel renders a class name with its confidence as a percentage.
func FormatLabel(label string, confidence float32) string {
	return fmt.Sprintf("%s %.1f%%", label, confidence*100)
}

// FormatStats renders the instantaneous FPS and 1-based frame counter.
func FormatStats(fps float64, frame uint64) string {
	return fmt.Sprintf("FPS: %.1f  Frame: %d", fps, frame)
}
