// Package report emits the per-frame detection report on a text stream.
package report

import (
	"fmt"
	"io"

	"github.com/zsiec/lens/internal/pipeline"
)

// Reporter writes one block per frame listing every detection in model
// input space, plus an end-of-stream summary. Output goes to a single
// writer, stdout in the normal wiring, so the report can be piped or
// redirected independently of the logs on stderr.
type Reporter struct {
	w        io.Writer
	labelFor func(class int) string
}

func New(w io.Writer, labelFor func(class int) string) *Reporter {
	return &Reporter{w: w, labelFor: labelFor}
}

// Report prints the detections for one frame. Frame numbers are 1-based
// and coordinates are the detector's own, before mapping to frame space.
func (r *Reporter) Report(frame uint64, detections []pipeline.Detection) {
	fmt.Fprintf(r.w, "Frame %d detections (%d objects):\n", frame, len(detections))

	if len(detections) == 0 {
		fmt.Fprintf(r.w, "  no objects detected\n")
		return
	}

	for _, d := range detections {
		fmt.Fprintf(r.w, "  %s @ (%d %d %d %d) %.3f\n",
			r.labelFor(d.Class),
			d.Box.Left, d.Box.Top, d.Box.Right, d.Box.Bottom,
			d.Confidence)
	}
}

// Summary prints the total frame count after the stream ends.
func (r *Reporter) Summary(total uint64) {
	fmt.Fprintf(r.w, "End of video. Total processed frames: %d\n", total)
}
