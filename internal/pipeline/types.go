package pipeline

import (
	"gocv.io/x/gocv"
)

// Box is a bounding box in model input space, in pixel units.
type Box struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Detection is one candidate object instance reported by the detector,
// with its box still in model input space.
type Detection struct {
	Class      int
	Box        Box
	Confidence float32
}

// ScaledBox is a detection box re-expressed in frame space and clamped to
// the frame bounds. Derived per detection per frame, never persisted.
type ScaledBox struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// LabeledBox pairs a frame-space box with the class label and confidence
// the overlay renderer draws next to it.
type LabeledBox struct {
	Box        ScaledBox
	Label      string
	Confidence float32
}

// FrameSource is a pull-based sequence of decoded frames. Next returns
// false exactly once, at end-of-stream; the handle is not restartable.
// Width, Height and FPS are read once after opening and stay fixed for
// the stream's lifetime.
type FrameSource interface {
	Next(dst *gocv.Mat) bool
	Width() int
	Height() int
	FPS() float64
	Close() error
}

// Preprocessor converts a decoded frame into the detector's input geometry
// and color layout. The returned Mat is a scratch buffer owned by the
// Preprocessor, valid until the next Prepare call; the source frame is
// never mutated.
type Preprocessor interface {
	Prepare(frame gocv.Mat) (gocv.Mat, error)
}

// Detector runs object detection over a prepared input buffer. Called
// exactly once per frame, synchronously. An error is fatal for the run;
// an empty detection list is a normal result.
type Detector interface {
	ModelWidth() int
	ModelHeight() int
	Detect(input gocv.Mat) ([]Detection, error)
	Close() error
}

// Renderer draws annotation overlays onto the display copy of a frame.
type Renderer interface {
	DrawDetections(display *gocv.Mat, boxes []LabeledBox)
	DrawStats(display *gocv.Mat, fps float64, frame uint64)
}

// Reporter emits the per-frame textual detection report. Boxes are
// reported in model input space, not frame space.
type Reporter interface {
	Report(frame uint64, detections []Detection)
	Summary(total uint64)
}

// Sink persists annotated frames. Its absence degrades persistence only;
// the driver holds a nil Sink when the encoder could not be opened.
type Sink interface {
	Write(display gocv.Mat) error
	Path() string
	Close() error
}
