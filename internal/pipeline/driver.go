package pipeline

import (
	"sync/atomic"
	"time"

	"gocv.io/x/gocv"

	"github.com/zsiec/lens/internal/errors"
	"github.com/zsiec/lens/internal/logger"
	"github.com/zsiec/lens/internal/metrics"
)

// State is the driver's lifecycle phase.
type State int32

const (
	StateInitializing State = iota
	StateStreaming
	StateDraining
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateStreaming:
		return "streaming"
	case StateDraining:
		return "draining"
	case StateTerminated:
		return "terminated"
	}
	return "unknown"
}

// Driver owns the frame loop: it pulls frames, times each iteration,
// sequences the other components, and funnels every termination cause
// through a single drain path so resources are released exactly once.
// Strictly single-threaded; frames are processed one at a time in
// acquisition order.
type Driver struct {
	source   FrameSource
	pre      Preprocessor
	detector Detector
	renderer Renderer
	reporter Reporter
	sink     Sink // nil when the encoder could not be opened

	labelFor func(class int) string

	// Fixed for the run, read once during construction.
	frameW, frameH int
	modelW, modelH int

	frameCount uint64
	state      atomic.Int32

	logger logger.Logger
}

// Deps bundles the collaborators the driver sequences. Sink may be nil.
type Deps struct {
	Source   FrameSource
	Pre      Preprocessor
	Detector Detector
	Renderer Renderer
	Reporter Reporter
	Sink     Sink
	LabelFor func(class int) string
	Logger   logger.Logger
}

// NewDriver creates a driver and snapshots the run geometry from the
// already-opened source and detector.
func NewDriver(deps Deps) *Driver {
	d := &Driver{
		source:   deps.Source,
		pre:      deps.Pre,
		detector: deps.Detector,
		renderer: deps.Renderer,
		reporter: deps.Reporter,
		sink:     deps.Sink,
		labelFor: deps.LabelFor,
		logger:   deps.Logger,
		frameW:   deps.Source.Width(),
		frameH:   deps.Source.Height(),
		modelW:   deps.Detector.ModelWidth(),
		modelH:   deps.Detector.ModelHeight(),
	}
	d.state.Store(int32(StateInitializing))
	return d
}

// State returns the driver's current lifecycle phase.
func (d *Driver) State() State {
	return State(d.state.Load())
}

// FrameCount returns the number of frames acquired so far. It increases
// by exactly one per successfully acquired frame and is never reset
// within a run.
func (d *Driver) FrameCount() uint64 {
	return d.frameCount
}

func (d *Driver) setState(s State) {
	d.state.Store(int32(s))
	d.logger.WithField("state", s.String()).Debug("Pipeline state changed")
}

// Run executes the streaming loop until end-of-stream or a fatal
// inference error, then drains. It returns nil at normal end-of-stream.
func (d *Driver) Run() error {
	d.setState(StateStreaming)
	d.logger.WithFields(map[string]interface{}{
		"frame_size":  [2]int{d.frameW, d.frameH},
		"model_input": [2]int{d.modelW, d.modelH},
		"sink":        d.sink != nil,
	}).Info("Pipeline streaming")

	frame := gocv.NewMat()
	defer frame.Close()

	var runErr error

	for {
		start := time.Now()

		if ok := d.source.Next(&frame); !ok || frame.Empty() {
			d.reporter.Summary(d.frameCount)
			break
		}
		d.frameCount++

		if err := d.processFrame(frame, start); err != nil {
			runErr = err
			break
		}
	}

	d.drain(runErr)
	return runErr
}

// processFrame runs one full iteration: preprocess, infer, report, map,
// render, persist. Any returned error is fatal for the run.
func (d *Driver) processFrame(frame gocv.Mat, start time.Time) error {
	// Overlays go onto a separate display copy; the decoded frame is
	// never mutated in place.
	display := frame.Clone()
	defer display.Close()

	input, err := d.pre.Prepare(frame)
	if err != nil {
		return errors.WrapInternalError(err, "failed to prepare detector input")
	}

	inferStart := time.Now()
	dets, err := d.detector.Detect(input)
	if err != nil {
		return errors.WrapInferenceError(err, d.frameCount)
	}
	metrics.ObserveInference(time.Since(inferStart))

	// Report the raw model-space geometry before any rescaling, keeping
	// the console output aligned with what the model actually emitted.
	d.reporter.Report(d.frameCount, dets)

	scaleX, scaleY := ScaleFactors(d.frameW, d.frameH, d.modelW, d.modelH)
	boxes := make([]LabeledBox, 0, len(dets))
	for _, det := range dets {
		boxes = append(boxes, LabeledBox{
			Box:        MapBox(det.Box, scaleX, scaleY, d.frameW, d.frameH),
			Label:      d.labelFor(det.Class),
			Confidence: det.Confidence,
		})
	}
	d.renderer.DrawDetections(&display, boxes)

	// Instantaneous rate over the work done for this frame so far; the
	// value is burned into the same frame it measures. Noisy on purpose,
	// no smoothing.
	elapsed := time.Since(start)
	var fps float64
	if elapsed > 0 {
		fps = float64(time.Second) / float64(elapsed)
	}
	d.renderer.DrawStats(&display, fps, d.frameCount)

	metrics.FrameProcessed(len(dets), elapsed)

	if d.sink != nil {
		err := d.sink.Write(display)
		metrics.SinkWrite(err)
		if err != nil {
			d.logger.WithError(err).WithField("frame", d.frameCount).Warn("Failed to write annotated frame")
		}
	}

	return nil
}

// drain is the single unconditional cleanup path. It runs for normal
// end-of-stream and for fatal errors alike, releasing resources in
// reverse acquisition order: sink, detector, source.
func (d *Driver) drain(runErr error) {
	d.setState(StateDraining)

	if runErr != nil {
		d.logger.WithError(runErr).WithField("frames", d.frameCount).Warn("Pipeline draining after error")
	} else {
		d.logger.WithField("frames", d.frameCount).Info("Pipeline draining at end of stream")
	}

	if d.sink != nil {
		if err := d.sink.Close(); err != nil {
			d.logger.WithError(err).Error("Failed to close output sink")
		} else {
			d.logger.WithField("path", d.sink.Path()).Info("Annotated video saved")
		}
	}

	if err := d.detector.Close(); err != nil {
		d.logger.WithError(err).Error("Failed to release detector")
	}

	if err := d.source.Close(); err != nil {
		d.logger.WithError(err).Error("Failed to close frame source")
	}

	d.setState(StateTerminated)
}
