package detect

import (
	"fmt"
	"image"

	"github.com/swdee/go-rknnlite"
	"github.com/swdee/go-rknnlite/postprocess"
	"github.com/swdee/go-rknnlite/preprocess"
	"gocv.io/x/gocv"

	"github.com/zsiec/lens/internal/config"
	"github.com/zsiec/lens/internal/logger"
	"github.com/zsiec/lens/internal/pipeline"
)

// Detector adapts an RKNN-compiled YOLOv8 model to the pipeline's
// detector boundary. It owns the NPU runtime for the whole run and
// implements both the Preprocessor and Detector interfaces.
type Detector struct {
	rt        *rknnlite.Runtime
	processor *postprocess.YOLOv8
	resizer   *preprocess.Resizer

	modelW int
	modelH int

	// Scratch buffers reused across iterations: allocation policy is the
	// preprocessor's own, the pipeline only sees the returned view.
	resized gocv.Mat
	rgb     gocv.Mat

	logger logger.Logger
}

// NewDetector loads the model and queries its input geometry. The config
// geometry is only a fallback for models that do not report input tensor
// dimensions.
func NewDetector(modelPath string, cfg *config.DetectorConfig, log logger.Logger) (*Detector, error) {
	// Pin to the platform's fast cores; inference runs on the NPU but the
	// pre/post processing is CPU-bound.
	if err := rknnlite.SetCPUAffinityByPlatform(cfg.Platform, rknnlite.FastCores); err != nil {
		log.WithError(err).Warn("Failed to set CPU affinity, continuing unpinned")
	}

	rt, err := rknnlite.NewRuntimeByPlatform(cfg.Platform, modelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create RKNN runtime: %w", err)
	}

	// Leave output tensors quantized; the post-processor dequantizes.
	rt.SetWantFloat(false)

	modelW, modelH := cfg.InputWidth, cfg.InputHeight
	if attrs := rt.InputAttrs(); len(attrs) > 0 {
		// NHWC input tensor: Dims[1] is height, Dims[2] is width.
		if h, w := int(attrs[0].Dims[1]), int(attrs[0].Dims[2]); h > 0 && w > 0 {
			modelH, modelW = h, w
		}
	}

	params := postprocess.YOLOv8COCOParams()
	params.BoxThreshold = cfg.BoxThreshold
	params.NMSThreshold = cfg.NMSThreshold
	params.MaxObjectNumber = cfg.MaxObjects

	d := &Detector{
		rt:        rt,
		processor: postprocess.NewYOLOv8(params),
		// The pipeline hands Detect an already-resized buffer, so the
		// post-processor's resizer is identity and decoded boxes stay in
		// model input space. Mapping to frame space is the pipeline's job.
		resizer: preprocess.NewResizer(modelW, modelH, modelW, modelH),
		modelW:  modelW,
		modelH:  modelH,
		resized: gocv.NewMat(),
		rgb:     gocv.NewMat(),
		logger:  log,
	}

	log.WithFields(map[string]interface{}{
		"model":       modelPath,
		"platform":    cfg.Platform,
		"model_input": [2]int{modelW, modelH},
		"max_objects": cfg.MaxObjects,
	}).Info("Detector initialized")

	return d, nil
}

// ModelWidth returns the fixed model input width.
func (d *Detector) ModelWidth() int { return d.modelW }

// ModelHeight returns the fixed model input height.
func (d *Detector) ModelHeight() int { return d.modelH }

// Prepare resizes the frame to the model geometry and converts the BGR
// capture layout to the RGB layout the model expects. The result is a
// scratch buffer reused across iterations; the source frame is never
// mutated. Identical input always produces identical pixel content.
func (d *Detector) Prepare(frame gocv.Mat) (gocv.Mat, error) {
	if frame.Empty() {
		return gocv.Mat{}, fmt.Errorf("cannot prepare empty frame")
	}

	gocv.Resize(frame, &d.resized, image.Pt(d.modelW, d.modelH), 0, 0, gocv.InterpolationLinear)
	gocv.CvtColor(d.resized, &d.rgb, gocv.ColorBGRToRGB)

	return d.rgb, nil
}

// Detect runs one synchronous inference over the prepared buffer and
// decodes the output tensors into a detection list in model input space.
// List order is the post-processor's emission order and is preserved
// downstream. An empty list is a normal result, not an error.
func (d *Detector) Detect(input gocv.Mat) ([]pipeline.Detection, error) {
	outputs, err := d.rt.Inference([]gocv.Mat{input})
	if err != nil {
		return nil, fmt.Errorf("runtime inference failed: %w", err)
	}

	result := d.processor.DetectObjects(outputs, d.resizer)

	if err := outputs.Free(); err != nil {
		d.logger.WithError(err).Warn("Failed to free inference outputs")
	}

	if result == nil {
		return nil, nil
	}

	raw := result.GetDetectResults()
	dets := make([]pipeline.Detection, 0, len(raw))
	for _, r := range raw {
		dets = append(dets, pipeline.Detection{
			Class: r.Class,
			Box: pipeline.Box{
				Left:   r.Box.Left,
				Top:    r.Box.Top,
				Right:  r.Box.Right,
				Bottom: r.Box.Bottom,
			},
			Confidence: r.Probability,
		})
	}

	return dets, nil
}

// Close releases the NPU runtime and the scratch buffers.
func (d *Detector) Close() error {
	d.resized.Close()
	d.rgb.Close()
	return d.rt.Close()
}
