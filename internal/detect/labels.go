package detect

import (
	"fmt"

	"github.com/swdee/go-rknnlite"
)

// cocoLabels are the 80 COCO class names in model training order, matching
// the class indices emitted by the stock YOLOv8 COCO models.
var cocoLabels = []string{
	"person", "bicycle", "car", "motorcycle", "airplane", "bus", "train",
	"truck", "boat", "traffic light", "fire hydrant", "stop sign",
	"parking meter", "bench", "bird", "cat", "dog", "horse", "sheep", "cow",
	"elephant", "bear", "zebra", "giraffe", "backpack", "umbrella", "handbag",
	"tie", "suitcase", "frisbee", "skis", "snowboard", "sports ball", "kite",
	"baseball bat", "baseball glove", "skateboard", "surfboard",
	"tennis racket", "bottle", "wine glass", "cup", "fork", "knife", "spoon",
	"bowl", "banana", "apple", "sandwich", "orange", "broccoli", "carrot",
	"hot dog", "pizza", "donut", "cake", "chair", "couch", "potted plant",
	"bed", "dining table", "toilet", "tv", "laptop", "mouse", "remote",
	"keyboard", "cell phone", "microwave", "oven", "toaster", "sink",
	"refrigerator", "book", "clock", "vase", "scissors", "teddy bear",
	"hair drier", "toothbrush",
}

// Labels maps detector class indices to human-readable names.
type Labels struct {
	names []string
}

// DefaultLabels returns the built-in COCO class names.
func DefaultLabels() *Labels {
	return &Labels{names: cocoLabels}
}

// LoadLabels reads one class name per line from the given file, for models
// trained on a different label set.
func LoadLabels(path string) (*Labels, error) {
	names, err := rknnlite.LoadLabels(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load labels from %s: %w", path, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("labels file %s is empty", path)
	}
	return &Labels{names: names}, nil
}

// LabelFor returns the name for a class index. Indices outside the label
// table get a synthetic name rather than a panic, so a model/label mismatch
// degrades to odd report text instead of taking the run down.
func (l *Labels) LabelFor(class int) string {
	if class < 0 || class >= len(l.names) {
		return fmt.Sprintf("class_%d", class)
	}
	return l.names[class]
}

// Count reports the number of known class names.
func (l *Labels) Count() int {
	return len(l.names)
}
