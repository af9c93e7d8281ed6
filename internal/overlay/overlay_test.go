package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gocv.io/x/gocv"

	"github.com/zsiec/lens/internal/pipeline"
)

func TestFormatLabel(t *testing.T) {
	tests := []struct {
		name       string
		label      string
		confidence float32
		want       string
	}{
		{"rounds to one decimal", "person", 0.876, "person 87.6%"},
		{"full confidence", "car", 1.0, "car 100.0%"},
		{"low confidence", "dog", 0.254, "dog 25.4%"},
		{"multi word label", "traffic light", 0.5, "traffic light 50.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLabel(tt.label, tt.confidence))
		})
	}
}

func TestFormatStats(t *testing.T) {
	assert.Equal(t, "FPS: 29.7  Frame: 1", FormatStats(29.7, 1))
	assert.Equal(t, "FPS: 0.0  Frame: 12345", FormatStats(0, 12345))
	assert.Equal(t, "FPS: 30.0  Frame: 42", FormatStats(29.97, 42))
}

func TestDrawDetectionsMutatesDisplay(t *testing.T) {
	display := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer display.Close()

	before := display.Sum()

	r := NewRenderer()
	r.DrawDetections(&display, []pipeline.LabeledBox{
		{
			Box:        pipeline.ScaledBox{X1: 100, Y1: 100, X2: 300, Y2: 250},
			Label:      "person",
			Confidence: 0.9,
		},
	})

	assert.NotEqual(t, before, display.Sum(), "drawing should change pixel content")
}

func TestDrawDetectionsEmptyListIsNoop(t *testing.T) {
	display := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer display.Close()

	before := display.Sum()

	r := NewRenderer()
	r.DrawDetections(&display, nil)

	assert.Equal(t, before, display.Sum())
}

func TestDrawStatsMutatesDisplay(t *testing.T) {
	display := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer display.Close()

	before := display.Sum()

	r := NewRenderer()
	r.DrawStats(&display, 29.7, 3)

	assert.NotEqual(t, before, display.Sum())
}
