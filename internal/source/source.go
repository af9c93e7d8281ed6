package source

import (
	"fmt"
	"strconv"
	"unicode"

	"gocv.io/x/gocv"

	"github.com/zsiec/lens/internal/logger"
)

// Kind discriminates how a source descriptor is opened.
type Kind int

const (
	KindDevice Kind = iota
	KindFile
)

// Descriptor is the resolved video source: a capture device index or a
// container file path. Resolved once at startup, never re-evaluated per
// frame.
type Descriptor struct {
	Kind   Kind
	Device int
	Path   string
}

// ParseDescriptor resolves the command-line source argument. A single
// digit selects a capture device; anything else is treated as a path the
// demuxer understands.
func ParseDescriptor(s string) Descriptor {
	if len(s) == 1 && unicode.IsDigit(rune(s[0])) {
		idx, _ := strconv.Atoi(s)
		return Descriptor{Kind: KindDevice, Device: idx}
	}
	return Descriptor{Kind: KindFile, Path: s}
}

func (d Descriptor) String() string {
	if d.Kind == KindDevice {
		return fmt.Sprintf("device:%d", d.Device)
	}
	return d.Path
}

// Capture wraps a gocv.VideoCapture with the stream geometry read once
// after opening. It holds exclusive access to the device or file until
// closed.
type Capture struct {
	cap    *gocv.VideoCapture
	width  int
	height int
	fps    float64
}

// Open acquires the video source. The reported width, height and frame
// rate are read once here and stay immutable for the capture's lifetime;
// a non-positive reported rate falls back to defaultFPS.
func Open(desc Descriptor, defaultFPS float64, log logger.Logger) (*Capture, error) {
	var (
		vc  *gocv.VideoCapture
		err error
	)

	switch desc.Kind {
	case KindDevice:
		// V4L2 is how local camera devices are addressed on the target
		// boards.
		vc, err = gocv.OpenVideoCaptureWithAPI(desc.Device, gocv.VideoCaptureV4L2)
	default:
		vc, err = gocv.OpenVideoCapture(desc.Path)
	}
	if err != nil {
		return nil, err
	}

	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("video source %s reported closed after open", desc)
	}

	c := &Capture{
		cap:    vc,
		width:  int(vc.Get(gocv.VideoCaptureFrameWidth)),
		height: int(vc.Get(gocv.VideoCaptureFrameHeight)),
		fps:    effectiveFPS(vc.Get(gocv.VideoCaptureFPS), defaultFPS),
	}

	log.WithFields(map[string]interface{}{
		"source": desc.String(),
		"width":  c.width,
		"height": c.height,
		"fps":    c.fps,
	}).Info("Video source opened")

	return c, nil
}

// effectiveFPS substitutes the fallback rate when the backend reports
// none. Cameras frequently report 0 or -1.
func effectiveFPS(reported, fallback float64) float64 {
	if reported <= 0 {
		return fallback
	}
	return reported
}

// Next reads the next decoded frame into dst. Returns false at
// end-of-stream or on a read failure; the stream is not restartable.
func (c *Capture) Next(dst *gocv.Mat) bool {
	if ok := c.cap.Read(dst); !ok {
		return false
	}
	return !dst.Empty()
}

func (c *Capture) Width() int   { return c.width }
func (c *Capture) Height() int  { return c.height }
func (c *Capture) FPS() float64 { return c.fps }

// Close releases the device or file handle.
func (c *Capture) Close() error {
	return c.cap.Close()
}
