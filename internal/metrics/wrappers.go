package metrics

import (
	"time"
)

// FrameProcessed records one completed pipeline iteration.
func FrameProcessed(detections int, elapsed time.Duration) {
	framesProcessedTotal.Inc()
	detectionsTotal.Add(float64(detections))
	if detections == 0 {
		emptyFramesTotal.Inc()
	}
	frameDuration.Observe(elapsed.Seconds())
}

// ObserveInference records the duration of one detector invocation.
func ObserveInference(elapsed time.Duration) {
	inferenceDuration.Observe(elapsed.Seconds())
}

// SinkWrite records one attempted sink write.
func SinkWrite(err error) {
	if err != nil {
		sinkErrorsTotal.Inc()
		return
	}
	sinkWritesTotal.Inc()
}
