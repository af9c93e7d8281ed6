package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Pipeline throughput metrics
	framesProcessedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lens_frames_processed_total",
		Help: "Total frames pulled from the source and processed",
	})

	detectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lens_detections_total",
		Help: "Total object detections reported across all frames",
	})

	emptyFramesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lens_empty_frames_total",
		Help: "Frames where the detector reported no objects",
	})

	// Latency metrics
	inferenceDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lens_inference_duration_seconds",
		Help:    "Wall-clock duration of one detector invocation",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
	})

	frameDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lens_frame_duration_seconds",
		Help:    "Wall-clock duration of one full pipeline iteration",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	})

	// Sink metrics
	sinkWritesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lens_sink_writes_total",
		Help: "Annotated frames written to the output sink",
	})

	sinkErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lens_sink_errors_total",
		Help: "Failed writes to the output sink",
	})
)
