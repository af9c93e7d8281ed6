package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zsiec/lens/internal/config"
	"github.com/zsiec/lens/internal/detect"
	"github.com/zsiec/lens/internal/errors"
	"github.com/zsiec/lens/internal/logger"
	"github.com/zsiec/lens/internal/metrics"
	"github.com/zsiec/lens/internal/overlay"
	"github.com/zsiec/lens/internal/pipeline"
	"github.com/zsiec/lens/internal/report"
	"github.com/zsiec/lens/internal/sink"
	"github.com/zsiec/lens/internal/source"
	"github.com/zsiec/lens/pkg/version"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <model.rknn> <video-source>\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  <video-source> is a camera device number (e.g. 0) or a video file path\n\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "Path to configuration file (optional)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Usage = usage
	flag.Parse()

	if showVersion {
		fmt.Println(version.GetInfo().String())
		return errors.ExitCodeOK
	}

	// Argument validation happens before any resource is acquired.
	if flag.NArg() != 2 {
		usage()
		return errors.ExitCodeUsage
	}
	modelPath := flag.Arg(0)
	sourceArg := flag.Arg(1)

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return errors.ExitCodeFailure
	}

	logrusLog, err := logger.New(&cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return errors.ExitCodeFailure
	}

	runID := logger.NewRunID()
	log := logger.NewLogrusAdapter(logger.WithRun(logrusLog, runID))
	handler := errors.NewErrorHandler(logrusLog)

	log.WithFields(map[string]interface{}{
		"version": version.GetInfo().Short(),
		"model":   modelPath,
		"source":  sourceArg,
	}).Info("Starting Lens annotation pipeline")

	if cfg.Debug.Enabled {
		go metrics.StartServer(cfg.Debug, log.WithField("component", "metrics"))
	}

	labels := detect.DefaultLabels()
	if cfg.Detector.LabelsFile != "" {
		labels, err = detect.LoadLabels(cfg.Detector.LabelsFile)
		if err != nil {
			return handler.HandleError(errors.WrapModelInitError(err, modelPath))
		}
	}

	detector, err := detect.NewDetector(modelPath, &cfg.Detector, log.WithField("component", "detector"))
	if err != nil {
		return handler.HandleError(errors.WrapModelInitError(err, modelPath))
	}

	desc := source.ParseDescriptor(sourceArg)
	capture, err := source.Open(desc, cfg.Video.DefaultFPS, log.WithField("component", "source"))
	if err != nil {
		// The detector is the only resource held at this point.
		if cerr := detector.Close(); cerr != nil {
			log.WithError(cerr).Error("Failed to release detector")
		}
		return handler.HandleError(errors.WrapSourceOpenError(err, desc.String()))
	}

	// Sink failure degrades to a run without persistence, warned once
	// at open time.
	var pipelineSink pipeline.Sink
	if w, ok := sink.Open(cfg.Video.OutputPath, cfg.Video.FourCC, capture.FPS(),
		capture.Width(), capture.Height(), log.WithField("component", "sink")); ok {
		pipelineSink = w
	}

	driver := pipeline.NewDriver(pipeline.Deps{
		Source:   capture,
		Pre:      detector,
		Detector: detector,
		Renderer: overlay.NewRenderer(),
		Reporter: report.New(os.Stdout, labels.LabelFor),
		Sink:     pipelineSink,
		LabelFor: labels.LabelFor,
		Logger:   log.WithField("component", "pipeline"),
	})

	if err := driver.Run(); err != nil {
		return handler.HandleError(err)
	}

	log.WithField("frames", driver.FrameCount()).Info("Pipeline finished")
	return errors.ExitCodeOK
}
