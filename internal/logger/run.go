package logger

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// NewRunID generates a short random identifier for a single pipeline run.
// Every log entry emitted during the run carries it, so overlapping or
// consecutive runs writing to the same log file stay distinguishable.
func NewRunID() string {
	return uuid.New().String()[:8]
}

// WithRun creates a logger entry tagged with the run identifier.
func WithRun(logger *logrus.Logger, runID string) *logrus.Entry {
	return logger.WithField("run_id", runID)
}
