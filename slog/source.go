package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/icondeck"
)

// Ensure LoggingSource implements icondeck.Source.
var _ icondeck.Source = (*LoggingSource)(nil)

// LoggingSource wraps a discovery Source with debug logging.
type LoggingSource struct {
	next   icondeck.Source
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next icondeck.Source, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Name delegates to the wrapped source.
func (s *LoggingSource) Name() string {
	return s.next.Name()
}

// List delegates to the wrapped source and logs the operation.
func (s *LoggingSource) List(ctx context.Context, repo icondeck.Repo) (refs []icondeck.IconRef, err error) {
	defer func(begin time.Time) {
		s.logger.Info("discovery",
			"strategy", s.next.Name(),
			"count", len(refs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.List(ctx, repo)
}
