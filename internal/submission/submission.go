// Package submission accepts completed reports.
package submission

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/myrjola/reportdesk/internal/errors"
	"github.com/myrjola/reportdesk/internal/report"
)

// Receipt identifies an accepted submission.
type Receipt struct {
	ID          string
	SubmittedAt time.Time
}

// Service simulates a slow backend that records submitted reports in the log.
type Service struct {
	logger *slog.Logger
	delay  time.Duration
}

// New creates a Service that waits delay before accepting each report.
func New(logger *slog.Logger, delay time.Duration) *Service {
	return &Service{logger: logger, delay: delay}
}

// Submit waits for the configured delay and logs r with a new receipt id.
//
// It returns early with the context error when ctx is done before the delay has passed.
func (s *Service) Submit(ctx context.Context, r report.Report) (Receipt, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return Receipt{}, errors.Wrap(ctx.Err(), "wait for submission")
		case <-timer.C:
		}
	}

	receipt := Receipt{ID: uuid.NewString(), SubmittedAt: time.Now()}
	attrs := make([]any, 0, len(report.Fields()))
	for _, f := range report.Fields() {
		attrs = append(attrs, slog.String(string(f), r.Get(f)))
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "report submitted",
		slog.String("receipt", receipt.ID),
		slog.Group("report", attrs...),
	)
	return receipt, nil
}
