// internal/app/poll_service.go
package app

import (
	"context"
	"fmt"

	"homework_notification_bot/internal/domain/homework"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// StatusFetcher retrieves the raw statuses payload for the window starting at cursor.
type StatusFetcher interface {
	Fetch(ctx context.Context, cursor homework.Cursor) (homework.RawPayload, error)
}

// StatusNotifier delivers student messages and operator alerts.
type StatusNotifier interface {
	Notify(message string) error
	Alert(cause error)
}

// PollService runs poll cycles and owns the resume cursor.
// It is not safe for concurrent use; the scheduler runs one cycle at a time.
type PollService struct {
	fetcher  StatusFetcher
	notifier StatusNotifier
	logger   *logrus.Entry
	cursor   homework.Cursor
}

func NewPollService(fetcher StatusFetcher, notifier StatusNotifier, start homework.Cursor, logger *logrus.Entry) *PollService {
	return &PollService{
		fetcher:  fetcher,
		notifier: notifier,
		logger:   logger,
		cursor:   start,
	}
}

// Cursor returns the lower bound of the next fetch window.
func (s *PollService) Cursor() homework.Cursor {
	return s.cursor
}

// RunCycle performs one fetch, validate and notify pass.
// On a fetch or validation failure the operator is alerted once, the cursor is
// kept so the next cycle retries the same window, and the failure is returned.
// A failed student notification does not fail the cycle.
func (s *PollService) RunCycle(ctx context.Context) error {
	logCtx := s.logger.WithFields(logrus.Fields{
		"cycle_id": uuid.NewString(),
		"cursor":   s.cursor,
	})
	logCtx.Debug("Poll cycle started")

	result, err := s.check(ctx)
	if err != nil {
		logCtx.WithError(err).WithField("category", homework.KindOf(err)).Error("Poll cycle failed, cursor kept")
		s.notifier.Alert(err)
		return err
	}

	switch r := result.(type) {
	case homework.Unchanged:
		logCtx.Info("Homework status not changed")
	case homework.Changed:
		logCtx = logCtx.WithFields(logrus.Fields{
			"homework": r.Record.Name,
			"status":   r.Record.Status,
		})
		logCtx.Info("Homework status changed")
		if err := s.notifier.Notify(FormatStatus(r.Record)); err != nil {
			logCtx.WithError(err).Warn("Status change was not delivered")
		}
	default:
		err := fmt.Errorf("unexpected poll result %T", result)
		logCtx.WithError(err).Error("Poll cycle failed, cursor kept")
		s.notifier.Alert(err)
		return err
	}

	s.advance(result.NextCursor(), logCtx)
	return nil
}

func (s *PollService) check(ctx context.Context) (homework.PollResult, error) {
	payload, err := s.fetcher.Fetch(ctx, s.cursor)
	if err != nil {
		return nil, fmt.Errorf("fetch homework statuses: %w", err)
	}
	result, err := ValidateResponse(payload)
	if err != nil {
		return nil, fmt.Errorf("validate homework statuses: %w", err)
	}
	return result, nil
}

func (s *PollService) advance(next homework.Cursor, logCtx *logrus.Entry) {
	if next < s.cursor {
		logCtx.WithField("next_cursor", next).Warn("Server reported current_date earlier than cursor")
	}
	s.cursor = next
	logCtx.WithField("next_cursor", next).Debug("Cursor advanced")
}
