package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-ponto/internal/dailysummary"
	summaryerrors "go-ponto/internal/dailysummary/errors"
	"go-ponto/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

const (
	defaultRetryDelay = time.Second
	maxRetryDelay     = 30 * time.Second
)

// ConsumeAttendanceRecorded projects attendance_recorded events into daily
// summaries until ctx is cancelled. A message that fails to apply is retried
// with backoff and the reader does not move past it; undecodable messages
// are committed and dropped.
func ConsumeAttendanceRecorded(
	ctx context.Context,
	reader MessageReader,
	summaries dailysummary.Service,
	logger *zap.Logger,
	retryDelay time.Duration,
) {
	if retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}
	log := logger.Named("kafka.consumer.attendance_recorded")
	log.Info("attendance recorded consumer started")

	fetchBackoff := retryDelay
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance recorded consumer stopped")
				return
			}
			log.Error("fetch attendance message failed", zap.Duration("retry_in", fetchBackoff), zap.Error(err))
			if !sleep(ctx, fetchBackoff) {
				log.Info("attendance recorded consumer stopped")
				return
			}
			fetchBackoff = nextDelay(fetchBackoff)
			continue
		}
		fetchBackoff = retryDelay

		if !applyWithRetry(ctx, msg, summaries, log, retryDelay) {
			log.Info("attendance recorded consumer stopped")
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendance message failed", zap.Int64("offset", msg.Offset), zap.Error(err))
			continue
		}

		log.Debug("daily summary updated",
			zap.String("key", string(msg.Key)),
			zap.Int64("offset", msg.Offset),
		)
	}
}

// applyWithRetry returns false only when ctx ends before msg is settled.
// Poison messages count as settled.
func applyWithRetry(
	ctx context.Context,
	msg kafkago.Message,
	summaries dailysummary.Service,
	log *zap.Logger,
	delay time.Duration,
) bool {
	for attempt := 1; ; attempt++ {
		err := HandleMessage(ctx, msg, summaries)
		if err == nil {
			return true
		}
		if isPoison(err) {
			log.Error("dropping undecodable attendance message",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			return true
		}

		log.Error("apply attendance event failed",
			zap.Int64("offset", msg.Offset),
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", delay),
			zap.Error(err),
		)
		if !sleep(ctx, delay) {
			return false
		}
		delay = nextDelay(delay)
	}
}

func nextDelay(d time.Duration) time.Duration {
	d *= 2
	if d > maxRetryDelay {
		return maxRetryDelay
	}
	return d
}

func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

var errDecode = errors.New("decode attendance_recorded event")

// HandleMessage decodes one message and applies it.
func HandleMessage(ctx context.Context, msg kafkago.Message, summaries dailysummary.Service) error {
	var event events.AttendanceRecordedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return errors.Join(errDecode, err)
	}
	if event.EventType != "" && event.EventType != events.EventAttendanceRecorded {
		return nil
	}
	return summaries.Apply(ctx, event)
}

func isPoison(err error) bool {
	return errors.Is(err, errDecode) || errors.Is(err, summaryerrors.ErrInvalidEvent)
}
