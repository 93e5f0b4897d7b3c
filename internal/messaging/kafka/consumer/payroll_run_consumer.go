package consumer

import (
	"context"
	"encoding/json"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/events"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/period"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// SnapshotRefresher re-derives the dashboard snapshot for one period from
// the live aggregates. Implemented by the dashboard service.
type SnapshotRefresher interface {
	Refresh(ctx context.Context, p period.Period) error
}

func ConsumePayrollRunCompleted(
	ctx context.Context,
	reader *kafkago.Reader,
	refresher SnapshotRefresher,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_run")
	log.Info("payroll run consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll run consumer stopped")
				return
			}
			log.Error("fetch payroll run message failed", zap.Error(err))
			continue
		}

		var event events.PayrollRunCompletedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll run event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		p := period.Period{Month: event.Month, Year: event.Year}
		if err := refresher.Refresh(ctx, p); err != nil {
			log.Error("refresh dashboard snapshot failed",
				zap.Int("month", event.Month),
				zap.Int("year", event.Year),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll run message failed", zap.Error(err))
			continue
		}

		log.Info("dashboard snapshot refreshed from payroll run",
			zap.Int("month", event.Month),
			zap.Int("year", event.Year),
		)
	}
}
