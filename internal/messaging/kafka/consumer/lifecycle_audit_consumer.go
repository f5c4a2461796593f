package consumer

import (
	"context"
	"encoding/json"
	"strings"

	"go-biztime/internal/bootstrap"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the subset of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type lifecycleEnvelope struct {
	EventType string `json:"event_type"`
}

// ConsumeLifecycleEvents writes every company, invoice and industry
// lifecycle event to the audit log. Undecodable messages are committed and
// skipped so they never block the partition.
func ConsumeLifecycleEvents(
	ctx context.Context,
	reader MessageReader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.lifecycle_audit")
	log.Info("lifecycle audit consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("lifecycle audit consumer stopped")
				return
			}
			log.Error("fetch lifecycle message failed", zap.Error(err))
			continue
		}

		var env lifecycleEnvelope
		var payload map[string]any
		if err := json.Unmarshal(msg.Value, &env); err != nil || env.EventType == "" {
			log.Error("decode lifecycle event failed",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}
		_ = json.Unmarshal(msg.Value, &payload)

		auditLogger.Log(ctx, bootstrap.AuditLog{
			Action:  auditAction(env.EventType),
			Message: "lifecycle event received",
			Meta: map[string]any{
				"topic":     msg.Topic,
				"key":       string(msg.Key),
				"partition": msg.Partition,
				"offset":    msg.Offset,
				"event":     payload,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit lifecycle message failed", zap.Error(err))
			continue
		}
	}
}

// auditAction turns "invoice.created" into "INVOICE_CREATED".
func auditAction(eventType string) string {
	return strings.ToUpper(strings.ReplaceAll(eventType, ".", "_"))
}
