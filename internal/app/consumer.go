package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-biztime/internal/bootstrap"
	"go-biztime/internal/config"
	"go-biztime/internal/events"
	"go-biztime/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const auditConsumerGroup = "go-biztime-audit"

// RunConsumer feeds the lifecycle topics into the audit log until SIGINT or
// SIGTERM.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		GroupID:        auditConsumerGroup,
		GroupTopics:    events.LifecycleTopics(),
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		consumer.ConsumeLifecycleEvents(ctx, reader, bootstrap.NewStdoutAuditLogger(), logger)
		close(done)
	}()

	<-ctx.Done()
	logger.Info("consumer shutting down")
	<-done

	return nil
}
