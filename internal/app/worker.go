package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/messaging/kafka"
	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/messaging/kafka/producer"
	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker drains the outbox table into Kafka until a shutdown signal
// arrives.
func RunWorker() error {
	logger := zap.L().Named("worker")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required for the outbox worker")
	}

	if err := connection.ConnectKafkaWithRetry(broker, 5); err != nil {
		return err
	}

	writer := producer.NewWriter(broker)
	defer writer.Close()

	outboxRepo := kafka.NewOutboxRepository(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(ctx, outboxRepo, writer, logger, 3*time.Second)

	logger.Info("outbox worker started", zap.String("broker", broker))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("outbox worker shutting down")
	cancel()
	return nil
}
