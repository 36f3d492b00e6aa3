package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/leavebalance"
	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/shared/connection"

	"go.uber.org/zap"
)

const balanceSeederGroupID = "hrms-leave-balance-seeder"

// RunConsumer seeds leave balances for newly created employees by consuming
// their lifecycle events.
func RunConsumer() error {
	logger := zap.L().Named("consumer")

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
		return fmt.Errorf("KAFKA_BROKER is required for the balance seeder")
	}

	if err := connection.ConnectKafkaWithRetry(broker, 5); err != nil {
		return err
	}

	balanceRepo := leavebalance.NewRepository(gormDB)
	ledger := leavebalance.NewLedger(balanceRepo)

	consumer := leavebalance.NewEmployeeCreatedConsumer(broker, balanceSeederGroupID, db, ledger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer.Start(ctx)
	logger.Info("balance seeder started", zap.String("broker", broker), zap.String("group_id", balanceSeederGroupID))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("balance seeder shutting down")
	cancel()
	return nil
}
