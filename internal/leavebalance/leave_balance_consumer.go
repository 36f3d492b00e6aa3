package leavebalance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/events"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EmployeeCreatedConsumer seeds balance rows for every leave type when a new
// employee is announced on the lifecycle topic.
type EmployeeCreatedConsumer struct {
	reader *kafka.Reader
	db     *sql.DB
	ledger Ledger
	logger *zap.Logger
}

func NewEmployeeCreatedConsumer(
	broker string,
	groupID string,
	db *sql.DB,
	ledger Ledger,
	logger ...*zap.Logger,
) *EmployeeCreatedConsumer {
	l := zap.L().Named("leavebalance.consumer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavebalance.consumer")
	}

	return &EmployeeCreatedConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        []string{broker},
			Topic:          events.EmployeeCreatedTopic,
			GroupID:        groupID,
			CommitInterval: time.Second,
			StartOffset:    kafka.FirstOffset,
		}),
		db:     db,
		ledger: ledger,
		logger: l,
	}
}

func (c *EmployeeCreatedConsumer) Start(ctx context.Context) {
	go func() {
		for {
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				c.logger.Error("consume employee_created failed", zap.Error(err))
				continue
			}

			var event events.EmployeeCreatedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				c.logger.Error("decode employee_created event failed", zap.Error(err))
				if commitErr := c.reader.CommitMessages(ctx, msg); commitErr != nil {
					c.logger.Error("commit invalid employee_created event failed", zap.Error(commitErr))
				}
				continue
			}

			year := balanceYearFor(event)

			created, err := c.seedBalances(ctx, event.EmployeeID, year)
			if err != nil {
				// Another consumer already seeded the same rows.
				if isUniqueBalanceViolation(err) {
					c.logger.Warn("leave balances already exist for event, skipping",
						zap.String("employee_id", event.EmployeeID),
						zap.Int("year", year),
					)
					if commitErr := c.reader.CommitMessages(ctx, msg); commitErr != nil {
						c.logger.Error("commit duplicate employee_created event failed", zap.Error(commitErr))
					}
					continue
				}

				c.logger.Error("seed leave balances failed",
					zap.String("employee_id", event.EmployeeID),
					zap.Int("year", year),
					zap.Error(err),
				)
				continue
			}

			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error("commit employee_created event failed", zap.Error(err))
				continue
			}

			c.logger.Info("leave balances seeded from employee_created event",
				zap.String("employee_id", event.EmployeeID),
				zap.Int("year", year),
				zap.Int64("created", created),
			)
		}
	}()
}

func (c *EmployeeCreatedConsumer) seedBalances(ctx context.Context, employeeID string, year int) (int64, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	created, err := c.ledger.WithTx(tx).EnsureForEmployee(ctx, employeeID, year)
	if err != nil {
		return 0, err
	}

	return created, tx.Commit()
}

// balanceYearFor prefers the hire date year so late-replayed events still seed
// the entitlement year the employee actually joined in.
func balanceYearFor(event events.EmployeeCreatedEvent) int {
	if hired, err := time.Parse("2006-01-02", event.HireDate); err == nil {
		return hired.Year()
	}
	return time.Now().UTC().Year()
}

func isUniqueBalanceViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_leave_balances_key"
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_leave_balances_key")
}
