package leavebalance

import (
	"context"
	"database/sql"
	"errors"

	leavebalanceerrors "github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/leavebalance/errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Availability is the answer to "can this many days be taken?". Shortfall is
// only set when Valid is false so the caller can surface it.
type Availability struct {
	Valid     bool
	Available decimal.Decimal
	Shortfall decimal.Decimal
}

// Ledger is the only mutation path for balance rows. The leave request
// aggregate binds it to its own transaction via WithTx so every deduction or
// restoration commits (or rolls back) together with the request.
type Ledger interface {
	WithTx(tx *sql.Tx) Ledger
	Availability(ctx context.Context, employeeID, leaveTypeID string, year int, requested, addBack decimal.Decimal) (Availability, error)
	Deduct(ctx context.Context, employeeID, leaveTypeID string, year int, days decimal.Decimal) error
	Restore(ctx context.Context, employeeID, leaveTypeID string, year int, days decimal.Decimal) error
	BulkInitialize(ctx context.Context, leaveTypeID string, defaultDays decimal.Decimal, year int) (int64, error)
	EnsureForEmployee(ctx context.Context, employeeID string, year int) (int64, error)
}

type ledger struct {
	repo   Repository
	logger *zap.Logger
}

func NewLedger(repo Repository, logger ...*zap.Logger) Ledger {
	l := zap.L().Named("leavebalance.ledger")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavebalance.ledger")
	}
	return &ledger{repo: repo, logger: l}
}

func (l *ledger) WithTx(tx *sql.Tx) Ledger {
	return &ledger{repo: l.repo.WithTx(tx), logger: l.logger}
}

// validDays accepts positive amounts in half-day steps.
func validDays(days decimal.Decimal) bool {
	if !days.IsPositive() {
		return false
	}
	return days.Mul(decimal.NewFromInt(2)).IsInteger()
}

// Availability computes available = total - used (+ addBack). addBack is the
// amount already deducted by the request under edit, so a request being
// re-evaluated does not count against itself.
func (l *ledger) Availability(ctx context.Context, employeeID, leaveTypeID string, year int, requested, addBack decimal.Decimal) (Availability, error) {
	if !validDays(requested) {
		return Availability{}, leavebalanceerrors.ErrInvalidDays
	}

	b, err := l.repo.FindByKeyForUpdate(ctx, employeeID, leaveTypeID, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Availability{}, leavebalanceerrors.ErrBalanceNotFound
		}
		return Availability{}, err
	}

	available := b.RemainingDays().Add(addBack)
	if available.LessThan(requested) {
		return Availability{
			Valid:     false,
			Available: available,
			Shortfall: requested.Sub(available),
		}, nil
	}

	return Availability{Valid: true, Available: available}, nil
}

// Deduct adds to used_days under a row lock. A result that would exceed
// total_days means the caller skipped the availability check; that is an
// invariant violation and the surrounding transaction must roll back.
func (l *ledger) Deduct(ctx context.Context, employeeID, leaveTypeID string, year int, days decimal.Decimal) error {
	if !validDays(days) {
		return leavebalanceerrors.ErrInvalidDays
	}

	b, err := l.repo.FindByKeyForUpdate(ctx, employeeID, leaveTypeID, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leavebalanceerrors.ErrBalanceNotFound
		}
		return err
	}

	newUsed := b.UsedDays.Add(days)
	if newUsed.GreaterThan(b.TotalDays) {
		l.logger.Error("deduction would drive remaining days negative",
			zap.String("employee_id", employeeID),
			zap.String("leave_type_id", leaveTypeID),
			zap.Int("year", year),
			zap.String("used_days", b.UsedDays.String()),
			zap.String("total_days", b.TotalDays.String()),
			zap.String("deduct_days", days.String()),
		)
		return leavebalanceerrors.ErrLedgerInvariant
	}

	b.UsedDays = newUsed
	return l.repo.Save(ctx, b)
}

// Restore subtracts from used_days, flooring at zero. Restoration is
// inherently safe and always succeeds for an existing row.
func (l *ledger) Restore(ctx context.Context, employeeID, leaveTypeID string, year int, days decimal.Decimal) error {
	if !validDays(days) {
		return leavebalanceerrors.ErrInvalidDays
	}

	b, err := l.repo.FindByKeyForUpdate(ctx, employeeID, leaveTypeID, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leavebalanceerrors.ErrBalanceNotFound
		}
		return err
	}

	newUsed := b.UsedDays.Sub(days)
	if newUsed.IsNegative() {
		newUsed = decimal.Zero
	}

	b.UsedDays = newUsed
	return l.repo.Save(ctx, b)
}

func (l *ledger) BulkInitialize(ctx context.Context, leaveTypeID string, defaultDays decimal.Decimal, year int) (int64, error) {
	if defaultDays.IsNegative() {
		return 0, leavebalanceerrors.ErrInvalidDays
	}
	created, err := l.repo.CreateMissingForType(ctx, leaveTypeID, defaultDays, year)
	if err != nil {
		return 0, err
	}
	l.logger.Info("bulk initialized leave balances",
		zap.String("leave_type_id", leaveTypeID),
		zap.Int("year", year),
		zap.Int64("created", created),
	)
	return created, nil
}

func (l *ledger) EnsureForEmployee(ctx context.Context, employeeID string, year int) (int64, error) {
	return l.repo.CreateMissingForEmployee(ctx, employeeID, year)
}
