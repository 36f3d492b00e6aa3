package leavebalance

import (
	"context"
	"database/sql"

	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/shared/gormtx"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, b *LeaveBalance) error
	FindByKey(ctx context.Context, employeeID, leaveTypeID string, year int) (*LeaveBalance, error)
	FindByKeyForUpdate(ctx context.Context, employeeID, leaveTypeID string, year int) (*LeaveBalance, error)
	FindAllByEmployee(ctx context.Context, employeeID string, year int) ([]LeaveBalance, error)
	Save(ctx context.Context, b *LeaveBalance) error
	FindTypeDefault(ctx context.Context, leaveTypeID string) (decimal.Decimal, error)
	CreateMissingForType(ctx context.Context, leaveTypeID string, defaultDays decimal.Decimal, year int) (int64, error)
	CreateMissingForEmployee(ctx context.Context, employeeID string, year int) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return gormtx.Conn(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, b *LeaveBalance) error {
	return r.conn(ctx).Create(b).Error
}

func (r *repository) FindByKey(ctx context.Context, employeeID, leaveTypeID string, year int) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Where("leave_type_id = ?", leaveTypeID).
		Where("year = ?", year).
		First(&b).Error
	return &b, err
}

// FindByKeyForUpdate takes a row lock so concurrent approvals against the
// same balance are serialized by the database.
func (r *repository) FindByKeyForUpdate(ctx context.Context, employeeID, leaveTypeID string, year int) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("employee_id = ?", employeeID).
		Where("leave_type_id = ?", leaveTypeID).
		Where("year = ?", year).
		First(&b).Error
	return &b, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string, year int) ([]LeaveBalance, error) {
	var balances []LeaveBalance
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Where("year = ?", year).
		Order("leave_type_id ASC").
		Find(&balances).Error
	return balances, err
}

func (r *repository) Save(ctx context.Context, b *LeaveBalance) error {
	return r.conn(ctx).Save(b).Error
}

func (r *repository) FindTypeDefault(ctx context.Context, leaveTypeID string) (decimal.Decimal, error) {
	var row struct {
		DefaultDuration decimal.Decimal
	}
	err := r.conn(ctx).
		Table("leave_types").
		Where("id = ?", leaveTypeID).
		Where("deleted_at IS NULL").
		Select("default_duration").
		Take(&row).Error
	return row.DefaultDuration, err
}

// CreateMissingForType seeds a zero-used row for every employee lacking one
// for the type/year. Idempotent: employees that already have a row are
// skipped, the count of created rows is returned.
func (r *repository) CreateMissingForType(ctx context.Context, leaveTypeID string, defaultDays decimal.Decimal, year int) (int64, error) {
	res := r.conn(ctx).Exec(`
		INSERT INTO leave_balances (id, employee_id, leave_type_id, year, total_days, used_days, created_at, updated_at)
		SELECT gen_random_uuid(), e.id, ?, ?, ?, 0, now(), now()
		FROM employees e
		WHERE e.deleted_at IS NULL
		  AND NOT EXISTS (
			SELECT 1 FROM leave_balances b
			WHERE b.employee_id = e.id AND b.leave_type_id = ? AND b.year = ?
		  )
	`, leaveTypeID, year, defaultDays, leaveTypeID, year)
	return res.RowsAffected, res.Error
}

// CreateMissingForEmployee seeds one row per leave type for the given
// employee/year, using each type's default duration.
func (r *repository) CreateMissingForEmployee(ctx context.Context, employeeID string, year int) (int64, error) {
	res := r.conn(ctx).Exec(`
		INSERT INTO leave_balances (id, employee_id, leave_type_id, year, total_days, used_days, created_at, updated_at)
		SELECT gen_random_uuid(), ?, t.id, ?, t.default_duration, 0, now(), now()
		FROM leave_types t
		WHERE t.deleted_at IS NULL
		  AND NOT EXISTS (
			SELECT 1 FROM leave_balances b
			WHERE b.employee_id = ? AND b.leave_type_id = t.id AND b.year = ?
		  )
	`, employeeID, year, employeeID, year)
	return res.RowsAffected, res.Error
}
