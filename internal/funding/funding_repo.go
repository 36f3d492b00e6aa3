package funding

import (
	"context"
	"database/sql"
	"time"

	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/shared/gormtx"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateSlot(ctx context.Context, s *GrantPositionSlot) error
	FindAllSlots(ctx context.Context) ([]GrantPositionSlot, error)
	FindSlotForUpdate(ctx context.Context, slotID string) (*GrantPositionSlot, error)
	FindActiveForSlotInWindow(ctx context.Context, slotID string, from time.Time, until *time.Time) ([]EmployeeFundingAllocation, error)
	HasActiveAllocation(ctx context.Context, employeeID, excludeEmploymentID string, asOf time.Time) (bool, error)
	FindByEmployment(ctx context.Context, employmentID string) ([]EmployeeFundingAllocation, error)
	CreateOrgFunded(ctx context.Context, o *OrgFundedAllocation) error
	CreateAllocations(ctx context.Context, allocations []EmployeeFundingAllocation) error
	DeleteByEmployment(ctx context.Context, employmentID string) error
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

func (r *repository) CreateSlot(ctx context.Context, s *GrantPositionSlot) error {
	return r.conn(ctx).Create(s).Error
}

func (r *repository) FindAllSlots(ctx context.Context) ([]GrantPositionSlot, error) {
	var slots []GrantPositionSlot
	err := r.conn(ctx).
		Order("grant_code ASC, position_title ASC").
		Find(&slots).Error
	return slots, err
}

// FindSlotForUpdate locks the slot row so concurrent capacity checks against
// the same seat are serialized by the database.
func (r *repository) FindSlotForUpdate(ctx context.Context, slotID string) (*GrantPositionSlot, error) {
	var s GrantPositionSlot
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&s, "id = ?", slotID).Error
	return &s, err
}

// FindActiveForSlotInWindow returns the slot's allocations whose ranges
// overlap [from, until]; a nil until means the window is open-ended.
func (r *repository) FindActiveForSlotInWindow(ctx context.Context, slotID string, from time.Time, until *time.Time) ([]EmployeeFundingAllocation, error) {
	q := r.conn(ctx).
		Where("position_slot_id = ?", slotID).
		Where("end_date IS NULL OR end_date >= ?", from)
	if until != nil {
		q = q.Where("start_date <= ?", until)
	}

	var allocations []EmployeeFundingAllocation
	err := q.Order("start_date ASC").Find(&allocations).Error
	return allocations, err
}

// HasActiveAllocation reports whether the employee holds an allocation that
// is active on asOf under any employment other than the one given, so the
// create path can reject stacking a second funded employment.
func (r *repository) HasActiveAllocation(ctx context.Context, employeeID, excludeEmploymentID string, asOf time.Time) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&EmployeeFundingAllocation{}).
		Where("employee_id = ?", employeeID).
		Where("employment_id <> ?", excludeEmploymentID).
		Where("start_date <= ?", asOf).
		Where("end_date IS NULL OR end_date >= ?", asOf).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindByEmployment(ctx context.Context, employmentID string) ([]EmployeeFundingAllocation, error) {
	var allocations []EmployeeFundingAllocation
	err := r.conn(ctx).
		Where("employment_id = ?", employmentID).
		Order("start_date ASC").
		Find(&allocations).Error
	return allocations, err
}

func (r *repository) CreateOrgFunded(ctx context.Context, o *OrgFundedAllocation) error {
	return r.conn(ctx).Create(o).Error
}

func (r *repository) CreateAllocations(ctx context.Context, allocations []EmployeeFundingAllocation) error {
	if len(allocations) == 0 {
		return nil
	}
	return r.conn(ctx).Create(&allocations).Error
}

// DeleteByEmployment removes the employment's allocation set and any
// org-funded rows those allocations exclusively owned.
func (r *repository) DeleteByEmployment(ctx context.Context, employmentID string) error {
	conn := r.conn(ctx)

	err := conn.Exec(`
		DELETE FROM org_funded_allocations o
		WHERE o.id IN (
			SELECT a.org_funded_id FROM employee_funding_allocations a
			WHERE a.employment_id = ? AND a.org_funded_id IS NOT NULL
		)
		AND NOT EXISTS (
			SELECT 1 FROM employee_funding_allocations other
			WHERE other.org_funded_id = o.id AND other.employment_id <> ?
		)
	`, employmentID, employmentID).Error
	if err != nil {
		return err
	}

	return conn.Delete(&EmployeeFundingAllocation{}, "employment_id = ?", employmentID).Error
}
