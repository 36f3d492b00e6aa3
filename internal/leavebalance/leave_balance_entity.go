package leavebalance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LeaveBalance is the per (employee, leave type, year) entitlement row.
// remaining_days is never stored: it is always total - used, so the
// invariant cannot drift from the stored state.
type LeaveBalance struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balances_key"`
	LeaveTypeID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balances_key"`
	Year        int             `gorm:"not null;uniqueIndex:uq_leave_balances_key"`
	TotalDays   decimal.Decimal `gorm:"type:numeric(5,1);not null;default:0"`
	UsedDays    decimal.Decimal `gorm:"type:numeric(5,1);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b LeaveBalance) RemainingDays() decimal.Decimal {
	return b.TotalDays.Sub(b.UsedDays)
}
