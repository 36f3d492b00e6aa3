package funding

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	AllocationTypeGrant     = "GRANT"
	AllocationTypeOrgFunded = "ORG_FUNDED"
)

// GrantPositionSlot is a capacity-constrained seat on a grant budget line.
// GrantPositionNumber is the number of concurrently funded employees the
// slot supports; zero means unlimited.
type GrantPositionSlot struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GrantCode           string    `gorm:"type:varchar(50);not null;index:idx_grant_position_slots_code"`
	PositionTitle       string    `gorm:"type:varchar(150);not null"`
	GrantPositionNumber int       `gorm:"not null;default:0"`

	CreatedBy string `gorm:"type:varchar(100);not null;default:'System'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrgFundedAllocation backs an ORG_FUNDED employee allocation. Rows are
// created on demand and removed with the owning allocation so they never
// orphan.
type OrgFundedAllocation struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GrantID              *uuid.UUID `gorm:"type:uuid"`
	DepartmentPositionID *uuid.UUID `gorm:"type:uuid"`
	Description          string     `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmployeeFundingAllocation ties an employment to a funding source for a date
// range. Exactly one of PositionSlotID / OrgFundedID is set, matching
// AllocationType. LevelOfEffort is stored as a fraction (0.6 for a 60%
// input); inputs and outputs use the 0-100 scale.
type EmployeeFundingAllocation struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_employee_funding_allocations_employee"`
	EmploymentID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_employee_funding_allocations_employment"`
	AllocationType string     `gorm:"type:varchar(20);not null"`
	PositionSlotID *uuid.UUID `gorm:"type:uuid;index:idx_employee_funding_allocations_slot"`
	OrgFundedID    *uuid.UUID `gorm:"type:uuid"`

	LevelOfEffort   decimal.Decimal  `gorm:"type:numeric(6,4);not null"`
	AllocatedAmount *decimal.Decimal `gorm:"type:numeric(12,2)"`

	StartDate time.Time  `gorm:"type:date;not null"`
	EndDate   *time.Time `gorm:"type:date"`

	CreatedBy string `gorm:"type:varchar(100);not null;default:'System'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ActiveOn reports whether the allocation covers the given date; a nil end
// date means open-ended.
func (a EmployeeFundingAllocation) ActiveOn(day time.Time) bool {
	if day.Before(a.StartDate) {
		return false
	}
	return a.EndDate == nil || !day.After(*a.EndDate)
}
