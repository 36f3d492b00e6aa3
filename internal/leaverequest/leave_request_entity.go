package leaverequest

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusDeclined  = "DECLINED"
	StatusCancelled = "CANCELLED"
)

// LeaveRequest is the aggregate root. Items carry the per-type day counts,
// approvals carry the role-based workflow, attachments are external URLs.
// The paper-form fields are informational only and never drive the ledger.
type LeaveRequest struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID       `gorm:"type:uuid;not null;index:idx_leave_requests_employee"`
	StartDate  time.Time       `gorm:"type:date;not null"`
	EndDate    time.Time       `gorm:"type:date;not null"`
	TotalDays  decimal.Decimal `gorm:"type:numeric(5,1);not null"`
	Reason     string          `gorm:"type:text"`
	Status     string          `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_leave_requests_status"`

	SupervisorApproved       bool `gorm:"not null;default:false"`
	SupervisorApprovedDate   *time.Time
	HRSiteAdminApproved      bool `gorm:"not null;default:false"`
	HRSiteAdminApprovedDate  *time.Time

	Items       []LeaveRequestItem     `gorm:"foreignKey:LeaveRequestID"`
	Approvals   []LeaveRequestApproval `gorm:"foreignKey:LeaveRequestID"`
	Attachments []LeaveAttachment      `gorm:"foreignKey:LeaveRequestID"`

	CreatedBy string `gorm:"type:varchar(100);not null;default:'System'"`
	UpdatedBy string `gorm:"type:varchar(100)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type LeaveRequestItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LeaveRequestID uuid.UUID       `gorm:"type:uuid;not null;index:idx_leave_request_items_request"`
	LeaveTypeID    uuid.UUID       `gorm:"type:uuid;not null"`
	Days           decimal.Decimal `gorm:"type:numeric(5,1);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type LeaveRequestApproval struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LeaveRequestID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_request_approvals_role"`
	ApproverRole   string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_leave_request_approvals_role"`
	ApproverName   string    `gorm:"type:varchar(100);not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	ApprovalDate   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type LeaveAttachment struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LeaveRequestID uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_attachments_request"`
	URL            string    `gorm:"type:text;not null"`
	Description    string    `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
