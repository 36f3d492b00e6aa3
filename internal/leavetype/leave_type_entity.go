package leavetype

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type LeaveType struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name               string          `gorm:"type:varchar(100);not null;uniqueIndex:uq_leave_types_name"`
	DefaultDuration    decimal.Decimal `gorm:"type:numeric(5,1);not null;default:0"`
	RequiresAttachment bool            `gorm:"not null;default:false"`
	Description        string          `gorm:"type:text"`

	CreatedBy string `gorm:"type:varchar(100);not null;default:'System'"`
	UpdatedBy string `gorm:"type:varchar(100)"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_leave_types_deleted_at"`
}
