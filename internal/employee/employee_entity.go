package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	StaffID          string    `gorm:"uniqueIndex:uq_employees_staff_id"`
	FullName         string
	Email            string `gorm:"uniqueIndex:uq_employees_email"`
	Phone            string
	HireDate         time.Time `gorm:"type:date"`
	EmploymentStatus string
	CreatedBy        string
	UpdatedBy        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}
