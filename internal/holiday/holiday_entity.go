package holiday

import (
	"time"

	"github.com/google/uuid"
)

// Holiday is a single non-working calendar date. Recurring holidays are
// stored per year so the calendar stays a plain date lookup.
type Holiday struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date time.Time `gorm:"type:date;not null;uniqueIndex:uq_holidays_date"`
	Name string    `gorm:"type:varchar(150);not null"`

	CreatedBy string `gorm:"type:varchar(100);not null;default:'System'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
