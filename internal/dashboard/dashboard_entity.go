package dashboard

import (
	"time"

	"github.com/google/uuid"
)

// DefaultWidgets is the catalog seeded for every employee the first time
// their dashboard is fetched, in default display order.
var DefaultWidgets = []string{
	"leave_summary",
	"pending_approvals",
	"upcoming_holidays",
	"funding_overview",
}

type DashboardWidget struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID   uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_dashboard_widgets_key"`
	WidgetKey    string    `gorm:"uniqueIndex:uq_dashboard_widgets_key"`
	DisplayOrder int
	Enabled      bool
	UpdatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
