package dashboard

import (
	"context"
	"database/sql"

	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/shared/gormtx"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateMissing(ctx context.Context, widgets []DashboardWidget) (int64, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]DashboardWidget, error)
	FindByKey(ctx context.Context, employeeID, widgetKey string) (*DashboardWidget, error)
	Save(ctx context.Context, w *DashboardWidget) error
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

// CreateMissing inserts only the rows whose (employee, widget) key is not
// present yet, so seeding defaults stays idempotent under concurrent fetches.
func (r *repository) CreateMissing(ctx context.Context, widgets []DashboardWidget) (int64, error) {
	if len(widgets) == 0 {
		return 0, nil
	}
	res := r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "widget_key"}},
			DoNothing: true,
		}).
		Create(&widgets)
	return res.RowsAffected, res.Error
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]DashboardWidget, error) {
	var widgets []DashboardWidget
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Order("display_order ASC, widget_key ASC").
		Find(&widgets).Error
	return widgets, err
}

func (r *repository) FindByKey(ctx context.Context, employeeID, widgetKey string) (*DashboardWidget, error) {
	var w DashboardWidget
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Where("widget_key = ?", widgetKey).
		First(&w).Error
	return &w, err
}

func (r *repository) Save(ctx context.Context, w *DashboardWidget) error {
	return r.conn(ctx).Save(w).Error
}

func defaultWidgetRows(employeeID uuid.UUID) []DashboardWidget {
	rows := make([]DashboardWidget, len(DefaultWidgets))
	for i, key := range DefaultWidgets {
		rows[i] = DashboardWidget{
			ID:           uuid.New(),
			EmployeeID:   employeeID,
			WidgetKey:    key,
			DisplayOrder: i,
			Enabled:      true,
		}
	}
	return rows
}
