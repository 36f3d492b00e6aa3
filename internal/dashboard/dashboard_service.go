package dashboard

import (
	"context"
	"database/sql"
	"errors"

	dashboarderrors "github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/dashboard/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	EnsureDefaults(ctx context.Context, employeeID string) (int64, error)
	GetForEmployee(ctx context.Context, employeeID string) ([]WidgetResponse, error)
	UpdateWidget(ctx context.Context, actorName, employeeID, widgetKey string, req UpdateWidgetRequest) (WidgetResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// EnsureDefaults seeds any missing catalog widgets for the employee. It is
// idempotent and safe to call on every fetch.
func (s *service) EnsureDefaults(ctx context.Context, employeeID string) (int64, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return 0, dashboarderrors.ErrInvalidEmployeeID
	}

	created, err := s.repo.CreateMissing(ctx, defaultWidgetRows(empID))
	if err != nil {
		return 0, err
	}

	if created > 0 {
		s.logger.Info("dashboard defaults seeded",
			zap.String("employee_id", employeeID),
			zap.Int64("created", created),
		)
	}
	return created, nil
}

// GetForEmployee is an explicit two-step flow: seed defaults first, then
// fetch. The fetch never triggers another seed.
func (s *service) GetForEmployee(ctx context.Context, employeeID string) ([]WidgetResponse, error) {
	if _, err := s.EnsureDefaults(ctx, employeeID); err != nil {
		return nil, err
	}

	widgets, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	res := make([]WidgetResponse, len(widgets))
	for i, w := range widgets {
		res[i] = mapToResponse(w)
	}
	return res, nil
}

func (s *service) UpdateWidget(
	ctx context.Context,
	actorName, employeeID, widgetKey string,
	req UpdateWidgetRequest,
) (WidgetResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return WidgetResponse{}, dashboarderrors.ErrInvalidEmployeeID
	}
	if !knownWidgetKey(widgetKey) {
		return WidgetResponse{}, dashboarderrors.ErrUnknownWidgetKey
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WidgetResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	w, err := qtx.FindByKey(ctx, employeeID, widgetKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WidgetResponse{}, dashboarderrors.ErrWidgetNotFound
		}
		return WidgetResponse{}, err
	}

	if req.Enabled != nil {
		w.Enabled = *req.Enabled
	}
	if req.DisplayOrder != nil {
		w.DisplayOrder = *req.DisplayOrder
	}
	w.UpdatedBy = actorName

	if err := qtx.Save(ctx, w); err != nil {
		return WidgetResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return WidgetResponse{}, err
	}

	return mapToResponse(*w), nil
}

func knownWidgetKey(key string) bool {
	for _, k := range DefaultWidgets {
		if k == key {
			return true
		}
	}
	return false
}

func mapToResponse(w DashboardWidget) WidgetResponse {
	return WidgetResponse{
		ID:           w.ID.String(),
		EmployeeID:   w.EmployeeID.String(),
		WidgetKey:    w.WidgetKey,
		DisplayOrder: w.DisplayOrder,
		Enabled:      w.Enabled,
		UpdatedBy:    w.UpdatedBy,
	}
}
