package dashboard_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/dashboard"
	dashboarderrors "github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/dashboard/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeDashboardRepository struct {
	createMissingFn     func(ctx context.Context, widgets []dashboard.DashboardWidget) (int64, error)
	findAllByEmployeeFn func(ctx context.Context, employeeID string) ([]dashboard.DashboardWidget, error)
	findByKeyFn         func(ctx context.Context, employeeID, widgetKey string) (*dashboard.DashboardWidget, error)
	saveFn              func(ctx context.Context, w *dashboard.DashboardWidget) error
}

func (f *fakeDashboardRepository) WithTx(tx *sql.Tx) dashboard.Repository { return f }

func (f *fakeDashboardRepository) CreateMissing(ctx context.Context, widgets []dashboard.DashboardWidget) (int64, error) {
	if f.createMissingFn != nil {
		return f.createMissingFn(ctx, widgets)
	}
	return 0, nil
}

func (f *fakeDashboardRepository) FindAllByEmployee(ctx context.Context, employeeID string) ([]dashboard.DashboardWidget, error) {
	if f.findAllByEmployeeFn != nil {
		return f.findAllByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeDashboardRepository) FindByKey(ctx context.Context, employeeID, widgetKey string) (*dashboard.DashboardWidget, error) {
	if f.findByKeyFn != nil {
		return f.findByKeyFn(ctx, employeeID, widgetKey)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDashboardRepository) Save(ctx context.Context, w *dashboard.DashboardWidget) error {
	if f.saveFn != nil {
		return f.saveFn(ctx, w)
	}
	return nil
}

func setupDashboardServiceTest(t *testing.T, repo *fakeDashboardRepository) (dashboard.Service, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return dashboard.NewService(db, repo), mock
}

func TestDashboardService_EnsureDefaults(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	t.Run("success seeds the full catalog once", func(t *testing.T) {
		var seeded []dashboard.DashboardWidget
		repo := &fakeDashboardRepository{
			createMissingFn: func(ctx context.Context, widgets []dashboard.DashboardWidget) (int64, error) {
				seeded = widgets
				return int64(len(widgets)), nil
			},
		}
		svc, _ := setupDashboardServiceTest(t, repo)

		created, err := svc.EnsureDefaults(ctx, employeeID)

		assert.NoError(t, err)
		assert.Equal(t, int64(len(dashboard.DefaultWidgets)), created)
		assert.Len(t, seeded, len(dashboard.DefaultWidgets))
		for i, w := range seeded {
			assert.Equal(t, dashboard.DefaultWidgets[i], w.WidgetKey)
			assert.Equal(t, i, w.DisplayOrder)
			assert.True(t, w.Enabled)
		}
	})

	t.Run("success second call creates nothing", func(t *testing.T) {
		repo := &fakeDashboardRepository{
			createMissingFn: func(ctx context.Context, widgets []dashboard.DashboardWidget) (int64, error) {
				return 0, nil
			},
		}
		svc, _ := setupDashboardServiceTest(t, repo)

		created, err := svc.EnsureDefaults(ctx, employeeID)

		assert.NoError(t, err)
		assert.Zero(t, created)
	})

	t.Run("negative malformed employee id", func(t *testing.T) {
		svc, _ := setupDashboardServiceTest(t, &fakeDashboardRepository{})

		_, err := svc.EnsureDefaults(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, dashboarderrors.ErrInvalidEmployeeID)
	})
}

func TestDashboardService_GetForEmployee(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("success seeds then fetches in two explicit steps", func(t *testing.T) {
		calls := []string{}
		repo := &fakeDashboardRepository{
			createMissingFn: func(ctx context.Context, widgets []dashboard.DashboardWidget) (int64, error) {
				calls = append(calls, "seed")
				return int64(len(widgets)), nil
			},
			findAllByEmployeeFn: func(ctx context.Context, id string) ([]dashboard.DashboardWidget, error) {
				calls = append(calls, "fetch")
				return []dashboard.DashboardWidget{
					{ID: uuid.New(), EmployeeID: employeeID, WidgetKey: "leave_summary", Enabled: true},
					{ID: uuid.New(), EmployeeID: employeeID, WidgetKey: "pending_approvals", DisplayOrder: 1, Enabled: true},
				}, nil
			},
		}
		svc, _ := setupDashboardServiceTest(t, repo)

		resp, err := svc.GetForEmployee(ctx, employeeID.String())

		assert.NoError(t, err)
		assert.Equal(t, []string{"seed", "fetch"}, calls)
		assert.Len(t, resp, 2)
		assert.Equal(t, "leave_summary", resp[0].WidgetKey)
	})
}

func TestDashboardService_UpdateWidget(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	boolPtr := func(v bool) *bool { return &v }
	intPtr := func(v int) *int { return &v }

	t.Run("success applies only the allow-listed fields", func(t *testing.T) {
		existing := &dashboard.DashboardWidget{
			ID:           uuid.New(),
			EmployeeID:   employeeID,
			WidgetKey:    "leave_summary",
			DisplayOrder: 0,
			Enabled:      true,
		}
		var saved *dashboard.DashboardWidget
		repo := &fakeDashboardRepository{
			findByKeyFn: func(ctx context.Context, id, key string) (*dashboard.DashboardWidget, error) {
				return existing, nil
			},
			saveFn: func(ctx context.Context, w *dashboard.DashboardWidget) error {
				saved = w
				return nil
			},
		}
		svc, mock := setupDashboardServiceTest(t, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.UpdateWidget(ctx, "hr admin", employeeID.String(), "leave_summary", dashboard.UpdateWidgetRequest{
			Enabled:      boolPtr(false),
			DisplayOrder: intPtr(3),
		})

		assert.NoError(t, err)
		assert.False(t, saved.Enabled)
		assert.Equal(t, 3, saved.DisplayOrder)
		assert.Equal(t, "hr admin", saved.UpdatedBy)
		assert.False(t, resp.Enabled)
	})

	t.Run("success nil fields leave values untouched", func(t *testing.T) {
		existing := &dashboard.DashboardWidget{
			ID:           uuid.New(),
			EmployeeID:   employeeID,
			WidgetKey:    "funding_overview",
			DisplayOrder: 2,
			Enabled:      true,
		}
		repo := &fakeDashboardRepository{
			findByKeyFn: func(ctx context.Context, id, key string) (*dashboard.DashboardWidget, error) {
				return existing, nil
			},
		}
		svc, mock := setupDashboardServiceTest(t, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.UpdateWidget(ctx, "hr admin", employeeID.String(), "funding_overview", dashboard.UpdateWidgetRequest{})

		assert.NoError(t, err)
		assert.True(t, resp.Enabled)
		assert.Equal(t, 2, resp.DisplayOrder)
	})

	t.Run("negative unknown widget key", func(t *testing.T) {
		svc, _ := setupDashboardServiceTest(t, &fakeDashboardRepository{})

		_, err := svc.UpdateWidget(ctx, "hr admin", employeeID.String(), "not_a_widget", dashboard.UpdateWidgetRequest{})

		assert.ErrorIs(t, err, dashboarderrors.ErrUnknownWidgetKey)
	})

	t.Run("negative widget row missing", func(t *testing.T) {
		svc, mock := setupDashboardServiceTest(t, &fakeDashboardRepository{})

		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := svc.UpdateWidget(ctx, "hr admin", employeeID.String(), "leave_summary", dashboard.UpdateWidgetRequest{})

		assert.ErrorIs(t, err, dashboarderrors.ErrWidgetNotFound)
	})
}
