package leavetype_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/leavebalance"
	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/leavetype"
	leavetypeerrors "github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/leavetype/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLeaveTypeRepository struct {
	withTxFn   func(tx *sql.Tx) leavetype.Repository
	createFn   func(ctx context.Context, lt *leavetype.LeaveType) error
	findAllFn  func(ctx context.Context) ([]leavetype.LeaveType, error)
	findByIDFn func(ctx context.Context, id string) (*leavetype.LeaveType, error)
	updateFn   func(ctx context.Context, lt *leavetype.LeaveType) error
	deleteFn   func(ctx context.Context, id string) error
	inUseFn    func(ctx context.Context, id string) (bool, error)
}

func (f *fakeLeaveTypeRepository) WithTx(tx *sql.Tx) leavetype.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeLeaveTypeRepository) Create(ctx context.Context, lt *leavetype.LeaveType) error {
	if f.createFn != nil {
		return f.createFn(ctx, lt)
	}
	return nil
}

func (f *fakeLeaveTypeRepository) FindAll(ctx context.Context) ([]leavetype.LeaveType, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeLeaveTypeRepository) FindByID(ctx context.Context, id string) (*leavetype.LeaveType, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveTypeRepository) Update(ctx context.Context, lt *leavetype.LeaveType) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, lt)
	}
	return nil
}

func (f *fakeLeaveTypeRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeLeaveTypeRepository) InUse(ctx context.Context, id string) (bool, error) {
	if f.inUseFn != nil {
		return f.inUseFn(ctx, id)
	}
	return false, nil
}

type fakeSeedingLedger struct {
	leavebalance.Ledger
	bulkInitializeFn func(ctx context.Context, leaveTypeID string, defaultDays decimal.Decimal, year int) (int64, error)
}

func (f *fakeSeedingLedger) WithTx(tx *sql.Tx) leavebalance.Ledger {
	return f
}

func (f *fakeSeedingLedger) BulkInitialize(ctx context.Context, leaveTypeID string, defaultDays decimal.Decimal, year int) (int64, error) {
	if f.bulkInitializeFn != nil {
		return f.bulkInitializeFn(ctx, leaveTypeID, defaultDays, year)
	}
	return 0, nil
}

type leaveTypeServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service leavetype.Service
	repo    *fakeLeaveTypeRepository
	ledger  *fakeSeedingLedger
}

func setupLeaveTypeServiceTest(t *testing.T) *leaveTypeServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeLeaveTypeRepository{}
	ledger := &fakeSeedingLedger{}
	svc := leavetype.NewService(db, repo, ledger)

	return &leaveTypeServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		ledger:  ledger,
	}
}

func TestLeaveTypeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success seeds balances in same transaction", func(t *testing.T) {
		deps := setupLeaveTypeServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		var createdID string
		deps.repo.createFn = func(ctx context.Context, lt *leavetype.LeaveType) error {
			createdID = lt.ID.String()
			assert.Equal(t, "Annual Leave", lt.Name)
			assert.Equal(t, "hr admin", lt.CreatedBy)
			assert.True(t, lt.DefaultDuration.Equal(decimal.RequireFromString("12")))
			return nil
		}
		deps.ledger.bulkInitializeFn = func(ctx context.Context, leaveTypeID string, defaultDays decimal.Decimal, year int) (int64, error) {
			assert.Equal(t, createdID, leaveTypeID)
			assert.True(t, defaultDays.Equal(decimal.RequireFromString("12")))
			return 4, nil
		}

		resp, err := deps.service.Create(ctx, "hr admin", leavetype.CreateLeaveTypeRequest{
			Name:            "  Annual Leave  ",
			DefaultDuration: 12,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Annual Leave", resp.Name)
		assert.Equal(t, "12", resp.DefaultDuration)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative duplicate name", func(t *testing.T) {
		deps := setupLeaveTypeServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.createFn = func(ctx context.Context, lt *leavetype.LeaveType) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_leave_types_name"}
		}

		_, err := deps.service.Create(ctx, "hr admin", leavetype.CreateLeaveTypeRequest{
			Name:            "Annual Leave",
			DefaultDuration: 12,
		})

		assert.ErrorIs(t, err, leavetypeerrors.ErrDuplicateName)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative duration not in half-day steps", func(t *testing.T) {
		deps := setupLeaveTypeServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, "hr admin", leavetype.CreateLeaveTypeRequest{
			Name:            "Annual Leave",
			DefaultDuration: 1.3,
		})

		assert.ErrorIs(t, err, leavetypeerrors.ErrInvalidDuration)
	})
}

func TestLeaveTypeService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupLeaveTypeServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.findByIDFn = func(ctx context.Context, lookupID string) (*leavetype.LeaveType, error) {
			assert.Equal(t, id.String(), lookupID)
			return &leavetype.LeaveType{
				ID:              id,
				Name:            "Sick Leave",
				DefaultDuration: decimal.RequireFromString("5"),
				CreatedBy:       "System",
			}, nil
		}
		deps.repo.updateFn = func(ctx context.Context, lt *leavetype.LeaveType) error {
			assert.Equal(t, "Sick Leave (Paid)", lt.Name)
			assert.True(t, lt.RequiresAttachment)
			assert.Equal(t, "hr admin", lt.UpdatedBy)
			return nil
		}

		resp, err := deps.service.Update(ctx, "hr admin", id.String(), leavetype.UpdateLeaveTypeRequest{
			Name:               "Sick Leave (Paid)",
			DefaultDuration:    5,
			RequiresAttachment: true,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Sick Leave (Paid)", resp.Name)
		assert.Equal(t, "hr admin", resp.UpdatedBy)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupLeaveTypeServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Update(ctx, "hr admin", id.String(), leavetype.UpdateLeaveTypeRequest{
			Name:            "Whatever",
			DefaultDuration: 1,
		})

		assert.ErrorIs(t, err, leavetypeerrors.ErrLeaveTypeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestLeaveTypeService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	existing := func(ctx context.Context, lookupID string) (*leavetype.LeaveType, error) {
		return &leavetype.LeaveType{ID: id, Name: "Annual Leave"}, nil
	}

	t.Run("success", func(t *testing.T) {
		deps := setupLeaveTypeServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.findByIDFn = existing
		deleted := false
		deps.repo.deleteFn = func(ctx context.Context, lookupID string) error {
			deleted = true
			return nil
		}

		err := deps.service.Delete(ctx, id.String())

		assert.NoError(t, err)
		assert.True(t, deleted)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative type in use", func(t *testing.T) {
		deps := setupLeaveTypeServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.findByIDFn = existing
		deps.repo.inUseFn = func(ctx context.Context, lookupID string) (bool, error) {
			return true, nil
		}
		deps.repo.deleteFn = func(ctx context.Context, lookupID string) error {
			t.Fatal("delete must not be called for a referenced type")
			return nil
		}

		err := deps.service.Delete(ctx, id.String())

		assert.ErrorIs(t, err, leavetypeerrors.ErrLeaveTypeInUse)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative invalid id", func(t *testing.T) {
		deps := setupLeaveTypeServiceTest(t)
		defer deps.db.Close()

		err := deps.service.Delete(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, leavetypeerrors.ErrInvalidLeaveTypeID)
	})
}
