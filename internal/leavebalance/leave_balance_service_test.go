package leavebalance_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/leavebalance"
	leavebalanceerrors "github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/leavebalance/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLedger struct {
	withTxFn            func(tx *sql.Tx) leavebalance.Ledger
	availabilityFn      func(ctx context.Context, employeeID, leaveTypeID string, year int, requested, addBack decimal.Decimal) (leavebalance.Availability, error)
	deductFn            func(ctx context.Context, employeeID, leaveTypeID string, year int, days decimal.Decimal) error
	restoreFn           func(ctx context.Context, employeeID, leaveTypeID string, year int, days decimal.Decimal) error
	bulkInitializeFn    func(ctx context.Context, leaveTypeID string, defaultDays decimal.Decimal, year int) (int64, error)
	ensureForEmployeeFn func(ctx context.Context, employeeID string, year int) (int64, error)
}

func (f *fakeLedger) WithTx(tx *sql.Tx) leavebalance.Ledger {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeLedger) Availability(ctx context.Context, employeeID, leaveTypeID string, year int, requested, addBack decimal.Decimal) (leavebalance.Availability, error) {
	if f.availabilityFn != nil {
		return f.availabilityFn(ctx, employeeID, leaveTypeID, year, requested, addBack)
	}
	return leavebalance.Availability{Valid: true}, nil
}

func (f *fakeLedger) Deduct(ctx context.Context, employeeID, leaveTypeID string, year int, days decimal.Decimal) error {
	if f.deductFn != nil {
		return f.deductFn(ctx, employeeID, leaveTypeID, year, days)
	}
	return nil
}

func (f *fakeLedger) Restore(ctx context.Context, employeeID, leaveTypeID string, year int, days decimal.Decimal) error {
	if f.restoreFn != nil {
		return f.restoreFn(ctx, employeeID, leaveTypeID, year, days)
	}
	return nil
}

func (f *fakeLedger) BulkInitialize(ctx context.Context, leaveTypeID string, defaultDays decimal.Decimal, year int) (int64, error) {
	if f.bulkInitializeFn != nil {
		return f.bulkInitializeFn(ctx, leaveTypeID, defaultDays, year)
	}
	return 0, nil
}

func (f *fakeLedger) EnsureForEmployee(ctx context.Context, employeeID string, year int) (int64, error) {
	if f.ensureForEmployeeFn != nil {
		return f.ensureForEmployeeFn(ctx, employeeID, year)
	}
	return 0, nil
}

type balanceServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service leavebalance.Service
	repo    *fakeBalanceRepository
	ledger  *fakeLedger
}

func setupBalanceServiceTest(t *testing.T) *balanceServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeBalanceRepository{}
	ledger := &fakeLedger{}
	svc := leavebalance.NewService(db, repo, ledger)

	return &balanceServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		ledger:  ledger,
	}
}

func TestLeaveBalanceService_GetByKey(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()
	leaveTypeID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupBalanceServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByKeyFn = func(ctx context.Context, eid, ltid string, year int) (*leavebalance.LeaveBalance, error) {
			assert.Equal(t, employeeID, eid)
			assert.Equal(t, leaveTypeID, ltid)
			assert.Equal(t, 2026, year)
			return &leavebalance.LeaveBalance{
				ID:          uuid.New(),
				EmployeeID:  uuid.MustParse(employeeID),
				LeaveTypeID: uuid.MustParse(leaveTypeID),
				Year:        2026,
				TotalDays:   decimal.RequireFromString("12"),
				UsedDays:    decimal.RequireFromString("4.5"),
			}, nil
		}

		resp, err := deps.service.GetByKey(ctx, employeeID, leaveTypeID, 2026)

		assert.NoError(t, err)
		assert.Equal(t, employeeID, resp.EmployeeID)
		assert.Equal(t, "12", resp.TotalDays)
		assert.Equal(t, "4.5", resp.UsedDays)
		assert.Equal(t, "7.5", resp.RemainingDays)
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupBalanceServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByKeyFn = func(ctx context.Context, eid, ltid string, year int) (*leavebalance.LeaveBalance, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.GetByKey(ctx, employeeID, leaveTypeID, 2026)

		assert.ErrorIs(t, err, leavebalanceerrors.ErrBalanceNotFound)
	})

	t.Run("negative invalid employee id", func(t *testing.T) {
		deps := setupBalanceServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByKey(ctx, "not-a-uuid", leaveTypeID, 2026)

		assert.ErrorIs(t, err, leavebalanceerrors.ErrInvalidEmployeeID)
	})
}

func TestLeaveBalanceService_GetAllByEmployee(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupBalanceServiceTest(t)
		defer deps.db.Close()

		deps.repo.findAllByEmployeeFn = func(ctx context.Context, eid string, year int) ([]leavebalance.LeaveBalance, error) {
			return []leavebalance.LeaveBalance{
				{
					ID:          uuid.New(),
					EmployeeID:  uuid.MustParse(employeeID),
					LeaveTypeID: uuid.New(),
					Year:        year,
					TotalDays:   decimal.RequireFromString("12"),
					UsedDays:    decimal.Zero,
				},
				{
					ID:          uuid.New(),
					EmployeeID:  uuid.MustParse(employeeID),
					LeaveTypeID: uuid.New(),
					Year:        year,
					TotalDays:   decimal.RequireFromString("5"),
					UsedDays:    decimal.RequireFromString("5"),
				},
			}, nil
		}

		resp, err := deps.service.GetAllByEmployee(ctx, employeeID, 2026)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "12", resp[0].RemainingDays)
		assert.Equal(t, "0", resp[1].RemainingDays)
	})

	t.Run("negative invalid employee id", func(t *testing.T) {
		deps := setupBalanceServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetAllByEmployee(ctx, "nope", 2026)

		assert.ErrorIs(t, err, leavebalanceerrors.ErrInvalidEmployeeID)
	})
}

func TestLeaveBalanceService_BulkInitialize(t *testing.T) {
	ctx := context.Background()
	leaveTypeID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupBalanceServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.findTypeDefaultFn = func(ctx context.Context, ltid string) (decimal.Decimal, error) {
			assert.Equal(t, leaveTypeID, ltid)
			return decimal.RequireFromString("12"), nil
		}
		deps.ledger.bulkInitializeFn = func(ctx context.Context, ltid string, defaultDays decimal.Decimal, year int) (int64, error) {
			assert.Equal(t, leaveTypeID, ltid)
			assert.True(t, defaultDays.Equal(decimal.RequireFromString("12")))
			assert.Equal(t, 2026, year)
			return 9, nil
		}

		resp, err := deps.service.BulkInitialize(ctx, leavebalance.BulkInitializeRequest{
			LeaveTypeID: leaveTypeID,
			Year:        2026,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(9), resp.Created)
		assert.Equal(t, 2026, resp.Year)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative unknown leave type", func(t *testing.T) {
		deps := setupBalanceServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.findTypeDefaultFn = func(ctx context.Context, ltid string) (decimal.Decimal, error) {
			return decimal.Zero, gorm.ErrRecordNotFound
		}

		_, err := deps.service.BulkInitialize(ctx, leavebalance.BulkInitializeRequest{
			LeaveTypeID: leaveTypeID,
			Year:        2026,
		})

		assert.ErrorIs(t, err, leavebalanceerrors.ErrInvalidLeaveTypeID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative seeding fails", func(t *testing.T) {
		deps := setupBalanceServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.findTypeDefaultFn = func(ctx context.Context, ltid string) (decimal.Decimal, error) {
			return decimal.RequireFromString("12"), nil
		}
		deps.ledger.bulkInitializeFn = func(ctx context.Context, ltid string, defaultDays decimal.Decimal, year int) (int64, error) {
			return 0, errors.New("insert failed")
		}

		_, err := deps.service.BulkInitialize(ctx, leavebalance.BulkInitializeRequest{
			LeaveTypeID: leaveTypeID,
			Year:        2026,
		})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
