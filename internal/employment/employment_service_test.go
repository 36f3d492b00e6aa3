package employment_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/employment"
	employmenterrors "github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/employment/errors"
	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/funding"
	fundingerrors "github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/funding/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmploymentRepository struct {
	createFn   func(ctx context.Context, empl *employment.Employment) error
	findByIDFn func(ctx context.Context, id string) (*employment.Employment, error)
	updateFn   func(ctx context.Context, empl *employment.Employment) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeEmploymentRepository) WithTx(tx *sql.Tx) employment.Repository { return f }

func (f *fakeEmploymentRepository) Create(ctx context.Context, empl *employment.Employment) error {
	if f.createFn != nil {
		return f.createFn(ctx, empl)
	}
	return nil
}

func (f *fakeEmploymentRepository) FindAllByEmployee(ctx context.Context, employeeID string) ([]employment.Employment, error) {
	return nil, nil
}

func (f *fakeEmploymentRepository) FindByID(ctx context.Context, id string) (*employment.Employment, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmploymentRepository) Update(ctx context.Context, empl *employment.Employment) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, empl)
	}
	return nil
}

func (f *fakeEmploymentRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeAllocator struct {
	ensureNoActiveFn func(ctx context.Context, employeeID, employmentID string, asOf time.Time) error
	replaceFn        func(ctx context.Context, employeeID, employmentID string, inputs []funding.AllocationInput, actorName string) ([]funding.EmployeeFundingAllocation, error)
	cleared          []string
}

func (f *fakeAllocator) WithTx(tx *sql.Tx) funding.Allocator { return f }

func (f *fakeAllocator) EnsureNoActive(ctx context.Context, employeeID, employmentID string, asOf time.Time) error {
	if f.ensureNoActiveFn != nil {
		return f.ensureNoActiveFn(ctx, employeeID, employmentID, asOf)
	}
	return nil
}

func (f *fakeAllocator) Replace(ctx context.Context, employeeID, employmentID string, inputs []funding.AllocationInput, actorName string) ([]funding.EmployeeFundingAllocation, error) {
	if f.replaceFn != nil {
		return f.replaceFn(ctx, employeeID, employmentID, inputs, actorName)
	}
	return nil, nil
}

func (f *fakeAllocator) Clear(ctx context.Context, employmentID string) error {
	f.cleared = append(f.cleared, employmentID)
	return nil
}

func setupEmploymentServiceTest(t *testing.T, repo *fakeEmploymentRepository, allocator *fakeAllocator) (employment.Service, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return employment.NewService(db, repo, allocator), mock
}

func grantAllocation(effort float64) funding.AllocationInputDTO {
	return funding.AllocationInputDTO{
		AllocationType: funding.AllocationTypeGrant,
		PositionSlotID: uuid.New().String(),
		LevelOfEffort:  effort,
		StartDate:      "2026-01-01",
	}
}

func TestEmploymentService_Create(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	t.Run("success creates contract and replaces allocation set in one tx", func(t *testing.T) {
		var createdEmployment *employment.Employment
		repo := &fakeEmploymentRepository{
			createFn: func(ctx context.Context, empl *employment.Employment) error {
				createdEmployment = empl
				return nil
			},
		}

		var replacedEmployment string
		var replacedEfforts []decimal.Decimal
		allocator := &fakeAllocator{
			replaceFn: func(ctx context.Context, eID, emID string, inputs []funding.AllocationInput, actorName string) ([]funding.EmployeeFundingAllocation, error) {
				replacedEmployment = emID
				for _, in := range inputs {
					replacedEfforts = append(replacedEfforts, in.LevelOfEffort)
				}
				return []funding.EmployeeFundingAllocation{{ID: uuid.New()}}, nil
			},
		}
		svc, mock := setupEmploymentServiceTest(t, repo, allocator)

		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.Create(ctx, "hr admin", employment.CreateEmploymentRequest{
			EmployeeID:     employeeID,
			PositionTitle:  "Research Assistant",
			EmploymentType: "FULL_TIME",
			StartDate:      "2026-01-01",
			Allocations: []funding.AllocationInputDTO{
				grantAllocation(60),
				grantAllocation(40),
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, createdEmployment.ID.String(), replacedEmployment)
		assert.Len(t, replacedEfforts, 2)
		assert.Equal(t, "60", replacedEfforts[0].String())
		assert.Len(t, resp.Allocations, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative allocator rejection rolls the contract back", func(t *testing.T) {
		allocator := &fakeAllocator{
			replaceFn: func(ctx context.Context, eID, emID string, inputs []funding.AllocationInput, actorName string) ([]funding.EmployeeFundingAllocation, error) {
				return nil, fundingerrors.ErrEffortTotalInvalid
			},
		}
		svc, mock := setupEmploymentServiceTest(t, &fakeEmploymentRepository{}, allocator)

		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := svc.Create(ctx, "hr admin", employment.CreateEmploymentRequest{
			EmployeeID:     employeeID,
			PositionTitle:  "Research Assistant",
			EmploymentType: "FULL_TIME",
			StartDate:      "2026-01-01",
			Allocations:    []funding.AllocationInputDTO{grantAllocation(90)},
		})

		assert.ErrorIs(t, err, fundingerrors.ErrEffortTotalInvalid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative existing active set rejected", func(t *testing.T) {
		allocator := &fakeAllocator{
			ensureNoActiveFn: func(ctx context.Context, eID, emID string, asOf time.Time) error {
				return fundingerrors.ErrActiveAllocationExists
			},
			replaceFn: func(ctx context.Context, eID, emID string, inputs []funding.AllocationInput, actorName string) ([]funding.EmployeeFundingAllocation, error) {
				t.Fatal("replace must not run when an active set already exists")
				return nil, nil
			},
		}
		svc, mock := setupEmploymentServiceTest(t, &fakeEmploymentRepository{}, allocator)

		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := svc.Create(ctx, "hr admin", employment.CreateEmploymentRequest{
			EmployeeID:     employeeID,
			PositionTitle:  "Research Assistant",
			EmploymentType: "FULL_TIME",
			StartDate:      "2026-01-01",
			Allocations:    []funding.AllocationInputDTO{grantAllocation(100)},
		})

		assert.ErrorIs(t, err, fundingerrors.ErrActiveAllocationExists)
	})

	t.Run("negative end before start", func(t *testing.T) {
		svc, _ := setupEmploymentServiceTest(t, &fakeEmploymentRepository{}, &fakeAllocator{})

		_, err := svc.Create(ctx, "hr admin", employment.CreateEmploymentRequest{
			EmployeeID:     employeeID,
			PositionTitle:  "Research Assistant",
			EmploymentType: "FULL_TIME",
			StartDate:      "2026-06-01",
			EndDate:        "2026-01-01",
			Allocations:    []funding.AllocationInputDTO{grantAllocation(100)},
		})

		assert.ErrorIs(t, err, employmenterrors.ErrInvalidDateRange)
	})
}

func TestEmploymentService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	employeeID := uuid.New()

	existing := func() *employment.Employment {
		return &employment.Employment{
			ID:             id,
			EmployeeID:     employeeID,
			PositionTitle:  "Old Title",
			EmploymentType: "FULL_TIME",
			StartDate:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	t.Run("success with allocations replaces the set", func(t *testing.T) {
		repo := &fakeEmploymentRepository{
			findByIDFn: func(ctx context.Context, fid string) (*employment.Employment, error) {
				return existing(), nil
			},
		}
		replaced := false
		allocator := &fakeAllocator{
			replaceFn: func(ctx context.Context, eID, emID string, inputs []funding.AllocationInput, actorName string) ([]funding.EmployeeFundingAllocation, error) {
				replaced = true
				assert.Equal(t, employeeID.String(), eID)
				assert.Equal(t, id.String(), emID)
				return nil, nil
			},
		}
		svc, mock := setupEmploymentServiceTest(t, repo, allocator)

		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.Update(ctx, "hr admin", id.String(), employment.UpdateEmploymentRequest{
			PositionTitle:  "New Title",
			EmploymentType: "PART_TIME",
			StartDate:      "2026-01-01",
			Allocations:    []funding.AllocationInputDTO{grantAllocation(100)},
		})

		assert.NoError(t, err)
		assert.True(t, replaced)
		assert.Equal(t, "New Title", resp.PositionTitle)
	})

	t.Run("success without allocations leaves the set untouched", func(t *testing.T) {
		repo := &fakeEmploymentRepository{
			findByIDFn: func(ctx context.Context, fid string) (*employment.Employment, error) {
				return existing(), nil
			},
		}
		allocator := &fakeAllocator{
			replaceFn: func(ctx context.Context, eID, emID string, inputs []funding.AllocationInput, actorName string) ([]funding.EmployeeFundingAllocation, error) {
				t.Fatal("replace must not run for an empty allocation payload")
				return nil, nil
			},
		}
		svc, mock := setupEmploymentServiceTest(t, repo, allocator)

		mock.ExpectBegin()
		mock.ExpectCommit()

		_, err := svc.Update(ctx, "hr admin", id.String(), employment.UpdateEmploymentRequest{
			PositionTitle:  "New Title",
			EmploymentType: "FULL_TIME",
			StartDate:      "2026-01-01",
		})

		assert.NoError(t, err)
	})

	t.Run("negative unknown employment", func(t *testing.T) {
		svc, mock := setupEmploymentServiceTest(t, &fakeEmploymentRepository{}, &fakeAllocator{})

		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := svc.Update(ctx, "hr admin", id.String(), employment.UpdateEmploymentRequest{
			PositionTitle:  "X",
			EmploymentType: "FULL_TIME",
			StartDate:      "2026-01-01",
		})

		assert.ErrorIs(t, err, employmenterrors.ErrEmploymentNotFound)
	})
}

func TestEmploymentService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success clears allocations before removing the contract", func(t *testing.T) {
		repo := &fakeEmploymentRepository{
			findByIDFn: func(ctx context.Context, fid string) (*employment.Employment, error) {
				return &employment.Employment{ID: id}, nil
			},
		}
		allocator := &fakeAllocator{}
		svc, mock := setupEmploymentServiceTest(t, repo, allocator)

		mock.ExpectBegin()
		mock.ExpectCommit()

		err := svc.Delete(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, []string{id.String()}, allocator.cleared)
	})

	t.Run("negative unknown employment", func(t *testing.T) {
		svc, mock := setupEmploymentServiceTest(t, &fakeEmploymentRepository{}, &fakeAllocator{})

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := svc.Delete(ctx, id.String())

		assert.ErrorIs(t, err, employmenterrors.ErrEmploymentNotFound)
	})
}
