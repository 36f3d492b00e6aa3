package employment

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	employmenterrors "github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/employment/errors"
	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/funding"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employment_service.go -destination=mock/employment_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorName string, req CreateEmploymentRequest) (EmploymentResponse, error)
	GetAllByEmployee(ctx context.Context, employeeID string) ([]EmploymentResponse, error)
	GetByID(ctx context.Context, id string) (EmploymentResponse, error)
	Update(ctx context.Context, actorName, id string, req UpdateEmploymentRequest) (EmploymentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	allocator funding.Allocator
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, allocator funding.Allocator, logger ...*zap.Logger) Service {
	l := zap.L().Named("employment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employment.service")
	}
	return &service{db: db, repo: repo, allocator: allocator, logger: l}
}

// Create persists the contract and its full funding distribution in one
// transaction. The allocation set rides through the funding allocator, so an
// invalid effort total or an over-committed grant slot aborts the whole
// contract.
func (s *service) Create(
	ctx context.Context,
	actorName string,
	req CreateEmploymentRequest,
) (EmploymentResponse, error) {
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return EmploymentResponse{}, err
	}

	inputs, err := funding.ParseInputs(req.Allocations)
	if err != nil {
		return EmploymentResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmploymentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl := &Employment{
		ID:             uuid.New(),
		EmployeeID:     uuid.MustParse(req.EmployeeID),
		PositionTitle:  strings.TrimSpace(req.PositionTitle),
		EmploymentType: req.EmploymentType,
		WorkLocation:   req.WorkLocation,
		StartDate:      start,
		EndDate:        end,
		CreatedBy:      actorName,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		return EmploymentResponse{}, err
	}

	txAllocator := s.allocator.WithTx(tx)
	if err := txAllocator.EnsureNoActive(ctx, req.EmployeeID, empl.ID.String(), start); err != nil {
		return EmploymentResponse{}, err
	}

	allocations, err := txAllocator.Replace(ctx, req.EmployeeID, empl.ID.String(), inputs, actorName)
	if err != nil {
		return EmploymentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EmploymentResponse{}, err
	}

	s.logger.Info("employment created",
		zap.String("employment_id", empl.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("allocations", len(allocations)),
	)

	return mapToResponse(*empl, allocations), nil
}

func (s *service) GetAllByEmployee(ctx context.Context, employeeID string) ([]EmploymentResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, employmenterrors.ErrInvalidEmployeeID
	}

	empls, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	res := make([]EmploymentResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e, nil)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmploymentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmploymentResponse{}, employmenterrors.ErrInvalidEmploymentID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmploymentResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl, nil), nil
}

// Update edits the contract fields and, when the payload carries an
// allocation set, replaces the funding distribution wholesale in the same
// transaction. An empty set leaves the existing allocations untouched.
func (s *service) Update(
	ctx context.Context,
	actorName, id string,
	req UpdateEmploymentRequest,
) (EmploymentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmploymentResponse{}, employmenterrors.ErrInvalidEmploymentID
	}

	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return EmploymentResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmploymentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmploymentResponse{}, mapRepositoryError(err)
	}

	empl.PositionTitle = strings.TrimSpace(req.PositionTitle)
	empl.EmploymentType = req.EmploymentType
	empl.WorkLocation = req.WorkLocation
	empl.StartDate = start
	empl.EndDate = end
	empl.UpdatedBy = actorName

	if err := qtx.Update(ctx, empl); err != nil {
		return EmploymentResponse{}, err
	}

	var allocations []funding.EmployeeFundingAllocation
	if len(req.Allocations) > 0 {
		inputs, err := funding.ParseInputs(req.Allocations)
		if err != nil {
			return EmploymentResponse{}, err
		}
		allocations, err = s.allocator.WithTx(tx).Replace(ctx, empl.EmployeeID.String(), id, inputs, actorName)
		if err != nil {
			return EmploymentResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return EmploymentResponse{}, err
	}

	return mapToResponse(*empl, allocations), nil
}

// Delete removes the contract together with its allocation set so no
// orphaned funding rows survive.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employmenterrors.ErrInvalidEmploymentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.allocator.WithTx(tx).Clear(ctx, id); err != nil {
		return err
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("employment deleted", zap.String("employment_id", id))
	return nil
}

func parseRange(startStr, endStr string) (time.Time, *time.Time, error) {
	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return time.Time{}, nil, employmenterrors.ErrInvalidDateRange
	}
	if endStr == "" {
		return start, nil, nil
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil || end.Before(start) {
		return time.Time{}, nil, employmenterrors.ErrInvalidDateRange
	}
	return start, &end, nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employmenterrors.ErrEmploymentNotFound
	}
	return err
}

func mapToResponse(empl Employment, allocations []funding.EmployeeFundingAllocation) EmploymentResponse {
	resp := EmploymentResponse{
		ID:             empl.ID.String(),
		EmployeeID:     empl.EmployeeID.String(),
		PositionTitle:  empl.PositionTitle,
		EmploymentType: empl.EmploymentType,
		WorkLocation:   empl.WorkLocation,
		StartDate:      empl.StartDate.Format("2006-01-02"),
		CreatedBy:      empl.CreatedBy,
		UpdatedBy:      empl.UpdatedBy,
	}
	if empl.EndDate != nil {
		resp.EndDate = empl.EndDate.Format("2006-01-02")
	}
	if len(allocations) > 0 {
		resp.Allocations = make([]funding.AllocationResponse, len(allocations))
		for i, a := range allocations {
			resp.Allocations[i] = funding.MapAllocationToResponse(a)
		}
	}
	return resp
}
