package funding

import (
	"context"
	"database/sql"
	"strings"
	"time"

	fundingerrors "github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/funding/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=funding_service.go -destination=mock/funding_service_mock.go -package=mock
type Service interface {
	CreateSlot(ctx context.Context, actorName string, req CreateSlotRequest) (SlotResponse, error)
	GetAllSlots(ctx context.Context) ([]SlotResponse, error)
	GetByEmployment(ctx context.Context, employmentID string) ([]AllocationResponse, error)
	ReplaceForEmployment(ctx context.Context, actorName, employmentID string, req ReplaceAllocationsRequest) ([]AllocationResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	allocator Allocator
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, allocator Allocator, logger ...*zap.Logger) Service {
	l := zap.L().Named("funding.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("funding.service")
	}
	return &service{db: db, repo: repo, allocator: allocator, logger: l}
}

func (s *service) CreateSlot(
	ctx context.Context,
	actorName string,
	req CreateSlotRequest,
) (SlotResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SlotResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	slot := &GrantPositionSlot{
		ID:                  uuid.New(),
		GrantCode:           strings.TrimSpace(req.GrantCode),
		PositionTitle:       strings.TrimSpace(req.PositionTitle),
		GrantPositionNumber: req.GrantPositionNumber,
		CreatedBy:           actorName,
	}

	if err := qtx.CreateSlot(ctx, slot); err != nil {
		return SlotResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SlotResponse{}, err
	}

	return mapSlotToResponse(*slot), nil
}

func (s *service) GetAllSlots(ctx context.Context) ([]SlotResponse, error) {
	slots, err := s.repo.FindAllSlots(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]SlotResponse, len(slots))
	for i, slot := range slots {
		res[i] = mapSlotToResponse(slot)
	}
	return res, nil
}

func (s *service) GetByEmployment(ctx context.Context, employmentID string) ([]AllocationResponse, error) {
	if _, err := uuid.Parse(employmentID); err != nil {
		return nil, fundingerrors.ErrInvalidEmploymentID
	}

	allocations, err := s.repo.FindByEmployment(ctx, employmentID)
	if err != nil {
		return nil, err
	}

	res := make([]AllocationResponse, len(allocations))
	for i, a := range allocations {
		res[i] = MapAllocationToResponse(a)
	}
	return res, nil
}

func (s *service) ReplaceForEmployment(
	ctx context.Context,
	actorName, employmentID string,
	req ReplaceAllocationsRequest,
) ([]AllocationResponse, error) {
	inputs, err := ParseInputs(req.Allocations)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	allocations, err := s.allocator.WithTx(tx).Replace(ctx, req.EmployeeID, employmentID, inputs, actorName)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	res := make([]AllocationResponse, len(allocations))
	for i, a := range allocations {
		res[i] = MapAllocationToResponse(a)
	}
	return res, nil
}

// ParseInputs converts wire DTOs into allocator inputs, parsing dates and
// money up front so the allocator only sees typed values.
func ParseInputs(dtos []AllocationInputDTO) ([]AllocationInput, error) {
	inputs := make([]AllocationInput, len(dtos))
	for i, d := range dtos {
		start, err := time.Parse("2006-01-02", d.StartDate)
		if err != nil {
			return nil, fundingerrors.ErrInvalidDateRange
		}

		in := AllocationInput{
			AllocationType:       d.AllocationType,
			PositionSlotID:       d.PositionSlotID,
			GrantID:              d.GrantID,
			DepartmentPositionID: d.DepartmentPositionID,
			Description:          d.Description,
			LevelOfEffort:        decimal.NewFromFloat(d.LevelOfEffort),
			StartDate:            start,
		}
		if d.EndDate != "" {
			end, err := time.Parse("2006-01-02", d.EndDate)
			if err != nil {
				return nil, fundingerrors.ErrInvalidDateRange
			}
			in.EndDate = &end
		}
		if d.AllocatedAmount != nil {
			amount := decimal.NewFromFloat(*d.AllocatedAmount)
			in.AllocatedAmount = &amount
		}

		inputs[i] = in
	}
	return inputs, nil
}

func mapSlotToResponse(s GrantPositionSlot) SlotResponse {
	return SlotResponse{
		ID:                  s.ID.String(),
		GrantCode:           s.GrantCode,
		PositionTitle:       s.PositionTitle,
		GrantPositionNumber: s.GrantPositionNumber,
		CreatedBy:           s.CreatedBy,
	}
}

func MapAllocationToResponse(a EmployeeFundingAllocation) AllocationResponse {
	resp := AllocationResponse{
		ID:             a.ID.String(),
		EmployeeID:     a.EmployeeID.String(),
		EmploymentID:   a.EmploymentID.String(),
		AllocationType: a.AllocationType,
		LevelOfEffort:  a.LevelOfEffort.Mul(hundred).String(),
		StartDate:      a.StartDate.Format("2006-01-02"),
	}
	if a.PositionSlotID != nil {
		resp.PositionSlotID = a.PositionSlotID.String()
	}
	if a.OrgFundedID != nil {
		resp.OrgFundedID = a.OrgFundedID.String()
	}
	if a.AllocatedAmount != nil {
		resp.AllocatedAmount = a.AllocatedAmount.String()
	}
	if a.EndDate != nil {
		resp.EndDate = a.EndDate.Format("2006-01-02")
	}
	return resp
}
