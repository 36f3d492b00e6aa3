package funding

import (
	"context"
	"database/sql"
	"errors"
	"time"

	fundingerrors "github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/funding/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AllocationInput is one row of a replacement allocation set. LevelOfEffort
// uses the 0-100 scale; conversion to the stored fraction happens here.
type AllocationInput struct {
	AllocationType       string
	PositionSlotID       string
	GrantID              string
	DepartmentPositionID string
	Description          string
	LevelOfEffort        decimal.Decimal
	AllocatedAmount      *decimal.Decimal
	StartDate            time.Time
	EndDate              *time.Time
}

// Allocator owns every mutation of an employment's funding allocation set.
// Sets are replaced wholesale, never patched: the full distribution is
// validated and re-derived on each change.
type Allocator interface {
	WithTx(tx *sql.Tx) Allocator
	EnsureNoActive(ctx context.Context, employeeID, employmentID string, asOf time.Time) error
	Replace(ctx context.Context, employeeID, employmentID string, inputs []AllocationInput, actorName string) ([]EmployeeFundingAllocation, error)
	Clear(ctx context.Context, employmentID string) error
}

type allocator struct {
	repo   Repository
	logger *zap.Logger
}

func NewAllocator(repo Repository, logger ...*zap.Logger) Allocator {
	l := zap.L().Named("funding.allocator")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("funding.allocator")
	}
	return &allocator{repo: repo, logger: l}
}

func (a *allocator) WithTx(tx *sql.Tx) Allocator {
	return &allocator{repo: a.repo.WithTx(tx), logger: a.logger}
}

// EnsureNoActive guards the create path: the employee may not already hold
// an active allocation under another employment when the new one starts.
func (a *allocator) EnsureNoActive(ctx context.Context, employeeID, employmentID string, asOf time.Time) error {
	exists, err := a.repo.HasActiveAllocation(ctx, employeeID, employmentID, asOf)
	if err != nil {
		return err
	}
	if exists {
		return fundingerrors.ErrActiveAllocationExists
	}
	return nil
}

func (a *allocator) Replace(
	ctx context.Context,
	employeeID, employmentID string,
	inputs []AllocationInput,
	actorName string,
) ([]EmployeeFundingAllocation, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, fundingerrors.ErrInvalidEmployeeID
	}
	emplID, err := uuid.Parse(employmentID)
	if err != nil {
		return nil, fundingerrors.ErrInvalidEmploymentID
	}
	if len(inputs) == 0 {
		return nil, fundingerrors.ErrNoAllocations
	}

	if err := validateShapes(inputs); err != nil {
		return nil, err
	}

	efforts := make([]decimal.Decimal, len(inputs))
	for i, in := range inputs {
		efforts[i] = in.LevelOfEffort
	}
	if verdict := ValidateEffortTotal(efforts); !verdict.Valid {
		return nil, fundingerrors.ErrEffortTotalInvalid.WithDetails(map[string]any{
			"current_total": verdict.Total.String(),
			"expected":      "100",
		})
	}

	// The old set goes first so the replacement never counts against itself
	// in the capacity check.
	if err := a.repo.DeleteByEmployment(ctx, employmentID); err != nil {
		return nil, err
	}

	if err := a.checkCapacities(ctx, inputs); err != nil {
		return nil, err
	}

	allocations := make([]EmployeeFundingAllocation, 0, len(inputs))
	for _, in := range inputs {
		alloc := EmployeeFundingAllocation{
			ID:              uuid.New(),
			EmployeeID:      empID,
			EmploymentID:    emplID,
			AllocationType:  in.AllocationType,
			LevelOfEffort:   in.LevelOfEffort.Div(hundred),
			AllocatedAmount: in.AllocatedAmount,
			StartDate:       in.StartDate,
			EndDate:         in.EndDate,
			CreatedBy:       actorName,
		}

		switch in.AllocationType {
		case AllocationTypeGrant:
			slotID := uuid.MustParse(in.PositionSlotID)
			alloc.PositionSlotID = &slotID
		case AllocationTypeOrgFunded:
			orgFunded := &OrgFundedAllocation{
				ID:          uuid.New(),
				Description: in.Description,
			}
			if in.GrantID != "" {
				gid, err := uuid.Parse(in.GrantID)
				if err != nil {
					return nil, fundingerrors.ErrOrgFundedShape
				}
				orgFunded.GrantID = &gid
			}
			if in.DepartmentPositionID != "" {
				did, err := uuid.Parse(in.DepartmentPositionID)
				if err != nil {
					return nil, fundingerrors.ErrOrgFundedShape
				}
				orgFunded.DepartmentPositionID = &did
			}
			if err := a.repo.CreateOrgFunded(ctx, orgFunded); err != nil {
				return nil, err
			}
			alloc.OrgFundedID = &orgFunded.ID
		}

		allocations = append(allocations, alloc)
	}

	if err := a.repo.CreateAllocations(ctx, allocations); err != nil {
		return nil, err
	}

	a.logger.Info("funding allocations replaced",
		zap.String("employment_id", employmentID),
		zap.Int("allocations", len(allocations)),
	)
	return allocations, nil
}

func (a *allocator) Clear(ctx context.Context, employmentID string) error {
	if _, err := uuid.Parse(employmentID); err != nil {
		return fundingerrors.ErrInvalidEmploymentID
	}
	return a.repo.DeleteByEmployment(ctx, employmentID)
}

func validateShapes(inputs []AllocationInput) error {
	for _, in := range inputs {
		if in.LevelOfEffort.IsNegative() || in.LevelOfEffort.GreaterThan(hundred) {
			return fundingerrors.ErrInvalidEffort
		}
		if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
			return fundingerrors.ErrInvalidDateRange
		}

		switch in.AllocationType {
		case AllocationTypeGrant:
			if in.PositionSlotID == "" || in.GrantID != "" || in.DepartmentPositionID != "" {
				return fundingerrors.ErrSlotRequired
			}
			if _, err := uuid.Parse(in.PositionSlotID); err != nil {
				return fundingerrors.ErrInvalidSlotID
			}
		case AllocationTypeOrgFunded:
			if in.PositionSlotID != "" {
				return fundingerrors.ErrOrgFundedShape
			}
		default:
			return fundingerrors.ErrInvalidAllocationType
		}
	}
	return nil
}

// checkCapacities locks each referenced slot and verifies it never exceeds
// its seat count while the new claims are active. Concurrency only changes
// when an allocation starts, so it is enough to evaluate every activation
// instant that lands inside a new claim's range: the claims' own start dates
// and the start dates of existing allocations overlapping the claim window.
func (a *allocator) checkCapacities(ctx context.Context, inputs []AllocationInput) error {
	claimsBySlot := make(map[string][]AllocationInput)
	for _, in := range inputs {
		if in.AllocationType != AllocationTypeGrant {
			continue
		}
		claimsBySlot[in.PositionSlotID] = append(claimsBySlot[in.PositionSlotID], in)
	}

	for slotID, claims := range claimsBySlot {
		slot, err := a.repo.FindSlotForUpdate(ctx, slotID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fundingerrors.ErrSlotNotFound
			}
			return err
		}
		if slot.GrantPositionNumber <= 0 {
			continue
		}

		windowStart, windowEnd := claimsWindow(claims)
		existing, err := a.repo.FindActiveForSlotInWindow(ctx, slotID, windowStart, windowEnd)
		if err != nil {
			return err
		}

		instants := make([]time.Time, 0, len(claims)+len(existing))
		for _, c := range claims {
			instants = append(instants, c.StartDate)
		}
		for _, e := range existing {
			instants = append(instants, e.StartDate)
		}

		for _, day := range instants {
			var claimed int64
			for _, c := range claims {
				if claimCovers(c, day) {
					claimed++
				}
			}
			if claimed == 0 {
				continue
			}

			var current int64
			for _, e := range existing {
				if e.ActiveOn(day) {
					current++
				}
			}

			verdict := CheckGrantCapacity(current+claimed-1, slot.GrantPositionNumber)
			if !verdict.Valid {
				return fundingerrors.ErrCapacityExceeded.WithDetails(map[string]any{
					"position_slot_id": slotID,
					"as_of":            day.Format("2006-01-02"),
					"current_count":    current,
					"requested":        claimed,
					"capacity":         slot.GrantPositionNumber,
				})
			}
		}
	}
	return nil
}

// claimsWindow is the combined date range the new claims on one slot cover;
// a nil end means at least one claim is open-ended.
func claimsWindow(claims []AllocationInput) (time.Time, *time.Time) {
	start := claims[0].StartDate
	end := claims[0].EndDate
	for _, c := range claims[1:] {
		if c.StartDate.Before(start) {
			start = c.StartDate
		}
		if end == nil {
			continue
		}
		if c.EndDate == nil {
			end = nil
		} else if c.EndDate.After(*end) {
			end = c.EndDate
		}
	}
	return start, end
}

func claimCovers(in AllocationInput, day time.Time) bool {
	if day.Before(in.StartDate) {
		return false
	}
	return in.EndDate == nil || !day.After(*in.EndDate)
}
