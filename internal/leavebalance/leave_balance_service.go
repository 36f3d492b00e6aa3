package leavebalance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	leavebalanceerrors "github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/leavebalance/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_balance_service.go -destination=mock/leave_balance_service_mock.go -package=mock
type Service interface {
	GetByKey(ctx context.Context, employeeID, leaveTypeID string, year int) (LeaveBalanceResponse, error)
	GetAllByEmployee(ctx context.Context, employeeID string, year int) ([]LeaveBalanceResponse, error)
	BulkInitialize(ctx context.Context, req BulkInitializeRequest) (BulkInitializeResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	ledger Ledger
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, ledger Ledger, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavebalance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavebalance.service")
	}
	return &service{db: db, repo: repo, ledger: ledger, logger: l}
}

func normalizeYear(year int) int {
	if year == 0 {
		return time.Now().UTC().Year()
	}
	return year
}

func (s *service) GetByKey(
	ctx context.Context,
	employeeID, leaveTypeID string,
	year int,
) (LeaveBalanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return LeaveBalanceResponse{}, leavebalanceerrors.ErrInvalidEmployeeID
	}
	if _, err := uuid.Parse(leaveTypeID); err != nil {
		return LeaveBalanceResponse{}, leavebalanceerrors.ErrInvalidLeaveTypeID
	}
	year = normalizeYear(year)

	b, err := s.repo.FindByKey(ctx, employeeID, leaveTypeID, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveBalanceResponse{}, leavebalanceerrors.ErrBalanceNotFound
		}
		return LeaveBalanceResponse{}, err
	}

	return mapToResponse(*b), nil
}

func (s *service) GetAllByEmployee(
	ctx context.Context,
	employeeID string,
	year int,
) ([]LeaveBalanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, leavebalanceerrors.ErrInvalidEmployeeID
	}
	year = normalizeYear(year)

	balances, err := s.repo.FindAllByEmployee(ctx, employeeID, year)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(balances), nil
}

// BulkInitialize seeds a balance row for every employee that lacks one for
// the type/year, using the type's default duration. Running it twice is a
// no-op for already seeded employees.
func (s *service) BulkInitialize(
	ctx context.Context,
	req BulkInitializeRequest,
) (BulkInitializeResponse, error) {
	year := normalizeYear(req.Year)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BulkInitializeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	defaultDays, err := qtx.FindTypeDefault(ctx, req.LeaveTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BulkInitializeResponse{}, leavebalanceerrors.ErrInvalidLeaveTypeID
		}
		return BulkInitializeResponse{}, err
	}
	if defaultDays.Equal(decimal.Zero) {
		s.logger.Debug("bulk initialize with zero default duration",
			zap.String("leave_type_id", req.LeaveTypeID),
		)
	}

	created, err := s.ledger.WithTx(tx).BulkInitialize(ctx, req.LeaveTypeID, defaultDays, year)
	if err != nil {
		return BulkInitializeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return BulkInitializeResponse{}, err
	}

	return BulkInitializeResponse{
		LeaveTypeID: req.LeaveTypeID,
		Year:        year,
		Created:     created,
	}, nil
}

func mapToResponse(b LeaveBalance) LeaveBalanceResponse {
	return LeaveBalanceResponse{
		ID:            b.ID.String(),
		EmployeeID:    b.EmployeeID.String(),
		LeaveTypeID:   b.LeaveTypeID.String(),
		Year:          b.Year,
		TotalDays:     b.TotalDays.String(),
		UsedDays:      b.UsedDays.String(),
		RemainingDays: b.RemainingDays().String(),
	}
}

func mapToListResponse(balances []LeaveBalance) []LeaveBalanceResponse {
	res := make([]LeaveBalanceResponse, len(balances))
	for i, b := range balances {
		res[i] = mapToResponse(b)
	}
	return res
}
