package leavetype

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/leavebalance"
	leavetypeerrors "github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/leavetype/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_type_service.go -destination=mock/leave_type_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorName string, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	GetAll(ctx context.Context) ([]LeaveTypeResponse, error)
	GetByID(ctx context.Context, id string) (LeaveTypeResponse, error)
	Update(ctx context.Context, actorName, id string, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	ledger leavebalance.Ledger
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, ledger leavebalance.Ledger, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavetype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavetype.service")
	}
	return &service{db: db, repo: repo, ledger: ledger, logger: l}
}

func validDuration(d decimal.Decimal) bool {
	if d.IsNegative() {
		return false
	}
	return d.Mul(decimal.NewFromInt(2)).IsInteger()
}

// Create inserts the type and seeds a balance row for every current employee
// in the same transaction, so a new type is usable the moment it exists.
func (s *service) Create(
	ctx context.Context,
	actorName string,
	req CreateLeaveTypeRequest,
) (LeaveTypeResponse, error) {
	duration := decimal.NewFromFloat(req.DefaultDuration)
	if !validDuration(duration) {
		return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidDuration
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveTypeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lt := &LeaveType{
		ID:                 uuid.New(),
		Name:               strings.TrimSpace(req.Name),
		DefaultDuration:    duration,
		RequiresAttachment: req.RequiresAttachment,
		Description:        req.Description,
		CreatedBy:          actorName,
	}

	if err := qtx.Create(ctx, lt); err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	year := time.Now().UTC().Year()
	seeded, err := s.ledger.WithTx(tx).BulkInitialize(ctx, lt.ID.String(), duration, year)
	if err != nil {
		return LeaveTypeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return LeaveTypeResponse{}, err
	}

	s.logger.Info("leave type created",
		zap.String("leave_type_id", lt.ID.String()),
		zap.String("name", lt.Name),
		zap.Int64("balances_seeded", seeded),
	)

	return mapToResponse(*lt), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveTypeResponse, error) {
	types, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(types), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveTypeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidLeaveTypeID
	}

	lt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*lt), nil
}

func (s *service) Update(
	ctx context.Context,
	actorName, id string,
	req UpdateLeaveTypeRequest,
) (LeaveTypeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidLeaveTypeID
	}

	duration := decimal.NewFromFloat(req.DefaultDuration)
	if !validDuration(duration) {
		return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidDuration
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveTypeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lt, err := qtx.FindByID(ctx, id)
	if err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	lt.Name = strings.TrimSpace(req.Name)
	lt.DefaultDuration = duration
	lt.RequiresAttachment = req.RequiresAttachment
	lt.Description = req.Description
	lt.UpdatedBy = actorName

	if err := qtx.Update(ctx, lt); err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return LeaveTypeResponse{}, err
	}

	return mapToResponse(*lt), nil
}

// Delete soft-deletes a type. A type referenced by balances or request line
// items is rejected: the dependent history must remain resolvable.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return leavetypeerrors.ErrInvalidLeaveTypeID
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

	inUse, err := qtx.InUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return leavetypeerrors.ErrLeaveTypeInUse
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}

	return tx.Commit()
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leavetypeerrors.ErrLeaveTypeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_leave_types_name" {
		return leavetypeerrors.ErrDuplicateName
	}
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_leave_types_name") {
		return leavetypeerrors.ErrDuplicateName
	}

	return err
}

func mapToResponse(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:                 lt.ID.String(),
		Name:               lt.Name,
		DefaultDuration:    lt.DefaultDuration.String(),
		RequiresAttachment: lt.RequiresAttachment,
		Description:        lt.Description,
		CreatedBy:          lt.CreatedBy,
		UpdatedBy:          lt.UpdatedBy,
	}
}

func mapToListResponse(types []LeaveType) []LeaveTypeResponse {
	res := make([]LeaveTypeResponse, len(types))
	for i, lt := range types {
		res[i] = mapToResponse(lt)
	}
	return res
}
