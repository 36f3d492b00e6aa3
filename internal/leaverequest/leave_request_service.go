package leaverequest

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/events"
	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/holiday"
	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/leavebalance"
	leavebalanceerrors "github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/leavebalance/errors"
	leaverequesterrors "github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/leaverequest/errors"
	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/messaging/kafka"
	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_request_service.go -destination=mock/leave_request_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorName string, req CreateLeaveRequest) (LeaveRequestResponse, error)
	GetAll(ctx context.Context, query ListLeaveRequestsQuery) ([]LeaveRequestResponse, int64, error)
	GetByID(ctx context.Context, id string) (LeaveRequestResponse, error)
	UpdateItems(ctx context.Context, actorName, id string, req UpdateLeaveItemsRequest) (LeaveRequestResponse, error)
	ChangeStatus(ctx context.Context, actorName, id string, req ChangeStatusRequest) (LeaveRequestResponse, error)
	SetApproval(ctx context.Context, actorName, id string, req SetApprovalRequest) (LeaveRequestResponse, error)
	Delete(ctx context.Context, id string) error
	Statistics(ctx context.Context) (StatisticsResponse, error)
}

type service struct {
	db            *sql.DB
	repo          Repository
	ledger        leavebalance.Ledger
	calendar      holiday.Calendar
	outbox        kafka.OutboxRepository
	stats         *StatisticsCache
	requiredRoles []string
	logger        *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	ledger leavebalance.Ledger,
	calendar holiday.Calendar,
	outbox kafka.OutboxRepository,
	stats *StatisticsCache,
	requiredRoles []string,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leaverequest.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaverequest.service")
	}
	return &service{
		db:            db,
		repo:          repo,
		ledger:        ledger,
		calendar:      calendar,
		outbox:        outbox,
		stats:         stats,
		requiredRoles: requiredRoles,
		logger:        l,
	}
}

func (s *service) Create(
	ctx context.Context,
	actorName string,
	req CreateLeaveRequest,
) (LeaveRequestResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return LeaveRequestResponse{}, leaverequesterrors.ErrInvalidEmployeeID
	}

	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return LeaveRequestResponse{}, err
	}

	status := req.InitialStatus
	if status == "" {
		status = StatusPending
	}
	if status != StatusPending && status != StatusApproved {
		return LeaveRequestResponse{}, leaverequesterrors.ErrInvalidInitialStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	items, totalDays, err := s.buildItems(ctx, qtx, req.Items, start, end, len(req.Attachments), req.Reason)
	if err != nil {
		return LeaveRequestResponse{}, err
	}

	request := &LeaveRequest{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		StartDate:  start,
		EndDate:    end,
		TotalDays:  totalDays,
		Reason:     req.Reason,
		Status:     status,
		CreatedBy:  actorName,

		SupervisorApproved:  req.SupervisorApproved,
		HRSiteAdminApproved: req.HRSiteAdminApproved,
	}
	request.SupervisorApprovedDate = parseOptionalDate(req.SupervisorApprovedDate)
	request.HRSiteAdminApprovedDate = parseOptionalDate(req.HRSiteAdminApprovedDate)

	for i := range items {
		items[i].LeaveRequestID = request.ID
	}
	request.Items = items

	for _, a := range req.Attachments {
		request.Attachments = append(request.Attachments, LeaveAttachment{
			ID:             uuid.New(),
			LeaveRequestID: request.ID,
			URL:            a.URL,
			Description:    a.Description,
		})
	}

	if err := qtx.Create(ctx, request); err != nil {
		return LeaveRequestResponse{}, err
	}

	// Imported paper forms arrive already approved and must still pass the
	// availability gate before any deduction sticks.
	if status == StatusApproved {
		if err := s.deductItems(ctx, tx, request); err != nil {
			return LeaveRequestResponse{}, err
		}
	}

	if err := s.writeStatusEvent(ctx, tx, request, "leave_request_created", "", status); err != nil {
		return LeaveRequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return LeaveRequestResponse{}, err
	}

	s.stats.Invalidate(ctx)
	s.logger.Info("leave request created",
		zap.String("leave_request_id", request.ID.String()),
		zap.String("employee_id", request.EmployeeID.String()),
		zap.String("status", request.Status),
		zap.String("total_days", request.TotalDays.String()),
	)

	return mapToResponse(*request), nil
}

func (s *service) GetAll(
	ctx context.Context,
	query ListLeaveRequestsQuery,
) ([]LeaveRequestResponse, int64, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 {
		query.PageSize = 20
	}

	requests, total, err := s.repo.FindPage(
		ctx,
		query.EmployeeID,
		query.Status,
		query.PageSize,
		(query.Page-1)*query.PageSize,
	)
	if err != nil {
		return nil, 0, err
	}

	res := make([]LeaveRequestResponse, len(requests))
	for i, r := range requests {
		res[i] = mapToResponse(r)
	}
	return res, total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveRequestResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveRequestResponse{}, leaverequesterrors.ErrInvalidRequestID
	}

	request, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaverequesterrors.ErrRequestNotFound
		}
		return LeaveRequestResponse{}, err
	}

	return mapToResponse(*request), nil
}

// UpdateItems replaces the line-item set wholesale. An approved request first
// hands its old days back, then re-earns the new set against fresh
// availability, all inside one transaction.
func (s *service) UpdateItems(
	ctx context.Context,
	actorName, id string,
	req UpdateLeaveItemsRequest,
) (LeaveRequestResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveRequestResponse{}, leaverequesterrors.ErrInvalidRequestID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	request, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaverequesterrors.ErrRequestNotFound
		}
		return LeaveRequestResponse{}, err
	}

	if request.Status == StatusApproved {
		if err := s.restoreItems(ctx, tx, request); err != nil {
			return LeaveRequestResponse{}, err
		}
	}

	items, totalDays, err := s.buildItems(
		ctx, qtx, req.Items,
		request.StartDate, request.EndDate,
		len(request.Attachments), request.Reason,
	)
	if err != nil {
		return LeaveRequestResponse{}, err
	}
	for i := range items {
		items[i].LeaveRequestID = request.ID
	}

	if err := qtx.ReplaceItems(ctx, id, items); err != nil {
		return LeaveRequestResponse{}, err
	}

	request.Items = items
	request.TotalDays = totalDays
	request.UpdatedBy = actorName

	if request.Status == StatusApproved {
		if err := s.deductItems(ctx, tx, request); err != nil {
			return LeaveRequestResponse{}, err
		}
	}

	if err := qtx.Save(ctx, request); err != nil {
		return LeaveRequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return LeaveRequestResponse{}, err
	}

	s.stats.Invalidate(ctx)
	return mapToResponse(*request), nil
}

func (s *service) ChangeStatus(
	ctx context.Context,
	actorName, id string,
	req ChangeStatusRequest,
) (LeaveRequestResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveRequestResponse{}, leaverequesterrors.ErrInvalidRequestID
	}
	if !validStatus(req.Status) {
		return LeaveRequestResponse{}, leaverequesterrors.ErrInvalidStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	request, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaverequesterrors.ErrRequestNotFound
		}
		return LeaveRequestResponse{}, err
	}

	oldStatus := request.Status
	changed, err := s.applyStatusTransition(ctx, tx, qtx, request, req.Status, actorName)
	if err != nil {
		return LeaveRequestResponse{}, err
	}

	if changed {
		if err := s.writeStatusEvent(ctx, tx, request, "leave_request_status_changed", oldStatus, request.Status); err != nil {
			return LeaveRequestResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return LeaveRequestResponse{}, err
	}

	if changed {
		s.stats.Invalidate(ctx)
	}
	return mapToResponse(*request), nil
}

// SetApproval records one role's verdict and re-derives the aggregate status
// from the full approval set. Only an actual parent transition touches the
// ledger, so re-submitting the same verdict is a safe no-op.
func (s *service) SetApproval(
	ctx context.Context,
	actorName, id string,
	req SetApprovalRequest,
) (LeaveRequestResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveRequestResponse{}, leaverequesterrors.ErrInvalidRequestID
	}
	if req.ApproverRole == "" {
		return LeaveRequestResponse{}, leaverequesterrors.ErrApprovalRoleRequired
	}
	if req.Status != StatusPending && req.Status != StatusApproved && req.Status != StatusDeclined {
		return LeaveRequestResponse{}, leaverequesterrors.ErrInvalidApprovalStatus
	}

	approverName := req.ApproverName
	if approverName == "" {
		approverName = actorName
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	request, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, leaverequesterrors.ErrRequestNotFound
		}
		return LeaveRequestResponse{}, err
	}

	// Terminal states only leave via deletion; late approval edits against a
	// declined or cancelled request are rejected outright.
	if request.Status == StatusDeclined || request.Status == StatusCancelled {
		return LeaveRequestResponse{}, leaverequesterrors.ErrInvalidTransition
	}

	approval := &LeaveRequestApproval{
		ID:             uuid.New(),
		LeaveRequestID: request.ID,
		ApproverRole:   req.ApproverRole,
		ApproverName:   approverName,
		Status:         req.Status,
	}
	if req.Status != StatusPending {
		now := time.Now().UTC()
		approval.ApprovalDate = &now
	}

	if err := qtx.UpsertApproval(ctx, approval); err != nil {
		return LeaveRequestResponse{}, err
	}

	approvals, err := qtx.FindApprovals(ctx, id)
	if err != nil {
		return LeaveRequestResponse{}, err
	}
	request.Approvals = approvals

	oldStatus := request.Status
	derived := EvaluateOverallStatus(approvals, s.requiredRoles)

	changed := false
	if derived != request.Status {
		changed, err = s.applyStatusTransition(ctx, tx, qtx, request, derived, actorName)
		if err != nil {
			return LeaveRequestResponse{}, err
		}
	}

	if changed {
		if err := s.writeStatusEvent(ctx, tx, request, "leave_request_status_changed", oldStatus, request.Status); err != nil {
			return LeaveRequestResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return LeaveRequestResponse{}, err
	}

	if changed {
		s.stats.Invalidate(ctx)
	}
	return mapToResponse(*request), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return leaverequesterrors.ErrInvalidRequestID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	request, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leaverequesterrors.ErrRequestNotFound
		}
		return err
	}

	if request.Status == StatusApproved {
		if err := s.restoreItems(ctx, tx, request); err != nil {
			return err
		}
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.stats.Invalidate(ctx)
	s.logger.Info("leave request deleted",
		zap.String("leave_request_id", id),
		zap.String("previous_status", request.Status),
	)
	return nil
}

func (s *service) Statistics(ctx context.Context) (StatisticsResponse, error) {
	return s.stats.Fetch(ctx, func(ctx context.Context) (StatisticsResponse, error) {
		counts, err := s.repo.CountByStatus(ctx)
		if err != nil {
			return StatisticsResponse{}, err
		}

		year := time.Now().UTC().Year()
		approvedDays, err := s.repo.SumApprovedDays(ctx, year)
		if err != nil {
			return StatisticsResponse{}, err
		}

		return StatisticsResponse{
			Pending:          counts[StatusPending],
			Approved:         counts[StatusApproved],
			Declined:         counts[StatusDeclined],
			Cancelled:        counts[StatusCancelled],
			ApprovedDaysYear: approvedDays.String(),
			Year:             year,
		}, nil
	})
}

// applyStatusTransition is the single funnel for every status change,
// whether it came from a direct call or from approval re-evaluation. The
// ledger is touched exactly once per effective transition: entering APPROVED
// deducts, leaving APPROVED restores.
func (s *service) applyStatusTransition(
	ctx context.Context,
	tx *sql.Tx,
	qtx Repository,
	request *LeaveRequest,
	newStatus, actorName string,
) (bool, error) {
	oldStatus := request.Status
	if oldStatus == newStatus {
		return false, nil
	}

	if !transitionAllowed(oldStatus, newStatus) {
		return false, leaverequesterrors.ErrInvalidTransition
	}

	if oldStatus != StatusApproved && newStatus == StatusApproved {
		if err := s.deductItems(ctx, tx, request); err != nil {
			return false, err
		}
	}
	if oldStatus == StatusApproved && newStatus != StatusApproved {
		if err := s.restoreItems(ctx, tx, request); err != nil {
			return false, err
		}
	}

	request.Status = newStatus
	request.UpdatedBy = actorName
	if err := qtx.Save(ctx, request); err != nil {
		return false, err
	}

	s.logger.Info("leave request status changed",
		zap.String("leave_request_id", request.ID.String()),
		zap.String("old_status", oldStatus),
		zap.String("new_status", newStatus),
	)
	return true, nil
}

func transitionAllowed(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusApproved || to == StatusDeclined || to == StatusCancelled
	case StatusApproved:
		return to == StatusDeclined || to == StatusCancelled
	default:
		return false
	}
}

// deductItems checks availability for every line item before deducting any of
// them; one short item aborts the whole transition.
func (s *service) deductItems(ctx context.Context, tx *sql.Tx, request *LeaveRequest) error {
	ledger := s.ledger.WithTx(tx)
	year := request.StartDate.Year()
	employeeID := request.EmployeeID.String()

	for _, item := range request.Items {
		avail, err := ledger.Availability(ctx, employeeID, item.LeaveTypeID.String(), year, item.Days, decimal.Zero)
		if err != nil {
			return err
		}
		if !avail.Valid {
			return leavebalanceerrors.ErrInsufficientBalance.WithDetails(map[string]any{
				"leave_type_id": item.LeaveTypeID.String(),
				"requested":     item.Days.String(),
				"available":     avail.Available.String(),
				"shortfall":     avail.Shortfall.String(),
			})
		}
	}

	for _, item := range request.Items {
		if err := ledger.Deduct(ctx, employeeID, item.LeaveTypeID.String(), year, item.Days); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) restoreItems(ctx context.Context, tx *sql.Tx, request *LeaveRequest) error {
	ledger := s.ledger.WithTx(tx)
	year := request.StartDate.Year()
	employeeID := request.EmployeeID.String()

	for _, item := range request.Items {
		if err := ledger.Restore(ctx, employeeID, item.LeaveTypeID.String(), year, item.Days); err != nil {
			return err
		}
	}
	return nil
}

// buildItems validates the incoming line items against the leave type table
// and the calendar. Items with zero days inherit the working-day count of the
// whole range.
func (s *service) buildItems(
	ctx context.Context,
	qtx Repository,
	inputs []LeaveItemInput,
	start, end time.Time,
	attachmentCount int,
	reason string,
) ([]LeaveRequestItem, decimal.Decimal, error) {
	if len(inputs) == 0 {
		return nil, decimal.Zero, leaverequesterrors.ErrNoItems
	}

	seen := make(map[string]struct{}, len(inputs))
	ids := make([]string, 0, len(inputs))
	for _, in := range inputs {
		if _, dup := seen[in.LeaveTypeID]; dup {
			return nil, decimal.Zero, leaverequesterrors.ErrDuplicateLeaveType
		}
		seen[in.LeaveTypeID] = struct{}{}
		ids = append(ids, in.LeaveTypeID)
	}

	infos, err := qtx.FindLeaveTypes(ctx, ids)
	if err != nil {
		return nil, decimal.Zero, err
	}
	infoByID := make(map[string]LeaveTypeInfo, len(infos))
	for _, info := range infos {
		infoByID[info.ID] = info
	}

	var rangeDays decimal.Decimal
	rangeDaysComputed := false

	items := make([]LeaveRequestItem, 0, len(inputs))
	total := decimal.Zero
	for _, in := range inputs {
		info, ok := infoByID[in.LeaveTypeID]
		if !ok {
			return nil, decimal.Zero, leaverequesterrors.ErrUnknownLeaveType
		}
		if info.RequiresAttachment && attachmentCount == 0 && reason == "" {
			return nil, decimal.Zero, leaverequesterrors.ErrAttachmentRequired.WithDetails(map[string]any{
				"leave_type_id":   info.ID,
				"leave_type_name": info.Name,
			})
		}

		days := decimal.NewFromFloat(in.Days)
		if days.IsZero() {
			if !rangeDaysComputed {
				rangeDays, err = s.calendar.WorkingDays(ctx, start, end)
				if err != nil {
					return nil, decimal.Zero, err
				}
				rangeDaysComputed = true
			}
			days = rangeDays
		}
		if !days.IsPositive() || !days.Mul(decimal.NewFromInt(2)).IsInteger() {
			return nil, decimal.Zero, leaverequesterrors.ErrInvalidItemDays
		}

		items = append(items, LeaveRequestItem{
			ID:          uuid.New(),
			LeaveTypeID: uuid.MustParse(in.LeaveTypeID),
			Days:        days,
		})
		total = total.Add(days)
	}

	return items, total, nil
}

func (s *service) writeStatusEvent(
	ctx context.Context,
	tx *sql.Tx,
	request *LeaveRequest,
	eventType, oldStatus, newStatus string,
) error {
	if s.outbox == nil {
		return nil
	}

	payload, err := json.Marshal(events.LeaveRequestStatusChangedEvent{
		EventType:      eventType,
		RequestID:      contextutil.GetRequestID(ctx),
		LeaveRequestID: request.ID.String(),
		EmployeeID:     request.EmployeeID.String(),
		OldStatus:      oldStatus,
		NewStatus:      newStatus,
		TotalDays:      request.TotalDays.String(),
		OccurredAt:     time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "leave_request",
		AggregateID:   request.ID.String(),
		EventType:     eventType,
		Topic:         events.LeaveRequestStatusChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func validStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusDeclined, StatusCancelled:
		return true
	}
	return false
}

func parseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return time.Time{}, time.Time{}, leaverequesterrors.ErrInvalidDateRange
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		return time.Time{}, time.Time{}, leaverequesterrors.ErrInvalidDateRange
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, leaverequesterrors.ErrInvalidDateRange
	}
	if start.Year() != end.Year() {
		return time.Time{}, time.Time{}, leaverequesterrors.ErrCrossYearRange
	}
	return start, end, nil
}

func parseOptionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &d
}

func mapToResponse(r LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:                  r.ID.String(),
		EmployeeID:          r.EmployeeID.String(),
		StartDate:           r.StartDate.Format("2006-01-02"),
		EndDate:             r.EndDate.Format("2006-01-02"),
		TotalDays:           r.TotalDays.String(),
		Reason:              r.Reason,
		Status:              r.Status,
		SupervisorApproved:  r.SupervisorApproved,
		HRSiteAdminApproved: r.HRSiteAdminApproved,
		CreatedBy:           r.CreatedBy,
		UpdatedBy:           r.UpdatedBy,
		Items:               make([]LeaveItemResponse, 0, len(r.Items)),
		Approvals:           make([]ApprovalResponse, 0, len(r.Approvals)),
		Attachments:         make([]AttachmentResponse, 0, len(r.Attachments)),
	}
	if r.SupervisorApprovedDate != nil {
		resp.SupervisorApprovedDate = r.SupervisorApprovedDate.Format("2006-01-02")
	}
	if r.HRSiteAdminApprovedDate != nil {
		resp.HRSiteAdminApprovedDate = r.HRSiteAdminApprovedDate.Format("2006-01-02")
	}

	for _, item := range r.Items {
		resp.Items = append(resp.Items, LeaveItemResponse{
			ID:          item.ID.String(),
			LeaveTypeID: item.LeaveTypeID.String(),
			Days:        item.Days.String(),
		})
	}
	for _, a := range r.Approvals {
		ar := ApprovalResponse{
			ID:           a.ID.String(),
			ApproverRole: a.ApproverRole,
			ApproverName: a.ApproverName,
			Status:       a.Status,
		}
		if a.ApprovalDate != nil {
			ar.ApprovalDate = a.ApprovalDate.Format("2006-01-02")
		}
		resp.Approvals = append(resp.Approvals, ar)
	}
	for _, att := range r.Attachments {
		resp.Attachments = append(resp.Attachments, AttachmentResponse{
			ID:          att.ID.String(),
			URL:         att.URL,
			Description: att.Description,
		})
	}
	return resp
}
