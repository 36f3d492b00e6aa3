package leaverequest

import (
	"context"
	"database/sql"
	"time"

	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/shared/gormtx"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LeaveTypeInfo is the slice of the leave_types row the aggregate needs for
// validation; the leavetype package owns the full entity.
type LeaveTypeInfo struct {
	ID                 string
	Name               string
	RequiresAttachment bool
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *LeaveRequest) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	FindPage(ctx context.Context, employeeID, status string, limit, offset int) ([]LeaveRequest, int64, error)
	Save(ctx context.Context, r *LeaveRequest) error
	ReplaceItems(ctx context.Context, requestID string, items []LeaveRequestItem) error
	UpsertApproval(ctx context.Context, a *LeaveRequestApproval) error
	FindApprovals(ctx context.Context, requestID string) ([]LeaveRequestApproval, error)
	Delete(ctx context.Context, id string) error
	FindLeaveTypes(ctx context.Context, ids []string) ([]LeaveTypeInfo, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	SumApprovedDays(ctx context.Context, year int) (decimal.Decimal, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return gormtx.Conn(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, req *LeaveRequest) error {
	return r.conn(ctx).Create(req).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var req LeaveRequest
	err := r.conn(ctx).
		Preload("Items").
		Preload("Approvals").
		Preload("Attachments").
		First(&req, "id = ?", id).Error
	return &req, err
}

func (r *repository) FindPage(
	ctx context.Context,
	employeeID, status string,
	limit, offset int,
) ([]LeaveRequest, int64, error) {
	q := r.conn(ctx).Model(&LeaveRequest{})
	if employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []LeaveRequest
	err := q.
		Preload("Items").
		Preload("Approvals").
		Preload("Attachments").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&requests).Error
	return requests, total, err
}

func (r *repository) Save(ctx context.Context, req *LeaveRequest) error {
	return r.conn(ctx).
		Omit("Items", "Approvals", "Attachments").
		Save(req).Error
}

// ReplaceItems deletes the whole item set and inserts the new one; partial
// patches of day distributions are not supported.
func (r *repository) ReplaceItems(ctx context.Context, requestID string, items []LeaveRequestItem) error {
	conn := r.conn(ctx)
	if err := conn.Delete(&LeaveRequestItem{}, "leave_request_id = ?", requestID).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return conn.Create(&items).Error
}

// UpsertApproval keeps one approval row per (request, role).
func (r *repository) UpsertApproval(ctx context.Context, a *LeaveRequestApproval) error {
	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "leave_request_id"}, {Name: "approver_role"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"approver_name", "status", "approval_date", "updated_at",
			}),
		}).
		Create(a).Error
}

func (r *repository) FindApprovals(ctx context.Context, requestID string) ([]LeaveRequestApproval, error) {
	var approvals []LeaveRequestApproval
	err := r.conn(ctx).
		Where("leave_request_id = ?", requestID).
		Order("approver_role ASC").
		Find(&approvals).Error
	return approvals, err
}

// Delete removes the aggregate and all child rows.
func (r *repository) Delete(ctx context.Context, id string) error {
	conn := r.conn(ctx)
	if err := conn.Delete(&LeaveRequestItem{}, "leave_request_id = ?", id).Error; err != nil {
		return err
	}
	if err := conn.Delete(&LeaveRequestApproval{}, "leave_request_id = ?", id).Error; err != nil {
		return err
	}
	if err := conn.Delete(&LeaveAttachment{}, "leave_request_id = ?", id).Error; err != nil {
		return err
	}
	return conn.Delete(&LeaveRequest{}, "id = ?", id).Error
}

func (r *repository) FindLeaveTypes(ctx context.Context, ids []string) ([]LeaveTypeInfo, error) {
	var infos []LeaveTypeInfo
	err := r.conn(ctx).
		Table("leave_types").
		Where("id IN ?", ids).
		Where("deleted_at IS NULL").
		Select("id", "name", "requires_attachment").
		Scan(&infos).Error
	return infos, err
}

func (r *repository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	err := r.conn(ctx).
		Model(&LeaveRequest{}).
		Select("status", "COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

func (r *repository) SumApprovedDays(ctx context.Context, year int) (decimal.Decimal, error) {
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	var row struct {
		Total decimal.Decimal
	}
	err := r.conn(ctx).
		Model(&LeaveRequest{}).
		Where("status = ?", StatusApproved).
		Where("start_date >= ? AND start_date < ?", start, end).
		Select("COALESCE(SUM(total_days), 0) AS total").
		Scan(&row).Error
	return row.Total, err
}
