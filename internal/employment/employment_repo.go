package employment

import (
	"context"
	"database/sql"

	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/shared/gormtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employment_repo.go -destination=mock/employment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employment) error
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Employment, error)
	FindByID(ctx context.Context, id string) (*Employment, error)
	Update(ctx context.Context, empl *Employment) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, empl *Employment) error {
	return r.conn(ctx).Create(empl).Error
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Employment, error) {
	var empls []Employment
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employment, error) {
	var empl Employment
	err := r.conn(ctx).
		First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) Update(ctx context.Context, empl *Employment) error {
	return r.conn(ctx).Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.conn(ctx).Delete(&Employment{}, "id = ?", id).Error
}
