package holiday_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/holiday"
	holidayerrors "github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/holiday/errors"

	"github.com/stretchr/testify/assert"
)

type fakeHolidayRepository struct {
	withTxFn           func(tx *sql.Tx) holiday.Repository
	createFn           func(ctx context.Context, h *holiday.Holiday) error
	findAllByYearFn    func(ctx context.Context, year int) ([]holiday.Holiday, error)
	findByIDFn         func(ctx context.Context, id string) (*holiday.Holiday, error)
	findDatesBetweenFn func(ctx context.Context, start, end time.Time) ([]time.Time, error)
	updateFn           func(ctx context.Context, h *holiday.Holiday) error
	deleteFn           func(ctx context.Context, id string) error
}

func (f *fakeHolidayRepository) WithTx(tx *sql.Tx) holiday.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeHolidayRepository) Create(ctx context.Context, h *holiday.Holiday) error {
	if f.createFn != nil {
		return f.createFn(ctx, h)
	}
	return nil
}

func (f *fakeHolidayRepository) FindAllByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	if f.findAllByYearFn != nil {
		return f.findAllByYearFn(ctx, year)
	}
	return nil, nil
}

func (f *fakeHolidayRepository) FindByID(ctx context.Context, id string) (*holiday.Holiday, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeHolidayRepository) FindDatesBetween(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	if f.findDatesBetweenFn != nil {
		return f.findDatesBetweenFn(ctx, start, end)
	}
	return nil, nil
}

func (f *fakeHolidayRepository) Update(ctx context.Context, h *holiday.Holiday) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, h)
	}
	return nil
}

func (f *fakeHolidayRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCalendar_WorkingDays(t *testing.T) {
	ctx := context.Background()

	t.Run("success weekdays only", func(t *testing.T) {
		cal := holiday.NewCalendar(&fakeHolidayRepository{})

		// Mon 2026-03-02 through Fri 2026-03-06.
		days, err := cal.WorkingDays(ctx, day("2026-03-02"), day("2026-03-06"))

		assert.NoError(t, err)
		assert.Equal(t, "5", days.String())
	})

	t.Run("success skips weekend", func(t *testing.T) {
		cal := holiday.NewCalendar(&fakeHolidayRepository{})

		// Fri 2026-03-06 through Mon 2026-03-09 spans a weekend.
		days, err := cal.WorkingDays(ctx, day("2026-03-06"), day("2026-03-09"))

		assert.NoError(t, err)
		assert.Equal(t, "2", days.String())
	})

	t.Run("success skips holidays", func(t *testing.T) {
		repo := &fakeHolidayRepository{
			findDatesBetweenFn: func(ctx context.Context, start, end time.Time) ([]time.Time, error) {
				return []time.Time{day("2026-03-04")}, nil
			},
		}
		cal := holiday.NewCalendar(repo)

		days, err := cal.WorkingDays(ctx, day("2026-03-02"), day("2026-03-06"))

		assert.NoError(t, err)
		assert.Equal(t, "4", days.String())
	})

	t.Run("success single day range", func(t *testing.T) {
		cal := holiday.NewCalendar(&fakeHolidayRepository{})

		days, err := cal.WorkingDays(ctx, day("2026-03-03"), day("2026-03-03"))

		assert.NoError(t, err)
		assert.Equal(t, "1", days.String())
	})

	t.Run("success weekend-only range is zero", func(t *testing.T) {
		cal := holiday.NewCalendar(&fakeHolidayRepository{})

		days, err := cal.WorkingDays(ctx, day("2026-03-07"), day("2026-03-08"))

		assert.NoError(t, err)
		assert.True(t, days.IsZero())
	})

	t.Run("negative inverted range", func(t *testing.T) {
		cal := holiday.NewCalendar(&fakeHolidayRepository{})

		_, err := cal.WorkingDays(ctx, day("2026-03-09"), day("2026-03-02"))

		assert.ErrorIs(t, err, holidayerrors.ErrInvalidRange)
	})
}
