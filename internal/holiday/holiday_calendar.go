package holiday

import (
	"context"
	"time"

	holidayerrors "github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/holiday/errors"

	"github.com/shopspring/decimal"
)

// Calendar answers how many working days a date range spans. Weekends and
// stored holidays do not count.
type Calendar interface {
	WorkingDays(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
}

type calendar struct {
	repo Repository
}

func NewCalendar(repo Repository) Calendar {
	return &calendar{repo: repo}
}

func (c *calendar) WorkingDays(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	start = truncateToDate(start)
	end = truncateToDate(end)
	if end.Before(start) {
		return decimal.Zero, holidayerrors.ErrInvalidRange
	}

	holidayDates, err := c.repo.FindDatesBetween(ctx, start, end)
	if err != nil {
		return decimal.Zero, err
	}

	skip := make(map[string]struct{}, len(holidayDates))
	for _, d := range holidayDates {
		skip[d.Format("2006-01-02")] = struct{}{}
	}

	var count int64
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		if _, holiday := skip[d.Format("2006-01-02")]; holiday {
			continue
		}
		count++
	}

	return decimal.NewFromInt(count), nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
