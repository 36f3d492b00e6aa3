package leaverequest_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/leaverequest"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestStatisticsCache_Fetch(t *testing.T) {
	ctx := context.Background()
	stats := leaverequest.StatisticsResponse{
		Pending:          3,
		Approved:         7,
		ApprovedDaysYear: "21.5",
		Year:             2026,
	}
	raw, err := json.Marshal(stats)
	assert.NoError(t, err)

	t.Run("success cache hit skips loader", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("leave_request_statistics").SetVal(string(raw))

		cache := leaverequest.NewStatisticsCache(rdb)
		got, err := cache.Fetch(ctx, func(ctx context.Context) (leaverequest.StatisticsResponse, error) {
			t.Fatal("loader must not run on a cache hit")
			return leaverequest.StatisticsResponse{}, nil
		})

		assert.NoError(t, err)
		assert.Equal(t, stats, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success cache miss loads and stores", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("leave_request_statistics").RedisNil()
		mock.ExpectGet("leave_request_statistics").RedisNil()
		mock.ExpectSet("leave_request_statistics", raw, 30*time.Second).SetVal("OK")

		cache := leaverequest.NewStatisticsCache(rdb)
		loaded := false
		got, err := cache.Fetch(ctx, func(ctx context.Context) (leaverequest.StatisticsResponse, error) {
			loaded = true
			return stats, nil
		})

		assert.NoError(t, err)
		assert.True(t, loaded)
		assert.Equal(t, stats, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success nil client is a pass-through", func(t *testing.T) {
		cache := leaverequest.NewStatisticsCache(nil)

		got, err := cache.Fetch(ctx, func(ctx context.Context) (leaverequest.StatisticsResponse, error) {
			return stats, nil
		})

		assert.NoError(t, err)
		assert.Equal(t, stats, got)
	})

	t.Run("negative loader failure propagates", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("leave_request_statistics").RedisNil()
		mock.ExpectGet("leave_request_statistics").RedisNil()

		cache := leaverequest.NewStatisticsCache(rdb)
		_, err := cache.Fetch(ctx, func(ctx context.Context) (leaverequest.StatisticsResponse, error) {
			return leaverequest.StatisticsResponse{}, errors.New("query failed")
		})

		assert.Error(t, err)
	})
}

func TestStatisticsCache_Invalidate(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectDel("leave_request_statistics").SetVal(1)

	cache := leaverequest.NewStatisticsCache(rdb)
	cache.Invalidate(context.Background())

	assert.NoError(t, mock.ExpectationsWereMet())
}
