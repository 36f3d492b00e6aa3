package funding_test

import (
	"testing"

	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/funding"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func efforts(values ...string) []decimal.Decimal {
	res := make([]decimal.Decimal, len(values))
	for i, v := range values {
		res[i] = decimal.RequireFromString(v)
	}
	return res
}

func TestValidateEffortTotal(t *testing.T) {
	t.Run("exactly one hundred passes", func(t *testing.T) {
		verdict := funding.ValidateEffortTotal(efforts("60", "40"))

		assert.True(t, verdict.Valid)
		assert.Equal(t, "100", verdict.Total.String())
	})

	t.Run("single full allocation passes", func(t *testing.T) {
		verdict := funding.ValidateEffortTotal(efforts("100"))

		assert.True(t, verdict.Valid)
	})

	t.Run("fractional split passes", func(t *testing.T) {
		verdict := funding.ValidateEffortTotal(efforts("33.5", "33.5", "33"))

		assert.True(t, verdict.Valid)
	})

	t.Run("under one hundred fails with total surfaced", func(t *testing.T) {
		verdict := funding.ValidateEffortTotal(efforts("60", "30"))

		assert.False(t, verdict.Valid)
		assert.Equal(t, "90", verdict.Total.String())
	})

	t.Run("over one hundred fails", func(t *testing.T) {
		verdict := funding.ValidateEffortTotal(efforts("60", "50"))

		assert.False(t, verdict.Valid)
		assert.Equal(t, "110", verdict.Total.String())
	})

	t.Run("empty set fails", func(t *testing.T) {
		verdict := funding.ValidateEffortTotal(nil)

		assert.False(t, verdict.Valid)
		assert.Equal(t, "0", verdict.Total.String())
	})
}

func TestCheckGrantCapacity(t *testing.T) {
	t.Run("below capacity passes", func(t *testing.T) {
		verdict := funding.CheckGrantCapacity(1, 2)

		assert.True(t, verdict.Valid)
		assert.Equal(t, int64(1), verdict.CurrentCount)
		assert.Equal(t, 2, verdict.Capacity)
	})

	t.Run("at capacity rejects the next seat", func(t *testing.T) {
		verdict := funding.CheckGrantCapacity(2, 2)

		assert.False(t, verdict.Valid)
	})

	t.Run("zero capacity means unlimited", func(t *testing.T) {
		verdict := funding.CheckGrantCapacity(500, 0)

		assert.True(t, verdict.Valid)
	})
}
