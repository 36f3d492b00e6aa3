package funding

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// EffortTotal is the verdict of ValidateEffortTotal; Total is the computed
// 0-100 sum, surfaced to the caller even on failure so the input can be
// corrected.
type EffortTotal struct {
	Valid bool
	Total decimal.Decimal
}

// ValidateEffortTotal sums the 0-100 effort inputs of an allocation set.
// The set is valid only when the sum is exactly 100.
func ValidateEffortTotal(efforts []decimal.Decimal) EffortTotal {
	total := decimal.Zero
	for _, e := range efforts {
		total = total.Add(e)
	}
	return EffortTotal{Valid: total.Equal(hundred), Total: total}
}

// CapacityCheck is the verdict of a grant slot capacity count.
type CapacityCheck struct {
	Valid        bool
	CurrentCount int64
	Capacity     int
}

// CheckGrantCapacity compares the number of active allocations on a slot
// against its configured seat count. Capacity zero means unlimited.
func CheckGrantCapacity(currentCount int64, capacity int) CapacityCheck {
	if capacity <= 0 {
		return CapacityCheck{Valid: true, CurrentCount: currentCount, Capacity: capacity}
	}
	return CapacityCheck{
		Valid:        currentCount < int64(capacity),
		CurrentCount: currentCount,
		Capacity:     capacity,
	}
}
