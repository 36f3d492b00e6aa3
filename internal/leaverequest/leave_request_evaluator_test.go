package leaverequest_test

import (
	"testing"

	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/leaverequest"

	"github.com/stretchr/testify/assert"
)

func approval(role, status string) leaverequest.LeaveRequestApproval {
	return leaverequest.LeaveRequestApproval{ApproverRole: role, Status: status}
}

func TestEvaluateOverallStatus(t *testing.T) {
	required := []string{"hr-manager", "hr-assistant"}

	t.Run("all required roles approved", func(t *testing.T) {
		status := leaverequest.EvaluateOverallStatus([]leaverequest.LeaveRequestApproval{
			approval("hr-manager", leaverequest.StatusApproved),
			approval("hr-assistant", leaverequest.StatusApproved),
		}, required)

		assert.Equal(t, leaverequest.StatusApproved, status)
	})

	t.Run("one required role still pending", func(t *testing.T) {
		status := leaverequest.EvaluateOverallStatus([]leaverequest.LeaveRequestApproval{
			approval("hr-manager", leaverequest.StatusApproved),
		}, required)

		assert.Equal(t, leaverequest.StatusPending, status)
	})

	t.Run("any required decline wins", func(t *testing.T) {
		status := leaverequest.EvaluateOverallStatus([]leaverequest.LeaveRequestApproval{
			approval("hr-manager", leaverequest.StatusApproved),
			approval("hr-assistant", leaverequest.StatusDeclined),
		}, required)

		assert.Equal(t, leaverequest.StatusDeclined, status)
	})

	t.Run("non-required role carries no weight", func(t *testing.T) {
		status := leaverequest.EvaluateOverallStatus([]leaverequest.LeaveRequestApproval{
			approval("supervisor", leaverequest.StatusDeclined),
			approval("hr-manager", leaverequest.StatusApproved),
			approval("hr-assistant", leaverequest.StatusApproved),
		}, required)

		assert.Equal(t, leaverequest.StatusApproved, status)
	})

	t.Run("single role acts as simple approval", func(t *testing.T) {
		status := leaverequest.EvaluateOverallStatus([]leaverequest.LeaveRequestApproval{
			approval("hr-manager", leaverequest.StatusApproved),
		}, []string{"hr-manager"})

		assert.Equal(t, leaverequest.StatusApproved, status)
	})

	t.Run("no approvals yet", func(t *testing.T) {
		status := leaverequest.EvaluateOverallStatus(nil, required)

		assert.Equal(t, leaverequest.StatusPending, status)
	})

	t.Run("empty required set never auto-approves", func(t *testing.T) {
		status := leaverequest.EvaluateOverallStatus([]leaverequest.LeaveRequestApproval{
			approval("hr-manager", leaverequest.StatusApproved),
		}, nil)

		assert.Equal(t, leaverequest.StatusPending, status)
	})

	t.Run("idempotent for identical input", func(t *testing.T) {
		approvals := []leaverequest.LeaveRequestApproval{
			approval("hr-manager", leaverequest.StatusApproved),
			approval("hr-assistant", leaverequest.StatusApproved),
		}

		first := leaverequest.EvaluateOverallStatus(approvals, required)
		second := leaverequest.EvaluateOverallStatus(approvals, required)

		assert.Equal(t, first, second)
	})
}
