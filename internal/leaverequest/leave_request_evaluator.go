package leaverequest

// EvaluateOverallStatus derives the aggregate status from the role-based
// approval rows. Rules, in order:
//
//  1. any required role declined -> DECLINED
//  2. every required role approved -> APPROVED
//  3. otherwise -> PENDING
//
// Approvals for roles outside the required set are recorded but carry no
// weight. The function is pure; the caller decides whether the derived
// status is an actual transition worth applying.
func EvaluateOverallStatus(approvals []LeaveRequestApproval, requiredRoles []string) string {
	byRole := make(map[string]string, len(approvals))
	for _, a := range approvals {
		byRole[a.ApproverRole] = a.Status
	}

	approvedCount := 0
	for _, role := range requiredRoles {
		switch byRole[role] {
		case StatusDeclined:
			return StatusDeclined
		case StatusApproved:
			approvedCount++
		}
	}

	if len(requiredRoles) > 0 && approvedCount == len(requiredRoles) {
		return StatusApproved
	}
	return StatusPending
}
