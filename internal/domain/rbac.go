package domain

// EnforceRequest is the authorization question asked by the rbac middleware.
type EnforceRequest struct {
	Role     string
	Resource string
	Action   string
}
