package domain

// EnforceRequest asks whether a portal role may perform action on resource.
type EnforceRequest struct {
	Role     string `json:"role,omitempty"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PermissionResponse struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}
