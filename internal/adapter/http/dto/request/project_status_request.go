package request

import "strings"

// ProjectStatusRequest carries the target status for a project patch.
type ProjectStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r ProjectStatusRequest) ResolveStatus() string {
	return strings.TrimSpace(r.Status)
}
