package response

import "solosync/internal/usecase"

type SummaryResponse struct {
	PendingAmount float64 `json:"pending_amount"`
	OpenProjects  int     `json:"open_projects"`
}

func FromSummary(s usecase.Summary) SummaryResponse {
	return SummaryResponse{
		PendingAmount: s.PendingAmount,
		OpenProjects:  s.OpenProjects,
	}
}
