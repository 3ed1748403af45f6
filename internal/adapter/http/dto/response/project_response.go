package response

import (
	"time"

	"solosync/internal/domain/entities"
)

type ProjectResponse struct {
	ID         string     `json:"id"`
	ClientName string     `json:"client_name"`
	TaskTitle  string     `json:"task_title"`
	Budget     float64    `json:"budget"`
	Deadline   *time.Time `json:"deadline,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:         p.ID,
		ClientName: p.ClientName,
		TaskTitle:  p.TaskTitle,
		Budget:     p.Budget,
		Deadline:   p.Deadline,
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt,
	}
}

func FromProjects(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}
