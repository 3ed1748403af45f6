package interfaces

import (
	"context"

	"solosync/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.
type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
}
