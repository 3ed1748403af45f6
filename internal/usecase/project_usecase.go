package usecase

import (
	"context"
	"errors"
	"strings"

	"solosync/internal/domain/entities"
	"solosync/internal/usecase/interfaces"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidProjectID     = errors.New("invalid project id")
	ErrInvalidProjectStatus = errors.New("invalid project status")
)

// IProjectUseCase exposes project board operations.
type IProjectUseCase interface {
	List(ctx context.Context) ([]entities.Project, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error)
}

type ProjectUseCase struct {
	repo interfaces.IProjectRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

func (u *ProjectUseCase) List(ctx context.Context) ([]entities.Project, error) {
	return u.repo.List(ctx)
}

func (u *ProjectUseCase) UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	if !entities.ValidProjectStatus(status) {
		return entities.Project{}, ErrInvalidProjectStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return updated, nil
}
