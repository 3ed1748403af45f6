package usecase

import (
	"context"
	"errors"
	"strings"

	"solosync/internal/domain/entities"
	"solosync/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvoiceNotFound          = errors.New("invoice not found")
	ErrInvalidInvoiceID         = errors.New("invalid invoice id")
	ErrInvalidInvoiceTransition = errors.New("invalid invoice status transition")
)

// IInvoiceUseCase exposes invoice lifecycle operations.
//
// Sending an invoice moves its project to Invoiced; recording payment moves
// the project to Paid. The two writes are independent: if the project update
// fails after the invoice update succeeded, the invoice status stands and
// the error is surfaced.
type IInvoiceUseCase interface {
	List(ctx context.Context) ([]entities.Invoice, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Invoice, error)
	MarkSent(ctx context.Context, id string) (entities.Invoice, error)
	MarkPaid(ctx context.Context, id string) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo        interfaces.IInvoiceRepository
	projectRepo interfaces.IProjectRepository
	logger      *zap.Logger
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, projectRepo interfaces.IProjectRepository, logger *zap.Logger) *InvoiceUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceUseCase{repo: repo, projectRepo: projectRepo, logger: logger}
}

func (u *InvoiceUseCase) List(ctx context.Context) ([]entities.Invoice, error) {
	return u.repo.List(ctx)
}

func (u *InvoiceUseCase) ListByProjectID(ctx context.Context, projectID string) ([]entities.Invoice, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.repo.ListByProjectID(ctx, projectID)
}

func (u *InvoiceUseCase) MarkSent(ctx context.Context, id string) (entities.Invoice, error) {
	return u.transition(ctx, id, entities.InvoiceStatusSent, entities.ProjectStatusInvoiced, func(current entities.InvoiceStatus) bool {
		return current == entities.InvoiceStatusDraft
	})
}

func (u *InvoiceUseCase) MarkPaid(ctx context.Context, id string) (entities.Invoice, error) {
	return u.transition(ctx, id, entities.InvoiceStatusPaid, entities.ProjectStatusPaid, func(current entities.InvoiceStatus) bool {
		return current == entities.InvoiceStatusDraft || current == entities.InvoiceStatusSent
	})
}

func (u *InvoiceUseCase) transition(
	ctx context.Context,
	id string,
	to entities.InvoiceStatus,
	projectStatus entities.ProjectStatus,
	allowed func(entities.InvoiceStatus) bool,
) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	if !allowed(inv.Status) {
		return entities.Invoice{}, ErrInvalidInvoiceTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, id, to)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}

	if _, err := u.projectRepo.UpdateStatus(ctx, updated.ProjectID, projectStatus); err != nil {
		u.logger.Error("invoice: linked project status update failed",
			zap.String("invoice_id", updated.ID),
			zap.String("project_id", updated.ProjectID),
			zap.Error(err))
		return entities.Invoice{}, err
	}
	return updated, nil
}
