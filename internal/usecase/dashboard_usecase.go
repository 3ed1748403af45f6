package usecase

import (
	"context"

	"solosync/internal/domain/entities"
	"solosync/internal/usecase/interfaces"
)

// Summary is the dashboard stats bar: total amount of invoices not yet paid
// and the number of projects still open.
type Summary struct {
	PendingAmount float64 `json:"pending_amount"`
	OpenProjects  int     `json:"open_projects"`
}

// IDashboardUseCase serves the read side of the dashboard.
type IDashboardUseCase interface {
	ListClients(ctx context.Context) ([]entities.Client, error)
	ListCommunications(ctx context.Context) ([]entities.Communication, error)
	GetSummary(ctx context.Context) (Summary, error)
}

type DashboardUseCase struct {
	clients        interfaces.IClientRepository
	communications interfaces.ICommunicationRepository
	projects       interfaces.IProjectRepository
	invoices       interfaces.IInvoiceRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	clients interfaces.IClientRepository,
	communications interfaces.ICommunicationRepository,
	projects interfaces.IProjectRepository,
	invoices interfaces.IInvoiceRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		clients:        clients,
		communications: communications,
		projects:       projects,
		invoices:       invoices,
	}
}

func (u *DashboardUseCase) ListClients(ctx context.Context) ([]entities.Client, error) {
	return u.clients.List(ctx)
}

func (u *DashboardUseCase) ListCommunications(ctx context.Context) ([]entities.Communication, error) {
	return u.communications.List(ctx)
}

func (u *DashboardUseCase) GetSummary(ctx context.Context) (Summary, error) {
	invoices, err := u.invoices.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	projects, err := u.projects.List(ctx)
	if err != nil {
		return Summary{}, err
	}

	var s Summary
	for _, inv := range invoices {
		if inv.Status != entities.InvoiceStatusPaid {
			s.PendingAmount += inv.Amount
		}
	}
	for _, p := range projects {
		if p.Status != entities.ProjectStatusPaid {
			s.OpenProjects++
		}
	}
	return s, nil
}
