package usecase

import (
	"context"
	"errors"
	"testing"

	"solosync/internal/domain/entities"
	mock_interfaces "solosync/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInvoiceUseCase_MarkSent(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil)
		_, err := uc.MarkSent(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{}, nil)

		_, err := uc.MarkSent(context.Background(), "inv-1")
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("already sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusSent}, nil)

		_, err := uc.MarkSent(context.Background(), "inv-1")
		if !errors.Is(err, ErrInvalidInvoiceTransition) {
			t.Fatalf("expected ErrInvalidInvoiceTransition, got %v", err)
		}
	})

	t.Run("success advances project to invoiced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewInvoiceUseCase(repo, projectRepo, nil)

		draft := entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusDraft, ProjectID: "proj-1", Amount: 1500}
		sent := draft
		sent.Status = entities.InvoiceStatusSent

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(draft, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "inv-1", entities.InvoiceStatusSent).Return(sent, nil)
		projectRepo.EXPECT().UpdateStatus(gomock.Any(), "proj-1", entities.ProjectStatusInvoiced).Return(entities.Project{ID: "proj-1", Status: entities.ProjectStatusInvoiced}, nil)

		got, err := uc.MarkSent(context.Background(), "inv-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.InvoiceStatusSent {
			t.Fatalf("expected Sent, got %q", got.Status)
		}
	})
}

func TestInvoiceUseCase_MarkPaid(t *testing.T) {
	t.Run("paid invoice cannot be paid again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusPaid}, nil)

		_, err := uc.MarkPaid(context.Background(), "inv-1")
		if !errors.Is(err, ErrInvalidInvoiceTransition) {
			t.Fatalf("expected ErrInvalidInvoiceTransition, got %v", err)
		}
	})

	t.Run("sent invoice can be paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewInvoiceUseCase(repo, projectRepo, nil)

		sent := entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusSent, ProjectID: "proj-1"}
		paid := sent
		paid.Status = entities.InvoiceStatusPaid

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(sent, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "inv-1", entities.InvoiceStatusPaid).Return(paid, nil)
		projectRepo.EXPECT().UpdateStatus(gomock.Any(), "proj-1", entities.ProjectStatusPaid).Return(entities.Project{ID: "proj-1", Status: entities.ProjectStatusPaid}, nil)

		got, err := uc.MarkPaid(context.Background(), "inv-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.InvoiceStatusPaid {
			t.Fatalf("expected Paid, got %q", got.Status)
		}
	})

	t.Run("project update failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewInvoiceUseCase(repo, projectRepo, nil)

		draft := entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusDraft, ProjectID: "proj-1"}
		paid := draft
		paid.Status = entities.InvoiceStatusPaid

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(draft, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "inv-1", entities.InvoiceStatusPaid).Return(paid, nil)
		projectRepo.EXPECT().UpdateStatus(gomock.Any(), "proj-1", entities.ProjectStatusPaid).Return(entities.Project{}, errors.New("db"))

		_, err := uc.MarkPaid(context.Background(), "inv-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestInvoiceUseCase_ListByProjectID(t *testing.T) {
	t.Run("invalid project id", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil)
		_, err := uc.ListByProjectID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil, nil)

		want := []entities.Invoice{{ID: "inv-1", ProjectID: "proj-1"}}
		repo.EXPECT().ListByProjectID(gomock.Any(), "proj-1").Return(want, nil)

		got, err := uc.ListByProjectID(context.Background(), "proj-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "inv-1" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}
