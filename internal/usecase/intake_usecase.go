package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"solosync/internal/domain/entities"
	"solosync/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEmptyRawText     = errors.New("empty raw text")
	ErrExtractionFailed = errors.New("extraction failed")
	ErrInvalidBudget    = errors.New("invalid extracted budget")
)

const defaultPlatform = "Email"

// IIntakeUseCase runs the message-to-records workflow.
type IIntakeUseCase interface {
	Sync(ctx context.Context, rawText string, platform string) error
}

// IntakeUseCase orchestrates one intake run:
//
//	persist raw message -> extract -> resolve client -> create project
//	-> create invoice -> publish sync-complete
//
// The communication write always comes first and is never rolled back: the
// operator's original input must survive any downstream failure. The three
// writes after it are independent; a failure mid-sequence leaves the earlier
// records in place and surfaces the error. There is no compensation and no
// idempotency: resubmitting the same text duplicates the project/invoice pair.
type IntakeUseCase struct {
	communications interfaces.ICommunicationRepository
	clients        interfaces.IClientRepository
	projects       interfaces.IProjectRepository
	invoices       interfaces.IInvoiceRepository
	extractor      interfaces.ITextExtractor
	publisher      interfaces.ISyncEventPublisher
	logger         *zap.Logger
}

var _ IIntakeUseCase = (*IntakeUseCase)(nil)

func NewIntakeUseCase(
	communications interfaces.ICommunicationRepository,
	clients interfaces.IClientRepository,
	projects interfaces.IProjectRepository,
	invoices interfaces.IInvoiceRepository,
	extractor interfaces.ITextExtractor,
	publisher interfaces.ISyncEventPublisher,
	logger *zap.Logger,
) *IntakeUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IntakeUseCase{
		communications: communications,
		clients:        clients,
		projects:       projects,
		invoices:       invoices,
		extractor:      extractor,
		publisher:      publisher,
		logger:         logger,
	}
}

func (u *IntakeUseCase) Sync(ctx context.Context, rawText string, platform string) error {
	if strings.TrimSpace(rawText) == "" {
		return ErrEmptyRawText
	}
	platform = strings.TrimSpace(platform)
	if platform == "" {
		platform = defaultPlatform
	}

	// 1. Raw message first. From here on nothing removes this record.
	comm, err := u.communications.Create(ctx, entities.Communication{
		ID:        uuid.NewString(),
		Platform:  platform,
		Content:   rawText,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		u.logger.Error("intake: communication write failed", zap.Error(err))
		return err
	}

	// 2. Extract. On failure the communication stays and nothing else exists.
	extracted, err := u.extractor.Extract(ctx, rawText, platform)
	if err != nil {
		u.logger.Warn("intake: extraction failed",
			zap.String("communication_id", comm.ID),
			zap.Error(err))
		return fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	if extracted.Budget <= 0 {
		u.logger.Warn("intake: extracted budget not positive",
			zap.String("communication_id", comm.ID),
			zap.Float64("budget", extracted.Budget))
		return ErrInvalidBudget
	}

	// 3. Resolve client. Reuse appends no history event; only onboarding does.
	client, created, err := u.clients.FindOrCreate(ctx, entities.Client{
		ID:   uuid.NewString(),
		Name: extracted.ClientName,
		History: []entities.HistoryEvent{
			{Event: "Client Onboarded", Date: time.Now().UTC()},
		},
	})
	if err != nil {
		u.logger.Error("intake: client resolution failed",
			zap.String("client_name", extracted.ClientName),
			zap.Error(err))
		return err
	}

	// 4. Project card. ClientName is a display snapshot, not a reference.
	project, err := u.projects.Create(ctx, entities.Project{
		ID:         uuid.NewString(),
		ClientName: client.Name,
		TaskTitle:  extracted.TaskTitle,
		Budget:     extracted.Budget,
		Deadline:   extracted.Deadline,
		Status:     entities.ProjectStatusToDo,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		u.logger.Error("intake: project write failed",
			zap.String("client_name", client.Name),
			zap.Error(err))
		return err
	}

	// 5. Auto-draft the invoice. A failure here orphans the project; the
	// error is surfaced and cleanup is left to the operator.
	invoice, err := u.invoices.Create(ctx, entities.Invoice{
		ID:        uuid.NewString(),
		Amount:    project.Budget,
		Status:    entities.InvoiceStatusDraft,
		ProjectID: project.ID,
		ClientID:  client.ID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		u.logger.Error("intake: invoice write failed",
			zap.String("project_id", project.ID),
			zap.Error(err))
		return err
	}

	// 6. Notify dashboards. Fire-and-forget: no delivery wait, no replay.
	if err := u.publisher.PublishSyncComplete(ctx, entities.SyncEvent{
		Project: project,
		Invoice: invoice,
		Client:  client,
	}); err != nil {
		u.logger.Error("intake: sync event publish failed",
			zap.String("project_id", project.ID),
			zap.Error(err))
		return err
	}

	u.logger.Info("intake: workflow synced",
		zap.String("communication_id", comm.ID),
		zap.String("client_id", client.ID),
		zap.Bool("client_onboarded", created),
		zap.String("project_id", project.ID),
		zap.String("invoice_id", invoice.ID),
		zap.Float64("amount", invoice.Amount))
	return nil
}
