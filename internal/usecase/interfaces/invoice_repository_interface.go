package interfaces

import (
	"context"

	"solosync/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
}
