package response

import (
	"time"

	"solosync/internal/domain/entities"
)

type InvoiceResponse struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	ProjectID string    `json:"project_id"`
	ClientID  string    `json:"client_id"`
	CreatedAt time.Time `json:"created_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:        inv.ID,
		Amount:    inv.Amount,
		Status:    string(inv.Status),
		ProjectID: inv.ProjectID,
		ClientID:  inv.ClientID,
		CreatedAt: inv.CreatedAt,
	}
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, FromInvoice(inv))
	}
	return out
}
