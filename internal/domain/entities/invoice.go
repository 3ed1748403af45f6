package entities

import "time"

// InvoiceStatus is the billing lifecycle of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "Draft"
	InvoiceStatusSent  InvoiceStatus = "Sent"
	InvoiceStatusPaid  InvoiceStatus = "Paid"
)

// Invoice is the auto-drafted bill for a project.
//
// Storage model (DynamoDB):
//   - PK: id (string)
//   - GSI (project_id-index): project_id
//
// Amount is always copied from the owning project's budget at creation
// time. Every intake run creates exactly one invoice for the project it
// creates (1:1 by construction; the schema does not enforce it).
type Invoice struct {
	ID        string        `json:"id"`
	Amount    float64       `json:"amount"`
	Status    InvoiceStatus `json:"status"`
	ProjectID string        `json:"project"`
	ClientID  string        `json:"client"`
	CreatedAt time.Time     `json:"createdAt"`
}
