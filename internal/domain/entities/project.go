package entities

import "time"

// ProjectStatus is the delivery lifecycle of a piece of work.
type ProjectStatus string

const (
	ProjectStatusToDo       ProjectStatus = "To Do"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusInvoiced   ProjectStatus = "Invoiced"
	ProjectStatusPaid       ProjectStatus = "Paid"
)

// ValidProjectStatus reports whether s is one of the known statuses.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectStatusToDo, ProjectStatusInProgress, ProjectStatusInvoiced, ProjectStatusPaid:
		return true
	}
	return false
}

// Project is one unit of billable work created by the intake workflow.
//
// Storage model (DynamoDB):
//   - PK: id (string)
//
// ClientName is a denormalized snapshot of the client's name at creation
// time, kept for display. It is not a live reference; renaming a client
// does not touch existing projects.
type Project struct {
	ID         string        `json:"id"`
	ClientName string        `json:"clientName"`
	TaskTitle  string        `json:"taskTitle"`
	Budget     float64       `json:"budget"`
	Deadline   *time.Time    `json:"deadline,omitempty"`
	Status     ProjectStatus `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
}
