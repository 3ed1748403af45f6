package entities

// SyncEvent is the broadcast payload emitted after a successful intake run.
// invoice.amount always equals project.budget within one event.
type SyncEvent struct {
	Project Project `json:"project"`
	Invoice Invoice `json:"invoice"`
	Client  Client  `json:"client"`
}
