package entities

import "time"

// HistoryEvent is one entry in a client's interaction log.
type HistoryEvent struct {
	Event string    `json:"event"`
	Date  time.Time `json:"date"`
}

// Client is a person/company the operator works with.
//
// Storage model (DynamoDB):
//   - PK: name (string)
//
// Name is the natural dedup key: intake resolves clients by exact name
// match, so the table is keyed by it and find-or-create is a single
// conditional put. Near-duplicate names ("Alpha Corp" vs "alpha corp")
// create distinct clients.
//
// Clients are never deleted by the core and are only mutated by appending
// history events.
type Client struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Email   string         `json:"email,omitempty"`
	Company string         `json:"company,omitempty"`
	History []HistoryEvent `json:"history"`
}
