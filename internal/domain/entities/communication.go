package entities

import "time"

// Communication is one raw inbound message, stored verbatim.
//
// Storage model (DynamoDB):
//   - PK: id (string)
//
// The log is append-only and written before any other intake step, so the
// operator's original input survives even when downstream steps fail.
type Communication struct {
	ID        string    `json:"id"`
	Platform  string    `json:"platform"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
