package entities

import "time"

// ExtractedRequest is the fixed-shape record an extractor derives from a raw
// client message. Deadline is nil when the message carries no usable date.
type ExtractedRequest struct {
	ClientName string     `json:"clientName"`
	TaskTitle  string     `json:"taskTitle"`
	Budget     float64    `json:"budget"`
	Deadline   *time.Time `json:"deadline,omitempty"`
}
