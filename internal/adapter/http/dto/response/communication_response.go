package response

import (
	"time"

	"solosync/internal/domain/entities"
)

type CommunicationResponse struct {
	ID        string    `json:"id"`
	Platform  string    `json:"platform"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func FromCommunication(c entities.Communication) CommunicationResponse {
	return CommunicationResponse{
		ID:        c.ID,
		Platform:  c.Platform,
		Content:   c.Content,
		Timestamp: c.Timestamp,
	}
}

func FromCommunications(comms []entities.Communication) []CommunicationResponse {
	out := make([]CommunicationResponse, 0, len(comms))
	for _, c := range comms {
		out = append(out, FromCommunication(c))
	}
	return out
}
