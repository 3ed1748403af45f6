package response

import (
	"time"

	"solosync/internal/domain/entities"
)

type HistoryEventResponse struct {
	Event string    `json:"event"`
	Date  time.Time `json:"date"`
}

type ClientResponse struct {
	ID      string                 `json:"id"`
	Name    string                 `json:"name"`
	Email   string                 `json:"email,omitempty"`
	Company string                 `json:"company,omitempty"`
	History []HistoryEventResponse `json:"history"`
}

func FromClient(c entities.Client) ClientResponse {
	history := make([]HistoryEventResponse, 0, len(c.History))
	for _, h := range c.History {
		history = append(history, HistoryEventResponse{Event: h.Event, Date: h.Date})
	}
	return ClientResponse{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Company: c.Company,
		History: history,
	}
}

func FromClients(clients []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c))
	}
	return out
}
