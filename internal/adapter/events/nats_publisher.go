package events

import (
	"context"
	"encoding/json"
	"os"

	"solosync/internal/domain/entities"
	"solosync/internal/usecase/interfaces"

	"github.com/nats-io/nats.go"
)

const defaultSyncSubject = "sync.complete"

// SyncEventPublisher broadcasts completed intake runs over NATS.
//
// Publishing is fire-and-forget: nats.Conn.Publish hands the message to the
// broker without waiting for any subscriber, so disconnected dashboards
// simply miss the event. There is no persistence or replay.
type SyncEventPublisher struct {
	nc      *nats.Conn
	subject string
}

var _ interfaces.ISyncEventPublisher = (*SyncEventPublisher)(nil)

func NewSyncEventPublisher(nc *nats.Conn) *SyncEventPublisher {
	return &SyncEventPublisher{
		nc:      nc,
		subject: getenvDefault("SYNC_EVENTS_SUBJECT", defaultSyncSubject),
	}
}

// Subject returns the subject this publisher writes to, so the SSE bridge
// subscribes to the same one.
func (p *SyncEventPublisher) Subject() string {
	return p.subject
}

func (p *SyncEventPublisher) PublishSyncComplete(_ context.Context, event entities.SyncEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.nc.Publish(p.subject, payload)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
