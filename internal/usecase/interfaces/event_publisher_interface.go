package interfaces

import (
	"context"

	"solosync/internal/domain/entities"
)

// ISyncEventPublisher broadcasts a completed intake run to connected
// dashboards. Delivery is best-effort and fire-and-forget: the publisher
// must not wait for consumer acknowledgment, and subscribers that are not
// connected at publish time miss the event.
type ISyncEventPublisher interface {
	PublishSyncComplete(ctx context.Context, event entities.SyncEvent) error
}
