package interfaces

import (
	"context"

	"solosync/internal/domain/entities"
)

// ICommunicationRepository abstracts the append-only raw message log.
type ICommunicationRepository interface {
	Create(ctx context.Context, c entities.Communication) (entities.Communication, error)
	List(ctx context.Context) ([]entities.Communication, error)
}
