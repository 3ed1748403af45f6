package interfaces

import (
	"context"

	"solosync/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.
//
// FindOrCreate must be atomic where the store allows it: concurrent intakes
// for the same new name must not yield two clients. The DynamoDB
// implementation uses a conditional put on the name key. The created flag
// reports whether this call onboarded the client.
type IClientRepository interface {
	FindOrCreate(ctx context.Context, c entities.Client) (client entities.Client, created bool, err error)
	GetByName(ctx context.Context, name string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
}
