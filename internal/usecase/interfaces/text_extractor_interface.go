package interfaces

import (
	"context"

	"solosync/internal/domain/entities"
)

// ITextExtractor derives structured request data from a raw client message.
//
// Implementations must be deterministic per call and must return an error
// (not a zero record) when no structured data can be derived. The current
// implementation is a static stub; the contract is written for a real
// extractor returning different values per input.
type ITextExtractor interface {
	Extract(ctx context.Context, rawText string, platform string) (entities.ExtractedRequest, error)
}
