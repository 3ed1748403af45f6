package extraction

import (
	"context"
	"errors"
	"strings"
	"time"

	"solosync/internal/domain/entities"
	"solosync/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrNoStructuredData = errors.New("no structured data could be derived from input")

// StaticExtractor is the placeholder for the AI parsing service. It ignores
// the message body and answers with the same record every time, which keeps
// the rest of the pipeline fully exercisable without the model behind it.
// A real extractor replaces this type behind the same port; callers must not
// depend on the constant values.
type StaticExtractor struct {
	logger *zap.Logger
}

var _ interfaces.ITextExtractor = (*StaticExtractor)(nil)

func NewStaticExtractor(logger *zap.Logger) *StaticExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StaticExtractor{logger: logger}
}

func (e *StaticExtractor) Extract(ctx context.Context, rawText string, platform string) (entities.ExtractedRequest, error) {
	if strings.TrimSpace(rawText) == "" {
		return entities.ExtractedRequest{}, ErrNoStructuredData
	}

	e.logger.Debug("extraction: serving static record",
		zap.String("platform", platform),
		zap.Int("raw_len", len(rawText)))

	deadline := time.Now().UTC().Add(7 * 24 * time.Hour)
	return entities.ExtractedRequest{
		ClientName: "Alpha Corp",
		TaskTitle:  "Mobile App UI",
		Budget:     1500,
		Deadline:   &deadline,
	}, nil
}
