package extraction

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStaticExtractor_Extract(t *testing.T) {
	extractor := NewStaticExtractor(nil)

	t.Run("same record for any input", func(t *testing.T) {
		before := time.Now().UTC()

		first, err := extractor.Extract(context.Background(), "Hi, need a logo by Friday for $500", "WhatsApp")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := extractor.Extract(context.Background(), "completely different message", "Email")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if first.ClientName != "Alpha Corp" || first.TaskTitle != "Mobile App UI" || first.Budget != 1500 {
			t.Fatalf("unexpected record: %+v", first)
		}
		if second.ClientName != first.ClientName || second.TaskTitle != first.TaskTitle || second.Budget != first.Budget {
			t.Fatalf("record varies with input: %+v vs %+v", first, second)
		}
		if first.Deadline == nil {
			t.Fatal("expected a deadline")
		}
		if d := first.Deadline.Sub(before); d < 7*24*time.Hour || d > 7*24*time.Hour+time.Minute {
			t.Fatalf("deadline not a week out: %v", d)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := extractor.Extract(context.Background(), "", "Email")
		if !errors.Is(err, ErrNoStructuredData) {
			t.Fatalf("expected ErrNoStructuredData, got %v", err)
		}
	})

	t.Run("whitespace input", func(t *testing.T) {
		_, err := extractor.Extract(context.Background(), "  \n\t ", "Email")
		if !errors.Is(err, ErrNoStructuredData) {
			t.Fatalf("expected ErrNoStructuredData, got %v", err)
		}
	})
}
