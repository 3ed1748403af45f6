package messaging

import (
	"fmt"
	"os"
	"time"

	"github.com/nats-io/nats.go"
)

// ConnectNATS connects to the broker carrying sync-complete events.
//
// Supported env vars:
//   - NATS_URL (default: nats://localhost:4222)
func ConnectNATS() (*nats.Conn, error) {
	url := os.Getenv("NATS_URL")
	if url == "" {
		url = nats.DefaultURL
	}

	nc, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(1*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
	}
	return nc, nil
}
