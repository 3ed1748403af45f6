package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"solosync/internal/domain/entities"

	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startTestNATSServer starts an embedded NATS server for testing.
func startTestNATSServer(t *testing.T) *natsserver.Server {
	opts := &natsserver.Options{
		Host:   "127.0.0.1",
		Port:   -1, // Random port
		NoLog:  true,
		NoSigs: true,
	}

	server, err := natsserver.NewServer(opts)
	require.NoError(t, err)

	go server.Start()

	if !server.ReadyForConnections(5 * time.Second) {
		t.Fatal("NATS server not ready")
	}

	t.Cleanup(func() {
		server.Shutdown()
		server.WaitForShutdown()
	})

	return server
}

func testSyncEvent() entities.SyncEvent {
	now := time.Now().UTC()
	return entities.SyncEvent{
		Project: entities.Project{
			ID:         "proj-1",
			ClientName: "Alpha Corp",
			TaskTitle:  "Mobile App UI",
			Budget:     1500,
			Status:     entities.ProjectStatusToDo,
			CreatedAt:  now,
		},
		Invoice: entities.Invoice{
			ID:        "inv-1",
			Amount:    1500,
			Status:    entities.InvoiceStatusDraft,
			ProjectID: "proj-1",
			ClientID:  "client-1",
			CreatedAt: now,
		},
		Client: entities.Client{
			ID:   "client-1",
			Name: "Alpha Corp",
			History: []entities.HistoryEvent{
				{Event: "Client Onboarded", Date: now},
			},
		},
	}
}

func TestSyncEventPublisher_DeliversToSubscriber(t *testing.T) {
	server := startTestNATSServer(t)

	nc, err := nats.Connect(server.ClientURL())
	require.NoError(t, err)
	defer nc.Close()

	pub := NewSyncEventPublisher(nc)

	sub, err := nc.SubscribeSync(pub.Subject())
	require.NoError(t, err)
	require.NoError(t, nc.Flush())

	require.NoError(t, pub.PublishSyncComplete(context.Background(), testSyncEvent()))

	msg, err := sub.NextMsg(2 * time.Second)
	require.NoError(t, err)

	var got entities.SyncEvent
	require.NoError(t, json.Unmarshal(msg.Data, &got))

	assert.Equal(t, "proj-1", got.Project.ID)
	assert.Equal(t, got.Project.Budget, got.Invoice.Amount)
	assert.Equal(t, got.Project.ID, got.Invoice.ProjectID)
	assert.Equal(t, got.Client.ID, got.Invoice.ClientID)
}

func TestSyncEventPublisher_LateSubscriberMissesEvent(t *testing.T) {
	server := startTestNATSServer(t)

	nc, err := nats.Connect(server.ClientURL())
	require.NoError(t, err)
	defer nc.Close()

	pub := NewSyncEventPublisher(nc)

	// Publish before anyone subscribes: fire-and-forget, no replay.
	require.NoError(t, pub.PublishSyncComplete(context.Background(), testSyncEvent()))
	require.NoError(t, nc.Flush())

	sub, err := nc.SubscribeSync(pub.Subject())
	require.NoError(t, err)

	_, err = sub.NextMsg(300 * time.Millisecond)
	assert.ErrorIs(t, err, nats.ErrTimeout)
}
