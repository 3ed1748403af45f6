package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func TestEventsHandler_Stream(t *testing.T) {
	gin.SetMode(gin.TestMode)

	server := startTestNATSServer(t)

	nc, err := nats.Connect(server.ClientURL())
	require.NoError(t, err)
	defer nc.Close()

	const subject = "sync.complete"

	r := gin.New()
	r.GET("/v1/events", NewEventsHandler(nc, subject, nil).Stream)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/v1/events", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		r.ServeHTTP(w, req)
	}()

	// Wait for the stream's subscription to land on the server.
	require.Eventually(t, func() bool {
		return server.NumSubscriptions() >= 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, nc.Publish(subject, []byte(`{"project":{"id":"proj-1"}}`)))
	require.NoError(t, nc.Flush())

	// Give the handler a moment to drain the message into the stream.
	time.Sleep(200 * time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.True(t, strings.Contains(body, "event: sync-complete"), "missing event line: %q", body)
	assert.True(t, strings.Contains(body, `data: {"project":{"id":"proj-1"}}`), "missing data line: %q", body)
}

func TestEventsHandler_StreamDisconnect(t *testing.T) {
	gin.SetMode(gin.TestMode)

	server := startTestNATSServer(t)

	nc, err := nats.Connect(server.ClientURL())
	require.NoError(t, err)
	defer nc.Close()

	r := gin.New()
	r.GET("/v1/events", NewEventsHandler(nc, "sync.complete", nil).Stream)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/v1/events", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		r.ServeHTTP(w, req)
	}()

	require.Eventually(t, func() bool {
		return server.NumSubscriptions() >= 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not stop after client disconnect")
	}

	// The subscription must be torn down with the connection.
	require.Eventually(t, func() bool {
		return server.NumSubscriptions() == 0
	}, 2*time.Second, 10*time.Millisecond)
}
