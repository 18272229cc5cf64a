package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestServer_StartAndShutdown(t *testing.T) {
	s := New("127.0.0.1:0", http.NotFoundHandler(), zaptest.NewLogger(t))

	done := make(chan error, 1)
	go func() { done <- s.Start(context.Background()) }()

	// give the listener a moment to come up
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_StartFailsOnBadAddress(t *testing.T) {
	s := New("256.0.0.1:bad", http.NotFoundHandler(), zaptest.NewLogger(t))

	err := s.Start(context.Background())

	assert.Error(t, err)
}

func TestWithSignal_StopReleases(t *testing.T) {
	ctx, stop := WithSignal(context.Background())
	stop()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not canceled")
	}
}
