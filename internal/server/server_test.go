package server

import (
	"testing"
	"time"

	"github.com/docuvault/go-doc-manager/internal/config"
	httphandler "github.com/docuvault/go-doc-manager/internal/handler/http"
	"github.com/docuvault/go-doc-manager/internal/logger"
	"github.com/docuvault/go-doc-manager/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *httphandler.Handler {
	return httphandler.NewHandler(&service.Services{}, logger.Nop())
}

func TestNewServer_NoAddress(t *testing.T) {
	srv, err := NewServer(newTestHandler(), config.Server{}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoHTTPAddress)
}

func TestNewServer_Success(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}

	srv, err := NewServer(newTestHandler(), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, srv)

	inner, ok := srv.(*server)
	require.True(t, ok)
	assert.Equal(t, cfg.HTTPAddress, inner.httpServer.server.Addr)
	assert.Equal(t, cfg.RequestTimeout, inner.httpServer.server.ReadHeaderTimeout)
}

func TestServer_ShutdownIdempotentOnStoppedServer(t *testing.T) {
	srv, err := NewServer(newTestHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	// Shutdown on a server that never started must not panic.
	srv.Shutdown()
}
