package server

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-guard/internal/config"
	"github.com/MKhiriev/go-auth-guard/internal/handler"
	httpHandler "github.com/MKhiriev/go-auth-guard/internal/handler/http"
	"github.com/MKhiriev/go-auth-guard/internal/logger"
	"github.com/MKhiriev/go-auth-guard/internal/service"
	"github.com/MKhiriev/go-auth-guard/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandlers() *handler.Handlers {
	return &handler.Handlers{
		HTTP: httpHandler.NewHandler(&service.Services{}, validators.NewRequestValidator(), logger.Nop()),
	}
}

func TestNewServer(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
		wantErr  error
	}{
		{
			name:     "http configured",
			handlers: testHandlers(),
			cfg:      config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second},
		},
		{
			name:     "no address",
			handlers: testHandlers(),
			cfg:      config.Server{},
			wantErr:  errNoServersAreCreated,
		},
		{
			name:    "no handlers",
			cfg:     config.Server{HTTPAddress: "127.0.0.1:0"},
			wantErr: errNoServersAreCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(tt.handlers, tt.cfg, logger.Nop())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, s)
		})
	}
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:8080", RequestTimeout: 5 * time.Second}

	h := newHTTPServer(http.NewServeMux(), cfg, logger.Nop())

	assert.Equal(t, cfg.HTTPAddress, h.server.Addr)
	assert.Equal(t, cfg.RequestTimeout, h.server.ReadHeaderTimeout)
	assert.Equal(t, cfg.RequestTimeout, h.server.ReadTimeout)
	assert.Equal(t, cfg.RequestTimeout, h.server.WriteTimeout)
	assert.Equal(t, idleTimeout, h.server.IdleTimeout)
	assert.Equal(t, cfg.RequestTimeout, h.shutdownTimeout)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	buf := new(bytes.Buffer)
	log := logger.New(buf, "test")
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}

	s := &server{httpServer: newHTTPServer(http.NewServeMux(), cfg, log), logger: log}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Contains(t, buf.String(), "server Shutdown gracefully")
}

func TestRun_ListenFailure(t *testing.T) {
	buf := new(bytes.Buffer)
	log := logger.New(buf, "test")
	cfg := config.Server{HTTPAddress: "256.0.0.1:99999", RequestTimeout: time.Second}

	s := &server{httpServer: newHTTPServer(http.NewServeMux(), cfg, log), logger: log}

	err := s.run(context.Background())
	require.ErrorIs(t, err, errListenAndServe)
	assert.Contains(t, buf.String(), "HTTP server ListenAndServe")
	assert.NotContains(t, buf.String(), "server Shutdown gracefully")
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}
	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}

func TestRun_AddressInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { busy.Close() })

	cfg := config.Server{HTTPAddress: busy.Addr().String(), RequestTimeout: time.Second}
	s := &server{httpServer: newHTTPServer(http.NewServeMux(), cfg, logger.Nop()), logger: logger.Nop()}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.ErrorIs(t, s.run(ctx), errListenAndServe)
}
