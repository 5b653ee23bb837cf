package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cred-pool/internal/config"
	"github.com/MKhiriev/go-cred-pool/internal/handler"
	myGRPC "github.com/MKhiriev/go-cred-pool/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/go-cred-pool/internal/handler/http"
	"github.com/MKhiriev/go-cred-pool/internal/logger"
	"github.com/MKhiriev/go-cred-pool/internal/workers"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

func TestNewServer_NothingConfigured(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, nil, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_GRPCListenError(t *testing.T) {
	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(logger.Nop())}

	_, err := NewServer(handlers, nil, config.Server{GRPCAddress: "not-an-address"}, logger.Nop())

	require.Error(t, err)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}
	grpcHandler := myGRPC.NewHandler(logger.Nop())
	handlers := &handler.Handlers{
		HTTP: myHTTP.NewHandler(nil, cfg, logger.Nop()),
		GRPC: grpcHandler,
	}
	bg := workers.NewWorkers(stubPinger{}, grpcHandler, config.Workers{HealthProbeInterval: 10 * time.Millisecond}, logger.Nop())

	srv, err := NewServer(handlers, bg, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.(*server).run(ctx)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.Error(t, s.run(context.Background()))
}

func TestHTTPServer_ShutdownBeforeServe(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	h.Shutdown()

	// ListenAndServe returns http.ErrServerClosed right away
	done := make(chan struct{})
	go func() {
		h.RunServer()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunServer did not return on a closed server")
	}
}
