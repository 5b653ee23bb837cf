// Package grpc exposes the gRPC side of the server: the standard
// grpc.health.v1 service plus reflection, so that orchestrators and grpcurl
// can probe whether the credential store is usable.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/MKhiriev/go-cred-pool/internal/logger"
)

// CredentialsServiceName is the health service name whose status follows the
// credential store.
const CredentialsServiceName = "credentials"

// Handler is the root gRPC transport handler.
//
// It owns the health server shared by the gRPC server and the health probe
// worker. A handler instance is created once at startup.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] reporting SERVING for both the overall
// server and [CredentialsServiceName]. The store has already been reached by
// the time handlers are built; the probe worker takes over from there.
func NewHandler(logger *logger.Logger) *Handler {
	hs := health.NewServer()
	hs.SetServingStatus(CredentialsServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health: hs,
		logger: logger,
	}
}

// Register attaches the health and reflection services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// SetServing flips the credential service and the overall server between
// SERVING and NOT_SERVING.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(CredentialsServiceName, status)
}

// Shutdown sets every service to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.logger.Debug().Msg("gRPC health server shutting down")
	h.health.Shutdown()
}
