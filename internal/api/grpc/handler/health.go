package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/andrewouko/umoja-informatics/internal/logger"
	"github.com/andrewouko/umoja-informatics/internal/model"
)

// ServiceName is the health-checked service name. Checks for the empty
// name report the same status.
const ServiceName = "umoja.Users"

// Health implements grpc.health.v1.Health backed by a database ping.
type Health struct {
	healthpb.UnimplementedHealthServer

	db     model.Pinger
	logger *logger.Logger
}

// NewHealth creates a new Health handler.
func NewHealth(db model.Pinger, logger *logger.Logger) *Health {
	return &Health{
		db:     db,
		logger: logger,
	}
}

// Check reports SERVING when the database answers a ping.
func (h *Health) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	switch req.GetService() {
	case "", ServiceName:
	default:
		return nil, status.Errorf(codes.NotFound, "unknown service %q", req.GetService())
	}

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("Health handler: database ping failed", "error", err)
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}

	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}
