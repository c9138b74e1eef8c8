package router

import (
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/andrewouko/umoja-informatics/internal/api/grpc/handler"
	"github.com/andrewouko/umoja-informatics/internal/api/grpc/middleware"
	"github.com/andrewouko/umoja-informatics/internal/logger"
	"github.com/andrewouko/umoja-informatics/internal/model"
)

// Router represents the gRPC router for operational endpoints.
type Router struct {
	db     model.Pinger
	logger *logger.Logger
}

// New creates new gRPC Router instance.
//
// Parameters:
//   - db: The database reported by the health service
//   - logger: The logger for request logging
//
// Returns a pointer to the newly created Router instance.
func New(db model.Pinger, logger *logger.Logger) *Router {
	return &Router{
		db:     db,
		logger: logger,
	}
}

// Register builds the gRPC server with logging and recovery interceptors,
// the health service and reflection.
func (r *Router) Register() *grpc.Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.UnaryLogging(r.logger),
			middleware.UnaryRecovery(r.logger),
		),
	)

	healthpb.RegisterHealthServer(s, handler.NewHealth(r.db, r.logger))
	reflection.Register(s)

	return s
}
