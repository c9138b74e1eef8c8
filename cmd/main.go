package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	grpcRouter "github.com/andrewouko/umoja-informatics/internal/api/grpc/router"
	grpcServer "github.com/andrewouko/umoja-informatics/internal/api/grpc/server"
	httpRouter "github.com/andrewouko/umoja-informatics/internal/api/http/router"
	httpServer "github.com/andrewouko/umoja-informatics/internal/api/http/server"
	"github.com/andrewouko/umoja-informatics/internal/config"
	"github.com/andrewouko/umoja-informatics/internal/logger"
	"github.com/andrewouko/umoja-informatics/internal/model"
	"github.com/andrewouko/umoja-informatics/internal/repository/postgres"
	"github.com/andrewouko/umoja-informatics/internal/server"
	"github.com/andrewouko/umoja-informatics/internal/service"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	if err := initSentry(cfg.Sentry); err != nil {
		logger.Fatal("failed to initialize sentry", "error", err)
	}
	defer sentry.Flush(2 * time.Second)

	db, err := postgres.NewConnection(ctx, cfg.Database.URL)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db.DB())
	userService := service.NewUser(userRepo, logger)

	servers := []model.Server{
		registerHTTPServer(logger, userService, db, cfg.HTTP),
	}
	if cfg.GRPC.Enabled {
		servers = append(servers, registerGRPCServer(logger, db, fmt.Sprintf(":%s", cfg.GRPC.Port)))
	}

	sl := server.NewSecurityLayer(cfg.TLS)

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

// initSentry configures error reporting. An empty DSN leaves it disabled.
func initSentry(cfg config.Sentry) error {
	if cfg.DSN == "" {
		return nil
	}

	return sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		Release:          buildVersion,
		EnableTracing:    cfg.TracesSampleRate > 0,
		TracesSampleRate: cfg.TracesSampleRate,
	})
}

func registerHTTPServer(
	logger *logger.Logger,
	userService *service.User,
	db model.Pinger,
	cfg config.HTTP,
) *httpServer.HTTPServer {
	r := httpRouter.New(userService, db, cfg.BodyLimit, logger)
	app := r.Register()

	return httpServer.NewHTTPServer(app, fmt.Sprintf(":%s", cfg.Port))
}

func registerGRPCServer(
	logger *logger.Logger,
	db model.Pinger,
	addr string,
) *grpcServer.GRPCServer {
	r := grpcRouter.New(db, logger)
	s := r.Register()

	return grpcServer.NewGRPCServer(s, addr)
}
