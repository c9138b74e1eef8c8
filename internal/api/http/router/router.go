package router

import (
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/andrewouko/umoja-informatics/internal/api/http/handler"
	"github.com/andrewouko/umoja-informatics/internal/api/http/middleware"
	"github.com/andrewouko/umoja-informatics/internal/logger"
	"github.com/andrewouko/umoja-informatics/internal/model"
)

const appName = "umoja-informatics"

// Router represents the HTTP router for the users API.
// It wires handlers and middleware into a fiber application.
type Router struct {
	userService handler.UserService
	db          model.Pinger
	bodyLimit   int
	logger      *logger.Logger
}

// New creates new HTTP Router instance.
//
// Parameters:
//   - userService: The user management service
//   - db: The database used by the health endpoint
//   - bodyLimit: Maximum accepted request body size in bytes
//   - logger: The logger for request logging
//
// Returns a pointer to the newly created Router instance.
func New(
	userService handler.UserService,
	db model.Pinger,
	bodyLimit int,
	logger *logger.Logger,
) *Router {
	return &Router{
		userService: userService,
		db:          db,
		bodyLimit:   bodyLimit,
		logger:      logger,
	}
}

// Register builds the fiber application with middleware and routes.
func (r *Router) Register() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               appName,
		BodyLimit:             r.bodyLimit,
		ErrorHandler:          handler.NewErrorHandler(r.logger),
		DisableStartupMessage: true,
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(requestid.New())
	app.Use(sentryfiber.New(sentryfiber.Options{Repanic: true}))
	app.Use(middleware.NewLogging(r.logger).Handle)

	r.registerHealthRoutes(app)
	r.registerUserRoutes(app)

	return app
}

func (r *Router) registerHealthRoutes(app *fiber.App) {
	healthHandler := handler.NewHealth(r.db, r.logger)
	app.Get("/health", healthHandler.Check)
}

func (r *Router) registerUserRoutes(app *fiber.App) {
	userHandler := handler.NewUser(r.userService, r.logger)

	users := app.Group("/users")
	users.Get("/", userHandler.ListUsers)
	users.Post("/", userHandler.CreateUser)
	users.Get("/:id", userHandler.GetUser)
	users.Put("/:id?", userHandler.UpdateUser)
	users.Patch("/:id?", userHandler.UpdateUser)
	users.Delete("/:id?", userHandler.DeleteUser)
}
