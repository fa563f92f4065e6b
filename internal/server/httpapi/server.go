// Package httpapi exposes the user directory, match engine and message store
// over HTTP/JSON using fiber.
package httpapi

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/dmitrijs2005/campusmatch/internal/logging"
	"github.com/dmitrijs2005/campusmatch/internal/server/config"
	"github.com/dmitrijs2005/campusmatch/internal/server/services"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HTTPServer struct {
	address         string
	shutdownTimeout time.Duration
	logger          logging.Logger
	store           Pinger
	users           *services.UserService
	matches         *services.MatchService
	messages        *services.MessageService
	app             *fiber.App
}

func NewHTTPServer(c *config.Config, l logging.Logger, store Pinger,
	us *services.UserService, ms *services.MatchService, mgs *services.MessageService) *HTTPServer {

	s := &HTTPServer{
		address:         c.HTTPAddr,
		shutdownTimeout: c.ShutdownTimeout,
		logger:          l.With("module", "http_server"),
		store:           store,
		users:           us,
		matches:         ms,
		messages:        mgs,
	}

	s.app = fiber.New(fiber.Config{
		ErrorHandler:          s.errorHandler,
		DisableStartupMessage: true,
		UnescapePath:          true,
	})

	s.app.Use(requestID())
	s.app.Use(s.accessLog())
	s.app.Use(recover.New())
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: c.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + RequestIDHeader,
		AllowMethods: "GET,POST,OPTIONS",
	}))

	s.routes()

	return s
}

func (s *HTTPServer) routes() {
	s.app.Get("/healthz", s.Health)

	api := s.app.Group("/api")
	api.Post("/register", s.Register)
	api.Post("/validate", s.Validate)
	api.Get("/users/:id", s.GetUser)
	api.Get("/match/:id", s.Match)
	api.Post("/messages", s.SendMessage)
	api.Get("/messages/:a/:b", s.ReadConversation)
}

// App returns the underlying fiber application.
func (s *HTTPServer) App() *fiber.App {
	return s.app
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most the configured shutdown timeout.
func (s *HTTPServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		errCh <- s.app.Listen(s.address)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info(ctx, "Stopping HTTP server...")
		return s.app.ShutdownWithTimeout(s.shutdownTimeout)
	}
}
