// Package api implements the REST API for the calc service: expression
// evaluation plus the bounded calculation history.
package api

import (
	"log"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"

	"github.com/Projekt-ERROR/calc/pkg/calc"
	"github.com/Projekt-ERROR/calc/pkg/history"
)

// Server is the calc API server.
type Server struct {
	app     *fiber.App
	history history.Store
	metrics *Metrics
}

// New creates a new API server over the given history store.
func New(hist history.Store) *Server {
	srv := &Server{
		history: hist,
		metrics: NewMetrics(),
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
	})

	app.Post("/v1/calculate", srv.calculate)
	app.Get("/v1/history", srv.listHistory)
	app.Delete("/v1/history", srv.clearHistory)
	app.Get("/healthz", srv.health)
	app.Get("/metrics", adaptor.HTTPHandler(srv.metrics.Handler()))

	srv.app = app
	return srv
}

// Listen starts the HTTP server on the given address.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App returns the underlying Fiber app (useful for testing).
func (s *Server) App() *fiber.App {
	return s.app
}

// --- Handlers ---

// internalErrorKind labels failures of the server itself, such as a broken
// history store. It is deliberately outside the calculation error taxonomy.
const internalErrorKind = "Internal"

type calculateRequest struct {
	Expression string `json:"expression"`
}

func (s *Server) calculate(c *fiber.Ctx) error {
	var req calculateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok": false,
			"error": fiber.Map{
				"kind":    calc.InvalidExpression.String(),
				"message": "invalid request body: " + err.Error(),
			},
		})
	}

	start := time.Now()
	value, err := calc.Calculate(req.Expression)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		kind := calc.KindOf(err)
		s.metrics.RecordError(kind.String(), elapsed)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"ok": false,
			"error": fiber.Map{
				"kind":    kind.String(),
				"message": err.Error(),
			},
		})
	}

	s.metrics.RecordSuccess(elapsed)

	if _, err := s.history.Push(req.Expression, value); err != nil {
		// The calculation still succeeded; the lost log entry is only logged.
		log.Printf("Warning: could not record history entry: %v", err)
	}
	s.refreshHistoryGauge()

	return c.JSON(fiber.Map{
		"ok":     true,
		"value":  value,
		"result": calc.FormatResult(value),
	})
}

func (s *Server) listHistory(c *fiber.Ctx) error {
	entries, err := s.history.All()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok": false,
			"error": fiber.Map{
				"kind":    internalErrorKind,
				"message": err.Error(),
			},
		})
	}

	items := make([]fiber.Map, len(entries))
	for i, e := range entries {
		items[i] = fiber.Map{
			"id":         e.ID,
			"expression": e.Expression,
			"value":      e.Result,
			"result":     calc.FormatResult(e.Result),
			"createdAt":  e.CreatedAt.Format(time.RFC3339),
		}
	}

	return c.JSON(fiber.Map{
		"entries": items,
		"count":   len(items),
	})
}

func (s *Server) clearHistory(c *fiber.Ctx) error {
	if err := s.history.Clear(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok": false,
			"error": fiber.Map{
				"kind":    internalErrorKind,
				"message": err.Error(),
			},
		})
	}
	s.metrics.SetHistorySize(0)

	return c.JSON(fiber.Map{"ok": true})
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) refreshHistoryGauge() {
	if n, err := s.history.Count(); err == nil {
		s.metrics.SetHistorySize(n)
	}
}
