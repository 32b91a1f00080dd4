// Package httpapi exposes the admin trigger and audit endpoints.
package httpapi

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"matchsync/internal/report"
	"matchsync/internal/service"
)

// JobRunner is the slice of the runner the HTTP layer needs.
type JobRunner interface {
	Run(ctx context.Context, name string, req service.TriggerRequest) (*report.Summary, error)
	JobNames() []string
}

type Server struct {
	runner JobRunner
	ops    service.OperationStore
	secret string
	logger *slog.Logger
}

func NewServer(runner JobRunner, ops service.OperationStore, secret string, logger *slog.Logger) *Server {
	return &Server{
		runner: runner,
		ops:    ops,
		secret: secret,
		logger: logger.With("component", "httpapi"),
	}
}

// Register mounts the routes. Everything under /api/admin requires the
// shared bearer secret.
func (s *Server) Register(app *fiber.App) {
	app.Get("/healthz", s.health)

	admin := app.Group("/api/admin", s.requireSecret)
	admin.Post("/sync/:job", s.triggerSync)
	admin.Get("/operations", s.listOperations)
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) requireSecret(c *fiber.Ctx) error {
	token, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if s.secret == "" || !ok ||
		subtle.ConstantTimeCompare([]byte(token), []byte(s.secret)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}
	return c.Next()
}

func (s *Server) triggerSync(c *fiber.Ctx) error {
	job := c.Params("job")

	var req service.TriggerRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	summary, err := s.runner.Run(c.Context(), job, req)
	switch {
	case errors.Is(err, service.ErrUnknownJob):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
			"jobs":  s.runner.JobNames(),
		})
	case errors.Is(err, service.ErrAlreadyRunning):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, service.ErrInvalidParams):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case err != nil:
		s.logger.Error("trigger failed", "job", job, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	status := fiber.StatusOK
	if !summary.Success {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(summary)
}

func (s *Server) listOperations(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 200 {
		limit = 20
	}

	ops, err := s.ops.Recent(c.Context(), limit)
	if err != nil {
		s.logger.Error("list operations", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to read operations",
		})
	}

	items := make([]fiber.Map, 0, len(ops))
	for _, op := range ops {
		items = append(items, fiber.Map{
			"id":        op.ID,
			"operation": op.Name,
			"success":   op.Success,
			"apiCalls":  op.APICalls,
			"duration":  op.Duration,
			"details":   json.RawMessage(op.Details),
			"createdAt": op.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}
