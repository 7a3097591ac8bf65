// Package server exposes the layout pipeline over HTTP so remote renderers
// can fetch fully resolved diagram descriptions.
package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"github.com/ranklab/critdiff/internal/config"
	"github.com/ranklab/critdiff/internal/layout"
	"github.com/ranklab/critdiff/internal/stats"
	"github.com/ranklab/critdiff/pkg/tukey"
)

type Server struct {
	app *fiber.App
	cfg *config.ServerEnvConfig
}

func NewServer(cfg *config.ServerEnvConfig) *Server {
	if cfg == nil {
		cfg = &config.ServerEnvConfig{
			Address:       "127.0.0.1",
			Port:          8080,
			BodySizeLimit: 1048576,
		}
	}

	app := fiber.New(fiber.Config{
		Prefork:     false,
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
		BodyLimit:   cfg.BodySizeLimit,
	})

	app.Use(recover.New()) // add panic recovery
	app.Use(ZstdMiddleware([]string{"/health"}))

	s := &Server{app: app, cfg: cfg}
	app.Get("/health", s.handleHealth)
	app.Post("/api/v1/layout", s.handleLayout)
	app.Post("/api/v1/ranks", s.handleRanks)
	return s
}

// App exposes the underlying fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleLayout(c *fiber.Ctx) error {
	var req LayoutRequest
	if err := sonic.Unmarshal(c.Body(), &req); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal layout request")
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid payload"})
	}
	if req.Alpha == 0 {
		req.Alpha = 0.05
	}

	builder := layout.New(
		layout.WithAlpha(req.Alpha),
		layout.WithTieTolerance(req.TieTolerance),
	)
	l, err := builder.BuildMatrix(req.Results, req.AlgorithmNames)
	if err != nil {
		log.Debug().Err(err).Msg("layout build rejected")
		return c.Status(statusForErr(err)).JSON(ErrorResponse{Error: err.Error()})
	}

	resp := LayoutResponse{
		Layout:             l,
		CriticalDifference: l.CriticalDifference,
		AverageRanks:       l.AverageRanks,
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (s *Server) handleRanks(c *fiber.Ctx) error {
	var req RanksRequest
	if err := sonic.Unmarshal(c.Body(), &req); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal ranks request")
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid payload"})
	}

	data, err := stats.MatrixFromRows(req.Results)
	if err != nil {
		return c.Status(statusForErr(err)).JSON(ErrorResponse{Error: err.Error()})
	}
	ranks, err := stats.RanksWithTolerance(data, req.TieTolerance)
	if err != nil {
		return c.Status(statusForErr(err)).JSON(ErrorResponse{Error: err.Error()})
	}

	rows, _ := ranks.Dims()
	resp := RanksResponse{
		Ranks:        make([][]float64, rows),
		AverageRanks: stats.AverageRanks(ranks),
	}
	for i := range resp.Ranks {
		resp.Ranks[i] = mat.Row(nil, i, ranks)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// statusForErr maps the engine's error taxonomy onto HTTP statuses:
// malformed input is the client's fault, while degenerate data and
// out-of-table lookups are valid requests the engine cannot serve.
func statusForErr(err error) int {
	switch {
	case errors.Is(err, stats.ErrInvalidArgument):
		return fiber.StatusBadRequest
	case errors.Is(err, stats.ErrDegenerateRange), errors.Is(err, tukey.ErrTableRange):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// Start runs the server until ctx is cancelled, then shuts it down.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Address, s.cfg.Port)
	go func() {
		if err := s.app.Listen(addr); err != nil {
			log.Error().Err(err).Msg("server listen failed")
		}
	}()
	log.Info().Str("addr", addr).Msg("layout server started")

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.app.ShutdownWithContext(shutdownCtx)
}
