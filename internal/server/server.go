// Package server exposes the nanops reductions over HTTP.
//
//	GET  /healthz    liveness probe
//	GET  /v1/ops     reduction names and whether they take ddof
//	POST /v1/reduce  {"op":"nanmean","axis":1,"ddof":0,"array":{...}}
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/katalvlaran/nanstat/internal/logger"
	"github.com/katalvlaran/nanstat/nanops"
)

// Config holds the server tunables resolved from config.yaml and flags.
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	MaxBodyBytes int64
	DefaultDDoF  int
}

// Server handles reduction requests. It holds no per-request state.
type Server struct {
	cfg   Config
	log   logger.Logger
	newID func() string
}

// New returns a Server; a nil log falls back to logger.Default().
func New(cfg Config, log logger.Logger) *Server {
	if log == nil {
		log = logger.Default()
	}
	return &Server{
		cfg:   cfg,
		log:   log,
		newID: func() string { return "red_" + uuid.NewString() },
	}
}

// Register mounts the routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/healthz", s.handleHealth)
	e.GET("/v1/ops", s.handleListOps)
	e.POST("/v1/reduce", s.handleReduce)
}

// Echo builds an *echo.Echo with recovery, request logging and the routes.
func (s *Server) Echo() *echo.Echo {
	e := echo.New()
	e.Use(s.requestLogger)
	e.Use(middleware.Recover())
	s.Register(e)
	return e
}

// requestLogger logs every request through the server's Logger.
func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		start := time.Now()
		err := next(c)
		req := c.Request()
		args := []any{"method", req.Method, "uri", req.RequestURI, "latency", time.Since(start)}
		if err != nil {
			s.log.Warn("request", append(args, "error", err)...)
			return err
		}
		s.log.Info("request", args...)
		return nil
	}
}

// Start serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	s.log.Info("starting server", "address", s.cfg.Address)
	sc := echo.StartConfig{
		Address:         s.cfg.Address,
		BeforeServeFunc: s.configureHTTP,
	}
	return sc.Start(ctx, s.Echo())
}

// configureHTTP applies ReadTimeout to both the header and the body reads.
func (s *Server) configureHTTP(srv *http.Server) error {
	srv.ReadHeaderTimeout = s.cfg.ReadTimeout
	srv.ReadTimeout = s.cfg.ReadTimeout
	return nil
}

func (s *Server) handleHealth(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type opInfo struct {
	Name     string `json:"name"`
	UsesDDoF bool   `json:"uses_ddof"`
}

func (s *Server) handleListOps(c *echo.Context) error {
	ops := nanops.Ops()
	out := make([]opInfo, len(ops))
	for i, op := range ops {
		out[i] = opInfo{Name: op.String(), UsesDDoF: op.UsesDDoF()}
	}
	return c.JSON(http.StatusOK, map[string]any{"object": "list", "data": out})
}
