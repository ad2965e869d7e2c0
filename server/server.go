package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/relgraph"
	"github.com/katalvlaran/relgraph/config"
	"github.com/katalvlaran/relgraph/core"
	"github.com/katalvlaran/relgraph/scene"
	"github.com/katalvlaran/relgraph/uniqueness"
)

// Handlers serves the analysis routes.
type Handlers struct {
	cfg    config.Config
	logger *slog.Logger
}

// NewHandlers binds handlers to cfg. A nil logger means slog.Default().
func NewHandlers(cfg config.Config, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handlers{cfg: cfg, logger: logger}
}

// RegisterRoutes mounts the /v1 API and /metrics on r.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	v1 := r.Group("/v1")
	{
		v1.POST("/analyze", h.HandleAnalyze)
		v1.GET("/health", h.HandleHealth)
	}
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// NewRouter returns a gin engine with recovery, request logging and all routes.
func NewRouter(cfg config.Config, logger *slog.Logger) *gin.Engine {
	h := NewHandlers(cfg, logger)
	r := gin.New()
	r.Use(gin.Recovery(), h.requestLogger())
	RegisterRoutes(r, h)

	return r
}

// HandleAnalyze handles POST /v1/analyze.
func (h *Handlers) HandleAnalyze(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := h.logger.With("request_id", requestID, "handler", "HandleAnalyze")

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.Server.MaxBodyBytes)
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		analysesTotal.WithLabelValues("invalid").Inc()
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "request body too large", Code: "BODY_TOO_LARGE"})
			return
		}
		logger.Warn("invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
		return
	}

	g, name, err := h.graph(&req, logger)
	if err != nil {
		analysesTotal.WithLabelValues("invalid").Inc()
		code := "INVALID_GRAPH"
		if req.Clevr != nil {
			code = "INVALID_SCENE"
		}
		logger.Warn("rejected scene", "scene", name, "error", err)
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Code: code})
		return
	}

	invert := h.cfg.Analysis.InvertLabels
	if req.InvertLabels != nil {
		invert = *req.InvertLabels
	}

	start := time.Now()
	rep, err := uniqueness.Analyze(c.Request.Context(), g,
		uniqueness.WithWorkers(h.cfg.Analysis.Workers),
		uniqueness.WithInvertedLabels(invert),
		uniqueness.WithSceneName(name),
		uniqueness.WithLogger(logger))
	if err != nil {
		analysesTotal.WithLabelValues("error").Inc()
		status := http.StatusInternalServerError
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusServiceUnavailable
		}
		logger.Error("analysis failed", "scene", name, "error", err)
		c.JSON(status, ErrorResponse{Error: err.Error(), Code: "ANALYSIS_FAILED"})
		return
	}

	analysesTotal.WithLabelValues("ok").Inc()
	analysisDuration.Observe(time.Since(start).Seconds())
	objectsAnalyzed.Add(float64(rep.Summary.TotalObjects))
	sceneCoverage.Observe(rep.Coverage)

	logger.Info("scene analyzed",
		"scene", name,
		"objects", rep.Summary.TotalObjects,
		"coverage", rep.Coverage)
	c.JSON(http.StatusOK, rep)
}

// HandleHealth handles GET /v1/health.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Version: relgraph.Version})
}

// graph builds the request's graph and picks the scene name.
func (h *Handlers) graph(req *AnalyzeRequest, logger *slog.Logger) (*core.Graph, string, error) {
	gopts := []core.Option{core.WithLogger(logger)}
	if h.cfg.Graph.DropInvalid {
		gopts = append(gopts, core.WithDropInvalid())
	}

	if req.Clevr != nil {
		name := req.Scene
		if name == "" {
			name = req.Clevr.Name()
		}
		g, err := req.Clevr.Graph(scene.WithCoreOptions(gopts...), scene.WithLogger(logger))
		return g, name, err
	}

	g, err := core.New(req.Objects, req.Relations, gopts...)
	return g, req.Scene, err
}

func (h *Handlers) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"elapsed", time.Since(start))
	}
}

func getOrCreateRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header("X-Request-ID", requestID)

	return requestID
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           NewRouter(cfg, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("relgraph server listening", "addr", cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("relgraph server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
