package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"codereview/internal/analyzer"
	"codereview/internal/session"
)

//go:embed templates/index.html
var templateFS embed.FS

const sessionCookie = "codereview_session"

// Server hosts the analysis form
type Server struct {
	analyzer *analyzer.Analyzer
	store    *session.Store
	logger   *zap.SugaredLogger
	engine   *gin.Engine
}

// New creates a server with its routes registered
func New(a *analyzer.Analyzer, store *session.Store, logger *zap.SugaredLogger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	tmpl, err := template.New("index.html").Funcs(template.FuncMap{
		"emphasis": EmphasisClass,
	}).ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(logger))
	engine.SetHTMLTemplate(tmpl)

	s := &Server{
		analyzer: a,
		store:    store,
		logger:   logger,
		engine:   engine,
	}
	s.routes()

	return s, nil
}

func (s *Server) routes() {
	s.engine.GET("/", s.index)
	s.engine.POST("/analyze", s.analyze)
	s.engine.GET("/chart.png", s.chart)
	s.engine.GET("/download/csv", s.downloadCSV)
	s.engine.GET("/download/chart", s.downloadChart)
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infow("serving analysis form", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Infow("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}

func requestLogger(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debugw("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
