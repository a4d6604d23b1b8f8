// Package web serves the survey form and renders prediction results.
package web

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"diabetesrisk/internal/collector"
	"diabetesrisk/internal/inference"
)

//go:embed templates/*.html
var templatesFS embed.FS

const maxFormBytes = 64 << 10

type Server struct {
	adapter   *inference.Adapter
	collector *collector.Collector
	tmpl      *template.Template
	logger    *zap.Logger
}

func New(adapter *inference.Adapter, col *collector.Collector, logger *zap.Logger) (*Server, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{adapter: adapter, collector: col, tmpl: tmpl, logger: logger}, nil
}

// Router builds the gin engine. mode is gin's run mode.
func (s *Server) Router(mode string) *gin.Engine {
	gin.SetMode(mode)
	r := gin.New()
	r.Use(requestLogger(s.logger), recovery(s.logger))
	r.SetHTMLTemplate(s.tmpl)

	r.GET("/", s.handleForm)
	r.POST("/", s.handleSubmit)
	r.GET("/healthz", s.handleHealth)
	return r
}

func (s *Server) handleForm(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", buildPage(s.adapter.Binding().Sections(), nil))
}

func (s *Server) handleSubmit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxFormBytes)
	if err := c.Request.ParseForm(); err != nil {
		c.HTML(http.StatusBadRequest, "index.html", s.errorPage(nil))
		return
	}
	form := c.Request.PostForm
	ctx := c.Request.Context()

	rec, err := s.collector.Collect(ctx, collector.FormSource(form))
	if err != nil {
		s.logger.Warn("collect form", zap.Error(err))
		c.HTML(http.StatusOK, "index.html", s.errorPage(form))
		return
	}
	res, err := s.adapter.Predict(ctx, rec)
	if err != nil {
		c.HTML(http.StatusOK, "index.html", s.errorPage(form))
		return
	}
	p := buildPage(s.adapter.Binding().Sections(), form)
	p.Result = &res
	c.HTML(http.StatusOK, "index.html", p)
}

func (s *Server) errorPage(form url.Values) page {
	p := buildPage(s.adapter.Binding().Sections(), form)
	p.Error = errorMessage
	return p
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"model":    s.adapter.ModelName(),
		"features": len(s.adapter.Binding().Columns()),
	})
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

func recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		logger.Error("panic serving request", zap.Any("error", err), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}
