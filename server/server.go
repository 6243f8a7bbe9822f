// Package server exposes the analyzer over HTTP.
//
//	GET  /api/health   liveness probe
//	POST /api/analyze  {"url": "...", "format": "json|pdf|markdown|html"}
//
// JSON is returned unless another format is requested; other formats are
// sent as attachments named after the analyzed host.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/gaurav-prasanna/seoaudit/core"
	"github.com/gaurav-prasanna/seoaudit/core/output"
	"github.com/gaurav-prasanna/seoaudit/core/render"
	"github.com/gaurav-prasanna/seoaudit/links"
)

// Analyzer runs one analysis. *analyze.Analyzer implements it.
type Analyzer interface {
	Run(ctx context.Context, url string) (*core.Report, error)
}

// Options configures the handler.
type Options struct {
	Criteria       render.CriteriaSource
	RateLimitRPS   float64
	RateLimitBurst int
	Logger         logrus.FieldLogger
}

type analyzeRequest struct {
	URL    string `json:"url" binding:"required"`
	Format string `json:"format"`
}

type handler struct {
	analyzer Analyzer
	criteria render.CriteriaSource
	log      logrus.FieldLogger
}

// New builds the HTTP handler: a gin engine with recovery, request IDs,
// logging and rate limiting, wrapped in a permissive CORS policy.
func New(a Analyzer, opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	h := &handler{analyzer: a, criteria: opts.Criteria, log: log}
	limiter := NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst)

	r := gin.New()
	r.Use(RequestID())
	r.Use(ErrorHandler(log))
	r.Use(Logging(log))

	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.POST("/analyze", limiter.RateLimit(), h.analyze)
	}

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader, "Content-Disposition"},
	}).Handler(r)
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, http.StatusBadRequest, "Invalid request body: a url is required", err)
		return
	}

	target, err := links.Normalize(req.URL)
	if err != nil {
		h.fail(c, http.StatusBadRequest, "Invalid URL provided", err)
		return
	}

	format := render.FormatJSON
	if req.Format != "" {
		if format, err = render.ParseFormat(req.Format); err != nil {
			h.fail(c, http.StatusBadRequest, err.Error(), err)
			return
		}
	}
	renderer, err := render.New(format, h.criteria)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "Could not render report", err)
		return
	}

	rep, err := h.analyzer.Run(c.Request.Context(), target)
	if err != nil {
		status, msg := errorStatus(err)
		h.fail(c, status, msg, err)
		return
	}

	data, err := renderer.Render(rep)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "Could not render report", err)
		return
	}

	if format != render.FormatJSON {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName(target, renderer.Extension())))
	}
	c.Data(http.StatusOK, renderer.ContentType(), data)
}

// errorStatus maps pipeline errors to an HTTP status and client message.
func errorStatus(err error) (int, string) {
	switch {
	case core.IsFetchFailure(err):
		return http.StatusBadGateway, "could not retrieve page"
	case core.IsConfiguration(err):
		return http.StatusInternalServerError, "internal configuration error"
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout, "request cancelled"
	default:
		return http.StatusInternalServerError, "analysis failed"
	}
}

func (h *handler) fail(c *gin.Context, status int, msg string, err error) {
	requestID := c.GetString(requestIDKey)
	entry := h.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"status_code": status,
	}).WithError(err)
	if status >= http.StatusInternalServerError {
		entry.Error(msg)
	} else {
		entry.Warn(msg)
	}

	body := gin.H{"error": msg, "request_id": requestID}
	var e *core.Error
	if errors.As(err, &e) {
		body["detail"] = e.Error()
	}
	c.AbortWithStatusJSON(status, body)
}
