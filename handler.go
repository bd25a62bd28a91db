package main

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lg/bmi-tracker/internal/health"
	"lg/bmi-tracker/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

// recordStore is the part of *store.Store the handlers need. Tests substitute
// a failing implementation to exercise the not-saved path.
type recordStore interface {
	Insert(ctx context.Context, weight, height, bmi float64, category string) (store.Record, error)
	Recent(ctx context.Context, limit int) ([]store.Record, error)
}

// Handler holds shared dependencies (record store, calculator, sessions) for
// all route handlers.
type Handler struct {
	store        recordStore
	calc         health.Calculator
	sessions     *sessionStore
	historyLimit int // records shown in the sidebar table and chart
	logger       *zap.Logger
}

func newHandler(rs recordStore, calc health.Calculator, sessions *sessionStore, historyLimit int, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: rs, calc: calc, sessions: sessions, historyLimit: historyLimit, logger: logger}
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

/* ─── Sessions ───────────────────────────────────────────────────────── */

const sessionCookie = "bmi_session"

// sessionID returns the caller's session id, issuing a new cookie when the
// request has none or carries something that is not a uuid.
func sessionID(c *gin.Context) string {
	if v, err := c.Cookie(sessionCookie); err == nil {
		if _, err := uuid.Parse(v); err == nil {
			return v
		}
	}
	id := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	return id
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// newRouter wires the gin engine with templates, middleware and routes.
func newRouter(h *Handler, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(zapLoggerMiddleware(logger))
	router.SetTrustedProxies(nil)
	router.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	h.registerRoutes(router)
	return router
}

// registerRoutes registers the form pages and the JSON API.
func (h *Handler) registerRoutes(router *gin.Engine) {
	router.GET("/", h.getIndex)
	router.POST("/calculate", h.postCalculateForm)
	router.POST("/report", h.postReportForm)
	router.GET("/chart.svg", h.getChart)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.POST("/calculate", h.postCalculate)
	api.GET("/records", h.getRecords)
	api.POST("/report", h.postReport)
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)))
	}
}
