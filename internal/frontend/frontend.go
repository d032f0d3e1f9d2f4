// Package frontend serves the greeting web page: a form that posts a name,
// calls the greeting service and shows the result.
package frontend

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sebasr/cloud-compute-demo/internal/client"
	"github.com/sebasr/cloud-compute-demo/internal/handlers"
	"github.com/sebasr/cloud-compute-demo/internal/middleware"
)

//go:embed templates/*.html
var templatesFS embed.FS

// DefaultName pre-fills the name input
const DefaultName = "Azure Developer"

type pageData struct {
	Name      string
	Submitted bool
	Outcome   client.Outcome
}

// Handler renders and submits the greeting form
type Handler struct {
	client client.Client
}

// NewHandler creates a form handler backed by c
func NewHandler(c client.Client) *Handler {
	return &Handler{client: c}
}

// Index renders the empty form
// GET /
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageData{Name: DefaultName})
}

// Submit handles a form post and re-renders the page with the outcome.
// The submitted value is kept in the input.
// POST /
func (h *Handler) Submit(c *gin.Context) {
	name := c.PostForm("name")
	outcome := client.Submit(c.Request.Context(), h.client, name)

	c.HTML(http.StatusOK, "index.html", pageData{
		Name:      name,
		Submitted: true,
		Outcome:   outcome,
	})
}

// New creates the frontend router
func New(c client.Client, logger zerolog.Logger) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger, "/health"))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	h := NewHandler(c)
	router.GET("/", h.Index)
	router.POST("/", h.Submit)
	router.GET("/health", handlers.HealthHandler("greeting-frontend"))

	return router
}
