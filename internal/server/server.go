package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/framecraft/admin/internal/catalog"
	"github.com/framecraft/admin/internal/database"
	"github.com/framecraft/admin/internal/docstore"
	"github.com/framecraft/admin/internal/orders"
	"github.com/framecraft/admin/internal/session"
	"github.com/framecraft/admin/internal/storage"
	"github.com/framecraft/admin/internal/users"
)

type Server struct {
	router *gin.Engine

	gate       *session.Gate
	orders     *orders.Store
	categories *catalog.Categories
	products   *catalog.Products
	frames     *catalog.Frames
	users      *users.Service
	uploader   storage.Uploader
	store      docstore.Store
	db         *database.DB
}

// Deps carries everything the HTTP layer needs. db is nil in dev mode
// (in-memory store); uploader is nil when object storage is not
// configured, which disables the upload endpoint but nothing else.
type Deps struct {
	Gate     *session.Gate
	Store    docstore.Store
	Uploader storage.Uploader
	DB       *database.DB
}

// NewServer creates a new server instance
func NewServer(deps Deps) *Server {
	router := gin.Default()

	server := &Server{
		router:     router,
		gate:       deps.Gate,
		orders:     orders.NewStore(deps.Store),
		categories: catalog.NewCategories(deps.Store),
		products:   catalog.NewProducts(deps.Store),
		frames:     catalog.NewFrames(deps.Store),
		users:      users.NewService(deps.Store),
		uploader:   deps.Uploader,
		store:      deps.Store,
		db:         deps.DB,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)
		api.POST("/auth/login", s.login)
		api.POST("/auth/logout", s.logout)
		api.POST("/orders", s.createOrder)
	}

	admin := api.Group("/admin")
	admin.Use(s.requireAdmin())
	{
		admin.GET("/dashboard", s.dashboard)

		admin.GET("/orders", s.listOrders)
		admin.GET("/orders/:id", s.getOrder)
		admin.PATCH("/orders/:id/status", s.updateOrderStatus)
		admin.DELETE("/orders/:id", s.deleteOrder)

		admin.GET("/categories", s.listCategories)
		admin.POST("/categories", s.createCategory)
		admin.PUT("/categories/:id", s.updateCategory)
		admin.DELETE("/categories/:id", s.deleteCategory)

		admin.GET("/products", s.listProducts)
		admin.POST("/products", s.createProduct)
		admin.PUT("/products/:id", s.updateProduct)
		admin.DELETE("/products/:id", s.deleteProduct)

		admin.GET("/frames", s.listFrames)
		admin.POST("/frames", s.createFrame)
		admin.PUT("/frames/:id", s.updateFrame)
		admin.DELETE("/frames/:id", s.deleteFrame)

		admin.GET("/users", s.listUsers)
		admin.POST("/users/:id/role", s.grantAdminRole)

		admin.POST("/uploads", s.uploadImage)
		admin.GET("/maintenance/missing-images", s.missingImages)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	if s.db != nil {
		if err := s.db.HealthCheck(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "error",
				"error":  "database connection failed",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "framecraft-admin",
		"version": "0.1.0",
	})
}

// respondError maps store errors onto the HTTP taxonomy: denied (403),
// not found (404), bad transition (400), everything else internal
// (500). Every failure is logged for the operator and returned as a
// human-readable message for the view.
func respondError(c *gin.Context, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)

	switch {
	case errors.Is(err, users.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
	case errors.Is(err, docstore.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, orders.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
