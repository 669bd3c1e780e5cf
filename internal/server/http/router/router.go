package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	pkgAuth "github.com/polkiloo/ordertrack/internal/pkg/auth"
	"github.com/polkiloo/ordertrack/internal/server/http/handlers"
	"github.com/polkiloo/ordertrack/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
// The API group requires a token only when the verifier is enabled.
func Setup(facade handlers.TrackerFacade, verifier pkgAuth.Verifier, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	clientHandler := handlers.NewClientHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	reportHandler := handlers.NewReportHandler(facade)
	transferHandler := handlers.NewTransferHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/healthz", healthHandler.Check)

	api := engine.Group("/api")
	if verifier.Enabled() {
		api.Use(middleware.TokenRequired(verifier))
	}

	api.POST("/clients", clientHandler.Create)
	api.GET("/clients", clientHandler.List)
	api.GET("/clients/:id/summary", clientHandler.Summary)

	api.POST("/orders", orderHandler.Create)
	api.GET("/orders", orderHandler.List)

	reports := api.Group("/reports")
	reports.GET("/top-clients", reportHandler.TopClients)
	reports.GET("/top-products", reportHandler.TopProducts)
	reports.GET("/orders-over-time", reportHandler.OrdersOverTime)
	reports.GET("/client-graph", reportHandler.ClientGraph)
	reports.GET("/summary", reportHandler.Summary)

	api.GET("/export/clients", transferHandler.ExportClients)
	api.GET("/export/orders", transferHandler.ExportOrders)
	api.POST("/import/clients", transferHandler.ImportClients)
	api.POST("/import/orders", transferHandler.ImportOrders)

	return engine
}
