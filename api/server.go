package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kargohub/sendeo-gateway/internal/delivery"
	shipmenttracking "github.com/kargohub/sendeo-gateway/internal/shipment_tracking"
	"github.com/kargohub/sendeo-gateway/internal/util"
)

type Server struct {
	router          *gin.Engine
	config          *util.Config
	deliveryService delivery.Provider
	tracker         *shipmenttracking.Tracker
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(config *util.Config, deliveryService delivery.Provider, tracker *shipmenttracking.Tracker) *Server {
	server := &Server{
		config:          config,
		deliveryService: deliveryService,
		tracker:         tracker,
	}

	server.setupRouter()
	return server
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     server.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")

	shipmentGroup := v1.Group("shipments")
	{
		shipmentGroup.POST("", server.createShipment)
		shipmentGroup.POST("/rates", server.calculateRate)
		shipmentGroup.GET(":referenceID/tracking", server.trackShipment)
		shipmentGroup.GET(":referenceID/status", server.getShipmentStatus)
	}

	server.router = router
	return router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}
