package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kargohub/sendeo-gateway/internal/delivery"
	"github.com/rs/zerolog/log"
)

// createShipment registers a parcel with the carrier for an order supplied
// by the order-creation workflow.
func (server *Server) createShipment(c *gin.Context) {
	var req delivery.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	result, err := server.deliveryService.CreateShipment(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("order_id", req.OrderID).Msg("failed to create shipment")
		respondError(c, err)
		return
	}

	if server.tracker != nil {
		server.tracker.Watch(result.TrackingNumber)
	}

	c.JSON(http.StatusCreated, result)
}

func (server *Server) trackShipment(c *gin.Context) {
	referenceID := c.Param("referenceID")

	result, err := server.deliveryService.TrackShipment(c.Request.Context(), referenceID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (server *Server) getShipmentStatus(c *gin.Context) {
	referenceID := c.Param("referenceID")

	result, err := server.deliveryService.GetShipmentStatus(c.Request.Context(), referenceID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (server *Server) calculateRate(c *gin.Context) {
	var req delivery.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	result, err := server.deliveryService.CalculateRate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
