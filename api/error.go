package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kargohub/sendeo-gateway/internal/delivery"
)

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

// statusFromError maps the gateway error taxonomy to HTTP status codes.
// Caller mistakes are 400, broken configuration is 500, a carrier that
// answered with an error is 502 and an unreachable carrier is 504.
func statusFromError(err error) int {
	var validationErr *delivery.ValidationError
	var configErr *delivery.ConfigurationError
	var tokenErr *delivery.TokenAcquisitionError
	var upstreamErr *delivery.UpstreamError
	var transportErr *delivery.TransportError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &configErr):
		return http.StatusInternalServerError
	case errors.As(err, &tokenErr), errors.As(err, &upstreamErr):
		return http.StatusBadGateway
	case errors.As(err, &transportErr):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), errorResponse(err))
}
