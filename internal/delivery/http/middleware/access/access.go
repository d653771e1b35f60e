package http_access_middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/cinemate/internal/delivery/http/common"
)

const ReadOnlyMode = "RO"

// ReadOnlyBadGatewayMiddleware lets only reads through on an instance running
// against a read replica.
func ReadOnlyBadGatewayMiddleware(mode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if mode != ReadOnlyMode {
			c.Next()
			return
		}

		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusBadGateway, http_common.ErrorResponse{
			Error:   "Bad Gateway",
			Message: "Write operations not allowed on read-only instance",
			Code:    http.StatusBadGateway,
		})
	}
}
