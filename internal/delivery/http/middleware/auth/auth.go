package http_auth_middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/cinemate/internal/delivery/http/common"
)

const Header = "X-Session-Token"

type SessionValidator interface {
	IsValid(ctx context.Context, userID, token string) bool
}

type Middleware struct {
	sessions SessionValidator
	logger   *slog.Logger
}

func New(
	sessions SessionValidator,
) *Middleware {
	return &Middleware{
		sessions: sessions,
		logger:   slog.Default(),
	}
}

// SessionRequired admits a request only when the session header holds the
// live token of the user named by the userParam path parameter.
func (m *Middleware) SessionRequired(userParam string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		t := ctx.GetHeader(Header)
		if t == "" {
			m.logger.Warn("no session header", slog.String("path", ctx.FullPath()))
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Error:   "Unauthorized",
				Message: "no " + Header + " header",
				Code:    http.StatusUnauthorized,
			})
			return
		}

		userID := ctx.Param(userParam)
		if !m.sessions.IsValid(ctx.Request.Context(), userID, t) {
			m.logger.Warn("invalid session", slog.String("user_id", userID))
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Error:   "Unauthorized",
				Message: "invalid session token",
				Code:    http.StatusUnauthorized,
			})
			return
		}
		ctx.Next()
	}
}
