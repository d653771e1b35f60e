package http_common

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/humanbelnik/cinemate/internal/metrics"
	"github.com/humanbelnik/cinemate/internal/model"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// Status maps a domain error onto an HTTP status.
func Status(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Fail writes the error body for err and logs it at a level matching its
// status.
func Fail(ctx *gin.Context, logger *slog.Logger, summary string, err error) {
	code := Status(err)
	if code == http.StatusInternalServerError {
		metrics.StoreErrors.WithLabelValues(store(err)).Inc()
		logger.Error(summary, slog.String("error", err.Error()), slog.String("path", ctx.FullPath()))
	} else {
		logger.Warn(summary, slog.String("error", err.Error()), slog.String("path", ctx.FullPath()))
	}

	ctx.JSON(code, ErrorResponse{
		Error:   summary,
		Message: err.Error(),
		Code:    code,
	})
}

func BadRequest(ctx *gin.Context, logger *slog.Logger, message string) {
	logger.Warn("invalid request", slog.String("error", message), slog.String("path", ctx.FullPath()))
	ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "Invalid request",
		Message: message,
		Code:    http.StatusBadRequest,
	})
}

// QueryInt64 reads an integer query parameter, falling back to def when the
// parameter is absent.
func QueryInt64(ctx *gin.Context, name string, def int64) (int64, error) {
	raw, ok := ctx.GetQuery(name)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return v, nil
}

func store(err error) string {
	if errors.Is(err, model.ErrStore) {
		return "store"
	}
	return "unknown"
}
