package handlers

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/fuelsquad/manquants_app/internal/apperrors"
	"github.com/fuelsquad/manquants_app/internal/core/domain"
	"github.com/fuelsquad/manquants_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusFor maps a service error to its HTTP status.
func statusFor(err error) int {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrPriceNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.As(err, &appErr) && appErr.Code >= http.StatusBadRequest:
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// respondError writes err with its mapped status. Server errors hide the
// cause behind fallback; client errors expose the message.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: fallback})
		return
	}
	logger.Warn(fallback, slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// viewerOrAbort returns the authenticated identity, answering 401 when absent.
func viewerOrAbort(c *gin.Context) (domain.Viewer, bool) {
	viewer, ok := middleware.GetViewerFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Viewer not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return domain.Viewer{}, false
	}
	return viewer, true
}

func deliveryIDParam(c *gin.Context) (int64, bool) {
	raw := c.Param("deliveryID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid delivery id: " + raw})
		return 0, false
	}
	return id, true
}

// attachment writes content as a file download.
func attachment(c *gin.Context, fileName, contentType string, content []byte) {
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
	c.Data(http.StatusOK, contentType, content)
}
