package middleware

import (
	"context"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	userIDKey    = contextKey("userID")
	roleKey      = contextKey("role")
	carrierIDKey = contextKey("carrierID")
)

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetViewerFromContext returns the identity the request acts for.
func GetViewerFromContext(c *gin.Context) (domain.Viewer, bool) {
	return ViewerFromCtx(c.Request.Context())
}

// ViewerFromCtx extracts the authenticated identity from ctx.
func ViewerFromCtx(ctx context.Context) (domain.Viewer, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return domain.Viewer{}, false
	}
	role, _ := ctx.Value(roleKey).(domain.Role)
	carrierID, _ := ctx.Value(carrierIDKey).(string)
	return domain.Viewer{UserID: userID, Role: role, CarrierID: carrierID}, true
}

// WithViewer returns a copy of ctx carrying the viewer identity.
func WithViewer(ctx context.Context, viewer domain.Viewer) context.Context {
	ctx = context.WithValue(ctx, userIDKey, viewer.UserID)
	ctx = context.WithValue(ctx, roleKey, viewer.Role)
	return context.WithValue(ctx, carrierIDKey, viewer.CarrierID)
}
