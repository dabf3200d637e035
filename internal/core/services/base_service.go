package services

import (
	"context"
	"log/slog"

	"github.com/fuelsquad/manquants_app/internal/apperrors"
	"github.com/fuelsquad/manquants_app/internal/core/domain"
	"github.com/fuelsquad/manquants_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// scopeFilter restricts filter to what viewer may see. Carrier accounts only
// ever see their own deliveries, whatever carrier the request asked for.
func scopeFilter(viewer domain.Viewer, filter *domain.DeliveryFilter) error {
	if viewer.Role != domain.RoleCarrier {
		return nil
	}
	if viewer.CarrierID == "" {
		return apperrors.ErrForbidden
	}
	filter.CarrierID = viewer.CarrierID
	return nil
}

// canView reports whether viewer may see delivery d.
func canView(viewer domain.Viewer, d *domain.Delivery) bool {
	return viewer.Role != domain.RoleCarrier || (viewer.CarrierID != "" && viewer.CarrierID == d.CarrierID)
}

func productIDs(products []domain.Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ProductID
	}
	return ids
}

func inCatalog(products []domain.Product, productID string) bool {
	for _, p := range products {
		if p.ProductID == productID {
			return true
		}
	}
	return false
}
