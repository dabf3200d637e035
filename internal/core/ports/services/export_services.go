package services

import (
	"context"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
	"github.com/fuelsquad/manquants_app/internal/dto"
)

// ExportedFile is a rendered document ready to download.
type ExportedFile struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ExportSvc renders reports as downloadable files.
type ExportSvc interface {
	RecapWorkbook(ctx context.Context, params dto.DeliveryRecapParams, viewer domain.Viewer) (*ExportedFile, error)
	DeliverySummaryPDF(ctx context.Context, deliveryID int64, viewer domain.Viewer) (*ExportedFile, error)
	MemoPDF(ctx context.Context, params dto.MemoParams, viewer domain.Viewer) (*ExportedFile, error)
}
