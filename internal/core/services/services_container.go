package services

import (
	"github.com/fuelsquad/manquants_app/internal/core/domain"
	portsrepo "github.com/fuelsquad/manquants_app/internal/core/ports/repositories"
	portssvc "github.com/fuelsquad/manquants_app/internal/core/ports/services"
	"github.com/fuelsquad/manquants_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, products []domain.Product) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Price = NewPriceService(repos.PriceRepo, products)
	container.Delivery = NewDeliveryService(
		repos.DeliveryRepo,
		products,
		WithDeliveryReferences(repos.ReferenceRepo),
		WithDocumentStore(repos.Documents),
	)
	container.Reporting = NewReportingService(repos.DeliveryRepo, repos.PriceRepo, products)
	container.Export = NewExportService(container.Reporting, container.Delivery, products)
	container.Reference = NewReferenceService(repos.ReferenceRepo, products)
	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewAuthService(cfg, repos.UserRepo)

	return container
}
