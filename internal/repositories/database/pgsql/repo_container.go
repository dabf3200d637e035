package pgsql

import (
	portsrepo "github.com/fuelsquad/manquants_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgx repositories and the document store.
func NewRepositoryProvider(dbPool *pgxpool.Pool, documents portsrepo.DocumentStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PriceRepo:     newPgxPriceRepository(dbPool),
		DeliveryRepo:  newPgxDeliveryRepository(dbPool),
		ReferenceRepo: newPgxReferenceRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
		Documents:     documents,
	}
}
