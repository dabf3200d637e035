// Package valuation computes the value of reimbursable fuel shortages from the
// price history and the compartments of each delivery.
package valuation

import (
	"sort"
	"time"

	"github.com/fuelsquad/manquants_app/internal/apperrors"
	"github.com/fuelsquad/manquants_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PriceResolver answers "what price applies to product P on date D".
// It is read-only once built and safe for concurrent use.
type PriceResolver struct {
	byProduct map[string][]domain.PriceRecord
}

// NewPriceResolver indexes records by product. Within a product, records are
// ordered by precedence: latest ValidFrom first, then latest RecordedAt, then
// greatest PriceID.
func NewPriceResolver(records []domain.PriceRecord) *PriceResolver {
	byProduct := make(map[string][]domain.PriceRecord)
	for _, r := range records {
		byProduct[r.ProductID] = append(byProduct[r.ProductID], r)
	}
	for _, list := range byProduct {
		sort.SliceStable(list, func(i, j int) bool {
			return takesPrecedence(list[i], list[j])
		})
	}
	return &PriceResolver{byProduct: byProduct}
}

func takesPrecedence(a, b domain.PriceRecord) bool {
	af, bf := domain.CivilDate(a.ValidFrom), domain.CivilDate(b.ValidFrom)
	if !af.Equal(bf) {
		return af.After(bf)
	}
	if !a.RecordedAt.Equal(b.RecordedAt) {
		return a.RecordedAt.After(b.RecordedAt)
	}
	return a.PriceID > b.PriceID
}

// ResolveRecord returns the price record in effect for productID on date.
func (r *PriceResolver) ResolveRecord(productID string, date time.Time) (*domain.PriceRecord, error) {
	for _, rec := range r.byProduct[productID] {
		if rec.Covers(date) {
			found := rec
			return &found, nil
		}
	}
	return nil, &apperrors.PriceNotFoundError{ProductID: productID, Date: domain.CivilDate(date)}
}

// Resolve returns the unit price in effect for productID on date.
func (r *PriceResolver) Resolve(productID string, date time.Time) (decimal.Decimal, error) {
	rec, err := r.ResolveRecord(productID, date)
	if err != nil {
		return decimal.Zero, err
	}
	return rec.Price, nil
}
