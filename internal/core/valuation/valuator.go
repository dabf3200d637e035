package valuation

import (
	"fmt"

	"github.com/fuelsquad/manquants_app/internal/apperrors"
	"github.com/fuelsquad/manquants_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Valuate sums the compartments of productID and prices the reimbursable shortage.
// Delivered volume counts every compartment of the product; shortage volume only
// those marked Remboursable.
func Valuate(compartments []domain.Compartment, productID string, price decimal.Decimal) (domain.ProductValuation, error) {
	if price.IsNegative() {
		return domain.ProductValuation{}, fmt.Errorf("%w: price for product %s must not be negative", apperrors.ErrValidation, productID)
	}

	result := domain.ProductValuation{
		ProductID:     productID,
		Price:         price,
		ShortageValue: decimal.Zero,
	}
	for _, c := range compartments {
		if c.ProductID != productID {
			continue
		}
		if err := c.Validate(); err != nil {
			return domain.ProductValuation{}, err
		}
		result.VolumeDelivered += c.VolumeDelivered
		if c.IsReimbursable() {
			result.VolumeShortage += c.VolumeShortage
		}
	}
	result.ShortageValue = decimal.NewFromInt(result.VolumeShortage).Mul(price)
	return result, nil
}
