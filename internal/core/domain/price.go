package domain

import (
	"fmt"
	"time"

	"github.com/fuelsquad/manquants_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PriceRecord is the selling price of a product over a closed validity window.
type PriceRecord struct {
	PriceID    string          `json:"priceID"`
	ProductID  string          `json:"productID"`
	Price      decimal.Decimal `json:"price"`
	ValidFrom  time.Time       `json:"validFrom"`
	ValidTo    time.Time       `json:"validTo"`
	RecordedAt time.Time       `json:"recordedAt"`
	RecordedBy string          `json:"recordedBy"`
}

// Covers reports whether the record applies at date d (both bounds inclusive).
func (p PriceRecord) Covers(d time.Time) bool {
	return Period{Start: p.ValidFrom, End: p.ValidTo}.Contains(d)
}

// Overlaps reports whether the validity windows of p and other intersect.
func (p PriceRecord) Overlaps(other PriceRecord) bool {
	return p.ProductID == other.ProductID &&
		!CivilDate(p.ValidFrom).After(CivilDate(other.ValidTo)) &&
		!CivilDate(p.ValidTo).Before(CivilDate(other.ValidFrom))
}

// Validate checks the record invariants.
func (p PriceRecord) Validate() error {
	if p.ProductID == "" {
		return fmt.Errorf("%w: product is required", apperrors.ErrValidation)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
	}
	if CivilDate(p.ValidTo).Before(CivilDate(p.ValidFrom)) {
		return fmt.Errorf("%w: validity end %s is before start %s", apperrors.ErrValidation,
			p.ValidTo.Format(DateLayout), p.ValidFrom.Format(DateLayout))
	}
	return nil
}

// PriceConflictError reports existing records overlapping a new price window.
// It matches apperrors.ErrDuplicate with errors.Is.
type PriceConflictError struct {
	Conflicts []PriceRecord
}

func (e *PriceConflictError) Error() string {
	return fmt.Sprintf("%d existing price record(s) overlap the requested validity window", len(e.Conflicts))
}

// Is lets errors.Is(err, apperrors.ErrDuplicate) succeed.
func (e *PriceConflictError) Is(target error) bool {
	return target == apperrors.ErrDuplicate
}
