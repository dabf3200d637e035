package valuation

import (
	"errors"
	"sort"

	"github.com/fuelsquad/manquants_app/internal/apperrors"
	"github.com/fuelsquad/manquants_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Aggregator valuates deliveries against a fixed product catalog.
type Aggregator struct {
	products []domain.Product
	resolver *PriceResolver
}

// NewAggregator returns an Aggregator valuating every product of the catalog.
func NewAggregator(products []domain.Product, resolver *PriceResolver) *Aggregator {
	return &Aggregator{products: products, resolver: resolver}
}

// ValuateDelivery prices every catalog product of d. Every compartment is
// validated first, whatever its product, so invalid input is reported before a
// missing price. It then fails with a PriceNotFoundError as soon as one product
// has no price at the delivery date.
func (a *Aggregator) ValuateDelivery(d domain.Delivery) (domain.DeliveryValuation, error) {
	for _, c := range d.Compartments {
		if err := c.Validate(); err != nil {
			return domain.DeliveryValuation{}, err
		}
	}
	out := domain.DeliveryValuation{
		Delivery: d,
		Products: make([]domain.ProductValuation, 0, len(a.products)),
	}
	for _, p := range a.products {
		price, err := a.resolver.Resolve(p.ProductID, d.Date)
		if err != nil {
			return domain.DeliveryValuation{}, err
		}
		pv, err := Valuate(d.Compartments, p.ProductID, price)
		if err != nil {
			return domain.DeliveryValuation{}, err
		}
		pv.ProductName = p.Name
		out.Products = append(out.Products, pv)
	}
	return out, nil
}

// DeliveryRows valuates each delivery. Deliveries with a missing price are
// left out entirely and reported as skipped; invalid input aborts the call.
func (a *Aggregator) DeliveryRows(deliveries []domain.Delivery) ([]domain.DeliveryValuation, []domain.SkippedDelivery, error) {
	rows := make([]domain.DeliveryValuation, 0, len(deliveries))
	skipped := []domain.SkippedDelivery{}
	for _, d := range deliveries {
		row, err := a.ValuateDelivery(d)
		if err != nil {
			var missing *apperrors.PriceNotFoundError
			if errors.As(err, &missing) {
				skipped = append(skipped, domain.SkippedDelivery{
					DeliveryID:     d.DeliveryID,
					OrderReference: d.OrderReference,
					BLNumber:       d.BLNumber,
					Date:           d.Date,
					ProductID:      missing.ProductID,
					Reason:         missing.Error(),
				})
				continue
			}
			return nil, nil, err
		}
		rows = append(rows, row)
	}
	return rows, skipped, nil
}

// Aggregate valuates the deliveries dated within period (both ends included)
// and totals them by carrier and by site.
func (a *Aggregator) Aggregate(deliveries []domain.Delivery, period domain.Period) (*domain.AggregateReport, error) {
	inPeriod := make([]domain.Delivery, 0, len(deliveries))
	for _, d := range deliveries {
		if period.Contains(d.Date) {
			inPeriod = append(inPeriod, d)
		}
	}

	rows, skipped, err := a.DeliveryRows(inPeriod)
	if err != nil {
		return nil, err
	}

	report := &domain.AggregateReport{
		Period:        period,
		Rows:          rows,
		Skipped:       skipped,
		ShortageValue: decimal.Zero,
	}

	carriers := map[string]*domain.CarrierTotal{}
	sites := map[string]*domain.SiteTotal{}
	for _, row := range rows {
		d := row.Delivery
		volume, value := row.TotalShortage(), row.TotalValue()

		ct, ok := carriers[d.CarrierID]
		if !ok {
			ct = &domain.CarrierTotal{CarrierID: d.CarrierID, CarrierName: d.CarrierName, ShortageValue: decimal.Zero}
			carriers[d.CarrierID] = ct
		}
		ct.DeliveryCount++
		ct.VolumeShortage += volume
		ct.ShortageValue = ct.ShortageValue.Add(value)

		siteKey := d.SiteID + "\x00" + d.AccountNumber
		st, ok := sites[siteKey]
		if !ok {
			st = &domain.SiteTotal{SiteID: d.SiteID, SiteName: d.SiteName, AccountNumber: d.AccountNumber, ShortageValue: decimal.Zero}
			sites[siteKey] = st
		}
		st.DeliveryCount++
		st.VolumeShortage += volume
		st.ShortageValue = st.ShortageValue.Add(value)

		report.VolumeShortage += volume
		report.ShortageValue = report.ShortageValue.Add(value)
	}

	report.Carriers = make([]domain.CarrierTotal, 0, len(carriers))
	for _, ct := range carriers {
		report.Carriers = append(report.Carriers, *ct)
	}
	sort.Slice(report.Carriers, func(i, j int) bool {
		return report.Carriers[i].CarrierID < report.Carriers[j].CarrierID
	})

	report.Sites = make([]domain.SiteTotal, 0, len(sites))
	for _, st := range sites {
		report.Sites = append(report.Sites, *st)
	}
	sort.Slice(report.Sites, func(i, j int) bool {
		x, y := report.Sites[i], report.Sites[j]
		if x.SiteName != y.SiteName {
			return x.SiteName < y.SiteName
		}
		if x.AccountNumber != y.AccountNumber {
			return x.AccountNumber < y.AccountNumber
		}
		return x.SiteID < y.SiteID
	})

	return report, nil
}
