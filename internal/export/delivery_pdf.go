package export

import (
	"fmt"
	"strconv"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
	"github.com/fuelsquad/manquants_app/internal/utils"
)

// DeliverySummaryFileName is the download name of a delivery summary.
func DeliverySummaryFileName(d domain.Delivery) string {
	return fmt.Sprintf("Livraison_%s_BL %s du %s.pdf", d.SiteName, d.BLNumber, d.Date.Format(domain.DateLayout))
}

// BuildDeliverySummaryPDF renders the three-part summary of one delivery:
// general information, compartment detail and per-product totals. valuation
// may be nil when no price applies; the value column then shows "-".
func BuildDeliverySummaryPDF(d domain.Delivery, products []domain.Product, valuation *domain.DeliveryValuation) ([]byte, error) {
	doc := newDocument()
	doc.title("RÉSUMÉ LIVRAISON BL " + d.BLNumber)

	doc.section("PARTIE 1 : INFORMATIONS GÉNÉRALES")
	infos := [][2]string{
		{"DATE DE LIVRAISON", d.Date.Format(domain.DateLayout)},
		{"SITE", d.SiteName},
		{"NUMÉRO DE COMMANDE", d.OrderReference},
		{"NUMÉRO DE BL", d.BLNumber},
		{"TRANSPORTEUR", d.CarrierName},
		{"CITERNE", d.Tank},
		{"TRACTEUR", d.Tractor},
		{"CHAUFFEUR", d.Driver},
	}
	for _, info := range infos {
		doc.pdf.SetFont("Arial", "B", 10)
		doc.pdf.SetFillColor(sectionFill[0], sectionFill[1], sectionFill[2])
		doc.pdf.CellFormat(60, 10, doc.tr(info[0]), "1", 0, "L", true, 0, "")
		doc.pdf.SetFont("Arial", "", 10)
		doc.pdf.CellFormat(130, 10, doc.tr(info[1]), "1", 1, "L", false, 0, "")
	}
	doc.pdf.Ln(5)

	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ProductID] = p.Name
	}

	doc.section("PARTIE 2 : DÉTAIL LIVRAISON")
	detailWidths := []float64{25, 40, 35, 35, 55}
	doc.header(detailWidths, "NUM_CPT", "PRODUIT", "VOLUME (L)", "MANQUANT (L)", "COMMENTAIRE")
	for _, c := range d.Compartments {
		name := names[c.ProductID]
		if name == "" {
			name = c.ProductID
		}
		doc.row(detailWidths, false, "CLRRL",
			strconv.Itoa(c.Number), name,
			utils.FormatGrouped(decimalFromInt(c.VolumeDelivered)),
			utils.FormatGrouped(decimalFromInt(c.VolumeShortage)),
			string(c.Remark))
	}
	doc.pdf.Ln(5)

	doc.section("PARTIE 3 : TOTAL LIVRÉ / MANQUANT REMBOURSABLE")
	totalWidths := []float64{50, 45, 50, 45}
	doc.header(totalWidths, "PRODUIT", "VOLUME LIVRÉ (L)", "MANQUANT REMBOURSABLE", "VALEUR")
	var totalDelivered, totalShortage int64
	for _, p := range products {
		var delivered, shortage int64
		for _, c := range d.Compartments {
			if c.ProductID != p.ProductID {
				continue
			}
			delivered += c.VolumeDelivered
			if c.IsReimbursable() {
				shortage += c.VolumeShortage
			}
		}
		totalDelivered += delivered
		totalShortage += shortage
		doc.row(totalWidths, false, "LRRR",
			p.Name,
			utils.FormatGrouped(decimalFromInt(delivered)),
			utils.FormatGrouped(decimalFromInt(shortage)),
			productValue(valuation, p.ProductID))
	}
	total := "-"
	if valuation != nil {
		total = utils.FormatXOF(valuation.TotalValue())
	}
	doc.row(totalWidths, true, "LRRR",
		"TOTAL",
		utils.FormatGrouped(decimalFromInt(totalDelivered)),
		utils.FormatGrouped(decimalFromInt(totalShortage)),
		total)

	return doc.bytes()
}

func productValue(valuation *domain.DeliveryValuation, productID string) string {
	if valuation == nil {
		return "-"
	}
	pv, ok := valuation.Product(productID)
	if !ok {
		return "-"
	}
	return utils.FormatXOF(pv.ShortageValue)
}
