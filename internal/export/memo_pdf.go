package export

import (
	"strconv"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
	"github.com/fuelsquad/manquants_app/internal/utils"
	"github.com/shopspring/decimal"
)

const memoTitle = "manquants hors freinte RETAIL-B2B"

// MemoFileName is the download name of the memo of a month label such as "Février 2025".
func MemoFileName(label string) string {
	return memoTitle + " " + label + ".pdf"
}

func decimalFromInt(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// BuildMemoPDF renders the monthly regularization memo: totals by carrier,
// totals by site and account, then the deliveries left out for lack of a price.
func BuildMemoPDF(label string, report *domain.AggregateReport) ([]byte, error) {
	doc := newDocument()
	doc.title("MÉMO " + memoTitle + " " + label)
	doc.text("Période du " + report.Period.Start.Format("02/01/2006") + " au " + report.Period.End.Format("02/01/2006") +
		". Seuls les manquants remboursables sont valorisés.")
	doc.pdf.Ln(4)

	doc.section("MONTANTS PAR TRANSPORTEUR")
	carrierWidths := []float64{80, 30, 40, 40}
	doc.header(carrierWidths, "TRANSPORTEUR", "LIVRAISONS", "MANQUANT (L)", "MONTANT")
	for _, c := range report.Carriers {
		name := c.CarrierName
		if name == "" {
			name = c.CarrierID
		}
		doc.row(carrierWidths, false, "LRRR",
			name, strconv.Itoa(c.DeliveryCount),
			utils.FormatGrouped(decimalFromInt(c.VolumeShortage)),
			utils.FormatXOF(c.ShortageValue))
	}
	doc.row(carrierWidths, true, "LRRR",
		"TOTAL", strconv.Itoa(len(report.Rows)),
		utils.FormatGrouped(decimalFromInt(report.VolumeShortage)),
		utils.FormatXOF(report.ShortageValue))
	doc.pdf.Ln(5)

	doc.section("MONTANTS PAR SITE")
	siteWidths := []float64{60, 40, 25, 30, 35}
	doc.header(siteWidths, "SITE", "N° COMPTE", "LIVR.", "MANQUANT (L)", "MONTANT")
	for _, s := range report.Sites {
		doc.row(siteWidths, false, "LLRRR",
			s.SiteName, s.AccountNumber, strconv.Itoa(s.DeliveryCount),
			utils.FormatGrouped(decimalFromInt(s.VolumeShortage)),
			utils.FormatXOF(s.ShortageValue))
	}

	if len(report.Skipped) > 0 {
		doc.pdf.Ln(5)
		doc.section("LIVRAISONS NON VALORISÉES")
		for _, s := range report.Skipped {
			doc.text("Commande " + s.OrderReference + ", BL " + s.BLNumber + " du " +
				s.Date.Format(domain.DateLayout) + " : " + s.Reason)
		}
	}

	return doc.bytes()
}
