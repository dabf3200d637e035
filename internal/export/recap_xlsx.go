// Package export renders shortage reports as XLSX workbooks and PDF documents.
package export

import (
	"bytes"
	"fmt"

	"github.com/fuelsquad/manquants_app/internal/core/domain"
	"github.com/fuelsquad/manquants_app/internal/utils"
	"github.com/xuri/excelize/v2"
)

const (
	// RecapSheet is the name of the recap worksheet.
	RecapSheet = "RECAP"
	// RecapFileName is the download name of the recap workbook.
	RecapFileName = "recap_manquant.xlsx"

	recapColumnWidth = 18
	groupedNumFmt    = "# ##0"
)

type headerGroup struct {
	title       string
	headerColor string
	subColor    string
	align       string
	numeric     bool
	columns     []string
}

func recapGroups(products []domain.Product) []headerGroup {
	volumes := make([]string, 0, len(products)+1)
	amounts := make([]string, 0, len(products)+1)
	for _, p := range products {
		volumes = append(volumes, p.Name+" (L)")
		amounts = append(amounts, fmt.Sprintf("%s (%s)", p.Name, utils.CurrencyLabel))
	}
	volumes = append(volumes, "Total (L)")
	amounts = append(amounts, fmt.Sprintf("Total (%s)", utils.CurrencyLabel))

	return []headerGroup{
		{
			title: "INFORMATION GÉNÉRALE", headerColor: "#B7DEE8", subColor: "#DCEEF4", align: "left",
			columns: []string{"Id", "Date", "Commande", "BL", "Dépôt", "Transporteur", "Tracteur", "Citerne", "Chauffeur"},
		},
		{title: "VOLUME LIVRÉ", headerColor: "#FCD5B4", subColor: "#FDE9D9", align: "center", numeric: true, columns: volumes},
		{title: "MANQUANT EN LITRE", headerColor: "#FFF2CC", subColor: "#FFF9E5", align: "center", columns: volumes},
		{title: "MANQUANT EN " + utils.CurrencyLabel, headerColor: "#D9D2E9", subColor: "#EDEAF5", align: "right", numeric: true, columns: amounts},
	}
}

func borders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}

func headerStyle(f *excelize.File, color string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    borders(),
		Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
	})
}

func cellStyle(f *excelize.File, align string, numeric bool) (int, error) {
	style := &excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: align, Vertical: "center"},
		Border:    borders(),
	}
	if numeric {
		format := groupedNumFmt
		style.CustomNumFmt = &format
	}
	return f.NewStyle(style)
}

// recapRowValues lays out one delivery in column order.
func recapRowValues(row domain.DeliveryValuation) []any {
	d := row.Delivery
	values := []any{
		d.DeliveryID, d.Date.Format(domain.DateLayout), d.OrderReference, d.BLNumber, d.DepotID,
		d.CarrierName, d.Tractor, d.Tank, d.Driver,
	}
	for _, p := range row.Products {
		values = append(values, p.VolumeDelivered)
	}
	values = append(values, row.TotalDelivered())
	for _, p := range row.Products {
		values = append(values, p.VolumeShortage)
	}
	values = append(values, row.TotalShortage())
	for _, p := range row.Products {
		values = append(values, p.ShortageValue.InexactFloat64())
	}
	values = append(values, row.TotalValue().InexactFloat64())
	return values
}

// BuildRecapXLSX renders the recap table with two header rows: merged
// category titles on row 1 and column names on row 2.
func BuildRecapXLSX(products []domain.Product, rows []domain.DeliveryValuation) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", RecapSheet); err != nil {
		return nil, err
	}

	groups := recapGroups(products)
	colStyles := []int{}
	col := 1
	for _, g := range groups {
		hStyle, err := headerStyle(f, g.headerColor)
		if err != nil {
			return nil, err
		}
		subStyle, err := headerStyle(f, g.subColor)
		if err != nil {
			return nil, err
		}
		bodyStyle, err := cellStyle(f, g.align, g.numeric)
		if err != nil {
			return nil, err
		}

		first, _ := excelize.CoordinatesToCellName(col, 1)
		last, _ := excelize.CoordinatesToCellName(col+len(g.columns)-1, 1)
		if err := f.MergeCell(RecapSheet, first, last); err != nil {
			return nil, err
		}
		_ = f.SetCellValue(RecapSheet, first, g.title)
		_ = f.SetCellStyle(RecapSheet, first, last, hStyle)

		for i, name := range g.columns {
			cell, _ := excelize.CoordinatesToCellName(col+i, 2)
			_ = f.SetCellValue(RecapSheet, cell, name)
			_ = f.SetCellStyle(RecapSheet, cell, cell, subStyle)
			colStyles = append(colStyles, bodyStyle)
		}
		col += len(g.columns)
	}

	for r, row := range rows {
		for c, value := range recapRowValues(row) {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+3)
			_ = f.SetCellValue(RecapSheet, cell, value)
			_ = f.SetCellStyle(RecapSheet, cell, cell, colStyles[c])
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(colStyles))
	if err := f.SetColWidth(RecapSheet, "A", lastCol, recapColumnWidth); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
