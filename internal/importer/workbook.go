// Package importer reads the reference tables (commerciaux, transporteurs,
// dépôts, sites, chauffeurs, produits, citernes) from the delivery workbook.
package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/fuelsquad/manquants_app/internal/apperrors"
	"github.com/fuelsquad/manquants_app/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the delivery workbook.
const (
	SheetCommercials = "commerciaux"
	SheetCarriers    = "transporteurs"
	SheetDepots      = "depots"
	SheetSites       = "sites"
	SheetDrivers     = "chauffeurs"
	SheetProducts    = "produits"
	SheetVehicles    = "citernes"
)

// Result is a parsed workbook. Missing lists the expected sheets that were absent.
type Result struct {
	Data    domain.ReferenceData
	Missing []string
}

// table is a sheet with its header row normalized to lower case.
type table struct {
	sheet   string
	columns map[string]int
	rows    [][]string
}

func (t *table) has(column string) bool {
	_, ok := t.columns[column]
	return ok
}

// require fails when one of columns is absent from the header row.
func (t *table) require(columns ...string) error {
	for _, c := range columns {
		if !t.has(c) {
			return fmt.Errorf("%w: sheet %s has no %q column", apperrors.ErrValidation, t.sheet, c)
		}
	}
	return nil
}

// cell returns the trimmed value of column in row, or "" when the row is short.
func (t *table) cell(row []string, column string) string {
	i, ok := t.columns[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// first returns the first non-empty value among columns.
func (t *table) first(row []string, columns ...string) string {
	for _, c := range columns {
		if v := t.cell(row, c); v != "" {
			return v
		}
	}
	return ""
}

func readTable(f *excelize.File, sheet string) (*table, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheet, err)
	}
	t := &table{sheet: sheet, columns: map[string]int{}}
	if len(rows) == 0 {
		return t, nil
	}
	for i, name := range rows[0] {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			t.columns[name] = i
		}
	}
	t.rows = rows[1:]
	return t, nil
}

// Parse reads every known sheet of the workbook in r. Rows without an
// identifier are ignored and repeated identifiers keep their first row.
func Parse(r io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: not a readable xlsx workbook: %v", apperrors.ErrValidation, err)
	}
	defer f.Close()
	return parse(f)
}

// ParseFile opens the workbook at path and parses it.
func ParseFile(path string) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()
	return parse(f)
}

func parse(f *excelize.File) (*Result, error) {
	present := map[string]string{}
	for _, name := range f.GetSheetList() {
		present[strings.ToLower(strings.TrimSpace(name))] = name
	}

	res := &Result{}
	parsers := []struct {
		sheet string
		parse func(*table, *domain.ReferenceData) error
	}{
		{SheetCommercials, parseCommercials},
		{SheetCarriers, parseCarriers},
		{SheetDepots, parseDepots},
		{SheetSites, parseSites},
		{SheetDrivers, parseDrivers},
		{SheetProducts, parseProducts},
		{SheetVehicles, parseVehicles},
	}
	for _, p := range parsers {
		actual, ok := present[p.sheet]
		if !ok {
			res.Missing = append(res.Missing, p.sheet)
			continue
		}
		t, err := readTable(f, actual)
		if err != nil {
			return nil, err
		}
		if len(t.columns) == 0 {
			continue
		}
		if err := p.parse(t, &res.Data); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// each calls fn for every row whose key column is set, once per key.
func each(t *table, key string, fn func(id string, row []string)) {
	seen := map[string]bool{}
	for _, row := range t.rows {
		id := t.cell(row, key)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		fn(id, row)
	}
}

func parseCommercials(t *table, data *domain.ReferenceData) error {
	if err := t.require("id", "nom"); err != nil {
		return err
	}
	each(t, "id", func(id string, row []string) {
		data.Commercials = append(data.Commercials, domain.Commercial{CommercialID: id, Name: t.cell(row, "nom")})
	})
	return nil
}

func parseCarriers(t *table, data *domain.ReferenceData) error {
	if err := t.require("id", "nom"); err != nil {
		return err
	}
	each(t, "id", func(id string, row []string) {
		data.Carriers = append(data.Carriers, domain.Carrier{CarrierID: id, Name: t.cell(row, "nom")})
	})
	return nil
}

func parseDepots(t *table, data *domain.ReferenceData) error {
	if err := t.require("id", "nom"); err != nil {
		return err
	}
	each(t, "id", func(id string, row []string) {
		data.Depots = append(data.Depots, domain.Depot{DepotID: id, Name: t.cell(row, "nom")})
	})
	return nil
}

func parseSites(t *table, data *domain.ReferenceData) error {
	if err := t.require("id", "numero_compte"); err != nil {
		return err
	}
	if !t.has("nom") && !t.has("nom_site") {
		return fmt.Errorf("%w: sheet %s has no site name column", apperrors.ErrValidation, t.sheet)
	}
	each(t, "id", func(id string, row []string) {
		data.Sites = append(data.Sites, domain.Site{
			SiteID:        id,
			Name:          t.first(row, "nom_site", "nom"),
			AccountNumber: t.cell(row, "numero_compte"),
			CommercialID:  t.cell(row, "commercial_id"),
		})
	})
	return nil
}

func parseDrivers(t *table, data *domain.ReferenceData) error {
	if err := t.require("id", "nom", "transporteur_id"); err != nil {
		return err
	}
	each(t, "id", func(id string, row []string) {
		data.Drivers = append(data.Drivers, domain.Driver{
			DriverID:  id,
			Name:      t.cell(row, "nom"),
			CarrierID: t.cell(row, "transporteur_id"),
		})
	})
	return nil
}

func parseProducts(t *table, data *domain.ReferenceData) error {
	if err := t.require("id", "nom"); err != nil {
		return err
	}
	each(t, "id", func(id string, row []string) {
		data.Products = append(data.Products, domain.Product{ProductID: id, Name: t.cell(row, "nom")})
	})
	return nil
}

// parseVehicles splits the citernes sheet, which lists tractors and tanks
// side by side, into both tables. Registrations serve as identifiers.
func parseVehicles(t *table, data *domain.ReferenceData) error {
	if err := t.require("transporteur_id"); err != nil {
		return err
	}
	if !t.has("num_tracteur") && !t.has("num_citerne") {
		return fmt.Errorf("%w: sheet %s has neither num_tracteur nor num_citerne", apperrors.ErrValidation, t.sheet)
	}
	each(t, "num_tracteur", func(reg string, row []string) {
		data.Tractors = append(data.Tractors, domain.Tractor{
			TractorID:    reg,
			Registration: reg,
			CarrierID:    t.cell(row, "transporteur_id"),
		})
	})
	each(t, "num_citerne", func(reg string, row []string) {
		data.Tanks = append(data.Tanks, domain.Tank{
			TankID:       reg,
			Registration: reg,
			CarrierID:    t.cell(row, "transporteur_id"),
		})
	})
	return nil
}
