package domain_test

import (
	"testing"
	"time"

	"github.com/fuelsquad/manquants_app/internal/apperrors"
	"github.com/fuelsquad/manquants_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriod_Contains(t *testing.T) {
	p := domain.Period{Start: date(2025, 1, 1), End: date(2025, 1, 31)}
	tests := []struct {
		name string
		d    time.Time
		want bool
	}{
		{"first day", date(2025, 1, 1), true},
		{"last day", date(2025, 1, 31), true},
		{"last day late evening", time.Date(2025, 1, 31, 23, 59, 0, 0, time.UTC), true},
		{"day before", date(2024, 12, 31), false},
		{"day after", date(2025, 2, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Contains(tt.d))
		})
	}
}

func TestMonthPeriod(t *testing.T) {
	p := domain.MonthPeriod(2024, time.February)
	assert.Equal(t, date(2024, 2, 1), p.Start)
	assert.Equal(t, date(2024, 2, 29), p.End)
	assert.Equal(t, "Février 2024", domain.FrenchMonthLabel(2024, time.February))
}

func TestPriceRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		record  domain.PriceRecord
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid",
			record: domain.PriceRecord{ProductID: "PDT1", Price: decimal.NewFromInt(800), ValidFrom: date(2025, 1, 1), ValidTo: date(2025, 1, 31)},
		},
		{
			name:   "single day window",
			record: domain.PriceRecord{ProductID: "PDT1", Price: decimal.Zero, ValidFrom: date(2025, 1, 1), ValidTo: date(2025, 1, 1)},
		},
		{
			name:    "negative price",
			record:  domain.PriceRecord{ProductID: "PDT1", Price: decimal.NewFromInt(-1), ValidFrom: date(2025, 1, 1), ValidTo: date(2025, 1, 31)},
			wantErr: true,
			errMsg:  "price must not be negative",
		},
		{
			name:    "inverted window",
			record:  domain.PriceRecord{ProductID: "PDT1", Price: decimal.NewFromInt(800), ValidFrom: date(2025, 2, 1), ValidTo: date(2025, 1, 31)},
			wantErr: true,
			errMsg:  "is before start",
		},
		{
			name:    "missing product",
			record:  domain.PriceRecord{Price: decimal.NewFromInt(800), ValidFrom: date(2025, 1, 1), ValidTo: date(2025, 1, 31)},
			wantErr: true,
			errMsg:  "product is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPriceRecord_Overlaps(t *testing.T) {
	jan := domain.PriceRecord{ProductID: "PDT1", ValidFrom: date(2025, 1, 1), ValidTo: date(2025, 1, 31)}

	assert.True(t, jan.Overlaps(domain.PriceRecord{ProductID: "PDT1", ValidFrom: date(2025, 1, 31), ValidTo: date(2025, 2, 28)}))
	assert.True(t, jan.Overlaps(domain.PriceRecord{ProductID: "PDT1", ValidFrom: date(2025, 1, 10), ValidTo: date(2025, 1, 12)}))
	assert.False(t, jan.Overlaps(domain.PriceRecord{ProductID: "PDT1", ValidFrom: date(2025, 2, 1), ValidTo: date(2025, 2, 28)}))
	assert.False(t, jan.Overlaps(domain.PriceRecord{ProductID: "PDT2", ValidFrom: date(2025, 1, 1), ValidTo: date(2025, 1, 31)}))
}

func TestCompartment_Validate(t *testing.T) {
	assert.NoError(t, domain.Compartment{Number: 1, VolumeDelivered: 10000, VolumeShortage: 50}.Validate())
	assert.ErrorIs(t, domain.Compartment{Number: 1, VolumeDelivered: -1}.Validate(), apperrors.ErrValidation)
	assert.ErrorIs(t, domain.Compartment{Number: 2, VolumeShortage: -5}.Validate(), apperrors.ErrValidation)
}

func TestDelivery_Totals(t *testing.T) {
	d := domain.Delivery{Compartments: []domain.Compartment{
		{Number: 1, ProductID: "PDT1", VolumeDelivered: 10000, VolumeShortage: 50, Remark: domain.RemarkReimbursable},
		{Number: 2, ProductID: "PDT2", VolumeDelivered: 8000, VolumeShortage: 30, Remark: domain.RemarkNonReimbursable},
		{Number: 3, ProductID: "PDT2", VolumeDelivered: 2000, VolumeShortage: 0, Remark: domain.RemarkNothingToReport},
	}}
	assert.Equal(t, int64(20000), d.TotalDelivered())
	assert.Equal(t, int64(50), d.TotalReimbursableShortage())
}

func TestRemark_IsValid(t *testing.T) {
	assert.True(t, domain.Remark("Remboursable").IsValid())
	assert.True(t, domain.Remark("Non remboursable").IsValid())
	assert.False(t, domain.Remark("remboursable").IsValid())
	assert.False(t, domain.Remark("").IsValid())
}

func TestMenuFor(t *testing.T) {
	tests := []struct {
		role domain.Role
		want []domain.MenuItem
	}{
		{domain.RoleAdmin, []domain.MenuItem{domain.MenuDeliveries, domain.MenuPrices, domain.MenuMemo, domain.MenuAccounts}},
		{domain.RoleCarrier, []domain.MenuItem{domain.MenuDeliveries, domain.MenuMemo}},
		{domain.RoleCommercial, []domain.MenuItem{domain.MenuDeliveries, domain.MenuMemo}},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, domain.MenuFor(tt.role))
		})
	}
}

func TestReferenceKind_IDPrefix(t *testing.T) {
	assert.Equal(t, "CH", domain.ReferenceDriver.IDPrefix())
	assert.Equal(t, "TRAC", domain.ReferenceTractor.IDPrefix())
	assert.Equal(t, "CIT", domain.ReferenceTank.IDPrefix())
}
