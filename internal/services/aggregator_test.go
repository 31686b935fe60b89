package services_test

import (
	"context"
	"testing"

	"github.com/roadledger/roadledger-api/internal/db"
	"github.com/roadledger/roadledger-api/internal/helpers"
	"github.com/roadledger/roadledger-api/internal/logger"
	"github.com/roadledger/roadledger-api/internal/mocks"
	"github.com/roadledger/roadledger-api/internal/services"
	"github.com/roadledger/roadledger-api/internal/types/api/params"
	"github.com/roadledger/roadledger-api/internal/types/business"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func milesRow(code, miles string) db.ListJurisdictionMilesForPeriodRow {
	return db.ListJurisdictionMilesForPeriodRow{
		JurisdictionCode: code,
		Miles:            helpers.NumericFromDecimal(dec(miles)),
	}
}

func fuelRow(code, gallons string) db.FuelPurchase {
	return db.FuelPurchase{
		JurisdictionCode: code,
		Gallons:          helpers.NumericFromDecimal(dec(gallons)),
	}
}

func rateTable(rates map[string]string) *services.StaticRateTable {
	parsed := make(map[string]decimal.Decimal, len(rates))
	for code, rate := range rates {
		parsed[code] = dec(rate)
	}
	return services.NewStaticRateTable(parsed)
}

func TestTaxSummaryService_ComputeSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTaxSummaryService(mockQuerier,
		rateTable(map[string]string{"TX": "0.20", "OK": "0.20"}), logger.Log)

	period := business.TaxPeriod{Year: 2025, Quarter: 2}

	mockQuerier.EXPECT().ListJurisdictionMilesForPeriod(gomock.Any(), db.ListJurisdictionMilesForPeriodParams{
		PeriodYear:    2025,
		PeriodQuarter: 2,
	}).Return([]db.ListJurisdictionMilesForPeriodRow{
		milesRow("TX", "400"),
		milesRow("OK", "200"),
	}, nil)
	mockQuerier.EXPECT().ListFuelPurchasesByPeriod(gomock.Any(), db.ListFuelPurchasesByPeriodParams{
		PeriodYear:    2025,
		PeriodQuarter: 2,
	}).Return([]db.FuelPurchase{
		fuelRow("TX", "60"),
	}, nil)

	summary, err := service.ComputeSummary(context.Background(), params.ComputeSummaryParams{Period: period})
	require.NoError(t, err)

	assert.True(t, summary.FleetTotalMiles.Equal(dec("600")))
	assert.True(t, summary.FleetTotalGallons.Equal(dec("60")))
	assert.True(t, summary.FleetMPG.Equal(dec("10")))
	assert.Empty(t, summary.Warnings)

	require.Len(t, summary.Jurisdictions, 2)
	ok, tx := summary.Jurisdictions[0], summary.Jurisdictions[1]

	// Jurisdictions sort lexicographically: OK before TX.
	assert.Equal(t, "OK", ok.JurisdictionCode)
	assert.Equal(t, "Oklahoma", ok.JurisdictionName)
	assert.True(t, ok.TotalMiles.Equal(dec("200")))
	assert.True(t, ok.TaxableGallons.Equal(dec("20")))
	assert.True(t, ok.TaxPaidGallons.IsZero())
	assert.True(t, ok.TaxOwed.Equal(dec("4.00")))
	assert.True(t, ok.TaxPaid.IsZero())
	assert.True(t, ok.NetTax.Equal(dec("4.00")), "OK has a net liability")

	assert.Equal(t, "TX", tx.JurisdictionCode)
	assert.True(t, tx.TotalMiles.Equal(dec("400")))
	assert.True(t, tx.TaxableGallons.Equal(dec("40")))
	assert.True(t, tx.TaxPaidGallons.Equal(dec("60")))
	assert.True(t, tx.TaxOwed.Equal(dec("8.00")))
	assert.True(t, tx.TaxPaid.Equal(dec("12.00")))
	assert.True(t, tx.NetTax.Equal(dec("-4.00")), "TX has a net credit")

	assert.True(t, summary.Totals.TotalMiles.Equal(dec("600")))
	assert.True(t, summary.Totals.TaxableGallons.Equal(dec("60")))
	assert.True(t, summary.Totals.TaxOwed.Equal(dec("12.00")))
	assert.True(t, summary.Totals.TaxPaid.Equal(dec("12.00")))
	assert.True(t, summary.Totals.NetTax.IsZero())
}

func TestTaxSummaryService_ComputeSummary_NoFuel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTaxSummaryService(mockQuerier,
		rateTable(map[string]string{"TX": "0.20"}), logger.Log)

	mockQuerier.EXPECT().ListJurisdictionMilesForPeriod(gomock.Any(), gomock.Any()).
		Return([]db.ListJurisdictionMilesForPeriodRow{milesRow("TX", "400")}, nil)
	mockQuerier.EXPECT().ListFuelPurchasesByPeriod(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	summary, err := service.ComputeSummary(context.Background(), params.ComputeSummaryParams{
		Period: business.TaxPeriod{Year: 2025, Quarter: 1},
	})
	require.NoError(t, err)

	// A period with trips but no recorded fuel is valid: MPG and taxable
	// gallons degrade to zero while the mileage still renders.
	assert.True(t, summary.FleetMPG.IsZero())
	require.Len(t, summary.Jurisdictions, 1)
	assert.True(t, summary.Jurisdictions[0].TotalMiles.Equal(dec("400")))
	assert.True(t, summary.Jurisdictions[0].TaxableGallons.IsZero())
	assert.True(t, summary.Jurisdictions[0].TaxOwed.IsZero())
}

func TestTaxSummaryService_ComputeSummary_UnknownRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTaxSummaryService(mockQuerier, rateTable(nil), logger.Log)

	mockQuerier.EXPECT().ListJurisdictionMilesForPeriod(gomock.Any(), gomock.Any()).
		Return([]db.ListJurisdictionMilesForPeriodRow{milesRow("ZZ", "100")}, nil)
	mockQuerier.EXPECT().ListFuelPurchasesByPeriod(gomock.Any(), gomock.Any()).
		Return([]db.FuelPurchase{fuelRow("ZZ", "10")}, nil)

	summary, err := service.ComputeSummary(context.Background(), params.ComputeSummaryParams{
		Period: business.TaxPeriod{Year: 2025, Quarter: 3},
	})
	require.NoError(t, err)

	// Unknown jurisdiction degrades to rate 0 with a warning, never an error.
	require.Len(t, summary.Jurisdictions, 1)
	assert.True(t, summary.Jurisdictions[0].TaxRate.IsZero())
	assert.True(t, summary.Jurisdictions[0].TaxOwed.IsZero())
	assert.True(t, summary.Jurisdictions[0].TaxPaid.IsZero())
	require.Len(t, summary.Warnings, 1)
	assert.Contains(t, summary.Warnings[0], "ZZ")
}

func TestTaxSummaryService_ComputeSummary_FuelOnlyJurisdiction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTaxSummaryService(mockQuerier,
		rateTable(map[string]string{"NV": "0.27"}), logger.Log)

	mockQuerier.EXPECT().ListJurisdictionMilesForPeriod(gomock.Any(), gomock.Any()).
		Return(nil, nil)
	mockQuerier.EXPECT().ListFuelPurchasesByPeriod(gomock.Any(), gomock.Any()).
		Return([]db.FuelPurchase{fuelRow("NV", "100")}, nil)

	summary, err := service.ComputeSummary(context.Background(), params.ComputeSummaryParams{
		Period: business.TaxPeriod{Year: 2025, Quarter: 3},
	})
	require.NoError(t, err)

	// Fuel bought where no miles were driven still appears, as a credit.
	require.Len(t, summary.Jurisdictions, 1)
	nv := summary.Jurisdictions[0]
	assert.Equal(t, "NV", nv.JurisdictionCode)
	assert.True(t, nv.TotalMiles.IsZero())
	assert.True(t, nv.TaxPaid.Equal(dec("27.00")))
	assert.True(t, nv.NetTax.Equal(dec("-27.00")))
}

func TestTaxSummaryService_ComputeSummary_EmptyPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTaxSummaryService(mockQuerier, services.NewDefaultRateTable(), logger.Log)

	mockQuerier.EXPECT().ListJurisdictionMilesForPeriod(gomock.Any(), gomock.Any()).Return(nil, nil)
	mockQuerier.EXPECT().ListFuelPurchasesByPeriod(gomock.Any(), gomock.Any()).Return(nil, nil)

	summary, err := service.ComputeSummary(context.Background(), params.ComputeSummaryParams{
		Period: business.TaxPeriod{Year: 2024, Quarter: 4},
	})
	require.NoError(t, err)
	assert.Empty(t, summary.Jurisdictions)
	assert.True(t, summary.Totals.NetTax.IsZero())
}

func TestTaxSummaryService_ComputeSummary_InvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := services.NewTaxSummaryService(mocks.NewMockQuerier(ctrl), services.NewDefaultRateTable(), logger.Log)

	_, err := service.ComputeSummary(context.Background(), params.ComputeSummaryParams{
		Period: business.TaxPeriod{Year: 2025, Quarter: 9},
	})
	assert.Error(t, err)
}
