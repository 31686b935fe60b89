package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/roadledger/roadledger-api/internal/db"
	"github.com/roadledger/roadledger-api/internal/helpers"
	"github.com/roadledger/roadledger-api/internal/types/api/params"
	"github.com/roadledger/roadledger-api/internal/types/business"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TaxSummaryService computes the quarterly IFTA summary for a period.
type TaxSummaryService struct {
	queries db.Querier
	rates   RateSource
	logger  *zap.Logger
}

// NewTaxSummaryService creates a tax summary service.
func NewTaxSummaryService(queries db.Querier, rates RateSource, logger *zap.Logger) *TaxSummaryService {
	if logger == nil {
		logger = zap.L()
	}
	return &TaxSummaryService{queries: queries, rates: rates, logger: logger}
}

// ComputeSummary folds the period's trip miles and fuel gallons into one
// summary per jurisdiction plus grand totals. Edge cases degrade to
// well-defined zeros rather than errors: a period without fuel yields fleet
// MPG 0 and zero taxable gallons everywhere, and a jurisdiction missing
// from the rate table is computed with rate 0 and flagged in Warnings. A
// report must always render.
func (s *TaxSummaryService) ComputeSummary(ctx context.Context, p params.ComputeSummaryParams) (*business.PeriodTaxSummary, error) {
	if err := p.Period.Validate(); err != nil {
		return nil, fmt.Errorf("invalid period: %w", err)
	}

	milesByJurisdiction, err := s.loadTripMiles(ctx, p)
	if err != nil {
		return nil, err
	}
	gallonsByJurisdiction, err := s.loadFuelGallons(ctx, p)
	if err != nil {
		return nil, err
	}

	summary := &business.PeriodTaxSummary{
		Period:            p.Period,
		VehicleID:         p.VehicleID,
		FleetTotalMiles:   decimal.Zero,
		FleetTotalGallons: decimal.Zero,
		FleetMPG:          decimal.Zero,
	}

	for _, miles := range milesByJurisdiction {
		summary.FleetTotalMiles = summary.FleetTotalMiles.Add(miles)
	}
	for _, gallons := range gallonsByJurisdiction {
		summary.FleetTotalGallons = summary.FleetTotalGallons.Add(gallons)
	}

	// Fleet MPG is kept at full precision for the per-jurisdiction division
	// and only rounded for presentation. Zero gallons is a valid state (no
	// recorded purchases), reported as MPG 0, not a division failure.
	fleetMPG := decimal.Zero
	if summary.FleetTotalGallons.IsPositive() {
		fleetMPG = summary.FleetTotalMiles.Div(summary.FleetTotalGallons)
	}
	summary.FleetMPG = fleetMPG.Round(2)

	for _, code := range sortedJurisdictions(milesByJurisdiction, gallonsByJurisdiction) {
		miles := milesByJurisdiction[code]
		gallons := gallonsByJurisdiction[code]

		rate, known := s.rates.Rate(code)
		if !known {
			rate = decimal.Zero
			summary.Warnings = append(summary.Warnings,
				fmt.Sprintf("tax rate unknown for jurisdiction %s; computed with rate 0", code))
		}

		taxableGallons := decimal.Zero
		if fleetMPG.IsPositive() {
			taxableGallons = miles.Div(fleetMPG).Round(2)
		}
		taxOwed := taxableGallons.Mul(rate).Round(2)
		taxPaid := gallons.Mul(rate).Round(2)

		row := business.JurisdictionTaxSummary{
			JurisdictionCode: code,
			JurisdictionName: JurisdictionName(code),
			TotalMiles:       miles,
			TaxableGallons:   taxableGallons,
			TaxPaidGallons:   gallons,
			TaxRate:          rate,
			TaxOwed:          taxOwed,
			TaxPaid:          taxPaid,
			NetTax:           taxOwed.Sub(taxPaid),
		}
		summary.Jurisdictions = append(summary.Jurisdictions, row)

		summary.Totals.TotalMiles = summary.Totals.TotalMiles.Add(row.TotalMiles)
		summary.Totals.TaxableGallons = summary.Totals.TaxableGallons.Add(row.TaxableGallons)
		summary.Totals.TaxPaidGallons = summary.Totals.TaxPaidGallons.Add(row.TaxPaidGallons)
		summary.Totals.TaxOwed = summary.Totals.TaxOwed.Add(row.TaxOwed)
		summary.Totals.TaxPaid = summary.Totals.TaxPaid.Add(row.TaxPaid)
		summary.Totals.NetTax = summary.Totals.NetTax.Add(row.NetTax)
	}

	s.logger.Debug("Computed period tax summary",
		zap.String("period", p.Period.String()),
		zap.Int("jurisdictions", len(summary.Jurisdictions)),
		zap.String("fleet_mpg", summary.FleetMPG.String()))

	return summary, nil
}

func (s *TaxSummaryService) loadTripMiles(ctx context.Context, p params.ComputeSummaryParams) (map[string]decimal.Decimal, error) {
	rows, err := s.queries.ListJurisdictionMilesForPeriod(ctx, db.ListJurisdictionMilesForPeriodParams{
		PeriodYear:    int32(p.Period.Year),
		PeriodQuarter: int32(p.Period.Quarter),
		VehicleID:     uuidToPgtype(p.VehicleID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list jurisdiction miles: %w", err)
	}

	miles := make(map[string]decimal.Decimal)
	for _, row := range rows {
		miles[row.JurisdictionCode] = miles[row.JurisdictionCode].Add(helpers.DecimalFromNumeric(row.Miles))
	}
	return miles, nil
}

func (s *TaxSummaryService) loadFuelGallons(ctx context.Context, p params.ComputeSummaryParams) (map[string]decimal.Decimal, error) {
	purchases, err := s.queries.ListFuelPurchasesByPeriod(ctx, db.ListFuelPurchasesByPeriodParams{
		PeriodYear:    int32(p.Period.Year),
		PeriodQuarter: int32(p.Period.Quarter),
		VehicleID:     uuidToPgtype(p.VehicleID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list fuel purchases: %w", err)
	}

	gallons := make(map[string]decimal.Decimal)
	for _, fp := range purchases {
		gallons[fp.JurisdictionCode] = gallons[fp.JurisdictionCode].Add(helpers.DecimalFromNumeric(fp.Gallons))
	}
	return gallons, nil
}

// sortedJurisdictions returns the union of both keysets in lexicographic
// order for deterministic presentation.
func sortedJurisdictions(miles, gallons map[string]decimal.Decimal) []string {
	seen := make(map[string]bool, len(miles)+len(gallons))
	var codes []string
	for code := range miles {
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}
	for code := range gallons {
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}
