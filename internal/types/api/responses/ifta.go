package responses

import (
	"time"

	"github.com/google/uuid"
	"github.com/roadledger/roadledger-api/internal/types/business"
	"github.com/shopspring/decimal"
)

// ImportReport summarizes one shipment-import run. A batch always completes
// and reports counts; per-shipment failures are listed, never raised.
type ImportReport struct {
	Period         business.TaxPeriod `json:"period"`
	Imported       int                `json:"imported"`
	GpsTracked     int                `json:"gps_tracked"`
	Estimated      int                `json:"estimated"`
	Skipped        int                `json:"skipped"`
	Failed         int                `json:"failed"`
	FailureReasons []string           `json:"failure_reasons,omitempty"`
	Warnings       []string           `json:"warnings,omitempty"`
}

// TripResponse is a trip with its owned jurisdiction-mile entries.
type TripResponse struct {
	ID                      uuid.UUID                    `json:"id"`
	VehicleID               *uuid.UUID                   `json:"vehicle_id,omitempty"`
	Period                  business.TaxPeriod           `json:"period"`
	TripDate                time.Time                    `json:"trip_date"`
	OriginJurisdiction      string                       `json:"origin_jurisdiction"`
	DestinationJurisdiction string                       `json:"destination_jurisdiction"`
	TotalMiles              decimal.Decimal              `json:"total_miles"`
	SourceShipmentID        *uuid.UUID                   `json:"source_shipment_id,omitempty"`
	Provenance              business.Provenance          `json:"provenance"`
	JurisdictionMiles       []business.JurisdictionShare `json:"jurisdiction_miles"`
}

// FuelPurchaseResponse is one persisted fuel receipt.
type FuelPurchaseResponse struct {
	ID               uuid.UUID          `json:"id"`
	VehicleID        *uuid.UUID         `json:"vehicle_id,omitempty"`
	Period           business.TaxPeriod `json:"period"`
	PurchaseDate     time.Time          `json:"purchase_date"`
	JurisdictionCode string             `json:"jurisdiction_code"`
	Gallons          decimal.Decimal    `json:"gallons"`
	PricePerGallon   *decimal.Decimal   `json:"price_per_gallon,omitempty"`
	TotalCost        *decimal.Decimal   `json:"total_cost,omitempty"`
}

// SummaryCSVHeader is the boundary contract's column order for exported
// jurisdiction tax summary rows.
var SummaryCSVHeader = []string{
	"jurisdiction_code",
	"jurisdiction_name",
	"total_miles",
	"taxable_gallons",
	"tax_paid_gallons",
	"tax_rate",
	"tax_owed",
	"tax_paid",
	"net_tax",
}

// BuildSummaryCSVRows renders a period summary as CSV records, header first
// and a TOTAL row last. The caller owns the actual CSV writing.
func BuildSummaryCSVRows(s *business.PeriodTaxSummary) [][]string {
	rows := make([][]string, 0, len(s.Jurisdictions)+2)
	rows = append(rows, SummaryCSVHeader)
	for _, j := range s.Jurisdictions {
		rows = append(rows, []string{
			j.JurisdictionCode,
			j.JurisdictionName,
			j.TotalMiles.StringFixed(1),
			j.TaxableGallons.StringFixed(2),
			j.TaxPaidGallons.StringFixed(2),
			j.TaxRate.String(),
			j.TaxOwed.StringFixed(2),
			j.TaxPaid.StringFixed(2),
			j.NetTax.StringFixed(2),
		})
	}
	rows = append(rows, []string{
		"TOTAL",
		"",
		s.Totals.TotalMiles.StringFixed(1),
		s.Totals.TaxableGallons.StringFixed(2),
		s.Totals.TaxPaidGallons.StringFixed(2),
		"",
		s.Totals.TaxOwed.StringFixed(2),
		s.Totals.TaxPaid.StringFixed(2),
		s.Totals.NetTax.StringFixed(2),
	})
	return rows
}
