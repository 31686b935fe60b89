package business

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Provenance records how a trip's jurisdiction mileage was derived.
type Provenance string

const (
	ProvenanceGPSTracked       Provenance = "GPS_TRACKED"
	ProvenanceImportedEstimate Provenance = "IMPORTED_ESTIMATE"
	ProvenanceManual           Provenance = "MANUAL"
)

// Shipment completion statuses eligible for trip import.
const (
	ShipmentDelivered = "DELIVERED"
	ShipmentInvoiced  = "INVOICED"
	ShipmentPaid      = "PAID"
)

// DistanceSample is one GPS-geofence mileage reading for a shipment.
// Samples are supplied by the external geofence collaborator and are not
// guaranteed to sum to the shipment's authoritative total mileage.
type DistanceSample struct {
	Jurisdiction string          `json:"jurisdiction"`
	Miles        decimal.Decimal `json:"miles"`
}

// JurisdictionShare is a normalized (jurisdiction, miles) apportionment entry.
type JurisdictionShare struct {
	Jurisdiction string          `json:"jurisdiction"`
	Miles        decimal.Decimal `json:"miles"`
}

// JurisdictionTaxSummary is the per-jurisdiction line of a quarterly IFTA
// report. Computed on every query, never persisted.
type JurisdictionTaxSummary struct {
	JurisdictionCode string          `json:"jurisdiction_code"`
	JurisdictionName string          `json:"jurisdiction_name"`
	TotalMiles       decimal.Decimal `json:"total_miles"`
	TaxableGallons   decimal.Decimal `json:"taxable_gallons"`
	TaxPaidGallons   decimal.Decimal `json:"tax_paid_gallons"`
	TaxRate          decimal.Decimal `json:"tax_rate"`
	TaxOwed          decimal.Decimal `json:"tax_owed"`
	TaxPaid          decimal.Decimal `json:"tax_paid"`
	NetTax           decimal.Decimal `json:"net_tax"`
}

// SummaryTotals holds the unweighted column sums across all jurisdictions.
type SummaryTotals struct {
	TotalMiles     decimal.Decimal `json:"total_miles"`
	TaxableGallons decimal.Decimal `json:"taxable_gallons"`
	TaxPaidGallons decimal.Decimal `json:"tax_paid_gallons"`
	TaxOwed        decimal.Decimal `json:"tax_owed"`
	TaxPaid        decimal.Decimal `json:"tax_paid"`
	NetTax         decimal.Decimal `json:"net_tax"`
}

// PeriodTaxSummary is the full quarterly report for a period, optionally
// scoped to a single vehicle.
type PeriodTaxSummary struct {
	Period            TaxPeriod                `json:"period"`
	VehicleID         *uuid.UUID               `json:"vehicle_id,omitempty"`
	FleetTotalMiles   decimal.Decimal          `json:"fleet_total_miles"`
	FleetTotalGallons decimal.Decimal          `json:"fleet_total_gallons"`
	FleetMPG          decimal.Decimal          `json:"fleet_mpg"`
	Jurisdictions     []JurisdictionTaxSummary `json:"jurisdictions"`
	Totals            SummaryTotals            `json:"totals"`
	Warnings          []string                 `json:"warnings,omitempty"`
}
