package params

import (
	"time"

	"github.com/google/uuid"
	"github.com/roadledger/roadledger-api/internal/types/business"
	"github.com/shopspring/decimal"
)

// ImportShipmentsParams scopes one import run.
type ImportShipmentsParams struct {
	Period    business.TaxPeriod
	VehicleID *uuid.UUID
}

// ComputeSummaryParams scopes one summary computation.
type ComputeSummaryParams struct {
	Period    business.TaxPeriod
	VehicleID *uuid.UUID
}

// UpsertTripParams carries a manually entered or edited trip together with
// its owned jurisdiction-mile entries. A nil ID creates a new trip.
type UpsertTripParams struct {
	ID                      *uuid.UUID
	VehicleID               *uuid.UUID
	Period                  business.TaxPeriod
	TripDate                time.Time
	OriginJurisdiction      string
	DestinationJurisdiction string
	TotalMiles              decimal.Decimal
	JurisdictionMiles       []business.JurisdictionShare
	Provenance              business.Provenance
}

// UpsertFuelPurchaseParams carries one fuel receipt. PricePerGallon and
// TotalCost are optional; a missing total cost is derived from gallons and
// price when both are known and left unset otherwise.
type UpsertFuelPurchaseParams struct {
	ID               *uuid.UUID
	VehicleID        *uuid.UUID
	Period           business.TaxPeriod
	PurchaseDate     time.Time
	JurisdictionCode string
	Gallons          decimal.Decimal
	PricePerGallon   *decimal.Decimal
	TotalCost        *decimal.Decimal
}
