package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/roadledger/roadledger-api/internal/db"
	"github.com/roadledger/roadledger-api/internal/helpers"
	"github.com/roadledger/roadledger-api/internal/types/api/params"
	"github.com/roadledger/roadledger-api/internal/types/api/responses"
	"github.com/roadledger/roadledger-api/internal/types/business"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// FuelPurchaseService handles fuel receipt entry for a tax period.
type FuelPurchaseService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewFuelPurchaseService creates a fuel purchase service.
func NewFuelPurchaseService(queries db.Querier, logger *zap.Logger) *FuelPurchaseService {
	if logger == nil {
		logger = zap.L()
	}
	return &FuelPurchaseService{queries: queries, logger: logger}
}

// UpsertFuelPurchase creates or updates one fuel receipt. A missing total
// cost is derived from gallons and price per gallon when both are known and
// left NULL otherwise; it is never defaulted to zero.
func (s *FuelPurchaseService) UpsertFuelPurchase(ctx context.Context, p params.UpsertFuelPurchaseParams) (*responses.FuelPurchaseResponse, error) {
	p.JurisdictionCode = normalizeJurisdiction(p.JurisdictionCode)

	if err := p.Period.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid period: %v", ErrInvalidInput, err)
	}
	if !p.Gallons.IsPositive() {
		return nil, fmt.Errorf("%w: gallons must be positive, got %s", ErrInvalidInput, p.Gallons)
	}
	if p.JurisdictionCode == "" {
		return nil, fmt.Errorf("%w: jurisdiction code must not be empty", ErrInvalidInput)
	}

	totalCost := p.TotalCost
	if totalCost == nil && p.PricePerGallon != nil {
		derived := p.Gallons.Mul(*p.PricePerGallon).Round(2)
		totalCost = &derived
	}

	var row db.FuelPurchase
	var err error
	if p.ID == nil {
		row, err = s.queries.CreateFuelPurchase(ctx, db.CreateFuelPurchaseParams{
			VehicleID:        uuidToPgtype(p.VehicleID),
			PeriodYear:       int32(p.Period.Year),
			PeriodQuarter:    int32(p.Period.Quarter),
			PurchaseDate:     pgtype.Date{Time: p.PurchaseDate, Valid: true},
			JurisdictionCode: p.JurisdictionCode,
			Gallons:          helpers.NumericFromDecimal(p.Gallons),
			PricePerGallon:   helpers.NumericFromDecimalPtr(p.PricePerGallon),
			TotalCost:        helpers.NumericFromDecimalPtr(totalCost),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create fuel purchase: %w", err)
		}
	} else {
		row, err = s.queries.UpdateFuelPurchase(ctx, db.UpdateFuelPurchaseParams{
			ID:               *p.ID,
			VehicleID:        uuidToPgtype(p.VehicleID),
			PeriodYear:       int32(p.Period.Year),
			PeriodQuarter:    int32(p.Period.Quarter),
			PurchaseDate:     pgtype.Date{Time: p.PurchaseDate, Valid: true},
			JurisdictionCode: p.JurisdictionCode,
			Gallons:          helpers.NumericFromDecimal(p.Gallons),
			PricePerGallon:   helpers.NumericFromDecimalPtr(p.PricePerGallon),
			TotalCost:        helpers.NumericFromDecimalPtr(totalCost),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to update fuel purchase: %w", err)
		}
	}

	s.logger.Info("Saved fuel purchase",
		zap.String("fuel_purchase_id", row.ID.String()),
		zap.String("jurisdiction", row.JurisdictionCode),
		zap.String("gallons", p.Gallons.String()))

	return fuelPurchaseToResponse(row), nil
}

// DeleteFuelPurchase removes one fuel receipt.
func (s *FuelPurchaseService) DeleteFuelPurchase(ctx context.Context, id uuid.UUID) error {
	if _, err := s.queries.GetFuelPurchase(ctx, id); err != nil {
		return fmt.Errorf("failed to load fuel purchase: %w", err)
	}
	if err := s.queries.DeleteFuelPurchase(ctx, id); err != nil {
		return fmt.Errorf("failed to delete fuel purchase: %w", err)
	}
	return nil
}

func fuelPurchaseToResponse(row db.FuelPurchase) *responses.FuelPurchaseResponse {
	var price, cost *decimal.Decimal
	if row.PricePerGallon.Valid {
		price = helpers.DecimalPtrFromNumeric(row.PricePerGallon)
	}
	if row.TotalCost.Valid {
		cost = helpers.DecimalPtrFromNumeric(row.TotalCost)
	}
	return &responses.FuelPurchaseResponse{
		ID:               row.ID,
		VehicleID:        pgtypeToUUIDPtr(row.VehicleID),
		Period:           business.TaxPeriod{Year: int(row.PeriodYear), Quarter: int(row.PeriodQuarter)},
		PurchaseDate:     row.PurchaseDate.Time,
		JurisdictionCode: row.JurisdictionCode,
		Gallons:          helpers.DecimalFromNumeric(row.Gallons),
		PricePerGallon:   price,
		TotalCost:        cost,
	}
}
