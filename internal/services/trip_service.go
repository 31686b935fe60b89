package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/roadledger/roadledger-api/internal/db"
	"github.com/roadledger/roadledger-api/internal/helpers"
	"github.com/roadledger/roadledger-api/internal/types/api/params"
	"github.com/roadledger/roadledger-api/internal/types/api/responses"
	"github.com/roadledger/roadledger-api/internal/types/business"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// milesTolerance is how far the jurisdiction-mile entries of a trip may
// drift from its total, covering one-decimal rounding only.
var milesTolerance = decimal.RequireFromString("0.1")

// ErrInvalidInput marks request validation failures so the HTTP boundary
// can report them as client errors rather than server failures.
var ErrInvalidInput = errors.New("invalid input")

// TripService handles manual trip entry and editing. A trip and its
// jurisdiction-mile rows always change together.
type TripService struct {
	queries db.Querier
	pool    *pgxpool.Pool
	logger  *zap.Logger
}

// NewTripService creates a trip service. See NewTripImportService for the
// pool convention.
func NewTripService(queries db.Querier, pool *pgxpool.Pool, logger *zap.Logger) *TripService {
	if logger == nil {
		logger = zap.L()
	}
	return &TripService{queries: queries, pool: pool, logger: logger}
}

// UpsertTrip creates or replaces a trip together with its jurisdiction-mile
// entries in one unit of work. Jurisdiction codes are normalized the same
// way imported trips are, so manual "tx" rows aggregate with imported "TX".
func (s *TripService) UpsertTrip(ctx context.Context, p params.UpsertTripParams) (*responses.TripResponse, error) {
	p.OriginJurisdiction = normalizeJurisdiction(p.OriginJurisdiction)
	p.DestinationJurisdiction = normalizeJurisdiction(p.DestinationJurisdiction)

	shares := make([]business.JurisdictionShare, len(p.JurisdictionMiles))
	for i, share := range p.JurisdictionMiles {
		shares[i] = business.JurisdictionShare{
			Jurisdiction: normalizeJurisdiction(share.Jurisdiction),
			Miles:        share.Miles,
		}
	}
	p.JurisdictionMiles = shares

	if err := validateTripParams(p); err != nil {
		return nil, err
	}

	provenance := p.Provenance
	if provenance == "" {
		provenance = business.ProvenanceManual
	}

	var trip db.Trip
	err := s.withStore(ctx, func(q db.Querier) error {
		var err error
		if p.ID == nil {
			trip, err = q.CreateTrip(ctx, db.CreateTripParams{
				VehicleID:               uuidToPgtype(p.VehicleID),
				PeriodYear:              int32(p.Period.Year),
				PeriodQuarter:           int32(p.Period.Quarter),
				TripDate:                pgtype.Date{Time: p.TripDate, Valid: true},
				OriginJurisdiction:      p.OriginJurisdiction,
				DestinationJurisdiction: p.DestinationJurisdiction,
				TotalMiles:              helpers.NumericFromDecimal(p.TotalMiles),
				Provenance:              string(provenance),
			})
			if err != nil {
				return fmt.Errorf("failed to create trip: %w", err)
			}
		} else {
			trip, err = q.UpdateTrip(ctx, db.UpdateTripParams{
				ID:                      *p.ID,
				VehicleID:               uuidToPgtype(p.VehicleID),
				PeriodYear:              int32(p.Period.Year),
				PeriodQuarter:           int32(p.Period.Quarter),
				TripDate:                pgtype.Date{Time: p.TripDate, Valid: true},
				OriginJurisdiction:      p.OriginJurisdiction,
				DestinationJurisdiction: p.DestinationJurisdiction,
				TotalMiles:              helpers.NumericFromDecimal(p.TotalMiles),
				Provenance:              string(provenance),
			})
			if err != nil {
				return fmt.Errorf("failed to update trip: %w", err)
			}
			if err := q.DeleteJurisdictionMilesByTripID(ctx, trip.ID); err != nil {
				return fmt.Errorf("failed to clear jurisdiction miles: %w", err)
			}
		}

		for _, share := range p.JurisdictionMiles {
			if _, err := q.CreateJurisdictionMile(ctx, db.CreateJurisdictionMileParams{
				TripID:           trip.ID,
				JurisdictionCode: share.Jurisdiction,
				Miles:            helpers.NumericFromDecimal(share.Miles),
			}); err != nil {
				return fmt.Errorf("failed to create jurisdiction miles: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Saved trip",
		zap.String("trip_id", trip.ID.String()),
		zap.String("period", p.Period.String()),
		zap.Int("jurisdictions", len(p.JurisdictionMiles)))

	return tripToResponse(trip, p.JurisdictionMiles), nil
}

// DeleteTrip removes a trip and cascades its jurisdiction-mile entries.
func (s *TripService) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	return s.withStore(ctx, func(q db.Querier) error {
		if _, err := q.GetTrip(ctx, id); err != nil {
			return fmt.Errorf("failed to load trip: %w", err)
		}
		if err := q.DeleteJurisdictionMilesByTripID(ctx, id); err != nil {
			return fmt.Errorf("failed to delete jurisdiction miles: %w", err)
		}
		if err := q.DeleteTrip(ctx, id); err != nil {
			return fmt.Errorf("failed to delete trip: %w", err)
		}
		return nil
	})
}

func (s *TripService) withStore(ctx context.Context, fn func(q db.Querier) error) error {
	if s.pool == nil {
		return fn(s.queries)
	}
	return helpers.WithTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		return fn(db.New(tx))
	})
}

func validateTripParams(p params.UpsertTripParams) error {
	if err := p.Period.Validate(); err != nil {
		return fmt.Errorf("%w: invalid period: %v", ErrInvalidInput, err)
	}
	if p.TotalMiles.IsNegative() {
		return fmt.Errorf("%w: total miles must not be negative, got %s", ErrInvalidInput, p.TotalMiles)
	}
	if len(p.JurisdictionMiles) == 0 {
		return fmt.Errorf("%w: trip requires at least one jurisdiction miles entry", ErrInvalidInput)
	}

	sum := decimal.Zero
	for _, share := range p.JurisdictionMiles {
		if share.Jurisdiction == "" {
			return fmt.Errorf("%w: jurisdiction code must not be empty", ErrInvalidInput)
		}
		if !share.Miles.IsPositive() {
			return fmt.Errorf("%w: jurisdiction miles must be positive, got %s for %s", ErrInvalidInput, share.Miles, share.Jurisdiction)
		}
		sum = sum.Add(share.Miles)
	}
	if sum.Sub(p.TotalMiles).Abs().GreaterThan(milesTolerance) {
		return fmt.Errorf("%w: jurisdiction miles sum %s does not match trip total %s within %s", ErrInvalidInput, sum, p.TotalMiles, milesTolerance)
	}
	return nil
}

func tripToResponse(trip db.Trip, shares []business.JurisdictionShare) *responses.TripResponse {
	return &responses.TripResponse{
		ID:                      trip.ID,
		VehicleID:               pgtypeToUUIDPtr(trip.VehicleID),
		Period:                  business.TaxPeriod{Year: int(trip.PeriodYear), Quarter: int(trip.PeriodQuarter)},
		TripDate:                trip.TripDate.Time,
		OriginJurisdiction:      trip.OriginJurisdiction,
		DestinationJurisdiction: trip.DestinationJurisdiction,
		TotalMiles:              helpers.DecimalFromNumeric(trip.TotalMiles),
		SourceShipmentID:        pgtypeToUUIDPtr(trip.SourceShipmentID),
		Provenance:              business.Provenance(trip.Provenance),
		JurisdictionMiles:       shares,
	}
}

func pgtypeToUUIDPtr(id pgtype.UUID) *uuid.UUID {
	if !id.Valid {
		return nil
	}
	u := uuid.UUID(id.Bytes)
	return &u
}
