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
	"go.uber.org/zap"
)

// TripImportService converts completed shipments of a tax period into trip
// records exactly once per shipment.
type TripImportService struct {
	queries    db.Querier
	pool       *pgxpool.Pool
	reconciler *DistanceReconciler
	logger     *zap.Logger
}

// NewTripImportService creates a trip import service. The pool is used for
// the per-shipment transaction; when nil (unit tests) writes go through the
// queries handle directly.
func NewTripImportService(queries db.Querier, pool *pgxpool.Pool, reconciler *DistanceReconciler, logger *zap.Logger) *TripImportService {
	if logger == nil {
		logger = zap.L()
	}
	return &TripImportService{
		queries:    queries,
		pool:       pool,
		reconciler: reconciler,
		logger:     logger,
	}
}

// ImportShipments imports every completed shipment delivered inside the
// period that has not been imported before. The batch always runs to the
// end: shipments that cannot be apportioned or persisted are counted as
// failed with a reason, and already-imported shipments are skipped, so
// re-running an import is a no-op for everything that already landed.
func (s *TripImportService) ImportShipments(ctx context.Context, p params.ImportShipmentsParams) (*responses.ImportReport, error) {
	if err := p.Period.Validate(); err != nil {
		return nil, fmt.Errorf("invalid period: %w", err)
	}

	report := &responses.ImportReport{Period: p.Period}

	start, end := p.Period.DateRange()
	shipments, err := s.queries.ListCompletedShipmentsForPeriod(ctx, db.ListCompletedShipmentsForPeriodParams{
		StartDate: pgtype.Date{Time: start, Valid: true},
		EndDate:   pgtype.Date{Time: end, Valid: true},
		VehicleID: uuidToPgtype(p.VehicleID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}
	if len(shipments) == 0 {
		return report, nil
	}

	samplesByShipment, err := s.loadDistanceSamples(ctx, shipments)
	if err != nil {
		return nil, err
	}

	imported, err := s.importedShipmentIDs(ctx, p.Period)
	if err != nil {
		return nil, err
	}

	for _, shipment := range shipments {
		// Each shipment is an independent, atomic unit of work; the batch is
		// interruptible between shipments but never mid-shipment.
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if imported[shipment.ID] {
			report.Skipped++
			continue
		}

		result, err := s.reconciler.Apportion(
			helpers.DecimalFromNumeric(shipment.TotalMiles),
			samplesByShipment[shipment.ID],
			shipment.OriginJurisdiction.String,
			shipment.DestinationJurisdiction.String,
		)
		if err != nil {
			report.Failed++
			report.FailureReasons = append(report.FailureReasons,
				fmt.Sprintf("shipment %s: %v", shipment.ID, err))
			if !errors.Is(err, ErrInsufficientRouteData) {
				s.logger.Error("Failed to apportion shipment mileage",
					zap.String("shipment_id", shipment.ID.String()), zap.Error(err))
			}
			continue
		}

		if err := s.persistTrip(ctx, p.Period, shipment, result); err != nil {
			report.Failed++
			report.FailureReasons = append(report.FailureReasons,
				fmt.Sprintf("shipment %s: %v", shipment.ID, err))
			s.logger.Error("Failed to persist imported trip",
				zap.String("shipment_id", shipment.ID.String()), zap.Error(err))
			continue
		}

		report.Imported++
		switch result.Provenance {
		case business.ProvenanceGPSTracked:
			report.GpsTracked++
		case business.ProvenanceImportedEstimate:
			report.Estimated++
		}
		if result.Warning != "" {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("shipment %s: %s", shipment.ID, result.Warning))
		}
	}

	s.logger.Info("Shipment import completed",
		zap.String("period", p.Period.String()),
		zap.Int("imported", report.Imported),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed))

	return report, nil
}

// loadDistanceSamples fetches the GPS samples for all candidate shipments in
// one batch and groups them by shipment.
func (s *TripImportService) loadDistanceSamples(ctx context.Context, shipments []db.Shipment) (map[uuid.UUID][]business.DistanceSample, error) {
	ids := make([]uuid.UUID, len(shipments))
	for i, sh := range shipments {
		ids[i] = sh.ID
	}

	rows, err := s.queries.ListDistanceSamplesByShipmentIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list distance samples: %w", err)
	}

	grouped := make(map[uuid.UUID][]business.DistanceSample)
	for _, row := range rows {
		grouped[row.ShipmentID] = append(grouped[row.ShipmentID], business.DistanceSample{
			Jurisdiction: row.JurisdictionCode,
			Miles:        helpers.DecimalFromNumeric(row.Miles),
		})
	}
	return grouped, nil
}

// importedShipmentIDs returns the source shipments of every trip already in
// the period, regardless of vehicle, so a vehicle-filtered import cannot
// double-import a shipment.
func (s *TripImportService) importedShipmentIDs(ctx context.Context, period business.TaxPeriod) (map[uuid.UUID]bool, error) {
	trips, err := s.queries.ListTripsByPeriod(ctx, db.ListTripsByPeriodParams{
		PeriodYear:    int32(period.Year),
		PeriodQuarter: int32(period.Quarter),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list existing trips: %w", err)
	}

	imported := make(map[uuid.UUID]bool, len(trips))
	for _, t := range trips {
		if t.SourceShipmentID.Valid {
			imported[uuid.UUID(t.SourceShipmentID.Bytes)] = true
		}
	}
	return imported, nil
}

// persistTrip writes the trip and its jurisdiction-mile rows as one unit of
// work so a trip is never left without its mileage breakdown.
func (s *TripImportService) persistTrip(ctx context.Context, period business.TaxPeriod, shipment db.Shipment, result *ApportionResult) error {
	return s.withStore(ctx, func(q db.Querier) error {
		trip, err := q.CreateTrip(ctx, db.CreateTripParams{
			VehicleID:               shipment.VehicleID,
			PeriodYear:              int32(period.Year),
			PeriodQuarter:           int32(period.Quarter),
			TripDate:                shipment.DeliveryDate,
			OriginJurisdiction:      shipment.OriginJurisdiction.String,
			DestinationJurisdiction: shipment.DestinationJurisdiction.String,
			TotalMiles:              shipment.TotalMiles,
			SourceShipmentID:        pgtype.UUID{Bytes: shipment.ID, Valid: true},
			Provenance:              string(result.Provenance),
		})
		if err != nil {
			return fmt.Errorf("failed to create trip: %w", err)
		}

		for _, share := range result.Shares {
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
}

// withStore runs fn inside a transaction when a pool is configured and
// directly against the queries handle otherwise.
func (s *TripImportService) withStore(ctx context.Context, fn func(q db.Querier) error) error {
	if s.pool == nil {
		return fn(s.queries)
	}
	return helpers.WithTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		return fn(db.New(tx))
	})
}

func uuidToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}
