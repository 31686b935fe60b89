package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/roadledger/roadledger-api/internal/db"
	"github.com/roadledger/roadledger-api/internal/helpers"
	"github.com/roadledger/roadledger-api/internal/logger"
	"github.com/roadledger/roadledger-api/internal/mocks"
	"github.com/roadledger/roadledger-api/internal/services"
	"github.com/roadledger/roadledger-api/internal/types/api/params"
	"github.com/roadledger/roadledger-api/internal/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testPeriod = business.TaxPeriod{Year: 2025, Quarter: 2}

func newImporter(q db.Querier) *services.TripImportService {
	return services.NewTripImportService(q, nil, services.NewDistanceReconciler(logger.Log), logger.Log)
}

func shipment(id uuid.UUID, origin, destination, totalMiles string) db.Shipment {
	return db.Shipment{
		ID:                      id,
		OriginJurisdiction:      pgtype.Text{String: origin, Valid: origin != ""},
		DestinationJurisdiction: pgtype.Text{String: destination, Valid: destination != ""},
		TotalMiles:              helpers.NumericFromDecimal(dec(totalMiles)),
		DeliveryDate:            pgtype.Date{Time: time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC), Valid: true},
		CompletionStatus:        business.ShipmentDelivered,
	}
}

func gpsSample(shipmentID uuid.UUID, code, miles string) db.RawDistanceSample {
	return db.RawDistanceSample{
		ID:               uuid.New(),
		ShipmentID:       shipmentID,
		JurisdictionCode: code,
		Miles:            helpers.NumericFromDecimal(dec(miles)),
	}
}

func importedTrip(sourceShipmentID uuid.UUID) db.Trip {
	return db.Trip{
		ID:               uuid.New(),
		PeriodYear:       int32(testPeriod.Year),
		PeriodQuarter:    int32(testPeriod.Quarter),
		SourceShipmentID: pgtype.UUID{Bytes: sourceShipmentID, Valid: true},
		Provenance:       string(business.ProvenanceGPSTracked),
	}
}

func TestTripImportService_ImportShipments_EmptyCandidateSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().ListCompletedShipmentsForPeriod(gomock.Any(), gomock.Any()).Return(nil, nil)

	report, err := newImporter(mockQuerier).ImportShipments(context.Background(),
		params.ImportShipmentsParams{Period: testPeriod})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Imported)
	assert.Equal(t, 0, report.Skipped)
	assert.Equal(t, 0, report.Failed)
}

func TestTripImportService_ImportShipments_MixedBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alreadyImported := shipment(uuid.New(), "TX", "OK", "250")
	gpsTracked := shipment(uuid.New(), "CA", "NV", "180")
	noRouteData := shipment(uuid.New(), "", "", "90")
	estimated := shipment(uuid.New(), "TX", "OK", "100")

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().ListCompletedShipmentsForPeriod(gomock.Any(), gomock.Any()).
		Return([]db.Shipment{alreadyImported, gpsTracked, noRouteData, estimated}, nil)
	mockQuerier.EXPECT().ListDistanceSamplesByShipmentIDs(gomock.Any(), gomock.Any()).
		Return([]db.RawDistanceSample{
			gpsSample(gpsTracked.ID, "CA", "100"),
			gpsSample(gpsTracked.ID, "NV", "50"),
		}, nil)
	mockQuerier.EXPECT().ListTripsByPeriod(gomock.Any(), db.ListTripsByPeriodParams{
		PeriodYear:    2025,
		PeriodQuarter: 2,
	}).Return([]db.Trip{importedTrip(alreadyImported.ID)}, nil)

	var createdTrips []db.CreateTripParams
	mockQuerier.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateTripParams) (db.Trip, error) {
			createdTrips = append(createdTrips, arg)
			return db.Trip{ID: uuid.New(), Provenance: arg.Provenance}, nil
		}).Times(2)

	var createdMiles []db.CreateJurisdictionMileParams
	mockQuerier.EXPECT().CreateJurisdictionMile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateJurisdictionMileParams) (db.JurisdictionMile, error) {
			createdMiles = append(createdMiles, arg)
			return db.JurisdictionMile{ID: uuid.New(), TripID: arg.TripID}, nil
		}).Times(4)

	report, err := newImporter(mockQuerier).ImportShipments(context.Background(),
		params.ImportShipmentsParams{Period: testPeriod})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, 1, report.GpsTracked)
	assert.Equal(t, 1, report.Estimated)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.FailureReasons, 1)
	assert.Contains(t, report.FailureReasons[0], noRouteData.ID.String())

	// GPS-tracked trip carries the rescaled shares, estimated trip the split.
	require.Len(t, createdTrips, 2)
	assert.Equal(t, string(business.ProvenanceGPSTracked), createdTrips[0].Provenance)
	assert.Equal(t, string(business.ProvenanceImportedEstimate), createdTrips[1].Provenance)
	require.Len(t, createdMiles, 4)
	assert.True(t, helpers.DecimalFromNumeric(createdMiles[0].Miles).Equal(dec("120.0")))
	assert.True(t, helpers.DecimalFromNumeric(createdMiles[1].Miles).Equal(dec("60.0")))
}

func TestTripImportService_ImportShipments_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := shipment(uuid.New(), "TX", "TX", "50")
	second := shipment(uuid.New(), "TX", "OK", "100")

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().ListCompletedShipmentsForPeriod(gomock.Any(), gomock.Any()).
		Return([]db.Shipment{first, second}, nil)
	mockQuerier.EXPECT().ListDistanceSamplesByShipmentIDs(gomock.Any(), gomock.Any()).Return(nil, nil)
	mockQuerier.EXPECT().ListTripsByPeriod(gomock.Any(), gomock.Any()).
		Return([]db.Trip{importedTrip(first.ID), importedTrip(second.ID)}, nil)
	// No CreateTrip/CreateJurisdictionMile expectations: a re-run writes nothing.

	report, err := newImporter(mockQuerier).ImportShipments(context.Background(),
		params.ImportShipmentsParams{Period: testPeriod})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Imported)
	assert.Equal(t, 2, report.Skipped)
	assert.Equal(t, 0, report.Failed)
}

func TestTripImportService_ImportShipments_PersistFailureIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broken := shipment(uuid.New(), "TX", "TX", "40")
	healthy := shipment(uuid.New(), "OK", "OK", "60")

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().ListCompletedShipmentsForPeriod(gomock.Any(), gomock.Any()).
		Return([]db.Shipment{broken, healthy}, nil)
	mockQuerier.EXPECT().ListDistanceSamplesByShipmentIDs(gomock.Any(), gomock.Any()).Return(nil, nil)
	mockQuerier.EXPECT().ListTripsByPeriod(gomock.Any(), gomock.Any()).Return(nil, nil)

	gomock.InOrder(
		mockQuerier.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).
			Return(db.Trip{}, errors.New("constraint violation")),
		mockQuerier.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).
			Return(db.Trip{ID: uuid.New()}, nil),
	)
	mockQuerier.EXPECT().CreateJurisdictionMile(gomock.Any(), gomock.Any()).
		Return(db.JurisdictionMile{}, nil)

	report, err := newImporter(mockQuerier).ImportShipments(context.Background(),
		params.ImportShipmentsParams{Period: testPeriod})
	require.NoError(t, err)

	// One store failure fails that shipment's unit of work only.
	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.FailureReasons, 1)
	assert.Contains(t, report.FailureReasons[0], broken.ID.String())
}

func TestTripImportService_ImportShipments_CancelledBetweenShipments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().ListCompletedShipmentsForPeriod(gomock.Any(), gomock.Any()).
		Return([]db.Shipment{shipment(uuid.New(), "TX", "OK", "100")}, nil)
	mockQuerier.EXPECT().ListDistanceSamplesByShipmentIDs(gomock.Any(), gomock.Any()).Return(nil, nil)
	mockQuerier.EXPECT().ListTripsByPeriod(gomock.Any(), gomock.Any()).Return(nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := newImporter(mockQuerier).ImportShipments(ctx,
		params.ImportShipmentsParams{Period: testPeriod})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, report.Imported)
}

func TestTripImportService_ImportShipments_InvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := newImporter(mocks.NewMockQuerier(ctrl)).ImportShipments(context.Background(),
		params.ImportShipmentsParams{Period: business.TaxPeriod{Year: 2025, Quarter: 0}})
	assert.Error(t, err)
}
