package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

func validTripParams() params.UpsertTripParams {
	return params.UpsertTripParams{
		Period:                  business.TaxPeriod{Year: 2025, Quarter: 2},
		TripDate:                time.Date(2025, time.April, 18, 0, 0, 0, 0, time.UTC),
		OriginJurisdiction:      "TX",
		DestinationJurisdiction: "OK",
		TotalMiles:              dec("250"),
		JurisdictionMiles: []business.JurisdictionShare{
			{Jurisdiction: "TX", Miles: dec("150")},
			{Jurisdiction: "OK", Miles: dec("100")},
		},
	}
}

func TestTripService_UpsertTrip_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := services.NewTripService(mocks.NewMockQuerier(ctrl), nil, logger.Log)

	tests := []struct {
		name   string
		mutate func(*params.UpsertTripParams)
	}{
		{"invalid period", func(p *params.UpsertTripParams) { p.Period.Quarter = 5 }},
		{"negative total miles", func(p *params.UpsertTripParams) { p.TotalMiles = dec("-1") }},
		{"no jurisdiction entries", func(p *params.UpsertTripParams) { p.JurisdictionMiles = nil }},
		{"empty jurisdiction code", func(p *params.UpsertTripParams) {
			p.JurisdictionMiles[0].Jurisdiction = ""
		}},
		{"zero entry miles", func(p *params.UpsertTripParams) {
			p.JurisdictionMiles[0].Miles = dec("0")
		}},
		{"entries drift from total beyond tolerance", func(p *params.UpsertTripParams) {
			p.TotalMiles = dec("251")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validTripParams()
			tt.mutate(&p)
			_, err := service.UpsertTrip(context.Background(), p)
			assert.ErrorIs(t, err, services.ErrInvalidInput)
		})
	}
}

func TestTripService_UpsertTrip_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTripService(mockQuerier, nil, logger.Log)

	tripID := uuid.New()
	mockQuerier.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateTripParams) (db.Trip, error) {
			assert.Equal(t, int32(2025), arg.PeriodYear)
			assert.Equal(t, int32(2), arg.PeriodQuarter)
			assert.Equal(t, string(business.ProvenanceManual), arg.Provenance)
			assert.True(t, helpers.DecimalFromNumeric(arg.TotalMiles).Equal(dec("250")))
			return db.Trip{
				ID:            tripID,
				PeriodYear:    arg.PeriodYear,
				PeriodQuarter: arg.PeriodQuarter,
				TripDate:      arg.TripDate,
				TotalMiles:    arg.TotalMiles,
				Provenance:    arg.Provenance,
			}, nil
		})
	mockQuerier.EXPECT().CreateJurisdictionMile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateJurisdictionMileParams) (db.JurisdictionMile, error) {
			assert.Equal(t, tripID, arg.TripID)
			return db.JurisdictionMile{ID: uuid.New(), TripID: arg.TripID}, nil
		}).Times(2)

	resp, err := service.UpsertTrip(context.Background(), validTripParams())
	require.NoError(t, err)
	assert.Equal(t, tripID, resp.ID)
	assert.Equal(t, business.ProvenanceManual, resp.Provenance)
	assert.Len(t, resp.JurisdictionMiles, 2)
}

func TestTripService_UpsertTrip_NormalizesJurisdictions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTripService(mockQuerier, nil, logger.Log)

	// Hand-entered lowercase codes must land in the store the same way
	// imported trips do, or they group separately in the tax summary.
	p := validTripParams()
	p.OriginJurisdiction = " tx "
	p.DestinationJurisdiction = "ok"
	p.JurisdictionMiles = []business.JurisdictionShare{
		{Jurisdiction: "tx", Miles: dec("150")},
		{Jurisdiction: " ok", Miles: dec("100")},
	}

	var savedCodes []string
	mockQuerier.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateTripParams) (db.Trip, error) {
			assert.Equal(t, "TX", arg.OriginJurisdiction)
			assert.Equal(t, "OK", arg.DestinationJurisdiction)
			return db.Trip{ID: uuid.New(), OriginJurisdiction: arg.OriginJurisdiction,
				DestinationJurisdiction: arg.DestinationJurisdiction, Provenance: arg.Provenance}, nil
		})
	mockQuerier.EXPECT().CreateJurisdictionMile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateJurisdictionMileParams) (db.JurisdictionMile, error) {
			savedCodes = append(savedCodes, arg.JurisdictionCode)
			return db.JurisdictionMile{ID: uuid.New(), TripID: arg.TripID}, nil
		}).Times(2)

	resp, err := service.UpsertTrip(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, []string{"TX", "OK"}, savedCodes)
	require.Len(t, resp.JurisdictionMiles, 2)
	assert.Equal(t, "TX", resp.JurisdictionMiles[0].Jurisdiction)
	assert.Equal(t, "OK", resp.JurisdictionMiles[1].Jurisdiction)
}

func TestTripService_UpsertTrip_UpdateReplacesShares(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTripService(mockQuerier, nil, logger.Log)

	tripID := uuid.New()
	p := validTripParams()
	p.ID = &tripID
	p.Provenance = business.ProvenanceGPSTracked

	gomock.InOrder(
		mockQuerier.EXPECT().UpdateTrip(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.UpdateTripParams) (db.Trip, error) {
				assert.Equal(t, tripID, arg.ID)
				assert.Equal(t, string(business.ProvenanceGPSTracked), arg.Provenance)
				return db.Trip{ID: tripID, PeriodYear: arg.PeriodYear, PeriodQuarter: arg.PeriodQuarter, Provenance: arg.Provenance}, nil
			}),
		mockQuerier.EXPECT().DeleteJurisdictionMilesByTripID(gomock.Any(), tripID).Return(nil),
		mockQuerier.EXPECT().CreateJurisdictionMile(gomock.Any(), gomock.Any()).
			Return(db.JurisdictionMile{}, nil),
		mockQuerier.EXPECT().CreateJurisdictionMile(gomock.Any(), gomock.Any()).
			Return(db.JurisdictionMile{}, nil),
	)

	resp, err := service.UpsertTrip(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, tripID, resp.ID)
}

func TestTripService_DeleteTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTripService(mockQuerier, nil, logger.Log)

	tripID := uuid.New()
	gomock.InOrder(
		mockQuerier.EXPECT().GetTrip(gomock.Any(), tripID).Return(db.Trip{ID: tripID}, nil),
		mockQuerier.EXPECT().DeleteJurisdictionMilesByTripID(gomock.Any(), tripID).Return(nil),
		mockQuerier.EXPECT().DeleteTrip(gomock.Any(), tripID).Return(nil),
	)

	require.NoError(t, service.DeleteTrip(context.Background(), tripID))
}

func TestTripService_DeleteTrip_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTripService(mockQuerier, nil, logger.Log)

	tripID := uuid.New()
	mockQuerier.EXPECT().GetTrip(gomock.Any(), tripID).Return(db.Trip{}, pgx.ErrNoRows)

	err := service.DeleteTrip(context.Background(), tripID)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestTripService_ResponsePreservesImportLink(t *testing.T) {
	// A trip row that came from an import keeps its shipment link visible in
	// the response so the UI can tell imported rows from manual ones.
	shipmentID := uuid.New()
	trip := db.Trip{
		ID:               uuid.New(),
		PeriodYear:       2025,
		PeriodQuarter:    2,
		SourceShipmentID: pgtype.UUID{Bytes: shipmentID, Valid: true},
		Provenance:       string(business.ProvenanceImportedEstimate),
		TotalMiles:       helpers.NumericFromDecimal(dec("100")),
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewTripService(mockQuerier, nil, logger.Log)

	id := trip.ID
	p := validTripParams()
	p.ID = &id
	p.TotalMiles = dec("100")
	p.JurisdictionMiles = []business.JurisdictionShare{{Jurisdiction: "TX", Miles: dec("100")}}
	p.Provenance = business.ProvenanceImportedEstimate

	gomock.InOrder(
		mockQuerier.EXPECT().UpdateTrip(gomock.Any(), gomock.Any()).Return(trip, nil),
		mockQuerier.EXPECT().DeleteJurisdictionMilesByTripID(gomock.Any(), trip.ID).Return(nil),
		mockQuerier.EXPECT().CreateJurisdictionMile(gomock.Any(), gomock.Any()).Return(db.JurisdictionMile{}, nil),
	)

	resp, err := service.UpsertTrip(context.Background(), p)
	require.NoError(t, err)
	require.NotNil(t, resp.SourceShipmentID)
	assert.Equal(t, shipmentID, *resp.SourceShipmentID)
}
