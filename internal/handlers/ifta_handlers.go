package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/roadledger/roadledger-api/internal/constants"
	"github.com/roadledger/roadledger-api/internal/logger"
	"github.com/roadledger/roadledger-api/internal/services"
	"github.com/roadledger/roadledger-api/internal/types/api/params"
	"github.com/roadledger/roadledger-api/internal/types/api/responses"
	"github.com/roadledger/roadledger-api/internal/types/business"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// IftaHandler handles tax period import, summary and record-keeping routes.
type IftaHandler struct {
	importService  *services.TripImportService
	summaryService *services.TaxSummaryService
	tripService    *services.TripService
	fuelService    *services.FuelPurchaseService
}

// NewIftaHandler creates a handler with its service dependencies.
func NewIftaHandler(
	importService *services.TripImportService,
	summaryService *services.TaxSummaryService,
	tripService *services.TripService,
	fuelService *services.FuelPurchaseService,
) *IftaHandler {
	return &IftaHandler{
		importService:  importService,
		summaryService: summaryService,
		tripService:    tripService,
		fuelService:    fuelService,
	}
}

// JurisdictionMilesEntry is one jurisdiction's share of a trip's miles.
type JurisdictionMilesEntry struct {
	Jurisdiction string          `json:"jurisdiction" binding:"required"`
	Miles        decimal.Decimal `json:"miles" binding:"required"`
}

// UpsertTripRequest creates a trip when ID is absent and replaces it otherwise.
type UpsertTripRequest struct {
	ID                      *uuid.UUID               `json:"id"`
	VehicleID               *uuid.UUID               `json:"vehicle_id"`
	PeriodYear              int                      `json:"period_year" binding:"required"`
	PeriodQuarter           int                      `json:"period_quarter" binding:"required"`
	TripDate                string                   `json:"trip_date" binding:"required"`
	OriginJurisdiction      string                   `json:"origin_jurisdiction"`
	DestinationJurisdiction string                   `json:"destination_jurisdiction"`
	TotalMiles              decimal.Decimal          `json:"total_miles" binding:"required"`
	JurisdictionMiles       []JurisdictionMilesEntry `json:"jurisdiction_miles" binding:"required,min=1,dive"`
	Provenance              string                   `json:"provenance"`
}

// UpsertFuelPurchaseRequest creates or replaces one fuel receipt.
type UpsertFuelPurchaseRequest struct {
	ID               *uuid.UUID       `json:"id"`
	VehicleID        *uuid.UUID       `json:"vehicle_id"`
	PeriodYear       int              `json:"period_year" binding:"required"`
	PeriodQuarter    int              `json:"period_quarter" binding:"required"`
	PurchaseDate     string           `json:"purchase_date" binding:"required"`
	JurisdictionCode string           `json:"jurisdiction_code" binding:"required"`
	Gallons          decimal.Decimal  `json:"gallons" binding:"required"`
	PricePerGallon   *decimal.Decimal `json:"price_per_gallon"`
	TotalCost        *decimal.Decimal `json:"total_cost"`
}

// ImportShipments godoc
// @Summary Import completed shipments into a tax period
// @Description Converts completed shipments delivered inside the period into trip records, once per shipment
// @Tags ifta
// @Produce json
// @Param year path int true "Period year"
// @Param quarter path int true "Period quarter (1-4)"
// @Param vehicle_id query string false "Restrict the import to one vehicle"
// @Success 200 {object} responses.ImportReport
// @Failure 400 {object} ErrorResponse
// @Router /ifta/periods/{year}/{quarter}/import [post]
func (h *IftaHandler) ImportShipments(c *gin.Context) {
	period, err := parsePeriod(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, constants.InvalidTaxPeriod, err)
		return
	}
	vehicleID, err := parseVehicleFilter(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid vehicle ID format", err)
		return
	}

	report, err := h.importService.ImportShipments(c.Request.Context(), params.ImportShipmentsParams{
		Period:    period,
		VehicleID: vehicleID,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to import shipments", err)
		return
	}

	sendSuccess(c, http.StatusOK, report)
}

// GetSummary godoc
// @Summary Compute the tax summary for a period
// @Description Aggregates jurisdiction miles and fuel purchases into per-jurisdiction tax lines
// @Tags ifta
// @Produce json
// @Param year path int true "Period year"
// @Param quarter path int true "Period quarter (1-4)"
// @Param vehicle_id query string false "Restrict the summary to one vehicle"
// @Success 200 {object} business.PeriodTaxSummary
// @Failure 400 {object} ErrorResponse
// @Router /ifta/periods/{year}/{quarter}/summary [get]
func (h *IftaHandler) GetSummary(c *gin.Context) {
	summary, ok := h.computeSummary(c)
	if !ok {
		return
	}
	sendSuccess(c, http.StatusOK, summary)
}

// GetSummaryCSV godoc
// @Summary Export the tax summary for a period as CSV
// @Tags ifta
// @Produce text/csv
// @Param year path int true "Period year"
// @Param quarter path int true "Period quarter (1-4)"
// @Success 200 {string} string "CSV document"
// @Failure 400 {object} ErrorResponse
// @Router /ifta/periods/{year}/{quarter}/summary/csv [get]
func (h *IftaHandler) GetSummaryCSV(c *gin.Context) {
	summary, ok := h.computeSummary(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename="ifta-summary-%s.csv"`, summary.Period))
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := w.WriteAll(responses.BuildSummaryCSVRows(summary)); err != nil {
		// Headers are already sent; the broken stream is all we can report.
		logger.Error("Failed to stream summary CSV",
			zap.Error(err), zap.String("period", summary.Period.String()))
	}
}

func (h *IftaHandler) computeSummary(c *gin.Context) (*business.PeriodTaxSummary, bool) {
	period, err := parsePeriod(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, constants.InvalidTaxPeriod, err)
		return nil, false
	}
	vehicleID, err := parseVehicleFilter(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid vehicle ID format", err)
		return nil, false
	}

	summary, err := h.summaryService.ComputeSummary(c.Request.Context(), params.ComputeSummaryParams{
		Period:    period,
		VehicleID: vehicleID,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to compute tax summary", err)
		return nil, false
	}
	return summary, true
}

// UpsertTrip godoc
// @Summary Create or replace a trip
// @Description A trip and its jurisdiction-mile entries change together; on update the entries are replaced wholesale
// @Tags ifta
// @Accept json
// @Produce json
// @Param trip body UpsertTripRequest true "Trip"
// @Success 200 {object} responses.TripResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /ifta/trips [put]
func (h *IftaHandler) UpsertTrip(c *gin.Context) {
	var req UpsertTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	tripDate, err := parseDate(req.TripDate)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid trip date", err)
		return
	}

	shares := make([]business.JurisdictionShare, len(req.JurisdictionMiles))
	for i, entry := range req.JurisdictionMiles {
		shares[i] = business.JurisdictionShare{Jurisdiction: entry.Jurisdiction, Miles: entry.Miles}
	}

	trip, err := h.tripService.UpsertTrip(c.Request.Context(), params.UpsertTripParams{
		ID:                      req.ID,
		VehicleID:               req.VehicleID,
		Period:                  business.TaxPeriod{Year: req.PeriodYear, Quarter: req.PeriodQuarter},
		TripDate:                tripDate,
		OriginJurisdiction:      req.OriginJurisdiction,
		DestinationJurisdiction: req.DestinationJurisdiction,
		TotalMiles:              req.TotalMiles,
		JurisdictionMiles:       shares,
		Provenance:              business.Provenance(req.Provenance),
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			sendError(c, http.StatusBadRequest, err.Error(), err)
			return
		}
		handleDBError(c, err, constants.TripNotFound)
		return
	}

	sendSuccess(c, http.StatusOK, trip)
}

// DeleteTrip godoc
// @Summary Delete a trip and its jurisdiction-mile entries
// @Tags ifta
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /ifta/trips/{trip_id} [delete]
func (h *IftaHandler) DeleteTrip(c *gin.Context) {
	id, err := uuid.Parse(c.Param("trip_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid trip ID format", err)
		return
	}

	if err := h.tripService.DeleteTrip(c.Request.Context(), id); err != nil {
		handleDBError(c, err, constants.TripNotFound)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Trip deleted successfully")
}

// UpsertFuelPurchase godoc
// @Summary Create or replace a fuel purchase
// @Tags ifta
// @Accept json
// @Produce json
// @Param fuel_purchase body UpsertFuelPurchaseRequest true "Fuel purchase"
// @Success 200 {object} responses.FuelPurchaseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /ifta/fuel-purchases [put]
func (h *IftaHandler) UpsertFuelPurchase(c *gin.Context) {
	var req UpsertFuelPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid purchase date", err)
		return
	}

	purchase, err := h.fuelService.UpsertFuelPurchase(c.Request.Context(), params.UpsertFuelPurchaseParams{
		ID:               req.ID,
		VehicleID:        req.VehicleID,
		Period:           business.TaxPeriod{Year: req.PeriodYear, Quarter: req.PeriodQuarter},
		PurchaseDate:     purchaseDate,
		JurisdictionCode: req.JurisdictionCode,
		Gallons:          req.Gallons,
		PricePerGallon:   req.PricePerGallon,
		TotalCost:        req.TotalCost,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			sendError(c, http.StatusBadRequest, err.Error(), err)
			return
		}
		handleDBError(c, err, constants.FuelPurchaseNotFound)
		return
	}

	sendSuccess(c, http.StatusOK, purchase)
}

// DeleteFuelPurchase godoc
// @Summary Delete a fuel purchase
// @Tags ifta
// @Produce json
// @Param fuel_purchase_id path string true "Fuel purchase ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /ifta/fuel-purchases/{fuel_purchase_id} [delete]
func (h *IftaHandler) DeleteFuelPurchase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("fuel_purchase_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid fuel purchase ID format", err)
		return
	}

	if err := h.fuelService.DeleteFuelPurchase(c.Request.Context(), id); err != nil {
		handleDBError(c, err, constants.FuelPurchaseNotFound)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Fuel purchase deleted successfully")
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "expected YYYY-MM-DD")
	}
	return t, nil
}
