package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/roadledger/roadledger-api/internal/logger"
	"github.com/roadledger/roadledger-api/internal/types/business"
	"go.uber.org/zap"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// parsePeriod reads the :year/:quarter path segments into a TaxPeriod.
func parsePeriod(c *gin.Context) (business.TaxPeriod, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return business.TaxPeriod{}, errors.Wrap(err, "invalid year")
	}
	quarter, err := strconv.Atoi(c.Param("quarter"))
	if err != nil {
		return business.TaxPeriod{}, errors.Wrap(err, "invalid quarter")
	}
	period := business.TaxPeriod{Year: year, Quarter: quarter}
	if err := period.Validate(); err != nil {
		return business.TaxPeriod{}, err
	}
	return period, nil
}

// parseVehicleFilter reads the optional vehicle_id query parameter.
func parseVehicleFilter(c *gin.Context) (*uuid.UUID, error) {
	raw := c.Query("vehicle_id")
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.Wrap(err, "invalid vehicle_id")
	}
	return &id, nil
}

// sendError is a helper function that combines logging and error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// handleDBError maps database errors to HTTP status codes
func handleDBError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case isDBNotFound(err):
		sendError(c, http.StatusNotFound, notFoundMsg, err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

func isDBNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func sendSuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, SuccessResponse{Message: message})
}
