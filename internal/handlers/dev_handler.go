package handlers

import (
	"net/http"

	"family-budget-api/internal/errors"
	"family-budget-api/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultSampleMonths = 6
	maxSampleMonths     = 24
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	sampleDataService services.SampleDataServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(sampleDataService services.SampleDataServiceInterface) *DevHandler {
	return &DevHandler{
		sampleDataService: sampleDataService,
	}
}

// GenerateSampleData seeds realistic demo data for the authenticated user
//
// Method: POST /api/v1/dev/sample-data
// Authentication: Required
// Environment: Development only
//
// Query parameters:
//   - months: Months of history to generate (default: 6, max: 24)
func (h *DevHandler) GenerateSampleData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	months := getIntQueryParam(c, "months", defaultSampleMonths)
	if months < 1 {
		months = 1
	}
	if months > maxSampleMonths {
		months = maxSampleMonths
	}

	summary, err := h.sampleDataService.GenerateSampleData(userID, months)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    summary,
		Message: "Sample data generated successfully",
	})
}
