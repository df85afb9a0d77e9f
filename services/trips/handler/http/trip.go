package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sgcab/dispatch/internal/pkg/middleware"
	"github.com/sgcab/dispatch/internal/pkg/models"
	"github.com/sgcab/dispatch/internal/utils"
	"github.com/sgcab/dispatch/services/trips"
)

// TripHandler handles HTTP requests for trip operations
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip HTTP handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
	}
}

// RegisterRoutes registers the trip endpoints
func (h *TripHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/trips", h.CreateBooked)
	g.GET("/trips/open", h.ListOpenTrips)
	g.GET("/trips/mine", h.ListMyActive)
	g.GET("/trips/:tripID", h.GetTrip)
	g.POST("/trips/:tripID/claim", h.Claim)
	g.POST("/trips/:tripID/start", h.Start)
	g.POST("/trips/walk-in", h.StartWalkIn)
	g.POST("/trips/:tripID/finish", h.Finish)
}

// CreateBooked handles a sales booking request
func (h *TripHandler) CreateBooked(c echo.Context) error {
	auth, ok := middleware.AuthFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.BookTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	outcome, err := h.tripUC.CreateBooked(c.Request().Context(), auth, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessWithWarnings(c, http.StatusCreated, "Trip booked", outcome.Trip, outcome.Warnings)
}

// Claim handles a driver's claim on an open trip
func (h *TripHandler) Claim(c echo.Context) error {
	auth, ok := middleware.AuthFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.Claim(c.Request().Context(), auth, tripID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip claimed", trip)
}

// Start handles a driver starting a claimed or open trip
func (h *TripHandler) Start(c echo.Context) error {
	auth, ok := middleware.AuthFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	outcome, err := h.tripUC.Start(c.Request().Context(), auth, tripID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessWithWarnings(c, http.StatusOK, "Trip started", outcome.Trip, outcome.Warnings)
}

// StartWalkIn handles a driver starting a trip without a prior booking
func (h *TripHandler) StartWalkIn(c echo.Context) error {
	auth, ok := middleware.AuthFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.WalkInRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	outcome, err := h.tripUC.StartWalkIn(c.Request().Context(), auth, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessWithWarnings(c, http.StatusCreated, "Trip started", outcome.Trip, outcome.Warnings)
}

// Finish handles a driver completing a trip
func (h *TripHandler) Finish(c echo.Context) error {
	auth, ok := middleware.AuthFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req models.FinishTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	outcome, err := h.tripUC.Finish(c.Request().Context(), auth, tripID, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessWithWarnings(c, http.StatusOK, "Trip completed", outcome.Trip, outcome.Warnings)
}

// ListOpenTrips returns trips a driver may still claim
func (h *TripHandler) ListOpenTrips(c echo.Context) error {
	result, err := h.tripUC.ListOpenTrips(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Open trips", result)
}

// ListMyActive returns the calling driver's active trips
func (h *TripHandler) ListMyActive(c echo.Context) error {
	auth, ok := middleware.AuthFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	result, err := h.tripUC.ListMyActive(c.Request().Context(), auth)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Active trips", result)
}

// GetTrip returns a single trip
func (h *TripHandler) GetTrip(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.GetTrip(c.Request().Context(), tripID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip", trip)
}
