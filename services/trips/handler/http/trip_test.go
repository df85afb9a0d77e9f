package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgcab/dispatch/internal/pkg/errs"
	"github.com/sgcab/dispatch/internal/pkg/middleware"
	"github.com/sgcab/dispatch/internal/pkg/models"
	"github.com/sgcab/dispatch/services/trips/mocks"
)

func setupTripHandlerTest(t *testing.T) (*mocks.MockTripUC, *TripHandler) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockTripUC(ctrl)
	return mockUC, NewTripHandler(mockUC)
}

func newTripContext(t *testing.T, method, target, body string, auth *models.AuthContext) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if auth != nil {
		middleware.SetAuthContext(c, *auth)
	}
	return c, rec
}

func TestCreateBooked_HandlerSuccess(t *testing.T) {
	// Arrange
	mockUC, handler := setupTripHandlerTest(t)
	auth := models.AuthContext{ActorID: uuid.New(), Role: models.RoleSales}
	trip := &models.Trip{ID: uuid.New(), Origin: "District 1", Status: models.TripStatusBooked}

	mockUC.EXPECT().
		CreateBooked(gomock.Any(), auth, models.BookTripRequest{Origin: "District 1", FareQuote: "120000"}).
		Return(&models.TripOutcome{Trip: trip}, nil)

	c, rec := newTripContext(t, http.MethodPost, "/trips",
		`{"origin": "District 1", "fare_quote": "120000"}`, &auth)

	// Act
	err := handler.CreateBooked(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Trip booked", response["message"])
}

func TestCreateBooked_HandlerNoAuth(t *testing.T) {
	// Arrange
	_, handler := setupTripHandlerTest(t)
	c, rec := newTripContext(t, http.MethodPost, "/trips", `{"origin": "x"}`, nil)

	// Act
	err := handler.CreateBooked(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestClaim_HandlerMapsRaceLossToConflict(t *testing.T) {
	// Arrange
	mockUC, handler := setupTripHandlerTest(t)
	auth := models.AuthContext{ActorID: uuid.New(), Role: models.RoleDriver}
	tripID := uuid.New()

	mockUC.EXPECT().
		Claim(gomock.Any(), auth, tripID).
		Return(nil, fmt.Errorf("%w: trip %s is held by another driver", errs.ErrAlreadyClaimed, tripID))

	c, rec := newTripContext(t, http.MethodPost, "/trips/"+tripID.String()+"/claim", "", &auth)
	c.SetParamNames("tripID")
	c.SetParamValues(tripID.String())

	// Act
	err := handler.Claim(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestClaim_HandlerInvalidTripID(t *testing.T) {
	// Arrange
	_, handler := setupTripHandlerTest(t)
	auth := models.AuthContext{ActorID: uuid.New(), Role: models.RoleDriver}

	c, rec := newTripContext(t, http.MethodPost, "/trips/not-a-uuid/claim", "", &auth)
	c.SetParamNames("tripID")
	c.SetParamValues("not-a-uuid")

	// Act
	err := handler.Claim(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStart_HandlerSurfacesWarnings(t *testing.T) {
	// Arrange
	mockUC, handler := setupTripHandlerTest(t)
	auth := models.AuthContext{ActorID: uuid.New(), Role: models.RoleDriver}
	tripID := uuid.New()
	trip := &models.Trip{ID: tripID, Status: models.TripStatusOngoing}

	mockUC.EXPECT().
		Start(gomock.Any(), auth, tripID).
		Return(&models.TripOutcome{Trip: trip, Warnings: []string{"trip is already ongoing, start was a no-op"}}, nil)

	c, rec := newTripContext(t, http.MethodPost, "/trips/"+tripID.String()+"/start", "", &auth)
	c.SetParamNames("tripID")
	c.SetParamValues(tripID.String())

	// Act
	err := handler.Start(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	warnings, ok := response["warnings"].([]interface{})
	require.True(t, ok)
	assert.Len(t, warnings, 1)
}

func TestFinish_HandlerMapsWrongDriverToForbidden(t *testing.T) {
	// Arrange
	mockUC, handler := setupTripHandlerTest(t)
	auth := models.AuthContext{ActorID: uuid.New(), Role: models.RoleDriver}
	tripID := uuid.New()

	mockUC.EXPECT().
		Finish(gomock.Any(), auth, tripID, gomock.Any()).
		Return(nil, fmt.Errorf("%w: trip %s", errs.ErrNotYourTrip, tripID))

	c, rec := newTripContext(t, http.MethodPost, "/trips/"+tripID.String()+"/finish",
		`{"final_fare": "110000", "payment_method": "cash"}`, &auth)
	c.SetParamNames("tripID")
	c.SetParamValues(tripID.String())

	// Act
	err := handler.Finish(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListOpenTrips_HandlerSuccess(t *testing.T) {
	// Arrange
	mockUC, handler := setupTripHandlerTest(t)
	trips := []*models.Trip{
		{ID: uuid.New(), Origin: "District 1", Status: models.TripStatusBooked},
		{ID: uuid.New(), Origin: "Airport", Status: models.TripStatusBooked},
	}

	mockUC.EXPECT().ListOpenTrips(gomock.Any()).Return(trips, nil)

	c, rec := newTripContext(t, http.MethodGet, "/trips/open", "", nil)

	// Act
	err := handler.ListOpenTrips(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data, ok := response["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 2)
}
