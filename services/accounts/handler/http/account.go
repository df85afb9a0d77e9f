package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sgcab/dispatch/internal/pkg/middleware"
	"github.com/sgcab/dispatch/internal/pkg/models"
	"github.com/sgcab/dispatch/internal/utils"
	"github.com/sgcab/dispatch/services/accounts"
)

// AccountHandler handles HTTP requests for staff accounts
type AccountHandler struct {
	accountUC accounts.AccountUC
}

// NewAccountHandler creates a new account HTTP handler
func NewAccountHandler(accountUC accounts.AccountUC) *AccountHandler {
	return &AccountHandler{
		accountUC: accountUC,
	}
}

// RegisterRoutes registers the authenticated account endpoints
func (h *AccountHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/accounts", h.Provision)
	g.GET("/accounts", h.ListByRole)
	g.GET("/accounts/:actorID", h.GetActor)
	g.POST("/accounts/:actorID/deactivate", h.Deactivate)
}

// RegisterPublicRoutes registers the endpoints reachable without a session
func (h *AccountHandler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/auth/login", h.Login)
}

// Login handles staff authentication
func (h *AccountHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	resp, err := h.accountUC.Login(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged in", resp)
}

// Provision handles creating a staff account with generated credentials
func (h *AccountHandler) Provision(c echo.Context) error {
	auth, ok := middleware.AuthFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ProvisionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	account, err := h.accountUC.Provision(c.Request().Context(), auth, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Staff account provisioned", account)
}

// ListByRole returns actors holding the requested role
func (h *AccountHandler) ListByRole(c echo.Context) error {
	auth, ok := middleware.AuthFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	role := c.QueryParam("role")
	if role == "" {
		return utils.BadRequestResponse(c, "Missing role parameter")
	}

	actors, err := h.accountUC.ListActorsByRole(c.Request().Context(), auth, role)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Actors", actors)
}

// GetActor returns a single actor
func (h *AccountHandler) GetActor(c echo.Context) error {
	if _, ok := middleware.AuthFromContext(c); !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	actorID, err := uuid.Parse(c.Param("actorID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid actor ID")
	}

	actor, err := h.accountUC.GetActor(c.Request().Context(), actorID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Actor", actor)
}

// Deactivate retires a staff account
func (h *AccountHandler) Deactivate(c echo.Context) error {
	auth, ok := middleware.AuthFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	actorID, err := uuid.Parse(c.Param("actorID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid actor ID")
	}

	if err := h.accountUC.Deactivate(c.Request().Context(), auth, actorID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Staff account deactivated", nil)
}
