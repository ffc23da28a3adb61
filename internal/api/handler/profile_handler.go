package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/footballagentsl/accounts-api/internal/core/ports"
)

// ProfileHandler handles the player and agent profile sub-resources of an account.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// CreatePlayer handles POST /users/:id/player-profile.
//
// @Summary      Create the player profile of an account
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Account id"
// @Param        body  body      playerProfileRequest  true  "Player details"
// @Success      201   {object}  playerProfileResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /users/{id}/player-profile [post]
func (h *ProfileHandler) CreatePlayer(c echo.Context) error {
	userID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req playerProfileRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	dob, err := parseDOB(req.DOB)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "dob must be a date in YYYY-MM-DD format"})
	}

	p, err := h.service.CreatePlayerProfile(c.Request().Context(), userID, ports.PlayerProfileInput{
		Position:    req.Position,
		HeightCm:    req.HeightCm,
		WeightKg:    req.WeightKg,
		Nationality: req.Nationality,
		DOB:         dob,
		Bio:         req.Bio,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toPlayerProfileResponse(p))
}

// GetPlayer handles GET /users/:id/player-profile.
//
// @Summary      Get the player profile of an account
// @Tags         profiles
// @Produce      json
// @Param        id   path      int  true  "Account id"
// @Success      200  {object}  playerProfileResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /users/{id}/player-profile [get]
func (h *ProfileHandler) GetPlayer(c echo.Context) error {
	userID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	p, err := h.service.GetPlayerProfile(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toPlayerProfileResponse(p))
}

// DeletePlayer handles DELETE /users/:id/player-profile.
//
// @Summary      Delete the player profile of an account
// @Tags         profiles
// @Produce      json
// @Param        id   path      int  true  "Account id"
// @Success      200  {object}  deletedResponse
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /users/{id}/player-profile [delete]
func (h *ProfileHandler) DeletePlayer(c echo.Context) error {
	userID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	n, err := h.service.DeletePlayerProfile(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, deletedResponse{Deleted: n})
}

// CreateAgent handles POST /users/:id/agent-profile.
//
// @Summary      Create the agent profile of an account
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Account id"
// @Param        body  body      agentProfileRequest  true  "Agency details"
// @Success      201   {object}  domain.AgentProfile
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /users/{id}/agent-profile [post]
func (h *ProfileHandler) CreateAgent(c echo.Context) error {
	userID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req agentProfileRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	p, err := h.service.CreateAgentProfile(c.Request().Context(), userID, ports.AgentProfileInput{
		AgencyName:    req.AgencyName,
		LicenseNumber: req.LicenseNumber,
		Region:        req.Region,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

// GetAgent handles GET /users/:id/agent-profile.
//
// @Summary      Get the agent profile of an account
// @Tags         profiles
// @Produce      json
// @Param        id   path      int  true  "Account id"
// @Success      200  {object}  domain.AgentProfile
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /users/{id}/agent-profile [get]
func (h *ProfileHandler) GetAgent(c echo.Context) error {
	userID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	p, err := h.service.GetAgentProfile(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// DeleteAgent handles DELETE /users/:id/agent-profile.
//
// @Summary      Delete the agent profile of an account
// @Tags         profiles
// @Produce      json
// @Param        id   path      int  true  "Account id"
// @Success      200  {object}  deletedResponse
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /users/{id}/agent-profile [delete]
func (h *ProfileHandler) DeleteAgent(c echo.Context) error {
	userID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	n, err := h.service.DeleteAgentProfile(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, deletedResponse{Deleted: n})
}
