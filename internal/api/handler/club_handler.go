package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/footballagentsl/accounts-api/internal/core/ports"
)

// ClubHandler handles HTTP requests for clubs.
type ClubHandler struct {
	service ports.ClubService
}

func NewClubHandler(service ports.ClubService) *ClubHandler {
	return &ClubHandler{service: service}
}

// Create handles POST /clubs.
//
// @Summary      Create a club
// @Tags         clubs
// @Accept       json
// @Produce      json
// @Param        body  body      createClubRequest  true  "Club details"
// @Success      201   {object}  domain.Club
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /clubs [post]
func (h *ClubHandler) Create(c echo.Context) error {
	var req createClubRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	club, err := h.service.CreateClub(c.Request().Context(), ports.CreateClubInput{
		Name:          req.Name,
		Country:       req.Country,
		ManagerUserID: req.ManagerUserID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, club)
}

// List handles GET /clubs.
//
// @Summary      List clubs
// @Tags         clubs
// @Produce      json
// @Success      200  {array}   domain.Club
// @Failure      500  {object}  errorResponse
// @Router       /clubs [get]
func (h *ClubHandler) List(c echo.Context) error {
	clubs, err := h.service.ListClubs(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, clubs)
}

// Get handles GET /clubs/:id.
//
// @Summary      Get a club by id
// @Tags         clubs
// @Produce      json
// @Param        id   path      int  true  "Club id"
// @Success      200  {object}  domain.Club
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /clubs/{id} [get]
func (h *ClubHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	club, err := h.service.GetClub(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, club)
}

// Delete handles DELETE /clubs/:id.
//
// @Summary      Delete a club
// @Tags         clubs
// @Produce      json
// @Param        id   path      int  true  "Club id"
// @Success      200  {object}  deletedResponse
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /clubs/{id} [delete]
func (h *ClubHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	n, err := h.service.DeleteClub(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, deletedResponse{Deleted: n})
}
