package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/footballagentsl/accounts-api/internal/core/ports"
)

// HeaderIdempotencyKey lets clients retry POST /users safely.
const HeaderIdempotencyKey = "Idempotency-Key"

// AccountHandler handles HTTP requests for account operations.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// List handles GET /users.
//
// @Summary      List accounts
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.AccountView
// @Failure      500  {object}  errorResponse
// @Router       /users [get]
func (h *AccountHandler) List(c echo.Context) error {
	views, err := h.service.ListAccounts(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, views)
}

// Get handles GET /users/:id.
//
// @Summary      Get an account by id
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "Account id"
// @Success      200  {object}  domain.AccountView
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *AccountHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	view, err := h.service.GetAccount(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// Create handles POST /users.
//
// @Summary      Create an account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string                false  "Repeating a finished request returns its id"
// @Param        body             body      createAccountRequest  true   "Account details"
// @Success      200              {object}  idResponse
// @Failure      400              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Failure      500              {object}  errorResponse
// @Router       /users [post]
func (h *AccountHandler) Create(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	id, err := h.service.CreateAccount(c.Request().Context(), ports.CreateAccountInput{
		FullName:       req.FullName,
		Email:          req.Email,
		Role:           req.Role,
		Password:       req.Password,
		Phone:          req.Phone,
		IdempotencyKey: c.Request().Header.Get(HeaderIdempotencyKey),
		RequestID:      requestID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, idResponse{ID: id})
}

// Update handles PUT /users/:id.
//
// @Summary      Partially update an account
// @Description  Only supplied, non-empty fields change. An unknown id reports zero changes.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Account id"
// @Param        body  body      updateAccountRequest  true  "Fields to change"
// @Success      200   {object}  changesResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /users/{id} [put]
func (h *AccountHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(c)
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	n, err := h.service.UpdateAccount(c.Request().Context(), id, ports.UpdateAccountInput{
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
		Role:      req.Role,
		RequestID: requestID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, changesResponse{Changes: n})
}

// Delete handles DELETE /users/:id.
//
// @Summary      Delete an account
// @Description  Player and agent profiles are removed with the account; managed clubs lose their manager.
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "Account id"
// @Success      200  {object}  deletedResponse
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	n, err := h.service.DeleteAccount(c.Request().Context(), id, requestID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, deletedResponse{Deleted: n})
}

// ListRoles handles GET /roles.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Success      200  {array}   domain.Role
// @Failure      500  {object}  errorResponse
// @Router       /roles [get]
func (h *AccountHandler) ListRoles(c echo.Context) error {
	roles, err := h.service.ListRoles(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, roles)
}

// requestID returns the id assigned by the RequestID middleware, if any.
func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
