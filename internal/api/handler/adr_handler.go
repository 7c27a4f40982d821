package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eadirect/ea-catalog/internal/core/ports"
)

// ADRHandler handles HTTP requests for architecture decision records.
type ADRHandler struct {
	service ports.ADRService
}

func NewADRHandler(service ports.ADRService) *ADRHandler {
	return &ADRHandler{service: service}
}

// List handles GET /v1/adrs.
//
// @Summary      List ADRs, newest first
// @Tags         adrs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse[domain.ADR]
// @Router       /v1/adrs [get]
func (h *ADRHandler) List(c echo.Context) error {
	adrs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newList(adrs))
}

// Get handles GET /v1/adrs/:id.
//
// @Summary      Get an ADR
// @Tags         adrs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ADR ID (e.g. 20240601-adopt-x)"
// @Success      200  {object}  domain.ADR
// @Failure      404  {object}  errorResponse
// @Router       /v1/adrs/{id} [get]
func (h *ADRHandler) Get(c echo.Context) error {
	adr, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adr)
}

// Create handles POST /v1/adrs. The ID is derived from today's date and the
// title; a second ADR with the same title on the same day is rejected.
//
// @Summary      Create an ADR
// @Tags         adrs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string            false  "Replays the first response for a repeated key"
// @Param        body             body      createADRRequest  true   "ADR"
// @Success      201              {object}  domain.ADR
// @Failure      400              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /v1/adrs [post]
func (h *ADRHandler) Create(c echo.Context) error {
	var req createADRRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	adr, err := h.service.Create(c.Request().Context(), toCreateADRInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, adr)
}

// Update handles PUT /v1/adrs/:id. The ID never changes, even with a new title.
//
// @Summary      Update an ADR
// @Tags         adrs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "ADR ID"
// @Param        body  body      updateADRRequest  true  "Fields to change"
// @Success      200   {object}  domain.ADR
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/adrs/{id} [put]
func (h *ADRHandler) Update(c echo.Context) error {
	var req updateADRRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	adr, err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateADRInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adr)
}

// Delete handles DELETE /v1/adrs/:id. Linked tech debt loses the link.
//
// @Summary      Delete an ADR
// @Tags         adrs
// @Security     BearerAuth
// @Param        id   path  string  true  "ADR ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/adrs/{id} [delete]
func (h *ADRHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
