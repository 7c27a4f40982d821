package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eadirect/ea-catalog/internal/core/ports"
)

type TechDebtHandler struct {
	service ports.TechDebtService
}

func NewTechDebtHandler(service ports.TechDebtService) *TechDebtHandler {
	return &TechDebtHandler{service: service}
}

// List handles GET /v1/tech-debt.
//
// @Summary      List tech debt, most urgent first
// @Tags         tech-debt
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse[domain.TechDebt]
// @Router       /v1/tech-debt [get]
func (h *TechDebtHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newList(items))
}

// ListByADR handles GET /v1/adrs/:id/tech-debt.
//
// @Summary      List tech debt linked to an ADR
// @Tags         tech-debt
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ADR ID"
// @Success      200  {object}  listResponse[domain.TechDebt]
// @Router       /v1/adrs/{id}/tech-debt [get]
func (h *TechDebtHandler) ListByADR(c echo.Context) error {
	items, err := h.service.ListByADR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newList(items))
}

// Get handles GET /v1/tech-debt/:id.
//
// @Summary      Get a tech debt item
// @Tags         tech-debt
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Tech debt ID (e.g. debt-20240601-legacy-auth)"
// @Success      200  {object}  domain.TechDebt
// @Failure      404  {object}  errorResponse
// @Router       /v1/tech-debt/{id} [get]
func (h *TechDebtHandler) Get(c echo.Context) error {
	d, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

// Create handles POST /v1/tech-debt.
//
// @Summary      Create a tech debt item
// @Tags         tech-debt
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                 false  "Replays the first response for a repeated key"
// @Param        body             body      createTechDebtRequest  true   "Tech debt"
// @Success      201              {object}  domain.TechDebt
// @Failure      400              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /v1/tech-debt [post]
func (h *TechDebtHandler) Create(c echo.Context) error {
	var req createTechDebtRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	d, err := h.service.Create(c.Request().Context(), toCreateTechDebtInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, d)
}

// Update handles PUT /v1/tech-debt/:id. linked_adr_id "" clears the link.
//
// @Summary      Update a tech debt item
// @Tags         tech-debt
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Tech debt ID"
// @Param        body  body      updateTechDebtRequest  true  "Fields to change"
// @Success      200   {object}  domain.TechDebt
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/tech-debt/{id} [put]
func (h *TechDebtHandler) Update(c echo.Context) error {
	var req updateTechDebtRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	d, err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateTechDebtInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

// Delete handles DELETE /v1/tech-debt/:id.
//
// @Summary      Delete a tech debt item
// @Tags         tech-debt
// @Security     BearerAuth
// @Param        id   path  string  true  "Tech debt ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/tech-debt/{id} [delete]
func (h *TechDebtHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
