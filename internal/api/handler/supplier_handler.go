package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eadirect/ea-catalog/internal/core/ports"
)

// SupplierHandler handles HTTP requests for suppliers.
type SupplierHandler struct {
	service ports.SupplierService
}

func NewSupplierHandler(service ports.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: service}
}

// List handles GET /v1/suppliers.
//
// @Summary      List suppliers
// @Tags         suppliers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse[domain.Supplier]
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/suppliers [get]
func (h *SupplierHandler) List(c echo.Context) error {
	suppliers, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newList(suppliers))
}

// Get handles GET /v1/suppliers/:id.
//
// @Summary      Get a supplier
// @Tags         suppliers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Supplier ID (UUID)"
// @Success      200  {object}  domain.Supplier
// @Failure      404  {object}  errorResponse
// @Router       /v1/suppliers/{id} [get]
func (h *SupplierHandler) Get(c echo.Context) error {
	s, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

// GetByName handles GET /v1/suppliers/by-name/:name.
//
// @Summary      Get a supplier by exact name
// @Tags         suppliers
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "Supplier name"
// @Success      200   {object}  domain.Supplier
// @Failure      404   {object}  errorResponse
// @Router       /v1/suppliers/by-name/{name} [get]
func (h *SupplierHandler) GetByName(c echo.Context) error {
	s, err := h.service.GetByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

// Create handles POST /v1/suppliers.
//
// @Summary      Create a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                 false  "Replays the first response for a repeated key"
// @Param        body             body      createSupplierRequest  true   "Supplier"
// @Success      201              {object}  domain.Supplier
// @Failure      400              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /v1/suppliers [post]
func (h *SupplierHandler) Create(c echo.Context) error {
	var req createSupplierRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	s, err := h.service.Create(c.Request().Context(), toCreateSupplierInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, s)
}

// Update handles PUT /v1/suppliers/:id. Absent fields are left unchanged.
//
// @Summary      Update a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Supplier ID (UUID)"
// @Param        body  body      updateSupplierRequest  true  "Fields to change"
// @Success      200   {object}  domain.Supplier
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/suppliers/{id} [put]
func (h *SupplierHandler) Update(c echo.Context) error {
	var req updateSupplierRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	s, err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateSupplierInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

// Delete handles DELETE /v1/suppliers/:id. The supplier's products go with it.
//
// @Summary      Delete a supplier and its products
// @Tags         suppliers
// @Security     BearerAuth
// @Param        id   path  string  true  "Supplier ID (UUID)"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
