package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eadirect/ea-catalog/internal/core/domain"
	"github.com/eadirect/ea-catalog/internal/core/ports"
)

// ProductHandler handles HTTP requests for products. Responses carry the
// supplier's name next to supplier_id.
type ProductHandler struct {
	service   ports.ProductService
	suppliers ports.SupplierService
}

func NewProductHandler(service ports.ProductService, suppliers ports.SupplierService) *ProductHandler {
	return &ProductHandler{service: service, suppliers: suppliers}
}

// List handles GET /v1/products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse[productResponse]
// @Failure      500  {object}  errorResponse
// @Router       /v1/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	products, err := h.service.List(ctx)
	if err != nil {
		return err
	}
	return h.respondList(ctx, c, products)
}

// ListBySupplier handles GET /v1/suppliers/:id/products. An unknown supplier
// yields an empty list.
//
// @Summary      List a supplier's products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Supplier ID (UUID)"
// @Success      200  {object}  listResponse[productResponse]
// @Router       /v1/suppliers/{id}/products [get]
func (h *ProductHandler) ListBySupplier(c echo.Context) error {
	ctx := c.Request().Context()
	products, err := h.service.ListBySupplier(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	return h.respondList(ctx, c, products)
}

// Get handles GET /v1/products/:id.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product ID (UUID)"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	p, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return h.respondOne(c, http.StatusOK, p)
}

// Create handles POST /v1/products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                false  "Replays the first response for a repeated key"
// @Param        body             body      createProductRequest  true   "Product"
// @Success      201              {object}  productResponse
// @Failure      400              {object}  errorResponse
// @Failure      404              {object}  errorResponse  "supplier not found"
// @Failure      422              {object}  errorResponse
// @Router       /v1/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := h.service.Create(c.Request().Context(), toCreateProductInput(req))
	if err != nil {
		return err
	}
	return h.respondOne(c, http.StatusCreated, p)
}

// Update handles PUT /v1/products/:id.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product ID (UUID)"
// @Param        body  body      updateProductRequest  true  "Fields to change"
// @Success      200   {object}  productResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateProductInput(req))
	if err != nil {
		return err
	}
	return h.respondOne(c, http.StatusOK, p)
}

// Delete handles DELETE /v1/products/:id. Business apps linked to the
// product lose the link.
//
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        id   path  string  true  "Product ID (UUID)"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHandler) respondList(ctx context.Context, c echo.Context, products []domain.Product) error {
	suppliers, err := h.suppliers.List(ctx)
	if err != nil {
		return err
	}
	names := make(map[string]string, len(suppliers))
	for _, s := range suppliers {
		names[s.ID] = s.Name
	}
	return c.JSON(http.StatusOK, newList(toProductResponses(products, names)))
}

func (h *ProductHandler) respondOne(c echo.Context, status int, p *domain.Product) error {
	resp := productResponse{Product: *p}
	s, err := h.suppliers.Get(c.Request().Context(), p.SupplierID)
	switch {
	case err == nil:
		resp.SupplierName = s.Name
	case !errors.Is(err, domain.ErrNotFound):
		return err
	}
	return c.JSON(status, resp)
}
