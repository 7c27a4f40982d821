package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eadirect/ea-catalog/internal/core/domain"
	"github.com/eadirect/ea-catalog/internal/core/ports"
)

// BusinessAppHandler handles HTTP requests for business applications.
type BusinessAppHandler struct {
	service  ports.BusinessAppService
	products ports.ProductService
}

func NewBusinessAppHandler(service ports.BusinessAppService, products ports.ProductService) *BusinessAppHandler {
	return &BusinessAppHandler{service: service, products: products}
}

// List handles GET /v1/business-apps.
//
// @Summary      List business applications
// @Tags         business-apps
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse[businessAppResponse]
// @Router       /v1/business-apps [get]
func (h *BusinessAppHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	apps, err := h.service.List(ctx)
	if err != nil {
		return err
	}
	names, err := h.productNames(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newList(toBusinessAppResponses(apps, names)))
}

// Get handles GET /v1/business-apps/:id.
//
// @Summary      Get a business application
// @Tags         business-apps
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Business app ID (UUID)"
// @Success      200  {object}  businessAppResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/business-apps/{id} [get]
func (h *BusinessAppHandler) Get(c echo.Context) error {
	a, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return h.respondOne(c, http.StatusOK, a)
}

// Create handles POST /v1/business-apps. Status defaults to active; an
// unknown product_id is dropped.
//
// @Summary      Create a business application
// @Tags         business-apps
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                    false  "Replays the first response for a repeated key"
// @Param        body             body      createBusinessAppRequest  true   "Business application"
// @Success      201              {object}  businessAppResponse
// @Failure      400              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /v1/business-apps [post]
func (h *BusinessAppHandler) Create(c echo.Context) error {
	var req createBusinessAppRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	a, err := h.service.Create(c.Request().Context(), toCreateBusinessAppInput(req))
	if err != nil {
		return err
	}
	return h.respondOne(c, http.StatusCreated, a)
}

// Update handles PUT /v1/business-apps/:id. product_id "" clears the link.
//
// @Summary      Update a business application
// @Tags         business-apps
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Business app ID (UUID)"
// @Param        body  body      updateBusinessAppRequest  true  "Fields to change"
// @Success      200   {object}  businessAppResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/business-apps/{id} [put]
func (h *BusinessAppHandler) Update(c echo.Context) error {
	var req updateBusinessAppRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	a, err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateBusinessAppInput(req))
	if err != nil {
		return err
	}
	return h.respondOne(c, http.StatusOK, a)
}

// Delete handles DELETE /v1/business-apps/:id.
//
// @Summary      Delete a business application
// @Tags         business-apps
// @Security     BearerAuth
// @Param        id   path  string  true  "Business app ID (UUID)"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/business-apps/{id} [delete]
func (h *BusinessAppHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *BusinessAppHandler) productNames(ctx context.Context) (map[string]string, error) {
	products, err := h.products.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	return names, nil
}

func (h *BusinessAppHandler) respondOne(c echo.Context, status int, a *domain.BusinessApp) error {
	resp := businessAppResponse{BusinessApp: *a}
	if a.ProductID != "" {
		p, err := h.products.Get(c.Request().Context(), a.ProductID)
		switch {
		case err == nil:
			resp.ProductName = p.Name
		case !errors.Is(err, domain.ErrNotFound):
			return err
		}
	}
	return c.JSON(status, resp)
}
