package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vinimompox/products-service/internal/api/metrics"
	"github.com/vinimompox/products-service/internal/core/domain"
	"github.com/vinimompox/products-service/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog products.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /api/products.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Security     BasicAuth
// @Success      200  {array}   productResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Security     BasicAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	p, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(p))
}

// Create handles POST /api/products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	req, err := bindProduct(c)
	if err != nil {
		return err
	}

	p, err := h.service.Create(c.Request().Context(), toProductInput(req))
	if err != nil {
		metrics.ProductWritesTotal.WithLabelValues("create", "error").Inc()
		return err
	}
	metrics.ProductWritesTotal.WithLabelValues("create", "ok").Inc()

	return c.JSON(http.StatusCreated, toProductResponse(p))
}

// Update handles PUT /api/products/:id. The request body is the complete
// product state; when it carries a version, the write succeeds only if the
// stored record still has that version.
//
// @Summary      Replace a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        id    path      string          true  "Product id"
// @Param        body  body      productRequest  true  "Full product state, optionally with expected version"
// @Success      200   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	req, err := bindProduct(c)
	if err != nil {
		return err
	}

	p, err := h.service.Update(c.Request().Context(), c.Param("id"), toProductInput(req), req.Version)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrVersionConflict):
			metrics.ProductWritesTotal.WithLabelValues("update", "conflict").Inc()
		case errors.Is(err, domain.ErrProductNotFound):
			metrics.ProductWritesTotal.WithLabelValues("update", "not_found").Inc()
		default:
			metrics.ProductWritesTotal.WithLabelValues("update", "error").Inc()
		}
		return err
	}
	metrics.ProductWritesTotal.WithLabelValues("update", "ok").Inc()

	return c.JSON(http.StatusOK, toProductResponse(p))
}

// Delete handles DELETE /api/products/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Security     BasicAuth
// @Param        id  path  string  true  "Product id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			metrics.ProductWritesTotal.WithLabelValues("delete", "not_found").Inc()
		} else {
			metrics.ProductWritesTotal.WithLabelValues("delete", "error").Inc()
		}
		return err
	}
	metrics.ProductWritesTotal.WithLabelValues("delete", "ok").Inc()

	return c.NoContent(http.StatusNoContent)
}

func bindProduct(c echo.Context) (productRequest, error) {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}

func toProductInput(req productRequest) ports.ProductInput {
	return ports.ProductInput{
		Name:        req.Name,
		Category:    req.Category,
		Vintage:     req.Vintage,
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
	}
}
