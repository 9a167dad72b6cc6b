package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/offmarket/listing-api/internal/api/metrics"
	"github.com/offmarket/listing-api/internal/core/domain"
	"github.com/offmarket/listing-api/internal/core/ports"
)

// PropertyHandler handles HTTP requests for the listing catalogue.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// List handles GET /v1/properties.
//
// @Summary      Search the listing catalogue
// @Tags         properties
// @Produce      json
// @Param        q             query     string  false  "Free-text query over title, city, neighborhood, type ('all' matches everything)"
// @Param        rooms         query     string  false  "Exact room count, or open-ended bucket like '10+'"
// @Param        type          query     string  false  "Property type"  Enums(apartment, house, loft, penthouse, studio, duplex, villa, chalet, castle)
// @Param        listing_type  query     string  false  "Listing type"   Enums(sale, rent)
// @Param        status        query     string  false  "Listing status" Enums(available, rented, sold)
// @Param        price_min     query     int     false  "Minimum price"
// @Param        price_max     query     int     false  "Maximum price"
// @Param        surface_min   query     number  false  "Minimum surface in m²"
// @Param        surface_max   query     number  false  "Maximum surface in m²"
// @Param        features      query     string  false  "Comma-separated feature list (all must be present)"
// @Param        sort          query     string  false  "Sort key"       Enums(title, city, type, status, rooms, surface, price, created_at)
// @Param        dir           query     string  false  "Sort direction" Enums(asc, desc)
// @Param        page          query     int     false  "1-based page number"
// @Param        page_size     query     int     false  "Page size (10, 20 or 50)"
// @Success      200           {object}  listPropertiesResponse
// @Failure      500           {object}  errorResponse
// @Router       /v1/properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context(), toListInput(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(result))
}

// Get handles GET /v1/properties/:id. Anonymous callers receive the listing
// without contact details; authenticated members get the full record. Every
// successful hit counts as a view.
//
// @Summary      Get a listing by id
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  propertyResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	id := c.Param("id")
	withContact := ctxAuthenticated(c)

	p, err := h.service.Get(c.Request().Context(), id, withContact)
	if err != nil {
		return err
	}

	if err := h.service.RecordView(c.Request().Context(), id); err == nil {
		metrics.PropertyViewsTotal.Inc()
	}

	return c.JSON(http.StatusOK, toPropertyResponse(*p))
}

// Inquire handles POST /v1/properties/:id/inquiries. Members only; bumps the
// inquiry counter so the back office can rank interest.
//
// @Summary      Record an inquiry on a listing
// @Tags         properties
// @Security     BearerAuth
// @Param        id   path  string  true  "Property id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/properties/{id}/inquiries [post]
func (h *PropertyHandler) Inquire(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}
	if err := h.service.RecordInquiry(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.PropertyInquiriesTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// Create handles POST /v1/admin/properties.
//
// @Summary      Create a listing
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPropertyRequest  true  "Listing details"
// @Success      201   {object}  propertyResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), toDomainProperty(req))
	if err != nil {
		return err
	}

	metrics.PropertiesCreatedTotal.WithLabelValues(string(created.ListingType)).Inc()
	return c.JSON(http.StatusCreated, toPropertyResponse(*created))
}

// Update handles PATCH /v1/admin/properties/:id. Absent fields keep their
// stored values; the merged record is validated as a whole.
//
// @Summary      Patch a listing
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Property id"
// @Param        body  body      domain.PropertyPatch  true  "Fields to change"
// @Success      200   {object}  propertyResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/properties/{id} [patch]
func (h *PropertyHandler) Update(c echo.Context) error {
	var patch domain.PropertyPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPropertyResponse(*updated))
}

// Delete handles DELETE /v1/admin/properties/:id.
//
// @Summary      Delete a listing
// @Tags         admin
// @Security     BearerAuth
// @Param        id   path  string  true  "Property id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/properties/{id} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.PropertiesDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
