package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/offmarket/listing-api/internal/core/domain"
	"github.com/offmarket/listing-api/internal/core/ports"
)

// AlertHandler manages a member's saved searches.
type AlertHandler struct {
	service ports.AlertService
}

func NewAlertHandler(service ports.AlertService) *AlertHandler {
	return &AlertHandler{service: service}
}

type createAlertRequest struct {
	Label    string               `json:"label"`
	Criteria domain.AlertCriteria `json:"criteria"`
}

// Create handles POST /v1/alerts.
//
// @Summary      Save a property alert
// @Tags         alerts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAlertRequest  true  "Alert criteria"
// @Success      201   {object}  domain.PropertyAlert
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/alerts [post]
func (h *AlertHandler) Create(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createAlertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	alert, err := h.service.Create(c.Request().Context(), ports.CreateAlertInput{
		OwnerID:  userID,
		Label:    req.Label,
		Criteria: req.Criteria,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, alert)
}

// List handles GET /v1/alerts — the caller's own alerts only.
//
// @Summary      List my property alerts
// @Tags         alerts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.PropertyAlert
// @Failure      401  {object}  errorResponse
// @Router       /v1/alerts [get]
func (h *AlertHandler) List(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	alerts, err := h.service.ListByOwner(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, alerts)
}

// Delete handles DELETE /v1/alerts/:id. Deleting another member's alert
// reads as not found.
//
// @Summary      Delete a property alert
// @Tags         alerts
// @Security     BearerAuth
// @Param        id   path  string  true  "Alert id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/alerts/{id} [delete]
func (h *AlertHandler) Delete(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
