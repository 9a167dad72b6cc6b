package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/offmarket/listing-api/internal/core/domain"
	"github.com/offmarket/listing-api/internal/core/ports"
)

// MembershipHandler covers the public application form and the admin review
// queue.
type MembershipHandler struct {
	service ports.MembershipService
}

func NewMembershipHandler(service ports.MembershipService) *MembershipHandler {
	return &MembershipHandler{service: service}
}

type submitApplicationRequest struct {
	FullName    string `json:"full_name"    validate:"required"`
	Email       string `json:"email"        validate:"required,email"`
	Phone       string `json:"phone"        validate:"required"`
	Budget      int64  `json:"budget"       validate:"gte=0"`
	SearchNotes string `json:"search_notes"`
}

type reviewApplicationRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
	Notes  string `json:"notes"`
}

// Submit handles POST /v1/membership/applications — the public
// become-a-member form.
//
// @Summary      Submit a membership application
// @Tags         membership
// @Accept       json
// @Produce      json
// @Param        body  body      submitApplicationRequest  true  "Application details"
// @Success      201   {object}  domain.MembershipApplication
// @Failure      400   {object}  errorResponse
// @Router       /v1/membership/applications [post]
func (h *MembershipHandler) Submit(c echo.Context) error {
	var req submitApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.service.Submit(c.Request().Context(), ports.SubmitApplicationInput{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Budget:      req.Budget,
		SearchNotes: req.SearchNotes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, app)
}

// List handles GET /v1/admin/applications.
//
// @Summary      List membership applications
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"  Enums(pending, approved, rejected)
// @Param        dir     query     string  false  "Sort direction over submission time"  Enums(asc, desc)
// @Success      200     {array}   domain.MembershipApplication
// @Router       /v1/admin/applications [get]
func (h *MembershipHandler) List(c echo.Context) error {
	apps, err := h.service.List(c.Request().Context(), ports.ApplicationFilter{
		Status: domain.ApplicationStatus(c.QueryParam("status")),
		Desc:   c.QueryParam("dir") != "asc",
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}

// Review handles PUT /v1/admin/applications/:id/review. Only pending
// applications can be reviewed.
//
// @Summary      Approve or reject an application
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Application id"
// @Param        body  body      reviewApplicationRequest  true  "Review decision"
// @Success      200   {object}  domain.MembershipApplication
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/applications/{id}/review [put]
func (h *MembershipHandler) Review(c echo.Context) error {
	var req reviewApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.service.Review(c.Request().Context(), c.Param("id"),
		domain.ApplicationStatus(req.Status), req.Notes)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, app)
}

// Delete handles DELETE /v1/admin/applications/:id.
//
// @Summary      Delete an application
// @Tags         admin
// @Security     BearerAuth
// @Param        id   path  string  true  "Application id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/applications/{id} [delete]
func (h *MembershipHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
