package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/offmarket/listing-api/internal/core/ports"
)

// ProfileHandler is the back-office surface over member accounts.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

type updateProfileRequest struct {
	Username           *string    `json:"username"`
	Role               *string    `json:"role"               validate:"omitempty,oneof=member admin"`
	SubscriptionType   *string    `json:"subscription_type"`
	SubscriptionExpiry *time.Time `json:"subscription_expiry"`
	IsActive           *bool      `json:"is_active"`
}

// List handles GET /v1/admin/profiles.
//
// @Summary      List member profiles
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        role       query     string  false  "Filter by role"  Enums(member, admin)
// @Param        is_active  query     bool    false  "Filter by active flag"
// @Param        sort       query     string  false  "Order column (created_at, username, email, subscription_expiry)"
// @Param        dir        query     string  false  "Sort direction"  Enums(asc, desc)
// @Success      200        {array}   domain.User
// @Router       /v1/admin/profiles [get]
func (h *ProfileHandler) List(c echo.Context) error {
	filter := ports.ProfileFilter{
		Role:    c.QueryParam("role"),
		OrderBy: c.QueryParam("sort"),
		Desc:    c.QueryParam("dir") != "asc",
	}
	switch c.QueryParam("is_active") {
	case "true":
		active := true
		filter.IsActive = &active
	case "false":
		active := false
		filter.IsActive = &active
	}

	users, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Update handles PATCH /v1/admin/profiles/:id. Absent fields are left
// untouched.
//
// @Summary      Patch a member profile
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Profile id"
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      404   {object}  errorResponse
// @Router       /v1/admin/profiles/{id} [patch]
func (h *ProfileHandler) Update(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.ProfilePatch{
		Username:           req.Username,
		Role:               req.Role,
		SubscriptionType:   req.SubscriptionType,
		SubscriptionExpiry: req.SubscriptionExpiry,
		IsActive:           req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /v1/admin/profiles/:id.
//
// @Summary      Delete a member profile
// @Tags         admin
// @Security     BearerAuth
// @Param        id   path  string  true  "Profile id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/profiles/{id} [delete]
func (h *ProfileHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
