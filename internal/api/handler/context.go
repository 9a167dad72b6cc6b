package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: both the subject id
// and the role must be present, otherwise the middleware did not run.
func ctxClaims(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get("user_id").(string)
	role, _ = c.Get("role").(string)
	if userID == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, role, nil
}

// ctxAuthenticated reports whether optional-auth claims are present, without
// failing anonymous requests.
func ctxAuthenticated(c echo.Context) bool {
	role, _ := c.Get("role").(string)
	return role != ""
}
