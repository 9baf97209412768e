package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call:
//   - role must be non-empty (presence proves the middleware ran).
//   - account_id must be non-empty; a token without it cannot own or filter
//     reports, so it is rejected with 401.
func ctxClaims(c echo.Context) (role, accountID, name string, err error) {
	role, _ = c.Get("role").(string)
	if role == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	accountID, _ = c.Get("account_id").(string)
	if accountID == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing account identity")
	}

	name, _ = c.Get("name").(string)
	return role, accountID, name, nil
}
