package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventsapp/notify-system/internal/core/ports"
)

// ClientHandler serves the registered-accounts listing on the admin dashboard.
type ClientHandler struct {
	auth ports.AuthService
}

func NewClientHandler(auth ports.AuthService) *ClientHandler {
	return &ClientHandler{auth: auth}
}

// List handles GET /v1/clients — all registered (non-admin) accounts in
// registration order.
//
// @Summary      List registered accounts
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Account
// @Failure      403  {object}  errorResponse
// @Router       /v1/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.auth.ListClients(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}
