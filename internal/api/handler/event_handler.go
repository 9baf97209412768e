package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventsapp/notify-system/internal/core/domain"
)

// EventHandler serves the fixed incident catalog.
type EventHandler struct{}

func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// List handles GET /v1/events — the hard-coded incident catalog.
//
// @Summary      List the incident catalog
// @Tags         events
// @Produce      json
// @Success      200  {array}  domain.Event
// @Router       /v1/events [get]
func (h *EventHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.Catalog())
}
