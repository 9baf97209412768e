package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventsapp/notify-system/internal/api/metrics"
	"github.com/eventsapp/notify-system/internal/core/domain"
	"github.com/eventsapp/notify-system/internal/core/ports"
)

// NotifyHandler handles HTTP requests for incident reports.
type NotifyHandler struct {
	service ports.NotifyService
}

func NewNotifyHandler(service ports.NotifyService) *NotifyHandler {
	return &NotifyHandler{service: service}
}

// Create handles POST /v1/notifys — a resident files a new report.
//
// @Summary      File a new incident report
// @Tags         notifys
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createNotifyRequest  true  "Report details"
// @Success      201   {object}  domain.Notify
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/notifys [post]
func (h *NotifyHandler) Create(c echo.Context) error {
	var req createNotifyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	_, accountID, name, err := ctxClaims(c)
	if err != nil {
		return err
	}

	notify, err := h.service.Create(c.Request().Context(), ports.CreateNotifyInput{
		ClientID:    accountID,
		ClientName:  name,
		EventID:     req.EventID,
		Date:        req.Date,
		Time:        req.Time,
		CEP:         req.CEP,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.NotifysCreatedTotal.WithLabelValues(notify.EventName).Inc()
	return c.JSON(http.StatusCreated, notify)
}

// List handles GET /v1/notifys — each role sees its own slice of the same
// collection: admins the whole collection, residents their own reports,
// event-role actors the reports whose eventId matches their account id.
//
// @Summary      List incident reports visible to the caller's role
// @Tags         notifys
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Notify
// @Failure      401  {object}  errorResponse
// @Router       /v1/notifys [get]
func (h *NotifyHandler) List(c echo.Context) error {
	role, accountID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var notifys []domain.Notify
	switch role {
	case domain.RoleAdmin:
		notifys, err = h.service.ListAll(c.Request().Context())
	case domain.RoleEvent:
		notifys, err = h.service.ListForEventRole(c.Request().Context(), accountID)
	default:
		notifys, err = h.service.ListForOwner(c.Request().Context(), accountID)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, notifys)
}

// UpdateStatus handles PATCH /v1/notifys/:id/status — an admin or event-role
// actor resolves or rejects a report. An unknown id is a silent no-op.
//
// @Summary      Resolve or reject a report
// @Tags         notifys
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Report id"
// @Param        body  body      updateStatusRequest  true  "Target status"
// @Success      204
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/notifys/{id}/status [patch]
func (h *NotifyHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.NotifyStatus(req.Status))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
		return err
	}

	metrics.StatusUpdatesTotal.WithLabelValues(req.Status).Inc()
	return c.NoContent(http.StatusNoContent)
}
