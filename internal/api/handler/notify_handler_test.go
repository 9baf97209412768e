package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/eventsapp/notify-system/internal/core/domain"
	"github.com/eventsapp/notify-system/internal/core/ports"
)

type stubNotifyService struct {
	createFn       func(ctx context.Context, input ports.CreateNotifyInput) (*domain.Notify, error)
	listAllFn      func(ctx context.Context) ([]domain.Notify, error)
	listOwnerFn    func(ctx context.Context, clientID string) ([]domain.Notify, error)
	listEventFn    func(ctx context.Context, accountID string) ([]domain.Notify, error)
	updateStatusFn func(ctx context.Context, id string, status domain.NotifyStatus) error
}

func (s *stubNotifyService) Create(ctx context.Context, input ports.CreateNotifyInput) (*domain.Notify, error) {
	return s.createFn(ctx, input)
}

func (s *stubNotifyService) ListAll(ctx context.Context) ([]domain.Notify, error) {
	return s.listAllFn(ctx)
}

func (s *stubNotifyService) ListForOwner(ctx context.Context, clientID string) ([]domain.Notify, error) {
	return s.listOwnerFn(ctx, clientID)
}

func (s *stubNotifyService) ListForEventRole(ctx context.Context, accountID string) ([]domain.Notify, error) {
	return s.listEventFn(ctx, accountID)
}

func (s *stubNotifyService) UpdateStatus(ctx context.Context, id string, status domain.NotifyStatus) error {
	return s.updateStatusFn(ctx, id, status)
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, role, accountID, name string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("role", role)
	c.Set("account_id", accountID)
	c.Set("name", name)
	return c
}

func TestNotifyHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubNotifyService{
		createFn: func(_ context.Context, input ports.CreateNotifyInput) (*domain.Notify, error) {
			if input.ClientID != "client-1" || input.ClientName != "Ana" {
				t.Fatalf("claims not propagated: %+v", input)
			}
			return &domain.Notify{
				ID:       "100",
				ClientID: input.ClientID,
				EventID:  input.EventID,
				Status:   domain.StatusPending,
			}, nil
		},
	}
	handler := NewNotifyHandler(stub)

	body := strings.NewReader(`{"eventId":"1","date":"01/02/2026","time":"14:00","cep":"01001000","description":"roof damage"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/notifys", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, domain.RoleClient, "client-1", "Ana")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var notify domain.Notify
	if err := json.Unmarshal(rec.Body.Bytes(), &notify); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if notify.Status != domain.StatusPending {
		t.Fatalf("expected pending report, got %s", notify.Status)
	}
}

func TestNotifyHandler_Create_MissingFields(t *testing.T) {
	e := newTestEcho()
	handler := NewNotifyHandler(&stubNotifyService{})

	body := strings.NewReader(`{"eventId":"1"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/notifys", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, domain.RoleClient, "client-1", "Ana")

	err := handler.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestNotifyHandler_Create_NoClaims(t *testing.T) {
	e := newTestEcho()
	handler := NewNotifyHandler(&stubNotifyService{})

	body := strings.NewReader(`{"eventId":"1","date":"01/02/2026","time":"14:00","cep":"01001000"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/notifys", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}

func TestNotifyHandler_List_RoutesByRole(t *testing.T) {
	e := newTestEcho()

	cases := []struct {
		role      string
		accountID string
		want      string
	}{
		{domain.RoleAdmin, "admin", "all"},
		{domain.RoleEvent, "2", "event"},
		{domain.RoleClient, "client-1", "owner"},
	}

	for _, tc := range cases {
		var called string
		stub := &stubNotifyService{
			listAllFn: func(context.Context) ([]domain.Notify, error) {
				called = "all"
				return nil, nil
			},
			listOwnerFn: func(_ context.Context, clientID string) ([]domain.Notify, error) {
				called = "owner"
				if clientID != tc.accountID {
					t.Fatalf("owner filter got wrong id: %s", clientID)
				}
				return nil, nil
			},
			listEventFn: func(_ context.Context, accountID string) ([]domain.Notify, error) {
				called = "event"
				if accountID != tc.accountID {
					t.Fatalf("event filter got wrong id: %s", accountID)
				}
				return nil, nil
			},
		}
		handler := NewNotifyHandler(stub)

		req := httptest.NewRequest(http.MethodGet, "/v1/notifys", nil)
		rec := httptest.NewRecorder()
		c := authedContext(e, req, rec, tc.role, tc.accountID, "x")

		if err := handler.List(c); err != nil {
			t.Fatalf("role %s: handler error: %v", tc.role, err)
		}
		if called != tc.want {
			t.Fatalf("role %s routed to %q, want %q", tc.role, called, tc.want)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("role %s: expected 200, got %d", tc.role, rec.Code)
		}
	}
}

func TestNotifyHandler_UpdateStatus_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubNotifyService{
		updateStatusFn: func(_ context.Context, id string, status domain.NotifyStatus) error {
			if id != "100" || status != domain.StatusConfirmed {
				t.Fatalf("unexpected args: %s %s", id, status)
			}
			return nil
		},
	}
	handler := NewNotifyHandler(stub)

	body := strings.NewReader(`{"status":"confirmed"}`)
	req := httptest.NewRequest(http.MethodPatch, "/v1/notifys/100/status", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, domain.RoleAdmin, "admin", "Admin")
	c.SetParamNames("id")
	c.SetParamValues("100")

	if err := handler.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestNotifyHandler_UpdateStatus_InvalidTransition(t *testing.T) {
	e := newTestEcho()
	stub := &stubNotifyService{
		updateStatusFn: func(context.Context, string, domain.NotifyStatus) error {
			return domain.ErrInvalidTransition
		},
	}
	handler := NewNotifyHandler(stub)

	body := strings.NewReader(`{"status":"cancelled"}`)
	req := httptest.NewRequest(http.MethodPatch, "/v1/notifys/100/status", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, domain.RoleAdmin, "admin", "Admin")
	c.SetParamNames("id")
	c.SetParamValues("100")

	err := handler.UpdateStatus(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestNotifyHandler_UpdateStatus_RejectsUnknownTarget(t *testing.T) {
	e := newTestEcho()
	handler := NewNotifyHandler(&stubNotifyService{})

	// "pending" is not an accepted target status.
	body := strings.NewReader(`{"status":"pending"}`)
	req := httptest.NewRequest(http.MethodPatch, "/v1/notifys/100/status", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, domain.RoleAdmin, "admin", "Admin")

	err := handler.UpdateStatus(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}
