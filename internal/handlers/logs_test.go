package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ilo_monitor/internal/models"
	"ilo_monitor/internal/service"
)

func TestLogsHandler_ListAndValidation(t *testing.T) {
	auth := &mockAuth{parseID: 99}
	now := time.Now().UTC().Truncate(time.Second)
	events := []models.AuditEvent{
		{EventID: "e1", OccurredAt: now, Type: models.EventCommand, Description: "power on sent"},
		{EventID: "e2", OccurredAt: now.Add(1 * time.Second), Type: models.EventPowerChange, Description: "Host power changed OFF -> ON"},
	}
	logs := &mockEventLog{resp: events}
	s := &service.Service{
		Authorization: auth,
		EventLog:      logs,
	}
	r := newTestRouter(s)

	// invalid 'from' → 400
	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/logs?from=notatime"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid 'from', got %d", w.Code)
	}

	// from after to → 400
	w = httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/logs?from=2026-10-15&to=2026-10-01"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for inverted range, got %d", w.Code)
	}

	// Valid range and type (lowercase type is normalized before the service call)
	w = httptest.NewRecorder()
	q := "/api/v1/logs?from=" + now.Format(time.RFC3339) + "&to=" + now.Add(2*time.Second).Format(time.RFC3339) + "&type=power_change"
	r.ServeHTTP(w, authedRequest(http.MethodGet, q))
	if w.Code != http.StatusOK {
		t.Fatalf("logs status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Count  int                 `json:"count"`
		Events []models.AuditEvent `json:"events"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Count != 2 || len(out.Events) != 2 {
		t.Fatalf("unexpected response: %+v", out)
	}
	if logs.lastType != models.EventPowerChange {
		t.Fatalf("expected lastType POWER_CHANGE, got %q", logs.lastType)
	}
	if !logs.lastFrom.Equal(now) {
		t.Fatalf("from: want %v, got %v", now, logs.lastFrom)
	}
}

func TestLogsHandler_DateOnlyToIsEndOfDay(t *testing.T) {
	logs := &mockEventLog{}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 1}, EventLog: logs})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/logs?to=2026-10-15"))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	want := time.Date(2026, 10, 15, 23, 59, 59, 999999999, time.UTC)
	if !logs.lastTo.Equal(want) {
		t.Fatalf("to: want %v, got %v", want, logs.lastTo)
	}
}

func TestLogsHandler_ServiceErrors(t *testing.T) {
	_, validationErr := service.NewEventLogService(nil).List(context.Background(), service.LogFilter{Type: "BOGUS"})
	if !service.IsValidationError(validationErr) {
		t.Fatalf("expected a validation error, got %v", validationErr)
	}

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unknown type", validationErr, http.StatusBadRequest},
		{"storage failure", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			logs := &mockEventLog{err: tc.err}
			r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 1}, EventLog: logs})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/logs?type=bogus"))
			if w.Code != tc.want {
				t.Fatalf("status=%d, want %d", w.Code, tc.want)
			}
		})
	}
}
