package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ilo_monitor/internal/repository"
	"ilo_monitor/internal/service"
)

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAuthHandlers_RegisterThenSignIn(t *testing.T) {
	t.Parallel()

	auth := &mockAuth{signUpID: 5, genTokenToken: "eyJ.shift"}
	r := newTestRouter(&service.Service{Authorization: auth})
	creds := `{"username":"night-shift","password":"rack-42"}`

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postJSON("/auth/sign-up", creds))
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != `{"id":5}` {
		t.Fatalf("sign-up: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, postJSON("/auth/sign-in", creds))
	var out map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil || w.Code != http.StatusOK {
		t.Fatalf("sign-in: %d %s (%v)", w.Code, w.Body.String(), err)
	}
	if out["token"] != "eyJ.shift" {
		t.Fatalf("token: %q", out["token"])
	}
	if auth.lastSignUpUsername != "night-shift" || auth.lastGenPassword != "rack-42" {
		t.Fatalf("credentials not forwarded: %+v", auth)
	}
}

func TestAuthHandlers_ErrorMapping(t *testing.T) {
	t.Parallel()

	storage := errors.New("database is locked")
	cases := []struct {
		path string
		body string
		err  error
		want int
	}{
		{"/auth/sign-up", `{"username":"oncall"}`, nil, http.StatusBadRequest},
		{"/auth/sign-up", `not json`, nil, http.StatusBadRequest},
		{"/auth/sign-up", `{"username":"oncall","password":"p"}`, service.ErrEmptyPassword, http.StatusBadRequest},
		{"/auth/sign-up", `{"username":"oncall","password":"p"}`, fmt.Errorf("insert: %w", repository.ErrUsernameTaken), http.StatusConflict},
		{"/auth/sign-up", `{"username":"oncall","password":"p"}`, storage, http.StatusInternalServerError},
		{"/auth/sign-in", `{"password":"p"}`, nil, http.StatusBadRequest},
		{"/auth/sign-in", `{"username":"oncall","password":"p"}`, service.ErrUserNotFound, http.StatusUnauthorized},
		{"/auth/sign-in", `{"username":"oncall","password":"p"}`, service.ErrInvalidPassword, http.StatusUnauthorized},
		{"/auth/sign-in", `{"username":"oncall","password":"p"}`, storage, http.StatusInternalServerError},
	}

	for i, tc := range cases {
		tc := tc
		t.Run(fmt.Sprintf("%d%s", i, tc.path), func(t *testing.T) {
			t.Parallel()
			auth := &mockAuth{signUpErr: tc.err, genTokenErr: tc.err}
			r := newTestRouter(&service.Service{Authorization: auth})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, postJSON(tc.path, tc.body))
			if w.Code != tc.want {
				t.Fatalf("status: want %d, got %d (%s)", tc.want, w.Code, w.Body.String())
			}
			if tc.want == http.StatusInternalServerError && strings.Contains(w.Body.String(), "locked") {
				t.Fatalf("storage detail leaked: %s", w.Body.String())
			}
		})
	}
}
