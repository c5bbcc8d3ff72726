package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"ilo_monitor/internal/models"
	"ilo_monitor/internal/ribcl"
	"ilo_monitor/internal/service"

	"github.com/gin-gonic/gin"
)

// Fakes for the service interfaces. Each records its last call.

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(_ context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(_ context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockPower struct {
	status     service.PowerStatus
	statusErr  error
	result     service.PowerResult
	executeErr error
	resetErr   error

	lastRequest  service.PowerRequest
	executeCalls int
	resetCalls   int
	resetUserID  int
}

func (m *mockPower) Status(context.Context) (service.PowerStatus, error) {
	return m.status, m.statusErr
}
func (m *mockPower) Execute(_ context.Context, req service.PowerRequest) (service.PowerResult, error) {
	m.executeCalls++
	m.lastRequest = req
	res := m.result
	res.Action = req.Action
	return res, m.executeErr
}
func (m *mockPower) ResetController(_ context.Context, userID int) error {
	m.resetCalls++
	m.resetUserID = userID
	return m.resetErr
}

type mockLight struct {
	state     ribcl.UIDState
	stateErr  error
	result    service.UIDResult
	toggleErr error

	toggleUserID int
}

func (m *mockLight) UIDStatus(context.Context) (ribcl.UIDState, error) {
	return m.state, m.stateErr
}
func (m *mockLight) ToggleUID(_ context.Context, userID int) (service.UIDResult, error) {
	m.toggleUserID = userID
	return m.result, m.toggleErr
}

type mockInventory struct {
	firmware *ribcl.Firmware
	health   *ribcl.Health
	network  *ribcl.NetworkSettings
	name     string
	err      error
}

func (m *mockInventory) Firmware(context.Context) (*ribcl.Firmware, error) {
	return m.firmware, m.err
}
func (m *mockInventory) Health(context.Context) (*ribcl.Health, error) { return m.health, m.err }
func (m *mockInventory) Network(context.Context) (*ribcl.NetworkSettings, error) {
	return m.network, m.err
}
func (m *mockInventory) ServerName(context.Context) (string, error) { return m.name, m.err }

type mockControllerLog struct {
	result ribcl.LogResult
	err    error
}

func (m *mockControllerLog) Events(context.Context) (ribcl.LogResult, error) {
	return m.result, m.err
}

type mockMonitoring struct {
	state models.ServerState
	err   error
}

func (m *mockMonitoring) GetState(ctx context.Context) (models.ServerState, error) {
	return m.state, m.err
}

type mockEventLog struct {
	resp     []models.AuditEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.AuditEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// authedRequest builds a request carrying a bearer token accepted by mockAuth.
func authedRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	return req
}
