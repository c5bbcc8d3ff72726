package service

import (
	"context"
	"time"

	"ilo_monitor/internal/models"
	"ilo_monitor/internal/repository"
	"ilo_monitor/internal/ribcl"
)

type MonitoringService struct {
	stateRepo repository.StateRepo
	host      string
}

func NewMonitoringService(stateRepo repository.StateRepo, host string) *MonitoringService {
	return &MonitoringService{stateRepo: stateRepo, host: host}
}

// GetState returns the latest persisted snapshot. Before the monitor has
// written one, it returns an UNKNOWN baseline.
func (s *MonitoringService) GetState(ctx context.Context) (models.ServerState, error) {
	state, err := s.stateRepo.Load(ctx)
	if err != nil {
		return models.ServerState{}, err
	}
	if state.ID == 0 {
		return s.baselineState(), nil
	}
	state.UpdatedAt = toUTC(state.UpdatedAt)
	return state, nil
}

func (s *MonitoringService) baselineState() models.ServerState {
	return models.ServerState{
		ID:        serverStateRowID,
		Host:      s.host,
		Power:     string(ribcl.PowerUnknown),
		UID:       string(ribcl.UIDUnknown),
		UpdatedAt: time.Now().UTC(),
	}
}

// toUTC normalizes non-zero time to UTC, preserving zero values.
func toUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
