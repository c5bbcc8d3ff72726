package service

import (
	"context"
	"sync"
	"time"

	"ilo_monitor/internal/logger"
	"ilo_monitor/internal/models"
	"ilo_monitor/internal/repository"
	"ilo_monitor/internal/ribcl"
)

const serverStateRowID = 1

// MonitorService samples the controller on a ticker, keeps the stored
// snapshot current and records power and LED transitions in the audit log.
// The last-known values belong to the loop; nothing else writes them.
type MonitorService struct {
	ctrl      Controller
	stateRepo repository.StateRepo
	eventRepo repository.EventRepo
	log       *logger.Logger
	now       func() time.Time

	mu        sync.Mutex
	lastPower ribcl.PowerState
	lastUID   ribcl.UIDState
}

func NewMonitorService(ctrl Controller, stateRepo repository.StateRepo, eventRepo repository.EventRepo, log *logger.Logger) *MonitorService {
	if log == nil {
		log = logger.Nop()
	}
	return &MonitorService{
		ctrl:      ctrl,
		stateRepo: stateRepo,
		eventRepo: eventRepo,
		log:       log,
		now:       time.Now,
	}
}

// Run samples once immediately and then every tick until ctx is canceled.
func (s *MonitorService) Run(ctx context.Context, tick time.Duration) {
	s.log.Infow("monitor_started", "host", s.ctrl.Address(), "interval", tick.String())
	defer s.log.Infow("monitor_stopped")

	s.sample(ctx)

	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.sample(ctx)
		}
	}
}

func (s *MonitorService) sample(ctx context.Context) {
	if _, err := s.Poll(ctx); err != nil && ctx.Err() == nil {
		s.log.Warnw("monitor_save_failed", "err", err)
	}
}

// Poll takes one snapshot and stores it. A failed read is stored as UNKNOWN
// with last_error set; it is never stored as OFF.
func (s *MonitorService) Poll(ctx context.Context) (models.ServerState, error) {
	snap := models.ServerState{
		ID:    serverStateRowID,
		Host:  s.ctrl.Address(),
		Power: string(ribcl.PowerUnknown),
		UID:   string(ribcl.UIDUnknown),
	}

	power, latency, err := s.ctrl.Ping(ctx)
	snap.LatencyMs = latency.Milliseconds()
	if err != nil {
		snap.LastError = err.Error()
		s.log.Warnw("monitor_power_read_failed", "host", snap.Host, "err", err)
	} else {
		snap.Power = string(power)

		uid, uerr := s.ctrl.UIDState(ctx)
		if uerr != nil {
			snap.LastError = uerr.Error()
		} else {
			snap.UID = string(uid)
		}
	}
	snap.UpdatedAt = s.now().UTC()

	s.recordTransitions(ctx, ribcl.PowerState(snap.Power), ribcl.UIDState(snap.UID), snap.UpdatedAt)

	if err := s.stateRepo.Save(ctx, snap); err != nil {
		return snap, err
	}
	return snap, nil
}

// recordTransitions appends an event when a known value differs from the
// last known one. UNKNOWN readings leave the last known value alone, and
// the first known reading only seeds it.
func (s *MonitorService) recordTransitions(ctx context.Context, power ribcl.PowerState, uid ribcl.UIDState, at time.Time) {
	s.mu.Lock()
	var events []models.AuditEvent
	if power.Known() {
		if s.lastPower.Known() && s.lastPower != power {
			events = append(events, transitionEvent(models.EventPowerChange, "Host power", string(s.lastPower), string(power), at))
		}
		s.lastPower = power
	}
	if uid.Known() {
		if s.lastUID.Known() && s.lastUID != uid {
			events = append(events, transitionEvent(models.EventUIDChange, "UID LED", string(s.lastUID), string(uid), at))
		}
		s.lastUID = uid
	}
	s.mu.Unlock()

	for _, e := range events {
		if err := s.eventRepo.Append(ctx, e); err != nil {
			s.log.Warnw("monitor_event_append_failed", "type", e.Type, "err", err)
		}
	}
}

// LastKnown returns the loop's last concrete readings.
func (s *MonitorService) LastKnown() (ribcl.PowerState, ribcl.UIDState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPower, s.lastUID
}

func transitionEvent(typ, what, from, to string, at time.Time) models.AuditEvent {
	return models.AuditEvent{
		OccurredAt:  at,
		Type:        typ,
		Description: what + " changed " + from + " -> " + to,
		Metadata:    map[string]any{"from": from, "to": to},
	}
}
