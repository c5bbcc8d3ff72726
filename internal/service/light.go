package service

import (
	"context"
	"errors"
	"time"

	"ilo_monitor/internal/logger"
	"ilo_monitor/internal/poller"
	"ilo_monitor/internal/ribcl"
)

// ErrUIDUnreadable means the LED state could not be read, so there is
// nothing to toggle from.
var ErrUIDUnreadable = errors.New("unable to read UID status")

type LightService struct {
	ctrl     Controller
	audit    *auditor
	log      *logger.Logger
	attempts int
	interval time.Duration
}

func NewLightService(ctrl Controller, audit *auditor, log *logger.Logger) *LightService {
	return &LightService{
		ctrl:     ctrl,
		audit:    audit,
		log:      log,
		attempts: poller.UIDAttempts,
		interval: poller.Interval,
	}
}

func (s *LightService) UIDStatus(ctx context.Context) (ribcl.UIDState, error) {
	return s.ctrl.UIDState(ctx)
}

// ToggleUID flips the LED and polls until the controller reports the new
// state. An unknown starting state is refused rather than guessed.
func (s *LightService) ToggleUID(ctx context.Context, userID int) (UIDResult, error) {
	initial, err := s.ctrl.UIDState(ctx)
	if err != nil {
		return UIDResult{Initial: ribcl.UIDUnknown}, err
	}
	if !initial.Known() {
		return UIDResult{Initial: initial}, ErrUIDUnreadable
	}

	res := UIDResult{Initial: initial, Target: initial.Opposite(), Final: ribcl.UIDUnknown}
	err = s.ctrl.SetUID(ctx, res.Target == ribcl.UIDOn)
	s.audit.command(ctx, "uid toggle", userID, err, map[string]any{"from": initial, "to": res.Target})
	if err != nil {
		return res, err
	}

	res.Confirmed = poller.Until(ctx, func(ctx context.Context) ribcl.UIDState {
		state, _ := s.ctrl.UIDState(ctx)
		res.Final = state
		return state
	}, res.Target, s.attempts, s.interval)
	if !res.Confirmed {
		s.log.Warnw("uid_toggle_uncertain", "target", res.Target, "last", res.Final)
	}
	return res, nil
}
