package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ilo_monitor/internal/logger"
	"ilo_monitor/internal/poller"
	"ilo_monitor/internal/ribcl"
)

var ErrUnknownAction = errors.New("unknown power action")

type powerAction struct {
	run    func(context.Context, Controller) error
	target ribcl.PowerState
}

var powerActions = map[PowerAction]powerAction{
	ActionOn:       {run: func(ctx context.Context, c Controller) error { return c.SetPower(ctx, true) }, target: ribcl.PowerOn},
	ActionOff:      {run: func(ctx context.Context, c Controller) error { return c.SetPower(ctx, false) }, target: ribcl.PowerOff},
	ActionForceOff: {run: func(ctx context.Context, c Controller) error { return c.HoldPowerButton(ctx) }, target: ribcl.PowerOff},
	ActionPress:    {run: func(ctx context.Context, c Controller) error { return c.PressPowerButton(ctx) }},
	ActionReset:    {run: func(ctx context.Context, c Controller) error { return c.ResetServer(ctx) }},
	ActionWarmBoot: {run: func(ctx context.Context, c Controller) error { return c.WarmBoot(ctx) }},
	ActionColdBoot: {run: func(ctx context.Context, c Controller) error { return c.ColdBoot(ctx) }},
}

// ParsePowerAction validates a user-supplied action name.
func ParsePowerAction(s string) (PowerAction, error) {
	a := PowerAction(s)
	if _, ok := powerActions[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
	return a, nil
}

type PowerService struct {
	ctrl     Controller
	audit    *auditor
	log      *logger.Logger
	attempts int
	interval time.Duration
}

func NewPowerService(ctrl Controller, audit *auditor, log *logger.Logger) *PowerService {
	return &PowerService{
		ctrl:     ctrl,
		audit:    audit,
		log:      log,
		attempts: poller.PowerAttempts,
		interval: poller.Interval,
	}
}

// Status reads host power once. A transport failure returns UNKNOWN and the
// error; an unreadable reply returns UNKNOWN and nil.
func (s *PowerService) Status(ctx context.Context) (PowerStatus, error) {
	state, latency, err := s.ctrl.Ping(ctx)
	st := PowerStatus{Host: s.ctrl.Address(), State: state, LatencyMs: latency.Milliseconds()}
	if err != nil {
		st.State = ribcl.PowerUnknown
		return st, err
	}
	return st, nil
}

// Execute sends the action and, when asked, polls until the host reaches the
// action's target. Not reaching it is reported in the result, not as an error.
func (s *PowerService) Execute(ctx context.Context, req PowerRequest) (PowerResult, error) {
	action, ok := powerActions[req.Action]
	if !ok {
		return PowerResult{}, fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)
	}

	res := PowerResult{Action: req.Action, Target: action.target}
	err := action.run(ctx, s.ctrl)
	s.audit.command(ctx, "power "+string(req.Action), req.UserID, err, nil)
	if err != nil {
		s.log.Errorw("power_action_failed", "action", req.Action, "err", err)
		return res, err
	}

	if !req.Wait || action.target == "" {
		return res, nil
	}

	res.Waited = true
	res.Reached = poller.Until(ctx, func(ctx context.Context) ribcl.PowerState {
		res.State, _ = s.ctrl.PowerState(ctx)
		return res.State
	}, action.target, s.attempts, s.interval)
	if !res.Reached {
		s.log.Warnw("power_target_not_reached", "action", req.Action, "target", action.target, "last", res.State)
	}
	return res, nil
}

// ResetController restarts the management controller. The host keeps running.
func (s *PowerService) ResetController(ctx context.Context, userID int) error {
	err := s.ctrl.ResetController(ctx)
	s.audit.command(ctx, "ilo reset", userID, err, nil)
	return err
}
