package service

import (
	"time"

	"ilo_monitor/internal/ribcl"
)

// PowerAction names a host power command.
type PowerAction string

const (
	ActionOn       PowerAction = "on"
	ActionOff      PowerAction = "off"
	ActionPress    PowerAction = "press"
	ActionReset    PowerAction = "reset"
	ActionWarmBoot PowerAction = "warmboot"
	ActionColdBoot PowerAction = "coldboot"
	ActionForceOff PowerAction = "forceoff"
)

// PowerRequest asks for one power action. Wait polls until the host reaches
// the action's target state, for actions that have one.
type PowerRequest struct {
	Action PowerAction
	Wait   bool
	UserID int
}

// PowerStatus is one power read plus how long it took.
type PowerStatus struct {
	Host      string           `json:"host" yaml:"host"`
	State     ribcl.PowerState `json:"state" yaml:"state"`
	LatencyMs int64            `json:"latency_ms" yaml:"latency_ms"`
}

// PowerResult reports what an action did. Target is empty for actions that
// have no single end state.
type PowerResult struct {
	Action  PowerAction      `json:"action" yaml:"action"`
	Target  ribcl.PowerState `json:"target,omitempty" yaml:"target,omitempty"`
	Waited  bool             `json:"waited" yaml:"waited"`
	Reached bool             `json:"reached" yaml:"reached"`
	State   ribcl.PowerState `json:"state,omitempty" yaml:"state,omitempty"`
}

// UIDResult reports a toggle. Confirmed is false when the LED was not seen
// in its new state before polling gave up.
type UIDResult struct {
	Initial   ribcl.UIDState `json:"initial" yaml:"initial"`
	Target    ribcl.UIDState `json:"target" yaml:"target"`
	Final     ribcl.UIDState `json:"final" yaml:"final"`
	Confirmed bool           `json:"confirmed" yaml:"confirmed"`
}

// LogFilter supports audit history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "COMMAND", "POWER_CHANGE", "UID_CHANGE", "ERROR"
}
