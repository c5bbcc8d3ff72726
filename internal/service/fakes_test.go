package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"ilo_monitor/internal/models"
	"ilo_monitor/internal/ribcl"
)

// fakeEventRepo is a minimal stub that satisfies the repository.EventRepo interface.
type fakeEventRepo struct {
	mu sync.Mutex

	// captured inputs
	gotCtx   context.Context
	gotFrom  time.Time
	gotTo    time.Time
	gotType  string
	appended []models.AuditEvent

	// configured outputs
	events    []models.AuditEvent
	err       error
	appendErr error

	calls int
}

func (f *fakeEventRepo) List(ctx context.Context, from, to time.Time, typ string) ([]models.AuditEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.gotCtx = ctx
	f.gotFrom = from
	f.gotTo = to
	f.gotType = typ
	return f.events, f.err
}

func (f *fakeEventRepo) Append(_ context.Context, e models.AuditEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appended = append(f.appended, e)
	return f.appendErr
}

func (f *fakeEventRepo) ofType(typ string) []models.AuditEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.AuditEvent
	for _, e := range f.appended {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

type fakeStateRepo struct {
	mu       sync.Mutex
	loadResp models.ServerState
	loadErr  error
	saveErr  error
	saved    []models.ServerState
}

func (f *fakeStateRepo) Load(context.Context) (models.ServerState, error) {
	return f.loadResp, f.loadErr
}

func (f *fakeStateRepo) Save(_ context.Context, s models.ServerState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, s)
	return f.saveErr
}

var errTransport = errors.New("connection refused")

// fakeController scripts power and UID readings. Each read pops the next
// value from its queue; the last value repeats.
type fakeController struct {
	mu sync.Mutex

	powers   []ribcl.PowerState
	powerErr error
	uids     []ribcl.UIDState
	uidErr   error
	writeErr error
	latency  time.Duration

	firmware *ribcl.Firmware
	health   *ribcl.Health
	network  *ribcl.NetworkSettings
	name     string
	readErr  error
	logs     ribcl.LogResult

	calls      []string
	powerReads int
	uidReads   int
}

func (f *fakeController) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeController) called() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeController) Address() string { return "10.0.0.50" }

func (f *fakeController) PowerState(context.Context) (ribcl.PowerState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.powerReads++
	if f.powerErr != nil {
		return ribcl.PowerUnknown, f.powerErr
	}
	if len(f.powers) == 0 {
		return ribcl.PowerUnknown, nil
	}
	s := f.powers[0]
	if len(f.powers) > 1 {
		f.powers = f.powers[1:]
	}
	return s, nil
}

func (f *fakeController) Ping(ctx context.Context) (ribcl.PowerState, time.Duration, error) {
	s, err := f.PowerState(ctx)
	return s, f.latency, err
}

func (f *fakeController) UIDState(context.Context) (ribcl.UIDState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uidReads++
	if f.uidErr != nil {
		return ribcl.UIDUnknown, f.uidErr
	}
	if len(f.uids) == 0 {
		return ribcl.UIDUnknown, nil
	}
	s := f.uids[0]
	if len(f.uids) > 1 {
		f.uids = f.uids[1:]
	}
	return s, nil
}

func (f *fakeController) write(name string) error {
	f.record(name)
	return f.writeErr
}

func (f *fakeController) SetPower(_ context.Context, on bool) error {
	if on {
		return f.write("power-on")
	}
	return f.write("power-off")
}

func (f *fakeController) PressPowerButton(context.Context) error { return f.write("press") }
func (f *fakeController) HoldPowerButton(context.Context) error  { return f.write("hold") }
func (f *fakeController) ResetServer(context.Context) error      { return f.write("reset") }
func (f *fakeController) WarmBoot(context.Context) error         { return f.write("warmboot") }
func (f *fakeController) ColdBoot(context.Context) error         { return f.write("coldboot") }
func (f *fakeController) ResetController(context.Context) error  { return f.write("reset-rib") }

func (f *fakeController) SetUID(_ context.Context, on bool) error {
	if on {
		return f.write("uid-on")
	}
	return f.write("uid-off")
}

func (f *fakeController) Firmware(context.Context) (*ribcl.Firmware, error) {
	return f.firmware, f.readErr
}

func (f *fakeController) Health(context.Context) (*ribcl.Health, error) {
	return f.health, f.readErr
}

func (f *fakeController) Network(context.Context) (*ribcl.NetworkSettings, error) {
	return f.network, f.readErr
}

func (f *fakeController) ServerName(context.Context) (string, error) {
	return f.name, f.readErr
}

func (f *fakeController) EventLog(context.Context) (ribcl.LogResult, error) {
	return f.logs, f.readErr
}
