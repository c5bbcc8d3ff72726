package ribcl

import (
	"context"
	"errors"
	"time"

	"ilo_monitor/internal/logger"
)

// Sender delivers an envelope and returns the raw reply. *Transport is the
// production implementation.
type Sender interface {
	Send(ctx context.Context, envelope string) (string, error)
}

// Client runs catalog commands against one controller.
type Client struct {
	cfg    ConnectionConfig
	sender Sender
	log    *logger.Logger
	now    func() time.Time
}

// Option customises a Client.
type Option func(*Client)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithSender replaces the HTTP transport.
func WithSender(s Sender) Option {
	return func(c *Client) { c.sender = s }
}

// WithClock replaces time.Now, which decides what "today" is for the event log.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// NewClient returns a Client for cfg.
func NewClient(cfg ConnectionConfig, opts ...Option) *Client {
	cfg = cfg.withDefaults()
	c := &Client{
		cfg: cfg,
		log: logger.Nop(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.sender == nil {
		c.sender = NewTransport(cfg)
	}
	return c
}

// Address is the controller host this client talks to.
func (c *Client) Address() string { return c.cfg.Host }

// Do wraps cmd in an envelope, sends it and returns the raw reply.
func (c *Client) Do(ctx context.Context, cmd Command) (string, error) {
	raw, err := c.sender.Send(ctx, BuildEnvelope(cmd, c.cfg))
	if err != nil {
		c.log.Errorw("ribcl_request_failed", "command", cmd.ID, "host", c.cfg.Host, "err", err)
		return "", err
	}
	c.log.Debugw("ribcl_request", "command", cmd.ID, "host", c.cfg.Host, "reply_bytes", len(raw))
	return raw, nil
}

// write sends a write command and surfaces a non-zero RESPONSE status.
func (c *Client) write(ctx context.Context, cmd Command) error {
	raw, err := c.Do(ctx, cmd)
	if err != nil {
		return err
	}
	if err := CheckResponse(raw); err != nil {
		c.log.Warnw("ribcl_command_rejected", "command", cmd.ID, "err", err)
		return err
	}
	return nil
}

// PowerState reads the host power state. An unreadable reply is
// PowerUnknown with a nil error; only transport failures return an error.
func (c *Client) PowerState(ctx context.Context) (PowerState, error) {
	raw, err := c.Do(ctx, MustLookup(CmdReadPowerStatus))
	if err != nil {
		return PowerUnknown, err
	}
	state := ReadPowerState(raw)
	if state == PowerUnknown {
		c.log.Warnw("power_state_unknown", "host", c.cfg.Host, "reply_bytes", len(raw))
	}
	return state, nil
}

// CurrentPower is PowerState for pollers: every failure is PowerUnknown.
func (c *Client) CurrentPower(ctx context.Context) PowerState {
	state, _ := c.PowerState(ctx)
	return state
}

// Ping measures how long one power-status round trip takes. This is the
// latency of a logical request, not of the network.
func (c *Client) Ping(ctx context.Context) (PowerState, time.Duration, error) {
	start := time.Now()
	state, err := c.PowerState(ctx)
	return state, time.Since(start), err
}

// SetPower switches host power on or off.
func (c *Client) SetPower(ctx context.Context, on bool) error {
	return c.write(ctx, SetHostPower(on))
}

// PressPowerButton is a momentary press.
func (c *Client) PressPowerButton(ctx context.Context) error {
	return c.write(ctx, MustLookup(CmdPressPowerButton))
}

// HoldPowerButton forces the host off.
func (c *Client) HoldPowerButton(ctx context.Context) error {
	return c.write(ctx, MustLookup(CmdHoldPowerButton))
}

// ResetServer performs a normal reboot.
func (c *Client) ResetServer(ctx context.Context) error {
	return c.write(ctx, MustLookup(CmdResetServer))
}

// WarmBoot performs a fast reboot.
func (c *Client) WarmBoot(ctx context.Context) error {
	return c.write(ctx, MustLookup(CmdWarmBoot))
}

// ColdBoot power-cycles the host.
func (c *Client) ColdBoot(ctx context.Context) error {
	return c.write(ctx, MustLookup(CmdColdBoot))
}

// ResetController restarts the iLO itself; the host is untouched.
func (c *Client) ResetController(ctx context.Context) error {
	return c.write(ctx, MustLookup(CmdResetController))
}

// UIDState reads the identification LED. Unreadable or unexpected replies
// are logged and reported as UIDUnknown with a nil error.
func (c *Client) UIDState(ctx context.Context) (UIDState, error) {
	raw, err := c.Do(ctx, MustLookup(CmdGetUIDStatus))
	if err != nil {
		return UIDUnknown, err
	}
	state, perr := ReadUIDState(raw)
	if perr != nil {
		var amb *AmbiguityError
		if errors.As(perr, &amb) {
			c.log.Warnw("uid_state_ambiguous", "value", amb.Value)
		} else {
			c.log.Warnw("uid_state_unreadable", "err", perr, "reply", raw)
		}
	}
	return state, nil
}

// CurrentUID is UIDState for pollers.
func (c *Client) CurrentUID(ctx context.Context) UIDState {
	state, _ := c.UIDState(ctx)
	return state
}

// SetUID turns the identification LED on or off.
func (c *Client) SetUID(ctx context.Context, on bool) error {
	return c.write(ctx, UIDControl(on))
}

// Firmware reads the controller firmware details.
func (c *Client) Firmware(ctx context.Context) (*Firmware, error) {
	raw, err := c.Do(ctx, MustLookup(CmdGetFirmwareVersion))
	if err != nil {
		return nil, err
	}
	return DecodeFirmware(raw)
}

// Health reads the embedded health snapshot.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	raw, err := c.Do(ctx, MustLookup(CmdGetEmbeddedHealth))
	if err != nil {
		return nil, err
	}
	return DecodeHealth(raw)
}

// Network reads the controller's network settings.
func (c *Client) Network(ctx context.Context) (*NetworkSettings, error) {
	raw, err := c.Do(ctx, MustLookup(CmdGetNetwork))
	if err != nil {
		return nil, err
	}
	return DecodeNetwork(raw)
}

// ServerName reads the host name the controller reports.
func (c *Client) ServerName(ctx context.Context) (string, error) {
	raw, err := c.Do(ctx, MustLookup(CmdGetServerName))
	if err != nil {
		return "", err
	}
	return DecodeServerName(raw)
}

// EventLog reads and classifies the controller's event log against the
// client's notion of today.
func (c *Client) EventLog(ctx context.Context) (LogResult, error) {
	raw, err := c.Do(ctx, MustLookup(CmdGetEventLog))
	if err != nil {
		return LogResult{Bucket: BucketNone, Records: []EventRecord{}}, err
	}
	return Classify(raw, TodayString(c.now())), nil
}
