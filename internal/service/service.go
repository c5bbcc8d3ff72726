package service

import (
	"context"
	"time"

	"ilo_monitor/internal/logger"
	"ilo_monitor/internal/models"
	"ilo_monitor/internal/repository"
	"ilo_monitor/internal/ribcl"
)

// Controller is the part of *ribcl.Client the services drive.
type Controller interface {
	Address() string
	PowerState(ctx context.Context) (ribcl.PowerState, error)
	Ping(ctx context.Context) (ribcl.PowerState, time.Duration, error)
	SetPower(ctx context.Context, on bool) error
	PressPowerButton(ctx context.Context) error
	HoldPowerButton(ctx context.Context) error
	ResetServer(ctx context.Context) error
	WarmBoot(ctx context.Context) error
	ColdBoot(ctx context.Context) error
	ResetController(ctx context.Context) error
	UIDState(ctx context.Context) (ribcl.UIDState, error)
	SetUID(ctx context.Context, on bool) error
	Firmware(ctx context.Context) (*ribcl.Firmware, error)
	Health(ctx context.Context) (*ribcl.Health, error)
	Network(ctx context.Context) (*ribcl.NetworkSettings, error)
	ServerName(ctx context.Context) (string, error)
	EventLog(ctx context.Context) (ribcl.LogResult, error)
}

var _ Controller = (*ribcl.Client)(nil)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Power reads host power and issues power commands.
type Power interface {
	Status(ctx context.Context) (PowerStatus, error)
	Execute(ctx context.Context, req PowerRequest) (PowerResult, error)
	ResetController(ctx context.Context, userID int) error
}

// Light reads and toggles the unit identification LED.
type Light interface {
	UIDStatus(ctx context.Context) (ribcl.UIDState, error)
	ToggleUID(ctx context.Context, userID int) (UIDResult, error)
}

// Inventory exposes the read-only controller queries.
type Inventory interface {
	Firmware(ctx context.Context) (*ribcl.Firmware, error)
	Health(ctx context.Context) (*ribcl.Health, error)
	Network(ctx context.Context) (*ribcl.NetworkSettings, error)
	ServerName(ctx context.Context) (string, error)
}

// ControllerLog reads the controller's own event log.
type ControllerLog interface {
	Events(ctx context.Context) (ribcl.LogResult, error)
}

// Monitoring exposes the latest snapshot written by the monitor loop.
type Monitoring interface {
	GetState(ctx context.Context) (models.ServerState, error)
}

// EventLog exposes the append-only audit log with filtering.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.AuditEvent, error)
}

// Monitor runs the background loop that samples the controller.
// Stop via context cancellation in main() for graceful shutdown.
type Monitor interface {
	Run(ctx context.Context, tick time.Duration)
}

type Service struct {
	Power
	Light
	Inventory
	ControllerLog
	Monitoring
	EventLog
	Monitor
	Authorization
}

// Options carries what the services need beyond repositories and the controller.
type Options struct {
	SigningKey string
	TokenTTL   time.Duration
	Log        *logger.Logger
}

// NewService wires repositories and the controller into concrete services.
func NewService(repos *repository.Repository, ctrl Controller, opts Options) *Service {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	audit := newAuditor(repos.EventRepo, log)

	return &Service{
		Power:         NewPowerService(ctrl, audit, log),
		Light:         NewLightService(ctrl, audit, log),
		Inventory:     NewInventoryService(ctrl),
		ControllerLog: NewControllerLogService(ctrl),
		Monitoring:    NewMonitoringService(repos.StateRepo, ctrl.Address()),
		EventLog:      NewEventLogService(repos.EventRepo),
		Monitor:       NewMonitorService(ctrl, repos.StateRepo, repos.EventRepo, log),
		Authorization: NewAuthService(repos.Auth, opts.SigningKey, opts.TokenTTL),
	}
}
