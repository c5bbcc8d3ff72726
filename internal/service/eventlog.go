package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"ilo_monitor/internal/models"
	"ilo_monitor/internal/repository"
)

type EventLogService struct {
	eventRepo repository.EventRepo
}

func NewEventLogService(eventRepo repository.EventRepo) *EventLogService {
	return &EventLogService{eventRepo: eventRepo}
}

var (
	errInvalidTimeRange = errors.New("invalid time range: From must be <= To")
	errInvalidEventType = errors.New("invalid event type: must be COMMAND, POWER_CHANGE, UID_CHANGE or ERROR")
)

var auditEventTypes = map[string]struct{}{
	models.EventCommand:     {},
	models.EventPowerChange: {},
	models.EventUIDChange:   {},
	models.EventError:       {},
}

// IsValidationError reports whether err came from filter validation.
func IsValidationError(err error) bool {
	return errors.Is(err, errInvalidTimeRange) || errors.Is(err, errInvalidEventType)
}

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeEventType trims spaces and uppercases the event type filter.
func normalizeEventType(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

// normalizeAndValidateFilter prepares query parameters and validates the
// time range and event type.
func normalizeAndValidateFilter(f LogFilter) (time.Time, time.Time, string, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, "", errInvalidTimeRange
	}

	eventType := normalizeEventType(f.Type)
	if _, ok := auditEventTypes[eventType]; eventType != "" && !ok {
		return time.Time{}, time.Time{}, "", errInvalidEventType
	}
	return from, to, eventType, nil
}

// List returns audit events matching f, oldest first.
func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.AuditEvent, error) {
	from, to, typ, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, from, to, typ)
}
