// Package ribcl speaks HP's RIBCL (Remote Insight Board Command Language)
// to an iLO management controller: it builds login envelopes, posts them over
// HTTP and picks structured answers out of replies that are frequently a
// concatenation of several, sometimes broken, XML documents.
package ribcl

import "strings"

// PowerState is the host power state reported by the controller.
// PowerUnknown is a normal outcome meaning "could not be determined"; it
// must never be read as PowerOff.
type PowerState string

const (
	PowerOn      PowerState = "ON"
	PowerOff     PowerState = "OFF"
	PowerUnknown PowerState = "UNKNOWN"
)

// Known reports whether the state is a concrete ON or OFF.
func (p PowerState) Known() bool {
	return p == PowerOn || p == PowerOff
}

// UIDState is the state of the unit identification LED.
type UIDState string

const (
	UIDOn      UIDState = "ON"
	UIDOff     UIDState = "OFF"
	UIDUnknown UIDState = "UNKNOWN"
)

// Known reports whether the state is a concrete ON or OFF.
func (u UIDState) Known() bool {
	return u == UIDOn || u == UIDOff
}

// Opposite returns the state a toggle aims for. UNKNOWN has no opposite.
func (u UIDState) Opposite() UIDState {
	switch u {
	case UIDOn:
		return UIDOff
	case UIDOff:
		return UIDOn
	default:
		return UIDUnknown
	}
}

// ParsePowerState normalises user or API input ("on", "Off", ...).
func ParsePowerState(s string) PowerState {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(PowerOn):
		return PowerOn
	case string(PowerOff):
		return PowerOff
	default:
		return PowerUnknown
	}
}

// ParseUIDState normalises user or API input.
func ParseUIDState(s string) UIDState {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(UIDOn):
		return UIDOn
	case string(UIDOff):
		return UIDOff
	default:
		return UIDUnknown
	}
}
