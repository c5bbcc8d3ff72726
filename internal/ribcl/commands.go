package ribcl

import "sort"

// Section is the RIBCL container a command body is nested in.
type Section string

const (
	SectionServer Section = "SERVER_INFO"
	SectionRIB    Section = "RIB_INFO"
)

// Mode is the access mode declared on the section element.
type Mode string

const (
	ModeRead  Mode = "read"
	ModeWrite Mode = "write"
)

// CommandID names an entry of the fixed command catalog.
type CommandID string

const (
	CmdReadPowerStatus    CommandID = "read-power-status"
	CmdSetPowerOn         CommandID = "set-power-on"
	CmdSetPowerOff        CommandID = "set-power-off"
	CmdPressPowerButton   CommandID = "press-power-button"
	CmdResetServer        CommandID = "reset-server"
	CmdWarmBoot           CommandID = "warm-boot"
	CmdColdBoot           CommandID = "cold-boot"
	CmdHoldPowerButton    CommandID = "hold-power-button"
	CmdResetController    CommandID = "reset-controller"
	CmdGetFirmwareVersion CommandID = "get-firmware-version"
	CmdGetEmbeddedHealth  CommandID = "get-embedded-health"
	CmdGetNetwork         CommandID = "get-network-settings"
	CmdGetServerName      CommandID = "get-server-name"
	CmdGetUIDStatus       CommandID = "get-uid-status"
	CmdSetUID             CommandID = "set-uid"
	CmdGetEventLog        CommandID = "get-event-log"
)

// Attr is a single attribute on a command body element. Order is kept so
// envelopes are byte-stable.
type Attr struct {
	Key   string
	Value string
}

// Command is one catalog entry: the body element and where it goes.
type Command struct {
	ID      CommandID
	Section Section
	Mode    Mode
	Tag     string
	Attrs   []Attr
	// Flag names the attribute that carries a Yes/No switch, if any.
	Flag string
	// Marker is the substring a reply fragment must contain to answer this
	// command. Empty for writes, whose replies carry only RESPONSE status.
	Marker string
}

// Flag literals the controller expects.
const (
	flagYes = "Yes"
	flagNo  = "No"
)

func flagValue(on bool) string {
	if on {
		return flagYes
	}
	return flagNo
}

// WithFlag returns a copy of c with its flag attribute set to Yes or No.
// Commands without a flag are returned unchanged.
func (c Command) WithFlag(on bool) Command {
	if c.Flag == "" {
		return c
	}
	attrs := make([]Attr, 0, len(c.Attrs)+1)
	set := false
	for _, a := range c.Attrs {
		if a.Key == c.Flag {
			a.Value = flagValue(on)
			set = true
		}
		attrs = append(attrs, a)
	}
	if !set {
		attrs = append(attrs, Attr{Key: c.Flag, Value: flagValue(on)})
	}
	c.Attrs = attrs
	return c
}

// Attr returns the value of the named body attribute.
func (c Command) Attr(key string) (string, bool) {
	for _, a := range c.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

var catalog = map[CommandID]Command{
	CmdReadPowerStatus: {Section: SectionServer, Mode: ModeRead, Tag: "GET_HOST_POWER_STATUS", Marker: "<GET_HOST_POWER"},
	CmdSetPowerOn: {Section: SectionServer, Mode: ModeWrite, Tag: "SET_HOST_POWER",
		Attrs: []Attr{{Key: "HOST_POWER", Value: flagYes}}, Flag: "HOST_POWER"},
	CmdSetPowerOff: {Section: SectionServer, Mode: ModeWrite, Tag: "SET_HOST_POWER",
		Attrs: []Attr{{Key: "HOST_POWER", Value: flagNo}}, Flag: "HOST_POWER"},
	CmdPressPowerButton:   {Section: SectionServer, Mode: ModeWrite, Tag: "PRESS_PWR_BTN"},
	CmdResetServer:        {Section: SectionServer, Mode: ModeWrite, Tag: "RESET_SERVER"},
	CmdWarmBoot:           {Section: SectionServer, Mode: ModeWrite, Tag: "WARM_BOOT_SERVER"},
	CmdColdBoot:           {Section: SectionServer, Mode: ModeWrite, Tag: "COLD_BOOT_SERVER"},
	CmdHoldPowerButton:    {Section: SectionServer, Mode: ModeWrite, Tag: "HOLD_PWR_BTN"},
	CmdResetController:    {Section: SectionRIB, Mode: ModeWrite, Tag: "RESET_RIB"},
	CmdGetFirmwareVersion: {Section: SectionRIB, Mode: ModeRead, Tag: "GET_FW_VERSION", Marker: "<GET_FW_VERSION"},
	CmdGetEmbeddedHealth:  {Section: SectionServer, Mode: ModeRead, Tag: "GET_EMBEDDED_HEALTH", Marker: "<GET_EMBEDDED_HEALTH"},
	CmdGetNetwork:         {Section: SectionRIB, Mode: ModeRead, Tag: "GET_NETWORK_SETTINGS", Marker: "<GET_NETWORK_SETTINGS"},
	CmdGetServerName:      {Section: SectionServer, Mode: ModeRead, Tag: "GET_SERVER_NAME", Marker: "<SERVER_NAME"},
	CmdGetUIDStatus:       {Section: SectionServer, Mode: ModeRead, Tag: "GET_UID_STATUS", Marker: "<GET_UID_STATUS"},
	CmdSetUID: {Section: SectionServer, Mode: ModeWrite, Tag: "UID_CONTROL",
		Attrs: []Attr{{Key: "UID", Value: flagNo}}, Flag: "UID"},
	CmdGetEventLog: {Section: SectionRIB, Mode: ModeRead, Tag: "GET_EVENT_LOG", Marker: "<EVENT_LOG"},
}

// Lookup returns the catalog entry for id.
func Lookup(id CommandID) (Command, bool) {
	c, ok := catalog[id]
	if !ok {
		return Command{}, false
	}
	c.ID = id
	c.Attrs = append([]Attr(nil), c.Attrs...)
	return c, true
}

// MustLookup is Lookup for ids known at compile time.
func MustLookup(id CommandID) Command {
	c, ok := Lookup(id)
	if !ok {
		panic("ribcl: unknown command " + string(id))
	}
	return c
}

// Catalog returns every entry sorted by id.
func Catalog() []Command {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)

	out := make([]Command, 0, len(ids))
	for _, id := range ids {
		out = append(out, MustLookup(CommandID(id)))
	}
	return out
}

// SetHostPower returns the SET_HOST_POWER entry for the wanted state.
func SetHostPower(on bool) Command {
	if on {
		return MustLookup(CmdSetPowerOn)
	}
	return MustLookup(CmdSetPowerOff)
}

// UIDControl returns the UID_CONTROL entry for the wanted LED state.
func UIDControl(on bool) Command {
	return MustLookup(CmdSetUID).WithFlag(on)
}
