package ribcl

import "github.com/beevik/etree"

// Firmware is the GET_FW_VERSION answer.
type Firmware struct {
	Version             string `json:"version" yaml:"version"`
	Date                string `json:"date" yaml:"date"`
	ManagementProcessor string `json:"management_processor" yaml:"management_processor"`
	LicenseType         string `json:"license_type" yaml:"license_type"`
}

// HealthSummary is HEALTH_AT_A_GLANCE.
type HealthSummary struct {
	Fans          string `json:"fans" yaml:"fans"`
	Temperature   string `json:"temperature" yaml:"temperature"`
	PowerSupplies string `json:"power_supplies" yaml:"power_supplies"`
}

// TemperatureSensor is one TEMP entry.
type TemperatureSensor struct {
	Location string `json:"location" yaml:"location"`
	Reading  string `json:"reading" yaml:"reading"`
	Unit     string `json:"unit,omitempty" yaml:"unit,omitempty"`
	Status   string `json:"status" yaml:"status"`
}

// Fan is one FAN entry.
type Fan struct {
	Label  string `json:"label" yaml:"label"`
	Status string `json:"status" yaml:"status"`
	Speed  string `json:"speed" yaml:"speed"`
}

// Component is a labelled part with a status: power supplies and VRMs.
type Component struct {
	Label  string `json:"label" yaml:"label"`
	Status string `json:"status" yaml:"status"`
}

// Health is the decoded GET_EMBEDDED_HEALTH reply.
type Health struct {
	Summary       HealthSummary       `json:"summary" yaml:"summary"`
	Temperatures  []TemperatureSensor `json:"temperatures" yaml:"temperatures"`
	Fans          []Fan               `json:"fans" yaml:"fans"`
	PowerSupplies []Component         `json:"power_supplies" yaml:"power_supplies"`
	VRMs          []Component         `json:"vrms" yaml:"vrms"`
}

// NetworkSettings is the GET_NETWORK_SETTINGS answer.
type NetworkSettings struct {
	IPAddress  string `json:"ip_address" yaml:"ip_address"`
	SubnetMask string `json:"subnet_mask" yaml:"subnet_mask"`
	Gateway    string `json:"gateway" yaml:"gateway"`
	MACAddress string `json:"mac_address" yaml:"mac_address"`
	DHCP       string `json:"dhcp" yaml:"dhcp"`
	DNSName    string `json:"dns_name" yaml:"dns_name"`
}

// DecodeFirmware reads a GET_FW_VERSION reply.
func DecodeFirmware(raw string) (*Firmware, error) {
	el, err := latestElement(raw, CmdGetFirmwareVersion, "GET_FW_VERSION")
	if err != nil {
		return nil, err
	}
	return &Firmware{
		Version:             el.SelectAttrValue("FIRMWARE_VERSION", ""),
		Date:                el.SelectAttrValue("FIRMWARE_DATE", ""),
		ManagementProcessor: el.SelectAttrValue("MANAGEMENT_PROCESSOR", ""),
		LicenseType:         el.SelectAttrValue("LICENSE_TYPE", ""),
	}, nil
}

// DecodeHealth reads a GET_EMBEDDED_HEALTH reply. Missing sections decode
// as empty values.
func DecodeHealth(raw string) (*Health, error) {
	frag := ParseLatestFragment(raw, MustLookup(CmdGetEmbeddedHealth).Marker)
	if frag == nil {
		return nil, ErrNoFragment
	}

	h := &Health{
		Temperatures:  []TemperatureSensor{},
		Fans:          []Fan{},
		PowerSupplies: []Component{},
		VRMs:          []Component{},
	}
	if glance := frag.Find("HEALTH_AT_A_GLANCE"); glance != nil {
		h.Summary = HealthSummary{
			Fans:          childAttr(glance, "FANS", "STATUS"),
			Temperature:   childAttr(glance, "TEMPERATURE", "STATUS"),
			PowerSupplies: childAttr(glance, "POWER_SUPPLIES", "STATUS"),
		}
	}
	for _, t := range frag.FindAll("TEMP") {
		h.Temperatures = append(h.Temperatures, TemperatureSensor{
			Location: childValue(t, "LOCATION"),
			Reading:  childValue(t, "CURRENTREADING"),
			Unit:     childAttr(t, "CURRENTREADING", "UNIT"),
			Status:   childValue(t, "STATUS"),
		})
	}
	for _, f := range frag.FindAll("FAN") {
		h.Fans = append(h.Fans, Fan{
			Label:  childValue(f, "LABEL"),
			Status: childValue(f, "STATUS"),
			Speed:  childValue(f, "SPEED"),
		})
	}
	for _, s := range frag.FindAll("SUPPLY") {
		h.PowerSupplies = append(h.PowerSupplies, Component{
			Label:  childValue(s, "LABEL"),
			Status: childValue(s, "STATUS"),
		})
	}
	for _, m := range frag.FindAll("VRM/MODULE") {
		h.VRMs = append(h.VRMs, Component{
			Label:  childValue(m, "LABEL"),
			Status: childValue(m, "STATUS"),
		})
	}
	return h, nil
}

// DecodeNetwork reads a GET_NETWORK_SETTINGS reply.
func DecodeNetwork(raw string) (*NetworkSettings, error) {
	el, err := latestElement(raw, CmdGetNetwork, "GET_NETWORK_SETTINGS")
	if err != nil {
		return nil, err
	}
	return &NetworkSettings{
		IPAddress:  childValue(el, "IP_ADDRESS"),
		SubnetMask: childValue(el, "SUBNET_MASK"),
		Gateway:    childValue(el, "GATEWAY_IP_ADDRESS"),
		MACAddress: childValue(el, "MAC_ADDRESS"),
		DHCP:       childValue(el, "DHCP_ENABLE"),
		DNSName:    childValue(el, "DNS_NAME"),
	}, nil
}

// DecodeServerName reads SERVER_NAME/@VALUE from a GET_SERVER_NAME reply.
func DecodeServerName(raw string) (string, error) {
	name, ok := FindAttribute(raw, "SERVER_NAME", DefaultAttr)
	if !ok {
		return "", ErrNoFragment
	}
	return name, nil
}

func latestElement(raw string, id CommandID, tag string) (*etree.Element, error) {
	frag := ParseLatestFragment(raw, MustLookup(id).Marker)
	if frag == nil {
		return nil, ErrNoFragment
	}
	el := frag.Find(tag)
	if el == nil {
		return nil, ErrElementMissing
	}
	return el, nil
}

func childAttr(parent *etree.Element, tag, attr string) string {
	child := parent.SelectElement(tag)
	if child == nil {
		return ""
	}
	return child.SelectAttrValue(attr, "")
}

func childValue(parent *etree.Element, tag string) string {
	return childAttr(parent, tag, DefaultAttr)
}
