package ribcl

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

const okResponse = `<?xml version="1.0"?>
<RIBCL VERSION="2.23">
<RESPONSE
    STATUS="0x0000"
    MESSAGE='No error'
     />
</RIBCL>
`

// reply joins a login acknowledgement and body documents the way the
// controller concatenates them.
func reply(bodies ...string) string {
	var b strings.Builder
	b.WriteString(okResponse)
	for _, body := range bodies {
		b.WriteString("<?xml version=\"1.0\"?>\n<RIBCL VERSION=\"2.23\">\n")
		b.WriteString("<RESPONSE\n    STATUS=\"0x0000\"\n    MESSAGE='No error'\n     />\n")
		b.WriteString(body)
		b.WriteString("\n</RIBCL>\n")
	}
	return b.String()
}

// truncated is a trailing document the controller cut off mid-element.
const truncated = "<?xml version=\"1.0\"?>\n<RIBCL VERSION=\"2.23\">\n<GET_EMBEDDED_HEALTH_DATA>\n<FANS>\n<FAN>\n"

func uidReply(value string) string {
	return reply(fmt.Sprintf("<GET_UID_STATUS\n    UID=%q\n    />", value))
}

func powerReply(value string) string {
	return reply(fmt.Sprintf("<GET_HOST_POWER\n    HOST_POWER=%q\n    />", value))
}

func eventXML(ts, severity, desc string) string {
	return fmt.Sprintf("<EVENT\n    SEVERITY=%q\n    CLASS=\"Server\"\n    LAST_UPDATE=%q\n    INITIAL_UPDATE=%q\n    COUNT=\"1\"\n    DESCRIPTION=%q\n/>\n",
		severity, ts, ts, desc)
}

func eventLogReply(events ...string) string {
	return reply("<EVENT_LOG DESCRIPTION=\"Integrated Lights-Out Event Log\">\n" +
		strings.Join(events, "") + "</EVENT_LOG>")
}

const healthBody = `<GET_EMBEDDED_HEALTH_DATA>
 <FANS>
  <FAN>
   <ZONE VALUE="System"/>
   <LABEL VALUE="Fan 1"/>
   <STATUS VALUE="Ok"/>
   <SPEED VALUE="19" UNIT="Percentage"/>
  </FAN>
  <FAN>
   <ZONE VALUE="System"/>
   <LABEL VALUE="Fan 2"/>
   <STATUS VALUE="Ok"/>
   <SPEED VALUE="23" UNIT="Percentage"/>
  </FAN>
 </FANS>
 <TEMPERATURE>
  <TEMP>
   <LABEL VALUE="Temp 1"/>
   <LOCATION VALUE="Ambient"/>
   <STATUS VALUE="Ok"/>
   <CURRENTREADING VALUE="21" UNIT="Celsius"/>
   <CAUTION VALUE="42" UNIT="Celsius"/>
  </TEMP>
  <TEMP>
   <LABEL VALUE="Temp 2"/>
   <LOCATION VALUE="CPU"/>
   <STATUS VALUE="Ok"/>
   <CURRENTREADING VALUE="40" UNIT="Celsius"/>
  </TEMP>
 </TEMPERATURE>
 <VRM>
  <MODULE>
   <LABEL VALUE="VRM 1"/>
   <STATUS VALUE="Ok"/>
  </MODULE>
 </VRM>
 <POWER_SUPPLIES>
  <SUPPLY>
   <LABEL VALUE="Power Supply 1"/>
   <STATUS VALUE="Ok"/>
  </SUPPLY>
  <SUPPLY>
   <LABEL VALUE="Power Supply 2"/>
   <STATUS VALUE="Failed"/>
  </SUPPLY>
 </POWER_SUPPLIES>
 <HEALTH_AT_A_GLANCE>
  <FANS STATUS="Ok"/>
  <FANS REDUNDANCY="Fully Redundant"/>
  <TEMPERATURE STATUS="Ok"/>
  <VRM STATUS="Ok"/>
  <POWER_SUPPLIES STATUS="Degraded"/>
 </HEALTH_AT_A_GLANCE>
</GET_EMBEDDED_HEALTH_DATA>`

const firmwareBody = `<GET_FW_VERSION
    FIRMWARE_VERSION = "1.94"
    FIRMWARE_DATE = "Jun 04 2018"
    MANAGEMENT_PROCESSOR = "iLO3"
    LICENSE_TYPE = "iLO 3 Advanced"
    />`

const networkBody = `<GET_NETWORK_SETTINGS>
    <ENABLE_NIC VALUE="Y"/>
    <DHCP_ENABLE VALUE="N"/>
    <IP_ADDRESS VALUE="10.0.0.50"/>
    <SUBNET_MASK VALUE="255.255.255.0"/>
    <GATEWAY_IP_ADDRESS VALUE="10.0.0.1"/>
    <DNS_NAME VALUE="ILOUSE123"/>
    <MAC_ADDRESS VALUE="9c:8e:99:00:11:22"/>
</GET_NETWORK_SETTINGS>`

// fakeSender answers envelopes by body tag and records what it was sent.
type fakeSender struct {
	mu        sync.Mutex
	replies   map[string]string
	err       error
	envelopes []string
}

func newFakeSender() *fakeSender {
	return &fakeSender{replies: map[string]string{}}
}

func (f *fakeSender) on(tag, raw string) *fakeSender {
	f.replies[tag] = raw
	return f
}

func (f *fakeSender) Send(_ context.Context, envelope string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.envelopes = append(f.envelopes, envelope)
	if f.err != nil {
		return "", f.err
	}
	for tag, raw := range f.replies {
		if strings.Contains(envelope, "<"+tag) {
			return raw, nil
		}
	}
	return okResponse, nil
}

func (f *fakeSender) last() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.envelopes) == 0 {
		return ""
	}
	return f.envelopes[len(f.envelopes)-1]
}
