package ribcl

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

const (
	// DefaultMarker identifies the fragment that answers a read command.
	DefaultMarker = "<GET_"
	// DefaultAttr is where RIBCL keeps most scalar values.
	DefaultAttr = "VALUE"

	declToken = "<?xml"

	powerOnMarker  = `HOST_POWER="ON"`
	powerOffMarker = `HOST_POWER="OFF"`

	statusOK = "0x0000"
)

var (
	// ErrNoFragment means no part of the reply parsed and matched.
	ErrNoFragment = errors.New("ribcl: no parseable reply fragment")
	// ErrElementMissing means a fragment parsed but lacks the expected element.
	ErrElementMissing = errors.New("ribcl: expected element missing from reply")

	errRootCount = errors.New("ribcl: fragment must hold exactly one root element")
)

// AmbiguityError carries a value that was present but matched no known state.
type AmbiguityError struct {
	Field string
	Value string
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("ribcl: unrecognised %s value %q", e.Field, e.Value)
}

// ControllerError is a non-zero RESPONSE STATUS reported inside a reply.
type ControllerError struct {
	Status  string
	Message string
}

func (e *ControllerError) Error() string {
	return fmt.Sprintf("ribcl: controller returned %s: %s", e.Status, e.Message)
}

// Fragment is one well-formed document cut out of a reply.
type Fragment struct {
	Marker string
	doc    *etree.Document
}

// Root returns the document element (RIBCL).
func (f *Fragment) Root() *etree.Element { return f.doc.Root() }

// Find returns the first element named tag anywhere in the fragment.
func (f *Fragment) Find(tag string) *etree.Element {
	return f.doc.FindElement(".//" + tag)
}

// FindAll returns every element matching tag, in document order. tag may
// be a relative etree path such as "VRM/MODULE".
func (f *Fragment) FindAll(tag string) []*etree.Element {
	return f.doc.FindElements(".//" + tag)
}

// Attr returns attr of the first element named tag.
func (f *Fragment) Attr(tag, attr string) (string, bool) {
	el := f.Find(tag)
	if el == nil {
		return "", false
	}
	a := el.SelectAttr(attr)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// splitFragments cuts raw on the XML declaration. Parts are returned without
// the declaration token; the first part is whatever preceded the first one.
func splitFragments(raw string) []string {
	return strings.Split(raw, declToken)
}

// ParseLatestFragment returns the last fragment of raw that contains marker
// and parses strictly, or nil. nil means "could not determine", never a
// negative answer.
func ParseLatestFragment(raw, marker string) *Fragment {
	return latestMatching(splitFragments(raw), marker)
}

// latestMatching scans candidates from the end and returns the first one
// holding marker that parses.
func latestMatching(candidates []string, marker string) *Fragment {
	for i := len(candidates) - 1; i >= 0; i-- {
		part := candidates[i]
		if !strings.Contains(part, marker) {
			continue
		}
		doc, err := parseCandidate(part)
		if err != nil {
			continue
		}
		return &Fragment{Marker: marker, doc: doc}
	}
	return nil
}

// FindAttribute returns attr of the first element named tag in the first
// parseable fragment that has one. Fragment order is forward.
func FindAttribute(raw, tag, attr string) (string, bool) {
	for _, part := range splitFragments(raw) {
		if !strings.Contains(part, tag) {
			continue
		}
		doc, err := parseCandidate(part)
		if err != nil {
			continue
		}
		for _, el := range doc.FindElements(".//" + tag) {
			if a := el.SelectAttr(attr); a != nil {
				return a.Value, true
			}
		}
	}
	return "", false
}

// parseCandidate re-attaches the declaration and parses part strictly.
func parseCandidate(part string) (*etree.Document, error) {
	text := declToken + part
	if err := checkWellFormed(text); err != nil {
		return nil, err
	}
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = false
	if err := doc.ReadFromString(text); err != nil {
		return nil, err
	}
	return doc, nil
}

// checkWellFormed walks text with a strict decoder and requires balanced
// tags and a single root element.
func checkWellFormed(text string) error {
	dec := xml.NewDecoder(strings.NewReader(text))
	dec.Strict = true
	// Controllers may declare a legacy charset; attribute values we read are ASCII.
	dec.CharsetReader = func(_ string, in io.Reader) (io.Reader, error) { return in, nil }

	depth, roots := 0, 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		switch tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
	if depth != 0 || roots != 1 {
		return errRootCount
	}
	return nil
}

// ReadPowerState looks for the HOST_POWER markers anywhere in raw. Power
// replies have been seen in shapes the structured parser rejects, so this
// one field is read by plain substring search.
func ReadPowerState(raw string) PowerState {
	switch {
	case strings.Contains(raw, powerOnMarker):
		return PowerOn
	case strings.Contains(raw, powerOffMarker):
		return PowerOff
	default:
		return PowerUnknown
	}
}

// ReadUIDState reads GET_UID_STATUS/@UID from the latest matching fragment.
// Any outcome other than ON or OFF is UIDUnknown with an error explaining
// why; callers log it and carry on.
func ReadUIDState(raw string) (UIDState, error) {
	frag := ParseLatestFragment(raw, MustLookup(CmdGetUIDStatus).Marker)
	if frag == nil {
		return UIDUnknown, ErrNoFragment
	}
	el := frag.Find("GET_UID_STATUS")
	if el == nil {
		return UIDUnknown, ErrElementMissing
	}
	value := el.SelectAttrValue("UID", "")
	switch strings.ToUpper(value) {
	case string(UIDOn):
		return UIDOn, nil
	case string(UIDOff):
		return UIDOff, nil
	default:
		return UIDUnknown, &AmbiguityError{Field: "UID", Value: value}
	}
}

// CheckResponse returns a ControllerError for the first RESPONSE element in
// any parseable fragment whose STATUS is not 0x0000. Unparseable replies are
// not an error here; there is nothing to report from them.
func CheckResponse(raw string) error {
	for _, part := range splitFragments(raw) {
		if !strings.Contains(part, "RESPONSE") {
			continue
		}
		doc, err := parseCandidate(part)
		if err != nil {
			continue
		}
		for _, el := range doc.FindElements(".//RESPONSE") {
			status := el.SelectAttrValue("STATUS", statusOK)
			if !strings.EqualFold(status, statusOK) {
				return &ControllerError{Status: status, Message: el.SelectAttrValue("MESSAGE", "")}
			}
		}
	}
	return nil
}
