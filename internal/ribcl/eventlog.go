package ribcl

import (
	"html"
	"strings"
	"time"
)

// LogBucket says which slice of the event log a LogResult holds.
// Checked in order TODAY, CLOCK_UNSET, ALL; NONE when the log is empty.
type LogBucket string

const (
	BucketToday      LogBucket = "TODAY"
	BucketClockUnset LogBucket = "CLOCK_UNSET"
	BucketAll        LogBucket = "ALL"
	BucketNone       LogBucket = "NONE"
)

const (
	// MaxLogRecords caps the records returned for display.
	MaxLogRecords = 10

	// TodayLayout is the controller's date format inside LAST_UPDATE.
	TodayLayout = "01/02/2006"

	eventMarker    = "<EVENT"
	clockNotSet    = "[NOT SET]"
	attrTimestamp  = "LAST_UPDATE"
	attrSeverity   = "SEVERITY"
	attrDesc       = "DESCRIPTION"
	attrClass      = "CLASS"
	attrCount      = "COUNT"
	attrValueOpen  = `="`
	attrValueClose = `"`
)

// EventRecord is one entry of the controller's event log.
type EventRecord struct {
	Timestamp   string `json:"timestamp" yaml:"timestamp"`
	Severity    string `json:"severity" yaml:"severity"`
	Description string `json:"description" yaml:"description"`
	Class       string `json:"class,omitempty" yaml:"class,omitempty"`
	Count       string `json:"count,omitempty" yaml:"count,omitempty"`
}

// LogResult is the classified log: at most MaxLogRecords records of the
// chosen bucket plus the bucket's real size.
type LogResult struct {
	Bucket  LogBucket     `json:"bucket" yaml:"bucket"`
	Records []EventRecord `json:"records" yaml:"records"`
	Total   int           `json:"total" yaml:"total"`
}

// TodayString formats t the way the controller stamps events.
func TodayString(t time.Time) string {
	return t.Format(TodayLayout)
}

// ParseEvents extracts records from a GET_EVENT_LOG reply in the order the
// controller emitted them. Entries are located by substring search because
// the log is not reliably well-formed XML.
func ParseEvents(raw string) []EventRecord {
	segments := strings.Split(raw, eventMarker)
	records := make([]EventRecord, 0, len(segments))
	// segments[0] precedes the first marker.
	for _, seg := range segments[1:] {
		if continuesTagName(seg) {
			// <EVENT_LOG ...> and friends
			continue
		}
		ts, ok := attrValue(seg, attrTimestamp)
		if !ok {
			continue
		}
		rec := EventRecord{Timestamp: ts}
		rec.Severity, _ = attrValue(seg, attrSeverity)
		rec.Description, _ = attrValue(seg, attrDesc)
		rec.Class, _ = attrValue(seg, attrClass)
		rec.Count, _ = attrValue(seg, attrCount)
		records = append(records, rec)
	}
	return records
}

// Classify parses raw and returns the highest-priority non-empty bucket.
// today must be formatted with TodayLayout.
//
// Bucket precedence is inherited policy, not something the controller
// documents.
func Classify(raw, today string) LogResult {
	return classifyRecords(ParseEvents(raw), today)
}

func classifyRecords(records []EventRecord, today string) LogResult {
	var todays, unset []EventRecord
	for _, r := range records {
		switch {
		case today != "" && strings.Contains(r.Timestamp, today):
			todays = append(todays, r)
		case strings.Contains(r.Timestamp, clockNotSet):
			unset = append(unset, r)
		}
	}

	switch {
	case len(todays) > 0:
		return newLogResult(BucketToday, todays)
	case len(unset) > 0:
		return newLogResult(BucketClockUnset, unset)
	case len(records) > 0:
		return newLogResult(BucketAll, records)
	default:
		return LogResult{Bucket: BucketNone, Records: []EventRecord{}}
	}
}

func newLogResult(bucket LogBucket, records []EventRecord) LogResult {
	shown := records
	if len(shown) > MaxLogRecords {
		shown = shown[:MaxLogRecords]
	}
	return LogResult{
		Bucket:  bucket,
		Records: append([]EventRecord(nil), shown...),
		Total:   len(records),
	}
}

// attrValue finds NAME="value" in seg and returns it with XML entities
// decoded. The match must start at a name boundary so LAST_UPDATE is not
// found inside another attribute name.
func attrValue(seg, name string) (string, bool) {
	needle := name + attrValueOpen
	from := 0
	for {
		i := strings.Index(seg[from:], needle)
		if i < 0 {
			return "", false
		}
		i += from
		if i == 0 || !isNameByte(seg[i-1]) {
			start := i + len(needle)
			end := strings.Index(seg[start:], attrValueClose)
			if end < 0 {
				return "", false
			}
			return html.UnescapeString(seg[start : start+end]), true
		}
		from = i + len(needle)
	}
}

// continuesTagName reports whether the text right after the event marker is
// still part of a tag name, as in <EVENT_LOG.
func continuesTagName(seg string) bool {
	return seg != "" && isNameByte(seg[0])
}

func isNameByte(b byte) bool {
	return b == '_' || b == '-' || b == '.' || b == ':' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
