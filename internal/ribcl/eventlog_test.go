package ribcl

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	today     = "10/15/2026"
	todayTS   = "10/15/2026 08:14"
	unsetTS   = "[NOT SET]"
	historyTS = "01/02/2025 10:00"
)

func events(n int, ts, prefix string) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, eventXML(ts, "Informational", fmt.Sprintf("%s %d", prefix, i)))
	}
	return out
}

func concat(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		events     []string
		wantBucket LogBucket
		wantShown  int
		wantTotal  int
	}{
		{
			name:       "today wins over everything",
			events:     concat(events(2, historyTS, "old"), events(3, todayTS, "new"), events(1, unsetTS, "unset")),
			wantBucket: BucketToday, wantShown: 3, wantTotal: 3,
		},
		{
			name:       "clock unset when nothing today",
			events:     concat(events(5, historyTS, "old"), events(2, unsetTS, "unset")),
			wantBucket: BucketClockUnset, wantShown: 2, wantTotal: 2,
		},
		{
			name:       "all when only history",
			events:     events(5, historyTS, "old"),
			wantBucket: BucketAll, wantShown: 5, wantTotal: 5,
		},
		{
			name:       "cap keeps the real total",
			events:     events(12, todayTS, "new"),
			wantBucket: BucketToday, wantShown: MaxLogRecords, wantTotal: 12,
		},
		{
			name:       "all is capped too",
			events:     events(25, historyTS, "old"),
			wantBucket: BucketAll, wantShown: MaxLogRecords, wantTotal: 25,
		},
		{
			name:       "empty log",
			wantBucket: BucketNone, wantShown: 0, wantTotal: 0,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Classify(eventLogReply(tt.events...), today)
			assert.Equal(t, tt.wantBucket, got.Bucket)
			assert.Len(t, got.Records, tt.wantShown)
			assert.Equal(t, tt.wantTotal, got.Total)
			assert.NotNil(t, got.Records)
			assert.LessOrEqual(t, len(got.Records), MaxLogRecords)
		})
	}
}

func TestClassify_KeepsControllerOrder(t *testing.T) {
	t.Parallel()

	got := Classify(eventLogReply(events(12, todayTS, "new")...), today)
	require.Len(t, got.Records, MaxLogRecords)
	assert.Equal(t, "new 0", got.Records[0].Description)
	assert.Equal(t, "new 9", got.Records[9].Description)
}

func TestClassify_EmptyTodayNeverMatches(t *testing.T) {
	t.Parallel()

	got := Classify(eventLogReply(events(2, todayTS, "new")...), "")
	assert.Equal(t, BucketAll, got.Bucket)
}

func TestParseEvents(t *testing.T) {
	t.Parallel()

	raw := eventLogReply(
		eventXML(todayTS, "Caution", "Server power restored."),
		"<EVENT SEVERITY=\"Informational\" DESCRIPTION=\"no timestamp\"/>\n",
		eventXML(unsetTS, "Critical", "POST Error: 1785-Drive Array not Configured"),
	)

	recs := ParseEvents(raw)
	require.Len(t, recs, 2)

	assert.Equal(t, EventRecord{
		Timestamp:   todayTS,
		Severity:    "Caution",
		Description: "Server power restored.",
		Class:       "Server",
		Count:       "1",
	}, recs[0])
	assert.Equal(t, unsetTS, recs[1].Timestamp)
	assert.Equal(t, "Critical", recs[1].Severity)
}

func TestParseEvents_NoEvents(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ParseEvents(""))
	assert.Empty(t, ParseEvents(okResponse))
	assert.Empty(t, ParseEvents(eventLogReply()))
}

func TestParseEvents_TruncatedReply(t *testing.T) {
	t.Parallel()

	raw := eventLogReply(eventXML(historyTS, "Informational", "kept")) +
		"<?xml version=\"1.0\"?>\n<EVENT SEVERITY=\"Caution\" LAST_UPDATE=\"01/0"

	recs := ParseEvents(raw)
	require.Len(t, recs, 1)
	assert.Equal(t, "kept", recs[0].Description)
}

func TestAttrValue_NameBoundary(t *testing.T) {
	t.Parallel()

	seg := ` INITIAL_UPDATE="first" XLAST_UPDATE="x" LAST_UPDATE="real"`
	v, ok := attrValue(seg, "LAST_UPDATE")
	require.True(t, ok)
	assert.Equal(t, "real", v)

	_, ok = attrValue(` COUNT="1"`, "LAST_UPDATE")
	assert.False(t, ok)
}

func TestParseEvents_DecodesEntities(t *testing.T) {
	t.Parallel()

	raw := eventLogReply(eventXML(todayTS, "Caution", "Drive &quot;Bay 3&quot; removed &amp; replaced &lt;hot-plug&gt;"))

	recs := ParseEvents(raw)
	require.Len(t, recs, 1)
	assert.Equal(t, `Drive "Bay 3" removed & replaced <hot-plug>`, recs[0].Description)
}

func TestTodayString(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, time.March, 7, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "03/07/2026", TodayString(day))
}
