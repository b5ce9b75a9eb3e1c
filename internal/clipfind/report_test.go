package clipfind

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestReportJSONShape(t *testing.T) {
	report := Report{Files: []FileReport{
		{
			File:        "a.srt",
			Clips:       []Clip{{Start: Seconds(9 * time.Second), End: Seconds(15 * time.Second), Cues: []int{0, 1}}},
			DroppedCues: 1,
		},
		{File: "b.srt", Clips: []Clip{}, Error: "unreadable"},
	}}
	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("marshal report: %v", err)
	}
	out := string(data)
	for _, want := range []string{
		`"file":"a.srt"`,
		`"clips":[{"start":9.000,"end":15.000,"cues":[0,1]}]`,
		`"dropped_cue_count":1`,
		`"clips":[]`,
		`"error":"unreadable"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output, got %s", want, out)
		}
	}
	if strings.Contains(out, `"error":""`) {
		t.Fatalf("error field must be omitted when empty: %s", out)
	}
}

func TestSecondsRoundTrip(t *testing.T) {
	in := Seconds(12500 * time.Millisecond)
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "12.500" {
		t.Fatalf("expected fixed three decimals, got %s", data)
	}
	var out Seconds
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Duration() != in.Duration() {
		t.Fatalf("round trip changed value: %v != %v", out.Duration(), in.Duration())
	}
}
