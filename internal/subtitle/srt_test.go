package subtitle

import (
	"strings"
	"testing"
	"time"
)

func TestParseSRTBasic(t *testing.T) {
	raw := `1
00:00:01,000 --> 00:00:03,500
Hello there!

2
00:01:00,250 --> 00:01:02,000
Second line
continues here
`
	cues, err := ParseSRT(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("ParseSRT returned error: %v", err)
	}
	if len(cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(cues))
	}
	if cues[0].Start != time.Second || cues[0].End != 3500*time.Millisecond {
		t.Fatalf("unexpected first cue timing: %v --> %v", cues[0].Start, cues[0].End)
	}
	if cues[1].Text != "Second line\ncontinues here" {
		t.Fatalf("expected multi-line text preserved, got %q", cues[1].Text)
	}
}

func TestParseSRTToleratesCRLFBOMAndPeriods(t *testing.T) {
	raw := "\uFEFF1\r\n00:00:01.000 --> 00:00:02.000\r\nFirst\r\n\r\n2\r\n00:00:03,000 --> 00:00:04,000\r\nSecond\r\n"
	cues, err := ParseSRT(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("ParseSRT returned error: %v", err)
	}
	if len(cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(cues))
	}
	if cues[0].Text != "First" {
		t.Fatalf("expected %q, got %q", "First", cues[0].Text)
	}
	if cues[0].Start != time.Second {
		t.Fatalf("expected 1s start, got %v", cues[0].Start)
	}
}

func TestParseSRTRejectsBrokenTiming(t *testing.T) {
	raw := `1
totally not a timing line
Text
`
	if _, err := ParseSRT(strings.NewReader(raw)); err == nil {
		t.Fatal("expected error for invalid timing line")
	}
}

func TestParseSRTEmptyInput(t *testing.T) {
	cues, err := ParseSRT(strings.NewReader("  \n\n"))
	if err != nil {
		t.Fatalf("ParseSRT returned error: %v", err)
	}
	if len(cues) != 0 {
		t.Fatalf("expected no cues, got %d", len(cues))
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	cases := []struct {
		text string
		want time.Duration
	}{
		{"00:00:00,000", 0},
		{"01:02:03,004", time.Hour + 2*time.Minute + 3*time.Second + 4*time.Millisecond},
		{"10:59:59,999", 10*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond},
	}
	for _, tc := range cases {
		got, err := ParseTimestamp(tc.text)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q): %v", tc.text, err)
		}
		if got != tc.want {
			t.Fatalf("ParseTimestamp(%q) = %v, want %v", tc.text, got, tc.want)
		}
		if back := FormatTimestamp(got); back != tc.text {
			t.Fatalf("FormatTimestamp(%v) = %q, want %q", got, back, tc.text)
		}
	}
}

func TestParseTimestampRejectsGarbage(t *testing.T) {
	for _, text := range []string{"", "1:2", "aa:bb:cc,dd", "00:00:01"} {
		if _, err := ParseTimestamp(text); err == nil {
			t.Fatalf("expected error for %q", text)
		}
	}
}
