package main

import (
	"strings"
	"testing"
	"time"

	"subclip/internal/clipfind"
)

func TestRenderFindTableShowsClipsAndErrors(t *testing.T) {
	report := clipfind.Report{Files: []clipfind.FileReport{
		{
			File: "a.srt",
			Clips: []clipfind.Clip{
				{Start: clipfind.Seconds(9 * time.Second), End: clipfind.Seconds(15 * time.Second), Cues: []int{0, 1}},
			},
		},
		{File: "b.srt", Clips: []clipfind.Clip{}, Error: "unreadable"},
	}}
	out := renderFindTable(report)
	if !strings.Contains(out, "00:00:09,000") || !strings.Contains(out, "00:00:15,000") {
		t.Fatalf("expected SRT timestamps in table, got:\n%s", out)
	}
	if !strings.Contains(out, "0,1") {
		t.Fatalf("expected cue list in table, got:\n%s", out)
	}
	if !strings.Contains(out, "unreadable") {
		t.Fatalf("expected error row in table, got:\n%s", out)
	}
}

func TestJoinInts(t *testing.T) {
	if got := joinInts([]int{3, 1, 4}); got != "3,1,4" {
		t.Fatalf("expected %q, got %q", "3,1,4", got)
	}
	if got := joinInts(nil); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestRootCommandWiring(t *testing.T) {
	root := newRootCommand()
	want := []string{"find", "extract", "cut", "cache", "config", "deps"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("missing subcommand %q", name)
		}
	}
}
