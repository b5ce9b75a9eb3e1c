package deps

import "testing"

func TestCheckBinariesFindsShell(t *testing.T) {
	statuses := CheckBinaries([]Requirement{{Name: "sh", Command: "sh"}})
	if len(statuses) != 1 {
		t.Fatalf("expected one status, got %d", len(statuses))
	}
	if !statuses[0].Available {
		t.Fatalf("expected sh to be available: %+v", statuses[0])
	}
}

func TestCheckBinariesReportsMissing(t *testing.T) {
	statuses := CheckBinaries([]Requirement{
		{Name: "missing", Command: "definitely-not-a-real-binary-xyz"},
		{Name: "blank", Command: "   "},
	})
	for _, status := range statuses {
		if status.Available {
			t.Fatalf("expected unavailable status: %+v", status)
		}
		if status.Detail == "" {
			t.Fatalf("expected detail for %s", status.Name)
		}
	}
}

func TestDefaultsListsBothTools(t *testing.T) {
	reqs := Defaults("ffmpeg", "ffprobe")
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requirements, got %d", len(reqs))
	}
}
