package textutil

import "testing"

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain name", "plain name"},
		{"a/b:c*d?e|f'g\"h", "a_b_c_d_e_f_g_h"},
		{"-leading-dash", "_leading-dash"},
		{"line\nbreak\rhere", "line___break___here"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := SanitizeFileName(tc.in); got != tc.want {
			t.Fatalf("SanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("hello", 3); got != "hel" {
		t.Fatalf("expected %q, got %q", "hel", got)
	}
	if got := TruncateRunes("héllo", 2); got != "hé" {
		t.Fatalf("rune-aware truncation failed: %q", got)
	}
	if got := TruncateRunes("short", 10); got != "short" {
		t.Fatalf("expected unchanged string, got %q", got)
	}
	if got := TruncateRunes("x", 0); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestFlattenLines(t *testing.T) {
	if got := FlattenLines("one\ntwo"); got != "one ↳ two" {
		t.Fatalf("expected flattened text, got %q", got)
	}
}
