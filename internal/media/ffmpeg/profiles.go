package ffmpeg

import (
	"fmt"
	"sort"
	"strings"
)

// Profile bundles the encoder arguments and container extension for one
// output flavor.
type Profile struct {
	Name string
	Ext  string
	Args []string
}

var profiles = map[string]Profile{
	"av1": {
		Name: "av1",
		Ext:  "mkv",
		Args: []string{
			"-c:v", "libsvtav1",
			"-crf:v", "10",
			"-preset:v", "6",
			"-svtav1-params", "tune=0:film-grain=50:film-grain-denoise=0:enable-variance-boost=1",
			"-c:a", "libopus",
			"-b:a", "92k",
			"-ac", "2",
		},
	},
	"flac": {
		Name: "flac",
		Ext:  "flac",
		Args: []string{
			"-c:v", "none",
			"-c:a", "flac",
			"-ac", "2",
		},
	},
}

// LookupProfile resolves an encoding profile by name.
func LookupProfile(name string) (Profile, error) {
	profile, ok := profiles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Profile{}, fmt.Errorf("unknown encoding profile %q (known: %s)", name, strings.Join(ProfileNames(), ", "))
	}
	return profile, nil
}

// ProfileNames lists the known profile names in stable order.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
