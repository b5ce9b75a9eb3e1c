package main

import (
	"fmt"
	"hash/fnv"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"subclip/internal/textutil"
)

var mediaExtensions = map[string]struct{}{
	".mkv": {}, ".mp4": {}, ".avi": {}, ".mov": {}, ".webm": {}, ".m4v": {}, ".ts": {},
}

func isSubtitleFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".srt")
}

func isMediaFile(path string) bool {
	_, ok := mediaExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// discoverInputs resolves the argument list into subtitle and media files.
// Directories are walked recursively; symlinks are skipped.
func discoverInputs(args []string) (subtitles []string, media []string, err error) {
	for _, arg := range args {
		abs, err := filepath.Abs(strings.TrimSpace(arg))
		if err != nil {
			return nil, nil, fmt.Errorf("resolve %q: %w", arg, err)
		}
		info, err := os.Lstat(abs)
		if err != nil {
			return nil, nil, fmt.Errorf("stat %q: %w", arg, err)
		}
		switch {
		case info.Mode()&os.ModeSymlink != 0:
			continue
		case info.IsDir():
			walkErr := filepath.WalkDir(abs, func(path string, entry fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if entry.Type()&os.ModeSymlink != 0 || entry.IsDir() {
					return nil
				}
				switch {
				case isSubtitleFile(path):
					subtitles = append(subtitles, path)
				case isMediaFile(path):
					media = append(media, path)
				}
				return nil
			})
			if walkErr != nil {
				return nil, nil, fmt.Errorf("walk %q: %w", arg, walkErr)
			}
		case isSubtitleFile(abs):
			subtitles = append(subtitles, abs)
		case isMediaFile(abs):
			media = append(media, abs)
		default:
			return nil, nil, fmt.Errorf("%q is neither a subtitle nor a media file", arg)
		}
	}
	return subtitles, media, nil
}

// extractionDir returns a stable per-source directory under the cache for
// extracted subtitle streams. The name stays readable for debugging while
// the hash keeps distinct sources from colliding.
func extractionDir(cacheDir, mediaPath string) string {
	stem := strings.TrimSuffix(filepath.Base(mediaPath), filepath.Ext(mediaPath))
	stem = textutil.TruncateRunes(textutil.SanitizeFileName(stem), 48)
	h := fnv.New32a()
	_, _ = h.Write([]byte(mediaPath))
	return filepath.Join(cacheDir, "extracted", fmt.Sprintf("%s-%08x", stem, h.Sum32()))
}
