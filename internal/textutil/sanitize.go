package textutil

import "strings"

var lineBreakReplacer = strings.NewReplacer("\r\n", "___", "\n", "___", "\r", "___")

// SanitizeFileName replaces characters that are unsafe in POSIX filenames
// with underscores and flattens line breaks. A leading dash also becomes an
// underscore so the result can never look like a command flag.
func SanitizeFileName(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for i, r := range input {
		switch r {
		case '/', '*', '?', ':', '|', '\'', '"', 0:
			b.WriteByte('_')
		case '-':
			if i == 0 {
				b.WriteByte('_')
			} else {
				b.WriteRune(r)
			}
		default:
			b.WriteRune(r)
		}
	}
	return lineBreakReplacer.Replace(b.String())
}

// TruncateRunes shortens s to at most max runes.
func TruncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// FlattenLines renders multi-line cue text on one line for display.
func FlattenLines(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", " ↳ "), "\n", " ↳ ")
}
