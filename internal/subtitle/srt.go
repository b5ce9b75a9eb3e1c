package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// ParseSRTFile reads an SRT file from disk.
func ParseSRTFile(path string) ([]RawCue, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open srt: %w", err)
	}
	defer file.Close()
	cues, err := ParseSRT(file)
	if err != nil {
		return nil, fmt.Errorf("parse srt %s: %w", path, err)
	}
	return cues, nil
}

// ParseSRT parses SubRip cue blocks: a numeric index line, a timing line,
// then one or more text lines terminated by a blank line. CRLF input and
// period millisecond separators are tolerated. Blocks with an unparsable
// index or timing line abort the parse; empty text blocks are kept so the
// normalizer can count them as dropped.
func ParseSRT(r io.Reader) ([]RawCue, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var cues []RawCue
	for {
		cue, ok, err := scanCue(scanner)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		cues = append(cues, cue)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read srt: %w", err)
	}
	return cues, nil
}

func scanCue(scanner *bufio.Scanner) (RawCue, bool, error) {
	// Skip blank separators, including the UTF-8 BOM on the first block.
	var index string
	for scanner.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\uFEFF"))
		if line != "" {
			index = line
			break
		}
	}
	if index == "" {
		return RawCue{}, false, nil
	}
	if _, err := strconv.Atoi(index); err != nil {
		return RawCue{}, false, fmt.Errorf("invalid cue index %q", index)
	}

	if !scanner.Scan() {
		return RawCue{}, false, fmt.Errorf("cue %s: missing timing line", index)
	}
	timing := strings.TrimSpace(scanner.Text())
	parts := strings.Split(timing, "-->")
	if len(parts) != 2 {
		return RawCue{}, false, fmt.Errorf("cue %s: invalid timing line %q", index, timing)
	}
	start, err := ParseTimestamp(parts[0])
	if err != nil {
		return RawCue{}, false, fmt.Errorf("cue %s: %w", index, err)
	}
	end, err := ParseTimestamp(parts[1])
	if err != nil {
		return RawCue{}, false, fmt.Errorf("cue %s: %w", index, err)
	}

	var text []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			break
		}
		text = append(text, line)
	}
	return RawCue{Start: start, End: end, Text: strings.Join(text, "\n")}, true, nil
}

// ParseTimestamp parses an SRT timestamp (HH:MM:SS,mmm). Periods are
// normalized to commas; some encoders emit them.
func ParseTimestamp(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	if hours < 0 || minutes < 0 || seconds < 0 || millis < 0 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond, nil
}

// FormatTimestamp renders a duration as an SRT timestamp (HH:MM:SS,mmm).
func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	d -= seconds * time.Second
	millis := d / time.Millisecond
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}
