package clipfind

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"subclip/internal/subtitle"
)

// PatternKind selects how PatternSpec.Text is interpreted.
type PatternKind string

const (
	PatternLiteral PatternKind = "literal"
	PatternRegex   PatternKind = "regex"
)

// PatternSpec describes what to search for in cue text.
type PatternSpec struct {
	Kind          PatternKind
	Text          string
	CaseSensitive bool
}

// MatchSpan records that a cue matched the pattern. A cue contributes at
// most one span: clips are cut at cue granularity, so sub-string offsets
// within a cue carry no information the interval builder could use.
type MatchSpan struct {
	CueIndex int
	Text     string
	Kind     PatternKind
}

// Matcher evaluates a compiled pattern against cues. Construction resolves
// the literal/regex variant once; matching never re-inspects the kind at
// runtime beyond a branch on the prepared state. Safe for concurrent use.
type Matcher struct {
	kind    PatternKind
	fold    bool
	literal string
	re      *regexp.Regexp
}

// NewMatcher compiles a pattern spec. It fails with ErrInvalidPattern when
// the text is empty, the kind is unknown, or a regex does not compile. This
// is the only pattern-related failure and happens once, before any file is
// processed.
//
// Case-insensitive literal patterns use a Unicode case fold on both sides;
// case-insensitive regexes compile with the (?i) flag, because folding the
// pattern source would rewrite escape classes like \W or \P{L}.
func NewMatcher(spec PatternSpec) (*Matcher, error) {
	text := spec.Text
	if text == "" {
		return nil, fmt.Errorf("%w: empty pattern text", ErrInvalidPattern)
	}
	fold := !spec.CaseSensitive
	switch spec.Kind {
	case PatternLiteral:
		if fold {
			text = foldCase(text)
		}
		return &Matcher{kind: PatternLiteral, fold: fold, literal: text}, nil
	case PatternRegex:
		if fold {
			text = "(?i)" + text
		}
		re, err := regexp.Compile(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
		}
		return &Matcher{kind: PatternRegex, re: re}, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidPattern, spec.Kind)
	}
}

// Match reports whether the cue's text matches, returning the span when it
// does.
func (m *Matcher) Match(cue subtitle.Cue) (MatchSpan, bool) {
	text := cue.Text
	if m.fold {
		text = foldCase(text)
	}
	switch m.kind {
	case PatternLiteral:
		if !strings.Contains(text, m.literal) {
			return MatchSpan{}, false
		}
		return MatchSpan{CueIndex: cue.Index, Text: m.literal, Kind: PatternLiteral}, true
	default:
		loc := m.re.FindStringIndex(text)
		if loc == nil {
			return MatchSpan{}, false
		}
		return MatchSpan{CueIndex: cue.Index, Text: text[loc[0]:loc[1]], Kind: PatternRegex}, true
	}
}

// matchCues collects the spans for every matching cue, in cue order.
func matchCues(m *Matcher, cues []subtitle.Cue) []MatchSpan {
	var spans []MatchSpan
	for _, cue := range cues {
		if span, ok := m.Match(cue); ok {
			spans = append(spans, span)
		}
	}
	return spans
}

// foldCase applies a locale-independent Unicode case fold, so "STRASSE"
// and "straße" compare equal regardless of process locale.
func foldCase(s string) string {
	return cases.Fold().String(s)
}
