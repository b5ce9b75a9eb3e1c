package clipfind

import "errors"

// Configuration errors are fatal and reported before any file work starts.
// Per-file failures never surface as returned errors; they are recorded on
// the file's report entry instead.
var (
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrInvalidPadding = errors.New("invalid padding")
)
