// Package logging constructs the slog loggers subclip uses and provides
// small attribute helpers so callers do not import log/slog directly for
// common fields.
package logging
