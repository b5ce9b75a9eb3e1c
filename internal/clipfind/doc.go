// Package clipfind locates clip intervals in subtitle cue sequences.
//
// Given a pattern and per-file cue sources, Find matches cue text, pads each
// matching cue into a candidate interval clamped to the file's bounds, and
// merges overlapping or touching candidates into a sorted, non-overlapping
// clip list per file. Files are processed concurrently by a fixed worker
// pool; the report is sorted by file identifier so output is deterministic
// regardless of completion order.
//
// The package never touches the filesystem or spawns processes. Cue parsing
// is supplied by the caller as a CueSource, which keeps the interval
// arithmetic testable without fixtures on disk.
package clipfind
