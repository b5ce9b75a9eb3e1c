// Package cuecache persists parsed subtitle cues in SQLite so repeated
// searches over the same files skip the parse.
//
// Entries are keyed by file path and invalidated by file size and
// modification time, so an edited or re-extracted subtitle file is always
// re-parsed. The cache is transient storage; deleting the database only
// costs the next run a re-parse.
package cuecache
