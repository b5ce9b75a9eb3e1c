package cuecache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"subclip/internal/clipfind"
	"subclip/internal/logging"
	"subclip/internal/subtitle"
)

const schema = `
CREATE TABLE IF NOT EXISTS cue_cache (
	path TEXT PRIMARY KEY,
	size INTEGER NOT NULL,
	mtime_ns INTEGER NOT NULL,
	cues TEXT NOT NULL,
	indexed_at TEXT NOT NULL
);
`

// Store manages cue persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the cache database.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// cachedCue is the stable serialized form; durations are stored as
// millisecond counts so the JSON stays readable and precise.
type cachedCue struct {
	StartMS int64  `json:"start_ms"`
	EndMS   int64  `json:"end_ms"`
	Text    string `json:"text"`
}

// Lookup returns cached cues for the file when its size and mtime still
// match the stored entry.
func (s *Store) Lookup(ctx context.Context, file string) ([]subtitle.RawCue, bool, error) {
	info, err := os.Stat(file)
	if err != nil {
		return nil, false, fmt.Errorf("stat %s: %w", file, err)
	}

	var size, mtimeNS int64
	var payload string
	row := s.db.QueryRowContext(ctx, `SELECT size, mtime_ns, cues FROM cue_cache WHERE path = ?`, file)
	if err := row.Scan(&size, &mtimeNS, &payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("query cue cache: %w", err)
	}
	if size != info.Size() || mtimeNS != info.ModTime().UnixNano() {
		return nil, false, nil
	}

	var cached []cachedCue
	if err := json.Unmarshal([]byte(payload), &cached); err != nil {
		return nil, false, fmt.Errorf("decode cached cues for %s: %w", file, err)
	}
	cues := make([]subtitle.RawCue, len(cached))
	for i, c := range cached {
		cues[i] = subtitle.RawCue{
			Start: time.Duration(c.StartMS) * time.Millisecond,
			End:   time.Duration(c.EndMS) * time.Millisecond,
			Text:  c.Text,
		}
	}
	return cues, true, nil
}

// Put stores the file's cues along with its current size and mtime.
func (s *Store) Put(ctx context.Context, file string, cues []subtitle.RawCue) error {
	info, err := os.Stat(file)
	if err != nil {
		return fmt.Errorf("stat %s: %w", file, err)
	}

	cached := make([]cachedCue, len(cues))
	for i, cue := range cues {
		cached[i] = cachedCue{
			StartMS: cue.Start.Milliseconds(),
			EndMS:   cue.End.Milliseconds(),
			Text:    cue.Text,
		}
	}
	payload, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("encode cues for %s: %w", file, err)
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO cue_cache (path, size, mtime_ns, cues, indexed_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(path) DO UPDATE SET
	size = excluded.size,
	mtime_ns = excluded.mtime_ns,
	cues = excluded.cues,
	indexed_at = excluded.indexed_at`,
		file, info.Size(), info.ModTime().UnixNano(), string(payload),
		time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("store cues for %s: %w", file, err)
	}
	return nil
}

// Prune removes entries whose files no longer exist and returns the count.
func (s *Store) Prune(ctx context.Context) (int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT path FROM cue_cache`)
	if err != nil {
		return 0, fmt.Errorf("list cue cache: %w", err)
	}
	var stale []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan cue cache row: %w", err)
		}
		if _, err := os.Stat(path); err != nil {
			stale = append(stale, path)
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, fmt.Errorf("iterate cue cache: %w", err)
	}
	rows.Close()

	for _, path := range stale {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM cue_cache WHERE path = ?`, path); err != nil {
			return 0, fmt.Errorf("delete cue cache entry %s: %w", path, err)
		}
	}
	return len(stale), nil
}

// Source wraps a cue source with cache lookups. Cache failures degrade to
// the fallback parse; they never fail the file.
func (s *Store) Source(logger *slog.Logger, fallback clipfind.CueSource) clipfind.CueSource {
	if logger == nil {
		logger = logging.NewNop()
	}
	return func(ctx context.Context, file string) ([]subtitle.RawCue, error) {
		cues, hit, err := s.Lookup(ctx, file)
		if err != nil {
			logger.Debug("cue cache lookup failed", logging.String("file", file), logging.Error(err))
		} else if hit {
			return cues, nil
		}
		cues, err = fallback(ctx, file)
		if err != nil {
			return nil, err
		}
		if err := s.Put(ctx, file, cues); err != nil {
			logger.Debug("cue cache store failed", logging.String("file", file), logging.Error(err))
		}
		return cues, nil
	}
}
