package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

// ErrPersistence wraps every failure of the backing database.
var ErrPersistence = errors.New("score store unavailable")

// persistError carries the database error as its cause and matches
// ErrPersistence under errors.Is.
type persistError struct {
	cause error
}

func (e *persistError) Error() string { return ErrPersistence.Error() + ": " + e.cause.Error() }

func (e *persistError) Unwrap() error { return e.cause }

func (e *persistError) Cause() error { return e.cause }

func (e *persistError) Is(target error) bool { return target == ErrPersistence }

func persistErr(err error, format string, args ...interface{}) error {
	return &persistError{cause: errors.Wrapf(err, format, args...)}
}

// TimeLayout is how timestamps are written to the date column.
const TimeLayout = "2006-01-02 15:04:05"

// DefaultLimit is the leaderboard size used when TopN gets n <= 0.
const DefaultLimit = 100

// Record is one completed game.
type Record struct {
	PlayerName string
	Score      int
	Timestamp  time.Time
}

// Rank is the score of the most recent record and its 1-based position.
type Rank struct {
	Score int
	Rank  int
}

// Store is an append-only score table in a SQLite file.
type Store struct {
	db     *sql.DB
	player string
	clock  clock.Clock
	log    *zap.Logger
}

// Option customizes a Store.
type Option func(*Store)

// WithClock replaces the wall clock used for record timestamps.
func WithClock(c clock.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithLogger sets the logger used for non-fatal setup warnings.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.log = l }
}

// Open opens (creating if needed) the database at path and initializes it.
// Every record is attributed to player.
func Open(ctx context.Context, path, player string, opts ...Option) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, persistErr(err, "create db directory")
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, persistErr(err, "open %s", path)
	}
	// One connection keeps writes serialized.
	db.SetMaxOpenConns(1)

	s := &Store{
		db:     db,
		player: player,
		clock:  clock.New(),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000;"); err != nil {
		s.log.Warn("couldn't set busy timeout", zap.Error(err))
	}

	if err := s.Initialize(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Initialize creates the scores table if it doesn't exist. Safe to call
// repeatedly.
func (s *Store) Initialize(ctx context.Context) error {
	const createTable = `CREATE TABLE IF NOT EXISTS scores (
		player_name TEXT,
		score INTEGER,
		date TEXT
	);`
	if _, err := s.db.ExecContext(ctx, createTable); err != nil {
		return persistErr(err, "create table")
	}
	return nil
}

// Save appends a record stamped with the current local time.
func (s *Store) Save(ctx context.Context, score int) error {
	if score < 0 {
		return errors.Errorf("negative score %d", score)
	}
	now := s.clock.Now().Local().Format(TimeLayout)
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO scores (player_name, score, date) VALUES (?, ?, ?)",
		s.player, score, now)
	if err != nil {
		return persistErr(err, "save score %d", score)
	}
	return nil
}

// TopN returns up to n records by score, highest first. Equal scores keep
// insertion order.
func (s *Store) TopN(ctx context.Context, n int) ([]Record, error) {
	if n <= 0 {
		n = DefaultLimit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT player_name, score, date
		FROM scores
		ORDER BY score DESC, rowid ASC
		LIMIT ?`, n)
	if err != nil {
		return nil, persistErr(err, "query leaderboard")
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			r    Record
			date string
		)
		if err := rows.Scan(&r.PlayerName, &r.Score, &date); err != nil {
			return nil, persistErr(err, "scan leaderboard row")
		}
		r.Timestamp, err = time.ParseInLocation(TimeLayout, date, time.Local)
		if err != nil {
			s.log.Warn("unparseable score date", zap.String("date", date), zap.Error(err))
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, persistErr(err, "read leaderboard")
	}
	return records, nil
}

// LastRank returns the most recently inserted score and its rank, counted as
// the number of strictly greater scores plus one. ok is false on an empty
// table.
func (s *Store) LastRank(ctx context.Context) (rank Rank, ok bool, err error) {
	row := s.db.QueryRowContext(ctx, "SELECT score FROM scores ORDER BY rowid DESC LIMIT 1")
	if err := row.Scan(&rank.Score); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Rank{}, false, nil
		}
		return Rank{}, false, persistErr(err, "query last score")
	}

	row = s.db.QueryRowContext(ctx, "SELECT COUNT(*) + 1 FROM scores WHERE score > ?", rank.Score)
	if err := row.Scan(&rank.Rank); err != nil {
		return Rank{}, false, persistErr(err, "rank score %d", rank.Score)
	}
	return rank, true, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Summary aggregates every stored game.
type Summary struct {
	Games   int
	Average float64
	Median  float64
	Max     int
	Min     int
}

// Summarize computes the aggregate over all records. The zero Summary is
// returned for an empty table.
func (s *Store) Summarize(ctx context.Context) (Summary, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT score FROM scores ORDER BY score ASC")
	if err != nil {
		return Summary{}, persistErr(err, "query scores")
	}
	defer rows.Close()

	var scores []int
	for rows.Next() {
		var score int
		if err := rows.Scan(&score); err != nil {
			return Summary{}, persistErr(err, "scan score")
		}
		scores = append(scores, score)
	}
	if err := rows.Err(); err != nil {
		return Summary{}, persistErr(err, "read scores")
	}
	return summarize(scores), nil
}

// summarize expects scores in ascending order.
func summarize(scores []int) Summary {
	n := len(scores)
	if n == 0 {
		return Summary{}
	}
	total := 0
	for _, score := range scores {
		total += score
	}

	median := float64(scores[n/2])
	if n%2 == 0 {
		median = float64(scores[n/2-1]+scores[n/2]) / 2
	}
	return Summary{
		Games:   n,
		Average: float64(total) / float64(n),
		Median:  median,
		Max:     scores[n-1],
		Min:     scores[0],
	}
}
