// Package gamelog persists the per-move log of a game as a JSON array.
package gamelog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lgbarn/chessai-client/internal/chess"
	"github.com/lgbarn/chessai-client/internal/errors"
)

// Coord is a square written as [file, rank].
type Coord [2]int

// CoordOf converts a square to its log form.
func CoordOf(sq chess.Square) Coord {
	return Coord{sq.File(), sq.Rank()}
}

// MoveRecord is the from/to pair of a logged move.
type MoveRecord struct {
	From Coord `json:"from"`
	To   Coord `json:"to"`
}

// Entry is one committed move: the resulting position and, when known, the
// squares that were moved between.
type Entry struct {
	Move    *MoveRecord `json:"move,omitempty"`
	FENCode string      `json:"fen_code"`
}

// NewEntry builds an entry; move may be nil.
func NewEntry(notation string, move *chess.Move) Entry {
	e := Entry{FENCode: notation}
	if move != nil {
		e.Move = &MoveRecord{From: CoordOf(move.From), To: CoordOf(move.To)}
	}
	return e
}

// Log is the in-memory list of entries bound to a file. Every change is
// followed by a full rewrite of the file.
type Log struct {
	path    string
	entries []Entry
}

// DefaultName returns the log name used when none is given.
func DefaultName(now time.Time) string {
	return fmt.Sprintf("game_%d_%d_%d_%d_%d_%d",
		now.Year(), int(now.Month()), now.Day(), now.Hour(), now.Minute(), now.Second())
}

// FileName appends ".json" unless name already ends with it.
func FileName(name string) string {
	if strings.HasSuffix(name, ".json") {
		return name
	}
	return name + ".json"
}

// New returns an empty log writing to dir/name.json.
func New(dir, name string) *Log {
	return &Log{path: filepath.Join(dir, FileName(name))}
}

// Open returns a log for dir/name.json, loading any entries already on disk.
// A missing file is not an error.
func Open(dir, name string) (*Log, error) {
	if err := EnsureDir(dir); err != nil {
		return nil, err
	}
	l := New(dir, name)
	if err := l.load(); err != nil {
		return nil, err
	}
	return l, nil
}

// load reads the file into memory.
func (l *Log) load() error {
	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "reading log %s", l.path)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return errors.Wrapf(err, "decoding log %s", l.path)
	}
	l.entries = entries
	return nil
}

// Path returns the file the log is written to.
func (l *Log) Path() string {
	return l.path
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the entries, oldest first.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Append records an entry and rewrites the file.
func (l *Log) Append(e Entry) error {
	l.entries = append(l.entries, e)
	return l.Save()
}

// Truncate drops the last entry and rewrites the file.
func (l *Log) Truncate() error {
	if len(l.entries) == 0 {
		return errors.ErrEmptyHistory
	}
	l.entries = l.entries[:len(l.entries)-1]
	return l.Save()
}

// Save overwrites the file with the current entries, creating the directory
// when needed.
func (l *Log) Save() error {
	if err := EnsureDir(filepath.Dir(l.path)); err != nil {
		return err
	}

	file, err := os.Create(l.path)
	if err != nil {
		return errors.Wrapf(err, "creating log %s", l.path)
	}
	defer file.Close()

	entries := l.entries
	if entries == nil {
		entries = []Entry{}
	}

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return errors.Wrapf(err, "writing log %s", l.path)
	}
	return file.Close()
}

// EnsureDir creates dir when it does not exist. A non-directory at that path
// is reported as ErrLogDirectory.
func EnsureDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "creating log directory %s", dir)
		}
		return nil
	case err != nil:
		return errors.Wrapf(err, "checking log directory %s", dir)
	case !info.IsDir():
		return fmt.Errorf("%s: %w", dir, errors.ErrLogDirectory)
	}
	return nil
}
