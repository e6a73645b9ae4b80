// Package history keeps the stack of position snapshots used for undo.
package history

import "github.com/lgbarn/chessai-client/internal/errors"

// Stack is a LIFO of notation snapshots. Snapshots are opaque strings and
// are never modified once pushed.
type Stack struct {
	snapshots []string
}

// New returns an empty stack, optionally seeded with snapshots oldest first.
func New(snapshots ...string) *Stack {
	s := &Stack{}
	s.snapshots = append(s.snapshots, snapshots...)
	return s
}

// Push appends a snapshot.
func (s *Stack) Push(snapshot string) {
	s.snapshots = append(s.snapshots, snapshot)
}

// Pop removes and returns the most recent snapshot.
func (s *Stack) Pop() (string, error) {
	n := len(s.snapshots)
	if n == 0 {
		return "", errors.ErrEmptyHistory
	}
	snapshot := s.snapshots[n-1]
	s.snapshots[n-1] = ""
	s.snapshots = s.snapshots[:n-1]
	return snapshot, nil
}

// Peek returns the most recent snapshot without removing it.
func (s *Stack) Peek() (string, bool) {
	if len(s.snapshots) == 0 {
		return "", false
	}
	return s.snapshots[len(s.snapshots)-1], true
}

// Len returns the number of snapshots held.
func (s *Stack) Len() int {
	return len(s.snapshots)
}

// Empty reports whether there is nothing to undo.
func (s *Stack) Empty() bool {
	return len(s.snapshots) == 0
}

// Snapshots returns a copy of the stack contents, oldest first.
func (s *Stack) Snapshots() []string {
	out := make([]string, len(s.snapshots))
	copy(out, s.snapshots)
	return out
}
