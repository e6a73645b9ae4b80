package session

import "github.com/lgbarn/chessai-client/internal/gamelog"

// State is a read-only view of a session, shaped for JSON clients.
type State struct {
	ID        string          `json:"id"`
	FEN       string          `json:"fen"`
	Side      string          `json:"side"`
	Player    string          `json:"player"`
	Depth     int             `json:"depth"`
	Highlight []gamelog.Coord `json:"highlight"`
	History   []string        `json:"history"`
	CanUndo   bool            `json:"canUndo"`
}

// State returns the current view of the session.
func (s *Session) State() State {
	highlight := make([]gamelog.Coord, 0, len(s.lastMove))
	for _, sq := range s.lastMove {
		highlight = append(highlight, gamelog.CoordOf(sq))
	}
	return State{
		ID:        s.id.String(),
		FEN:       s.Snapshot(),
		Side:      s.board.SideToMove.String(),
		Player:    s.player.String(),
		Depth:     s.depth,
		Highlight: highlight,
		History:   s.history.Snapshots(),
		CanUndo:   s.CanUndo(),
	}
}
