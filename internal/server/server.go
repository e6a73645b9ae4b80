// Package server exposes a game session over HTTP and a websocket feed.
package server

import (
	"errors"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chessai-client/internal/chess"
	chesserrors "github.com/lgbarn/chessai-client/internal/errors"
	"github.com/lgbarn/chessai-client/internal/session"
)

// Server serialises all access to one session. Requests that arrive while an
// engine search is running wait for it to finish.
type Server struct {
	mu      sync.Mutex
	game    *session.Session
	clients *hub
	log     zerolog.Logger
}

// New wraps game.
func New(game *session.Session, log zerolog.Logger) *Server {
	return &Server{
		game:    game,
		clients: newHub(log),
		log:     log,
	}
}

// App builds the fiber application with all routes registered.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		s.log.Debug().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Msg("request")
		return err
	})

	api := app.Group("/api/game")
	api.Get("/", s.GetState)
	api.Post("/move", s.PostMove)
	api.Post("/ai", s.PostEngineMove)
	api.Post("/undo", s.PostUndo)
	api.Put("/depth", s.PutDepth)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/game", websocket.New(s.stream))

	return app
}

type moveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type depthRequest struct {
	Depth int `json:"depth"`
}

// GetState returns the current game state.
func (s *Server) GetState(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(s.game.State())
}

// PostMove plays a move for the human player.
func (s *Server) PostMove(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err)
	}
	from, err := chess.ParseSquare(req.From)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err)
	}
	to, err := chess.ParseSquare(req.To)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err)
	}

	return s.update(c, func() error {
		return s.game.Move(from, to)
	})
}

// PostEngineMove asks the engine to move. The request blocks until it does.
func (s *Server) PostEngineMove(c *fiber.Ctx) error {
	return s.update(c, func() error {
		_, err := s.game.EngineMove()
		return err
	})
}

// PostUndo takes back the last move.
func (s *Server) PostUndo(c *fiber.Ctx) error {
	return s.update(c, s.game.Undo)
}

// PutDepth changes the engine search depth.
func (s *Server) PutDepth(c *fiber.Ctx) error {
	var req depthRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err)
	}
	return s.update(c, func() error {
		return s.game.SetDepth(req.Depth)
	})
}

// update runs fn under the session lock, then answers with the new state.
// Broadcasting happens before the lock is released so clients see changes in
// commit order.
func (s *Server) update(c *fiber.Ctx, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(); err != nil {
		return errorResponse(c, statusFor(err), err)
	}
	state := s.game.State()
	s.clients.broadcast(state)
	return c.JSON(state)
}

// stream sends the state to a websocket client on connect and after every
// change until the client goes away. The client is registered and sent its
// first state under the session lock, so no change can fall between the two.
func (s *Server) stream(conn *websocket.Conn) {
	s.mu.Lock()
	s.clients.add(conn)
	err := s.clients.send(conn, s.game.State())
	s.mu.Unlock()
	defer s.clients.remove(conn)

	if err != nil {
		return
	}
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, chesserrors.ErrEmptyHistory):
		return fiber.StatusConflict
	case errors.Is(err, chesserrors.ErrEmptySquare),
		errors.Is(err, chesserrors.ErrInvalidSquare),
		errors.Is(err, chesserrors.ErrInvalidConfig):
		return fiber.StatusBadRequest
	case errors.Is(err, chesserrors.ErrEngine),
		errors.Is(err, chesserrors.ErrInvalidNotation):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
