package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessai-client/internal/chess"
	"github.com/lgbarn/chessai-client/internal/render"
	"github.com/lgbarn/chessai-client/internal/session"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("wrong number of arguments")
)

const helpText = `Commands:
  e2e4 | move e2 e4   play a move
  ai                  let the engine move
  undo                take back the last move
  depth N             set engine search depth (1-7)
  flip                view the board from the other side
  board               redraw the board
  fen                 print the current position
  help                show this text
  quit                leave the game
`

// command is one parsed input line.
type command struct {
	name string
	args []string
}

// arity lists how many arguments each command takes.
var arity = map[string]int{
	"move":  2,
	"ai":    0,
	"undo":  0,
	"depth": 1,
	"flip":  0,
	"board": 0,
	"fen":   0,
	"help":  0,
	"quit":  0,
}

// parseCommand splits a line into a command. A bare four-character
// coordinate pair such as "e2e4" is shorthand for move.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return command{}, nil
	}

	name, args := fields[0], fields[1:]
	if name == "exit" || name == "q" {
		name = "quit"
	}
	if len(fields) == 1 && len(name) == 4 {
		if _, err := chess.ParseSquare(name[:2]); err == nil {
			if _, err := chess.ParseSquare(name[2:]); err == nil {
				return command{name: "move", args: []string{name[:2], name[2:]}}, nil
			}
		}
	}

	n, ok := arity[name]
	if !ok {
		return command{}, fmt.Errorf("%q: %w", name, errUnknownCommand)
	}
	if len(args) != n {
		return command{}, fmt.Errorf("%s takes %d: %w", name, n, errUsage)
	}
	return command{name: name, args: args}, nil
}

// client drives a session from line-oriented input.
type client struct {
	game      *session.Session
	view      chess.Colour
	unicode   bool
	autoReply bool
	out       io.Writer
	log       zerolog.Logger
}

func newClient(game *session.Session, out io.Writer, log zerolog.Logger) *client {
	return &client{
		game: game,
		view: game.Player(),
		out:  out,
		log:  log,
	}
}

// run reads commands from in until quit or end of input.
func (c *client) run(in io.Reader) error {
	c.show()
	if err := c.reply(); err != nil {
		c.report(err)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			return scanner.Err()
		}

		cmd, err := parseCommand(scanner.Text())
		if err != nil {
			c.report(err)
			continue
		}
		if cmd.name == "quit" {
			return nil
		}
		if err := c.execute(cmd); err != nil {
			c.report(err)
		}
	}
}

// execute carries out one command.
func (c *client) execute(cmd command) error {
	switch cmd.name {
	case "":
		return nil

	case "move":
		from, err := chess.ParseSquare(cmd.args[0])
		if err != nil {
			return err
		}
		to, err := chess.ParseSquare(cmd.args[1])
		if err != nil {
			return err
		}
		if err := c.game.Move(from, to); err != nil {
			return err
		}
		c.show()
		return c.reply()

	case "ai":
		if _, err := c.game.EngineMove(); err != nil {
			return err
		}
		c.show()

	case "undo":
		if err := c.game.Undo(); err != nil {
			return err
		}
		c.show()

	case "depth":
		n, err := strconv.Atoi(cmd.args[0])
		if err != nil {
			return fmt.Errorf("depth %q: %w", cmd.args[0], errUsage)
		}
		if err := c.game.SetDepth(n); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "depth set to %d\n", n)

	case "flip":
		c.view = c.view.Opposite()
		c.show()

	case "board":
		c.show()

	case "fen":
		fmt.Fprintln(c.out, c.game.Snapshot())

	case "help":
		fmt.Fprint(c.out, helpText)
	}
	return nil
}

// reply lets the engine move when it is its turn.
func (c *client) reply() error {
	if !c.autoReply || c.game.SideToMove() == c.game.Player() {
		return nil
	}
	fmt.Fprintln(c.out, "engine thinking...")
	res, err := c.game.EngineMove()
	if err != nil {
		return err
	}
	if res.Move != nil {
		fmt.Fprintf(c.out, "engine plays %s\n", res.Move)
	}
	c.show()
	return nil
}

func (c *client) show() {
	fmt.Fprint(c.out, render.Board(c.game.Board(), render.Options{
		ViewFrom:  c.view,
		Highlight: c.game.LastMove(),
		Unicode:   c.unicode,
	}))
	fmt.Fprintln(c.out, render.Status(c.game.SideToMove(), c.game.Depth(), c.game.Plies()))
}

func (c *client) report(err error) {
	c.log.Debug().Err(err).Msg("command failed")
	fmt.Fprintf(c.out, "error: %v\n", err)
}
