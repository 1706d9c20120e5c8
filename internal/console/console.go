// Package console is the terminal front end: one line per action, the table
// redrawn after each call into the engine.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"blackjack/internal/game"
	"blackjack/internal/player"
	"blackjack/internal/view"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// LocalPlayer is the scoreboard row used by the terminal.
const LocalPlayer int64 = 0

var (
	win   = color.New(color.FgGreen, color.Bold)
	lose  = color.New(color.FgRed, color.Bold)
	tie   = color.New(color.FgYellow, color.Bold)
	faint = color.New(color.Faint)
	warn  = color.New(color.FgYellow)
)

type Shell struct {
	engine  *game.Engine
	players player.Repository
	in      *bufio.Scanner
	out     io.Writer
	log     logrus.FieldLogger

	// Prompt prints "> " before each read; off when stdin is not a terminal.
	Prompt bool
}

func New(engine *game.Engine, players player.Repository, in io.Reader, out io.Writer, log logrus.FieldLogger) *Shell {
	return &Shell{
		engine:  engine,
		players: players,
		in:      bufio.NewScanner(in),
		out:     out,
		log:     log,
	}
}

// Run reads commands until quit, end of input or ctx is done. A cancelled
// ctx returns at once, even while waiting for a line.
func (s *Shell) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go s.read(ctx, lines, readErr)

	s.help()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.Prompt {
			fmt.Fprint(s.out, "> ")
		}

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return <-readErr
			}
			line = l
		}

		cmd := strings.ToLower(strings.TrimSpace(line))
		switch cmd {
		case "":
			continue
		case "d", "deal":
			s.deal()
		case "h", "hit":
			s.hit()
		case "s", "stand":
			s.stand()
		case "t", "stats":
			s.stats()
		case "?", "help":
			s.help()
		case "q", "quit", "exit":
			fmt.Fprintln(s.out, "Bye!")
			return nil
		default:
			warn.Fprintf(s.out, "Unknown command %q, type help.\n", cmd)
		}
	}
}

// read feeds lines to Run. A Scan blocked on input outlives a cancelled Run;
// the line it eventually returns is dropped.
func (s *Shell) read(ctx context.Context, lines chan<- string, readErr chan<- error) {
	defer close(lines)

	for s.in.Scan() {
		select {
		case lines <- s.in.Text():
		case <-ctx.Done():
			readErr <- nil
			return
		}
	}
	readErr <- s.in.Err()
}

func (s *Shell) help() {
	fmt.Fprintln(s.out, "Simple Blackjack")
	faint.Fprintln(s.out, "Commands: deal (d), hit (h), stand (s), stats (t), quit (q)")
}

func (s *Shell) deal() {
	if err := s.engine.Deal(); err != nil {
		s.fail(err)
		return
	}
	s.render()
}

func (s *Shell) hit() {
	if !s.engine.CanAct() {
		s.unavailable()
		return
	}

	res, err := s.engine.Hit()
	if err != nil {
		s.fail(err)
		return
	}
	if res.Resolution != nil {
		s.resolved(*res.Resolution)
		return
	}
	s.render()
}

func (s *Shell) stand() {
	if !s.engine.CanAct() {
		s.unavailable()
		return
	}

	res, err := s.engine.Stand()
	if err != nil {
		s.fail(err)
		return
	}
	s.resolved(res)
}

func (s *Shell) stats() {
	if s.players == nil {
		return
	}
	p, err := s.players.GetOrCreate(LocalPlayer)
	if err != nil {
		s.log.WithError(err).Error("Failed to load stats")
		warn.Fprintln(s.out, "Stats are not available.")
		return
	}
	fmt.Fprintln(s.out, view.Stats(p))
}

func (s *Shell) render() {
	fmt.Fprintln(s.out, view.Table(s.engine.PlayerHand(), s.engine.DealerHand(), false))
	faint.Fprintf(s.out, "%d cards left in the deck\n", s.engine.Remaining())
	if s.engine.CanAct() {
		faint.Fprintln(s.out, "hit or stand?")
	} else {
		faint.Fprintln(s.out, "deal to start a new round")
	}
}

func (s *Shell) resolved(r game.Resolution) {
	fmt.Fprintln(s.out, view.Table(r.PlayerHand, r.DealerHand, true))

	c := tie
	switch r.Outcome {
	case game.Win:
		c = win
	case game.Lose:
		c = lose
	}
	c.Fprintln(s.out, view.Message(r))

	if s.players != nil {
		if _, err := s.players.Record(LocalPlayer, r.Outcome); err != nil {
			s.log.WithError(err).Error("Failed to record round")
		}
	}
	faint.Fprintln(s.out, "deal to start a new round")
}

func (s *Shell) unavailable() {
	if s.engine.Phase() == game.PhaseNotStarted {
		warn.Fprintln(s.out, "No round in progress, deal first.")
		return
	}
	warn.Fprintln(s.out, "You have 21, deal to start a new round.")
}

func (s *Shell) fail(err error) {
	s.log.WithError(err).Warn("Action failed")
	if errors.Is(err, game.ErrEmptyDeck) {
		warn.Fprintln(s.out, "The deck is out of cards.")
		return
	}
	warn.Fprintf(s.out, "Error: %v\n", err)
}
