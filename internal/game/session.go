// Package game drives a two-sided snakes and ladders match: a human player
// against a computer that follows the fixed policy table. The session owns
// all mutable match state; turn resolution is delegated to the engine.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/tui-ladders/internal/engine"
	"github.com/vovakirdan/tui-ladders/internal/policy"
	"github.com/vovakirdan/tui-ladders/internal/telemetry"
)

// ID identifies the game in storage and logs.
const ID = "ladders"

// Side is one of the two participants.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideComputer
)

// String returns the name shown as the winner.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "You"
	case SideComputer:
		return "Computer"
	default:
		return ""
	}
}

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SidePlayer {
		return SideComputer
	}
	return SidePlayer
}

var (
	// ErrGameOver is returned for a move after the match has been decided.
	ErrGameOver = errors.New("game: match is over")
	// ErrNotYourTurn is returned when a side moves out of turn.
	ErrNotYourTurn = errors.New("game: not this side's turn")
)

// Move records one resolved turn.
type Move struct {
	Side   Side
	Action engine.Action
	From   engine.Position
	Result engine.TurnResult
}

// State is a snapshot of the match.
type State struct {
	Player   engine.Position
	Computer engine.Position
	Turn     Side
	GameOver bool
	Winner   Side
	Message  string

	PlayerReward   int // Sum of rewards collected by the player
	ComputerReward int
	Turns          int   // Resolved turns, both sides
	Last           *Move // nil until the first move
}

// Position returns where side is resting.
func (s State) Position(side Side) engine.Position {
	if side == SideComputer {
		return s.Computer
	}
	return s.Player
}

// Session holds one match. It is not safe for concurrent use; the front end
// serializes turns.
type Session struct {
	board  engine.Board
	src    engine.Source
	choose func(engine.Position) engine.Action
	layout Layout
	logger *log.Logger
	tracer trace.Tracer
	state  State
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger turns are reported to at debug level.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTracer records a span per turn.
func WithTracer(t trace.Tracer) Option {
	return func(s *Session) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithPolicy replaces the computer's action table.
func WithPolicy(choose func(engine.Position) engine.Action) Option {
	return func(s *Session) {
		if choose != nil {
			s.choose = choose
		}
	}
}

// WithColumns sets how many cells the board shows per row.
func WithColumns(cols int) Option {
	return func(s *Session) {
		if cols > 0 {
			s.layout = NewLayout(s.board.Size, cols)
		}
	}
}

// NewSession creates a session on board, drawing moves from src, and resets it.
func NewSession(board engine.Board, src engine.Source, opts ...Option) *Session {
	s := &Session{
		board:  board,
		src:    src,
		choose: policy.Optimal,
		layout: NewLayout(board.Size, DefaultColumns),
		logger: log.New(io.Discard),
		tracer: telemetry.NoopTracer(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// Reset puts both pieces back on the start cell with the player to move.
func (s *Session) Reset() {
	s.state = State{
		Player:   engine.StartPosition,
		Computer: engine.StartPosition,
		Turn:     SidePlayer,
	}
	s.logger.Debug("session reset", "size", s.board.Size, "shortcuts", len(s.board.Shortcuts))
}

// Board returns the board the session is played on.
func (s *Session) Board() engine.Board {
	return s.board
}

// State returns a copy of the current match state.
func (s *Session) State() State {
	st := s.state
	if st.Last != nil {
		last := *st.Last
		st.Last = &last
	}
	return st
}

// PlayerMove plays action for the human side.
func (s *Session) PlayerMove(ctx context.Context, action engine.Action) (Move, error) {
	return s.play(ctx, SidePlayer, action)
}

// ComputerMove plays the policy's action for the computer side.
func (s *Session) ComputerMove(ctx context.Context) (Move, error) {
	return s.play(ctx, SideComputer, s.choose(s.state.Computer))
}

// play resolves one turn. The state is only changed once the engine succeeds.
func (s *Session) play(ctx context.Context, side Side, action engine.Action) (Move, error) {
	_, span := s.tracer.Start(ctx, "turn", trace.WithAttributes(
		attribute.String("side", side.String()),
		attribute.Int("action", int(action)),
	))
	defer span.End()

	if s.state.GameOver {
		span.SetStatus(codes.Error, ErrGameOver.Error())
		return Move{}, ErrGameOver
	}
	if s.state.Turn != side {
		span.SetStatus(codes.Error, ErrNotYourTurn.Error())
		return Move{}, fmt.Errorf("%w: %s", ErrNotYourTurn, side)
	}

	from := s.state.Position(side)
	res, err := engine.PlayTurn(s.src, from, action, s.board)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Move{}, err
	}

	move := Move{Side: side, Action: action, From: from, Result: res}
	s.apply(move)

	span.SetAttributes(
		attribute.Int("from", int(from)),
		attribute.Int("to", int(res.Next)),
		attribute.Int("reward", res.Reward),
		attribute.Bool("done", res.Done),
	)
	s.logger.Debug("turn",
		"side", side,
		"action", int(action),
		"from", from,
		"to", res.Next,
		"reward", res.Reward,
		"done", res.Done,
	)
	return move, nil
}

func (s *Session) apply(m Move) {
	st := &s.state
	switch m.Side {
	case SidePlayer:
		st.Player = m.Result.Next
		st.PlayerReward += m.Result.Reward
		st.Message = fmt.Sprintf("You chose %s and moved to %d (Reward: %d).",
			m.Action.Describe(), m.Result.Next, m.Result.Reward)
	case SideComputer:
		st.Computer = m.Result.Next
		st.ComputerReward += m.Result.Reward
		st.Message = fmt.Sprintf("Computer chose %s and moved to %d (Reward: %d).",
			m.Action, m.Result.Next, m.Result.Reward)
	}
	st.Turns++
	last := m
	st.Last = &last

	if m.Result.Done {
		st.GameOver = true
		st.Winner = m.Side
		st.Turn = SideNone
		return
	}
	st.Turn = m.Side.Other()
}
