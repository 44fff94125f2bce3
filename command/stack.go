package command

import (
	"fmt"
	"io"
	"log/slog"

	"scene-inspector/scene"
)

// Stack owns executed commands for undo and redo. Commands below the top are
// applied, commands above it are reverted and available for redo.
type Stack struct {
	commands []Command
	top      int
	limit    int
	logger   *slog.Logger
}

// StackOption configures a Stack.
type StackOption func(*Stack)

// WithLimit keeps at most n applied commands; the oldest are dropped first.
// Zero or less means unlimited.
func WithLimit(n int) StackOption {
	return func(s *Stack) {
		s.limit = n
	}
}

// WithLogger sets the logger for do, undo and redo. Nil keeps the default.
func WithLogger(logger *slog.Logger) StackOption {
	return func(s *Stack) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStack creates an empty stack.
func NewStack(opts ...StackOption) *Stack {
	s := &Stack{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Do executes c against g and pushes it, discarding anything that could have
// been redone. A command that fails to execute is not pushed.
func (s *Stack) Do(g *scene.Graph, c Command) error {
	if err := c.Execute(g); err != nil {
		return fmt.Errorf("execute: %w", err)
	}

	for i := s.top; i < len(s.commands); i++ {
		s.commands[i] = nil
	}

	s.commands = append(s.commands[:s.top], c)
	s.top++

	if s.limit > 0 && s.top > s.limit {
		drop := s.top - s.limit
		s.commands = append(s.commands[:0], s.commands[drop:]...)
		s.top -= drop
	}

	s.logger.Debug("command executed",
		slog.String("command", c.Name()),
		slog.String("target", c.Target().String()),
		slog.String("field", c.Field().String()),
		slog.Any("value", c.Value()),
	)

	return nil
}

// Undo reverts the most recently applied command. On failure the command
// stays applied.
func (s *Stack) Undo(g *scene.Graph) error {
	if s.top == 0 {
		return ErrNothingToUndo
	}

	c := s.commands[s.top-1]
	if err := c.Revert(g); err != nil {
		return fmt.Errorf("undo: %w", err)
	}

	s.top--

	s.logger.Debug("command reverted",
		slog.String("command", c.Name()),
		slog.String("target", c.Target().String()),
		slog.String("field", c.Field().String()),
	)

	return nil
}

// Redo re-executes the most recently undone command.
func (s *Stack) Redo(g *scene.Graph) error {
	if s.top == len(s.commands) {
		return ErrNothingToRedo
	}

	c := s.commands[s.top]
	if err := c.Execute(g); err != nil {
		return fmt.Errorf("redo: %w", err)
	}

	s.top++

	s.logger.Debug("command redone",
		slog.String("command", c.Name()),
		slog.String("target", c.Target().String()),
		slog.String("field", c.Field().String()),
	)

	return nil
}

// Clear drops every command without touching the scene.
func (s *Stack) Clear() {
	clear(s.commands)
	s.commands = s.commands[:0]
	s.top = 0
}

// Len returns the number of commands held, applied or not.
func (s *Stack) Len() int {
	return len(s.commands)
}

// CanUndo reports whether a command is applied.
func (s *Stack) CanUndo() bool { return s.top > 0 }
// CanRedo reports whether a reverted command can be redone.
func (s *Stack) CanRedo() bool { return s.top < len(s.commands) }

// Applied returns the applied commands, oldest first.
func (s *Stack) Applied() []Command {
	return append([]Command(nil), s.commands[:s.top]...)
}
