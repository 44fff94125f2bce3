// Package replay plays the steps of a script through the dispatcher and the
// command stack, recording a diagnostic for every step that changes nothing.
package replay

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"scene-inspector/command"
	"scene-inspector/dispatch"
	"scene-inspector/inspector"
	"scene-inspector/internal/diagnostic"
	"scene-inspector/internal/match"
	"scene-inspector/internal/script"
	"scene-inspector/scene"
)

// Result summarizes a replay.
type Result struct {
	Applied     int
	Declined    int
	Undone      int
	Diagnostics diagnostic.Diagnostics
}

// Runner replays scripts against their own scene.
type Runner struct {
	router *dispatch.Router
	stack  *command.Stack
	logger *slog.Logger
}

// NewRunner creates a Runner. A nil logger discards output.
func NewRunner(stack *command.Stack, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Runner{
		router: dispatch.NewRouter(logger),
		stack:  stack,
		logger: logger,
	}
}

// Run plays every step of s, then undoes the last undo applied commands.
// Steps run one after the other; each node snapshot is read right before its
// step is dispatched.
func (r *Runner) Run(s *script.Script, undo int) Result {
	var res Result

	for _, step := range s.Steps {
		r.step(s.Graph, step, &res)
	}

	for range undo {
		err := r.stack.Undo(s.Graph)
		if errors.Is(err, command.ErrNothingToUndo) {
			break
		}

		if err != nil {
			res.Diagnostics.AddError(diagnostic.CodeUndo, err.Error(), "", "")
			break
		}

		res.Undone++
	}

	r.logger.Info("replay finished",
		slog.Int("applied", res.Applied),
		slog.Int("declined", res.Declined),
		slog.Int("undone", res.Undone),
	)

	return res
}

func (r *Runner) step(g *scene.Graph, step script.Step, res *Result) {
	event := step.Event.String()

	if step.Target.IsNone() {
		res.Declined++
		res.Diagnostics.AddWarning(diagnostic.CodeUnknownTarget, "no node with this id", step.TargetID, event)

		return
	}

	node, ok := g.Node(step.Target)
	if !ok {
		res.Declined++
		res.Diagnostics.AddWarning(diagnostic.CodeStaleTarget,
			fmt.Sprintf("handle %s no longer resolves", step.Target), step.TargetID, event)

		return
	}

	cmd, ok := r.router.Dispatch(step.Event, step.Target, node)
	if !ok {
		res.Declined++
		res.Diagnostics.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticInfo,
			Code:        diagnostic.CodeNotApplicable,
			Message:     fmt.Sprintf("no editable field for %s", node.Kind()),
			Target:      step.TargetID,
			Event:       event,
			Suggestions: suggest(step.Event, node.Kind()),
		})

		return
	}

	if err := r.stack.Do(g, cmd); err != nil {
		res.Diagnostics.AddError(diagnostic.CodeExecute, err.Error(), step.TargetID, event)

		return
	}

	res.Applied++
}

// suggest proposes top-level field names close to the one the event used.
// Only the outermost name is checked: deeper names depend on which composite
// the outer one selects.
func suggest(ev inspector.ChangeEvent, kind scene.KindEnum) []string {
	return match.Names(match.Suggest(ev.Name, scene.FieldNames(kind), match.DefaultThreshold))
}
