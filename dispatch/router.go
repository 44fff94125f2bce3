package dispatch

import (
	"io"
	"log/slog"

	"scene-inspector/command"
	"scene-inspector/inspector"
	"scene-inspector/scene"
)

// Route selects the dispatcher for the runtime kind of node and delegates.
// A nil node or a kind without a dispatcher yields no command.
func Route(ev inspector.ChangeEvent, target scene.Handle, node scene.Node) (command.Command, bool) {
	if node == nil {
		return nil, false
	}

	switch node.Kind() {
	case scene.KindPivot:
		return handlePivot(ev, target, node)
	case scene.KindPointLight:
		return HandlePointLight(ev, target, node)
	case scene.KindSpotLight:
		return HandleSpotLight(ev, target, node)
	case scene.KindDirectionalLight:
		return HandleDirectionalLight(ev, target, node)
	}

	return nil, false
}

// Router wraps Route with logging.
type Router struct {
	logger *slog.Logger
}

// NewRouter creates a Router. A nil logger discards output.
func NewRouter(logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Router{logger: logger}
}

// Dispatch routes ev for the node addressed by target, given its current
// snapshot.
func (r *Router) Dispatch(ev inspector.ChangeEvent, target scene.Handle, node scene.Node) (command.Command, bool) {
	cmd, ok := Route(ev, target, node)
	if !ok {
		r.logger.Debug("change event not applicable",
			slog.String("target", target.String()),
			slog.String("kind", kindName(node)),
			slog.String("event", ev.String()),
		)

		return nil, false
	}

	r.logger.Debug("change event dispatched",
		slog.String("target", target.String()),
		slog.String("command", cmd.Name()),
		slog.String("field", cmd.Field().String()),
	)

	return cmd, true
}

func kindName(node scene.Node) string {
	if node == nil {
		return "none"
	}

	return node.Kind().String()
}
