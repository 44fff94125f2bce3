package dispatch

import (
	"scene-inspector/command"
	"scene-inspector/inspector"
	"scene-inspector/scene"
)

// Func is the signature shared by every dispatcher.
type Func func(ev inspector.ChangeEvent, target scene.Handle, node scene.Node) (command.Command, bool)

// makeCommand builds a SetProperty when value can be assigned to a field of
// type T, and declines otherwise. The command is bound to the kind of node.
func makeCommand[T any](
	name string, target scene.Handle, node scene.Node, path command.FieldPath, value any, access command.Accessor[T],
) (command.Command, bool) {
	v, ok := value.(T)
	if !ok {
		return nil, false
	}

	return command.NewSetProperty(name, target, node.Kind(), path, v, access), true
}

// fieldOf builds an accessor for a field of nodes of type N.
func fieldOf[N scene.Node, T any](get func(N) *T) command.Accessor[T] {
	return func(n scene.Node) (*T, bool) {
		v, ok := n.(N)
		if !ok {
			return nil, false
		}

		return get(v), true
	}
}

func isKind(node scene.Node, kind scene.KindEnum) bool {
	return node != nil && node.Kind() == kind
}
