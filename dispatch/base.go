package dispatch

import (
	"scene-inspector/command"
	"scene-inspector/inspector"
	"scene-inspector/scene"
)

// HandleBase dispatches changes of the fields every node has.
func HandleBase(ev inspector.ChangeEvent, target scene.Handle, node scene.Node) (command.Command, bool) {
	if node == nil {
		return nil, false
	}

	leaf, ok := ev.Value.(inspector.Leaf)
	if !ok {
		return nil, false
	}

	field, ok := scene.ParseBaseField(ev.Name)
	if !ok {
		return nil, false
	}

	path := command.Path("Base", field.String())

	switch field {
	case scene.BaseName:
		return makeCommand("SetName", target, node, path, leaf.Value,
			fieldOf(func(n scene.Node) *string { return &n.NodeBase().Name }))
	case scene.BaseVisibility:
		return makeCommand("SetVisible", target, node, path, leaf.Value,
			fieldOf(func(n scene.Node) *bool { return &n.NodeBase().Visibility }))
	case scene.BaseTag:
		return makeCommand("SetTag", target, node, path, leaf.Value,
			fieldOf(func(n scene.Node) *string { return &n.NodeBase().Tag }))
	}

	return nil, false
}

func handlePivot(ev inspector.ChangeEvent, target scene.Handle, node scene.Node) (command.Command, bool) {
	if !isKind(node, scene.KindPivot) {
		return nil, false
	}

	nested, ok := ev.Value.(inspector.Nested)
	if !ok {
		return nil, false
	}

	if field, ok := scene.ParsePivotField(ev.Name); ok && field == scene.PivotBase {
		return HandleBase(nested.Event, target, node)
	}

	return nil, false
}
