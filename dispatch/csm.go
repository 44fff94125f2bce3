package dispatch

import (
	"scene-inspector/command"
	"scene-inspector/inspector"
	"scene-inspector/scene"
)

var csmPath = command.Path("DirectionalLight", scene.DirectionalLightCsmOptions.String())

func handleCsmOptions(ev inspector.ChangeEvent, target scene.Handle, light *scene.DirectionalLight) (command.Command, bool) {
	nested, ok := ev.Value.(inspector.Nested)
	if !ok {
		return nil, false
	}

	field, ok := scene.ParseCsmOptionsField(ev.Name)
	if !ok || field != scene.CsmOptionsSplitOptions {
		return nil, false
	}

	return handleSplitOptions(nested.Event, target, light)
}

// handleSplitOptions matches per-item edits of the cascade arrays. The arrays
// have a fixed length, so structural edits never apply. An item edit applies
// only to the array of the active split mode, and only as a float32 leaf.
func handleSplitOptions(ev inspector.ChangeEvent, target scene.Handle, light *scene.DirectionalLight) (command.Command, bool) {
	edit, ok := ev.Value.(inspector.CollectionEdit)
	if !ok {
		return nil, false
	}

	item, ok := edit.Change.(inspector.ItemChanged)
	if !ok {
		return nil, false
	}

	leaf, ok := item.Value.(inspector.Leaf)
	if !ok {
		return nil, false
	}

	field, ok := scene.ParseFrustumSplitField(ev.Name)
	if !ok {
		return nil, false
	}

	if _, ok := light.CsmOptions.SplitOptions.Item(field, item.Index); !ok {
		return nil, false
	}

	path := csmPath.
		Field(scene.CsmOptionsSplitOptions.String()).
		Field(field.String()).
		Index(item.Index)

	var access command.Accessor[float32] = func(n scene.Node) (*float32, bool) {
		l, ok := n.(*scene.DirectionalLight)
		if !ok {
			return nil, false
		}

		// the split mode may have changed since dispatch
		return l.CsmOptions.SplitOptions.Item(field, item.Index)
	}

	return makeCommand("SetFrustumSplitItem", target, light, path, leaf.Value, access)
}
