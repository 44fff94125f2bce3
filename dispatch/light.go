package dispatch

import (
	"scene-inspector/command"
	"scene-inspector/inspector"
	"scene-inspector/scene"
)

// HandleBaseLight dispatches changes of the fields shared by every light.
// It is the fallback every light dispatcher uses for its Base slot.
func HandleBaseLight(ev inspector.ChangeEvent, target scene.Handle, node scene.Node) (command.Command, bool) {
	if node == nil || !node.Kind().IsLight() {
		return nil, false
	}

	field, ok := scene.ParseBaseLightField(ev.Name)
	if !ok {
		return nil, false
	}

	switch v := ev.Value.(type) {
	case inspector.Leaf:
		path := command.Path("BaseLight", field.String())

		switch field {
		case scene.BaseLightColor:
			return makeCommand("SetLightColor", target, node, path, v.Value,
				fieldOf(func(l scene.Light) *scene.Color { return &l.LightBase().Color }))
		case scene.BaseLightCastShadows:
			return makeCommand("SetLightCastShadows", target, node, path, v.Value,
				fieldOf(func(l scene.Light) *bool { return &l.LightBase().CastShadows }))
		case scene.BaseLightScatter:
			return makeCommand("SetLightScatter", target, node, path, v.Value,
				fieldOf(func(l scene.Light) *scene.Vector3 { return &l.LightBase().Scatter }))
		case scene.BaseLightScatterEnabled:
			return makeCommand("SetLightScatterEnabled", target, node, path, v.Value,
				fieldOf(func(l scene.Light) *bool { return &l.LightBase().ScatterEnabled }))
		case scene.BaseLightIntensity:
			return makeCommand("SetLightIntensity", target, node, path, v.Value,
				fieldOf(func(l scene.Light) *float32 { return &l.LightBase().Intensity }))
		}
	case inspector.Nested:
		switch field {
		case scene.BaseLightBase:
			return HandleBaseLight(v.Event, target, node)
		case scene.BaseLightNode:
			return HandleBase(v.Event, target, node)
		}
	}

	return nil, false
}

// HandlePointLight dispatches changes of a point light.
func HandlePointLight(ev inspector.ChangeEvent, target scene.Handle, node scene.Node) (command.Command, bool) {
	if !isKind(node, scene.KindPointLight) {
		return nil, false
	}

	field, ok := scene.ParsePointLightField(ev.Name)
	if !ok {
		return nil, false
	}

	switch v := ev.Value.(type) {
	case inspector.Leaf:
		path := command.Path("PointLight", field.String())

		switch field {
		case scene.PointLightShadowBias:
			return makeCommand("SetPointLightShadowBias", target, node, path, v.Value,
				fieldOf(func(l *scene.PointLight) *float32 { return &l.ShadowBias }))
		case scene.PointLightRadius:
			return makeCommand("SetPointLightRadius", target, node, path, v.Value,
				fieldOf(func(l *scene.PointLight) *float32 { return &l.Radius }))
		}
	case inspector.Nested:
		if field == scene.PointLightBase {
			return HandleBaseLight(v.Event, target, node)
		}
	}

	return nil, false
}

// HandleSpotLight dispatches changes of a spot light.
func HandleSpotLight(ev inspector.ChangeEvent, target scene.Handle, node scene.Node) (command.Command, bool) {
	if !isKind(node, scene.KindSpotLight) {
		return nil, false
	}

	field, ok := scene.ParseSpotLightField(ev.Name)
	if !ok {
		return nil, false
	}

	switch v := ev.Value.(type) {
	case inspector.Leaf:
		path := command.Path("SpotLight", field.String())

		switch field {
		case scene.SpotLightHotspotConeAngle:
			return makeCommand("SetSpotLightHotspot", target, node, path, v.Value,
				fieldOf(func(l *scene.SpotLight) *float32 { return &l.HotspotConeAngle }))
		case scene.SpotLightFalloffAngleDelta:
			return makeCommand("SetSpotLightFalloffAngleDelta", target, node, path, v.Value,
				fieldOf(func(l *scene.SpotLight) *float32 { return &l.FalloffAngleDelta }))
		case scene.SpotLightShadowBias:
			return makeCommand("SetSpotLightShadowBias", target, node, path, v.Value,
				fieldOf(func(l *scene.SpotLight) *float32 { return &l.ShadowBias }))
		case scene.SpotLightDistance:
			return makeCommand("SetSpotLightDistance", target, node, path, v.Value,
				fieldOf(func(l *scene.SpotLight) *float32 { return &l.Distance }))
		case scene.SpotLightCookieTexture:
			return makeCommand("SetSpotLightCookieTexture", target, node, path, v.Value,
				fieldOf(func(l *scene.SpotLight) *scene.TextureRef { return &l.CookieTexture }))
		}
	case inspector.Nested:
		if field == scene.SpotLightBase {
			return HandleBaseLight(v.Event, target, node)
		}
	}

	return nil, false
}

// HandleDirectionalLight dispatches changes of a directional light. It has no
// leaf fields of its own; everything goes through Base or CsmOptions.
func HandleDirectionalLight(ev inspector.ChangeEvent, target scene.Handle, node scene.Node) (command.Command, bool) {
	if !isKind(node, scene.KindDirectionalLight) {
		return nil, false
	}

	light, ok := node.(*scene.DirectionalLight)
	if !ok {
		return nil, false
	}

	nested, ok := ev.Value.(inspector.Nested)
	if !ok {
		return nil, false
	}

	field, ok := scene.ParseDirectionalLightField(ev.Name)
	if !ok {
		return nil, false
	}

	switch field {
	case scene.DirectionalLightBase:
		return HandleBaseLight(nested.Event, target, node)
	case scene.DirectionalLightCsmOptions:
		return handleCsmOptions(nested.Event, target, light)
	}

	return nil, false
}
