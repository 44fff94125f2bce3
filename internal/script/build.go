package script

import (
	"errors"
	"fmt"
	"strings"

	"scene-inspector/inspector"
	"scene-inspector/scene"
)

// Step is one event addressed to a node of the built scene.
type Step struct {
	TargetID string
	Target   scene.Handle
	Event    inspector.ChangeEvent
}

// Script is a File turned into a live scene and the events to play.
type Script struct {
	Graph   *scene.Graph
	Handles map[string]scene.Handle
	Steps   []Step
}

// Names maps every handle back to its node id.
func (s *Script) Names() map[scene.Handle]string {
	names := make(map[scene.Handle]string, len(s.Handles))
	for id, h := range s.Handles {
		names[h] = id
	}

	return names
}

// Build creates the scene described by f and converts its events. Events may
// target ids the scene does not define; such steps carry scene.NoHandle.
func (f *File) Build() (*Script, error) {
	s := &Script{
		Graph:   scene.NewGraph(),
		Handles: make(map[string]scene.Handle, len(f.Nodes)),
	}

	for i, spec := range f.Nodes {
		if spec.ID == "" {
			return nil, fmt.Errorf("node %d: missing id", i)
		}

		if _, dup := s.Handles[spec.ID]; dup {
			return nil, fmt.Errorf("node %q: duplicate id", spec.ID)
		}

		node, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", spec.ID, err)
		}

		s.Handles[spec.ID] = s.Graph.Add(node)
	}

	for i, spec := range f.Events {
		ev, err := spec.Event.build()
		if err != nil {
			return nil, fmt.Errorf("event %d (%s): %w", i, spec.Target, err)
		}

		s.Steps = append(s.Steps, Step{
			TargetID: spec.Target,
			Target:   s.Handles[spec.Target],
			Event:    ev,
		})
	}

	return s, nil
}

func (spec NodeSpec) build() (scene.Node, error) {
	name := spec.Name
	if name == "" {
		name = spec.ID
	}

	var node scene.Node

	switch strings.ToLower(spec.Kind) {
	case "pivot":
		node = scene.NewPivot(name)
	case "pointlight", "point":
		node = scene.NewPointLight(name)
	case "spotlight", "spot":
		node = scene.NewSpotLight(name)
	case "directionallight", "directional":
		light := scene.NewDirectionalLight(name)

		mode, err := parseSplitMode(spec.SplitMode)
		if err != nil {
			return nil, err
		}

		light.CsmOptions.SplitOptions.Mode = mode
		node = light
	default:
		return nil, fmt.Errorf("unknown kind %q", spec.Kind)
	}

	if spec.SplitMode != "" && node.Kind() != scene.KindDirectionalLight {
		return nil, fmt.Errorf("split_mode is only valid for directional lights")
	}

	base := node.NodeBase()
	base.Tag = spec.Tag

	if spec.Visible != nil {
		base.Visibility = *spec.Visible
	}

	return node, nil
}

func parseSplitMode(s string) (scene.SplitModeEnum, error) {
	if s == "" {
		return scene.SplitAbsolute, nil
	}

	for i := 1; i < scene.SplitModeTotal; i++ {
		if m := scene.SplitModeEnum(i); strings.EqualFold(m.String(), s) {
			return m, nil
		}
	}

	return 0, fmt.Errorf("unknown split_mode %q", s)
}

func (c ChangeSpec) build() (inspector.ChangeEvent, error) {
	if c.Name == "" {
		return inspector.ChangeEvent{}, errors.New("change without a name")
	}

	v, err := c.ValueSpec.build()
	if err != nil {
		return inspector.ChangeEvent{}, fmt.Errorf("%s: %w", c.Name, err)
	}

	return inspector.ChangeEvent{Name: c.Name, Value: v}, nil
}

func (v ValueSpec) build() (inspector.ChangeValue, error) {
	set := 0
	for _, ok := range []bool{v.Leaf != nil, v.Nested != nil, v.Collection != nil} {
		if ok {
			set++
		}
	}

	if set != 1 {
		return nil, fmt.Errorf("want exactly one of leaf, nested or collection, got %d", set)
	}

	switch {
	case v.Leaf != nil:
		value, err := v.Leaf.build()
		if err != nil {
			return nil, err
		}

		return inspector.Leaf{Value: value}, nil
	case v.Nested != nil:
		ev, err := v.Nested.build()
		if err != nil {
			return nil, err
		}

		return inspector.Nested{Event: ev}, nil
	default:
		change, err := v.Collection.build()
		if err != nil {
			return nil, err
		}

		return inspector.CollectionEdit{Change: change}, nil
	}
}

func (c CollectionSpec) build() (inspector.CollectionChange, error) {
	switch {
	case c.Added != nil && c.Removed == nil && c.Changed == nil:
		value, err := c.Added.build()
		if err != nil {
			return nil, err
		}

		return inspector.ItemAdded{Value: value}, nil
	case c.Removed != nil && c.Added == nil && c.Changed == nil:
		return inspector.ItemRemoved{Index: *c.Removed}, nil
	case c.Changed != nil && c.Added == nil && c.Removed == nil:
		value, err := c.Changed.ValueSpec.build()
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", c.Changed.Index, err)
		}

		return inspector.ItemChanged{Index: c.Changed.Index, Value: value}, nil
	}

	return nil, errors.New("want exactly one of item_added, item_removed or item_changed")
}

func (l LeafSpec) build() (any, error) {
	var (
		values []any
		err    error
	)

	if l.Float != nil {
		values = append(values, *l.Float)
	}

	if l.Bool != nil {
		values = append(values, *l.Bool)
	}

	if l.String != nil {
		values = append(values, *l.String)
	}

	if l.Color != "" {
		var c scene.Color

		c, err = scene.ParseColor(l.Color)
		values = append(values, c)
	}

	if l.Vector != nil {
		if len(l.Vector) != 3 {
			err = errors.Join(err, fmt.Errorf("vector wants 3 components, got %d", len(l.Vector)))
		} else {
			values = append(values, scene.Vector3{X: l.Vector[0], Y: l.Vector[1], Z: l.Vector[2]})
		}
	}

	if l.Texture != nil {
		values = append(values, scene.TextureRef(*l.Texture))
	}

	if err != nil {
		return nil, err
	}

	if len(values) != 1 {
		return nil, fmt.Errorf("leaf wants exactly one typed value, got %d", len(values))
	}

	return values[0], nil
}
