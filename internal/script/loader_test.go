package script

import (
	"path/filepath"
	"runtime"
	"testing"

	"scene-inspector/inspector"
	"scene-inspector/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testdata(t *testing.T, name string) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)

	return filepath.Join(filepath.Dir(file), "..", "..", "testdata", name)
}

func TestParse(t *testing.T) {
	t.Parallel()

	yaml := `
nodes:
  - id: lamp
    kind: SpotLight
    visible: false
events:
  - target: lamp
    event:
      name: Base
      nested:
        name: Scatter
        leaf: {vector: [1, 2, 3]}
  - target: lamp
    event:
      name: CookieTexture
      leaf: {texture: textures/cookie.png}
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.Len(t, f.Nodes, 1)
	require.Len(t, f.Events, 2)

	s, err := f.Build()
	require.NoError(t, err)

	h, ok := s.Handles["lamp"]
	require.True(t, ok)

	node, ok := s.Graph.Node(h)
	require.True(t, ok)
	assert.Equal(t, scene.KindSpotLight, node.Kind())
	assert.False(t, node.NodeBase().Visibility)
	assert.Equal(t, "lamp", node.NodeBase().Name, "name defaults to id")

	require.Len(t, s.Steps, 2)
	assert.Equal(t, h, s.Steps[0].Target)
	assert.Equal(t,
		inspector.NestedEvent("Base", inspector.LeafEvent("Scatter", scene.Vector3{X: 1, Y: 2, Z: 3})),
		s.Steps[0].Event)
	assert.Equal(t,
		inspector.LeafEvent("CookieTexture", scene.TextureRef("textures/cookie.png")),
		s.Steps[1].Event)

	assert.Equal(t, map[scene.Handle]string{h: "lamp"}, s.Names())
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	f, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, f.Nodes)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("nodes:\n  - id: a\n    knd: Pivot\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	f, err := LoadFile(testdata(t, "lights.yaml"))
	require.NoError(t, err)

	s, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, 4, s.Graph.Len())
	require.Len(t, s.Steps, 9)

	sun, ok := s.Graph.Node(s.Handles["sun"])
	require.True(t, ok)
	assert.Equal(t, scene.SplitRelative, sun.(*scene.DirectionalLight).CsmOptions.SplitOptions.Mode)

	last := s.Steps[len(s.Steps)-1]
	assert.Equal(t, "ghost", last.TargetID)
	assert.True(t, last.Target.IsNone())

	assert.Equal(t,
		inspector.NestedEvent("CsmOptions", inspector.NestedEvent("SplitOptions",
			inspector.CollectionEvent("RelativeFractions", inspector.ItemRemoved{Index: 0}))),
		s.Steps[6].Event)

	_, err = LoadFile(testdata(t, "missing.yaml"))
	assert.Error(t, err)
}

func TestBuildErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"missing id", "nodes: [{kind: Pivot}]"},
		{"duplicate id", "nodes: [{id: a, kind: Pivot}, {id: a, kind: Pivot}]"},
		{"unknown kind", "nodes: [{id: a, kind: Camera}]"},
		{"unknown split mode", "nodes: [{id: a, kind: DirectionalLight, split_mode: log}]"},
		{"split mode on spot", "nodes: [{id: a, kind: SpotLight, split_mode: relative}]"},
		{"unnamed change", "events: [{target: a, event: {leaf: {float: 1}}}]"},
		{"no value", "events: [{target: a, event: {name: X}}]"},
		{"two values", "events: [{target: a, event: {name: X, leaf: {float: 1}, nested: {name: Y, leaf: {float: 1}}}}]"},
		{"two typed leaf values", "events: [{target: a, event: {name: X, leaf: {float: 1, bool: true}}}]"},
		{"empty leaf", "events: [{target: a, event: {name: X, leaf: {}}}]"},
		{"bad color", "events: [{target: a, event: {name: X, leaf: {color: red}}}]"},
		{"short vector", "events: [{target: a, event: {name: X, leaf: {vector: [1, 2]}}}]"},
		{"empty collection", "events: [{target: a, event: {name: X, collection: {}}}]"},
		{"two collection changes", "events: [{target: a, event: {name: X, collection: {item_removed: 1, item_added: {float: 1}}}}]"},
		{"bad item value", "events: [{target: a, event: {name: X, collection: {item_changed: {index: 0}}}}]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			_, err = f.Build()
			assert.Error(t, err)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	v := float32(0.5)
	f := &File{
		Nodes: []NodeSpec{{ID: "lamp", Kind: "SpotLight"}},
		Events: []EventSpec{{
			Target: "lamp",
			Event:  ChangeSpec{Name: "Distance", ValueSpec: ValueSpec{Leaf: &LeafSpec{Float: &v}}},
		}},
	}

	data, err := Marshal(f)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, f, back)
}
