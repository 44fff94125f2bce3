package replay

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"runtime"
	"testing"

	"scene-inspector/command"
	"scene-inspector/internal/diagnostic"
	"scene-inspector/internal/script"
	"scene-inspector/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadLights(t *testing.T) *script.Script {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)

	f, err := script.LoadFile(filepath.Join(filepath.Dir(file), "..", "..", "testdata", "lights.yaml"))
	require.NoError(t, err)

	s, err := f.Build()
	require.NoError(t, err)

	return s
}

func node[N scene.Node](t *testing.T, s *script.Script, id string) N {
	t.Helper()

	n, ok := s.Graph.Node(s.Handles[id])
	require.True(t, ok)

	typed, ok := n.(N)
	require.True(t, ok)

	return typed
}

func TestRunLights(t *testing.T) {
	t.Parallel()

	s := loadLights(t)
	stack := command.NewStack()

	res := NewRunner(stack, nil).Run(s, 0)

	assert.Equal(t, 5, res.Applied)
	assert.Equal(t, 4, res.Declined)
	assert.False(t, res.Diagnostics.HasErrors())
	assert.Equal(t, 5, stack.Len())

	lamp := node[*scene.SpotLight](t, s, "lamp")
	assert.Equal(t, float32(0.7), lamp.HotspotConeAngle)
	assert.Equal(t, "Reading lamp", lamp.Name)
	assert.Equal(t, float32(10), lamp.Distance, "misspelled field left alone")

	bulb := node[*scene.PointLight](t, s, "bulb")
	assert.Equal(t, scene.ColorRed, bulb.Color)

	root := node[*scene.Pivot](t, s, "root")
	assert.False(t, root.Visibility)
	assert.Equal(t, "editor-only", root.Tag)

	sun := node[*scene.DirectionalLight](t, s, "sun")
	assert.Equal(t, [scene.CascadeCount]float32{0.1, 0.5, 1}, sun.CsmOptions.SplitOptions.RelativeFractions)

	require.Len(t, res.Diagnostics.Warnings, 1)
	assert.Equal(t, diagnostic.CodeUnknownTarget, res.Diagnostics.Warnings[0].Code)
	assert.Equal(t, "ghost", res.Diagnostics.Warnings[0].Target)

	require.Len(t, res.Diagnostics.Infos, 3)

	misspelled := res.Diagnostics.Infos[2]
	assert.Equal(t, diagnostic.CodeNotApplicable, misspelled.Code)
	assert.Equal(t, "lamp", misspelled.Target)
	assert.Equal(t, []string{"Distance"}, misspelled.Suggestions)
}

func TestRunUndoRestoresScene(t *testing.T) {
	t.Parallel()

	s := loadLights(t)

	res := NewRunner(command.NewStack(), nil).Run(s, 100)
	assert.Equal(t, 5, res.Applied)
	assert.Equal(t, 5, res.Undone, "undo stops when the stack is empty")
	assert.False(t, res.Diagnostics.HasErrors())

	fresh := loadLights(t)
	for id := range s.Handles {
		before, ok := fresh.Graph.Node(fresh.Handles[id])
		require.True(t, ok)

		after, ok := s.Graph.Node(s.Handles[id])
		require.True(t, ok)

		assert.Equal(t, before, after, id)
	}
}

func TestRunStaleTarget(t *testing.T) {
	t.Parallel()

	s := loadLights(t)
	_, ok := s.Graph.Remove(s.Handles["lamp"])
	require.True(t, ok)

	res := NewRunner(command.NewStack(), nil).Run(s, 0)

	var stale int
	for _, d := range res.Diagnostics.Warnings {
		if d.Code == diagnostic.CodeStaleTarget {
			stale++
		}
	}

	assert.Equal(t, 3, stale, "three events address the removed lamp")
}

func TestRunLogs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	NewRunner(command.NewStack(command.WithLogger(logger)), logger).Run(loadLights(t), 1)

	out := buf.String()
	assert.Contains(t, out, "command executed")
	assert.Contains(t, out, "change event not applicable")
	assert.Contains(t, out, "command reverted")
	assert.Contains(t, out, "replay finished")
}
