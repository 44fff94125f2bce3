package scene_test

import (
	"testing"

	"scene-inspector/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLightVariantsShareBase(t *testing.T) {
	t.Parallel()

	lights := []scene.Light{
		scene.NewPointLight("bulb"),
		scene.NewSpotLight("lamp"),
		scene.NewDirectionalLight("sun"),
	}

	for _, l := range lights {
		assert.True(t, l.Kind().IsLight())
		assert.Equal(t, scene.ColorWhite, l.LightBase().Color)
		assert.Same(t, &l.LightBase().Base, l.NodeBase())
	}
}

func TestFrustumSplitItem(t *testing.T) {
	t.Parallel()

	o := scene.NewDirectionalLight("sun").CsmOptions.SplitOptions
	require.Equal(t, scene.SplitAbsolute, o.Mode)

	p, ok := o.Item(scene.FrustumSplitAbsoluteFarPlanes, 1)
	require.True(t, ok)
	*p = 40
	assert.Equal(t, float32(40), o.AbsoluteFarPlanes[1])

	_, ok = o.Item(scene.FrustumSplitRelativeFractions, 1)
	assert.False(t, ok, "inactive mode")

	_, ok = o.Item(scene.FrustumSplitAbsoluteFarPlanes, scene.CascadeCount)
	assert.False(t, ok)

	_, ok = o.Item(scene.FrustumSplitAbsoluteFarPlanes, -1)
	assert.False(t, ok)

	o.Mode = scene.SplitRelative
	_, ok = o.Item(scene.FrustumSplitRelativeFractions, 0)
	assert.True(t, ok)
	assert.Equal(t, "Relative", o.Mode.String())
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	c, err := scene.ParseColor("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, scene.ColorRed, c)

	c, err = scene.ParseColor("00ff0080")
	require.NoError(t, err)
	assert.Equal(t, scene.Color{G: 255, A: 128}, c)
	assert.Equal(t, "#00ff0080", c.String())

	_, err = scene.ParseColor("#fff")
	assert.Error(t, err)

	_, err = scene.ParseColor("#gg0000")
	assert.Error(t, err)
}
