package scene_test

import (
	"fmt"
	"testing"

	"scene-inspector/scene"

	"github.com/stretchr/testify/assert"
)

func ExampleKindEnum() {
	fmt.Println(scene.KindSpotLight)
	fmt.Println(scene.KindSpotLight.IsLight(), scene.KindPivot.IsLight())
	fmt.Println(scene.KindEnum(0))

	// Output:
	// KindSpotLight
	// true false
	// KindEnum(0)
}

func ExampleFieldNames() {
	fmt.Println(scene.FieldNames(scene.KindSpotLight))
	fmt.Println(scene.FieldNames(scene.KindDirectionalLight))
	fmt.Println(scene.FieldNames(0))

	// Output:
	// [HotspotConeAngle FalloffAngleDelta ShadowBias Distance CookieTexture Base]
	// [Base CsmOptions]
	// []
}

func TestParseFieldsRoundTrip(t *testing.T) {
	t.Parallel()

	for i := 1; i < scene.SpotLightFieldTotal; i++ {
		f := scene.SpotLightField(i)
		parsed, ok := scene.ParseSpotLightField(f.String())
		assert.True(t, ok)
		assert.Equal(t, f, parsed)
	}

	for i := 1; i < scene.BaseLightFieldTotal; i++ {
		f := scene.BaseLightField(i)
		parsed, ok := scene.ParseBaseLightField(f.String())
		assert.True(t, ok)
		assert.Equal(t, f, parsed)
	}
}

func TestParseFieldExactMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ok   bool
	}{
		{"HotspotConeAngle", true},
		{"hotspotConeAngle", false},
		{"HotspotConeAngle ", false},
		{"", false},
		{"SpotLightField(1)", false},
		{"SpotLightHotspotConeAngle", false},
	}

	for _, tt := range tests {
		_, ok := scene.ParseSpotLightField(tt.name)
		assert.Equal(t, tt.ok, ok, "%q", tt.name)
	}

	f, ok := scene.ParseFrustumSplitField("RelativeFractions")
	assert.True(t, ok)
	assert.Equal(t, scene.FrustumSplitRelativeFractions, f)

	_, ok = scene.ParseCsmOptionsField("Splits")
	assert.False(t, ok)
}
