package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	t.Parallel()

	candidates := []string{"HotspotConeAngle", "FalloffAngleDelta", "ShadowBias", "Distance", "CookieTexture", "Base"}

	got := Suggest("hotspotConeAngle", candidates, DefaultThreshold)
	require.NotEmpty(t, got)
	assert.Equal(t, "HotspotConeAngle", got[0].Name)
	assert.InDelta(t, 1.0, got[0].Score, 1e-9)

	got = Suggest("Distanse", candidates, DefaultThreshold)
	require.NotEmpty(t, got)
	assert.Equal(t, []string{"Distance"}, Names(got))

	assert.Empty(t, Suggest("Foo", candidates, DefaultThreshold))
	assert.Empty(t, Suggest("Base", candidates, DefaultThreshold), "exact match is not a suggestion")
}
