package scene

import "scene-inspector/utils"

// BaseLight holds the fields shared by every light variant.
type BaseLight struct {
	Base
	Color          Color
	CastShadows    bool
	Scatter        Vector3
	ScatterEnabled bool
	Intensity      float32
}

// LightBase returns l itself so that embedding types expose their BaseLight.
func (l *BaseLight) LightBase() *BaseLight { return l }

func defaultBaseLight(name string) BaseLight {
	return BaseLight{
		Base:           Base{Name: name, Visibility: true},
		Color:          ColorWhite,
		CastShadows:    true,
		Scatter:        Vector3{X: 0.03, Y: 0.03, Z: 0.03},
		ScatterEnabled: true,
		Intensity:      1,
	}
}

// PointLight emits in every direction up to Radius.
type PointLight struct {
	BaseLight
	ShadowBias float32
	Radius     float32
}

// NewPointLight creates a point light with editor defaults.
func NewPointLight(name string) *PointLight {
	return &PointLight{
		BaseLight:  defaultBaseLight(name),
		ShadowBias: 0.025,
		Radius:     10,
	}
}

func (*PointLight) Kind() KindEnum { return KindPointLight }

// SpotLight emits in a cone. Angles are in radians.
type SpotLight struct {
	BaseLight
	HotspotConeAngle  float32
	FalloffAngleDelta float32
	ShadowBias        float32
	Distance          float32
	CookieTexture     TextureRef
}

// NewSpotLight creates a spot light with editor defaults.
func NewSpotLight(name string) *SpotLight {
	return &SpotLight{
		BaseLight:         defaultBaseLight(name),
		HotspotConeAngle:  1.5707964,  // 90 degrees
		FalloffAngleDelta: 0.08726646, // 5 degrees
		ShadowBias:        0.00005,
		Distance:          10,
	}
}

func (*SpotLight) Kind() KindEnum { return KindSpotLight }

// DirectionalLight lights the whole scene from one direction and renders
// shadows through cascaded shadow maps.
type DirectionalLight struct {
	BaseLight
	CsmOptions CsmOptions
}

// NewDirectionalLight creates a directional light with absolute cascade splits.
func NewDirectionalLight(name string) *DirectionalLight {
	return &DirectionalLight{
		BaseLight: defaultBaseLight(name),
		CsmOptions: CsmOptions{
			SplitOptions: FrustumSplitOptions{
				Mode:              SplitAbsolute,
				AbsoluteFarPlanes: [CascadeCount]float32{5, 25, 64},
				RelativeFractions: [CascadeCount]float32{0.1, 0.4, 1},
			},
		},
	}
}

func (*DirectionalLight) Kind() KindEnum { return KindDirectionalLight }

// CsmOptions configures cascaded shadow maps.
type CsmOptions struct {
	SplitOptions FrustumSplitOptions
}

// CascadeCount is the fixed number of shadow cascades.
const CascadeCount = 3

//go:generate go tool stringer -type=SplitModeEnum -trimprefix=Split -output=splitmode_string.go

// SplitModeEnum selects how cascade boundaries are expressed.
type SplitModeEnum int

const (
	_ SplitModeEnum = iota

	SplitAbsolute // far planes in world units
	SplitRelative // fractions of the camera far plane

	// SplitModeTotal is a constant that represents the total number of split modes defined
	SplitModeTotal = int(iota)
)

// FrustumSplitOptions is a tagged variant: Mode decides which of the two
// arrays is in effect. The inactive array keeps its values so switching
// back restores them.
type FrustumSplitOptions struct {
	Mode              SplitModeEnum
	AbsoluteFarPlanes [CascadeCount]float32
	RelativeFractions [CascadeCount]float32
}

// Item returns the cascade value at index of the array named by field.
// It fails when field does not belong to the active mode or index is out
// of range.
func (o *FrustumSplitOptions) Item(field FrustumSplitField, index int) (*float32, bool) {
	if !utils.IsIndex(index, CascadeCount) {
		return nil, false
	}

	switch {
	case field == FrustumSplitAbsoluteFarPlanes && o.Mode == SplitAbsolute:
		return &o.AbsoluteFarPlanes[index], true
	case field == FrustumSplitRelativeFractions && o.Mode == SplitRelative:
		return &o.RelativeFractions[index], true
	}

	return nil, false
}
