package scene

// Field identifiers are the names the inspector uses for editable fields.
// Each declaring type has its own closed enumeration; the UI string is parsed
// into it once and everything downstream switches on the enum. String returns
// the exact UI name.

//go:generate go tool stringer -type=BaseField -trimprefix=Base -output=basefield_string.go

// BaseField names a field of Base.
type BaseField int

const (
	_ BaseField = iota

	BaseName
	BaseVisibility
	BaseTag

	// BaseFieldTotal is a constant that represents the total number of Base fields defined
	BaseFieldTotal = int(iota)
)

//go:generate go tool stringer -type=PivotField -trimprefix=Pivot -output=pivotfield_string.go

// PivotField names a field of Pivot.
type PivotField int

const (
	_ PivotField = iota

	PivotBase // embedded Base

	// PivotFieldTotal is a constant that represents the total number of Pivot fields defined
	PivotFieldTotal = int(iota)
)

//go:generate go tool stringer -type=BaseLightField -trimprefix=BaseLight -output=baselightfield_string.go

// BaseLightField names a field of BaseLight.
type BaseLightField int

const (
	_ BaseLightField = iota

	BaseLightColor
	BaseLightCastShadows
	BaseLightScatter
	BaseLightScatterEnabled
	BaseLightIntensity
	BaseLightBase // the shared light fields again, one level down
	BaseLightNode // embedded node Base

	// BaseLightFieldTotal is a constant that represents the total number of BaseLight fields defined
	BaseLightFieldTotal = int(iota)
)

//go:generate go tool stringer -type=PointLightField -trimprefix=PointLight -output=pointlightfield_string.go

// PointLightField names a field of PointLight.
type PointLightField int

const (
	_ PointLightField = iota

	PointLightShadowBias
	PointLightRadius
	PointLightBase // embedded BaseLight

	// PointLightFieldTotal is a constant that represents the total number of PointLight fields defined
	PointLightFieldTotal = int(iota)
)

//go:generate go tool stringer -type=SpotLightField -trimprefix=SpotLight -output=spotlightfield_string.go

// SpotLightField names a field of SpotLight.
type SpotLightField int

const (
	_ SpotLightField = iota

	SpotLightHotspotConeAngle
	SpotLightFalloffAngleDelta
	SpotLightShadowBias
	SpotLightDistance
	SpotLightCookieTexture
	SpotLightBase // embedded BaseLight

	// SpotLightFieldTotal is a constant that represents the total number of SpotLight fields defined
	SpotLightFieldTotal = int(iota)
)

//go:generate go tool stringer -type=DirectionalLightField -trimprefix=DirectionalLight -output=directionallightfield_string.go

// DirectionalLightField names a field of DirectionalLight.
type DirectionalLightField int

const (
	_ DirectionalLightField = iota

	DirectionalLightBase // embedded BaseLight
	DirectionalLightCsmOptions

	// DirectionalLightFieldTotal is a constant that represents the total number of DirectionalLight fields defined
	DirectionalLightFieldTotal = int(iota)
)

//go:generate go tool stringer -type=CsmOptionsField -trimprefix=CsmOptions -output=csmoptionsfield_string.go

// CsmOptionsField names a field of CsmOptions.
type CsmOptionsField int

const (
	_ CsmOptionsField = iota

	CsmOptionsSplitOptions

	// CsmOptionsFieldTotal is a constant that represents the total number of CsmOptions fields defined
	CsmOptionsFieldTotal = int(iota)
)

//go:generate go tool stringer -type=FrustumSplitField -trimprefix=FrustumSplit -output=frustumsplitfield_string.go

// FrustumSplitField names a collection of FrustumSplitOptions.
type FrustumSplitField int

const (
	_ FrustumSplitField = iota

	FrustumSplitAbsoluteFarPlanes
	FrustumSplitRelativeFractions

	// FrustumSplitFieldTotal is a constant that represents the total number of FrustumSplitOptions fields defined
	FrustumSplitFieldTotal = int(iota)
)

type fieldEnum interface {
	~int
	String() string
}

// parseField matches name exactly, case included, against the valid values
// of F. total is the enum's Total sentinel.
func parseField[F fieldEnum](name string, total int) (F, bool) {
	for i := 1; i < total; i++ {
		if f := F(i); f.String() == name {
			return f, true
		}
	}

	var zero F

	return zero, false
}

func fieldNames[F fieldEnum](total int) []string {
	names := make([]string, 0, total-1)
	for i := 1; i < total; i++ {
		names = append(names, F(i).String())
	}

	return names
}

// ParseBaseField returns the node-base field named name, matching case.
func ParseBaseField(name string) (BaseField, bool) {
	return parseField[BaseField](name, BaseFieldTotal)
}

// ParsePivotField returns the pivot field named name, matching case.
func ParsePivotField(name string) (PivotField, bool) {
	return parseField[PivotField](name, PivotFieldTotal)
}

// ParseBaseLightField returns the shared light field named name, matching case.
func ParseBaseLightField(name string) (BaseLightField, bool) {
	return parseField[BaseLightField](name, BaseLightFieldTotal)
}

// ParsePointLightField returns the point light field named name, matching case.
func ParsePointLightField(name string) (PointLightField, bool) {
	return parseField[PointLightField](name, PointLightFieldTotal)
}

// ParseSpotLightField returns the spot light field named name, matching case.
func ParseSpotLightField(name string) (SpotLightField, bool) {
	return parseField[SpotLightField](name, SpotLightFieldTotal)
}

// ParseDirectionalLightField returns the directional light field named name, matching case.
func ParseDirectionalLightField(name string) (DirectionalLightField, bool) {
	return parseField[DirectionalLightField](name, DirectionalLightFieldTotal)
}

// ParseCsmOptionsField returns the cascaded shadow map option named name, matching case.
func ParseCsmOptionsField(name string) (CsmOptionsField, bool) {
	return parseField[CsmOptionsField](name, CsmOptionsFieldTotal)
}

// ParseFrustumSplitField returns the frustum split field named name, matching case.
func ParseFrustumSplitField(name string) (FrustumSplitField, bool) {
	return parseField[FrustumSplitField](name, FrustumSplitFieldTotal)
}

// FieldNames lists the top-level field identifiers a node of kind k declares,
// in declaration order. Unknown kinds have none.
func FieldNames(k KindEnum) []string {
	switch k {
	case KindPivot:
		return fieldNames[PivotField](PivotFieldTotal)
	case KindPointLight:
		return fieldNames[PointLightField](PointLightFieldTotal)
	case KindSpotLight:
		return fieldNames[SpotLightField](SpotLightFieldTotal)
	case KindDirectionalLight:
		return fieldNames[DirectionalLightField](DirectionalLightFieldTotal)
	}

	return nil
}
