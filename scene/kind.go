package scene

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is the runtime variant tag of a Node.
type KindEnum int

const (
	_ KindEnum = iota // zero value is not a kind; a nil node reports nothing

	KindPivot
	KindPointLight
	KindSpotLight
	KindDirectionalLight

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsLight reports whether nodes of kind k embed BaseLight.
func (k KindEnum) IsLight() bool {
	switch k {
	default:
		return false
	case KindPointLight, KindSpotLight, KindDirectionalLight:
		return true
	}
}
