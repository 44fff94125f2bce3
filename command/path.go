package command

import (
	"strconv"
	"strings"
)

// FieldPath names a field relative to its declaring type.
// Examples:
//   - "SpotLight.HotspotConeAngle"
//   - "BaseLight.Color"
//   - "DirectionalLight.CsmOptions.SplitOptions.AbsoluteFarPlanes[1]"
type FieldPath struct {
	parts []string
}

// Path creates a FieldPath rooted at the declaring type root.
func Path(root string, fields ...string) FieldPath {
	return FieldPath{parts: append([]string{root}, fields...)}
}

// Field appends a field name to the path.
func (p FieldPath) Field(name string) FieldPath {
	return FieldPath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// Index appends an item index to the last element of the path.
func (p FieldPath) Index(i int) FieldPath {
	if len(p.parts) == 0 {
		return FieldPath{parts: []string{"[" + strconv.Itoa(i) + "]"}}
	}

	parts := make([]string, len(p.parts))
	copy(parts, p.parts)
	parts[len(parts)-1] += "[" + strconv.Itoa(i) + "]"

	return FieldPath{parts: parts}
}

// String returns the full dotted path.
func (p FieldPath) String() string {
	return strings.Join(p.parts, ".")
}
