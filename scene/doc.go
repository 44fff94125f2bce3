// Package scene holds the editable side of the inspector: the node family
// (pivots and point, spot and directional lights), the per-type field
// identifiers the inspector names them by, and a Graph that addresses nodes
// through generational handles.
//
// Every light variant embeds BaseLight, which in turn embeds the node Base,
// so shared fields are reached the same way whatever the variant is.
package scene
