// Package inspector defines the change events a reflection-driven property
// editor emits when the user edits a field.
//
// The editor knows nothing about concrete node types. It walks an object's
// fields and reports every edit as a ChangeEvent: a field name plus a
// ChangeValue that is one of
//
//   - Leaf: the new value of the named field, ready to assign;
//   - Nested: the named field is a composite, and the payload is a change
//     event scoped to that composite's own fields;
//   - CollectionEdit: the named field is an ordered collection, and the
//     payload is an ItemAdded, ItemRemoved or ItemChanged.
//
// ItemChanged carries its own ChangeValue, so events nest to any depth.
// Field names are compared exactly, case included.
package inspector
