package inspector

import (
	"fmt"
	"strconv"
	"strings"
)

// ChangeEvent reports a change of the field called Name.
type ChangeEvent struct {
	Name  string
	Value ChangeValue
}

// ChangeValue is one of Leaf, Nested or CollectionEdit.
type ChangeValue interface {
	changeValue()
}

// Leaf carries the new value of a field.
type Leaf struct {
	Value any
}

// Nested carries a change of one of the fields of a composite field.
type Nested struct {
	Event ChangeEvent
}

// CollectionEdit carries a change of an ordered collection field.
type CollectionEdit struct {
	Change CollectionChange
}

func (Leaf) changeValue()           {}
func (Nested) changeValue()         {}
func (CollectionEdit) changeValue() {}

// CollectionChange is one of ItemAdded, ItemRemoved or ItemChanged.
type CollectionChange interface {
	collectionChange()
}

// ItemAdded appends Value to the collection.
type ItemAdded struct {
	Value any
}

// ItemRemoved removes the item at Index.
type ItemRemoved struct {
	Index int
}

// ItemChanged changes the item at Index.
type ItemChanged struct {
	Index int
	Value ChangeValue
}

func (ItemAdded) collectionChange()   {}
func (ItemRemoved) collectionChange() {}
func (ItemChanged) collectionChange() {}

// LeafEvent reports that field name now holds v.
func LeafEvent(name string, v any) ChangeEvent {
	return ChangeEvent{Name: name, Value: Leaf{Value: v}}
}

// NestedEvent reports that inner happened inside the composite field name.
func NestedEvent(name string, inner ChangeEvent) ChangeEvent {
	return ChangeEvent{Name: name, Value: Nested{Event: inner}}
}

// CollectionEvent reports that the collection field name changed.
func CollectionEvent(name string, change CollectionChange) ChangeEvent {
	return ChangeEvent{Name: name, Value: CollectionEdit{Change: change}}
}

// ItemChangedEvent reports that the item at index of collection name
// changed to the leaf value v.
func ItemChangedEvent(name string, index int, v any) ChangeEvent {
	return CollectionEvent(name, ItemChanged{Index: index, Value: Leaf{Value: v}})
}

// String renders the event as a dotted path followed by the change,
// e.g. "Base.Color = #ff0000ff" or "SplitOptions.AbsoluteFarPlanes[1] = 30".
func (e ChangeEvent) String() string {
	var b strings.Builder

	b.WriteString(e.Name)
	writeValue(&b, e.Value)

	return b.String()
}

func writeValue(b *strings.Builder, v ChangeValue) {
	switch v := v.(type) {
	case Leaf:
		fmt.Fprintf(b, " = %v", v.Value)
	case Nested:
		b.WriteByte('.')
		b.WriteString(v.Event.String())
	case CollectionEdit:
		writeCollectionChange(b, v.Change)
	default:
		b.WriteString(" <no value>")
	}
}

func writeCollectionChange(b *strings.Builder, c CollectionChange) {
	switch c := c.(type) {
	case ItemAdded:
		fmt.Fprintf(b, " += %v", c.Value)
	case ItemRemoved:
		b.WriteString("[" + strconv.Itoa(c.Index) + "] removed")
	case ItemChanged:
		b.WriteString("[" + strconv.Itoa(c.Index) + "]")
		writeValue(b, c.Value)
	default:
		b.WriteString(" <no change>")
	}
}
