package scene

// Node is any object the inspector can edit. The set of implementations is
// closed: only types in this package embed Base.
type Node interface {
	Kind() KindEnum
	NodeBase() *Base
	sealed()
}

// Light is a Node that carries the shared light fields.
type Light interface {
	Node
	LightBase() *BaseLight
}

// Base holds the fields every node has.
type Base struct {
	Name       string
	Visibility bool
	Tag        string
}

// NodeBase returns b itself so that embedding types expose their Base.
func (b *Base) NodeBase() *Base { return b }

func (*Base) sealed() {}

// Pivot is a node without behaviour of its own.
type Pivot struct {
	Base
}

// NewPivot creates a visible pivot named name.
func NewPivot(name string) *Pivot {
	return &Pivot{Base: Base{Name: name, Visibility: true}}
}

func (*Pivot) Kind() KindEnum { return KindPivot }
