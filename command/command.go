package command

import (
	"errors"
	"fmt"

	"scene-inspector/scene"
)

var (
	// ErrStaleTarget is returned when a command's handle no longer resolves
	// to a node that has the command's field.
	ErrStaleTarget = errors.New("target node is gone or changed kind")

	// ErrNothingToUndo is returned by Stack.Undo when no command is applied.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrNothingToRedo is returned by Stack.Redo when no command was undone.
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Command is a reversible edit of a single field of a single node.
type Command interface {
	// Name identifies the kind of edit, e.g. "SetSpotLightHotspot".
	Name() string
	Target() scene.Handle
	Field() FieldPath
	// Value is the value Execute assigns.
	Value() any

	Execute(g *scene.Graph) error
	Revert(g *scene.Graph) error
}

// Accessor locates a field inside a node. It reports false when the node
// does not have the field, typically because it is of another kind.
type Accessor[T any] func(n scene.Node) (*T, bool)

// SetProperty assigns a value of type T to one field of a node of one kind.
type SetProperty[T any] struct {
	name    string
	target  scene.Handle
	kind    scene.KindEnum
	field   FieldPath
	access  Accessor[T]
	value   T
	old     T
	applied bool
}

// NewSetProperty creates a command that assigns value to the field access
// locates in the node addressed by target. The node must still be of the
// given kind when the command runs.
func NewSetProperty[T any](
	name string, target scene.Handle, kind scene.KindEnum, field FieldPath, value T, access Accessor[T],
) *SetProperty[T] {
	if access == nil {
		panic("command: accessor cannot be nil")
	}

	return &SetProperty[T]{
		name:   name,
		target: target,
		kind:   kind,
		field:  field,
		access: access,
		value:  value,
	}
}

func (c *SetProperty[T]) Name() string         { return c.name }
func (c *SetProperty[T]) Target() scene.Handle { return c.target }
func (c *SetProperty[T]) Kind() scene.KindEnum  { return c.kind }
func (c *SetProperty[T]) Field() FieldPath     { return c.field }
func (c *SetProperty[T]) Value() any           { return c.value }

// Old returns the value captured by the last Execute. It reports false while
// the command is not applied.
func (c *SetProperty[T]) Old() (T, bool) {
	if !c.applied {
		var zero T
		return zero, false
	}

	return c.old, true
}

// Execute assigns the new value and captures the previous one.
func (c *SetProperty[T]) Execute(g *scene.Graph) error {
	if c.applied {
		return nil
	}

	p, err := c.resolve(g)
	if err != nil {
		return err
	}

	c.old, *p = *p, c.value
	c.applied = true

	return nil
}

// Revert restores the value captured by Execute.
func (c *SetProperty[T]) Revert(g *scene.Graph) error {
	if !c.applied {
		return nil
	}

	p, err := c.resolve(g)
	if err != nil {
		return err
	}

	*p = c.old
	c.applied = false

	return nil
}

func (c *SetProperty[T]) resolve(g *scene.Graph) (*T, error) {
	n, ok := g.Node(c.target)
	if !ok {
		return nil, fmt.Errorf("%s %s on %s: %w", c.name, c.field, c.target, ErrStaleTarget)
	}

	if n.Kind() != c.kind {
		return nil, fmt.Errorf("%s %s on %s: node is %s, not %s: %w",
			c.name, c.field, c.target, n.Kind(), c.kind, ErrStaleTarget)
	}

	p, ok := c.access(n)
	if !ok {
		return nil, fmt.Errorf("%s %s on %s (%s): %w", c.name, c.field, c.target, n.Kind(), ErrStaleTarget)
	}

	return p, nil
}
