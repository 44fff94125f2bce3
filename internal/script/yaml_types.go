package script

// File is the root of a replay script.
type File struct {
	Nodes  []NodeSpec  `yaml:"nodes"`
	Events []EventSpec `yaml:"events"`
}

// NodeSpec describes one node to create. Unset properties keep the editor
// defaults of the kind.
type NodeSpec struct {
	ID        string `yaml:"id"`
	Kind      string `yaml:"kind"`
	Name      string `yaml:"name,omitempty"`
	Tag       string `yaml:"tag,omitempty"`
	Visible   *bool  `yaml:"visible,omitempty"`
	SplitMode string `yaml:"split_mode,omitempty"` // directional lights only
}

// EventSpec addresses one change event to a node by id.
type EventSpec struct {
	Target string     `yaml:"target"`
	Event  ChangeSpec `yaml:"event"`
}

// ChangeSpec is a named change. Exactly one of the value fields is set.
type ChangeSpec struct {
	Name      string `yaml:"name"`
	ValueSpec `yaml:",inline"`
}

// ValueSpec holds the three shapes a change value can take.
type ValueSpec struct {
	Leaf       *LeafSpec       `yaml:"leaf,omitempty"`
	Nested     *ChangeSpec     `yaml:"nested,omitempty"`
	Collection *CollectionSpec `yaml:"collection,omitempty"`
}

// CollectionSpec is one collection change. Exactly one field is set.
type CollectionSpec struct {
	Added   *LeafSpec        `yaml:"item_added,omitempty"`
	Removed *int             `yaml:"item_removed,omitempty"`
	Changed *ItemChangedSpec `yaml:"item_changed,omitempty"`
}

// ItemChangedSpec changes the item at Index.
type ItemChangedSpec struct {
	Index     int `yaml:"index"`
	ValueSpec `yaml:",inline"`
}

// LeafSpec is a typed scalar. Exactly one field is set.
type LeafSpec struct {
	Float   *float32  `yaml:"float,omitempty"`
	Bool    *bool     `yaml:"bool,omitempty"`
	String  *string   `yaml:"string,omitempty"`
	Color   string    `yaml:"color,omitempty"`
	Vector  []float32 `yaml:"vector,omitempty,flow"`
	Texture *string   `yaml:"texture,omitempty"`
}
