// Package dispatch turns inspector change events into reversible commands.
//
// Every dispatcher has the shape of Func: it receives the event, the handle
// of the edited node and a snapshot of that node, and either returns a
// command or reports false. False is the single "not applicable" outcome for
// every reason an event cannot be applied: the node is of another kind, the
// field is unknown or read-only, the value has the wrong type or shape, or a
// collection edit is structural. Dispatch never fails and never panics.
//
// Dispatchers follow the structure of the types they edit:
//
//	Route
//	├── Pivot            ── Base ─────────────────────────────► HandleBase
//	├── HandlePointLight ─┐
//	├── HandleSpotLight  ─┼─ Base ──► HandleBaseLight ── Node ─► HandleBase
//	└── HandleDirectionalLight ┘          └── Base (itself)
//	        └── CsmOptions ── SplitOptions ── AbsoluteFarPlanes[i]
//	                                       └─ RelativeFractions[i]
//
// Kind-specific dispatchers check the node's runtime kind before anything
// else, so an event routed for a node that has since changed kind is
// declined instead of misapplied.
package dispatch
