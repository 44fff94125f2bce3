package scene

import "strconv"

// Handle addresses a node inside a Graph. The zero Handle addresses nothing.
//
// Generation is bumped every time a slot is freed, so a handle kept across a
// removal goes stale instead of pointing at whatever reuses the slot.
type Handle struct {
	Index      uint32
	Generation uint32
}

// NoHandle is the handle that never resolves.
var NoHandle = Handle{}

// IsNone reports whether h is the zero handle.
func (h Handle) IsNone() bool {
	return h.Generation == 0
}

func (h Handle) String() string {
	if h.IsNone() {
		return "none"
	}

	return strconv.FormatUint(uint64(h.Index), 10) + ":" + strconv.FormatUint(uint64(h.Generation), 10)
}
