// internal/entity/handle.go
package entity

import "fmt"

// Handle is a weak reference to a pooled instance: a slot index plus the
// generation the slot had when the handle was issued. Releasing a slot bumps
// its generation, so every handle issued before the release goes stale.
type Handle struct {
	Index      uint32
	Generation uint32
}

// Nil is the zero handle. Generations start at 1, so it never resolves.
var Nil Handle

// IsNil reports whether h is the zero handle.
func (h Handle) IsNil() bool {
	return h.Generation == 0
}

func (h Handle) String() string {
	if h.IsNil() {
		return "handle(nil)"
	}
	return fmt.Sprintf("handle(%d#%d)", h.Index, h.Generation)
}
