package integrator

import "github.com/mirstar13/march-render/internal/scene"

type containerEntry struct {
	id              scene.NodeID
	refractiveIndex float64
}

// Containers is the ordered list of transparent objects the ray currently
// sits inside. Values are immutable: every mutating method returns a new
// Containers, leaving the receiver (and therefore the caller's view of it)
// unchanged -- logical copy-on-write, per spec §3 and §9.
type Containers struct {
	stack []containerEntry
}

func (c Containers) IsEmpty() bool { return len(c.stack) == 0 }

// Contains reports whether id appears anywhere in the stack.
func (c Containers) Contains(id scene.NodeID) bool {
	for _, e := range c.stack {
		if e.id == id {
			return true
		}
	}
	return false
}

func (c Containers) indexOf(id scene.NodeID) int {
	for i, e := range c.stack {
		if e.id == id {
			return i
		}
	}
	return -1
}

func (c Containers) top() (float64, bool) {
	if len(c.stack) == 0 {
		return 0, false
	}
	return c.stack[len(c.stack)-1].refractiveIndex, true
}

// RefractiveIndices computes (n1, n2) for a ray crossing the surface of
// hitID whose material's refractive index is hitRefractiveIndex, and
// returns the Containers state after toggling hitID's membership: entering
// pushes it, exiting pops it (spec §3). n1 is the medium's refractive index
// before the transition (the stack's top before the toggle, or 1.0 if
// empty); n2 is the stack's top after the toggle, or 1.0 if empty.
func (c Containers) RefractiveIndices(hitID scene.NodeID, hitRefractiveIndex float64) (next Containers, n1, n2 float64) {
	n1 = 1.0
	if top, ok := c.top(); ok {
		n1 = top
	}

	newStack := make([]containerEntry, len(c.stack))
	copy(newStack, c.stack)

	if idx := c.indexOf(hitID); idx >= 0 {
		newStack = append(newStack[:idx], newStack[idx+1:]...)
	} else {
		newStack = append(newStack, containerEntry{id: hitID, refractiveIndex: hitRefractiveIndex})
	}

	next = Containers{stack: newStack}
	n2 = 1.0
	if top, ok := next.top(); ok {
		n2 = top
	}
	return next, n1, n2
}
