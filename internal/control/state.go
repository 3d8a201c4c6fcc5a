// Package control holds the two actuator flags that input collaborators
// write and the simulation reads once per frame.
package control

// State is a pair of independent left/right flags. It performs no
// validation; exclusivity is applied by Effective.
type State struct {
	left  bool
	right bool
}

// SetLeft sets the raw left flag.
func (s *State) SetLeft(active bool) {
	s.left = active
}

// SetRight sets the raw right flag.
func (s *State) SetRight(active bool) {
	s.right = active
}

// Left returns the raw left flag.
func (s *State) Left() bool {
	return s.left
}

// Right returns the raw right flag.
func (s *State) Right() bool {
	return s.right
}

// Release clears both flags. Input collaborators call it on pointer
// leave/cancel and when every touch is lifted.
func (s *State) Release() {
	s.left = false
	s.right = false
}

// Effective returns the flags after the exclusivity filter: a side is
// effective only when the other one is not pressed.
func (s *State) Effective() (left, right bool) {
	return s.left && !s.right, s.right && !s.left
}
