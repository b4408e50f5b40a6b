package geom

import "github.com/matzehuels/ribpatch/pkg/errors"

// Stack is the nested transform state of a scene. It always holds at least
// the root frame; the top frame is the cumulative transform in effect.
type Stack struct {
	frames []Transform
}

// NewStack returns a stack holding only the identity root frame.
func NewStack() *Stack {
	return &Stack{frames: []Transform{Identity()}}
}

// Top returns the cumulative transform of the innermost open scope.
func (s *Stack) Top() Transform {
	return s.frames[len(s.frames)-1]
}

// Depth returns the number of frames, including the root.
func (s *Stack) Depth() int {
	return len(s.frames)
}

// Push opens a nested scope whose frame starts as a copy of the current top.
func (s *Stack) Push() {
	s.frames = append(s.frames, s.Top())
}

// Pop closes the innermost scope. Popping the root frame is a
// STACK_UNDERFLOW error and leaves the stack unchanged.
func (s *Stack) Pop() error {
	if len(s.frames) == 1 {
		return errors.New(errors.ErrCodeStackUnderflow, "TransformEnd without matching TransformBegin")
	}
	s.frames = s.frames[:len(s.frames)-1]
	return nil
}

// Apply right-multiplies t onto the top frame in place: top = top × t.
func (s *Stack) Apply(t Transform) {
	i := len(s.frames) - 1
	s.frames[i] = s.frames[i].Mul(t)
}
