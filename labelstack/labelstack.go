// Package labelstack is a small stack of label names, used while
// compiling nested Case contexts so that an inner Jump or inline leaf
// can find the root label its enclosing Case installed (spec.md §4.8's
// <labelRoot> and <labelRoot>_<target> labels). Tail loops do not use
// it; a TailCall checks the enclosing TailDef directly.
//
// It is adapted from the teacher's stack package, which was a stack of
// object.Object used by the bytecode VM to hold return addresses and
// intermediate values. The Push/Pop/Empty/Size shape carries over
// unchanged; the element type is now a label name instead of a runtime
// value, because this package's job is tracking lexical nesting during
// code generation, not evaluation.
package labelstack

import "github.com/pkg/errors"

// Stack holds the labels of the constructs currently being compiled,
// most-recently-entered last.
type Stack struct {
	entries []string
}

// New creates an empty label stack.
func New() *Stack {
	return &Stack{}
}

// Empty reports whether the stack holds no labels.
func (s *Stack) Empty() bool {
	return len(s.entries) == 0
}

// Size reports how many labels are currently on the stack.
func (s *Stack) Size() int {
	return len(s.entries)
}

// Push enters a new nested construct's label.
func (s *Stack) Push(label string) {
	s.entries = append(s.entries, label)
}

// Pop leaves the most recently entered construct, returning its label.
func (s *Stack) Pop() (string, error) {
	if s.Empty() {
		return "", errors.New("labelstack: pop from an empty stack")
	}
	last := len(s.entries) - 1
	label := s.entries[last]
	s.entries = s.entries[:last]
	return label, nil
}

// Top returns the innermost enclosing label without removing it. ok is
// false when the stack is empty.
func (s *Stack) Top() (string, bool) {
	if s.Empty() {
		return "", false
	}
	return s.entries[len(s.entries)-1], true
}
