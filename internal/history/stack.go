// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package history

// Stack is a bounded LIFO of entries. Pushing onto a full stack evicts the
// oldest entry, never the newest.
type Stack struct {
	entries  []Entry
	capacity int
}

// NewStack creates a stack holding at most capacity entries.
// A capacity below 1 is raised to 1.
func NewStack(capacity int) *Stack {
	if capacity < 1 {
		capacity = 1
	}
	return &Stack{
		entries:  make([]Entry, 0, capacity),
		capacity: capacity,
	}
}

// Push appends e, evicting the bottom entry when the stack is full.
// It reports whether an entry was evicted.
func (s *Stack) Push(e Entry) bool {
	evicted := false
	if len(s.entries) >= s.capacity {
		copy(s.entries, s.entries[1:])
		s.entries[len(s.entries)-1] = Entry{}
		s.entries = s.entries[:len(s.entries)-1]
		evicted = true
	}
	s.entries = append(s.entries, e)
	return evicted
}

// Pop removes and returns the top entry.
func (s *Stack) Pop() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	top := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = Entry{}
	s.entries = s.entries[:len(s.entries)-1]
	return top, true
}

// peek returns the top entry without removing it.
func (s *Stack) peek() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// Len returns the number of stored entries.
func (s *Stack) Len() int { return len(s.entries) }

// Capacity returns the maximum number of entries.
func (s *Stack) Capacity() int { return s.capacity }

// Clear drops every entry.
func (s *Stack) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}

// each calls fn with a pointer to every entry, bottom first.
func (s *Stack) each(fn func(e *Entry)) {
	for i := range s.entries {
		fn(&s.entries[i])
	}
}
