// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package history

// DefaultCapacity is the number of snapshots kept per stack.
const DefaultCapacity = 40

// Manager owns the undo and redo stacks. The stacks never share storage:
// every transfer compresses the live buffer again, so undo and redo are exact
// inverses.
//
// Manager is NOT safe for concurrent use.
type Manager struct {
	undo *Stack
	redo *Stack
}

// NewManager creates a manager whose stacks each hold capacity snapshots.
// If capacity <= 0, DefaultCapacity is used.
func NewManager(capacity int) *Manager {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Manager{
		undo: NewStack(capacity),
		redo: NewStack(capacity),
	}
}

// PushUndo snapshots the w×h buffer onto the undo stack, evicting the oldest
// snapshot when full. The redo stack is left alone.
func (m *Manager) PushUndo(pix []uint32, w, h int) {
	m.undo.Push(Compress(pix, w, h))
}

// Save records the state before a new stroke: PushUndo followed by dropping
// the redo history.
func (m *Manager) Save(pix []uint32, w, h int) {
	m.PushUndo(pix, w, h)
	m.redo.Clear()
}

// Undo moves the current buffer onto the redo stack and restores the most
// recent undo snapshot into pix. It returns false, leaving pix untouched,
// when there is nothing to undo.
func (m *Manager) Undo(pix []uint32, w, h int) bool {
	return transfer(m.undo, m.redo, pix, w, h)
}

// Redo is the inverse of Undo.
func (m *Manager) Redo(pix []uint32, w, h int) bool {
	return transfer(m.redo, m.undo, pix, w, h)
}

func transfer(from, to *Stack, pix []uint32, w, h int) bool {
	e, ok := from.Pop()
	if !ok {
		return false
	}
	to.Push(Compress(pix, w, h))
	Decompress(e, pix)
	return true
}

// Resize re-encodes every stored snapshot for a w×h buffer.
func (m *Manager) Resize(w, h int) {
	fn := func(e *Entry) { *e = e.Resize(w, h) }
	m.undo.each(fn)
	m.redo.each(fn)
}

// Reset drops both stacks.
func (m *Manager) Reset() {
	m.undo.Clear()
	m.redo.Clear()
}

// UndoLen returns the number of undo snapshots.
func (m *Manager) UndoLen() int { return m.undo.Len() }

// RedoLen returns the number of redo snapshots.
func (m *Manager) RedoLen() int { return m.redo.Len() }

// Capacity returns the per-stack capacity.
func (m *Manager) Capacity() int { return m.undo.Capacity() }

// runs returns the total number of runs held by both stacks.
// Each run costs 8 bytes, which makes this a cheap memory estimate.
func (m *Manager) runs() int {
	n := 0
	count := func(e *Entry) { n += len(e.Runs) }
	m.undo.each(count)
	m.redo.each(count)
	return n
}
