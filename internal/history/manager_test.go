// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package history

import (
	"slices"
	"testing"
)

const (
	testW = 8
	testH = 4
)

func stroke(pix []uint32, i int, c uint32) {
	pix[i] = c
}

func TestManagerUndoRedoInverse(t *testing.T) {
	m := NewManager(10)
	pix := make([]uint32, testW*testH)

	// Three strokes, each preceded by Save.
	var states [][]uint32
	for i, c := range []uint32{red, 0xff00ff00, 0xff0000ff} {
		states = append(states, slices.Clone(pix))
		m.Save(pix, testW, testH)
		stroke(pix, i*3, c)
	}
	final := slices.Clone(pix)

	for i := len(states) - 1; i >= 0; i-- {
		before := slices.Clone(pix)
		if !m.Undo(pix, testW, testH) {
			t.Fatalf("Undo() #%d = false", i)
		}
		if !slices.Equal(pix, states[i]) {
			t.Fatalf("after undo, buffer = %v, want %v", pix, states[i])
		}
		if !m.Redo(pix, testW, testH) {
			t.Fatal("Redo() = false")
		}
		if !slices.Equal(pix, before) {
			t.Fatalf("undo; redo did not restore the buffer: %v, want %v", pix, before)
		}
		m.Undo(pix, testW, testH)
	}

	if m.Undo(pix, testW, testH) {
		t.Error("Undo() on exhausted history = true")
	}

	for m.Redo(pix, testW, testH) {
	}
	if !slices.Equal(pix, final) {
		t.Errorf("redo all = %v, want %v", pix, final)
	}
}

func TestManagerSaveClearsRedo(t *testing.T) {
	m := NewManager(10)
	pix := make([]uint32, testW*testH)

	m.Save(pix, testW, testH)
	stroke(pix, 0, red)
	m.Undo(pix, testW, testH)
	if m.RedoLen() != 1 {
		t.Fatalf("RedoLen() = %d, want 1", m.RedoLen())
	}

	m.Save(pix, testW, testH)
	stroke(pix, 1, red)
	if m.RedoLen() != 0 {
		t.Errorf("RedoLen() after Save = %d, want 0", m.RedoLen())
	}

	before := slices.Clone(pix)
	if m.Redo(pix, testW, testH) {
		t.Error("Redo() after a new stroke = true, want false")
	}
	if !slices.Equal(pix, before) {
		t.Error("failed Redo() modified the buffer")
	}
}

func TestManagerPushUndoKeepsRedo(t *testing.T) {
	m := NewManager(10)
	pix := make([]uint32, testW*testH)

	m.Save(pix, testW, testH)
	stroke(pix, 0, red)
	m.Undo(pix, testW, testH)

	m.PushUndo(pix, testW, testH)
	if m.RedoLen() != 1 || m.UndoLen() != 1 {
		t.Errorf("PushUndo: undo=%d redo=%d, want 1 and 1", m.UndoLen(), m.RedoLen())
	}
}

func TestManagerEvictsOldest(t *testing.T) {
	m := NewManager(3)
	pix := make([]uint32, testW*testH)

	for i := 0; i < 5; i++ {
		m.Save(pix, testW, testH)
		stroke(pix, i, red)
	}
	if m.UndoLen() != 3 {
		t.Fatalf("UndoLen() = %d, want 3", m.UndoLen())
	}

	// Only the three newest pre-stroke states survive.
	for want := 4; want >= 2; want-- {
		if !m.Undo(pix, testW, testH) {
			t.Fatal("Undo() = false")
		}
		set := 0
		for _, c := range pix {
			if c != 0 {
				set++
			}
		}
		if set != want {
			t.Errorf("after undo, %d pixels set, want %d", set, want)
		}
	}
	if m.Undo(pix, testW, testH) {
		t.Error("oldest entries were not evicted")
	}
}

func TestManagerResize(t *testing.T) {
	m := NewManager(5)
	pix := make([]uint32, testW*testH)
	pix[0] = red

	m.Save(pix, testW, testH)
	pix[1] = red

	// Grow the live buffer to 10x5, preserving the top-left.
	grown := make([]uint32, 10*5)
	grown[0], grown[1] = red, red
	m.Resize(10, 5)

	if !m.Undo(grown, 10, 5) {
		t.Fatal("Undo() after Resize = false")
	}
	if grown[0] != red || grown[1] != 0 {
		t.Errorf("restored = %v, want only pixel 0 set", grown[:4])
	}
	if !m.Redo(grown, 10, 5) || grown[1] != red {
		t.Errorf("Redo() after Resize did not restore pixel 1")
	}
}

func TestManagerReset(t *testing.T) {
	m := NewManager(0)
	if m.Capacity() != DefaultCapacity {
		t.Errorf("Capacity() = %d, want %d", m.Capacity(), DefaultCapacity)
	}

	pix := make([]uint32, testW*testH)
	m.Save(pix, testW, testH)
	m.Undo(pix, testW, testH)
	m.Save(pix, testW, testH)
	if m.runs() == 0 {
		t.Error("runs() = 0 with stored snapshots")
	}

	m.Reset()
	if m.UndoLen() != 0 || m.RedoLen() != 0 || m.runs() != 0 {
		t.Errorf("after Reset: undo=%d redo=%d runs=%d", m.UndoLen(), m.RedoLen(), m.runs())
	}
}

func TestStackPeekPop(t *testing.T) {
	s := NewStack(0)
	if s.Capacity() != 1 {
		t.Errorf("Capacity() = %d, want 1", s.Capacity())
	}
	if _, ok := s.peek(); ok {
		t.Error("peek() on empty stack = ok")
	}

	a := Entry{Width: 1, Height: 1, Runs: []Run{{1, red}}}
	b := Entry{Width: 1, Height: 1, Runs: []Run{{1, 0}}}
	if s.Push(a) {
		t.Error("Push() into empty stack evicted")
	}
	if !s.Push(b) {
		t.Error("Push() into full stack did not evict")
	}
	top, ok := s.peek()
	if !ok || top.Runs[0].Color != 0 {
		t.Errorf("peek() = %+v, want the newest entry", top)
	}
	if _, ok := s.Pop(); !ok {
		t.Error("Pop() = false")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}
