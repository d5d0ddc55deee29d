package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"larch/internal/driver"
)

func newTestModel(t *testing.T, events chan driver.Event) *progressModel {
	t.Helper()
	model := NewProgressModel("checking", []string{"a.lh", "b.lh"}, events)
	pm, ok := model.(*progressModel)
	if !ok {
		t.Fatalf("expected *progressModel, got %T", model)
	}
	return pm
}

func expectQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a quit command, got nil")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestQuitKeys(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	}
	for _, key := range keys {
		m := newTestModel(t, make(chan driver.Event))
		_, cmd := m.Update(key)
		expectQuit(t, cmd)
	}

	// Other keys are ignored.
	m := newTestModel(t, make(chan driver.Event))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cmd != nil {
		t.Error("unbound key should not produce a command")
	}
}

func TestClosedChannelQuits(t *testing.T) {
	events := make(chan driver.Event)
	close(events)

	m := newTestModel(t, events)
	msg := m.listenForEvent()()
	if _, ok := msg.(doneMsg); !ok {
		t.Fatalf("expected doneMsg on a closed channel, got %T", msg)
	}
	updated, cmd := m.Update(msg)
	expectQuit(t, cmd)
	if !updated.(*progressModel).done {
		t.Error("model should be done after the channel closes")
	}
}

func TestApplyEvent(t *testing.T) {
	m := newTestModel(t, make(chan driver.Event))

	m.applyEvent(driver.Event{Path: "a.lh", Stage: driver.StageCheck})
	if m.items[0].status != "done" || m.items[0].fract != 1.0 {
		t.Errorf("expected a.lh done at 1.0, got %q at %v", m.items[0].status, m.items[0].fract)
	}

	m.applyEvent(driver.Event{Path: "b.lh", Stage: driver.StageLex, Err: errors.New("bad literal")})
	if !m.items[1].failed || m.items[1].status != "error" {
		t.Errorf("expected b.lh failed, got %+v", m.items[1])
	}

	// Events for unknown paths are dropped.
	m.applyEvent(driver.Event{Path: "c.lh", Stage: driver.StageCheck})
	if len(m.items) != 2 {
		t.Errorf("unknown path must not grow the item list, got %d items", len(m.items))
	}
}
