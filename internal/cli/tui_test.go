package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/captionstyle/pkg/caption"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m PresetListModel, keys ...string) (PresetListModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(PresetListModel)
	}
	return m, cmd
}

func TestPresetListNavigation(t *testing.T) {
	m := NewPresetListModel(caption.DefaultCatalog(), caption.ProfileFull, "")

	m, _ = press(m, "up")
	if m.Cursor != 0 {
		t.Errorf("cursor moved above the first row: %d", m.Cursor)
	}

	m, _ = press(m, "down", "j", "down", "down", "down", "down")
	if m.Cursor != len(m.Names)-1 {
		t.Errorf("cursor = %d, want last row %d", m.Cursor, len(m.Names)-1)
	}

	m, _ = press(m, "k")
	if m.Names[m.Cursor] != "bold" {
		t.Errorf("cursor on %q, want bold", m.Names[m.Cursor])
	}
}

func TestPresetListSelect(t *testing.T) {
	m := NewPresetListModel(caption.DefaultCatalog(), caption.ProfileFull, "")

	m, cmd := press(m, "down", "enter")
	if m.Selected != "gaming" {
		t.Errorf("Selected = %q, want gaming", m.Selected)
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestPresetListQuit(t *testing.T) {
	m := NewPresetListModel(caption.DefaultCatalog(), caption.ProfileFull, "")

	m, cmd := press(m, "q")
	if m.Selected != "" {
		t.Errorf("Selected = %q after quit", m.Selected)
	}
	if cmd == nil {
		t.Error("q should quit the program")
	}
}

func TestPresetListScrolls(t *testing.T) {
	m := NewPresetListModel(caption.DefaultCatalog(), caption.ProfileFull, "")
	m.Height = 2

	m, _ = press(m, "down", "down", "down")
	if m.Offset != 2 {
		t.Errorf("Offset = %d, want 2", m.Offset)
	}
	m, _ = press(m, "up", "up", "up")
	if m.Offset != 0 {
		t.Errorf("Offset = %d, want 0", m.Offset)
	}
}

func TestPresetListWindowSize(t *testing.T) {
	m := NewPresetListModel(caption.DefaultCatalog(), caption.ProfileFull, "")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 4})
	if h := next.(PresetListModel).Height; h != 3 {
		t.Errorf("Height = %d, want the minimum 3", h)
	}
}

func TestPresetListPreview(t *testing.T) {
	catalog := caption.DefaultCatalog()
	m := NewPresetListModel(catalog, caption.ProfileBasic, "Live")
	m, _ = press(m, "down")

	p, _ := catalog.Get("gaming")
	p.Text = "Live"
	want := caption.Filter(p, caption.WithProfile(caption.ProfileBasic))
	if got := m.Preview(); got != want {
		t.Errorf("Preview() = %q, want %q", got, want)
	}
	if !strings.Contains(m.View(), "gaming") {
		t.Error("view does not list the presets")
	}
}

func TestPresetListEmpty(t *testing.T) {
	m := NewPresetListModel(caption.NewCatalog(), caption.ProfileFull, "")
	if m.Preview() != "" {
		t.Error("empty catalog has a preview")
	}
	m, cmd := press(m, "enter")
	if m.Selected != "" || cmd != nil {
		t.Error("enter on an empty list selected something")
	}
}
