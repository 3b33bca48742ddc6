package cli

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(m PackagePickerModel, keys ...string) PackagePickerModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(PackagePickerModel)
	}
	return m
}

func TestPackagePickerSelection(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want []string
	}{
		{"cursor only", []string{"down", "enter"}, []string{"models"}},
		{"toggle two", []string{" ", "down", "down", "x", "enter"}, []string{"api", "utils"}},
		{"toggle off", []string{" ", " ", "down", "enter"}, []string{"models"}},
		{"select all", []string{"a", "enter"}, []string{"api", "models", "utils"}},
		{"quit", []string{" ", "q"}, nil},
		{"clamped", []string{"up", "down", "down", "down", "down", "enter"}, []string{"utils"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(NewPackagePickerModel([]string{"api", "models", "utils"}), tt.keys...)
			if got := m.Selected(); !slices.Equal(got, tt.want) {
				t.Errorf("Selected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPackagePickerView(t *testing.T) {
	m := press(NewPackagePickerModel([]string{"api", "models"}), " ")
	view := m.View()

	for _, want := range []string{"Select Packages", "api", "models", "1 selected", "[1/2]"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestPackagePickerWindowSize(t *testing.T) {
	next, _ := NewPackagePickerModel(nil).Update(tea.WindowSizeMsg{Width: 80, Height: 8})
	if h := next.(PackagePickerModel).Height; h != 5 {
		t.Errorf("Height = %d, want minimum 5", h)
	}
}
