package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/pumlgen/pkg/discover"
	"github.com/matzehuels/pumlgen/pkg/errors"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PackagePickerModel - Interactive package selection
// =============================================================================

// PackagePickerModel is the bubbletea model for choosing packages to generate.
type PackagePickerModel struct {
	Packages  []string
	Cursor    int
	Checked   map[int]bool
	Confirmed bool
	Height    int
	Offset    int
}

// NewPackagePickerModel creates a picker over packages with nothing checked.
func NewPackagePickerModel(packages []string) PackagePickerModel {
	return PackagePickerModel{
		Packages: packages,
		Checked:  make(map[int]bool),
		Height:   15,
	}
}

// Selected returns the checked packages in list order. If the picker was
// confirmed with nothing checked, the package under the cursor is returned.
func (m PackagePickerModel) Selected() []string {
	if !m.Confirmed || len(m.Packages) == 0 {
		return nil
	}
	var out []string
	for i, p := range m.Packages {
		if m.Checked[i] {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = []string{m.Packages[m.Cursor]}
	}
	return out
}

func (m PackagePickerModel) Init() tea.Cmd {
	return nil
}

func (m PackagePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Packages)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ", "x":
			m.Checked[m.Cursor] = !m.Checked[m.Cursor]
		case "a":
			all := len(m.checked()) < len(m.Packages)
			for i := range m.Packages {
				m.Checked[i] = all
			}
		case "enter":
			m.Confirmed = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m PackagePickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Packages"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all  ⏎ generate  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Packages))
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		box := "[ ]"
		if m.Checked[i] {
			box = StyleSuccess.Render("[x]")
		}

		line := fmt.Sprintf("%s%s %s", cursor, box, m.Packages[i])
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d selected  [%d/%d]", len(m.checked()), m.Cursor+1, len(m.Packages))))

	return b.String()
}

func (m PackagePickerModel) checked() []int {
	var out []int
	for i := range m.Packages {
		if m.Checked[i] {
			out = append(out, i)
		}
	}
	return out
}

// pickPackages lets the user choose among the packages below root. It
// returns nil if the user quits without confirming.
func pickPackages(ctx context.Context, root string) ([]string, error) {
	packages, err := discover.Packages(root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "read root %s", root)
	}
	if len(packages) == 0 {
		return nil, errors.New(errors.ErrCodeNotFound, "no packages with Python files below %s", root)
	}

	final, err := tea.NewProgram(NewPackagePickerModel(packages), tea.WithContext(ctx)).Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("package picker: %w", err)
	}
	return final.(PackagePickerModel).Selected(), nil
}
