package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/stacker/pkg/scene"
)

// List styles
var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// ObjectPickerModel - Interactive object selection
// =============================================================================

// ObjectPickerModel is the bubbletea model for picking which scene objects
// an operation runs on. Every object starts checked.
type ObjectPickerModel struct {
	Objects   []scene.Object
	Cursor    int
	Checked   map[int]bool
	Confirmed bool
	Height    int
	Offset    int
}

// NewObjectPickerModel creates an object picker with all objects checked.
func NewObjectPickerModel(objs []scene.Object) ObjectPickerModel {
	checked := make(map[int]bool, len(objs))
	for i := range objs {
		checked[i] = true
	}
	return ObjectPickerModel{
		Objects: objs,
		Checked: checked,
		Height:  15,
	}
}

func (m ObjectPickerModel) Init() tea.Cmd {
	return nil
}

func (m ObjectPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Objects)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ":
			if m.Cursor < len(m.Objects) {
				m.Checked[m.Cursor] = !m.Checked[m.Cursor]
			}
		case "a":
			for i := range m.Objects {
				m.Checked[i] = true
			}
		case "n":
			for i := range m.Objects {
				m.Checked[i] = false
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

func (m ObjectPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Objects"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all  n none  ⏎ confirm  q cancel"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Objects) {
		end = len(m.Objects)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		o := m.Objects[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		check := "[ ]"
		if m.Checked[i] {
			check = "[x]"
		}

		bounds := o.Bounds()
		rows = append(rows, []string{cursor, check, o.Name, fmtVec(bounds.Size()), fmt.Sprintf("%g", bounds.Volume())})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "", "Object", "Size", "Volume").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Objects) {
				return lipgloss.NewStyle()
			}
			checked := m.Checked[actualIdx]
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if isCurrent {
				if checked {
					return base.Foreground(colorGreen).Bold(true)
				}
				return base.Foreground(colorDim).Bold(true)
			} else if checked {
				return base.Foreground(colorGreen)
			}
			return base.Foreground(colorDim)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d checked]", m.checkedCount(), len(m.Objects))))

	return b.String()
}

// checkedCount counts the checked objects.
func (m ObjectPickerModel) checkedCount() int {
	n := 0
	for i := range m.Objects {
		if m.Checked[i] {
			n++
		}
	}
	return n
}

// runObjectPicker runs the interactive picker and returns the checked
// objects in scene order. A canceled picker returns no objects, which the
// caller treats like an empty selection.
func runObjectPicker(objs []scene.Object) ([]scene.Object, error) {
	m := NewObjectPickerModel(objs)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	fm, ok := finalModel.(ObjectPickerModel)
	if !ok || !fm.Confirmed {
		return nil, nil
	}

	picked := make([]scene.Object, 0, len(objs))
	for i, o := range objs {
		if fm.Checked[i] {
			picked = append(picked, o)
		}
	}
	return picked, nil
}
