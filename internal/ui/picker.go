// Package ui renders resolution results and hosts the interactive picker
// used to choose between ambiguous suggestions.
package ui

import (
	"errors"
	"io"

	"github.com/Cyclone1070/discoverpath/internal/config"
	"github.com/Cyclone1070/discoverpath/internal/ui/models"
	"github.com/Cyclone1070/discoverpath/internal/ui/views"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrPickerCancelled is returned when the user leaves the picker without choosing.
var ErrPickerCancelled = errors.New("selection cancelled")

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
}

func defaultPickerKeys() pickerKeyMap {
	return pickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// PickerModel is a bubbletea model listing suggested paths.
type PickerModel struct {
	state     models.PickerState
	styles    views.Styles
	keys      pickerKeyMap
	chosen    string
	cancelled bool
	done      bool
}

// NewPickerModel creates a picker over choices with the first one highlighted.
func NewPickerModel(choices []string, styles views.Styles) PickerModel {
	return PickerModel{
		state: models.PickerState{
			Title:   "Did you mean:",
			Choices: choices,
		},
		styles: styles,
		keys:   defaultPickerKeys(),
	}
}

func (m PickerModel) Init() tea.Cmd {
	return nil
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.state.Index > 0 {
			m.state.Index--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.state.Index < len(m.state.Choices)-1 {
			m.state.Index++
		}
	case key.Matches(keyMsg, m.keys.Select):
		m.chosen = m.state.Selected()
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Cancel):
		m.cancelled = true
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m PickerModel) View() string {
	if m.done {
		return ""
	}
	return views.RenderPicker(m.state, m.styles) + "\n"
}

// Chosen returns the selected path and whether a selection was made.
func (m PickerModel) Chosen() (string, bool) {
	return m.chosen, m.done && !m.cancelled
}

// RunPicker shows choices and blocks until the user selects or cancels.
func RunPicker(choices []string, cfg config.UIConfig, in io.Reader, out io.Writer) (string, error) {
	model := NewPickerModel(choices, views.NewStyles(cfg))
	final, err := tea.NewProgram(model, tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return "", err
	}

	chosen, ok := final.(PickerModel).Chosen()
	if !ok {
		return "", ErrPickerCancelled
	}
	return chosen, nil
}
