package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// menuItem is one selectable difficulty.
type menuItem struct {
	preset config.DifficultyPreset
	label  string
}

var menuItems = []menuItem{
	{config.DifficultyEasy, "Easy    - slower gravity"},
	{config.DifficultyNormal, "Normal  - standard timing"},
	{config.DifficultyHard, "Hard    - faster gravity"},
}

// MenuKeyMap defines the key bindings for the start menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel lets the player pick a difficulty before the game starts.
type MenuModel struct {
	cursor   int
	best     int
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	selected *config.DifficultyPreset
	quitting bool
}

// NewMenuModel creates a start menu. initial preselects a preset.
func NewMenuModel(best, width, height int, initial config.DifficultyPreset) MenuModel {
	cursor := 1
	for i, it := range menuItems {
		if it.preset == initial {
			cursor = i
		}
	}
	return MenuModel{
		cursor: cursor,
		best:   best,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(menuItems)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			p := menuItems[m.cursor].preset
			m.selected = &p
			return m, tea.Quit
		}
	}
	return m, nil
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("T E T R I S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Best score: %d", m.best), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, it := range menuItems {
		line := "  " + it.label
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + it.label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

// Selected returns the chosen preset, or false if the player quit.
func (m MenuModel) Selected() (config.DifficultyPreset, bool) {
	if m.selected == nil {
		return "", false
	}
	return *m.selected, true
}

// centerText pads text on the left to center it in width columns.
// ANSI styling does not count towards the width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunMenu shows the start menu and returns the chosen preset. ok is false
// when the player quit instead.
func RunMenu(best, width, height int, initial config.DifficultyPreset) (preset config.DifficultyPreset, ok bool, err error) {
	p := tea.NewProgram(NewMenuModel(best, width, height, initial), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("tui: %w", err)
	}
	m, isMenu := final.(MenuModel)
	if !isMenu {
		return "", false, nil
	}
	preset, ok = m.Selected()
	return preset, ok, nil
}
