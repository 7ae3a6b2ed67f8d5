package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/plexus/internal/analysis"
)

// chromeLines is the vertical space taken by the status bar, tab bar,
// and footer around the scrolling viewport.
const chromeLines = 3

// Model is the root BubbleTea model for the results browser. It shows
// one completed analysis, either fresh or loaded from the store.
type Model struct {
	Result *analysis.Result
	Tab    Tab
	Keys   KeyMap
	Width  int
	Height int

	viewport viewport.Model
	ready    bool
}

// NewModel creates a browser model over a completed result.
func NewModel(res *analysis.Result) Model {
	return Model{
		Result: res,
		Keys:   DefaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		height := m.Height - chromeLines
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = m.Width
			m.viewport.Height = height
		}
		m.setContent()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.NextTab):
		m.Tab = m.Tab.Next()
		m.setContent()

	case key.Matches(msg, m.Keys.PrevTab):
		m.Tab = m.Tab.Prev()
		m.setContent()

	case key.Matches(msg, m.Keys.Top):
		m.viewport.GotoTop()

	case key.Matches(msg, m.Keys.Bottom):
		m.viewport.GotoBottom()

	default:
		if n, err := strconv.Atoi(msg.String()); err == nil {
			if tab, ok := TabFromNumber(n); ok {
				m.Tab = tab
				m.setContent()
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// setContent refreshes the viewport for the active tab.
func (m *Model) setContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.tabContent())
	m.viewport.GotoTop()
}

func (m Model) tabContent() string {
	switch m.Tab {
	case TabCandidates:
		return renderPairs(m.Result.CrossGroup,
			"no cross-group cross-compartment candidates")
	case TabUnobserved:
		return renderPairs(m.Result.Unobserved,
			"no unobserved cross-compartment pairs")
	default:
		return renderGroups(m.Result)
	}
}

func (m Model) View() string {
	if m.Width == 0 {
		return "initializing..."
	}

	sections := []string{
		m.renderStatusBar(),
		TabBar{ActiveTab: m.Tab, Width: m.Width}.View(),
		m.viewport.View(),
		Footer{Width: m.Width, Bindings: FooterBindings(m.Keys)}.View(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderStatusBar() string {
	st := m.Result.Stats
	left := styleStatusLabel.Render("plexus") + " " +
		styleStatusValue.Render("run "+m.Result.RunID)
	right := strings.Join([]string{
		"groups " + strconv.Itoa(st.Groups),
		"candidates " + strconv.Itoa(st.CrossGroup),
		"unobserved " + strconv.Itoa(st.Unobserved),
	}, "  ")

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return styleStatusBar.Width(m.Width).Render(left + strings.Repeat(" ", gap) + right)
}
