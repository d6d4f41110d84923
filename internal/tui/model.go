// Package tui is an interactive terminal viewer for a cheatsheet page: a tab
// bar, a list of collapsible sections and a scrolling body.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/ziadkadry99/quickref/internal/content"
	"github.com/ziadkadry99/quickref/internal/view"
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Underline(true).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	headingStyle     = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cursorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 2)
	keyStyle         = lipgloss.NewStyle().Bold(true)
)

// Model is the bubbletea model. Copies share one view.Session.
type Model struct {
	session  *view.Session
	renderer *glamour.TermRenderer
	keys     keyMap
	viewport viewport.Model

	// cursor holds the focused section per tab.
	cursor []int
	bodies map[[2]int]string
	width  int
	height int
	ready  bool
}

// New creates a model in the initial state: first tab, all sections
// collapsed, cursor on the first section.
func New(page *content.Page, renderer *glamour.TermRenderer) Model {
	return Model{
		session:  view.New(page),
		renderer: renderer,
		keys:     newKeyMap(),
		cursor:   make([]int, len(page.Tabs)),
		bodies:   make(map[[2]int]string),
	}
}

// Run starts the program on the alternate screen.
func Run(page *content.Page, renderer *glamour.TermRenderer) error {
	p := tea.NewProgram(New(page, renderer), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Session exposes the view state.
func (m Model) Session() *view.Session { return m.session }

// Cursor returns the focused section of the selected tab.
func (m Model) Cursor() int { return m.cursor[m.session.Selected()] }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := m.bodyHeight()
		if !m.ready {
			m.viewport = viewport.New(msg.Width, h)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = h
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		tab := m.session.Selected()
		sections := len(m.session.SelectedTab().Sections)

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.session.NextTab()
			m.viewport.GotoTop()
		case key.Matches(msg, m.keys.PrevTab):
			m.session.PrevTab()
			m.viewport.GotoTop()
		case key.Matches(msg, m.keys.JumpTab):
			if err := m.session.SelectTab(int(msg.String()[0]-'1')); err == nil {
				m.viewport.GotoTop()
			}
		case key.Matches(msg, m.keys.Up):
			if m.cursor[tab] > 0 {
				m.cursor[tab]--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor[tab] < sections-1 {
				m.cursor[tab]++
			}
		case key.Matches(msg, m.keys.Toggle):
			_, _ = m.session.Toggle(tab, m.cursor[tab])
		case key.Matches(msg, m.keys.ExpandAll):
			_ = m.session.ExpandAll(tab)
		case key.Matches(msg, m.keys.CollapseAll):
			_ = m.session.CollapseAll(tab)
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.header() + "\n" + m.viewport.View() + "\n" + m.footer()
}

func (m Model) header() string {
	page := m.session.Page()
	tabs := make([]string, len(page.Tabs))
	for i, tab := range page.Tabs {
		label := fmt.Sprintf("%d %s", i+1, tab.Label)
		if i == m.session.Selected() {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = inactiveTabStyle.Render(label)
		}
	}
	return titleStyle.Render(page.Title) + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) footer() string {
	text := renderHelp(m.keys.ShortHelp())
	if m.width > 4 {
		text = lipgloss.NewStyle().MaxWidth(m.width - 4).Render(text)
	}
	return footerStyle.Render(text)
}

// bodyHeight is the terminal height minus the two header lines and footer.
func (m Model) bodyHeight() int {
	h := m.height - 3
	if h < 3 {
		h = 3
	}
	return h
}

// refresh rebuilds the viewport content and keeps the cursor line visible.
func (m *Model) refresh() {
	body, cursorLine := m.tabBody()
	m.viewport.SetContent(body)

	if cursorLine < m.viewport.YOffset {
		m.viewport.SetYOffset(cursorLine)
	} else if cursorLine >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(cursorLine - m.viewport.Height + 1)
	}
}

// tabBody renders the selected tab and reports the line holding the cursor.
func (m *Model) tabBody() (string, int) {
	ti := m.session.Selected()
	tab := m.session.SelectedTab()

	var lines []string
	if tab.Heading != "" {
		lines = append(lines, headingStyle.Render(tab.Heading), "")
	}

	cursorLine := 0
	for si, s := range tab.Sections {
		marker := "▸"
		if m.session.Expanded(ti, si) {
			marker = "▾"
		}
		row := "  " + marker + " " + s.Title
		if si == m.cursor[ti] {
			cursorLine = len(lines)
			row = cursorStyle.Render("> " + marker + " " + s.Title)
		}
		lines = append(lines, row)

		if m.session.Expanded(ti, si) {
			lines = append(lines, strings.Split(strings.TrimRight(m.body(ti, si), "\n"), "\n")...)
		}
	}
	return strings.Join(lines, "\n"), cursorLine
}

// body renders a section once and caches it; content never changes.
func (m *Model) body(ti, si int) string {
	k := [2]int{ti, si}
	if out, ok := m.bodies[k]; ok {
		return out
	}
	src := m.session.Page().Tabs[ti].Sections[si].Body
	out := src
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(src); err == nil {
			out = rendered
		}
	}
	m.bodies[k] = out
	return out
}
