// Package tui provides the interactive search-as-you-type terminal view.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kailas-cloud/okrsearch/internal/domain/search/term"
	okrsearch "github.com/kailas-cloud/okrsearch/pkg/sdk"
)

// Searcher is the part of the Controller the view drives.
type Searcher interface {
	SetSearchTerm(raw string)
	State() okrsearch.State
}

// stateChangedMsg tells the view to re-read the Controller state.
type stateChangedMsg struct{}

// Model is the bubbletea model for the search view.
type Model struct {
	input    textinput.Model
	searcher Searcher
	changes  <-chan struct{}
	styles   Styles
	state    okrsearch.State
	width    int
}

// NewModel creates the view. changes signals every Controller state change.
func NewModel(s Searcher, changes <-chan struct{}) Model {
	ti := textinput.New()
	ti.Placeholder = "Search objectives, key results, teams, users..."
	ti.CharLimit = term.MaxLength
	ti.Width = 60
	ti.Focus()

	return Model{
		input:    ti,
		searcher: s,
		changes:  changes,
		styles:   DefaultStyles(),
		state:    s.State(),
		width:    80,
	}
}

// Init starts the cursor blink and the state listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForChange())
}

func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-m.changes; !ok {
			return nil
		}
		return stateChangedMsg{}
	}
}

// Update handles keys, resizes and Controller notifications.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-12, 10)
		return m, nil

	case tea.KeyMsg:
		//nolint:exhaustive // only quit keys are special
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit
		}

	case stateChangedMsg:
		m.state = m.searcher.State()
		return m, m.waitForChange()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.searcher.SetSearchTerm(v)
	}
	return m, cmd
}

// View renders the input and the four result sections.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Search: "))
	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.state.IsLoading:
		b.WriteString(m.styles.Muted.Render("searching..."))
	case m.state.Err != nil:
		b.WriteString(m.styles.Error.Render("error: " + m.state.Err.Error()))
	case !term.IsQueryable(m.state.DebouncedTerm):
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("type at least %d characters", term.MinLength)))
	case m.state.Results.Total() == 0:
		b.WriteString(m.styles.Muted.Render("no matches"))
	}
	b.WriteString("\n")

	res := m.state.Results
	m.section(&b, "Objectives", len(res.Objectives), func(i int) string {
		o := res.Objectives[i]
		return o.Title + m.progress(o.Progress)
	})
	m.section(&b, "Key results", len(res.KeyResults), func(i int) string {
		kr := res.KeyResults[i]
		return kr.Title + m.progress(kr.Progress)
	})
	m.section(&b, "Teams", len(res.Teams), func(i int) string {
		t := res.Teams[i]
		if t.Description == nil {
			return t.Name
		}
		return t.Name + m.styles.Muted.Render(" - "+*t.Description)
	})
	m.section(&b, "Users", len(res.Users), func(i int) string {
		u := res.Users[i]
		return fmt.Sprintf("%s %s (@%s) %s", u.FirstName, u.LastName, u.Username, m.styles.Muted.Render(u.Email))
	})

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("esc to quit"))
	return b.String()
}

func (m Model) section(b *strings.Builder, title string, n int, line func(int) string) {
	if n == 0 {
		return
	}
	b.WriteString(m.styles.Section.Render(fmt.Sprintf("%s (%d)", title, n)))
	b.WriteString("\n")
	for i := range n {
		b.WriteString(m.styles.Item.Render(line(i)))
		b.WriteString("\n")
	}
}

func (m Model) progress(p *float64) string {
	if p == nil {
		return ""
	}
	return m.styles.Muted.Render(fmt.Sprintf(" %.0f%%", *p*100))
}
