// Package tui is an interactive terminal week browser.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jhrahman/shiftmate/internal/domain/contract"
	"github.com/jhrahman/shiftmate/internal/domain/entity"
	"github.com/jhrahman/shiftmate/internal/domain/roster"
)

type loadedMsg struct {
	offset     int
	assignment entity.Assignment
}

type savedMsg struct {
	status string
	err    error
}

// Model browses weeks with a Navigator and edits morning overrides.
type Model struct {
	ctx    context.Context
	svc    contract.RosterService
	team   entity.Team
	nav    roster.Navigator
	keys   keyMap
	styles styles

	assignment entity.Assignment
	loaded     bool
	status     string
	err        error
}

func New(ctx context.Context, svc contract.RosterService) Model {
	return Model{
		ctx:    ctx,
		svc:    svc,
		team:   svc.Team(),
		keys:   defaultKeys(),
		styles: defaultStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.load()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		// drop answers for a week we already navigated away from
		if msg.offset == m.nav.Offset {
			m.assignment = msg.assignment
			m.loaded = true
		}
		return m, nil

	case savedMsg:
		m.status, m.err = msg.status, msg.err
		return m, m.load()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.nav = m.nav.Previous()
		case key.Matches(msg, m.keys.Next):
			m.nav = m.nav.Next()
		case key.Matches(msg, m.keys.Today):
			m.nav = m.nav.Reset()
		case key.Matches(msg, m.keys.Pick):
			return m, m.pick(msg.String())
		case key.Matches(msg, m.keys.Reset):
			return m, m.reset()
		default:
			return m, nil
		}
		m.status, m.err = "", nil
		return m, m.load()
	}

	return m, nil
}

func (m Model) load() tea.Cmd {
	offset := m.nav.Offset
	return func() tea.Msg {
		return loadedMsg{offset: offset, assignment: m.svc.Week(m.ctx, offset)}
	}
}

func (m Model) pick(digit string) tea.Cmd {
	id, _ := strconv.Atoi(digit)
	person, ok := m.team.ByID(id)
	if !ok {
		return func() tea.Msg {
			return savedMsg{err: fmt.Errorf("no team member with id %s", digit)}
		}
	}

	week := m.svc.CurrentWeekKey(m.nav.Offset)
	return func() tea.Msg {
		if err := m.svc.SetMorning(m.ctx, week, person.ID); err != nil {
			return savedMsg{err: err}
		}
		return savedMsg{status: fmt.Sprintf("%s takes the morning of %s", person.Name, week)}
	}
}

func (m Model) reset() tea.Cmd {
	week := m.svc.CurrentWeekKey(m.nav.Offset)
	return func() tea.Msg {
		if err := m.svc.ClearOverride(m.ctx, week); err != nil {
			return savedMsg{err: err}
		}
		return savedMsg{status: fmt.Sprintf("Override for %s cleared", week)}
	}
}

func (m Model) View() string {
	if !m.loaded {
		return "Loading roster...\n"
	}

	a := m.assignment
	var b strings.Builder

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.Title.Render(m.svc.Label(a.WeekMonday)),
		"  ",
		m.styles.Range.Render(a.WeekRange()),
	)

	morning := m.styles.Label.Render("☀️  Morning: ") + personLine(a.Morning)
	if a.Overridden {
		morning += " " + m.styles.Override.Render("(override)")
	}

	evening := []string{m.styles.Label.Render("🌙 Evening:")}
	for _, p := range a.Evening {
		evening = append(evening, "   "+personLine(p))
	}

	card := m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		morning,
		"",
		strings.Join(evening, "\n"),
	))
	b.WriteString(card + "\n")

	var picks []string
	for _, p := range m.team {
		picks = append(picks, fmt.Sprintf("%d=%s", p.ID, p.ShortCode))
	}
	b.WriteString(m.styles.Help.Render("pick: "+strings.Join(picks, " ")) + "\n")

	var help []string
	for _, k := range m.keys.bindings() {
		help = append(help, k.Help().Key+" "+k.Help().Desc)
	}
	b.WriteString(m.styles.Help.Render(strings.Join(help, " • ")) + "\n")

	switch {
	case m.err != nil:
		b.WriteString(m.styles.Error.Render("✗ "+m.err.Error()) + "\n")
	case m.status != "":
		b.WriteString(m.styles.Status.Render("✓ "+m.status) + "\n")
	}

	return b.String()
}

// Offset is the viewed week relative to the current one.
func (m Model) Offset() int {
	return m.nav.Offset
}

func personLine(p entity.Person) string {
	return fmt.Sprintf("%s (%s)", p.Name, p.ShortCode)
}

// Run starts the browser on the terminal and blocks until the user quits.
func Run(ctx context.Context, svc contract.RosterService) error {
	_, err := tea.NewProgram(New(ctx, svc), tea.WithContext(ctx)).Run()
	return err
}
