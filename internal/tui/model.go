// Package tui is the interactive terminal front end of the API client: a
// part list beside the cost breakdown of the selected part. All state lives
// in an apiclient.Session; the model only draws snapshots and turns keys
// into session intents.
package tui

import (
	"bytes"
	"context"
	"estimator/pkg/apiclient"
	"estimator/pkg/domain"
	"estimator/pkg/render"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	title         = "CNC Cost Estimator"
	listWidthPct  = 35
	minListWidth  = 24
	chromeHeight  = 4
	filenameSlack = 16
)

// Source is the session the model drives. *apiclient.Session implements it.
type Source interface {
	Snapshot() apiclient.Snapshot
	Load(ctx context.Context) error
	Refresh(ctx context.Context) error
	Select(ctx context.Context, id domain.PartID) error
	ClearMock(ctx context.Context) error
	ModelURL() string
}

var _ Source = (*apiclient.Session)(nil)

type (
	loadedMsg   struct{ err error }
	selectedMsg struct{ err error }
	clearedMsg  struct{ err error }
)

// Model implements tea.Model.
type Model struct {
	ctx    context.Context
	source Source
	keys   KeyMap
	lr     *lipgloss.Renderer

	width  int
	height int
	ready  bool
	busy   bool

	detail viewport.Model
}

// NewModel returns a model over source. ctx bounds every session call.
func NewModel(ctx context.Context, source Source) Model {
	return Model{
		ctx:    ctx,
		source: source,
		keys:   DefaultKeyMap,
		lr:     lipgloss.DefaultRenderer(),
		busy:   true,
		detail: viewport.New(0, 0),
	}
}

// Init implements tea.Model by loading the session.
func (m Model) Init() tea.Cmd {
	return m.load()
}

func (m Model) load() tea.Cmd {
	return func() tea.Msg { return loadedMsg{err: m.source.Load(m.ctx)} }
}

func (m Model) selectPart(id domain.PartID) tea.Cmd {
	return func() tea.Msg { return selectedMsg{err: m.source.Select(m.ctx, id)} }
}

func (m Model) clearMock() tea.Cmd {
	return func() tea.Msg { return clearedMsg{err: m.source.ClearMock(m.ctx)} }
}

// Update implements tea.Model.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := message.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		m.resize()
		m.refreshDetail()

	case loadedMsg, selectedMsg, clearedMsg:
		m.busy = false
		m.refreshDetail()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			return m.move(-1)
		case key.Matches(msg, m.keys.Down):
			return m.move(1)
		case key.Matches(msg, m.keys.PageUp):
			m.detail.LineUp(max(1, m.detail.Height/2))
		case key.Matches(msg, m.keys.PageDown):
			m.detail.LineDown(max(1, m.detail.Height/2))
		case key.Matches(msg, m.keys.Reload):
			m.busy = true

			return m, func() tea.Msg { return loadedMsg{err: m.source.Refresh(m.ctx)} }
		case key.Matches(msg, m.keys.ClearMock):
			if !m.source.Snapshot().MockMode {
				return m, nil
			}
			m.busy = true

			return m, m.clearMock()
		}
	}

	return m, nil
}

// move selects the part delta rows away from the current one.
func (m Model) move(delta int) (tea.Model, tea.Cmd) {
	snap := m.source.Snapshot()
	if len(snap.Parts) == 0 {
		return m, nil
	}

	current := slices.IndexFunc(snap.Parts, func(p domain.PartSummary) bool { return p.ID == snap.SelectedPartID })
	next := min(max(current+delta, 0), len(snap.Parts)-1)
	if next == current {
		return m, nil
	}
	m.busy = true

	return m, m.selectPart(snap.Parts[next].ID)
}

func (m *Model) listWidth() int {
	return max(minListWidth, m.width*listWidthPct/100)
}

func (m *Model) resize() {
	m.detail.Width = max(0, m.width-m.listWidth()-1)
	m.detail.Height = max(1, m.height-chromeHeight)
}

// refreshDetail redraws the estimate of the selected part into the viewport.
func (m *Model) refreshDetail() {
	snap := m.source.Snapshot()

	var buf bytes.Buffer
	out := render.NewStyled(&buf, m.lr)
	_ = out.Estimate(snap.SelectedPart)
	if url := m.source.ModelURL(); url != "" {
		_ = out.Message("Model: " + url)
	}
	if snap.ActiveJob != nil {
		_ = out.Job(snap.ActiveJob)
	}

	m.detail.SetContent(strings.TrimRight(buf.String(), "\n"))
	m.detail.GotoTop()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	snap := m.source.Snapshot()

	header := m.lr.NewStyle().Bold(true).Render(title)
	if m.busy {
		header += m.lr.NewStyle().Faint(true).Render("  loading...")
	}
	sections := []string{header}

	var banner bytes.Buffer
	out := render.NewStyled(&banner, m.lr)
	_ = out.MockBanner(snap.MockMode)
	_ = out.Error(snap.Error)
	if s := strings.TrimRight(banner.String(), "\n"); s != "" {
		sections = append(sections, s)
	}

	bodyHeight := max(1, m.height-chromeHeight)
	list := m.lr.NewStyle().
		Width(m.listWidth()).
		MaxHeight(bodyHeight).
		Render(m.renderList(snap))
	divider := m.lr.NewStyle().Faint(true).
		Render(strings.TrimRight(strings.Repeat("│\n", bodyHeight), "\n"))
	sections = append(sections,
		lipgloss.JoinHorizontal(lipgloss.Top, list, divider, m.detail.View()),
		m.renderHelp(),
	)

	return strings.Join(sections, "\n")
}

func (m Model) renderList(snap apiclient.Snapshot) string {
	lines := []string{m.lr.NewStyle().Bold(true).Render("Analyzed Parts")}
	if len(snap.Parts) == 0 {
		return strings.Join(append(lines, m.lr.NewStyle().Faint(true).Render("No parts uploaded yet.")), "\n")
	}

	nameWidth := max(4, m.listWidth()-filenameSlack)
	selected := m.lr.NewStyle().Reverse(true)
	for _, p := range snap.Parts {
		name := p.Filename
		if r := []rune(name); len(r) > nameWidth {
			name = string(r[:nameWidth-1]) + "…"
		}
		line := name + strings.Repeat(" ", max(1, nameWidth-lipgloss.Width(name)+1)) + "[" + string(p.Status) + "]"
		if p.ID == snap.SelectedPartID {
			line = selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderHelp() string {
	parts := make([]string, 0, len(m.keys.bindings()))
	for _, b := range m.keys.bindings() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}

	return m.lr.NewStyle().Faint(true).Render(strings.Join(parts, " · "))
}
