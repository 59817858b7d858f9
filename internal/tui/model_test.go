package tui_test

import (
	"context"
	"estimator/internal/tui"
	"estimator/pkg/apiclient"
	"estimator/pkg/domain"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

// fakeSource is a session whose data is fixed up front.
type fakeSource struct {
	snap     apiclient.Snapshot
	details  map[domain.PartID]*domain.Part
	loads    int
	selected []domain.PartID
	cleared  bool
}

func (f *fakeSource) Snapshot() apiclient.Snapshot { return f.snap }

func (f *fakeSource) Load(context.Context) error {
	f.loads++
	if f.snap.SelectedPartID == "" && len(f.snap.Parts) > 0 {
		f.snap.SelectedPartID = f.snap.Parts[0].ID
		f.snap.SelectedPart = f.details[f.snap.SelectedPartID]
	}

	return nil
}

func (f *fakeSource) Refresh(ctx context.Context) error { return f.Load(ctx) }

func (f *fakeSource) Select(_ context.Context, id domain.PartID) error {
	f.selected = append(f.selected, id)
	f.snap.SelectedPartID = id
	f.snap.SelectedPart = f.details[id]

	return nil
}

func (f *fakeSource) ClearMock(context.Context) error {
	f.cleared = true
	f.snap = apiclient.Snapshot{}

	return nil
}

func (f *fakeSource) ModelURL() string { return "" }

func newSource() *fakeSource {
	parts := []domain.PartSummary{
		{ID: "p1", Filename: "shaft.step", Status: domain.PartStatusCompleted},
		{ID: "p2", Filename: "plate.stp", Status: domain.PartStatusFailed},
	}

	return &fakeSource{
		snap: apiclient.Snapshot{Parts: parts},
		details: map[domain.PartID]*domain.Part{
			"p1": {
				PartSummary: parts[0],
				Estimate:    &domain.Estimate{TotalCost: 42},
			},
			"p2": {PartSummary: parts[1]},
		},
	}
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, model tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	require.NotNil(t, cmd)
	model, _ = model.Update(cmd())

	return model
}

func TestModelLoadAndView(t *testing.T) {
	source := newSource()
	model := tui.NewModel(context.Background(), source)
	require.Equal(t, "Loading...", model.View())

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	updated = run(t, updated, model.Init())
	require.Equal(t, 1, source.loads)

	view := updated.View()
	require.Contains(t, view, "CNC Cost Estimator")
	require.Contains(t, view, "Analyzed Parts")
	require.Contains(t, view, "> shaft.step")
	require.Contains(t, view, "[failed]")
	require.Contains(t, view, "Total Cost: 42.00 USD")
	require.NotContains(t, view, "local demo mode")
}

func TestModelNavigation(t *testing.T) {
	source := newSource()
	model := tui.NewModel(context.Background(), source)
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	updated = run(t, updated, model.Init())

	updated, cmd := updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	require.Nil(t, cmd, "already at the first part")

	updated, cmd = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	updated = run(t, updated, cmd)
	require.Equal(t, []domain.PartID{"p2"}, source.selected)
	require.Contains(t, updated.View(), "Analysis is pending or failed.")

	_, cmd = updated.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Nil(t, cmd, "already at the last part")

	updated, cmd = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	updated = run(t, updated, cmd)
	require.Equal(t, 2, source.loads)
	require.Contains(t, updated.View(), "> plate.stp")
}

func TestModelEmptyState(t *testing.T) {
	model := tui.NewModel(context.Background(), &fakeSource{})
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	updated = run(t, updated, model.Init())

	view := updated.View()
	require.Contains(t, view, "No parts uploaded yet.")
	require.Contains(t, view, "Select a part to view estimate details.")
}

func TestModelClearMock(t *testing.T) {
	source := newSource()
	model := tui.NewModel(context.Background(), source)
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})

	_, cmd := updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	require.Nil(t, cmd, "nothing to clear while connected")

	source.snap.MockMode = true
	require.True(t, strings.Contains(updated.View(), "local demo mode"))

	updated, cmd = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	updated = run(t, updated, cmd)
	require.True(t, source.cleared)
	require.Contains(t, updated.View(), "No parts uploaded yet.")
}

func TestModelQuit(t *testing.T) {
	model := tui.NewModel(context.Background(), newSource())

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	require.True(t, isQuit)
}
