package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectree/internal/ui/input/types"
)

type stubContext struct {
	hasSelection bool
	multiple     bool
	onSelectable bool
	query        string
}

func (c stubContext) HasSelection() bool  { return c.hasSelection }
func (c stubContext) Multiple() bool      { return c.multiple }
func (c stubContext) OnSelectable() bool  { return c.onSelectable }
func (c stubContext) FilterQuery() string { return c.query }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNormalModeNavigation(t *testing.T) {
	h := New(types.DefaultKeyMap())
	ctx := stubContext{}

	cases := map[string]tea.KeyMsg{
		"down":     runes("j"),
		"up":       {Type: tea.KeyUp},
		"pagedown": {Type: tea.KeyPgDown},
		"home":     runes("g"),
		"end":      runes("G"),
	}
	for want, msg := range cases {
		actions, _ := h.HandleKey(msg, ctx)
		require.Len(t, actions, 1, want)
		assert.Equal(t, types.NavigateAction{Direction: want}, actions[0])
	}
}

func TestNormalModeToggleNeedsSelectableRow(t *testing.T) {
	h := New(types.DefaultKeyMap())
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	actions, _ := h.HandleKey(space, stubContext{onSelectable: true})
	assert.Equal(t, []types.Action{types.ToggleSelectAction{}}, actions)

	actions, _ = h.HandleKey(space, stubContext{})
	assert.Empty(t, actions)
}

func TestNormalModeSelectAllNeedsMultiple(t *testing.T) {
	h := New(types.DefaultKeyMap())

	actions, _ := h.HandleKey(runes("a"), stubContext{multiple: true})
	assert.Equal(t, []types.Action{types.SelectAllAction{}}, actions)

	actions, _ = h.HandleKey(runes("a"), stubContext{})
	assert.Empty(t, actions)
}

func TestEscClearsFilterBeforeQuitting(t *testing.T) {
	h := New(types.DefaultKeyMap())
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	actions, _ := h.HandleKey(esc, stubContext{query: "li"})
	assert.Equal(t, []types.Action{types.ClearFilterAction{}}, actions)

	actions, _ = h.HandleKey(esc, stubContext{})
	assert.Equal(t, []types.Action{types.QuitAction{Force: false}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, stubContext{})
	assert.Equal(t, []types.Action{types.QuitAction{Force: true}}, actions)
}

func TestFilterModeTyping(t *testing.T) {
	h := New(types.DefaultKeyMap())
	ctx := stubContext{}

	_, cmd := h.HandleKey(runes("/"), ctx)
	assert.NotNil(t, cmd)
	assert.Equal(t, types.ModeFilter, h.GetMode())
	require.NotNil(t, h.TextInput())

	actions, _ := h.HandleKey(runes("l"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "l"}}, actions)
	actions, _ = h.HandleKey(runes("i"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "li"}}, actions)

	// j is text here, the arrows still navigate
	actions, _ = h.HandleKey(runes("j"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "lij"}}, actions)
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "down"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "lij", Mode: types.ModeFilter}}, actions)
	assert.Equal(t, types.ModeNormal, h.GetMode())
	assert.Nil(t, h.TextInput())
}

func TestFilterModeResumesQueryAndCancels(t *testing.T) {
	h := New(types.DefaultKeyMap())
	ctx := stubContext{query: "ap"}

	h.HandleKey(runes("/"), ctx)
	assert.Equal(t, "ap", h.TextInput().Value())

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.CancelTextAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.GetMode())
}
