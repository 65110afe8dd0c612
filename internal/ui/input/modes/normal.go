package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"selectree/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, m.keys.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case key.Matches(msg, m.keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case key.Matches(msg, m.keys.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case key.Matches(msg, m.keys.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, m.keys.Toggle):
		if ctx.OnSelectable() {
			return []types.Action{types.ToggleSelectAction{}}, true
		}
		return nil, true

	case key.Matches(msg, m.keys.Submit):
		return []types.Action{types.SubmitAction{}}, true

	case key.Matches(msg, m.keys.Filter):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter}}, true

	case key.Matches(msg, m.keys.Clear):
		if ctx.HasSelection() {
			return []types.Action{types.DeselectAllAction{}}, true
		}
		return nil, true

	case key.Matches(msg, m.keys.SelectAll):
		if ctx.Multiple() {
			return []types.Action{types.SelectAllAction{}}, true
		}
		return nil, false

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, m.keys.Back):
		// Esc drops an active filter before it quits
		if ctx.FilterQuery() != "" {
			return []types.Action{types.ClearFilterAction{}}, true
		}
		return []types.Action{types.QuitAction{Force: false}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
