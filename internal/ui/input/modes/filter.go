package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"selectree/internal/ui/input/types"
)

type FilterMode struct {
	TextInputMode
}

func NewFilterMode(keys types.KeyMap, ti *textinput.Model) *FilterMode {
	return &FilterMode{
		TextInputMode: NewTextInputMode(types.ModeFilter, "filter", keys, ti),
	}
}

// Enter continues editing the active filter
func (m *FilterMode) Enter(ctx types.Context) []types.Action {
	actions := m.TextInputMode.Enter(ctx)
	if m.textInput != nil {
		m.textInput.SetValue(ctx.FilterQuery())
		m.textInput.CursorEnd()
	}
	return actions
}

// HandleKey lets the arrow keys move the highlight while typing
func (m *FilterMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
