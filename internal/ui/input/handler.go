package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"selectree/internal/ui/input/modes"
	"selectree/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	keys        types.KeyMap
	textInput   *textinput.Model // Shared text input for text modes
}

func New(keys types.KeyMap) *Handler {
	ti := textinput.New()

	h := &Handler{
		currentMode: types.ModeNormal,
		keys:        keys,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeNormal] = modes.NewNormalMode(keys)
	h.modes[types.ModeFilter] = modes.NewFilterMode(keys, h.textInput)

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	// If not consumed and we're in text mode, we'll handle it below
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	// Handle mode changes
	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			modeActions, modeCmd := h.switchMode(changeMode.Mode, ctx)
			allActions = append(allActions, modeActions...)
			if modeCmd != nil {
				cmd = modeCmd
			}
		} else {
			allActions = append(allActions, action)
		}
	}

	// If we're in a text mode and didn't handle the key, pass it to text input
	if h.isTextMode(h.currentMode) && !consumed {
		var textCmd tea.Cmd
		before := h.textInput.Value()
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		if h.textInput.Value() != before {
			allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
		}
	}

	return allActions, cmd
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) ([]types.Action, tea.Cmd) {
	var actions []types.Action
	var cmd tea.Cmd

	// Exit current mode
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}

	h.currentMode = mode

	// Enter new mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	if h.isTextMode(h.currentMode) {
		cmd = textinput.Blink
	}
	return actions, cmd
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeFilter
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}

// GetMode returns the current input mode
func (h *Handler) GetMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// Keys returns the key bindings
func (h *Handler) Keys() types.KeyMap {
	return h.keys
}

// TextInput returns the text input while a text mode is active
func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}
