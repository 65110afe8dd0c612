package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"

	"selectree/internal/options"
	"selectree/internal/ui/input/types"
	"selectree/internal/ui/services/navigation"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Title         string
	Placeholder   string
	Rows          []navigation.Row // rows inside the viewport
	Cursor        *options.Option
	RowsAbove     int
	RowsBelow     int
	Multiple      bool
	Value         []string // selected labels
	FilterQuery   string
	Filtering     bool
	FilterInput   string // rendered text input while filtering
	AnyShown      bool
	Suggestions   []string
	StatusMessage string
	HelpModel     help.Model
	Keys          types.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	optionRender *OptionRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		optionRender: NewOptionRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderHeader(state))
	content.WriteString("\n")

	if state.Filtering {
		content.WriteString(r.styles.Filter.Render("Filter: ") + state.FilterInput)
		content.WriteString("\n")
	} else if state.FilterQuery != "" {
		content.WriteString(r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", state.FilterQuery)))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(r.renderOptionList(state))

	if state.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
	}

	bindings := state.Keys.ShortHelp()
	if state.Filtering {
		bindings = state.Keys.FilterHelp()
	}
	content.WriteString("\n")
	content.WriteString(r.styles.Help.Render(state.HelpModel.ShortHelpView(bindings)))

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderHeader(state ViewState) string {
	title := r.styles.Title.Render(state.Title)
	if len(state.Value) == 0 {
		placeholder := state.Placeholder
		if placeholder == "" {
			placeholder = "Nothing selected"
		}
		return title + " " + r.styles.Dim.Render(placeholder)
	}
	return title + " " + strings.Join(state.Value, ", ")
}

func (r *Renderer) renderOptionList(state ViewState) string {
	if !state.AnyShown || len(state.Rows) == 0 {
		return r.renderNoResults(state)
	}

	var lines []string
	if state.RowsAbove > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("  ↑ %d more", state.RowsAbove)))
	}
	for _, row := range state.Rows {
		isCursor := row.Option == state.Cursor
		lines = append(lines, r.optionRender.RenderRow(row, isCursor, state.Multiple, state.FilterQuery, state.Width-2))
	}
	if state.RowsBelow > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("  ↓ %d more", state.RowsBelow)))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderNoResults(state ViewState) string {
	line := r.styles.NoResults.Render("No results")
	if len(state.Suggestions) == 0 {
		return line
	}
	suggestions := make([]string, 0, len(state.Suggestions))
	for _, s := range state.Suggestions {
		suggestions = append(suggestions, r.styles.Suggestion.Render(s))
	}
	return line + "\n" + r.styles.Dim.Render("Did you mean: ") + strings.Join(suggestions, ", ") + "?"
}
