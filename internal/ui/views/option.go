package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"selectree/internal/options"
	"selectree/internal/ui/services/navigation"
)

// OptionRenderer handles rendering of option rows
type OptionRenderer struct {
	styles *Styles
}

// NewOptionRenderer creates a new option renderer
func NewOptionRenderer(styles *Styles) *OptionRenderer {
	return &OptionRenderer{styles: styles}
}

// RenderRow renders one row of the flattened tree
func (r *OptionRenderer) RenderRow(row navigation.Row, isCursor bool, multiple bool, query string, width int) string {
	o := row.Option
	if o == nil {
		return ""
	}

	cursor := "  "
	if isCursor {
		cursor = "> "
	}
	indent := strings.Repeat("  ", row.Depth)

	label := r.highlightMatch(o.DisplayLabel(), query)
	var line string
	if o.HasChildren() {
		line = fmt.Sprintf("%s%s▾ %s", cursor, indent, r.styles.Group.Render(label))
		if n := len(o.GetSelected()); n > 0 {
			line += r.styles.Dim.Render(fmt.Sprintf(" (%d selected)", n))
		}
	} else {
		marker := Marker(o, multiple)
		if o.Selected() {
			marker = r.styles.Selected.Render(marker)
		}
		line = fmt.Sprintf("%s%s%s %s", cursor, indent, marker, label)
	}

	if o.Disabled() {
		line = r.styles.Disabled.Render(line)
	}

	if isCursor {
		// Pad the line to full width
		if width > 0 {
			if lineLen := lipgloss.Width(line); lineLen < width {
				line += strings.Repeat(" ", width-lineLen)
			}
		}
		return r.styles.HighlightBg.Render(line)
	}
	return line
}

// Marker returns the selection box drawn in front of a selectable option
func Marker(o *options.Option, multiple bool) string {
	switch {
	case multiple && o.Selected():
		return "[x]"
	case multiple:
		return "[ ]"
	case o.Selected():
		return "(•)"
	default:
		return "( )"
	}
}

// highlightMatch highlights the earliest occurrence of any filter term.
// Matches that only exist after diacritic folding are left plain.
func (r *OptionRenderer) highlightMatch(text, query string) string {
	lowerText := strings.ToLower(text)
	if len(lowerText) != len(text) {
		return text
	}

	index, length := -1, 0
	for _, term := range strings.Fields(strings.ToLower(query)) {
		if i := strings.Index(lowerText, term); i >= 0 && (index < 0 || i < index) {
			index, length = i, len(term)
		}
	}
	if index < 0 {
		return text
	}

	before := text[:index]
	match := text[index : index+length]
	after := text[index+length:]
	return before + r.styles.Highlight.Render(match) + after
}
