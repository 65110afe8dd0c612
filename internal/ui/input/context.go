package input

import (
	"selectree/internal/ui/services/navigation"
	"selectree/internal/ui/services/search"
	"selectree/internal/ui/services/selection"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Selection  *selection.Service
	Search     *search.Service
	Navigation *navigation.Service
}

// HasSelection returns true if any option is selected
func (c *ModelContext) HasSelection() bool {
	return c.Selection.Count() > 0
}

// Multiple reports whether several options may be selected
func (c *ModelContext) Multiple() bool {
	return c.Selection.Multiple()
}

// OnSelectable reports whether the highlighted option can be toggled
func (c *ModelContext) OnSelectable() bool {
	return selection.Selectable(c.Navigation.Highlighted())
}

// FilterQuery returns the applied filter text
func (c *ModelContext) FilterQuery() string {
	return c.Search.Query()
}
