package navigation

import "selectree/internal/options"

// Row is one visible line of the flattened option tree
type Row struct {
	Option *options.Option
	Depth  int
	List   *options.OptionList // list that owns Option
}

// IsGroup reports whether the row heads a non-empty child list
func (r Row) IsGroup() bool {
	return r.Option.HasChildren()
}

// State holds all navigation-related state
type State struct {
	Cursor         int // row index of the highlighted option, -1 for none
	ViewportOffset int
	ViewportHeight int
	SkipGroups     bool
	HideDisabled   bool
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
	DirectionHome     Direction = "home"
	DirectionEnd      Direction = "end"
)
