package options

import (
	"slices"

	"selectree/internal/domain"
)

// Option wraps one input record and carries its UI state
type Option struct {
	spec     domain.OptionSpec
	disabled bool

	selected    bool
	highlighted bool
	shown       bool

	// nil for a leaf
	children *OptionList
}

func newOption(spec domain.OptionSpec) *Option {
	o := &Option{
		spec:  spec,
		shown: true,
	}
	if spec.HasChildList() {
		o.children = newOptionList(spec.Children, true)
	}
	return o
}

// Value returns the option's value
func (o *Option) Value() string {
	return o.spec.Value
}

// Label returns the label the option was declared with. Filtering matches
// against it, so an unlabeled option never matches a search.
func (o *Option) Label() string {
	return o.spec.Label
}

// DisplayLabel returns the label, or the value when there is none
func (o *Option) DisplayLabel() string {
	return o.spec.DisplayLabel()
}

// Disabled reports whether the option was declared disabled
func (o *Option) Disabled() bool {
	return o.disabled
}

// Selected reports whether the option is selected
func (o *Option) Selected() bool {
	return o.selected
}

// Highlighted reports whether the option carries keyboard focus
func (o *Option) Highlighted() bool {
	return o.highlighted
}

// Shown reports whether the last filter pass left the option visible
func (o *Option) Shown() bool {
	return o.shown
}

// Children returns the nested list, if the input declared one
func (o *Option) Children() (*OptionList, bool) {
	return o.children, o.children != nil
}

// HasChildren reports whether the option has a nested list with at least
// one option in it.
func (o *Option) HasChildren() bool {
	return o.children != nil && len(o.children.options) > 0
}

// HasSelected reports whether any descendant is selected
func (o *Option) HasSelected() bool {
	return o.children != nil && o.children.HasSelected()
}

// GetSelected returns the selected descendants, flattened. A leaf has none.
func (o *Option) GetSelected() []*Option {
	if o.children == nil {
		return []*Option{}
	}
	return o.children.GetSelected()
}

// ClearSelection deselects the option and all of its descendants. It returns
// every option that was selected before the call, the option itself first.
func (o *Option) ClearSelection() []*Option {
	deselected := []*Option{}
	if o.selected {
		o.selected = false
		deselected = append(deselected, o)
	}
	if o.HasChildren() {
		deselected = append(deselected, o.children.ClearSelection()...)
	}
	return deselected
}

// SetSelected selects the option iff its value is in values, then applies
// the same rule to every descendant.
func (o *Option) SetSelected(values []string) {
	o.selected = slices.Contains(values, o.spec.Value)
	if o.HasChildren() {
		o.children.SetValue(values)
	}
}
