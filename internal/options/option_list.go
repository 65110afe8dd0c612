// Package options is the selection model behind the dropdown: a tree of
// options that tracks which ones are selected, shown by the current filter
// and highlighted for keyboard navigation.
//
// An OptionList owns its options and every Option owns at most one nested
// OptionList. All operations run synchronously and are not safe for
// concurrent use; the host widget serializes calls.
package options

import (
	"slices"
	"strings"

	"selectree/internal/diacritics"
	"selectree/internal/domain"
)

// OptionList is one level of the option tree
type OptionList struct {
	options []*Option
	isChild bool

	// index of the option that owns the current highlight, -1 for none
	highlight int
	// the highlight was handed down into options[highlight]'s child list
	delegated bool

	hasShown bool
}

// NewOptionList builds a root list from the input records. A root list
// highlights its first candidate right away.
func NewOptionList(specs []domain.OptionSpec) *OptionList {
	return newOptionList(specs, false)
}

func newOptionList(specs []domain.OptionSpec, isChild bool) *OptionList {
	l := &OptionList{
		options:   make([]*Option, 0, len(specs)),
		isChild:   isChild,
		highlight: -1,
	}
	for _, spec := range specs {
		o := newOption(spec)
		if spec.Disabled {
			o.disabled = true
		}
		l.options = append(l.options, o)
	}
	l.hasShown = len(l.options) > 0

	// nested lists start without a highlight
	if !l.isChild {
		l.Highlight()
	}
	return l
}

// Options returns the directly owned options in display order
func (l *OptionList) Options() []*Option {
	return slices.Clone(l.options)
}

// Len returns the number of directly owned options
func (l *OptionList) Len() int {
	return len(l.options)
}

// IsChild reports whether the list is nested under an option
func (l *OptionList) IsChild() bool {
	return l.isChild
}

// OptionsByValue returns the directly owned options with the given value.
// Nested lists are not searched.
func (l *OptionList) OptionsByValue(value string) []*Option {
	var matches []*Option
	for _, o := range l.options {
		if o.Value() == value {
			matches = append(matches, o)
		}
	}
	return matches
}

/* Value */

// Value returns the values of every selected option at any depth
func (l *OptionList) Value() []string {
	selected := l.GetSelected()
	values := make([]string, 0, len(selected))
	for _, o := range selected {
		values = append(values, o.Value())
	}
	return values
}

// SetValue replaces the whole selection: an option at any depth ends up
// selected iff its value is in values. A nil slice clears the selection.
func (l *OptionList) SetValue(values []string) {
	for _, o := range l.options {
		o.SetSelected(values)
	}
}

/* Selection */

// Selection returns the directly owned options that are selected
func (l *OptionList) Selection() []*Option {
	var selected []*Option
	for _, o := range l.options {
		if o.selected {
			selected = append(selected, o)
		}
	}
	return selected
}

// Select marks o selected. Unless multiple is set, every other selection
// in this list and below is cleared first.
func (l *OptionList) Select(o *Option, multiple bool) {
	if !multiple {
		l.ClearSelection()
	}
	o.selected = true
}

// Deselect marks o not selected
func (l *OptionList) Deselect(o *Option) {
	o.selected = false
}

// ClearSelection deselects every option in this list and below and returns
// the options that were selected, in tree order.
func (l *OptionList) ClearSelection() []*Option {
	deselected := []*Option{}
	for _, o := range l.options {
		deselected = append(deselected, o.ClearSelection()...)
	}
	return deselected
}

/* Filter */

// Filtered returns the directly owned options left visible by the last filter
func (l *OptionList) Filtered() []*Option {
	var shown []*Option
	for _, o := range l.options {
		if o.shown {
			shown = append(shown, o)
		}
	}
	return shown
}

// Filter shows the options whose label contains every whitespace separated
// term of search, ignoring case and diacritics. A parent whose label
// matches reveals all of its children; a parent with a matching child is
// shown as well. An empty search shows everything. Filter reports whether
// anything in this list is left visible.
func (l *OptionList) Filter(search string) bool {
	terms := strings.Fields(search)
	for i, term := range terms {
		terms[i] = diacritics.Fold(term)
	}
	return l.filter(terms)
}

func (l *OptionList) filter(terms []string) bool {
	anyShown := false

	if len(terms) == 0 {
		l.resetFilter()
		anyShown = len(l.options) > 0
	} else {
		for _, o := range l.options {
			o.shown = false
			if o.HasChildren() && o.children.filter(terms) {
				anyShown = true
			}
			if matchesAll(diacritics.Fold(o.Label()), terms) {
				o.shown = true
				anyShown = true
			}
		}

		for _, o := range l.options {
			if !o.HasChildren() {
				continue
			}
			if o.shown {
				o.children.resetFilter()
			} else if o.children.anyShown() {
				o.shown = true
			}
		}
	}

	l.Highlight()
	l.hasShown = anyShown

	return anyShown
}

func (l *OptionList) resetFilter() {
	for _, o := range l.options {
		o.shown = true
		if o.HasChildren() {
			o.children.resetFilter()
		}
	}
	l.hasShown = len(l.options) > 0
}

func (l *OptionList) anyShown() bool {
	for _, o := range l.options {
		if o.shown {
			return true
		}
	}
	return false
}

func matchesAll(label string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(label, term) {
			return false
		}
	}
	return true
}

/* Highlight */

// HighlightedOption returns the option carrying the highlight. It may live
// in a nested list when the highlight was handed down to a child.
func (l *OptionList) HighlightedOption() *Option {
	if l.highlight < 0 {
		return nil
	}
	owner := l.options[l.highlight]
	if l.delegated {
		return owner.children.HighlightedOption()
	}
	return owner
}

// Highlight puts the highlight on the first shown selected option, or the
// first shown option when none is selected. When that option has children
// the highlight goes to its first child instead.
func (l *OptionList) Highlight() {
	candidate := l.firstShownSelected()
	if candidate == nil {
		candidate = l.firstShown()
	}
	if candidate != nil && candidate.HasChildren() {
		candidate = candidate.children.options[0]
	}
	l.HighlightOption(candidate)
}

// HighlightOption moves the highlight to o, which may be a direct option or
// any option further down the tree. A nil o, or one that is not part of
// this list, only clears the current highlight.
func (l *OptionList) HighlightOption(o *Option) {
	l.clearHighlightedOption()
	if o == nil {
		return
	}

	for i, opt := range l.options {
		if opt == o {
			o.highlighted = true
			l.highlight = i
			return
		}
	}
	for i, opt := range l.options {
		if opt.children != nil && opt.children.contains(o) {
			opt.children.HighlightOption(o)
			l.highlight = i
			l.delegated = true
			return
		}
	}
}

// HighlightNextOption moves the highlight one visible option down. It stops
// at the last visible option.
func (l *OptionList) HighlightNextOption() {
	shown := l.Filtered()
	index := highlightedIndexIn(shown)
	if index > -1 && index < len(shown)-1 {
		l.HighlightOption(shown[index+1])
	}
}

// HighlightPreviousOption moves the highlight one visible option up. It
// stops at the first visible option.
func (l *OptionList) HighlightPreviousOption() {
	shown := l.Filtered()
	index := highlightedIndexIn(shown)
	if index > 0 {
		l.HighlightOption(shown[index-1])
	}
}

// HighlightedIndex returns the position of this list's highlighted option
// among the visible ones, or -1.
func (l *OptionList) HighlightedIndex() int {
	return highlightedIndexIn(l.Filtered())
}

func (l *OptionList) clearHighlightedOption() {
	if l.highlight < 0 {
		return
	}
	owner := l.options[l.highlight]
	if l.delegated {
		owner.children.clearHighlightedOption()
	} else {
		owner.highlighted = false
	}
	l.highlight = -1
	l.delegated = false
}

func (l *OptionList) contains(o *Option) bool {
	for _, opt := range l.options {
		if opt == o {
			return true
		}
		if opt.children != nil && opt.children.contains(o) {
			return true
		}
	}
	return false
}

func highlightedIndexIn(list []*Option) int {
	for i, o := range list {
		if o.highlighted {
			return i
		}
	}
	return -1
}

/* Util */

// HasShown reports whether the last filter pass left anything visible
func (l *OptionList) HasShown() bool {
	return l.hasShown
}

// HasSelected reports whether any option in this list or below is selected
func (l *OptionList) HasSelected() bool {
	for _, o := range l.options {
		if o.selected || o.HasSelected() {
			return true
		}
	}
	return false
}

// GetSelected returns every selected option: the directly owned ones first,
// then the selections found under each option, in option order.
func (l *OptionList) GetSelected() []*Option {
	selected := l.Selection()
	for _, o := range l.options {
		if o.HasSelected() {
			selected = append(selected, o.GetSelected()...)
		}
	}
	if selected == nil {
		return []*Option{}
	}
	return selected
}

// HasShownSelected reports whether a directly owned option is both shown
// and selected
func (l *OptionList) HasShownSelected() bool {
	return l.firstShownSelected() != nil
}

func (l *OptionList) firstShown() *Option {
	for _, o := range l.options {
		if o.shown {
			return o
		}
	}
	return nil
}

func (l *OptionList) firstShownSelected() *Option {
	for _, o := range l.options {
		if o.shown && o.selected {
			return o
		}
	}
	return nil
}

// EqualValues reports whether v0 and v1 hold the same values, counting
// duplicates and ignoring order.
func EqualValues(v0, v1 []string) bool {
	if len(v0) != len(v1) {
		return false
	}
	a := slices.Clone(v0)
	b := slices.Clone(v1)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}
