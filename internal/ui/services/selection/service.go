package selection

import (
	"log"
	"slices"

	"selectree/internal/eventbus"
	"selectree/internal/options"
)

// Service applies widget selection gestures to the option tree
type Service struct {
	state *State
	bus   eventbus.EventBus
	root  *options.OptionList
}

// NewService creates a new selection service over root
func NewService(bus eventbus.EventBus, root *options.OptionList, multiple bool) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Service{
		state: &State{Multiple: multiple},
		bus:   bus,
		root:  root,
	}
}

// Multiple reports whether more than one option may be selected
func (s *Service) Multiple() bool {
	return s.state.Multiple
}

// Selectable reports whether the widget lets the user select o. Disabled
// options and options with children are not selectable.
func Selectable(o *options.Option) bool {
	return o != nil && !o.Disabled() && !o.HasChildren()
}

// Toggle flips the selection of o. In single mode selecting o replaces the
// current selection.
func (s *Service) Toggle(o *options.Option) bool {
	if !Selectable(o) {
		return false
	}
	s.state.LastToggled = o.Value()

	return s.mutate(func() {
		if o.Selected() {
			s.root.Deselect(o)
			return
		}
		s.root.Select(o, s.state.Multiple)
	})
}

// Select selects o, keeping it selected if it already is
func (s *Service) Select(o *options.Option) bool {
	if !Selectable(o) {
		return false
	}
	return s.mutate(func() {
		s.root.Select(o, s.state.Multiple)
	})
}

// Clear deselects everything
func (s *Service) Clear() bool {
	return s.mutate(func() {
		s.root.ClearSelection()
	})
}

// SelectAllShown selects every selectable option left visible by the
// filter, at any depth. It does nothing in single mode.
func (s *Service) SelectAllShown() bool {
	if !s.state.Multiple {
		return false
	}
	return s.mutate(func() {
		selectShown(s.root)
	})
}

// SetValue replaces the selection with values, as an external value
// change would
func (s *Service) SetValue(values []string) bool {
	return s.mutate(func() {
		s.root.SetValue(values)
	})
}

// Value returns the selected values in tree order
func (s *Service) Value() []string {
	return s.root.Value()
}

// Count returns the number of selected options
func (s *Service) Count() int {
	return len(s.root.GetSelected())
}

func selectShown(list *options.OptionList) {
	for _, o := range list.Filtered() {
		if Selectable(o) {
			list.Select(o, true)
		}
		if children, ok := o.Children(); ok {
			selectShown(children)
		}
	}
}

func (s *Service) mutate(apply func()) bool {
	before := s.root.Value()
	apply()
	after := s.root.Value()

	if options.EqualValues(before, after) {
		return false
	}

	added, removed := diff(before, after)
	log.Printf("Selection changed: +%d -%d, %d selected", len(added), len(removed), len(after))
	s.bus.Publish(eventbus.SelectionChangedEvent{
		Added:   added,
		Removed: removed,
		Value:   after,
	})
	return true
}

func diff(before, after []string) (added, removed []string) {
	for _, v := range after {
		if !slices.Contains(before, v) {
			added = append(added, v)
		}
	}
	for _, v := range before {
		if !slices.Contains(after, v) {
			removed = append(removed, v)
		}
	}
	return added, removed
}
