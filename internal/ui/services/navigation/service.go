package navigation

import (
	"selectree/internal/eventbus"
	"selectree/internal/options"
)

// Service moves the highlight across the visible rows of the option tree
type Service struct {
	state *State
	bus   eventbus.EventBus
	root  *options.OptionList
	rows  []Row
	last  *options.Option
}

// NewService creates a new navigation service over root and syncs it with
// the tree's current highlight
func NewService(bus eventbus.EventBus, root *options.OptionList) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	s := &Service{
		state: &State{
			Cursor:         -1,
			ViewportHeight: 10,
		},
		bus:  bus,
		root: root,
	}
	s.Sync()
	return s
}

// SetSkipGroups makes cursor movement step over rows that head a child list
func (s *Service) SetSkipGroups(skip bool) {
	s.state.SkipGroups = skip
	s.Sync()
}

// SetHideDisabled leaves disabled options and their children out of the rows
func (s *Service) SetHideDisabled(hide bool) {
	s.state.HideDisabled = hide
	s.Sync()
}

// Rows returns every visible row
func (s *Service) Rows() []Row {
	return s.rows
}

// VisibleRows returns the rows inside the viewport
func (s *Service) VisibleRows() []Row {
	start := min(s.state.ViewportOffset, len(s.rows))
	end := min(start+s.state.ViewportHeight, len(s.rows))
	return s.rows[start:end]
}

// GetCursor returns the row index of the highlighted option, or -1
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// GetViewportOffset returns current viewport offset
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// GetViewportHeight returns current viewport height
func (s *Service) GetViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight updates viewport height
func (s *Service) SetViewportHeight(height int) {
	s.state.ViewportHeight = max(height, 1)
	s.ensureVisible()
}

// Highlighted returns the highlighted option, or nil
func (s *Service) Highlighted() *options.Option {
	if s.state.Cursor < 0 {
		return nil
	}
	return s.rows[s.state.Cursor].Option
}

// Sync rebuilds the rows and puts the cursor on the tree's highlighted
// option. It must run after every operation that filters the tree or moves
// its highlight. A highlight that is not on a usable row moves to the first
// usable one.
func (s *Service) Sync() {
	s.rows = flatten(s.root, 0, s.state.HideDisabled, nil)
	s.state.Cursor = -1

	if h := s.root.HighlightedOption(); h != nil {
		for i, row := range s.rows {
			if row.Option == h && s.usable(i) {
				s.state.Cursor = i
				break
			}
		}
	}
	if s.state.Cursor < 0 {
		if i := s.nextUsable(0, 1); i >= 0 {
			s.moveTo(i)
			return
		}
		s.root.HighlightOption(nil)
	}
	s.ensureVisible()
	s.announce()
}

// Navigate handles navigation in a direction. Movement stops at the first
// and last rows.
func (s *Service) Navigate(direction Direction) {
	if len(s.rows) == 0 {
		return
	}

	target := -1
	switch direction {
	case DirectionUp:
		target = s.nextUsable(s.state.Cursor-1, -1)
	case DirectionDown:
		target = s.nextUsable(s.state.Cursor+1, 1)
	case DirectionPageUp:
		target = s.nearestUsable(s.state.Cursor-(s.state.ViewportHeight-1), -1)
	case DirectionPageDown:
		target = s.nearestUsable(s.state.Cursor+(s.state.ViewportHeight-1), 1)
	case DirectionHome:
		target = s.nextUsable(0, 1)
	case DirectionEnd:
		target = s.nextUsable(len(s.rows)-1, -1)
	}

	if target >= 0 && target != s.state.Cursor {
		s.moveTo(target)
	}
}

// MoveToOption highlights o if it has a usable row
func (s *Service) MoveToOption(o *options.Option) bool {
	for i, row := range s.rows {
		if row.Option == o && s.usable(i) {
			s.moveTo(i)
			return true
		}
	}
	return false
}

func (s *Service) moveTo(index int) {
	s.state.Cursor = index
	s.root.HighlightOption(s.rows[index].Option)
	s.ensureVisible()
	s.announce()
}

func (s *Service) announce() {
	h := s.Highlighted()
	if h == s.last {
		return
	}
	s.last = h
	if h != nil {
		s.bus.Publish(eventbus.HighlightMovedEvent{Value: h.Value(), Label: h.DisplayLabel()})
	}
}

func (s *Service) usable(index int) bool {
	return !s.state.SkipGroups || !s.rows[index].IsGroup()
}

// nextUsable scans from index in step direction for a usable row
func (s *Service) nextUsable(index, step int) int {
	for i := index; i >= 0 && i < len(s.rows); i += step {
		if s.usable(i) {
			return i
		}
	}
	return -1
}

// nearestUsable clamps index to the rows and returns the closest usable
// row, preferring the step direction
func (s *Service) nearestUsable(index, step int) int {
	index = max(0, min(index, len(s.rows)-1))
	if i := s.nextUsable(index, step); i >= 0 {
		return i
	}
	return s.nextUsable(index, -step)
}

func (s *Service) ensureVisible() {
	if s.state.Cursor < 0 {
		s.state.ViewportOffset = max(0, min(s.state.ViewportOffset, len(s.rows)-s.state.ViewportHeight))
		return
	}
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
	}
	// no empty space below the last row
	if limit := len(s.rows) - s.state.ViewportHeight; s.state.ViewportOffset > limit {
		s.state.ViewportOffset = max(limit, 0)
	}
}

func flatten(list *options.OptionList, depth int, hideDisabled bool, rows []Row) []Row {
	for _, o := range list.Filtered() {
		if hideDisabled && o.Disabled() {
			continue
		}
		rows = append(rows, Row{Option: o, Depth: depth, List: list})
		if o.HasChildren() {
			children, _ := o.Children()
			rows = flatten(children, depth+1, hideDisabled, rows)
		}
	}
	return rows
}
