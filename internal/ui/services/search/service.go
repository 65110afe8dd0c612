package search

import (
	"log"
	"strings"

	"github.com/sahilm/fuzzy"

	"selectree/internal/diacritics"
	"selectree/internal/eventbus"
	"selectree/internal/options"
)

// DefaultSuggestions is the number of suggestions offered when a filter
// leaves nothing visible
const DefaultSuggestions = 3

// Service filters the option tree
type Service struct {
	state *State
	bus   eventbus.EventBus
	root  *options.OptionList
	limit int
}

// NewService creates a new search service over root. limit caps the number
// of suggestions; zero disables them.
func NewService(bus eventbus.EventBus, root *options.OptionList, limit int) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Service{
		state: &State{AnyShown: root.HasShown()},
		bus:   bus,
		root:  root,
		limit: limit,
	}
}

// Apply filters the tree with query and reports whether anything is left
// visible. Re-applying the current query is a no-op.
func (s *Service) Apply(query string) bool {
	if s.state.Applied && query == s.state.Query {
		return s.state.AnyShown
	}

	s.state.Query = query
	s.state.Applied = true
	s.state.AnyShown = s.root.Filter(query)
	s.state.Suggestions = nil
	if !s.state.AnyShown {
		s.state.Suggestions = s.suggest(query)
	}

	log.Printf("Filter applied for '%s': anything shown=%v", query, s.state.AnyShown)
	s.bus.Publish(eventbus.FilterAppliedEvent{
		Query:       query,
		AnyShown:    s.state.AnyShown,
		Suggestions: s.state.Suggestions,
	})
	return s.state.AnyShown
}

// Clear removes the filter
func (s *Service) Clear() bool {
	return s.Apply("")
}

// Query returns the current filter text
func (s *Service) Query() string {
	return s.state.Query
}

// Active reports whether a non-blank filter is applied
func (s *Service) Active() bool {
	return strings.TrimSpace(s.state.Query) != ""
}

// AnyShown reports whether the last filter left anything visible
func (s *Service) AnyShown() bool {
	return s.state.AnyShown
}

// Suggestions returns the labels offered for the last filter that matched
// nothing
func (s *Service) Suggestions() []string {
	return s.state.Suggestions
}

// suggest ranks every label in the tree by fuzzy closeness to query.
// Labels and query are folded the same way Filter folds them.
func (s *Service) suggest(query string) []string {
	if s.limit <= 0 {
		return nil
	}
	pattern := strings.Join(strings.Fields(diacritics.Fold(query)), "")
	if pattern == "" {
		return nil
	}

	labels := collectLabels(s.root, nil, map[string]bool{})
	folded := make([]string, len(labels))
	for i, label := range labels {
		folded[i] = diacritics.Fold(label)
	}

	var suggestions []string
	for _, match := range fuzzy.Find(pattern, folded) {
		suggestions = append(suggestions, labels[match.Index])
		if len(suggestions) == s.limit {
			break
		}
	}
	return suggestions
}

func collectLabels(list *options.OptionList, labels []string, seen map[string]bool) []string {
	for _, o := range list.Options() {
		// unlabeled options cannot match a filter, so they are never suggested
		if o.Label() != "" && !seen[o.Label()] {
			seen[o.Label()] = true
			labels = append(labels, o.Label())
		}
		if children, ok := o.Children(); ok {
			labels = collectLabels(children, labels, seen)
		}
	}
	return labels
}
