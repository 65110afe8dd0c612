package search

// State holds search state
type State struct {
	Query       string
	Applied     bool
	AnyShown    bool
	Suggestions []string // labels close to Query when nothing matched
}
