package domain

// OptionSpec is one input record of an option tree
type OptionSpec struct {
	Value    string `toml:"value" json:"value"`
	Label    string `toml:"label" json:"label"`
	Disabled bool   `toml:"disabled,omitempty" json:"disabled,omitempty"`
	// Children is nil for a leaf. A non-nil empty slice still declares a
	// nested list, it just has no options in it.
	Children []OptionSpec `toml:"children,omitempty" json:"children,omitempty"`
}

// HasChildList reports whether the record declares a nested list
func (s OptionSpec) HasChildList() bool {
	return s.Children != nil
}

// DisplayLabel returns the label, falling back to the value
func (s OptionSpec) DisplayLabel() string {
	if s.Label == "" {
		return s.Value
	}
	return s.Label
}

// CountOptions returns the number of records in the tree, at every depth
func CountOptions(specs []OptionSpec) int {
	n := 0
	for _, s := range specs {
		n++
		n += CountOptions(s.Children)
	}
	return n
}
