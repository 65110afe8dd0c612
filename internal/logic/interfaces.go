package logic

// ValueStore holds the value the dropdown is bound to. The widget reads it
// on start, applies later changes that differ from its own selection and
// writes its own changes back. Stores that are written by others announce
// it with a ValueChanged event.
type ValueStore interface {
	Value() []string
	// SetValue stores value and reports whether it differs from the
	// previous one
	SetValue(value []string) bool
	// Version increases on every change
	Version() uint64
}
