package selection

// State holds selection state
type State struct {
	Multiple    bool
	LastToggled string // value of the last toggled option
}
