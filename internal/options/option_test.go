package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectree/internal/domain"
)

func TestOptionAccessors(t *testing.T) {
	o := newOption(domain.OptionSpec{Value: "v", Label: "Label"})
	assert.Equal(t, "v", o.Value())
	assert.Equal(t, "Label", o.Label())
	assert.True(t, o.Shown())
	assert.False(t, o.Selected())
	assert.False(t, o.Highlighted())

	unlabeled := newOption(domain.OptionSpec{Value: "only-value"})
	assert.Equal(t, "", unlabeled.Label())
	assert.Equal(t, "only-value", unlabeled.DisplayLabel())
}

func TestOptionChildrenPresence(t *testing.T) {
	leafOpt := newOption(leaf("a", "A"))
	_, ok := leafOpt.Children()
	assert.False(t, ok)
	assert.False(t, leafOpt.HasChildren())

	emptyGroup := newOption(group("g", "G"))
	children, ok := emptyGroup.Children()
	require.True(t, ok)
	assert.Equal(t, 0, children.Len())
	assert.True(t, children.IsChild())
	assert.False(t, emptyGroup.HasChildren())

	full := newOption(group("g", "G", leaf("c", "C")))
	assert.True(t, full.HasChildren())
}

func TestOptionSelectionReadsOnLeafAreSafe(t *testing.T) {
	o := newOption(leaf("a", "A"))
	assert.False(t, o.HasSelected())
	assert.NotNil(t, o.GetSelected())
	assert.Empty(t, o.GetSelected())
}

func TestOptionSetSelectedPropagates(t *testing.T) {
	o := newOption(group("g", "G",
		leaf("a", "A"),
		group("sub", "Sub", leaf("b", "B")),
	))

	o.SetSelected([]string{"b", "g"})
	assert.True(t, o.Selected())
	assert.True(t, o.HasSelected())
	assert.Equal(t, []string{"b"}, values(o.GetSelected()))

	o.SetSelected([]string{"a"})
	assert.False(t, o.Selected())
	assert.Equal(t, []string{"a"}, values(o.GetSelected()))

	o.SetSelected(nil)
	assert.False(t, o.HasSelected())
}

func TestOptionClearSelectionSelfFirst(t *testing.T) {
	o := newOption(group("g", "G",
		leaf("a", "A"),
		group("sub", "Sub", leaf("b", "B")),
	))
	o.SetSelected([]string{"g", "a", "b"})

	cleared := o.ClearSelection()
	assert.Equal(t, []string{"g", "a", "b"}, values(cleared))
	assert.False(t, o.Selected())
	assert.False(t, o.HasSelected())

	assert.Empty(t, o.ClearSelection())
}

func TestOptionClearSelectionOnlyReportsTransitions(t *testing.T) {
	o := newOption(group("g", "G", leaf("a", "A"), leaf("b", "B")))
	o.SetSelected([]string{"b"})

	cleared := o.ClearSelection()
	assert.Equal(t, []string{"b"}, values(cleared))
}
