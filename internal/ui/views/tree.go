package views

import (
	"github.com/charmbracelet/lipgloss/tree"

	"selectree/internal/options"
)

// RenderTree renders the options left visible by the last filter as a
// tree under title. Selected options are marked, disabled ones dimmed.
func RenderTree(title string, root *options.OptionList, multiple bool, styles *Styles) string {
	tr := tree.Root(styles.Title.Render(title)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(styles.Dim)
	addChildren(tr, root, multiple, styles)
	return tr.String()
}

func addChildren(parent *tree.Tree, list *options.OptionList, multiple bool, styles *Styles) {
	for _, o := range list.Filtered() {
		node := tree.Root(treeLabel(o, multiple, styles))
		if children, ok := o.Children(); ok {
			addChildren(node, children, multiple, styles)
		}
		parent.Child(node)
	}
}

func treeLabel(o *options.Option, multiple bool, styles *Styles) string {
	if o.HasChildren() {
		return styles.Group.Render(o.DisplayLabel())
	}
	label := Marker(o, multiple) + " " + o.DisplayLabel()
	switch {
	case o.Disabled():
		return styles.Disabled.Render(label)
	case o.Selected():
		return styles.Selected.Render(label)
	}
	return label
}
