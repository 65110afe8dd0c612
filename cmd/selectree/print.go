package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"selectree/internal/eventbus"
	"selectree/internal/options"
	"selectree/internal/ui"
	"selectree/internal/ui/services/search"
	"selectree/internal/ui/views"
)

func (a *app) printCmd() *cobra.Command {
	var (
		query  string
		values []string
		pager  bool
	)

	cmd := &cobra.Command{
		Use:   "print [file]",
		Short: "Print the option tree",
		Long:  `Prints the options left by --query as a tree, marking the selected ones.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := loadConfig(eventbus.NullBus{}, args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("value") {
				cfg.Value = values
			}

			root := options.NewOptionList(cfg.Options)
			root.SetValue(cfg.Value)

			styles := views.NewStyles()
			s := search.NewService(nil, root, cfg.UISettings.Suggestions)
			var out string
			if s.Apply(query) {
				out = views.RenderTree(title(path), root, cfg.Multiple, styles)
			} else {
				out = styles.NoResults.Render(fmt.Sprintf("No options match %q", query))
				if len(s.Suggestions()) > 0 {
					out += fmt.Sprintf("\nDid you mean: %v?", s.Suggestions())
				}
			}

			if pager {
				return ui.ShowInPager(out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "filter applied before printing")
	cmd.Flags().StringArrayVarP(&values, "value", "v", nil, "selected value (repeatable)")
	cmd.Flags().BoolVar(&pager, "pager", false, "show the tree in a pager")
	return cmd
}
