package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"selectree/internal/config"
	"selectree/internal/eventbus"
	"selectree/internal/logic"
	"selectree/internal/ui"
)

var errCancelled = errors.New("cancelled")

type app struct {
	logPath string
	logFile *lumberjack.Logger

	multiple bool
	values   []string
	query    string
	watch    bool
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selectree [file]",
		Short: "Pick values from a tree of options",
		Long: `selectree shows the options of a TOML file as a filterable dropdown and
prints the selected values, one per line. Without a file the options are
read from the default config location.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.setupLogging()
		},
		RunE: a.runDropdown,
	}

	cmd.PersistentFlags().StringVar(&a.logPath, "log", "selectree.log", "log file, empty to disable logging")
	cmd.Flags().BoolVarP(&a.multiple, "multiple", "m", false, "allow selecting several options")
	cmd.Flags().StringArrayVarP(&a.values, "value", "v", nil, "initially selected value (repeatable)")
	cmd.Flags().StringVarP(&a.query, "query", "q", "", "initial filter")
	cmd.Flags().BoolVarP(&a.watch, "watch", "w", false, "take over the file's value whenever the file is saved")

	cmd.AddCommand(a.printCmd(), a.initCmd())
	return cmd
}

func (a *app) setupLogging() {
	if a.logPath == "" {
		log.SetOutput(io.Discard)
		return
	}
	a.logFile = &lumberjack.Logger{
		Filename:   a.logPath,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	log.SetOutput(a.logFile)
}

func (a *app) closeLog() {
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

func (a *app) runDropdown(cmd *cobra.Command, args []string) error {
	bus := eventbus.New()
	defer bus.Close()
	logEvents(bus)

	cfg, path, err := loadConfig(bus, args)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("multiple") {
		cfg.Multiple = a.multiple
	}
	if cmd.Flags().Changed("value") {
		cfg.Value = a.values
	}

	store := logic.NewMemoryValueStoreWithBus(bus, cfg.Value)
	model := ui.NewModel(bus, cfg, store, title(path), a.query)

	// the dropdown draws on stderr so stdout only carries the result
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(cmd.ErrOrStderr()))
	model.SetProgram(p)

	stopForwarding := ui.ForwardEvents(bus, p.Send)
	defer stopForwarding()

	if a.watch {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := watchValue(ctx, path, store); err != nil {
			return err
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run dropdown: %w", err)
	}
	if !model.Submitted() {
		return errCancelled
	}

	for _, v := range model.Value() {
		fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}

// loadConfig reads the options file named by args, or the default one
func loadConfig(bus eventbus.EventBus, args []string) (*config.Config, string, error) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	svc := config.NewConfigServiceWithBus(bus, path)

	if path == "" {
		cfg, err := svc.Load()
		if err != nil {
			return nil, "", err
		}
		if err := cfg.Validate(); err != nil {
			return nil, "", fmt.Errorf("%s: %w (run `selectree init` to create a sample)", svc.Path(), err)
		}
		return cfg, svc.Path(), nil
	}

	cfg, err := svc.LoadFromPath(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// watchValue copies the value of the options file at path into store every
// time the file is saved
func watchValue(ctx context.Context, path string, store logic.ValueStore) error {
	w, err := config.NewWatcher(path)
	if err != nil {
		return err
	}
	go func() {
		err := w.Run(ctx, func(cfg *config.Config) {
			if store.SetValue(cfg.Value) {
				log.Printf("Value reloaded from %s: %v", path, cfg.Value)
			}
		})
		if err != nil {
			log.Printf("Stopped watching %s: %v", path, err)
		}
	}()
	return nil
}

func title(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if name == "" || name == "." {
		return "selectree"
	}
	return name
}

func logEvents(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			log.Printf("Loaded %d options from %s", event.OptionCount, event.Path)
		}
	})
	bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SelectionChangedEvent); ok {
			log.Printf("Selection: added %v, removed %v", event.Added, event.Removed)
		}
	})
	bus.Subscribe(eventbus.EventFilterApplied, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FilterAppliedEvent); ok && !event.AnyShown && len(event.Suggestions) > 0 {
			log.Printf("Nothing matched '%s', suggested %v", event.Query, event.Suggestions)
		}
	})
}
