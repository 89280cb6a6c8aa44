package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sirkon/relint/internal/catalog"
	"github.com/sirkon/relint/internal/config"
	"github.com/sirkon/relint/internal/registry"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	// Register built-in rules.
	_ "github.com/sirkon/relint/internal/rules"
)

// usageError marks invalid invocations, distinguishable from operational
// failures for exit code purposes.
type usageError struct {
	msg string
}

func (e usageError) Error() string { return e.msg }

func rulesCmd() *cobra.Command {
	var (
		onlyEnabled  bool
		onlyDisabled bool
		configPath   string
	)

	cmd := &cobra.Command{
		Use:   "rules [RULE_ID]",
		Short: "Display the rule catalog or one rule's documentation",
		Example: `  relint rules
  relint rules --enabled
  relint rules no_silent_drop`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if onlyEnabled && onlyDisabled {
				return usageError{msg: "--enabled and --disabled are mutually exclusive"}
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: slog.LevelWarn,
			}))

			file, err := config.Load(configPath, logger)
			if err != nil {
				return fmt.Errorf("load project configuration: %w", err)
			}

			resolved, err := config.Resolve(file, registry.Default)
			if err != nil {
				return fmt.Errorf("resolve project configuration: %w", err)
			}

			if len(args) == 1 {
				return runSingleRule(cmd, args[0], resolved)
			}

			mode := catalog.FilterAll
			switch {
			case onlyEnabled:
				mode = catalog.FilterEnabled
			case onlyDisabled:
				mode = catalog.FilterDisabled
			}

			rows := catalog.Rows(mode, registry.Default, resolved)
			fmt.Fprint(cmd.OutOrStdout(), catalog.DefaultLayout().RenderTable(rows, terminalWidth()))

			return nil
		},
	}

	cmd.Flags().BoolVar(&onlyEnabled, "enabled", false, "only display enabled rules")
	cmd.Flags().BoolVar(&onlyDisabled, "disabled", false, "only display disabled rules")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "project configuration file path")

	return cmd
}

func runSingleRule(cmd *cobra.Command, id string, resolved *config.Resolved) error {
	factory, ok := registry.Default.Lookup(id)
	if !ok {
		return usageError{msg: fmt.Sprintf("no rule matching identifier %q", id)}
	}

	inst, ok := resolved.Resolve(id)
	if !ok {
		inst = factory()
	}

	fmt.Fprint(cmd.OutOrStdout(), catalog.RenderDetail(inst))

	return nil
}

// terminalWidth queries the column count, once per render pass.
// Non-terminal output yields zero, which collapses the description
// budget to its minimum width.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}

	return w
}
