package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/patterns-go/patterns/cmd/patterns/commands"
	"github.com/patterns-go/patterns/cmd/patterns/interactive"
	"github.com/patterns-go/patterns/internal/demo"
	"github.com/patterns-go/patterns/internal/logging"
	"github.com/patterns-go/patterns/pkg/log"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	logLevel string
	noColor  bool
	journal  string

	out    io.Writer
	errOut io.Writer
	logger zerolog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &rootOptions{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "patterns",
		Short:         "Walk through classic design patterns",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			opts.logger = logging.New(logging.Options{
				Out:     errOut,
				Level:   level,
				NoColor: opts.noColor,
			})
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVarP(&opts.logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored log output")

	for _, r := range demo.Runners() {
		root.AddCommand(newDemoCmd(opts, r))
	}
	root.AddCommand(newDemoCmd(opts, demo.Runner{
		Name:  "all",
		Short: "Run every walkthrough in order",
		Run:   demo.All,
	}))
	root.AddCommand(newBaristaCmd(opts))
	root.AddCommand(newJournalCmd(opts))

	return root
}

// openJournal returns the journal demo events go to. Events are always
// echoed to the debug log; with a path they are also appended to a file.
func (o *rootOptions) openJournal() (log.Logger, func() error, error) {
	console := log.NewConsoleAdapter(o.logger)
	if o.journal == "" {
		return console, func() error { return nil }, nil
	}

	file, err := log.NewFileLogger(o.journal)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open journal: %w", err)
	}
	return log.NewMultiLogger(file, console), file.Close, nil
}

func newDemoCmd(opts *rootOptions, r demo.Runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   r.Name,
		Short: r.Short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			journal, closeJournal, err := opts.openJournal()
			if err != nil {
				return err
			}
			defer closeJournal()

			return r.Run(cmd.Context(), demo.Env{
				Out:     opts.out,
				Logger:  opts.logger,
				Journal: journal,
			})
		},
	}
	cmd.Flags().StringVarP(&opts.journal, "journal", "j", "", "Append pattern events to this journal file")
	return cmd
}

func newBaristaCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "barista",
		Short: "Order coffee interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			journal, closeJournal, err := opts.openJournal()
			if err != nil {
				return err
			}
			defer closeJournal()

			b, err := interactive.New(journal)
			if err != nil {
				return err
			}
			b.Run(cmd.Context())
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.journal, "journal", "j", "", "Append orders to this journal file")
	return cmd
}

func newJournalCmd(opts *rootOptions) *cobra.Command {
	journal := &cobra.Command{
		Use:   "journal",
		Short: "Inspect journal files written with --journal",
	}

	var filter commands.FilterOptions
	addFilterFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&filter.Pattern, "pattern", "", "Filter by pattern (observer, factory, singleton, decorator)")
		cmd.Flags().StringVar(&filter.Category, "category", "", "Filter by category (notification, construction, state, error)")
		cmd.Flags().StringVar(&filter.Source, "source", "", "Filter by source")
		cmd.Flags().StringVar(&filter.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
		cmd.Flags().StringVar(&filter.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
	}

	view := &cobra.Command{
		Use:   "view [flags] <file>",
		Short: "View journal in human-readable format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := filter.Filter()
			if err != nil {
				return err
			}
			return commands.RunView(args[0], f, opts.out)
		},
	}
	addFilterFlags(view)

	stats := &cobra.Command{
		Use:   "stats <file>",
		Short: "Show statistics about the journal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunStats(args[0], opts.out)
		},
	}

	var format string
	export := &cobra.Command{
		Use:   "export [flags] <file>",
		Short: "Export journal to JSONL or CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunExport(args[0], format, opts.out)
		},
	}
	export.Flags().StringVarP(&format, "format", "f", commands.FormatJSONL, "Output format (jsonl, csv)")

	var output string
	filterCmd := &cobra.Command{
		Use:   "filter [flags] <file>",
		Short: "Filter journal and write matching events to a new file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := filter.Filter()
			if err != nil {
				return err
			}
			n, err := commands.RunFilter(args[0], output, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(opts.out, "Filtered %d events to %s\n", n, output)
			return nil
		},
	}
	addFilterFlags(filterCmd)
	filterCmd.Flags().StringVarP(&output, "output", "o", "", "Output journal file")
	_ = filterCmd.MarkFlagRequired("output")

	journal.AddCommand(view, stats, export, filterCmd)
	return journal
}
