package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hnimtadd/termwrap"
	"github.com/hnimtadd/termwrap/logger"
	"github.com/hnimtadd/termwrap/terminal"
	"github.com/hnimtadd/termwrap/terminal/page"
	"github.com/hnimtadd/termwrap/terminal/point"
	"github.com/hnimtadd/termwrap/terminal/wraparound"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNoMapping = fmt.Errorf("position has no mapping")

// feedOptions are the flags shared by every command that replays output.
type feedOptions struct {
	cols, rows int
	scrollback int
	logLevel   string
	jsonLogs   bool
}

func (o *feedOptions) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVar(&o.cols, "cols", defaultCols(), "terminal width")
	flags.IntVar(&o.rows, "rows", terminal.DefaultRows, "terminal height")
	flags.IntVar(&o.scrollback, "scrollback", terminal.DefaultMaxScrollback, "rows kept above the screen")
	flags.StringVar(&o.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.BoolVar(&o.jsonLogs, "log-json", false, "log as JSON")
}

// defaultCols is the width of the controlling terminal, if any.
func defaultCols() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return terminal.DefaultCols
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return terminal.DefaultCols
	}
	return width
}

// replay feeds the file named by args, or stdin, through a terminal.
func (o *feedOptions) replay(cmd *cobra.Command, args []string) (*termwrap.TerminalIO, error) {
	level, ok := logger.ParseLevel(o.logLevel)
	if !ok {
		return nil, fmt.Errorf("unknown log level %q", o.logLevel)
	}
	logType := logger.TypeText
	if o.jsonLogs {
		logType = logger.TypeJSON
	}
	log := logger.New(logger.Options{
		Buffer: cmd.ErrOrStderr(),
		Level:  level,
		Type:   logType,
	})

	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	tio := termwrap.NewTerminalIO(termwrap.Options{
		Cols:          o.cols,
		Rows:          o.rows,
		MaxScrollback: o.scrollback,
		Logger:        log,
	})
	n, err := io.Copy(tio, in)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	log.Debug("replayed output", "bytes", n, "rows", tio.Terminal().LineCount())
	return tio, nil
}

func buildRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "termwrap",
		Short: "Inspect terminal output as logical lines",
		Long: `termwrap - replay terminal output and address it by logical line

A logical line is what the program wrote before the terminal wrapped it at
its width. Positions are given as (column, row), rows counted from the
oldest row kept in the scrollback.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(buildLinesCommand())
	root.AddCommand(buildLocateCommand())
	return root
}

func buildLinesCommand() *cobra.Command {
	var opts feedOptions
	cmd := &cobra.Command{
		Use:   "lines [file]",
		Short: "Print every logical line with its row and length",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tio, err := opts.replay(cmd, args)
			if err != nil {
				return err
			}
			defer tio.Close()

			// Rows below the output are empty lines of their own, leave
			// them out.
			var lines []string
			last := 0
			for start, cells := range wraparound.All(tio.Terminal()) {
				lines = append(lines, fmt.Sprintf("%d\t%d\t%s", start.Y, len(cells), page.CellsString(cells)))
				if len(cells) > 0 {
					last = len(lines)
				}
			}

			out := cmd.OutOrStdout()
			for _, line := range lines[:last] {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	opts.register(cmd)
	return cmd
}

func buildLocateCommand() *cobra.Command {
	var (
		opts     feedOptions
		row, col int
	)
	cmd := &cobra.Command{
		Use:   "locate [file]",
		Short: "Translate a buffer position to its logical line position and back",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tio, err := opts.replay(cmd, args)
			if err != nil {
				return err
			}
			defer tio.Close()

			buffer := tio.Terminal()
			p := point.Screen{X: col, Y: row}
			inv, ok := wraparound.ToWraparound(buffer, p)
			if !ok {
				return fmt.Errorf("%s: %w", p, errNoMapping)
			}
			back, ok := wraparound.ToScreen(buffer, inv)
			if !ok {
				return fmt.Errorf("%s: %w", inv, errNoMapping)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s -> %s\n", p, inv, back)
			return nil
		},
	}
	opts.register(cmd)
	cmd.Flags().IntVar(&row, "row", 0, "buffer row")
	cmd.Flags().IntVar(&col, "col", 0, "column within the row")
	return cmd
}
