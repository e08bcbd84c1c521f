package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KaramelBytes/housestat-cli/internal/housing"
	"github.com/KaramelBytes/housestat-cli/internal/report"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	repFloors     int
	repFormat     string
	repLocale     string
	repDelimiter  string
	repAllowBlank bool
	repStats      bool
)

// reportOptions is the resolved set of inputs for one pipeline run.
type reportOptions struct {
	Path   string
	Load   housing.LoadOptions
	Locale report.Locale
	Format string
	Stats  bool
}

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Classify all houses in a file and report counts and the most crowded house",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := currentConfig()
		opts := reportOptions{Path: c.DataFile, Format: c.Format, Stats: repStats}
		if len(args) == 1 {
			opts.Path = args[0]
		}
		if cmd.Flags().Changed("format") {
			opts.Format = repFormat
		}
		locale := c.Locale
		if cmd.Flags().Changed("locale") {
			locale = repLocale
		}
		loc, err := report.LookupLocale(locale)
		if err != nil {
			return err
		}
		opts.Locale = loc

		delim := c.Delimiter
		if cmd.Flags().Changed("delimiter") {
			delim = repDelimiter
		}
		if opts.Load.Delimiter, err = parseDelimiter(delim); err != nil {
			return err
		}
		opts.Load.AllowBlank = c.AllowBlank
		if cmd.Flags().Changed("allow-blank") {
			opts.Load.AllowBlank = repAllowBlank
		}

		records, err := housing.LoadFile(opts.Path, opts.Load)
		if err != nil {
			return err
		}
		debugf(cmd, "loaded %d records from %s", len(records), opts.Path)

		floors := repFloors
		if !cmd.Flags().Changed("floors") {
			floors, err = promptFloors(cmd.InOrStdin(), cmd.OutOrStdout(), loc.Prompt)
			if err != nil {
				return err
			}
		}
		return runReport(cmd.OutOrStdout(), records, floors, opts)
	},
}

// runReport builds the report for already-loaded records and writes it to w.
func runReport(w io.Writer, records []housing.Record, floors int, opts reportOptions) error {
	rep, err := report.Build(opts.Path, records, floors, opts.Locale)
	if err != nil {
		return err
	}
	out, err := rep.Render(opts.Format, opts.Stats)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// promptFloors reads one floor count from in. The prompt is shown only when in is a terminal.
func promptFloors(in io.Reader, out io.Writer, prompt string) (int, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(out, prompt)
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("read floor count: %w", err)
	}
	if strings.TrimSpace(line) == "" {
		return 0, errors.New("no floor count entered (use --floors or type a number)")
	}
	return housing.ParseFloorCount(line)
}

func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case "\t", "tab":
		return '\t', nil
	case ";":
		return ';', nil
	default:
		return 0, fmt.Errorf("unsupported delimiter: %s (use ',', ';' or 'tab')", s)
	}
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().IntVar(&repFloors, "floors", 0, "floor count to classify ad hoc (prompted on stdin if omitted)")
	reportCmd.Flags().StringVar(&repFormat, "format", "text", "output format: text | json | yaml")
	reportCmd.Flags().StringVar(&repLocale, "locale", "ru", "console labels: ru | en")
	reportCmd.Flags().StringVar(&repDelimiter, "delimiter", "", "field delimiter: ',' | ';' | 'tab' (default: from extension)")
	reportCmd.Flags().BoolVar(&repAllowBlank, "allow-blank", false, "load blank numeric cells as missing values")
	reportCmd.Flags().BoolVar(&repStats, "stats", false, "append area-per-resident statistics to text output")
}
