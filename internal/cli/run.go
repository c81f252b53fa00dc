package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/kanjiparse/internal/config"
	"github.com/roach88/kanjiparse/internal/pipeline"
	"github.com/roach88/kanjiparse/internal/similarity"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Workbook   string
	Sheet      string
	Dictionary string
	OutDir     string
	Database   string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Extract stories and similarity groups into CSV files",
		Long: `Run the whole pipeline: read the story workbook, resolve duplicate
characters, read KANJIDIC2, synthesize similarity groups and write the CSV
tables (and the SQLite export when --db is set).

A missing or unreadable source only skips the outputs that depend on it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Workbook, "workbook", "", "story workbook (.xlsx/.xlsm)")
	cmd.Flags().StringVar(&opts.Sheet, "sheet", "", "worksheet holding the stories")
	cmd.Flags().StringVar(&opts.Dictionary, "dictionary", "", "KANJIDIC2 XML file (optionally .gz)")
	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", "", "output directory")
	cmd.Flags().StringVar(&opts.Database, "db", "", "also export to this SQLite database")

	return cmd
}

func runRun(cmd *cobra.Command, opts *RunOptions) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout())
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())

	flags := cmd.Flags()
	cfg, err := loadConfig(opts.RootOptions, func(c *config.Config) {
		if flags.Changed("workbook") {
			c.Workbook.Path = opts.Workbook
		}
		if flags.Changed("sheet") {
			c.Workbook.Sheet = opts.Sheet
		}
		if flags.Changed("dictionary") {
			c.Dictionary.Path = opts.Dictionary
		}
		if flags.Changed("out") {
			c.Output.Dir = opts.OutDir
		}
		if flags.Changed("db") {
			c.Output.Database = opts.Database
		}
	})
	if err != nil {
		return formatter.Fail("load configuration", err)
	}

	report, err := pipeline.New(cfg, logger).Run(cmd.Context())
	if err != nil {
		return formatter.Fail("run failed", err)
	}

	if formatter.JSON() {
		return formatter.Success(report)
	}
	writeReport(formatter.Writer, report)
	return nil
}

// writeReport renders a run report as text tables.
func writeReport(w io.Writer, r *pipeline.Report) {
	fmt.Fprintf(w, "Run %s\n\n", r.RunID)

	sources := make([][]string, 0, len(r.Sources))
	for _, s := range r.Sources {
		status := "used"
		if !s.Used {
			status = "skipped: " + s.Error
		}
		sources = append(sources, []string{s.Name, s.Path, status})
	}
	fmt.Fprintln(w, renderTable([]string{"Source", "Path", "Status"}, sources, nil))

	if s := r.Stories; s != nil {
		fmt.Fprintf(w, "Stories: %d rows, %d groups, %d stories, %d duplicated characters, %d rows skipped\n",
			s.Rows, s.Groups, s.Stories, s.Duplicates, s.Skipped.Total())
	}
	if d := r.Dictionary; d != nil {
		fmt.Fprintf(w, "Dictionary: %d characters, %s\n", d.Characters, groupCounts(d.Groups))
	}

	outputs := make([][]string, 0, len(r.Outputs))
	for _, o := range r.Outputs {
		status := "written"
		if !o.Written {
			status = "skipped: " + o.Reason
		}
		outputs = append(outputs, []string{o.Name, o.Path, strconv.Itoa(o.Rows), status})
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, renderTable(
		[]string{"Output", "Path", "Rows", "Status"},
		outputs,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
	))
}

func groupCounts(counts map[similarity.Type]int) string {
	parts := []string{
		fmt.Sprintf("%d radical", counts[similarity.TypeRadical]),
		fmt.Sprintf("%d on-reading", counts[similarity.TypeOnReading]),
		fmt.Sprintf("%d kun-reading groups", counts[similarity.TypeKunReading]),
	}
	return strings.Join(parts, ", ")
}
