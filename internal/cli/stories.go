package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/kanjiparse/internal/config"
	"github.com/roach88/kanjiparse/internal/pipeline"
	"github.com/roach88/kanjiparse/internal/story"
)

// StoriesResult is the JSON payload of the stories command.
type StoriesResult struct {
	Rows    int                 `json:"rows"`
	Groups  []story.GroupRecord `json:"groups"`
	Stories []story.Record      `json:"stories"`
	Skipped story.Skips         `json:"skipped"`
}

// NewStoriesCommand creates the stories command.
func NewStoriesCommand(rootOpts *RootOptions) *cobra.Command {
	var sheet string
	var limit int

	cmd := &cobra.Command{
		Use:           "stories <workbook>",
		Short:         "Extract story records from a workbook without writing files",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout())
			logger := newLogger(rootOpts, cmd.ErrOrStderr())

			cfg, err := loadConfig(rootOpts, func(c *config.Config) {
				c.Workbook.Path = args[0]
				if cmd.Flags().Changed("sheet") {
					c.Workbook.Sheet = sheet
				}
			})
			if err != nil {
				return formatter.Fail("load configuration", err)
			}

			out, err := pipeline.New(cfg, logger).Stories()
			if err != nil {
				return formatter.Fail("read stories", err)
			}

			res := out.Result
			if formatter.JSON() {
				return formatter.Success(StoriesResult{
					Rows:    out.Rows,
					Groups:  res.Groups,
					Stories: res.Stories,
					Skipped: res.Skipped,
				})
			}

			w := formatter.Writer
			fmt.Fprintf(w, "%d groups, %d stories from %d rows (%d skipped)\n",
				len(res.Groups), len(res.Stories), out.Rows, res.Skipped.Total())
			if len(res.Stories) == 0 {
				return nil
			}

			shown := res.Stories
			if limit > 0 && len(shown) > limit {
				shown = shown[:limit]
			}
			rows := make([][]string, 0, len(shown))
			for _, r := range shown {
				rows = append(rows, []string{r.DisplayIdentity, r.GroupIdentity, r.MemberNumber, r.FrameNumber, r.Meaning})
			}
			fmt.Fprintln(w, renderTable(
				[]string{"Character", "Group", "Member", "Frame", "Meaning"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
			))
			if len(shown) < len(res.Stories) {
				fmt.Fprintf(w, "... %s more\n", strconv.Itoa(len(res.Stories)-len(shown)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet holding the stories")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum stories to list in text output (0 lists all)")

	return cmd
}
