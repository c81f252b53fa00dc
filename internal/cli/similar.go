package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/kanjiparse/internal/config"
	"github.com/roach88/kanjiparse/internal/pipeline"
	"github.com/roach88/kanjiparse/internal/similarity"
)

// SimilarResult is the JSON payload of the similar command.
type SimilarResult struct {
	Characters int                     `json:"characters"`
	Counts     map[similarity.Type]int `json:"counts"`
	Groups     []similarity.Group      `json:"groups"`
}

var groupTypes = []string{
	string(similarity.TypeRadical),
	string(similarity.TypeOnReading),
	string(similarity.TypeKunReading),
}

// NewSimilarCommand creates the similar command.
func NewSimilarCommand(rootOpts *RootOptions) *cobra.Command {
	var only string

	cmd := &cobra.Command{
		Use:           "similar <kanjidic2.xml>",
		Short:         "Synthesize similarity groups from KANJIDIC2 without writing files",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout())
			logger := newLogger(rootOpts, cmd.ErrOrStderr())

			if only != "" && !slices.Contains(groupTypes, only) {
				_ = formatter.Error(ErrCodeGeneric, fmt.Sprintf("unknown group type %q", only), groupTypes)
				return NewExitError(ExitCommandError, fmt.Sprintf("%s: unknown group type %q", ErrCodeGeneric, only))
			}

			cfg, err := loadConfig(rootOpts, func(c *config.Config) {
				c.Dictionary.Path = args[0]
			})
			if err != nil {
				return formatter.Fail("load configuration", err)
			}

			out, err := pipeline.New(cfg, logger).Similarity()
			if err != nil {
				return formatter.Fail("read dictionary", err)
			}

			groups := out.Groups
			if only != "" {
				groups = slices.DeleteFunc(slices.Clone(groups), func(g similarity.Group) bool {
					return string(g.Type) != only
				})
			}

			if formatter.JSON() {
				return formatter.Success(SimilarResult{
					Characters: out.Dictionary.Len(),
					Counts:     similarity.Counts(out.Groups),
					Groups:     groups,
				})
			}

			w := formatter.Writer
			fmt.Fprintf(w, "%d characters, %d groups\n", out.Dictionary.Len(), len(groups))
			if len(groups) == 0 {
				return nil
			}
			rows := make([][]string, 0, len(groups))
			for _, g := range groups {
				rows = append(rows, []string{
					string(g.Type), g.Key, g.Label, strconv.Itoa(g.Count()), strings.Join(g.Members, " "),
				})
			}
			fmt.Fprintln(w, renderTable(
				[]string{"Type", "Key", "Label", "Count", "Members"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&only, "type", "", "only show groups of this type (radical|on_reading|kun_reading)")

	return cmd
}
