package cli

import (
	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command, which prints the effective
// configuration.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the configuration that run would use: built-in defaults overlaid
with --config, validated against the schema. The output is a valid config
file and can be saved as a starting point.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout())

			cfg, err := loadConfig(rootOpts)
			if err != nil {
				return formatter.Fail("load configuration", err)
			}

			if formatter.JSON() {
				return formatter.Success(cfg)
			}
			data, err := cfg.YAML()
			if err != nil {
				return formatter.Fail("render configuration", err)
			}
			_, err = formatter.Writer.Write(data)
			return err
		},
	}
	return cmd
}
