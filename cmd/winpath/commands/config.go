package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/winpath/pkg/config"
)

// NewConfigCmd returns the config command.
func NewConfigCmd(args *RootArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "config",
		Short:        "Inspect the configuration",
		SilenceUsage: true,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			return args.Config().WriteYAML(cc.OutOrStdout())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			b, err := config.Schema()
			if err != nil {
				return fmt.Errorf("generate schema: %w", err)
			}

			_, err = fmt.Fprintln(cc.OutOrStdout(), string(b))

			return err
		},
	})

	return cmd
}
