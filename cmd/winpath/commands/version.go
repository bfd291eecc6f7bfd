package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/winpath/pkg/version"
)

func GetVersionString() string {
	return version.String()
}

// NewVersionCmd returns the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version of the winpath CLI",
		RunE: func(cc *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cc.OutOrStdout(), GetVersionString())

			return err
		},
	}
}
