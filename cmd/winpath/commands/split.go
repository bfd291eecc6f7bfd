package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/macropower/winpath/pkg/winpath"
)

const splitExample = `  # Show every component of a path
  winpath split 'C:\Users\me\notes.txt'

  # As JSON
  winpath split -o json 'C:\Users\me\notes.txt'
`

// NewSplitCmd returns the split command.
func NewSplitCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:          "split <path>",
		Short:        "Show every component of a path",
		Example:      splitExample,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			c := args.Paths().Split(pArgs[0])

			if args.GetOutput() != OutputText {
				return writeStructured(cc.OutOrStdout(), args.GetOutput(), c)
			}

			return writeComponents(cc.OutOrStdout(), c)
		},
	}
}

func writeComponents(w io.Writer, c winpath.Components) error {
	r := lipgloss.NewRenderer(w)
	if !isTerminal(w) {
		r.SetColorProfile(termenv.Ascii)
	}

	keyStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("211")).Width(10)
	noneStyle := r.NewStyle().Faint(true)

	optional := func(v string, ok bool) string {
		if !ok {
			return noneStyle.Render("(none)")
		}

		return v
	}

	rows := [][2]string{
		{"drive", optional(c.Drive, c.HasDrive)},
		{"directory", optional(c.Directory, c.HasDirectory)},
		{"basename", c.BaseName},
		{"stem", c.Stem},
		{"extension", c.Extension},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, keyStyle.Render(row[0])+" "+row[1]); err != nil {
			return err
		}
	}

	return nil
}
