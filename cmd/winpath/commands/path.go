package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/macropower/winpath/pkg/pathops"
)

// ErrNotFound indicates a method produced no result, such as a drive for a
// path without one.
var ErrNotFound = errors.New("not found")

// NewMethodCmd returns a command running the path method m.
//
// The command is named after the kebab-case form of the method name, with the
// compact and snake-case forms as aliases. Missing positional arguments are
// passed on as absent, so the method decides whether they are required.
func NewMethodCmd(args *RootArgs, m pathops.Method) *cobra.Command {
	names := m.Names()
	name := names[len(names)-1]

	var aliases []string
	for _, n := range names {
		if n != name {
			aliases = append(aliases, n)
		}
	}

	return &cobra.Command{
		Use:          name + " " + usage(m.Params),
		Aliases:      aliases,
		Short:        m.Short,
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(len(m.Params)),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			res, err := args.Registry().Call(m.Name, pathops.NewArgs(pArgs...))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			if args.GetOutput() != OutputText {
				return writeStructured(cc.OutOrStdout(), args.GetOutput(), res)
			}

			if !res.Found {
				return fmt.Errorf("%s: %w", m.Compact(), ErrNotFound)
			}

			_, err = fmt.Fprintln(cc.OutOrStdout(), res.Value)

			return err
		},
	}
}

func usage(params []pathops.Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		if p.Optional {
			parts = append(parts, "["+p.Name+"]")
		} else {
			parts = append(parts, "<"+p.Name+">")
		}
	}

	return strings.Join(parts, " ")
}
