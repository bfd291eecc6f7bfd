package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/macropower/winpath/cmd/winpath/commands"
)

const (
	cmdName = "winpath"

	shortDesc = "Windows path manipulation from the command line."
	longDesc  = `winpath parses, cleans, and joins Windows-style paths.

Paths may start with a drive letter (C:) and may use "\" or "/" as a
separator. Nothing is read from or written to the file system: every command
works on the path strings alone.

Commands that look for a part of a path that may not exist (drive, directory)
fail in text output and report "found: false" in JSON or YAML output, so that
an empty result can be told apart from no result.
`
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	err := cmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
