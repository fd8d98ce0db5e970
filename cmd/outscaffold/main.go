// Command outscaffold creates the experiment output directory layout in the
// current working directory. Run without arguments it creates the built-in
// layout and exits non-zero, naming the path, if any directory cannot be created.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/outscaffold/cmd/outscaffold/commands"
	"git.home.luguber.info/inful/outscaffold/internal/foundation/errors"
	"git.home.luguber.info/inful/outscaffold/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cli := &commands.CLI{}
	globals := &commands.Global{Stdout: stdout, Stderr: stderr, Logger: slog.Default()}

	parser, err := kong.New(cli,
		kong.Name("outscaffold"),
		kong.Description("Create the experiment output directory layout."),
		kong.Vars{"version": version.String()},
		kong.Writers(stdout, stderr),
		kong.Bind(globals, cli),
	)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	adapter := errors.NewCLIErrorAdapter(cli.Verbose, globals.Logger)
	return adapter.Report(stderr, ctx.Run())
}
