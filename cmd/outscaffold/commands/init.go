package commands

import (
	"fmt"

	"git.home.luguber.info/inful/outscaffold/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Output string `short:"o" name:"output" default:"outscaffold.yaml" help:"Path of the layout file to write"`
	Force  bool   `help:"Overwrite an existing layout file"`
}

func (i *InitCmd) Run(g *Global, _ *CLI) error {
	if err := config.Init(i.Output, i.Force); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.Stdout, "Wrote layout to %s\n", i.Output)
	return nil
}
