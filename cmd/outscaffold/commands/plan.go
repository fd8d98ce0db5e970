package commands

import (
	"fmt"

	"git.home.luguber.info/inful/outscaffold/internal/scaffold"
)

// PlanCmd implements the 'plan' command.
type PlanCmd struct{}

func (p *PlanCmd) Run(g *Global, root *CLI) error {
	l, err := LoadLayout(g, root)
	if err != nil {
		return err
	}

	report, err := scaffold.New(scaffold.WithLogger(g.Logger)).Plan(l)
	for _, e := range report.Entries {
		verb := "exists"
		if e.Status == scaffold.StatusCreated {
			verb = "create"
		}
		_, _ = fmt.Fprintf(g.Stdout, "%s %s\n", verb, e.Path)
	}
	return err
}
