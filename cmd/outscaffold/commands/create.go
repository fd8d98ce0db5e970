package commands

import (
	"git.home.luguber.info/inful/outscaffold/internal/foundation/errors"
	"git.home.luguber.info/inful/outscaffold/internal/logfields"
	"git.home.luguber.info/inful/outscaffold/internal/metrics"
	"git.home.luguber.info/inful/outscaffold/internal/scaffold"
)

// CreateCmd implements the default 'create' command.
type CreateCmd struct {
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics for this run to FILE (textfile collector format)"`
}

func (c *CreateCmd) Run(g *Global, root *CLI) error {
	l, err := LoadLayout(g, root)
	if err != nil {
		return err
	}

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var prom *metrics.PrometheusRecorder
	if c.MetricsFile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		recorder = prom
	}

	s := scaffold.New(scaffold.WithRecorder(recorder), scaffold.WithLogger(g.Logger))
	_, runErr := s.Apply(l)

	if prom != nil {
		if err := prom.WriteTextfile(c.MetricsFile); err != nil {
			if runErr != nil {
				g.Logger.Warn("Failed to write metrics file", logfields.Path(c.MetricsFile), logfields.Error(err))
				return runErr
			}
			return errors.FileSystemError("failed to write metrics file").
				WithPath(c.MetricsFile).
				WithCause(err).
				Build()
		}
	}
	return runErr
}
