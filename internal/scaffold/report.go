package scaffold

import "git.home.luguber.info/inful/outscaffold/internal/metrics"

// Status describes what happened (or would happen) to a declared path.
type Status string

const (
	StatusCreated Status = "created"
	StatusExists  Status = "exists"
)

func (s Status) result() metrics.DirectoryResult {
	if s == StatusCreated {
		return metrics.DirectoryCreated
	}
	return metrics.DirectoryExisting
}

// Entry is the outcome for one declared path.
type Entry struct {
	Path   string
	Status Status
}

// Report lists processed paths in declaration order.
type Report struct {
	Entries []Entry
}

// Created returns the paths that were (or would be) created.
func (r *Report) Created() []string { return r.filter(StatusCreated) }

// Existing returns the paths that already existed.
func (r *Report) Existing() []string { return r.filter(StatusExists) }

func (r *Report) filter(status Status) []string {
	var out []string
	for _, e := range r.Entries {
		if e.Status == status {
			out = append(out, e.Path)
		}
	}
	return out
}
