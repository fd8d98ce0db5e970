package config

import (
	"strings"

	"git.home.luguber.info/inful/outscaffold/internal/foundation/errors"
	"git.home.luguber.info/inful/outscaffold/internal/layout"
)

// Validate checks the root, every kind and every namespace name.
func (c *Layout) Validate() error {
	if err := layout.ValidateRelative(c.Root); err != nil {
		return err
	}
	if err := validateKinds(c.Root, c.Kinds); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(c.Namespaces))
	for _, ns := range c.Namespaces {
		if err := validateSegment("namespace", c.Root, ns.Name); err != nil {
			return err
		}
		if _, dup := seen[ns.Name]; dup {
			return errors.ValidationError("duplicate namespace").
				WithPath(c.Root + "/" + ns.Name).
				Build()
		}
		seen[ns.Name] = struct{}{}
		if err := validateKinds(c.Root+"/"+ns.Name, ns.Kinds); err != nil {
			return err
		}
	}
	return nil
}

func validateKinds(parent string, kinds []string) error {
	for _, kind := range kinds {
		if err := validateSegment("artifact kind", parent, kind); err != nil {
			return err
		}
	}
	return nil
}

// validateSegment requires name to be exactly one path component.
func validateSegment(what, parent, name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return errors.ValidationError(what + " name must not be empty").WithPath(parent).Build()
	case name == "." || name == "..":
		return errors.ValidationError(what + " name must not be a relative reference").WithPath(parent + "/" + name).Build()
	case strings.ContainsAny(name, `/\`):
		return errors.ValidationError(what + " name must be a single path segment").WithPath(parent + "/" + name).Build()
	}
	return nil
}
