// Package config loads and writes the declarative output layout: a root, the
// artifact kinds directly under it, and dataset namespaces with their own kinds.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/outscaffold/internal/foundation/errors"
	"git.home.luguber.info/inful/outscaffold/internal/layout"
)

// DefaultRoot is the top-level directory all artifact namespaces live under.
const DefaultRoot = "outputs"

// Layout is the YAML representation of the output tree.
type Layout struct {
	Root       string      `yaml:"root"`
	Kinds      []string    `yaml:"kinds"`
	Namespaces []Namespace `yaml:"namespaces,omitempty"`
}

// Namespace is a dataset-specific subtree under the root.
type Namespace struct {
	Name  string   `yaml:"name"`
	Kinds []string `yaml:"kinds"`
}

// Default returns the built-in experiment output layout.
// whitebox exists only at the top level and logs only under CIFAR.
func Default() *Layout {
	return &Layout{
		Root:  DefaultRoot,
		Kinds: []string{"boosted", "heatmaps", "inits", "masks", "perturbations", "whitebox"},
		Namespaces: []Namespace{
			{Name: "OpenALPRBorder", Kinds: []string{"boosted", "heatmaps", "inits", "masks", "perturbations"}},
			{Name: "CIFAR", Kinds: []string{"boosted", "heatmaps", "inits", "logs", "masks", "perturbations"}},
		},
	}
}

// Expand returns the relative paths of the layout in creation order: the root,
// its kinds, then each namespace followed by that namespace's kinds.
func (c *Layout) Expand() []string {
	paths := []string{c.Root}
	for _, kind := range c.Kinds {
		paths = append(paths, c.Root+"/"+kind)
	}
	for _, ns := range c.Namespaces {
		nsRoot := c.Root + "/" + ns.Name
		paths = append(paths, nsRoot)
		for _, kind := range ns.Kinds {
			paths = append(paths, nsRoot+"/"+kind)
		}
	}
	return paths
}

// Build validates the configuration and produces the ordered layout.
func (c *Layout) Build() (*layout.Layout, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return layout.New(c.Root, c.Expand()...)
}

// Load reads a layout from a YAML file. Unknown fields are rejected and an
// empty root falls back to DefaultRoot.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		msg := "failed to read layout file"
		if os.IsNotExist(err) {
			msg = "layout file not found"
		}
		return nil, errors.ConfigError(msg).
			WithContext(errors.ContextFile, path).
			WithCause(err).
			Build()
	}

	var cfg Layout
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.ConfigError("failed to parse layout file").
			WithContext(errors.ContextFile, path).
			WithCause(err).
			Build()
	}
	if cfg.Root == "" {
		cfg.Root = DefaultRoot
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Init writes the default layout to path. An existing file is only replaced when force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.ConfigError("layout file already exists (use --force to overwrite)").
			WithContext(errors.ContextFile, path).
			Build()
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return errors.InternalError("failed to marshal default layout").WithCause(err).Build()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return errors.FileSystemError("failed to create layout file directory").
				WithPath(dir).
				WithCause(err).
				Build()
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.FileSystemError("failed to write layout file").
			WithPath(path).
			WithCause(err).
			Build()
	}
	return nil
}

// String renders the layout as YAML.
func (c *Layout) String() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("<invalid layout: %v>", err)
	}
	return string(data)
}
