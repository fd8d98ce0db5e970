package layout

import (
	"path"
	"strings"

	"git.home.luguber.info/inful/outscaffold/internal/foundation/errors"
)

// Layout is an ordered sequence of relative directory paths under Root.
type Layout struct {
	root  string
	paths []string
}

// New validates root and paths and returns a Layout. Paths keep their order.
func New(root string, paths ...string) (*Layout, error) {
	if err := ValidateRelative(root); err != nil {
		return nil, err
	}
	for _, p := range paths {
		if err := ValidateRelative(p); err != nil {
			return nil, err
		}
		if !Within(root, p) {
			return nil, errors.ValidationError("path is outside the layout root").
				WithPath(p).
				WithContext("root", root).
				Build()
		}
	}
	return &Layout{root: root, paths: append([]string(nil), paths...)}, nil
}

// Root returns the top-level directory every path lives under.
func (l *Layout) Root() string { return l.root }

// Paths returns a copy of the declared paths in order.
func (l *Layout) Paths() []string { return append([]string(nil), l.paths...) }

// Len returns the number of declared paths.
func (l *Layout) Len() int { return len(l.paths) }

// Within reports whether p equals root or is nested beneath it.
func Within(root, p string) bool {
	return p == root || strings.HasPrefix(p, root+"/")
}

// ValidateRelative checks that p is a clean, relative, slash-separated path that
// does not climb out of the working directory.
func ValidateRelative(p string) error {
	switch {
	case strings.TrimSpace(p) == "":
		return errors.ValidationError("path must not be empty").Build()
	case strings.Contains(p, `\`):
		return errors.ValidationError("path must use forward slashes").WithPath(p).Build()
	case path.IsAbs(p):
		return errors.ValidationError("path must be relative").WithPath(p).Build()
	case path.Clean(p) != p || p == ".":
		return errors.ValidationError("path must be clean").WithPath(p).Build()
	case p == ".." || strings.HasPrefix(p, "../"):
		return errors.ValidationError("path must not escape the working directory").WithPath(p).Build()
	}
	return nil
}

// Segments returns the cumulative prefixes of p, outermost first:
// "a/b/c" yields "a", "a/b", "a/b/c".
func Segments(p string) []string {
	parts := strings.Split(p, "/")
	out := make([]string, 0, len(parts))
	for i := range parts {
		out = append(out, strings.Join(parts[:i+1], "/"))
	}
	return out
}
