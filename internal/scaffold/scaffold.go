package scaffold

import (
	stderrors "errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"git.home.luguber.info/inful/outscaffold/internal/foundation/errors"
	"git.home.luguber.info/inful/outscaffold/internal/layout"
	"git.home.luguber.info/inful/outscaffold/internal/logfields"
	"git.home.luguber.info/inful/outscaffold/internal/metrics"
)

// DefaultMode is the permission used for created directories (before umask).
const DefaultMode fs.FileMode = 0o755

// Scaffolder creates the directories of a layout beneath a base directory.
type Scaffolder struct {
	baseDir  string
	mode     fs.FileMode
	recorder metrics.Recorder
	logger   *slog.Logger
	mkdir    func(string, fs.FileMode) error
}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

// WithBaseDir resolves layout paths against dir instead of the working directory.
func WithBaseDir(dir string) Option {
	return func(s *Scaffolder) { s.baseDir = dir }
}

// WithMode sets the permission bits for created directories.
func WithMode(mode fs.FileMode) Option {
	return func(s *Scaffolder) { s.mode = mode }
}

// WithRecorder injects a metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(s *Scaffolder) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithLogger sets the logger; slog.Default() is used otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scaffolder) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a Scaffolder working relative to the current directory.
func New(opts ...Option) *Scaffolder {
	s := &Scaffolder{
		mode:     DefaultMode,
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
		mkdir:    os.Mkdir,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Apply creates every path of l in order, including missing parents. The
// returned report covers the paths processed before any failure; the error, if
// any, names the first path that could not be created.
func (s *Scaffolder) Apply(l *layout.Layout) (*Report, error) {
	start := time.Now()
	report, err := s.run(l, false)
	elapsed := time.Since(start)

	s.recorder.ObserveRunDuration(elapsed)
	if err != nil {
		s.recorder.IncRunOutcome(metrics.RunFailed)
		return report, err
	}
	s.recorder.IncRunOutcome(metrics.RunSuccess)

	s.logger.Info("Output layout ready",
		logfields.Root(l.Root()),
		logfields.Count(len(report.Entries)),
		logfields.Created(len(report.Created())),
		logfields.Existing(len(report.Existing())),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000))
	return report, nil
}

// Plan reports what Apply would do without touching the filesystem. Conflicts
// with existing non-directories are reported the same way Apply reports them.
func (s *Scaffolder) Plan(l *layout.Layout) (*Report, error) {
	return s.run(l, true)
}

func (s *Scaffolder) run(l *layout.Layout, dryRun bool) (*Report, error) {
	report := &Report{}
	for _, p := range l.Paths() {
		status, err := s.ensure(p, dryRun)
		if err != nil {
			if !dryRun {
				s.recorder.IncDirectory(metrics.DirectoryFailed)
			}
			s.logger.Debug("Directory failed", logfields.Path(p), logfields.Error(err))
			return report, err
		}
		if !dryRun {
			s.recorder.IncDirectory(status.result())
		}
		s.logger.Debug("Directory processed", logfields.Path(p), logfields.Status(string(status)))
		report.Entries = append(report.Entries, Entry{Path: p, Status: status})
	}
	return report, nil
}

// ensure walks the segments of declared outermost first, creating the missing ones.
func (s *Scaffolder) ensure(declared string, dryRun bool) (Status, error) {
	status := StatusExists
	for _, seg := range layout.Segments(declared) {
		full := s.resolve(seg)

		info, err := os.Stat(full)
		switch {
		case err == nil:
			if !info.IsDir() {
				return "", invalidPath(declared, seg, nil)
			}
			continue
		case !stderrors.Is(err, fs.ErrNotExist):
			return "", classify(declared, seg, err)
		}

		if dryRun {
			// Everything below a missing segment is missing too.
			return StatusCreated, nil
		}
		if err := s.mkdir(full, s.mode); err != nil {
			if !stderrors.Is(err, fs.ErrExist) {
				return "", classify(declared, seg, err)
			}
			// Lost a race with another creator; fine as long as it is a directory.
			info, statErr := os.Stat(full)
			if statErr != nil {
				return "", classify(declared, seg, statErr)
			}
			if !info.IsDir() {
				return "", invalidPath(declared, seg, err)
			}
			continue
		}
		status = StatusCreated
	}
	return status, nil
}

func (s *Scaffolder) resolve(rel string) string {
	return filepath.Join(s.baseDir, filepath.FromSlash(rel))
}

func classify(declared, seg string, err error) error {
	switch {
	case stderrors.Is(err, fs.ErrPermission):
		return errors.PermissionError("permission denied creating directory").
			WithPath(declared).
			WithCause(err).
			Build()
	case stderrors.Is(err, syscall.ENOTDIR):
		return invalidPath(declared, seg, err)
	default:
		return errors.FileSystemError("failed to create directory").
			WithPath(declared).
			WithCause(err).
			Build()
	}
}

func invalidPath(declared, seg string, cause error) error {
	return errors.InvalidPathError("path component exists and is not a directory").
		WithPath(declared).
		WithContext(errors.ContextConflict, seg).
		WithCause(cause).
		Build()
}
