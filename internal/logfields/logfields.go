package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyRoot       = "root"
	KeyLayoutFile = "layout_file"
	KeyCount      = "count"
	KeyCreated    = "created"
	KeyExisting   = "existing"
	KeyStatus     = "status"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Root(r string) slog.Attr         { return slog.String(KeyRoot, r) }
func LayoutFile(f string) slog.Attr   { return slog.String(KeyLayoutFile, f) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Created(n int) slog.Attr         { return slog.Int(KeyCreated, n) }
func Existing(n int) slog.Attr        { return slog.Int(KeyExisting, n) }
func Status(s string) slog.Attr       { return slog.String(KeyStatus, s) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
