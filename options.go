package localize

import (
	"io/fs"
	"log/slog"
)

// Option configures a Session during construction.
type Option func(*Session) error

// WithResources sets the filesystem holding translation resources.
//
// Example:
//
//	//go:embed locales
//	var locales embed.FS
//
//	session, err := localize.New(
//	    localize.WithResources(locales),
//	    localize.WithBasePath("locales"),
//	)
func WithResources(fsys fs.FS) Option {
	return func(s *Session) error {
		if fsys == nil {
			return ErrNoResources
		}
		s.fsys = fsys
		return nil
	}
}

// WithBasePath sets the directory within the resource filesystem under which
// resource files are resolved. Defaults to the filesystem root.
func WithBasePath(dir string) Option {
	return func(s *Session) error {
		if dir != "" {
			s.basePath = dir
		}
		return nil
	}
}

// WithFallback sets the base name of the locale-independent fallback
// resource. Defaults to DefaultFallback.
func WithFallback(name string) Option {
	return func(s *Session) error {
		if name != "" {
			s.fallback = name
		}
		return nil
	}
}

// WithRegionSuffix makes resource names region-sensitive: a locale carrying a
// region loads "<language>_<region>" instead of just "<language>".
func WithRegionSuffix() Option {
	return func(s *Session) error {
		s.regionSuffix = true
		return nil
	}
}

// WithLocale sets an explicit locale override, skipping system detection.
// Refresh replaces it at runtime.
func WithLocale(locale Locale) Option {
	return func(s *Session) error {
		s.override = &locale
		return nil
	}
}

// WithSystemLocale replaces the system locale query. Useful in tests and on
// hosts that have their own notion of the device locale.
func WithSystemLocale(detect func() (Locale, error)) Option {
	return func(s *Session) error {
		if detect == nil {
			return ErrNilLocaleQuery
		}
		s.detect = detect
		return nil
	}
}

// WithLogger sets the diagnostics logger. All diagnostics are emitted at
// debug level only; the default logger discards everything, keeping
// production silent.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) error {
		if l != nil {
			s.log = l
		}
		return nil
	}
}
