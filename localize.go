package localize

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"strconv"
	"sync"
	"sync/atomic"
)

// snapshot is the immutable state of one completed load: the effective locale
// and the translation tree resolved for it.
type snapshot struct {
	locale Locale
	tree   Node
}

// Session is one translation session: a locale, the translation tree loaded
// for it, and an optional explicit locale override. Create it once at
// application startup, call Load, and share it across call sites.
//
// Readers (T, Tn, CurrentLocale) are safe to use concurrently with a load in
// progress: each load builds its tree off to the side and swaps a snapshot
// reference on completion, so readers observe either the previous or the new
// state, never a partially built one. When several loads overlap, the most
// recently started one wins.
type Session struct {
	fsys         fs.FS
	basePath     string
	fallback     string
	regionSuffix bool
	detect       func() (Locale, error)
	log          *slog.Logger

	state atomic.Pointer[snapshot]
	gen   atomic.Uint64

	mu       sync.Mutex // guards override and applied
	override *Locale
	applied  uint64
}

// New creates a session with the given options. A resource filesystem is
// required. The session starts with an empty translation tree; call Load to
// resolve the locale and bring in its resource.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		basePath: ".",
		fallback: DefaultFallback,
		detect:   systemLocale,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if s.fsys == nil {
		return nil, ErrNoResources
	}

	s.state.Store(&snapshot{tree: Node{}})

	return s, nil
}

// Load resolves the effective locale and loads its translation resource,
// replacing the session state. Failures degrade rather than break the
// session: an unloadable locale resource falls back to the fallback resource,
// and a fallback failure leaves an empty tree behind (reported as
// ErrLoadFailed) so subsequent lookups echo their keys.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	override := s.override
	s.mu.Unlock()

	return s.load(ctx, override)
}

// Refresh replaces the session's locale override and reloads. Pass nil to
// return to system locale detection.
func (s *Session) Refresh(ctx context.Context, override *Locale) error {
	s.mu.Lock()
	s.override = override
	s.mu.Unlock()

	return s.load(ctx, override)
}

func (s *Session) load(ctx context.Context, override *Locale) error {
	gen := s.gen.Add(1)

	var (
		tree    Node
		ok      bool
		loadErr error
	)

	locale, err := s.resolveLocale(override)
	if err != nil {
		s.log.DebugContext(ctx, "locale detection failed, loading fallback resource",
			slog.String("error", err.Error()),
		)
	} else {
		if tree, ok = s.loadResource(s.baseName(locale)); !ok {
			s.log.DebugContext(ctx, "locale resource unavailable, loading fallback resource",
				slog.String("resource", s.baseName(locale)),
				slog.String("locale", locale.String()),
			)
		}
	}

	if !ok {
		if tree, ok = s.loadResource(s.fallback); !ok {
			s.log.DebugContext(ctx, "fallback resource failed to load",
				slog.String("resource", s.fallback),
			)
			tree = Node{}
			loadErr = fmt.Errorf("%w: %s", ErrLoadFailed, s.fallback)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen < s.applied {
		s.log.DebugContext(ctx, "superseded load discarded",
			slog.String("locale", locale.String()),
		)
		return nil
	}
	s.applied = gen
	s.state.Store(&snapshot{locale: locale, tree: tree})

	return loadErr
}

// resolveLocale returns the override unchanged when present, otherwise the
// system locale.
func (s *Session) resolveLocale(override *Locale) (Locale, error) {
	if override != nil {
		return *override, nil
	}
	return s.detect()
}

// baseName composes the resource base name for a locale. The region suffix is
// applied only when region sensitivity is enabled and a region is present.
func (s *Session) baseName(locale Locale) string {
	if s.regionSuffix && locale.Region != "" {
		return locale.Language + "_" + locale.Region
	}
	return locale.Language
}

// T resolves a dotted key path to its translated string, interpolating the
// given parameters. A missing key resolves to the key path itself so
// untranslated text stays visible in the UI instead of going blank.
func (s *Session) T(key string, params ...M) string {
	snap := s.state.Load()

	value, ok := lookup(snap.tree, key)
	if !ok {
		s.log.Debug("translation not found",
			slog.String("key", key),
			slog.String("locale", snap.locale.String()),
		)
		return key
	}

	if len(params) == 0 {
		return value
	}
	return Interpolate(value, mergeParams(params))
}

// Tn resolves a pluralized key path for a numeric value. The final path
// segment names a plural family whose variants are carried as sibling leaves
// "name-<threshold>"; the variant with the largest threshold not exceeding n
// is selected, and n is bound to the single placeholder of its template. When
// no threshold qualifies, the empty-suffix variant "name-" is used.
func (s *Session) Tn(key string, n int) string {
	snap := s.state.Load()

	base := lastSegment(key)
	variant := selectVariant(resolveSubmap(snap.tree, key), base, n)
	variantPath := key[:len(key)-len(base)] + variant

	name := ""
	if template, ok := lookup(snap.tree, variantPath); ok {
		name = placeholderName(template)
	}

	return s.T(variantPath, M{name: strconv.Itoa(n)})
}

// CurrentLocale returns the locale of the active snapshot. Before the first
// Load, and after a load whose locale detection failed, it is the zero
// Locale.
func (s *Session) CurrentLocale() Locale {
	return s.state.Load().locale
}

func mergeParams(params []M) M {
	if len(params) == 1 {
		return params[0]
	}

	merged := make(M)
	for _, p := range params {
		maps.Copy(merged, p)
	}
	return merged
}
