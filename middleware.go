package localize

import (
	"io/fs"
	"net/http"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Middleware returns net/http middleware that stores the session in every
// request context, so handlers can retrieve it with FromContext.
func Middleware(s *Session) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), s)))
		})
	}
}

// AvailableLocales lists the locales that have a resource file under dir in
// any known format, sorted by resource name. The fallback resource does not
// describe a locale and is excluded.
func AvailableLocales(fsys fs.FS, dir string) []Locale {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var locales []Locale
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := path.Ext(entry.Name())
		if !knownExtension(ext) {
			continue
		}

		base := strings.TrimSuffix(entry.Name(), ext)
		if base == DefaultFallback || seen[base] {
			continue
		}

		loc, err := ParseLocale(base)
		if err != nil {
			continue
		}
		seen[base] = true
		locales = append(locales, loc)
	}

	slices.SortFunc(locales, func(a, b Locale) int {
		return strings.Compare(a.String(), b.String())
	})

	return locales
}

// MatchAcceptLanguage picks the best available locale for an Accept-Language
// header. An empty or unmatched header yields the first available locale.
// The second return is false only when there are no available locales.
func MatchAcceptLanguage(header string, available []Locale) (Locale, bool) {
	if len(available) == 0 {
		return Locale{}, false
	}

	tags := make([]language.Tag, len(available))
	for i, loc := range available {
		tags[i] = language.Make(strings.ReplaceAll(loc.String(), "_", "-"))
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return available[0], true
	}

	_, index, conf := language.NewMatcher(tags).Match(desired...)
	if conf == language.No {
		return available[0], true
	}
	return available[index], true
}

func knownExtension(ext string) bool {
	for _, f := range formats {
		if f.ext == ext {
			return true
		}
	}
	return false
}
