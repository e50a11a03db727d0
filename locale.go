package localize

import (
	"os"
	"strings"
)

// Locale identifies a language preference as a language code with an optional
// region code. It is a plain value: two locales are equal when their fields
// are equal. The zero value means "undefined" and is what a session reports
// when locale detection failed entirely.
type Locale struct {
	Language string
	Region   string
}

// String renders the locale in resource-name form: "en" or "en_US".
func (l Locale) String() string {
	if l.Region == "" {
		return l.Language
	}
	return l.Language + "_" + l.Region
}

// IsZero reports whether the locale carries no language code.
func (l Locale) IsZero() bool {
	return l.Language == ""
}

// localeEnvVars is the POSIX lookup order for the user's configured locale.
var localeEnvVars = []string{"LC_ALL", "LC_MESSAGES", "LANG", "LANGUAGE"}

// systemLocale queries the operating system for the current locale string.
// It returns ErrLocaleDetection when no variable is set or none of them holds
// a usable value.
func systemLocale() (Locale, error) {
	for _, name := range localeEnvVars {
		if raw := os.Getenv(name); raw != "" {
			if loc, err := ParseLocale(raw); err == nil {
				return loc, nil
			}
		}
	}
	return Locale{}, ErrLocaleDetection
}

// ParseLocale parses a system locale string of the form "language_region" or
// "language_script_region" (e.g. "en_US", "zh_Hans_CN"). Charset suffixes and
// modifiers ("uk_UA.UTF-8@euro") are stripped first. With three components
// the middle one is a script code and is discarded; the region is the last
// component. The special values "C" and "POSIX" carry no language and are
// rejected.
func ParseLocale(s string) (Locale, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, '@'); i >= 0 {
		s = s[:i]
	}
	if s == "" || s == "C" || s == "POSIX" {
		return Locale{}, ErrLocaleDetection
	}

	parts := strings.Split(s, "_")
	loc := Locale{Language: parts[0]}
	switch len(parts) {
	case 1:
	case 2:
		loc.Region = parts[1]
	default:
		loc.Region = parts[2]
	}
	if loc.Language == "" {
		return Locale{}, ErrLocaleDetection
	}
	return loc, nil
}
