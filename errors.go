package localize

import "errors"

var (
	// ErrNoResources is returned by New when no resource filesystem was configured.
	ErrNoResources = errors.New("localize: resource filesystem is not configured")

	// ErrLocaleDetection indicates the system locale query failed or returned
	// an unusable value.
	ErrLocaleDetection = errors.New("localize: unable to detect system locale")

	// ErrNilLocaleQuery is returned when a nil system locale query is configured.
	ErrNilLocaleQuery = errors.New("localize: system locale query cannot be nil")

	// ErrLoadFailed indicates that neither the locale resource nor the fallback
	// resource could be loaded in any known format.
	ErrLoadFailed = errors.New("localize: no translation resource could be loaded")
)
