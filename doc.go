// Package localize resolves human-readable, locale-specific text for an
// application from hierarchical translation resources.
//
// The package covers four concerns: locale determination with fallback,
// dotted key-path lookup over nested translation trees, plural-variant
// selection by numeric threshold, and named-parameter interpolation. A
// Session owns one locale and one loaded tree; it is created at startup,
// refreshed wholesale on locale change, and safe for concurrent readers.
//
// # Basic Usage
//
// Load resources from an embedded filesystem and translate:
//
//	//go:embed locales
//	var locales embed.FS
//
//	session, err := localize.New(
//	    localize.WithResources(locales),
//	    localize.WithBasePath("locales"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := session.Load(ctx); err != nil {
//	    log.Printf("translations degraded: %v", err)
//	}
//
//	msg := session.T("greeting.message", localize.M{"name": "Al"})
//	// "Hello, Al!"
//
// # Resource Resolution
//
// The effective locale comes from an explicit override when one is set,
// otherwise from the operating system's locale variables. Its resource base
// name is the language code, optionally suffixed with "_<region>" when
// WithRegionSuffix is enabled. Each base name is tried against JSON, YAML,
// and TOML decoders in fixed order; if every format fails, the fallback
// resource is loaded instead, and if that fails too the session degrades to
// an empty tree whose lookups echo their key paths.
//
// Translation resources are arbitrarily nested mappings addressed with
// dotted key paths:
//
//	{
//	    "greeting": {"message": "Hello, {name}!"},
//	    "items": {
//	        "count-0": "{n} item",
//	        "count-5": "{n} items"
//	    }
//	}
//
// A missing key never fails; T returns the key path verbatim so gaps stay
// visible in the UI.
//
// # Pluralization
//
// Plural variants are sibling leaves named "<base>-<threshold>". Tn selects
// the variant with the largest threshold not exceeding the value and binds
// the value to the template's placeholder:
//
//	session.Tn("items.count", 3) // "3 item"
//	session.Tn("items.count", 7) // "7 items"
//
// A variant with an empty suffix ("count-") acts as the catch-all when no
// threshold qualifies.
//
// # Host Integration
//
// Register the session process-wide with SetActive, or carry it through a
// context with NewContext; FromContext resolves either. Middleware wires the
// session into net/http request contexts:
//
//	localize.SetActive(session)
//	handler := localize.Middleware(session)(mux)
//
//	func greet(w http.ResponseWriter, r *http.Request) {
//	    t := localize.FromContext(r.Context())
//	    fmt.Fprint(w, t.T("greeting.message", localize.M{"name": "Al"}))
//	}
//
// Diagnostics (missing keys, format fallbacks, detection failures) are
// emitted at debug level through the logger set with WithLogger and are
// discarded by default.
package localize
