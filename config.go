package localize

// Config holds session configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	BasePath     string `env:"LOCALIZE_BASE_PATH" envDefault:"."`
	Fallback     string `env:"LOCALIZE_FALLBACK" envDefault:"fallback"`
	Locale       string `env:"LOCALIZE_LOCALE"`
	RegionSuffix bool   `env:"LOCALIZE_REGION_SUFFIX" envDefault:"false"`
}

// WithConfig applies a Config: base path, fallback resource name, region
// sensitivity, and an optional explicit locale override given in resource
// form ("en" or "en_US").
func WithConfig(cfg Config) Option {
	return func(s *Session) error {
		if cfg.BasePath != "" {
			s.basePath = cfg.BasePath
		}
		if cfg.Fallback != "" {
			s.fallback = cfg.Fallback
		}
		s.regionSuffix = cfg.RegionSuffix
		if cfg.Locale != "" {
			loc, err := ParseLocale(cfg.Locale)
			if err != nil {
				return err
			}
			s.override = &loc
		}
		return nil
	}
}
