package localize

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"path"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultFallback is the base name of the locale-independent fallback
// resource loaded when locale-specific loading fails entirely.
const DefaultFallback = "fallback"

// format pairs a file extension with its decoder.
type format struct {
	ext       string
	unmarshal func(data []byte, v any) error
}

// formats is the fixed trial order for translation resources. Each base name
// is tried against every entry in sequence until one decodes; a missing file
// and a file that fails to parse are treated the same way.
var formats = []format{
	{ext: ".json", unmarshal: json.Unmarshal},
	{ext: ".yaml", unmarshal: yaml.Unmarshal},
	{ext: ".yml", unmarshal: yaml.Unmarshal},
	{ext: ".toml", unmarshal: toml.Unmarshal},
}

// loadResource tries every format for the given base name and returns the
// tree of the first document that decodes.
func (s *Session) loadResource(base string) (Node, bool) {
	for _, f := range formats {
		name := path.Join(s.basePath, base+f.ext)

		data, err := fs.ReadFile(s.fsys, name)
		if err != nil {
			continue
		}

		var doc map[string]any
		if err := f.unmarshal(data, &doc); err != nil {
			s.log.Debug("translation resource failed to decode, trying next format",
				slog.String("resource", name),
				slog.String("error", err.Error()),
			)
			continue
		}

		return toNode(doc), true
	}
	return nil, false
}
