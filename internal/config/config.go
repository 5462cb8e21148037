package config

import (
	"github.com/kvlevich/ched/internal/config/loader"
	"github.com/kvlevich/ched/internal/engine/buffer"
	"github.com/kvlevich/ched/internal/engine/history"
)

// Settings is the editor's resolved configuration.
type Settings struct {
	BufferBlockSize   int
	TimelineBlockSize int
	TracePath         string
}

// Defaults returns the built-in settings, used when no file, environment
// variable, or flag overrides them.
func Defaults() Settings {
	return Settings{
		BufferBlockSize:   buffer.DefaultBlockSize,
		TimelineBlockSize: history.DefaultBlockSize,
	}
}

// Load resolves settings by layering, lowest priority first: built-in
// defaults, an optional TOML file at path (ignored if path is empty or the
// file does not exist), and CHED_-prefixed environment variables.
func Load(path string) (Settings, error) {
	s := Defaults()

	if path != "" {
		fc, err := loader.NewTOMLLoader(path).LoadWithIncludes(path, 8)
		if err != nil {
			return s, err
		}
		if fc.Buffer.BlockSize != 0 {
			s.BufferBlockSize = fc.Buffer.BlockSize
		}
		if fc.Timeline.BlockSize != 0 {
			s.TimelineBlockSize = fc.Timeline.BlockSize
		}
		if fc.Trace.Path != "" {
			s.TracePath = fc.Trace.Path
		}
	}

	envConfig, err := loader.NewEnvLoader("CHED_").Load()
	if err != nil {
		return s, err
	}
	if v, ok := intAt(envConfig, "buffer", "blockSize"); ok {
		s.BufferBlockSize = v
	}
	if v, ok := intAt(envConfig, "timeline", "blockSize"); ok {
		s.TimelineBlockSize = v
	}
	if v, ok := stringAt(envConfig, "trace", "path"); ok {
		s.TracePath = v
	}

	return s, nil
}

func intAt(m map[string]any, section, key string) (int, bool) {
	sub, ok := m[section].(map[string]any)
	if !ok {
		return 0, false
	}
	switch v := sub[key].(type) {
	case int64:
		return int(v), true
	case int:
		return v, true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func stringAt(m map[string]any, section, key string) (string, bool) {
	sub, ok := m[section].(map[string]any)
	if !ok {
		return "", false
	}
	v, ok := sub[key].(string)
	return v, ok
}
