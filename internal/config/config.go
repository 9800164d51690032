// Package config loads revmark settings from defaults, an optional
// TOML file, and REVMARK_-prefixed environment variables, in that
// order of increasing precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all tunable settings.
type Config struct {
	Output struct {
		Format         string `koanf:"format"`          // text, json, markdown
		Color          bool   `koanf:"color"`           // ANSI styling in text output
		HighlightStyle string `koanf:"highlight_style"` // chroma style name
	} `koanf:"output"`

	Issues struct {
		MinSeverity string `koanf:"min_severity"` // lowest severity shown by default
	} `koanf:"issues"`
}

var defaults = map[string]interface{}{
	"output.format":          "text",
	"output.color":           true,
	"output.highlight_style": "dracula",
	"issues.min_severity":    "info",
}

// Load reads configuration. An explicit path that fails to load is an
// error; default locations are tried best-effort.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	} else {
		for _, path := range []string{"./revmark.toml", "$HOME/.revmark.toml"} {
			path = os.ExpandEnv(path)
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err == nil {
					break
				}
			}
		}
	}

	if err := k.Load(env.Provider("REVMARK_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "REVMARK_")), "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return &cfg, nil
}
