package config

import (
	"fmt"
	"time"
)

const currentSchemaVersion = 1

// fileSchema is the on-disk layout written by Write. Durations are
// kept as strings so the file stays readable ("30s" rather than nanoseconds).
type fileSchema struct {
	Version   int             `toml:"version"`
	Wikidata  wikidataSchema  `toml:"wikidata"`
	Wikipedia wikipediaSchema `toml:"wikipedia"`
	HTTP      httpSchema      `toml:"http"`
	Prompts   promptsSchema   `toml:"prompts"`
	Log       logSchema       `toml:"log"`
}

type wikidataSchema struct {
	Endpoint  string  `toml:"endpoint"`
	Language  string  `toml:"language"`
	RateLimit float64 `toml:"rate_limit"`
}

type wikipediaSchema struct {
	Endpoint  string  `toml:"endpoint"`
	Language  string  `toml:"language"`
	RateLimit float64 `toml:"rate_limit"`
}

type httpSchema struct {
	UserAgent string `toml:"user_agent"`
	Timeout   string `toml:"timeout"`
}

type promptsSchema struct {
	Path string `toml:"path"`
	Name string `toml:"name"`
}

type logSchema struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported config schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func toSchema(cfg Config) fileSchema {
	return fileSchema{
		Version: currentSchemaVersion,
		Wikidata: wikidataSchema{
			Endpoint:  cfg.Wikidata.Endpoint,
			Language:  cfg.Wikidata.Language,
			RateLimit: cfg.Wikidata.RateLimit,
		},
		Wikipedia: wikipediaSchema{
			Endpoint:  cfg.Wikipedia.Endpoint,
			Language:  cfg.Wikipedia.Language,
			RateLimit: cfg.Wikipedia.RateLimit,
		},
		HTTP: httpSchema{
			UserAgent: cfg.HTTP.UserAgent,
			Timeout:   formatDuration(cfg.HTTP.Timeout),
		},
		Prompts: promptsSchema{
			Path: cfg.Prompts.Path,
			Name: cfg.Prompts.Name,
		},
		Log: logSchema{
			Level:  cfg.Log.Level,
			Format: cfg.Log.Format,
		},
	}
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	return d.String()
}
