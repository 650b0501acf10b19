package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = "blc"
	envPrefix  = "BLC"
	dotEnvFile = ".env"

	langPlaceholder = "{lang}"
)

type Config struct {
	Version   int             `mapstructure:"version"`
	Wikidata  WikidataConfig  `mapstructure:"wikidata"`
	Wikipedia WikipediaConfig `mapstructure:"wikipedia"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Prompts   PromptsConfig   `mapstructure:"prompts"`
	Log       LogConfig       `mapstructure:"log"`

	// Source is the config file that was read, empty when only defaults
	// and environment were used.
	Source string `mapstructure:"-"`
}

type WikidataConfig struct {
	Endpoint  string  `mapstructure:"endpoint"`
	Language  string  `mapstructure:"language"`
	RateLimit float64 `mapstructure:"rate_limit"`
}

type WikipediaConfig struct {
	// Endpoint may contain "{lang}", replaced by Language.
	Endpoint  string  `mapstructure:"endpoint"`
	Language  string  `mapstructure:"language"`
	RateLimit float64 `mapstructure:"rate_limit"`
}

// APIURL returns the endpoint with the language substituted.
func (c WikipediaConfig) APIURL() string {
	return strings.ReplaceAll(c.Endpoint, langPlaceholder, c.Language)
}

type HTTPConfig struct {
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type PromptsConfig struct {
	Path string `mapstructure:"path"`
	Name string `mapstructure:"name"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Version: currentSchemaVersion,
		Wikidata: WikidataConfig{
			Endpoint:  "https://query.wikidata.org/sparql",
			Language:  "en",
			RateLimit: 1,
		},
		Wikipedia: WikipediaConfig{
			Endpoint:  "https://{lang}.wikipedia.org/w/api.php",
			Language:  "en",
			RateLimit: 2,
		},
		HTTP: HTTPConfig{
			UserAgent: "Bundesliga-Context-Retrieval",
			Timeout:   30 * time.Second,
		},
		Prompts: PromptsConfig{
			Path: "prompts.yaml",
			Name: "chatbot_prompt",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// DefaultPath is where config init writes when no --config is given.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", configDir, configName+"."+configType), nil
}

// Load resolves configuration from, in increasing precedence: built-in
// defaults, the config file, a .env file in the working directory and BLC_*
// environment variables. An explicit path that does not exist yet is not an
// error; defaults are used.
func Load(cfg *viper.Viper, path string) (*Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}

	setDefaults(cfg, Defaults())
	cfg.SetConfigType(configType)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	read := true
	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			read = false
		}
		cfg.SetConfigFile(path)
	} else {
		cfg.SetConfigName(configName)
		if defaultPath, err := DefaultPath(); err == nil {
			cfg.AddConfigPath(filepath.Dir(defaultPath))
		}
		cfg.AddConfigPath(".")
	}

	if read {
		if err := cfg.ReadInConfig(); err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var out Config
	if err := cfg.Unmarshal(&out); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	out.Source = cfg.ConfigFileUsed()
	if !read {
		out.Source = ""
	}

	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &out, nil
}

func (c Config) Validate() error {
	if err := (fileSchema{Version: c.Version}).validateVersion(); err != nil {
		return err
	}

	var errs []error
	if err := validateEndpoint("wikidata.endpoint", c.Wikidata.Endpoint); err != nil {
		errs = append(errs, err)
	}
	if err := validateEndpoint("wikipedia.endpoint", c.Wikipedia.APIURL()); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(c.Wikidata.Language) == "" {
		errs = append(errs, errors.New("wikidata.language is required"))
	}
	if strings.TrimSpace(c.Wikipedia.Language) == "" {
		errs = append(errs, errors.New("wikipedia.language is required"))
	}
	if c.Wikidata.RateLimit < 0 || c.Wikipedia.RateLimit < 0 {
		errs = append(errs, errors.New("rate_limit must not be negative"))
	}
	if c.HTTP.Timeout < 0 {
		errs = append(errs, errors.New("http.timeout must not be negative"))
	}
	if strings.TrimSpace(c.Prompts.Path) == "" {
		errs = append(errs, errors.New("prompts.path is required"))
	}
	if strings.TrimSpace(c.Prompts.Name) == "" {
		errs = append(errs, errors.New("prompts.name is required"))
	}

	return errors.Join(errs...)
}

func validateEndpoint(key, raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s: unsupported scheme %q", key, parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s: host is required", key)
	}

	return nil
}

func setDefaults(cfg *viper.Viper, d Config) {
	cfg.SetDefault("version", d.Version)
	cfg.SetDefault("wikidata.endpoint", d.Wikidata.Endpoint)
	cfg.SetDefault("wikidata.language", d.Wikidata.Language)
	cfg.SetDefault("wikidata.rate_limit", d.Wikidata.RateLimit)
	cfg.SetDefault("wikipedia.endpoint", d.Wikipedia.Endpoint)
	cfg.SetDefault("wikipedia.language", d.Wikipedia.Language)
	cfg.SetDefault("wikipedia.rate_limit", d.Wikipedia.RateLimit)
	cfg.SetDefault("http.user_agent", d.HTTP.UserAgent)
	cfg.SetDefault("http.timeout", d.HTTP.Timeout)
	cfg.SetDefault("prompts.path", d.Prompts.Path)
	cfg.SetDefault("prompts.name", d.Prompts.Name)
	cfg.SetDefault("log.level", d.Log.Level)
	cfg.SetDefault("log.format", d.Log.Format)
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	return nil
}
