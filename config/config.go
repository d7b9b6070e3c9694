package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "config/config.yaml"

type Config struct {
	App      AppConfig      `yaml:"app"`
	Provider ProviderConfig `yaml:"provider"`
	Stub     StubConfig     `yaml:"stub"`
	Log      LogConfig      `yaml:"log"`
	Sentry   SentryConfig   `yaml:"sentry"`
}

type AppConfig struct {
	Name    string `yaml:"name" envconfig:"NAME"`
	Version string `yaml:"version" envconfig:"VERSION"`
	Env     string `yaml:"env" envconfig:"ENV"`
	// Region is the fixed forecast region shown in the title.
	Region string `yaml:"region" envconfig:"REGION"`
}

type ProviderConfig struct {
	BaseURL string `yaml:"base_url" envconfig:"BASE_URL"`
	// Timeout bounds each provider request; zero means no timeout.
	Timeout time.Duration `yaml:"timeout" envconfig:"TIMEOUT"`
}

type StubConfig struct {
	Port string `yaml:"port" envconfig:"PORT"`
	// FixturePath is a YAML fixture; empty serves the built-in one.
	FixturePath  string        `yaml:"fixture_path" envconfig:"FIXTURE_PATH"`
	ReadTimeout  time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
}

type LogConfig struct {
	Level string `yaml:"level" envconfig:"LEVEL"`
	File  string `yaml:"file" envconfig:"FILE"`
}

type SentryConfig struct {
	DSN string `yaml:"dsn" envconfig:"DSN"`
}

// ConfigProvider loads and validates a Config.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// Defaults returns the configuration used when neither file nor environment says otherwise.
func Defaults() *Config {
	return &Config{
		App: AppConfig{
			Name:    "precip-viewer",
			Version: "1.0.0",
			Env:     "development",
			Region:  "Kosovo",
		},
		Provider: ProviderConfig{
			BaseURL: "http://localhost:8000",
		},
		Stub: StubConfig{
			Port:         "8000",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
			File:  "precip-viewer.log",
		},
	}
}

// FileConfigProvider layers defaults, an optional YAML file, a .env file and the process
// environment, later layers winning.
type FileConfigProvider struct {
	path    string
	envFile string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path, envFile: ".env"}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := Defaults()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(p.envFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load %s: %w", p.envFile, err)
	}

	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return cnf, nil
}

// loadFromFile overlays the YAML file onto cnf. A missing file is not an error.
func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config %s: %w", p.path, err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(config *Config) error {
	if config.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}

	if config.Provider.BaseURL == "" {
		return fmt.Errorf("provider.base_url is required")
	}
	u, err := url.Parse(config.Provider.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("provider.base_url must be an absolute http(s) URL")
	}
	if config.Provider.Timeout < 0 {
		return fmt.Errorf("provider.timeout must not be negative")
	}

	if _, err := zapcore.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("log.level is invalid: %q", config.Log.Level)
	}

	return nil
}

// NewConfig loads the YAML file at path, DefaultPath when empty, under the environment.
func NewConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	return NewConfigWithProvider(NewFileConfigProvider(path))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cnf, nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production" || c.App.Env == "prod"
}
