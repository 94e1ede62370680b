package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config carries the few knobs the client exposes. Defaults match the values
// the mobile app compiles in; host applications may override them through a
// config file or the environment.
type Config struct {
	BaseURL   string        `yaml:"base_url" env:"MEDICITAS_BASE_URL" env-default:"http://10.2.232.70:8000/api"`
	Timeout   time.Duration `yaml:"timeout" env:"MEDICITAS_TIMEOUT" env-default:"15s"`
	StorePath string        `yaml:"store_path" env:"MEDICITAS_STORE_PATH" env-default:".medicitas/session.json"`
	LogLevel  string        `yaml:"log_level" env:"MEDICITAS_LOG_LEVEL" env-default:"info"`
	Env       string        `yaml:"env" env:"MEDICITAS_ENV" env-default:"production"`
}

// Load reads an optional .env file and then the environment. A missing .env
// is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads a YAML config file and overlays the environment on top.
func LoadFile(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
