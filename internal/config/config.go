package config

import (
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Mongo      `yaml:"mongo"`
	Tokens     `yaml:"tokens"`
	CORS       `yaml:"cors"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8000"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Mongo struct {
	URL      string `yaml:"url" env:"MONGO_DB_URL" env-default:"mongodb://127.0.0.1:27017"`
	Database string `yaml:"database" env:"MONGO_DB_NAME" env-default:"spacex"`
}

// Tokens carries two independent signing secrets so that leaking one token
// family does not compromise the other. Secrets come from the environment
// only, never from the config file.
type Tokens struct {
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl" env-default:"15m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env-default:"720h"`
	AccessSecret    string        `env:"JWT_ACCESS_SECRET" env-required:"true"`
	RefreshSecret   string        `env:"JWT_REFRESH_SECRET" env-required:"true"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-default:"http://localhost:3000,http://localhost:5173"`
}

func MustLoad(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("Config file does not exist" + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("Failed to read config" + err.Error())
	}

	return &cfg
}
