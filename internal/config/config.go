package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Offering — одно инвестиционное предложение; все варианты лендинга
// сведены в параметры конфига.
type Offering struct {
	Code          string  `yaml:"code" json:"code"`
	ProductName   string  `yaml:"product_name" json:"product_name"`
	Description   string  `yaml:"description" json:"description"`
	MinInvestment float64 `yaml:"min_investment" json:"min_investment"`
	Multiplier    float64 `yaml:"multiplier" json:"multiplier"`
	Currency      string  `yaml:"currency" json:"currency"`
}

type AuthConfig struct {
	JWTSecret           string `yaml:"jwt_secret"`
	VisitorTokenTTLHrs  int    `yaml:"visitor_token_ttl_hours"`
	AccessTokenTTLMins  int    `yaml:"access_token_ttl_minutes"`
	RefreshTokenTTLDays int    `yaml:"refresh_token_ttl_days"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`
	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
	} `yaml:"email"`
	Auth      AuthConfig     `yaml:"auth"`
	Telegram  TelegramConfig `yaml:"telegram"`
	Offerings []Offering     `yaml:"offerings"`
}

func LoadConfig() *Config {
	cfg, err := LoadConfigFrom("config/config.yaml")
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return cfg
}

func LoadConfigFrom(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Auth.VisitorTokenTTLHrs == 0 {
		cfg.Auth.VisitorTokenTTLHrs = 12
	}
	if cfg.Auth.AccessTokenTTLMins == 0 {
		cfg.Auth.AccessTokenTTLMins = 15
	}
	if cfg.Auth.RefreshTokenTTLDays == 0 {
		cfg.Auth.RefreshTokenTTLDays = 30
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required")
	}
	if len(cfg.Offerings) == 0 {
		return nil, fmt.Errorf("at least one offering must be configured")
	}
	for i, off := range cfg.Offerings {
		if off.Code == "" || off.ProductName == "" {
			return nil, fmt.Errorf("offering #%d: code and product_name are required", i)
		}
		if off.Multiplier <= 0 {
			return nil, fmt.Errorf("offering %q: multiplier must be positive", off.Code)
		}
		if off.MinInvestment < 0 {
			return nil, fmt.Errorf("offering %q: min_investment cannot be negative", off.Code)
		}
		if off.Currency == "" {
			cfg.Offerings[i].Currency = "USD"
		}
	}
	return &cfg, nil
}

func (c *Config) FindOffering(code string) (Offering, bool) {
	for _, off := range c.Offerings {
		if off.Code == code {
			return off, true
		}
	}
	return Offering{}, false
}
