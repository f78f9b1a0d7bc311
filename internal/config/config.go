package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	App      AppConfig      `yaml:"app"`
}

type DatabaseConfig struct {
	URL                string        `yaml:"url"`
	MaxConnections     int           `yaml:"max_connections"`
	MaxIdle            int           `yaml:"max_idle"`
	ConnectionLifetime time.Duration `yaml:"connection_lifetime"`
}

type AppConfig struct {
	DataDir    string           `yaml:"data_dir"`
	ExportPath string           `yaml:"export_path"`
	CLI        CLIConfig        `yaml:"cli"`
	Generation GenerationConfig `yaml:"generation"`
	Planner    PlannerConfig    `yaml:"planner"`
}

type CLIConfig struct {
	Prompt string            `yaml:"prompt"`
	Colors map[string]string `yaml:"colors"`
}

type GenerationConfig struct {
	MinCommentsPerPost int `yaml:"min_comments_per_post"`
	MaxCommentsPerPost int `yaml:"max_comments_per_post"`
	AttemptMultiplier  int `yaml:"attempt_multiplier"`
}

type PlannerConfig struct {
	Interval   time.Duration `yaml:"interval"`
	WeeksAhead int           `yaml:"weeks_ahead"`
}

var cfg *Config

func Load(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	cfg = &Config{}
	if err := yaml.Unmarshal(file, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	setDefaults()

	return nil
}

func Get() *Config {
	if cfg == nil {
		LoadDefault()
	}
	return cfg
}

func LoadDefault() {
	cfg = &Config{
		Database: DatabaseConfig{
			MaxConnections:     25,
			MaxIdle:            5,
			ConnectionLifetime: 5 * time.Minute,
		},
		App: AppConfig{
			DataDir:    "./data",
			ExportPath: "./exports",
			CLI: CLIConfig{
				Prompt: "➜",
				Colors: map[string]string{
					"success": "green",
					"error":   "red",
					"warning": "yellow",
					"info":    "cyan",
				},
			},
			Generation: GenerationConfig{
				MinCommentsPerPost: 2,
				MaxCommentsPerPost: 5,
				AttemptMultiplier:  80,
			},
			Planner: PlannerConfig{
				Interval:   24 * time.Hour,
				WeeksAhead: 1,
			},
		},
	}
}

func setDefaults() {
	if cfg.Database.MaxConnections == 0 {
		cfg.Database.MaxConnections = 25
	}
	if cfg.Database.MaxIdle == 0 {
		cfg.Database.MaxIdle = 5
	}
	if cfg.Database.ConnectionLifetime == 0 {
		cfg.Database.ConnectionLifetime = 5 * time.Minute
	}
	if cfg.App.DataDir == "" {
		cfg.App.DataDir = "./data"
	}
	if cfg.App.ExportPath == "" {
		cfg.App.ExportPath = "./exports"
	}
	if cfg.App.Generation.MinCommentsPerPost == 0 {
		cfg.App.Generation.MinCommentsPerPost = 2
	}
	if cfg.App.Generation.MaxCommentsPerPost == 0 {
		cfg.App.Generation.MaxCommentsPerPost = 5
	}
	if cfg.App.Generation.AttemptMultiplier == 0 {
		cfg.App.Generation.AttemptMultiplier = 80
	}
	if cfg.App.Planner.Interval == 0 {
		cfg.App.Planner.Interval = 24 * time.Hour
	}
	if cfg.App.Planner.WeeksAhead == 0 {
		cfg.App.Planner.WeeksAhead = 1
	}
}
