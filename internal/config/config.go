// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultUpcomingWindowDays = 7

type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Seed    SeedConfig    `yaml:"seed"`
	Report  ReportConfig  `yaml:"report"`
}

type LoggingConfig struct {
	Development bool `yaml:"development"`
}

type SeedConfig struct {
	DemoData bool `yaml:"demo_data"`
}

type ReportConfig struct {
	UpcomingWindowDays int `yaml:"upcoming_window_days"`
}

func Load() (*Config, error) {
	file, err := os.Open("config.yml")
	if err != nil {
		return nil, fmt.Errorf("не могу открыть config.yml: %w", err)
	}
	defer file.Close()

	var cfg Config
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга config.yml: %w", err)
	}

	return &cfg, nil
}

// UpcomingWindow — окно «ближайших» задач в днях, по умолчанию 7
func (c *Config) UpcomingWindow() int {
	if c.Report.UpcomingWindowDays <= 0 {
		return defaultUpcomingWindowDays
	}
	return c.Report.UpcomingWindowDays
}
