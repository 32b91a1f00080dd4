package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	API      APIConfig      `yaml:"api"`
	HTTP     HTTPConfig     `yaml:"http"`
	Jobs     JobsConfig     `yaml:"jobs"`
	LogLevel string         `yaml:"log_level"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type APIConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Token     string        `yaml:"token"`
	PerPage   int           `yaml:"per_page"`
	PageDelay time.Duration `yaml:"page_delay"`
	Timeout   time.Duration `yaml:"timeout"`
	MaxPages  int           `yaml:"max_pages"`
	Retry     RetryConfig   `yaml:"retry"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

type HTTPConfig struct {
	Addr        string `yaml:"addr"`
	AdminSecret string `yaml:"admin_secret"`
}

// JobsConfig carries the per-run defaults that a trigger request is merged
// onto, plus the cron schedule for each job (empty means not scheduled).
type JobsConfig struct {
	RunTimeout   time.Duration     `yaml:"run_timeout"`
	LeagueIDs    []int64           `yaml:"league_ids"`
	BookmakerIDs []int64           `yaml:"bookmaker_ids"`
	MaxFixtures  int               `yaml:"max_fixtures"`
	MaxTeams     int               `yaml:"max_teams"`
	BatchSize    int               `yaml:"batch_size"`
	DaysBack     int               `yaml:"days_back"`
	DaysForward  int               `yaml:"days_forward"`
	Schedules    map[string]string `yaml:"schedules"`
}

// defaultLeagueIDs is the European league allow-list every job scopes to
// unless the trigger overrides it.
var defaultLeagueIDs = []int64{
	8, 9, 24, 27, 72, 82, 181, 208, 1371, 244, 271, 301, 384, 387, 390,
	444, 453, 462, 486, 501, 564, 567, 570, 573, 591, 600, 609,
}

// defaultBookmakerIDs is the UK bookmaker selection used by the odds job.
var defaultBookmakerIDs = []int64{2, 5, 6, 9, 12, 13, 16, 19, 20, 22, 23, 24}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.SetDefaults()

	return &cfg, nil
}

func (c *Config) SetDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = "https://api.sportmonks.com/v3"
	}
	if c.API.PerPage == 0 {
		c.API.PerPage = 50
	}
	if c.API.PageDelay == 0 {
		c.API.PageDelay = 100 * time.Millisecond
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = 30 * time.Second
	}
	if c.API.MaxPages == 0 {
		c.API.MaxPages = 50
	}
	if c.API.Retry.MaxAttempts == 0 {
		c.API.Retry.MaxAttempts = 3
	}
	if c.API.Retry.InitialBackoff == 0 {
		c.API.Retry.InitialBackoff = 1 * time.Second
	}
	if c.API.Retry.MaxBackoff == 0 {
		c.API.Retry.MaxBackoff = 30 * time.Second
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8080"
	}
	if c.Jobs.RunTimeout == 0 {
		c.Jobs.RunTimeout = 10 * time.Minute
	}
	if len(c.Jobs.LeagueIDs) == 0 {
		c.Jobs.LeagueIDs = append([]int64(nil), defaultLeagueIDs...)
	}
	if len(c.Jobs.BookmakerIDs) == 0 {
		c.Jobs.BookmakerIDs = append([]int64(nil), defaultBookmakerIDs...)
	}
	if c.Jobs.MaxFixtures == 0 {
		c.Jobs.MaxFixtures = 50
	}
	if c.Jobs.MaxTeams == 0 {
		c.Jobs.MaxTeams = 500
	}
	if c.Jobs.BatchSize == 0 {
		c.Jobs.BatchSize = 20
	}
	if c.Jobs.DaysForward == 0 {
		c.Jobs.DaysForward = 3
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
