package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Portal    PortalConfig    `yaml:"portal"`
	Oracle    OracleConfig    `yaml:"oracle"`
	Mail      MailConfig      `yaml:"mail"`
	Letters   LettersConfig   `yaml:"letters"`
	Publisher PublisherConfig `yaml:"publisher"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	LogLevel  string          `yaml:"log_level"`
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

type PortalConfig struct {
	BaseURL   string        `yaml:"base_url"`
	MemberID  string        `yaml:"member_id"`
	Password  string        `yaml:"password"`
	Timeout   time.Duration `yaml:"timeout"`
	PageDelay time.Duration `yaml:"page_delay"`
	UserAgent string        `yaml:"user_agent"`
}

type OracleConfig struct {
	BaseURL   string        `yaml:"base_url"`
	APIKey    string        `yaml:"api_key"`
	Model     string        `yaml:"model"`
	Timeout   time.Duration `yaml:"timeout"`
	MaxTokens int           `yaml:"max_tokens"`
}

type MailConfig struct {
	From            string `yaml:"from"`
	CredentialsFile string `yaml:"credentials_file"`
	TokenFile       string `yaml:"token_file"`
}

type LettersConfig struct {
	OutputDir   string `yaml:"output_dir"`
	FontDir     string `yaml:"font_dir"`
	DraftUserID int64  `yaml:"draft_user_id"`
}

type PublisherConfig struct {
	Enabled    bool   `yaml:"enabled"`
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type PipelineConfig struct {
	Interval      time.Duration `yaml:"interval"`
	HorizonDays   int           `yaml:"horizon_days"`
	RecencyDays   int           `yaml:"recency_days"`
	MaxPages      int           `yaml:"max_pages"`
	PrimaryUserID int64         `yaml:"primary_user_id"`
}

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

	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate rejects configurations that cannot start a run. Anything
// missing here is fatal before any work happens.
func (c *Config) validate() error {
	if c.Portal.MemberID == "" || c.Portal.Password == "" {
		return errors.New("portal credentials are required")
	}
	if c.Oracle.APIKey == "" {
		return errors.New("oracle api_key is required")
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Portal.BaseURL == "" {
		c.Portal.BaseURL = "https://www.colpis.cat"
	}
	if c.Portal.Timeout == 0 {
		c.Portal.Timeout = 15 * time.Second
	}
	if c.Portal.PageDelay == 0 {
		c.Portal.PageDelay = 600 * time.Millisecond
	}
	if c.Portal.UserAgent == "" {
		c.Portal.UserAgent = "Mozilla/5.0 (X11; Linux x86_64) Chrome/126.0"
	}
	if c.Oracle.BaseURL == "" {
		c.Oracle.BaseURL = "https://api.deepseek.com"
	}
	if c.Oracle.Model == "" {
		c.Oracle.Model = "deepseek-chat"
	}
	if c.Oracle.Timeout == 0 {
		c.Oracle.Timeout = 60 * time.Second
	}
	if c.Oracle.MaxTokens == 0 {
		c.Oracle.MaxTokens = 1024
	}
	// Mail.CredentialsFile stays empty unless configured; empty disables
	// the Gmail transport entirely.
	if c.Mail.TokenFile == "" {
		c.Mail.TokenFile = "token.json"
	}
	if c.Letters.OutputDir == "" {
		c.Letters.OutputDir = "letters"
	}
	if c.Publisher.Exchange == "" {
		c.Publisher.Exchange = "offer_pipeline"
	}
	if c.Publisher.RoutingKey == "" {
		c.Publisher.RoutingKey = "offers"
	}
	if c.Publisher.QueueName == "" {
		c.Publisher.QueueName = "offer_events"
	}
	if c.Pipeline.Interval == 0 {
		c.Pipeline.Interval = 6 * time.Hour
	}
	if c.Pipeline.HorizonDays == 0 {
		c.Pipeline.HorizonDays = 30
	}
	if c.Pipeline.RecencyDays == 0 {
		c.Pipeline.RecencyDays = 15
	}
	if c.Pipeline.MaxPages == 0 {
		c.Pipeline.MaxPages = 20
	}
	if c.Pipeline.PrimaryUserID == 0 {
		c.Pipeline.PrimaryUserID = 1
	}
	if c.Letters.DraftUserID == 0 {
		c.Letters.DraftUserID = c.Pipeline.PrimaryUserID
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
