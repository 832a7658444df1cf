package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

type Config struct {
	Environment string `yaml:"environment" default:"production"`

	Monitor struct {
		DaysBack    int           `yaml:"days_back" default:"1" validate:"min=0"`
		PageSize    int           `yaml:"page_size" default:"100" validate:"min=1"`
		MaxPages    int           `yaml:"max_pages" default:"10" validate:"min=1"`
		NotifyDelay time.Duration `yaml:"notify_delay" default:"1s"`
		// Interval > 0 keeps the monitor resident and repeats the pass on
		// that cadence; 0 means one pass and exit.
		Interval time.Duration `yaml:"interval" default:"0s"`
	} `yaml:"monitor"`

	Server struct {
		Port            int           `yaml:"port" default:"8080"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
	} `yaml:"server"`

	Dart struct {
		// Missing key is fatal; there is deliberately no embedded default.
		APIKey  string        `yaml:"api_key" validate:"required"`
		BaseURL string        `yaml:"base_url" default:"https://opendart.fss.or.kr/api"`
		Timeout time.Duration `yaml:"timeout" default:"30s"`
	} `yaml:"dart"`

	Telegram struct {
		BotToken string        `yaml:"bot_token" validate:"required"`
		ChatID   string        `yaml:"chat_id" validate:"required"`
		BaseURL  string        `yaml:"base_url" default:"https://api.telegram.org"`
		Timeout  time.Duration `yaml:"timeout" default:"30s"`
	} `yaml:"telegram"`

	Dedup struct {
		Backend string `yaml:"backend" default:"memory"`
		Redis   struct {
			Addr     string        `yaml:"addr" default:"localhost:6379"`
			Password string        `yaml:"password"`
			DB       int           `yaml:"db"`
			TTL      time.Duration `yaml:"ttl" default:"168h"`
		} `yaml:"redis"`
	} `yaml:"dedup"`

	Archive struct {
		Backend   string `yaml:"backend" default:"file"`
		OutputDir string `yaml:"output_dir" default:"output"`
		Kafka     struct {
			Brokers      []string      `yaml:"brokers"`
			Topic        string        `yaml:"topic" default:"executive-purchases"`
			Compression  string        `yaml:"compression" default:"gzip"`
			RequiredAcks int           `yaml:"required_acks" default:"-1"`
			WriteTimeout time.Duration `yaml:"write_timeout" default:"10s"`
		} `yaml:"kafka"`
		ClickHouse struct {
			Host        string        `yaml:"host" default:"localhost"`
			Port        int           `yaml:"port" default:"9000"`
			Database    string        `yaml:"database" default:"dartwatch"`
			User        string        `yaml:"user" default:"default"`
			Password    string        `yaml:"password"`
			DialTimeout time.Duration `yaml:"dial_timeout" default:"5s"`
		} `yaml:"clickhouse"`
	} `yaml:"archive"`

	Log struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`
}

// Load reads, defaults, parses and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment
// variables, then validates. Missing credentials fail here, before any
// upstream call is made.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	c.applyEnv()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DART_API_KEY"); v != "" {
		c.Dart.APIKey = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		c.Telegram.ChatID = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Dedup.Redis.Addr = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Archive.Kafka.Brokers = strings.Split(v, ",")
	}
}

// Validate checks struct tags and enum fields.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	switch c.Dedup.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("dedup.backend must be 'memory' or 'redis', got '%s'", c.Dedup.Backend)
	}
	switch c.Archive.Backend {
	case "file", "kafka", "clickhouse":
	default:
		return fmt.Errorf("archive.backend must be 'file', 'kafka' or 'clickhouse', got '%s'", c.Archive.Backend)
	}
	if c.Archive.Backend == "kafka" && len(c.Archive.Kafka.Brokers) == 0 {
		return fmt.Errorf("archive.kafka.brokers cannot be empty with the kafka backend")
	}
	return nil
}
