package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/username/friday-calendar/pkg/dateutil"
)

// Config represents application configuration
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Calendar CalendarConfig `mapstructure:"calendar"`
	UI       UIConfig       `mapstructure:"ui"`
	Export   ExportConfig   `mapstructure:"export"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`  // Empty: log to stderr
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// CalendarConfig represents calendar configuration
type CalendarConfig struct {
	Month string `mapstructure:"month"` // YYYY-MM, empty for the current month
}

// UIConfig represents terminal UI configuration
type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
}

// ExportConfig represents ICS export configuration
type ExportConfig struct {
	Dir       string `mapstructure:"dir"`
	ProductID string `mapstructure:"product_id"`
}

// Load loads configuration from file.
// A missing file is not an error; defaults and environment variables apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.friday-calendar")
		v.AddConfigPath("/etc/friday-calendar")
	}

	setDefaults(v)

	v.SetEnvPrefix("FRIDAY_CALENDAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when nothing is configured
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info"},
		UI:     UIConfig{AltScreen: true},
		Export: ExportConfig{Dir: ".", ProductID: defaultProductID},
	}
}

const defaultProductID = "-//friday-calendar//EN"

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("calendar.month", d.Calendar.Month)
	v.SetDefault("ui.alt_screen", d.UI.AltScreen)
	v.SetDefault("export.dir", d.Export.Dir)
	v.SetDefault("export.product_id", d.Export.ProductID)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Log.Level != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
			return fmt.Errorf("log.level must be debug, info, warn or error, got '%s'", c.Log.Level)
		}
	}

	if c.Calendar.Month != "" {
		if _, _, err := dateutil.ParseMonth(c.Calendar.Month); err != nil {
			return fmt.Errorf("calendar.month must be YYYY-MM, got '%s'", c.Calendar.Month)
		}
	}

	if strings.TrimSpace(c.Export.ProductID) == "" {
		return fmt.Errorf("export.product_id is required")
	}

	return nil
}

// GetLogLevel returns the zap level, falling back to info
func (c *LogConfig) GetLogLevel() zapcore.Level {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// GetMonth returns the configured month, or the month of now
func (c *CalendarConfig) GetMonth(now time.Time) (year, month int) {
	if c.Month != "" {
		if y, m, err := dateutil.ParseMonth(c.Month); err == nil {
			return y, m
		}
	}
	return now.Year(), int(now.Month())
}

// GetDir returns the export directory, defaulting to the working directory
func (c *ExportConfig) GetDir() string {
	if strings.TrimSpace(c.Dir) == "" {
		return "."
	}
	return c.Dir
}
