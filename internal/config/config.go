package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for one simulation run.
type Config struct {
	Input       string `mapstructure:"MARS_INPUT"`
	Output      string `mapstructure:"MARS_OUTPUT"`
	LogLevel    string `mapstructure:"MARS_LOG_LEVEL"`
	MetricsFile string `mapstructure:"MARS_METRICS_FILE"`
	Render      bool   `mapstructure:"MARS_RENDER"`
	Strict      bool   `mapstructure:"MARS_STRICT"`
}

// Load reads configuration from a .env file in the working directory and
// the environment. Positional args, when given, override input and output.
func Load(args []string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("MARS_INPUT", "input.txt")
	v.SetDefault("MARS_OUTPUT", "output.txt")
	v.SetDefault("MARS_LOG_LEVEL", "info")
	v.SetDefault("MARS_METRICS_FILE", "")
	v.SetDefault("MARS_RENDER", false)
	v.SetDefault("MARS_STRICT", false)

	// a missing .env is fine
	_ = v.ReadInConfig()

	cfg := &Config{}
	cfg.Input = v.GetString("MARS_INPUT")
	cfg.Output = v.GetString("MARS_OUTPUT")
	cfg.LogLevel = v.GetString("MARS_LOG_LEVEL")
	cfg.MetricsFile = v.GetString("MARS_METRICS_FILE")
	cfg.Render = v.GetBool("MARS_RENDER")
	cfg.Strict = v.GetBool("MARS_STRICT")

	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if len(args) > 1 {
		cfg.Output = args[1]
	}
	return cfg, nil
}
