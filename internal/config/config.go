package config

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"saloon-blackjack-server/internal/util"
	"saloon-blackjack-server/pkg/blackjack"
)

// Config provides configuration for the saloon blackjack server
type Config struct {
	loaded bool

	Addr string `yaml:"addr" envconfig:"addr"`
	Log  struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`

	// game cadences are in seconds
	Game struct {
		TickInterval     int `yaml:"tickInterval" envconfig:"tick_interval"`
		TimeBetweenHands int `yaml:"timeBetweenHands" envconfig:"time_between_hands"`
		AmbientPeriod    int `yaml:"ambientPeriod" envconfig:"ambient_period"`
		MaxSeats         int `yaml:"maxSeats" envconfig:"max_seats"`
	} `yaml:"game"`
}

var config Config

// DefaultConfig returns the configuration defaults
func DefaultConfig() Config {
	c := Config{
		Addr: ":5000",
	}
	c.Log.Level = "info"
	c.Game.TickInterval = 5
	c.Game.TimeBetweenHands = 5
	c.Game.AmbientPeriod = 10
	c.Game.MaxSeats = 7

	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; the defaults are used instead.
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("SBJ_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("sbj", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

// GameOptions translates the configured cadences into game options
func (c Config) GameOptions() blackjack.Options {
	opts := blackjack.DefaultOptions()
	if c.Game.TickInterval > 0 {
		opts.TickInterval = time.Duration(c.Game.TickInterval) * time.Second
	}
	if c.Game.TimeBetweenHands > 0 {
		opts.TimeBetweenHands = time.Duration(c.Game.TimeBetweenHands) * time.Second
	}
	if c.Game.AmbientPeriod > 0 {
		opts.AmbientPeriod = time.Duration(c.Game.AmbientPeriod) * time.Second
	}
	if c.Game.MaxSeats > 0 {
		opts.MaxSeats = c.Game.MaxSeats
	}

	return opts
}
