package cfg

import (
	"cmp"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	ConfigFile string `long:"config" env:"CONFIG_FILE" description:"Path to optional YAML configuration file"`

	// Database configuration
	DBPath string `long:"db-path" env:"DB_PATH" description:"Path to the SQLite database file (default ./data/detector.db)"`

	// Application configuration
	Port          string `long:"port" env:"PORT" description:"HTTP server port (default 8080)"`
	APIAccessKey  string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for authenticated endpoints (optional)"`
	SweepInterval int    `long:"sweep-interval" env:"SWEEP_INTERVAL" description:"Integrity sweep interval in seconds (default 300)"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, Asia/Jakarta)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	// First pass only discovers --config so file values can be applied
	// before the real parse.
	preParser := flags.NewParser(&raw, flags.IgnoreUnknown)
	if _, err := preParser.ParseArgs(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	var file FileCfg
	if raw.ConfigFile != "" {
		data, err := os.ReadFile(raw.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", raw.ConfigFile, err)
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", raw.ConfigFile, err)
		}
	}

	raw = rawCfg{ConfigFile: raw.ConfigFile}
	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		DBPath:        cmp.Or(raw.DBPath, file.Database.Path, "./data/detector.db"),
		Port:          cmp.Or(raw.Port, file.Server.Port, "8080"),
		APIAccessKey:  cmp.Or(raw.APIAccessKey, file.Server.APIAccessKey),
		SweepInterval: cmp.Or(raw.SweepInterval, file.Integrity.SweepInterval, 300),
		Timezone:      raw.Timezone,
		Debug:         raw.Debug,
		Version:       GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		loc, err := time.LoadLocation(timezone)
		if err != nil {
			return err
		}
		time.Local = loc
	}
	return nil
}
