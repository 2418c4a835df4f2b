package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/logandonley/docprint/pkg/printing"
)

// Config holds the CLI's print defaults and logging options
type Config struct {
	// Printer names the destination; empty selects the system default
	Printer  string
	Settings printing.PrintSettings
	Log      LogConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// SetDefaults registers the built-in defaults on v
func SetDefaults(v *viper.Viper) {
	d := printing.DefaultSettings()
	v.SetDefault("printer", "")
	v.SetDefault("paper_size", string(d.PaperSize))
	v.SetDefault("orientation", string(d.Orientation))
	v.SetDefault("copies", d.Copies)
	v.SetDefault("duplex", d.Duplex)
	v.SetDefault("color", d.Color)
	v.SetDefault("scale_to_fit", d.ScaleToFit)
	v.SetDefault("pages", "")
	v.SetDefault("margins.top", d.Margins.Top)
	v.SetDefault("margins.right", d.Margins.Right)
	v.SetDefault("margins.bottom", d.Margins.Bottom)
	v.SetDefault("margins.left", d.Margins.Left)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
}

// Load reads configuration into a Config
// Priority (highest to lowest):
// 1. Flags bound to v by the caller
// 2. Environment variables with DOCPRINT_ prefix (e.g., DOCPRINT_PAPER_SIZE)
// 3. configFile, or config.yaml in the user config directory
// 4. Built-in defaults
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "docprint"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// No config file is fine, defaults and env vars apply
	}

	v.SetEnvPrefix("DOCPRINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	settings, err := settingsFrom(v)
	if err != nil {
		return nil, err
	}

	return &Config{
		Printer:  v.GetString("printer"),
		Settings: settings,
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}, nil
}

func settingsFrom(v *viper.Viper) (printing.PrintSettings, error) {
	paper, err := printing.ParsePaperSize(v.GetString("paper_size"))
	if err != nil {
		return printing.PrintSettings{}, fmt.Errorf("paper_size: %w", err)
	}

	orientation, err := printing.ParseOrientation(v.GetString("orientation"))
	if err != nil {
		return printing.PrintSettings{}, fmt.Errorf("orientation: %w", err)
	}

	var pages *printing.PageRange
	if spec := strings.TrimSpace(v.GetString("pages")); spec != "" && !strings.EqualFold(spec, "all") {
		r, err := printing.ParsePageRange(spec)
		if err != nil {
			return printing.PrintSettings{}, fmt.Errorf("pages: %w", err)
		}
		pages = &r
	}

	return printing.PrintSettings{
		PaperSize:   paper,
		Orientation: orientation,
		PageRange:   pages,
		Copies:      v.GetInt("copies"),
		Duplex:      v.GetBool("duplex"),
		Color:       v.GetBool("color"),
		ScaleToFit:  v.GetBool("scale_to_fit"),
		Margins: printing.Margins{
			Top:    v.GetFloat64("margins.top"),
			Right:  v.GetFloat64("margins.right"),
			Bottom: v.GetFloat64("margins.bottom"),
			Left:   v.GetFloat64("margins.left"),
		},
	}, nil
}
