package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Veraticus/the-truth-is-out-there/internal/common"
)

// Configuration keys.
const (
	KeyDataCSV       = "data.csv"
	KeyDataDB        = "data.db"
	KeyDebounce      = "dashboard.debounce"
	KeyAnchorTimeout = "dashboard.anchor_timeout"
	KeyColorBy       = "dashboard.color_by"
	KeyLogLevel      = "logging.level"
	KeyLogFormat     = "logging.format"
	KeyLogFile       = "logging.file"
)

// Defaults.
const (
	DefaultDB            = "~/.local/share/truth/sightings.db"
	DefaultDebounce      = 300 * time.Millisecond
	DefaultAnchorTimeout = 3 * time.Second
	DefaultColorBy       = "year"
)

// ColorModes lists the accepted map color modes.
var ColorModes = []string{"year", "month", "timeOfDay", "category"}

// Logging controls log output.
type Logging struct {
	Level  string
	Format string
	File   string
}

// Dashboard is the resolved application configuration.
type Dashboard struct {
	Logging       Logging
	CSVPath       string
	DBPath        string
	ColorBy       string
	Debounce      time.Duration
	AnchorTimeout time.Duration
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDataDB, DefaultDB)
	v.SetDefault(KeyDebounce, DefaultDebounce)
	v.SetDefault(KeyAnchorTimeout, DefaultAnchorTimeout)
	v.SetDefault(KeyColorBy, DefaultColorBy)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
}

// Load resolves the configuration held by v, applying defaults and
// validating every value.
func Load(v *viper.Viper) (Dashboard, error) {
	SetDefaults(v)

	cfg := Dashboard{
		CSVPath:       ExpandPath(v.GetString(KeyDataCSV)),
		DBPath:        ExpandPath(v.GetString(KeyDataDB)),
		ColorBy:       v.GetString(KeyColorBy),
		Debounce:      v.GetDuration(KeyDebounce),
		AnchorTimeout: v.GetDuration(KeyAnchorTimeout),
		Logging: Logging{
			Level:  strings.ToLower(v.GetString(KeyLogLevel)),
			Format: strings.ToLower(v.GetString(KeyLogFormat)),
			File:   ExpandPath(v.GetString(KeyLogFile)),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Dashboard{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (d Dashboard) Validate() error {
	if d.Debounce <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %s", common.ErrInvalidConfig, KeyDebounce, d.Debounce)
	}
	if d.AnchorTimeout <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %s", common.ErrInvalidConfig, KeyAnchorTimeout, d.AnchorTimeout)
	}
	if !validColorMode(d.ColorBy) {
		return fmt.Errorf("%w: %s must be one of %s, got %q",
			common.ErrInvalidConfig, KeyColorBy, strings.Join(ColorModes, ", "), d.ColorBy)
	}
	if _, err := common.ParseLevel(d.Logging.Level); err != nil {
		return err
	}
	switch d.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: %s must be console or json, got %q", common.ErrInvalidConfig, KeyLogFormat, d.Logging.Format)
	}
	return nil
}

// RequireSource reports an error unless a CSV or database path is set.
func (d Dashboard) RequireSource() error {
	if d.CSVPath == "" && d.DBPath == "" {
		return fmt.Errorf("%w: set --csv, --db, %s or %s", common.ErrMissingConfig, KeyDataCSV, KeyDataDB)
	}
	return nil
}

func validColorMode(mode string) bool {
	for _, m := range ColorModes {
		if m == mode {
			return true
		}
	}
	return false
}
