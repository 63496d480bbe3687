package tapmap

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds host-level settings read from TAPMAP_* environment variables.
type Config struct {
	// Mode is the initial interaction mode name. Invalid names are ignored
	// with a warning when the controller is created.
	Mode        string        `envconfig:"MODE" default:"hybrid"`
	TapCooldown time.Duration `envconfig:"TAP_COOLDOWN" default:"500ms"`
	Debug       bool          `envconfig:"DEBUG" default:"false"`
	// Regions is an optional path to a YAML region set.
	Regions string `envconfig:"REGIONS"`
}

// LoadConfig reads the TAPMAP_* environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("tapmap", &cfg); err != nil {
		return Config{}, fmt.Errorf("tapmap: load config: %w", err)
	}
	return cfg, nil
}

// ParseModeParam extracts the "mode" parameter from a URL query string such
// as "mode=canvas&debug=1". The leading "?" is optional.
func ParseModeParam(rawQuery string) (string, bool) {
	if len(rawQuery) > 0 && rawQuery[0] == '?' {
		rawQuery = rawQuery[1:]
	}
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		Logger().Warn("tapmap: malformed query", "query", rawQuery, "err", err)
		return "", false
	}
	mode := values.Get("mode")
	return mode, mode != ""
}

// WithQuery returns a copy of c whose Mode is overridden by a "mode" query
// parameter, if present.
func (c Config) WithQuery(rawQuery string) Config {
	if mode, ok := ParseModeParam(rawQuery); ok {
		c.Mode = mode
	}
	return c
}

// ControllerOptions returns options carrying the configured mode and
// cooldown. Callers fill in the collaborators.
func (c Config) ControllerOptions() ControllerOptions {
	return ControllerOptions{
		InitialMode: c.Mode,
		TapCooldown: c.TapCooldown,
	}
}
