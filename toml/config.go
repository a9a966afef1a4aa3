// Package toml loads configuration from the user's TOML config file.
package toml

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/rjoshi/ecourts"
)

// fileConfig mirrors the on-disk layout. Durations are TOML strings
// ("2s", "5m") converted on load.
type fileConfig struct {
	BaseURL      string `toml:"base_url"`
	StateCode    string `toml:"state_code"`
	DistCode     string `toml:"dist_code"`
	CourtCode    string `toml:"court_code"`
	CauseListDir string `toml:"cause_list_dir"`
	OrdersDir    string `toml:"orders_dir"`
	PollInterval string `toml:"poll_interval"`
	Deadline     string `toml:"deadline"`
	DBPath       string `toml:"db_path"`
}

// DefaultPath returns ~/.ecourts/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ecourts", "config.toml"), nil
}

// Load reads the config file at path. A missing file is not an error: every
// field falls back to its default. Malformed content is EINVALID.
func Load(path string) (ecourts.Config, error) {
	config := ecourts.DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return config, err
	}

	var file fileConfig
	if err := toml.Unmarshal(data, &file); err != nil {
		return config, ecourts.Errorf(ecourts.EINVALID, "config %s: %v", path, err)
	}

	if file.BaseURL != "" {
		config.BaseURL = file.BaseURL
	}
	config.StateCode = file.StateCode
	config.DistCode = file.DistCode
	config.CourtCode = file.CourtCode
	if file.CauseListDir != "" {
		config.CauseListDir = file.CauseListDir
	}
	if file.OrdersDir != "" {
		config.OrdersDir = file.OrdersDir
	}
	if file.DBPath != "" {
		config.DBPath = file.DBPath
	}

	if config.PollInterval, err = duration(file.PollInterval, config.PollInterval, path); err != nil {
		return config, err
	}
	if config.Deadline, err = duration(file.Deadline, config.Deadline, path); err != nil {
		return config, err
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

func duration(raw string, fallback time.Duration, path string) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, ecourts.Errorf(ecourts.EINVALID, "config %s: duration %q: %v", path, raw, err)
	}
	return d, nil
}
