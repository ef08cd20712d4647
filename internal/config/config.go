package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds user-tunable settings.
type Config struct {
	Database DatabaseConfig
	Reports  ReportsConfig
	Layout   LayoutConfig
	UI       UIConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// ReportsConfig controls where exports are written.
type ReportsConfig struct {
	Dir string
}

// LayoutConfig controls the storyboard grid.
type LayoutConfig struct {
	Columns int
	Rows    int
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme          string
	DefaultProject string
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string
	File  string
}

// Path is the config file location; STORYBOARD_CONFIG overrides it.
func Path() string {
	if p := strings.TrimSpace(os.Getenv("STORYBOARD_CONFIG")); p != "" {
		return p
	}
	base := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME"))
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			home = "."
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppName, "config.toml")
}

func newViper(dataDir, reportsDir string) *viper.Viper {
	v := viper.New()
	v.SetDefault("database.path", filepath.Join(dataDir, DBFileName))
	v.SetDefault("reports.dir", reportsDir)
	v.SetDefault("layout.columns", GridColumns)
	v.SetDefault("layout.rows", GridRows)
	v.SetDefault("ui.theme", "default")
	v.SetDefault("ui.default_project", DefaultProjectName)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(dataDir, AppName+".log"))
	v.SetConfigType("toml")
	v.SetEnvPrefix("STORYBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from the TOML file (if present) and STORYBOARD_*
// environment variables on top of the defaults.
func Load(dataDir, reportsDir string) (Config, error) {
	v := newViper(dataDir, reportsDir)
	path := Path()
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	c := Config{
		Database: DatabaseConfig{Path: v.GetString("database.path")},
		Reports:  ReportsConfig{Dir: v.GetString("reports.dir")},
		Layout:   LayoutConfig{Columns: v.GetInt("layout.columns"), Rows: v.GetInt("layout.rows")},
		UI:       UIConfig{Theme: v.GetString("ui.theme"), DefaultProject: v.GetString("ui.default_project")},
		Log:      LogConfig{Level: v.GetString("log.level"), File: v.GetString("log.file")},
	}
	if c.Layout.Columns <= 0 {
		c.Layout.Columns = GridColumns
	}
	if c.Layout.Rows <= 0 {
		c.Layout.Rows = GridRows
	}
	return c, nil
}

// Save writes the non-path preferences back to the config file.
func Save(c Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", c.Database.Path)
	v.Set("reports.dir", c.Reports.Dir)
	v.Set("layout.columns", c.Layout.Columns)
	v.Set("layout.rows", c.Layout.Rows)
	v.Set("ui.theme", c.UI.Theme)
	v.Set("ui.default_project", c.UI.DefaultProject)
	v.Set("log.level", c.Log.Level)
	v.Set("log.file", c.Log.File)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
