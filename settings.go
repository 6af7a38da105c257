package areatracker

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings are the process-level options of the areatracker command. They
// come from flags, AREATRACKER_* environment variables, and an optional
// settings file, in that order of precedence.
type Settings struct {
	DataDir       string  `mapstructure:"data_dir"`
	LogLevel      string  `mapstructure:"log_level"`
	LogFile       string  `mapstructure:"log_file"`
	Debug         bool    `mapstructure:"debug"`
	ShowFPS       bool    `mapstructure:"show_fps"`
	ScreenshotDir string  `mapstructure:"screenshot_dir"`
	Script        string  `mapstructure:"script"`
	NoticeSeconds float64 `mapstructure:"notice_seconds"`
}

var settingDefaults = map[string]any{
	"data_dir":       "MapData",
	"log_level":      "info",
	"log_file":       "",
	"debug":          false,
	"show_fps":       false,
	"screenshot_dir": "screenshots",
	"script":         "",
	"notice_seconds": 8.0,
}

// flagName turns a settings key into its command line flag name.
func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// RegisterFlags defines one flag per setting on fs, plus --config for a
// settings file.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "settings file (yaml, toml, or json)")
	fs.String(flagName("data_dir"), "MapData", "directory holding All.conf and the region files")
	fs.String(flagName("log_level"), "info", "log level: debug, info, warn, error")
	fs.String(flagName("log_file"), "", "also write logs to this file, rotated")
	fs.Bool("debug", false, "log rebuild timings and state dumps")
	fs.Bool(flagName("show_fps"), false, "draw an FPS counter")
	fs.String(flagName("screenshot_dir"), "screenshots", "directory for screenshots")
	fs.String("script", "", "JSON script of cursor events to replay")
	fs.Float64(flagName("notice_seconds"), 8, "how long load warnings stay on screen")
}

// LoadSettings resolves the settings from fs, the environment, and the
// settings file named by --config.
func LoadSettings(fs *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	for k, d := range settingDefaults {
		v.SetDefault(k, d)
	}
	v.SetEnvPrefix("AREATRACKER")
	v.AutomaticEnv()

	if fs != nil {
		for k := range settingDefaults {
			if f := fs.Lookup(flagName(k)); f != nil {
				if err := v.BindPFlag(k, f); err != nil {
					return Settings{}, fmt.Errorf("areatracker: bind flag %s: %w", f.Name, err)
				}
			}
		}
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			if err := v.ReadInConfig(); err != nil {
				return Settings{}, fmt.Errorf("areatracker: read settings: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("areatracker: decode settings: %w", err)
	}
	return s, nil
}
