// Package config handles configuration management for djangoapp-ynh.
//
// Tool settings are layered with koanf: embedded defaults, then the user's
// config.toml under XDG_CONFIG_HOME (or an explicit --config file), then
// DJANGOAPP_YNH_* environment variables, then command-line overrides.
//
// A packaged project may also carry a .ynhpack.toml file which tunes how
// its requirements are derived; see ProjectConfig.
package config
