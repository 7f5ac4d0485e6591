// Package config locates and parses the soletrack config file
// (~/.config/soletrack/config.toml) and applies environment overrides.
package config
