// Package config loads, normalizes, and validates subclip configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Obtain settings through this package so
// downstream code receives sanitized paths and validated padding values.
package config
