// Package config defines the application configuration structure and
// loads it from environment variables and an optional YAML file, with
// struct-tag validation. Environment variables take precedence.
package config
