// Package config loads namesplit settings from YAML with environment
// overrides (NAMESPLIT_*).
package config
