// Package config loads and validates application configuration from
// environment variables (EEG_* prefix) and an optional yaml file.
// Sampling rates live here so the ingestion core never has to know them.
package config
