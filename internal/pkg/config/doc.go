// Package config provides functionality for loading and managing application configuration.
//
// This package handles loading settings such as the default hash function,
// key generation parameters and logger configuration from an optional YAML
// file, validating them and making them accessible throughout the application.
package config
