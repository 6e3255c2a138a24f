// Package config manages persistent settings.
//
// Settings are stored as a JSON file inside the library. Load falls
// back to DefaultSettings when the file does not exist, so a fresh
// library works without any configuration.
package config
