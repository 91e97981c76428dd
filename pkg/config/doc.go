// Package config loads aqsync configuration from file and environment.
package config
